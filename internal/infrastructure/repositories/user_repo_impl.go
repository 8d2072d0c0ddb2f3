package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m, err := toUserModel(user)
	if err != nil {
		return err
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	return nil
}

// GetByID gets a user by ID, including its KYC documents
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	db := GetDB(ctx, r.db)

	var m models.User
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	user, err := toUserEntity(&m)
	if err != nil {
		return nil, err
	}

	docs, err := r.documentsForUsers(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	user.KYCDocuments = docs[id]
	return user, nil
}

// List returns one page of users matching the filter plus the total match
// count. The count query and the page query share the same predicate set;
// ordering is registration time descending with the primary key as tie
// breaker so pagination never skips or duplicates rows.
func (r *UserRepository) List(ctx context.Context, filter entities.UserFilter, limit, offset int) ([]*entities.User, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := applyUserFilter(db.WithContext(ctx).Model(&models.User{}), filter).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.User
	if err := applyUserFilter(db.WithContext(ctx).Model(&models.User{}), filter).
		Order("registered_at DESC, id ASC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, 0, len(ms))
	for i := range ms {
		ids = append(ids, ms[i].ID)
	}
	docs, err := r.documentsForUsers(ctx, ids)
	if err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(ms))
	for i := range ms {
		user, err := toUserEntity(&ms[i])
		if err != nil {
			return nil, 0, err
		}
		user.KYCDocuments = docs[user.ID]
		users = append(users, user)
	}
	return users, total, nil
}

// Update applies a patch to one user and returns its new state.
func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, patch *entities.UserPatch) (*entities.User, error) {
	updates, err := userPatchUpdates(patch)
	if err != nil {
		return nil, err
	}

	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a user; transactions, KYC documents and chat messages go
// with it via the cascade constraints.
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// BulkUpdateStatus sets the status on every listed user in one set-based
// statement and reports the number of rows actually affected.
func (r *UserRepository) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status entities.UserStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// BulkSetVerified sets the verification flag on every listed user in one
// set-based statement and reports the number of rows actually affected.
func (r *UserRepository) BulkSetVerified(ctx context.Context, ids []uuid.UUID, verified bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"verified":   verified,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// AddBalance applies a signed delta to the user's balance.
func (r *UserRepository) AddBalance(ctx context.Context, id uuid.UUID, delta float64) error {
	db := GetDB(ctx, r.db)
	result := db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Stats computes the dashboard aggregates.
func (r *UserRepository) Stats(ctx context.Context, now time.Time) (*entities.UserStats, error) {
	db := GetDB(ctx, r.db)
	stats := &entities.UserStats{}

	users := func() *gorm.DB { return db.WithContext(ctx).Model(&models.User{}) }

	if err := users().Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := users().Where("status = ?", entities.UserStatusActive).
		Count(&stats.ActiveUsers).Error; err != nil {
		return nil, err
	}
	startOfDay := time.Date(now.UTC().Year(), now.UTC().Month(), now.UTC().Day(), 0, 0, 0, 0, time.UTC)
	if err := users().Where("registered_at >= ?", startOfDay).
		Count(&stats.NewUsersToday).Error; err != nil {
		return nil, err
	}
	if err := users().Select("COALESCE(SUM(balance), 0)").
		Scan(&stats.TotalBalance).Error; err != nil {
		return nil, err
	}
	if err := users().Select("COALESCE(SUM(total_deposited), 0)").
		Scan(&stats.TotalDeposits).Error; err != nil {
		return nil, err
	}
	if err := users().Select("COALESCE(SUM(total_withdrawn), 0)").
		Scan(&stats.TotalWithdrawals).Error; err != nil {
		return nil, err
	}
	if err := users().Where("kyc_status = ?", entities.KYCStatusPending).
		Count(&stats.PendingVerifications).Error; err != nil {
		return nil, err
	}
	if err := users().Where("status = ?", entities.UserStatusSuspended).
		Count(&stats.SuspendedUsers).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// CountryStats returns user counts grouped by country, largest first.
func (r *UserRepository) CountryStats(ctx context.Context) ([]entities.CountryCount, error) {
	db := GetDB(ctx, r.db)
	var rows []entities.CountryCount
	err := db.WithContext(ctx).Model(&models.User{}).
		Select("country, COUNT(*) AS count").
		Group("country").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// RegistrationSeries returns per-day registration counts since the given
// time. Aggregation happens in memory to stay portable across SQL dialects;
// days without registrations are absent from the result.
func (r *UserRepository) RegistrationSeries(ctx context.Context, since time.Time) ([]entities.RegistrationPoint, error) {
	db := GetDB(ctx, r.db)
	var times []time.Time
	err := db.WithContext(ctx).Model(&models.User{}).
		Where("registered_at >= ?", since).
		Pluck("registered_at", &times).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, t := range times {
		counts[t.UTC().Format("2006-01-02")]++
	}

	points := make([]entities.RegistrationPoint, 0, len(counts))
	for date, count := range counts {
		points = append(points, entities.RegistrationPoint{Date: date, Count: count})
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points, nil
}

// documentsForUsers batch-fetches the KYC documents for a page of users in a
// single query, keyed by user id and ordered by upload time.
func (r *UserRepository) documentsForUsers(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]entities.KycDocument, error) {
	docs := make(map[uuid.UUID][]entities.KycDocument, len(ids))
	for _, id := range ids {
		docs[id] = []entities.KycDocument{}
	}
	if len(ids) == 0 {
		return docs, nil
	}

	db := GetDB(ctx, r.db)
	var ms []models.KycDocument
	err := db.WithContext(ctx).
		Where("user_id IN ?", ids).
		Order("uploaded_at ASC, id ASC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}

	for i := range ms {
		m := &ms[i]
		docs[m.UserID] = append(docs[m.UserID], entities.KycDocument{
			ID:         m.ID,
			Type:       entities.KycDocumentType(m.Type),
			URL:        m.URL,
			UploadedAt: entities.NewTimestamp(m.UploadedAt),
		})
	}
	return docs, nil
}

func toUserEntity(m *models.User) (*entities.User, error) {
	tags, err := decodeTags(m.Tags)
	if err != nil {
		return nil, fmt.Errorf("decode tags for user %s: %w", m.ID, err)
	}

	return &entities.User{
		ID:             m.ID,
		Email:          m.Email,
		FullName:       m.FullName,
		Phone:          null.StringFromPtr(m.Phone),
		Country:        m.Country,
		Status:         entities.UserStatus(m.Status),
		Verified:       m.Verified,
		Balance:        m.Balance,
		TotalDeposited: m.TotalDeposited,
		TotalWithdrawn: m.TotalWithdrawn,
		TotalProfit:    m.TotalProfit,
		TotalTrades:    m.TotalTrades,
		WinRate:        m.WinRate,
		LastLogin:      entities.NewTimestampPtr(m.LastLogin),
		RegisteredAt:   entities.NewTimestamp(m.RegisteredAt),
		ReferralCode:   m.ReferralCode,
		ReferredBy:     null.StringFromPtr(m.ReferredBy),
		KYCStatus:      entities.KYCStatus(m.KYCStatus),
		KYCDocuments:   []entities.KycDocument{},
		Notes:          null.StringFromPtr(m.Notes),
		RiskLevel:      entities.RiskLevel(m.RiskLevel),
		Tags:           tags,
	}, nil
}

func toUserModel(user *entities.User) (*models.User, error) {
	tags, err := encodeTags(user.Tags)
	if err != nil {
		return nil, err
	}

	m := &models.User{
		ID:             user.ID,
		Email:          user.Email,
		FullName:       user.FullName,
		Phone:          user.Phone.Ptr(),
		Country:        user.Country,
		Status:         string(user.Status),
		Verified:       user.Verified,
		Balance:        user.Balance,
		TotalDeposited: user.TotalDeposited,
		TotalWithdrawn: user.TotalWithdrawn,
		TotalProfit:    user.TotalProfit,
		TotalTrades:    user.TotalTrades,
		WinRate:        user.WinRate,
		RegisteredAt:   user.RegisteredAt.Time,
		ReferralCode:   user.ReferralCode,
		ReferredBy:     user.ReferredBy.Ptr(),
		KYCStatus:      string(user.KYCStatus),
		Notes:          user.Notes.Ptr(),
		RiskLevel:      string(user.RiskLevel),
		Tags:           tags,
	}
	if user.LastLogin != nil {
		t := user.LastLogin.Time
		m.LastLogin = &t
	}
	return m, nil
}

func userPatchUpdates(patch *entities.UserPatch) (map[string]interface{}, error) {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}
	if patch.FullName != nil {
		updates["full_name"] = *patch.FullName
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Country != nil {
		updates["country"] = *patch.Country
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
	}
	if patch.Verified != nil {
		updates["verified"] = *patch.Verified
	}
	if patch.KYCStatus != nil {
		updates["kyc_status"] = *patch.KYCStatus
	}
	if patch.RiskLevel != nil {
		updates["risk_level"] = *patch.RiskLevel
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	if patch.Tags != nil {
		encoded, err := encodeTags(*patch.Tags)
		if err != nil {
			return nil, err
		}
		updates["tags"] = encoded
	}
	return updates, nil
}

// decodeTags parses the JSON-encoded tag column; NULL or empty means no tags.
func decodeTags(raw *string) ([]string, error) {
	if raw == nil || *raw == "" {
		return []string{}, nil
	}
	var tags []string
	if err := json.Unmarshal([]byte(*raw), &tags); err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []string{}
	}
	return tags, nil
}

func encodeTags(tags []string) (*string, error) {
	if tags == nil {
		tags = []string{}
	}
	data, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	s := string(data)
	return &s, nil
}
