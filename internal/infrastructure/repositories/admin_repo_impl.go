package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/infrastructure/models"
)

// AdminRepository implements back-office operator account operations
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *entities.AdminUser) error {
	m := &models.AdminUser{
		ID:           admin.ID,
		FullName:     admin.FullName,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		Role:         string(admin.Role),
	}

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	admin.ID = m.ID
	return nil
}

// GetByID gets an admin account by ID
func (r *AdminRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AdminUser, error) {
	db := GetDB(ctx, r.db)
	var m models.AdminUser
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAdminEntity(&m), nil
}

// GetByEmail gets an admin account by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*entities.AdminUser, error) {
	db := GetDB(ctx, r.db)
	var m models.AdminUser
	if err := db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toAdminEntity(&m), nil
}

func toAdminEntity(m *models.AdminUser) *entities.AdminUser {
	return &entities.AdminUser{
		ID:           m.ID,
		FullName:     m.FullName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entities.AdminRole(m.Role),
		CreatedAt:    entities.NewTimestamp(m.CreatedAt),
		UpdatedAt:    entities.NewTimestamp(m.UpdatedAt),
	}
}
