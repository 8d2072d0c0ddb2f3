package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/domain/repositories"
	"trade-admin.backend/pkg/crypto"
	"trade-admin.backend/pkg/logger"
	"trade-admin.backend/pkg/utils"
)

// UserUsecase handles user-account business logic
type UserUsecase struct {
	userRepo repositories.UserRepository
	txRepo   repositories.TransactionRepository
	uow      repositories.UnitOfWork
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo repositories.UserRepository,
	txRepo repositories.TransactionRepository,
	uow repositories.UnitOfWork,
) *UserUsecase {
	return &UserUsecase{
		userRepo: userRepo,
		txRepo:   txRepo,
		uow:      uow,
	}
}

// ListUsers returns one page of users matching the filter plus the total
// match count.
func (u *UserUsecase) ListUsers(ctx context.Context, filter entities.UserFilter, page, limit int) ([]*entities.User, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, domainerrors.BadRequest(err.Error())
	}

	p := utils.GetPaginationParams(page, limit)
	return u.userRepo.List(ctx, filter, p.Limit, p.CalculateOffset())
}

// GetUser gets a user by ID
func (u *UserUsecase) GetUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// CreateUser creates a user account with generated identity fields.
func (u *UserUsecase) CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	status := input.Status
	if status == "" {
		status = entities.UserStatusPending
	}
	if !status.Valid() {
		return nil, domainerrors.BadRequest(fmt.Sprintf("invalid status %q", status))
	}
	riskLevel := input.RiskLevel
	if riskLevel == "" {
		riskLevel = entities.RiskLevelLow
	}
	if !riskLevel.Valid() {
		return nil, domainerrors.BadRequest(fmt.Sprintf("invalid riskLevel %q", riskLevel))
	}

	referralCode, err := crypto.GenerateReferralCode()
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:           uuid.New(),
		Email:        input.Email,
		FullName:     input.FullName,
		Country:      input.Country,
		Status:       status,
		Verified:     input.Verified,
		Balance:      input.Balance,
		RegisteredAt: entities.NewTimestamp(time.Now()),
		ReferralCode: referralCode,
		KYCStatus:    entities.KYCStatusNotSubmitted,
		KYCDocuments: []entities.KycDocument{},
		RiskLevel:    riskLevel,
		Tags:         input.Tags,
	}
	if input.Phone != "" {
		user.Phone.SetValid(input.Phone)
	}
	if input.ReferredBy != "" {
		user.ReferredBy.SetValid(input.ReferredBy)
	}
	if input.Notes != "" {
		user.Notes.SetValid(input.Notes)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	logger.Info(ctx, "user created",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)
	return user, nil
}

// UpdateUser applies a patch to one user and returns its new state.
func (u *UserUsecase) UpdateUser(ctx context.Context, id uuid.UUID, patch *entities.UserPatch) (*entities.User, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.BadRequest("patch carries no changes")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domainerrors.BadRequest(fmt.Sprintf("invalid status %q", *patch.Status))
	}
	if patch.KYCStatus != nil && !patch.KYCStatus.Valid() {
		return nil, domainerrors.BadRequest(fmt.Sprintf("invalid kycStatus %q", *patch.KYCStatus))
	}
	if patch.RiskLevel != nil && !patch.RiskLevel.Valid() {
		return nil, domainerrors.BadRequest(fmt.Sprintf("invalid riskLevel %q", *patch.RiskLevel))
	}

	return u.userRepo.Update(ctx, id, patch)
}

// DeleteUser removes a user and, via cascade, everything it owns.
func (u *UserUsecase) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return u.userRepo.Delete(ctx, id)
}

// SuspendUser suspends an account and records the reason.
func (u *UserUsecase) SuspendUser(ctx context.Context, id uuid.UUID, reason string) (*entities.User, error) {
	status := entities.UserStatusSuspended
	patch := &entities.UserPatch{Status: &status}
	if reason != "" {
		patch.Notes = &reason
	}
	return u.userRepo.Update(ctx, id, patch)
}

// ActivateUser reactivates an account.
func (u *UserUsecase) ActivateUser(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	status := entities.UserStatusActive
	return u.userRepo.Update(ctx, id, &entities.UserPatch{Status: &status})
}

// BulkUpdateStatus sets the status on all listed users; the affected count
// may be smaller than the id list when some ids do not exist.
func (u *UserUsecase) BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status entities.UserStatus) (int64, error) {
	if len(ids) == 0 {
		return 0, domainerrors.BadRequest("userIds must not be empty")
	}
	if !status.Valid() {
		return 0, domainerrors.BadRequest(fmt.Sprintf("invalid status %q", status))
	}
	return u.userRepo.BulkUpdateStatus(ctx, ids, status)
}

// BulkVerifyUsers marks all listed users verified.
func (u *UserUsecase) BulkVerifyUsers(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, domainerrors.BadRequest("userIds must not be empty")
	}
	return u.userRepo.BulkSetVerified(ctx, ids, true)
}

// AdjustBalance applies a manual balance adjustment and writes the audit
// transaction in the same storage transaction: both become visible together
// or not at all.
func (u *UserUsecase) AdjustBalance(ctx context.Context, userID uuid.UUID, input *entities.BalanceAdjustmentInput, adminID uuid.UUID) (*entities.Transaction, error) {
	if input.Amount <= 0 {
		return nil, domainerrors.BadRequest("amount must be positive")
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, domainerrors.BadRequest("reason must not be empty")
	}
	if input.Direction != entities.BalanceAdd && input.Direction != entities.BalanceSubtract {
		return nil, domainerrors.BadRequest(fmt.Sprintf("invalid direction %q", input.Direction))
	}

	delta := input.Amount
	txType := entities.TransactionTypeBonus
	if input.Direction == entities.BalanceSubtract {
		delta = -input.Amount
		txType = entities.TransactionTypeFee
	}

	var audit *entities.Transaction
	err := u.uow.Do(ctx, func(txCtx context.Context) error {
		user, err := u.userRepo.GetByID(txCtx, userID)
		if err != nil {
			return err
		}
		if delta < 0 && user.Balance+delta < 0 {
			return domainerrors.UnprocessableEntity(
				fmt.Sprintf("balance %.2f is insufficient for a %.2f debit", user.Balance, input.Amount),
				domainerrors.ErrInsufficientFunds,
			)
		}

		if err := u.userRepo.AddBalance(txCtx, userID, delta); err != nil {
			return err
		}

		now := entities.NewTimestamp(time.Now())
		audit = &entities.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        txType,
			Amount:      delta,
			Currency:    "USD",
			Status:      entities.TransactionStatusCompleted,
			Description: fmt.Sprintf("Manual balance adjustment: %s", input.Reason),
			CreatedAt:   now,
			CompletedAt: &now,
		}
		audit.AdminNotes.SetValid(fmt.Sprintf("Adjusted by admin %s", adminID))
		return u.txRepo.Create(txCtx, audit)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "balance adjusted",
		zap.String("user_id", userID.String()),
		zap.String("admin_id", adminID.String()),
		zap.Float64("delta", delta),
	)
	return audit, nil
}
