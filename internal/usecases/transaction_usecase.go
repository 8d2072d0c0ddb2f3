package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/domain/repositories"
	"trade-admin.backend/pkg/logger"
	"trade-admin.backend/pkg/utils"
)

// TransactionUsecase handles transaction review business logic
type TransactionUsecase struct {
	txRepo repositories.TransactionRepository
}

// NewTransactionUsecase creates a new transaction usecase
func NewTransactionUsecase(txRepo repositories.TransactionRepository) *TransactionUsecase {
	return &TransactionUsecase{txRepo: txRepo}
}

// ListTransactions returns one page of transactions matching the filter plus
// the total match count.
func (u *TransactionUsecase) ListTransactions(ctx context.Context, filter entities.TransactionFilter, page, limit int) ([]*entities.Transaction, int64, error) {
	if err := filter.Validate(); err != nil {
		return nil, 0, domainerrors.BadRequest(err.Error())
	}

	p := utils.GetPaginationParams(page, limit)
	return u.txRepo.List(ctx, filter, p.Limit, p.CalculateOffset())
}

// GetTransaction gets a transaction by ID
func (u *TransactionUsecase) GetTransaction(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	return u.txRepo.GetByID(ctx, id)
}

// UpdateTransaction applies a patch to one transaction and returns its new
// state.
func (u *TransactionUsecase) UpdateTransaction(ctx context.Context, id uuid.UUID, patch *entities.TransactionPatch) (*entities.Transaction, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.BadRequest("patch carries no changes")
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domainerrors.BadRequest(fmt.Sprintf("invalid status %q", *patch.Status))
	}
	return u.txRepo.Update(ctx, id, patch)
}

// ApproveTransaction moves a pending transaction to completed.
func (u *TransactionUsecase) ApproveTransaction(ctx context.Context, id uuid.UUID, adminID uuid.UUID) (*entities.Transaction, error) {
	return u.review(ctx, id, adminID, entities.TransactionStatusCompleted, "")
}

// RejectTransaction moves a pending transaction to rejected, recording the
// reason in the admin notes.
func (u *TransactionUsecase) RejectTransaction(ctx context.Context, id uuid.UUID, adminID uuid.UUID, reason string) (*entities.Transaction, error) {
	return u.review(ctx, id, adminID, entities.TransactionStatusRejected, reason)
}

func (u *TransactionUsecase) review(ctx context.Context, id, adminID uuid.UUID, target entities.TransactionStatus, reason string) (*entities.Transaction, error) {
	current, err := u.txRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != entities.TransactionStatusPending {
		return nil, domainerrors.UnprocessableEntity(
			fmt.Sprintf("transaction is %s, only pending transactions can be reviewed", current.Status),
			domainerrors.ErrIntegrityViolation,
		)
	}

	notes := fmt.Sprintf("Reviewed by admin %s", adminID)
	if reason != "" {
		notes = fmt.Sprintf("%s: %s", notes, reason)
	}
	patch := &entities.TransactionPatch{
		Status:     &target,
		AdminNotes: &notes,
	}

	updated, err := u.txRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "transaction reviewed",
		zap.String("transaction_id", id.String()),
		zap.String("admin_id", adminID.String()),
		zap.String("status", string(target)),
	)
	return updated, nil
}
