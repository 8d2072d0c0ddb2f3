package repositories

import (
	"context"

	"github.com/google/uuid"
	"trade-admin.backend/internal/domain/entities"
)

// TransactionRepository defines transaction data operations
type TransactionRepository interface {
	Create(ctx context.Context, tx *entities.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error)
	// List returns one page of transactions matching the filter plus the
	// total match count across all pages.
	List(ctx context.Context, filter entities.TransactionFilter, limit, offset int) ([]*entities.Transaction, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch *entities.TransactionPatch) (*entities.Transaction, error)
}
