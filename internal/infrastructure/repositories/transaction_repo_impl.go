package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"trade-admin.backend/internal/domain/entities"
	domainerrors "trade-admin.backend/internal/domain/errors"
	"trade-admin.backend/internal/infrastructure/models"
)

// TransactionRepository implements transaction data operations
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// Create creates a new transaction
func (r *TransactionRepository) Create(ctx context.Context, tx *entities.Transaction) error {
	m := toTransactionModel(tx)

	db := GetDB(ctx, r.db)
	if err := db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	tx.ID = m.ID
	return nil
}

// GetByID gets a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transaction, error) {
	db := GetDB(ctx, r.db)
	var m models.Transaction
	if err := db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toTransactionEntity(&m), nil
}

// List returns one page of transactions matching the filter plus the total
// match count. Ordering is creation time descending with the primary key as
// tie breaker for deterministic pagination.
func (r *TransactionRepository) List(ctx context.Context, filter entities.TransactionFilter, limit, offset int) ([]*entities.Transaction, int64, error) {
	db := GetDB(ctx, r.db)

	var total int64
	if err := applyTransactionFilter(db.WithContext(ctx).Model(&models.Transaction{}), filter).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var ms []models.Transaction
	if err := applyTransactionFilter(db.WithContext(ctx).Model(&models.Transaction{}), filter).
		Order("created_at DESC, id ASC").
		Limit(limit).Offset(offset).
		Find(&ms).Error; err != nil {
		return nil, 0, err
	}

	txs := make([]*entities.Transaction, 0, len(ms))
	for i := range ms {
		txs = append(txs, toTransactionEntity(&ms[i]))
	}
	return txs, total, nil
}

// Update applies a patch to one transaction and returns its new state.
// completed_at is stamped only on the transition into the completed status.
func (r *TransactionRepository) Update(ctx context.Context, id uuid.UUID, patch *entities.TransactionPatch) (*entities.Transaction, error) {
	db := GetDB(ctx, r.db)

	var current models.Transaction
	if err := db.WithContext(ctx).Where("id = ?", id).First(&current).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	now := time.Now()
	updates := map[string]interface{}{
		"updated_at": now,
	}
	if patch.Status != nil {
		updates["status"] = *patch.Status
		if *patch.Status == entities.TransactionStatusCompleted && current.CompletedAt == nil {
			updates["completed_at"] = now
		}
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.AdminNotes != nil {
		updates["admin_notes"] = *patch.AdminNotes
	}
	if patch.TxHash != nil {
		updates["tx_hash"] = *patch.TxHash
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}

	result := db.WithContext(ctx).Model(&models.Transaction{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func toTransactionEntity(m *models.Transaction) *entities.Transaction {
	return &entities.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Type:        entities.TransactionType(m.Type),
		Amount:      m.Amount,
		Currency:    m.Currency,
		Status:      entities.TransactionStatus(m.Status),
		TxHash:      null.StringFromPtr(m.TxHash),
		Address:     null.StringFromPtr(m.Address),
		Description: m.Description,
		AdminNotes:  null.StringFromPtr(m.AdminNotes),
		CreatedAt:   entities.NewTimestamp(m.CreatedAt),
		CompletedAt: entities.NewTimestampPtr(m.CompletedAt),
	}
}

func toTransactionModel(tx *entities.Transaction) *models.Transaction {
	m := &models.Transaction{
		ID:          tx.ID,
		UserID:      tx.UserID,
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Currency:    tx.Currency,
		Status:      string(tx.Status),
		TxHash:      tx.TxHash.Ptr(),
		Address:     tx.Address.Ptr(),
		Description: tx.Description,
		AdminNotes:  tx.AdminNotes.Ptr(),
		CreatedAt:   tx.CreatedAt.Time,
	}
	if tx.CompletedAt != nil {
		t := tx.CompletedAt.Time
		m.CompletedAt = &t
	}
	return m
}
