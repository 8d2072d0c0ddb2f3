package entities

import (
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// TransactionType represents the kind of money movement
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"
	TransactionTypeTrade      TransactionType = "trade"
	TransactionTypeBonus      TransactionType = "bonus"
	TransactionTypeFee        TransactionType = "fee"
)

// Valid reports whether the value is a recognized transaction type.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDeposit, TransactionTypeWithdrawal, TransactionTypeTrade,
		TransactionTypeBonus, TransactionTypeFee:
		return true
	}
	return false
}

// TransactionStatus represents the processing state of a transaction
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusFailed    TransactionStatus = "failed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
	TransactionStatusRejected  TransactionStatus = "rejected"
)

// Valid reports whether the value is a recognized transaction status.
func (s TransactionStatus) Valid() bool {
	switch s {
	case TransactionStatusPending, TransactionStatusCompleted, TransactionStatusFailed,
		TransactionStatusCancelled, TransactionStatusRejected:
		return true
	}
	return false
}

// Transaction represents a ledger entry for a user account
type Transaction struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"userId"`
	Type        TransactionType   `json:"type"`
	Amount      float64           `json:"amount"`
	Currency    string            `json:"currency"`
	Status      TransactionStatus `json:"status"`
	TxHash      null.String       `json:"txHash,omitempty"`
	Address     null.String       `json:"address,omitempty"`
	Description string            `json:"description"`
	AdminNotes  null.String       `json:"adminNotes,omitempty"`
	CreatedAt   Timestamp         `json:"createdAt"`
	CompletedAt *Timestamp        `json:"completedAt,omitempty"`
}

// TransactionPatch enumerates the mutable fields of a transaction.
type TransactionPatch struct {
	Status      *TransactionStatus `json:"status"`
	Description *string            `json:"description"`
	AdminNotes  *string            `json:"adminNotes"`
	TxHash      *string            `json:"txHash"`
	Address     *string            `json:"address"`
}

// IsEmpty reports whether the patch carries no changes.
func (p *TransactionPatch) IsEmpty() bool {
	return p.Status == nil && p.Description == nil && p.AdminNotes == nil &&
		p.TxHash == nil && p.Address == nil
}
