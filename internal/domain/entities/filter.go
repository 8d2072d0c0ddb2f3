package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserFilter is the typed representation of a user list query's constraints.
// Every field is optional; a zero value imposes no constraint. Filters are
// request-scoped and never persisted.
type UserFilter struct {
	Status           UserStatus
	Verified         *bool
	KYCStatus        KYCStatus
	RiskLevel        RiskLevel
	Country          string
	SearchTerm       string
	MinBalance       *float64
	MaxBalance       *float64
	RegisteredAfter  *time.Time
	RegisteredBefore *time.Time
}

// Validate rejects unrecognized enum literals before any storage access.
func (f *UserFilter) Validate() error {
	if f.Status != "" && !f.Status.Valid() {
		return fmt.Errorf("invalid status filter %q", f.Status)
	}
	if f.KYCStatus != "" && !f.KYCStatus.Valid() {
		return fmt.Errorf("invalid kycStatus filter %q", f.KYCStatus)
	}
	if f.RiskLevel != "" && !f.RiskLevel.Valid() {
		return fmt.Errorf("invalid riskLevel filter %q", f.RiskLevel)
	}
	if f.MinBalance != nil && f.MaxBalance != nil && *f.MinBalance > *f.MaxBalance {
		return fmt.Errorf("minBalance %v exceeds maxBalance %v", *f.MinBalance, *f.MaxBalance)
	}
	return nil
}

// TransactionFilter is the typed representation of a transaction list query's
// constraints.
type TransactionFilter struct {
	UserID *uuid.UUID
	Type   TransactionType
	Status TransactionStatus
}

// Validate rejects unrecognized enum literals before any storage access.
func (f *TransactionFilter) Validate() error {
	if f.Type != "" && !f.Type.Valid() {
		return fmt.Errorf("invalid type filter %q", f.Type)
	}
	if f.Status != "" && !f.Status.Valid() {
		return fmt.Errorf("invalid status filter %q", f.Status)
	}
	return nil
}
