package repositories

import (
	"strings"

	"gorm.io/gorm"
	"trade-admin.backend/internal/domain/entities"
)

// applyUserFilter composes the conjunction of predicates implied by the
// non-empty filter fields onto the query. Every value is passed as a bound
// parameter. The same predicate set is shared by the count query and the
// page query of a list operation.
func applyUserFilter(q *gorm.DB, f entities.UserFilter) *gorm.DB {
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Verified != nil {
		q = q.Where("verified = ?", *f.Verified)
	}
	if f.KYCStatus != "" {
		q = q.Where("kyc_status = ?", f.KYCStatus)
	}
	if f.RiskLevel != "" {
		q = q.Where("risk_level = ?", f.RiskLevel)
	}
	if f.Country != "" {
		q = q.Where("LOWER(country) LIKE ?", containsPattern(f.Country))
	}
	if f.SearchTerm != "" {
		term := containsPattern(f.SearchTerm)
		q = q.Where(
			"LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(CAST(id AS TEXT)) LIKE ?",
			term, term, term,
		)
	}
	if f.MinBalance != nil {
		q = q.Where("balance >= ?", *f.MinBalance)
	}
	if f.MaxBalance != nil {
		q = q.Where("balance <= ?", *f.MaxBalance)
	}
	if f.RegisteredAfter != nil {
		q = q.Where("registered_at >= ?", *f.RegisteredAfter)
	}
	if f.RegisteredBefore != nil {
		q = q.Where("registered_at <= ?", *f.RegisteredBefore)
	}
	return q
}

// applyTransactionFilter composes the transaction list predicates.
func applyTransactionFilter(q *gorm.DB, f entities.TransactionFilter) *gorm.DB {
	if f.UserID != nil {
		q = q.Where("user_id = ?", *f.UserID)
	}
	if f.Type != "" {
		q = q.Where("type = ?", f.Type)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	return q
}

// containsPattern builds the case-insensitive substring LIKE pattern. The
// term travels as a bound parameter, never interpolated into the predicate.
func containsPattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
