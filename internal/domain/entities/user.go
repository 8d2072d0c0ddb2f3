package entities

import (
	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserStatus represents account states
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusInactive  UserStatus = "inactive"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusPending   UserStatus = "pending"
)

// Valid reports whether the value is a recognized account status.
func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended, UserStatusPending:
		return true
	}
	return false
}

// KYCStatus represents KYC verification status
type KYCStatus string

const (
	KYCStatusPending      KYCStatus = "pending"
	KYCStatusApproved     KYCStatus = "approved"
	KYCStatusRejected     KYCStatus = "rejected"
	KYCStatusNotSubmitted KYCStatus = "not_submitted"
)

// Valid reports whether the value is a recognized KYC status.
func (s KYCStatus) Valid() bool {
	switch s {
	case KYCStatusPending, KYCStatusApproved, KYCStatusRejected, KYCStatusNotSubmitted:
		return true
	}
	return false
}

// RiskLevel represents the compliance risk classification of a user
type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// Valid reports whether the value is a recognized risk level.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLevelLow, RiskLevelMedium, RiskLevelHigh:
		return true
	}
	return false
}

// KycDocumentType represents accepted identity document kinds
type KycDocumentType string

const (
	KycDocumentPassport       KycDocumentType = "passport"
	KycDocumentDriversLicense KycDocumentType = "drivers_license"
	KycDocumentNationalID     KycDocumentType = "national_id"
)

// KycDocument represents an uploaded identity document
type KycDocument struct {
	ID         uuid.UUID       `json:"id"`
	Type       KycDocumentType `json:"type"`
	URL        string          `json:"url"`
	UploadedAt Timestamp       `json:"uploadedAt"`
}

// User represents a trading-platform customer account
type User struct {
	ID             uuid.UUID     `json:"id"`
	Email          string        `json:"email"`
	FullName       string        `json:"fullName"`
	Phone          null.String   `json:"phone,omitempty"`
	Country        string        `json:"country"`
	Status         UserStatus    `json:"status"`
	Verified       bool          `json:"verified"`
	Balance        float64       `json:"balance"`
	TotalDeposited float64       `json:"totalDeposited"`
	TotalWithdrawn float64       `json:"totalWithdrawn"`
	TotalProfit    float64       `json:"totalProfit"`
	TotalTrades    int           `json:"totalTrades"`
	WinRate        float64       `json:"winRate"`
	LastLogin      *Timestamp    `json:"lastLogin,omitempty"`
	RegisteredAt   Timestamp     `json:"registeredAt"`
	ReferralCode   string        `json:"referralCode"`
	ReferredBy     null.String   `json:"referredBy,omitempty"`
	KYCStatus      KYCStatus     `json:"kycStatus"`
	KYCDocuments   []KycDocument `json:"kycDocuments"`
	Notes          null.String   `json:"notes,omitempty"`
	RiskLevel      RiskLevel     `json:"riskLevel"`
	Tags           []string      `json:"tags"`
}

// CreateUserInput represents input for creating a user account
type CreateUserInput struct {
	Email      string     `json:"email" binding:"required,email"`
	FullName   string     `json:"fullName" binding:"required,min=2,max=255"`
	Phone      string     `json:"phone"`
	Country    string     `json:"country" binding:"required"`
	Status     UserStatus `json:"status"`
	Verified   bool       `json:"verified"`
	Balance    float64    `json:"balance" binding:"gte=0"`
	ReferredBy string     `json:"referredBy"`
	RiskLevel  RiskLevel  `json:"riskLevel"`
	Notes      string     `json:"notes"`
	Tags       []string   `json:"tags"`
}

// UserPatch enumerates the mutable fields of a user account. Identity and
// provenance fields (id, registeredAt, referralCode) are deliberately not
// representable here.
type UserPatch struct {
	Email     *string     `json:"email"`
	FullName  *string     `json:"fullName"`
	Phone     *string     `json:"phone"`
	Country   *string     `json:"country"`
	Status    *UserStatus `json:"status"`
	Verified  *bool       `json:"verified"`
	KYCStatus *KYCStatus  `json:"kycStatus"`
	RiskLevel *RiskLevel  `json:"riskLevel"`
	Notes     *string     `json:"notes"`
	Tags      *[]string   `json:"tags"`
}

// IsEmpty reports whether the patch carries no changes.
func (p *UserPatch) IsEmpty() bool {
	return p.Email == nil && p.FullName == nil && p.Phone == nil &&
		p.Country == nil && p.Status == nil && p.Verified == nil &&
		p.KYCStatus == nil && p.RiskLevel == nil && p.Notes == nil && p.Tags == nil
}

// BalanceDirection is the sign of a manual balance adjustment
type BalanceDirection string

const (
	BalanceAdd      BalanceDirection = "add"
	BalanceSubtract BalanceDirection = "subtract"
)

// BalanceAdjustmentInput represents a manual balance adjustment request
type BalanceAdjustmentInput struct {
	Amount    float64          `json:"amount"`
	Direction BalanceDirection `json:"direction"`
	Reason    string           `json:"reason"`
}

// UserStats holds the dashboard aggregate figures
type UserStats struct {
	TotalUsers           int64   `json:"totalUsers"`
	ActiveUsers          int64   `json:"activeUsers"`
	NewUsersToday        int64   `json:"newUsersToday"`
	TotalBalance         float64 `json:"totalBalance"`
	TotalDeposits        float64 `json:"totalDeposits"`
	TotalWithdrawals     float64 `json:"totalWithdrawals"`
	PendingVerifications int64   `json:"pendingVerifications"`
	SuspendedUsers       int64   `json:"suspendedUsers"`
}

// CountryCount is one row of the users-per-country analytics view
type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// RegistrationPoint is one day of the registration chart
type RegistrationPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}
