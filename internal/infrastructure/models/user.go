package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash   string    `gorm:"type:varchar(255)"`
	FullName       string    `gorm:"type:varchar(255);not null"`
	Phone          *string   `gorm:"type:varchar(50)"`
	Country        string    `gorm:"type:varchar(100);not null;index"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	Verified       bool      `gorm:"not null;default:false"`
	Balance        float64   `gorm:"type:decimal(15,2);not null;default:0"`
	TotalDeposited float64   `gorm:"type:decimal(15,2);not null;default:0"`
	TotalWithdrawn float64   `gorm:"type:decimal(15,2);not null;default:0"`
	TotalProfit    float64   `gorm:"type:decimal(15,2);not null;default:0"`
	TotalTrades    int       `gorm:"not null;default:0"`
	WinRate        float64   `gorm:"type:decimal(5,2);not null;default:0"`
	LastLogin      *time.Time
	RegisteredAt   time.Time `gorm:"not null;index"`
	ReferralCode   string    `gorm:"type:varchar(20);uniqueIndex;not null"`
	ReferredBy     *string   `gorm:"type:varchar(50)"`
	KYCStatus      string    `gorm:"type:varchar(20);not null;default:'not_submitted';index"`
	Notes          *string   `gorm:"type:text"`
	RiskLevel      string    `gorm:"type:varchar(10);not null;default:'low'"`
	Tags           *string   `gorm:"type:text"` // JSON-encoded string list
	CreatedAt      time.Time
	UpdatedAt      time.Time

	KYCDocuments []KycDocument `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Transactions []Transaction `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ChatMessages []ChatMessage `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
