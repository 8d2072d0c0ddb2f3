package models

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Type        string    `gorm:"type:varchar(20);not null;index"`
	Amount      float64   `gorm:"type:decimal(15,2);not null"`
	Currency    string    `gorm:"type:varchar(10);not null;default:'USD'"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	TxHash      *string   `gorm:"type:varchar(255)"`
	Address     *string   `gorm:"type:varchar(255)"`
	Description string    `gorm:"type:text;not null"`
	AdminNotes  *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null;index"`
	CompletedAt *time.Time
	UpdatedAt   time.Time
}
