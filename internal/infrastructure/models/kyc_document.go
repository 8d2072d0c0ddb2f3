package models

import (
	"time"

	"github.com/google/uuid"
)

type KycDocument struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Type       string    `gorm:"type:varchar(30);not null"`
	URL        string    `gorm:"type:varchar(500);not null"`
	UploadedAt time.Time `gorm:"not null"`
}
