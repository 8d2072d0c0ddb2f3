package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	AdminID   *uuid.UUID `gorm:"type:uuid"`
	Message   string     `gorm:"type:text;not null"`
	IsAdmin   bool       `gorm:"not null;default:false"`
	CreatedAt time.Time  `gorm:"not null;index"`
}
