package repositories

import (
	"context"

	"github.com/google/uuid"
	"trade-admin.backend/internal/domain/entities"
)

// AdminRepository defines back-office operator account operations
type AdminRepository interface {
	Create(ctx context.Context, admin *entities.AdminUser) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AdminUser, error)
	GetByEmail(ctx context.Context, email string) (*entities.AdminUser, error)
}
