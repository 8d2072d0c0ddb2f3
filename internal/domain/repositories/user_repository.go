package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"trade-admin.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	// List returns one page of users matching the filter plus the total
	// match count across all pages.
	List(ctx context.Context, filter entities.UserFilter, limit, offset int) ([]*entities.User, int64, error)
	Update(ctx context.Context, id uuid.UUID, patch *entities.UserPatch) (*entities.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	BulkUpdateStatus(ctx context.Context, ids []uuid.UUID, status entities.UserStatus) (int64, error)
	BulkSetVerified(ctx context.Context, ids []uuid.UUID, verified bool) (int64, error)
	// AddBalance applies a signed delta to the user's balance.
	AddBalance(ctx context.Context, id uuid.UUID, delta float64) error
	Stats(ctx context.Context, now time.Time) (*entities.UserStats, error)
	CountryStats(ctx context.Context) ([]entities.CountryCount, error)
	// RegistrationSeries returns per-day registration counts since the given
	// time; days without registrations are absent from the result.
	RegistrationSeries(ctx context.Context, since time.Time) ([]entities.RegistrationPoint, error)
}
