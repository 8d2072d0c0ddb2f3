package repositories

import (
	"context"
)

// UnitOfWork defines the interface for atomic operations
type UnitOfWork interface {
	// Do executes the given function within a transaction scope. All
	// repository calls made with the passed context share one transaction;
	// it commits when fn returns nil and rolls back otherwise.
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
