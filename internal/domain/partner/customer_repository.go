package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/shared"
)

// CustomerRepository defines persistence operations for the Customer aggregate
type CustomerRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByIDForUpdate loads a customer and acquires a row-level write lock
	// for the duration of the surrounding transaction. Concurrent callers
	// against the same customer serialize on this lock; callers against
	// different customers proceed in parallel. Must be invoked inside a
	// transaction scope.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*Customer, error)

	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, int64, error)
	Save(ctx context.Context, customer *Customer) error

	// SaveWithLock saves a customer with optimistic locking (version check).
	// Returns a domain error if the version has changed concurrently.
	SaveWithLock(ctx context.Context, customer *Customer) error

	Delete(ctx context.Context, id uuid.UUID) error
}
