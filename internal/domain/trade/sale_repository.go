package trade

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/shared"
)

// SaleRepository defines persistence operations for the Sale aggregate.
// Sales are append-only: there is no update or delete.
type SaleRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, int64, error)
	FindByPeriod(ctx context.Context, from, to time.Time) ([]Sale, error)
	Create(ctx context.Context, sale *Sale) error
}
