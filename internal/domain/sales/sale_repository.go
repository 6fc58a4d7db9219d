package sales

import (
	"context"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// Create inserts a sale with its lines
	Create(ctx context.Context, sale *Sale) error

	// Update updates a sale header (status, customer details)
	Update(ctx context.Context, sale *Sale) error

	// FindByIDForOwner finds a sale with its lines
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*Sale, error)

	// FindAllForOwner lists sales matching the filter, with lines
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]Sale, int64, error)

	// NextSequenceForDay returns the next per-day sale sequence number.
	// Must be called inside the recording transaction so two concurrent
	// sales cannot draw the same number.
	NextSequenceForDay(ctx context.Context, ownerID uuid.UUID, day time.Time) (int, error)

	// SumCompletedForRange sums completed sale totals in [start, end]
	SumCompletedForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// CountCompletedForRange counts completed sales in [start, end]
	CountCompletedForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (int64, error)

	// CountCompletedForOwner counts all completed sales for an owner
	CountCompletedForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// TopItemsForRange aggregates completed sale lines per item in a range
	TopItemsForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time, limit int) ([]ItemAggregate, error)

	// DailyTotalsForRange returns the per-day revenue series in a range
	DailyTotalsForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]DailyTotal, error)
}

// ItemAggregate is a per-item sales rollup
type ItemAggregate struct {
	ItemID   uuid.UUID       `json:"item_id"`
	ItemName string          `json:"item_name"`
	Quantity decimal.Decimal `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// DailyTotal is a one-day revenue rollup
type DailyTotal struct {
	Day     time.Time       `json:"day"`
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}
