package workforce

import (
	"context"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WorkerRepository defines the interface for worker persistence
type WorkerRepository interface {
	shared.OwnerRepository[Worker]
}

// WorkRecordRepository defines the interface for work record persistence
type WorkRecordRepository interface {
	// Create inserts a work record
	Create(ctx context.Context, record *WorkRecord) error

	// Update updates a work record
	Update(ctx context.Context, record *WorkRecord) error

	// Delete removes a work record (pending records only; enforced above)
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByIDForOwner finds a record by ID
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*WorkRecord, error)

	// FindAllForOwner lists records matching the filter
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]WorkRecord, int64, error)

	// SumPaidForRange sums paid record amounts with work dates in [start, end]
	SumPaidForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (decimal.Decimal, error)
}
