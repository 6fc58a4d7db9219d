package inventory

import (
	"context"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
)

// StockLevelRepository defines the interface for stock level persistence
type StockLevelRepository interface {
	// Save inserts or updates a stock level
	Save(ctx context.Context, level *StockLevel) error

	// FindByItemForOwner finds the stock row for a product
	FindByItemForOwner(ctx context.Context, ownerID, itemID uuid.UUID) (*StockLevel, error)

	// FindByItemForOwnerLocked finds the stock row and takes a row-level
	// write lock; must run inside a transaction
	FindByItemForOwnerLocked(ctx context.Context, ownerID, itemID uuid.UUID) (*StockLevel, error)

	// FindAllForOwner lists stock levels for an owner
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]StockLevel, error)

	// CountForOwner counts stock levels matching the filter
	CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error)
}

// StockMovementRepository defines the interface for the movement ledger.
// Movements are append-only; there are no update or delete operations.
type StockMovementRepository interface {
	// Create appends a movement record
	Create(ctx context.Context, movement *StockMovement) error

	// FindByItemForOwner lists movements for one product, newest first
	FindByItemForOwner(ctx context.Context, ownerID, itemID uuid.UUID, filter shared.Filter) ([]StockMovement, int64, error)

	// CountByTypeForOwner counts movements per type in a date range
	CountByTypeForOwner(ctx context.Context, ownerID uuid.UUID, start, end string) (map[MovementType]int64, error)
}

// StockAlertRepository defines the interface for stock alert persistence
type StockAlertRepository interface {
	// Save inserts or updates an alert
	Save(ctx context.Context, alert *StockAlert) error

	// FindOpenByItemForOwner finds the open alert of a given type for an item
	FindOpenByItemForOwner(ctx context.Context, ownerID, itemID uuid.UUID, alertType AlertType) (*StockAlert, error)

	// FindByIDForOwner finds an alert by ID
	FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*StockAlert, error)

	// FindAllForOwner lists alerts for an owner
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]StockAlert, int64, error)

	// CountOpenForOwner counts unresolved alerts per type
	CountOpenForOwner(ctx context.Context, ownerID uuid.UUID) (map[AlertType]int64, error)
}
