package catalog

import (
	"context"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
)

// ItemRepository defines the interface for catalog item persistence.
// All lookups are owner-scoped; a miss for another owner's item reads
// exactly like a miss for a nonexistent one.
type ItemRepository interface {
	shared.OwnerRepository[Item]

	// FindByNameForOwner finds an item by exact name and kind
	FindByNameForOwner(ctx context.Context, ownerID uuid.UUID, kind ItemKind, name string) (*Item, error)

	// FindBySKUForOwner finds a product by SKU
	FindBySKUForOwner(ctx context.Context, ownerID uuid.UUID, sku string) (*Item, error)

	// ExistsByNameForOwner checks name uniqueness within (owner, kind)
	ExistsByNameForOwner(ctx context.Context, ownerID uuid.UUID, kind ItemKind, name string) (bool, error)
}
