package persistence

import (
	"context"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/inventory"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStockMovementRepository implements StockMovementRepository using GORM.
// The ledger is append-only; there are no update or delete methods.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Create appends a movement record
func (r *GormStockMovementRepository) Create(ctx context.Context, movement *inventory.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByItemForOwner lists movements for one product, newest first
func (r *GormStockMovementRepository) FindByItemForOwner(ctx context.Context, ownerID, itemID uuid.UUID, filter shared.Filter) ([]inventory.StockMovement, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&inventory.StockMovement{}).
		Where("owner_id = ? AND item_id = ?", ownerID, itemID)

	if movType, ok := filter.Filters["type"]; ok {
		base = base.Where("type = ?", movType)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Order("moved_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var movements []inventory.StockMovement
	if err := query.Find(&movements).Error; err != nil {
		return nil, 0, err
	}
	return movements, total, nil
}

// CountByTypeForOwner counts movements per type in a date range
func (r *GormStockMovementRepository) CountByTypeForOwner(ctx context.Context, ownerID uuid.UUID, start, end string) (map[inventory.MovementType]int64, error) {
	var rows []struct {
		Type  inventory.MovementType
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&inventory.StockMovement{}).
		Select("type, COUNT(*) AS count").
		Where("owner_id = ? AND moved_at >= ?::date AND moved_at < (?::date + INTERVAL '1 day')", ownerID, start, end).
		Group("type").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[inventory.MovementType]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}

// Ensure GormStockMovementRepository implements StockMovementRepository
var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)
