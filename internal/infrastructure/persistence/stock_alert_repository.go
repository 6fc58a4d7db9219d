package persistence

import (
	"context"
	"errors"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/inventory"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStockAlertRepository implements StockAlertRepository using GORM
type GormStockAlertRepository struct {
	db *gorm.DB
}

// NewGormStockAlertRepository creates a new GormStockAlertRepository
func NewGormStockAlertRepository(db *gorm.DB) *GormStockAlertRepository {
	return &GormStockAlertRepository{db: db}
}

// Save creates or updates an alert
func (r *GormStockAlertRepository) Save(ctx context.Context, alert *inventory.StockAlert) error {
	return r.db.WithContext(ctx).Save(alert).Error
}

// FindOpenByItemForOwner finds the open alert of a given type for an item
func (r *GormStockAlertRepository) FindOpenByItemForOwner(ctx context.Context, ownerID, itemID uuid.UUID, alertType inventory.AlertType) (*inventory.StockAlert, error) {
	var alert inventory.StockAlert
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND item_id = ? AND type = ? AND status <> ?",
			ownerID, itemID, alertType, inventory.AlertStatusResolved).
		First(&alert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &alert, nil
}

// FindByIDForOwner finds an alert by ID
func (r *GormStockAlertRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*inventory.StockAlert, error) {
	var alert inventory.StockAlert
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&alert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &alert, nil
}

// FindAllForOwner lists alerts for an owner, newest first
func (r *GormStockAlertRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]inventory.StockAlert, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&inventory.StockAlert{}).
		Where("owner_id = ?", ownerID)

	for key, value := range filter.Filters {
		switch key {
		case "status":
			base = base.Where("status = ?", value)
		case "type":
			base = base.Where("type = ?", value)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Order("created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var alerts []inventory.StockAlert
	if err := query.Find(&alerts).Error; err != nil {
		return nil, 0, err
	}
	return alerts, total, nil
}

// CountOpenForOwner counts unresolved alerts per type
func (r *GormStockAlertRepository) CountOpenForOwner(ctx context.Context, ownerID uuid.UUID) (map[inventory.AlertType]int64, error) {
	var rows []struct {
		Type  inventory.AlertType
		Count int64
	}
	if err := r.db.WithContext(ctx).
		Model(&inventory.StockAlert{}).
		Select("type, COUNT(*) AS count").
		Where("owner_id = ? AND status <> ?", ownerID, inventory.AlertStatusResolved).
		Group("type").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(map[inventory.AlertType]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}

// Ensure GormStockAlertRepository implements StockAlertRepository
var _ inventory.StockAlertRepository = (*GormStockAlertRepository)(nil)
