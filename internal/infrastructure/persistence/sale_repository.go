package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/sales"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// Create inserts a sale with its lines
func (r *GormSaleRepository) Create(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

// Update updates a sale header without touching its lines
func (r *GormSaleRepository) Update(ctx context.Context, sale *sales.Sale) error {
	return r.db.WithContext(ctx).Omit("Items").Save(sale).Error
}

// FindByIDForOwner finds a sale with its lines
func (r *GormSaleRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*sales.Sale, error) {
	var sale sales.Sale
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&sale).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &sale, nil
}

// FindAllForOwner lists sales matching the filter, with lines
func (r *GormSaleRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]sales.Sale, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&sales.Sale{}).
		Where("owner_id = ?", ownerID)

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		base = base.Where("sale_number ILIKE ? OR customer_name ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "status":
			base = base.Where("status = ?", value)
		case "payment_method":
			base = base.Where("payment_method = ?", value)
		case "start_date":
			base = base.Where("sale_date >= ?", value)
		case "end_date":
			base = base.Where("sale_date <= ?", value)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Preload("Items").Order("sale_date DESC, sale_number DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var result []sales.Sale
	if err := query.Find(&result).Error; err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// NextSequenceForDay returns the next per-day sale sequence number.
// An advisory transaction lock on (owner, day) serializes concurrent
// callers; the unique sale number index is the backstop.
func (r *GormSaleRepository) NextSequenceForDay(ctx context.Context, ownerID uuid.UUID, day time.Time) (int, error) {
	lockKey := fmt.Sprintf("sale-seq:%s:%s", ownerID, day.Format("2006-01-02"))
	if err := r.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", lockKey).Error; err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sales.Sale{}).
		Where("owner_id = ? AND sale_date = ?", ownerID, day.Format("2006-01-02")).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return int(count) + 1, nil
}

// SumCompletedForRange sums completed sale totals in [start, end]
func (r *GormSaleRepository) SumCompletedForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&sales.Sale{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("owner_id = ? AND status = ? AND sale_date >= ? AND sale_date <= ?",
			ownerID, sales.SaleStatusCompleted, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// CountCompletedForRange counts completed sales in [start, end]
func (r *GormSaleRepository) CountCompletedForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sales.Sale{}).
		Where("owner_id = ? AND status = ? AND sale_date >= ? AND sale_date <= ?",
			ownerID, sales.SaleStatusCompleted, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountCompletedForOwner counts all completed sales for an owner
func (r *GormSaleRepository) CountCompletedForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sales.Sale{}).
		Where("owner_id = ? AND status = ?", ownerID, sales.SaleStatusCompleted).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// TopItemsForRange aggregates completed sale lines per item in a range
func (r *GormSaleRepository) TopItemsForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time, limit int) ([]sales.ItemAggregate, error) {
	var rows []sales.ItemAggregate
	if err := r.db.WithContext(ctx).
		Table("sale_items").
		Select("sale_items.item_id, sale_items.item_name, SUM(sale_items.quantity) AS quantity, SUM(sale_items.line_total) AS revenue").
		Joins("JOIN sales ON sales.id = sale_items.sale_id").
		Where("sale_items.owner_id = ? AND sales.status = ? AND sales.sale_date >= ? AND sales.sale_date <= ?",
			ownerID, sales.SaleStatusCompleted, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Group("sale_items.item_id, sale_items.item_name").
		Order("revenue DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// DailyTotalsForRange returns the per-day revenue series in a range
func (r *GormSaleRepository) DailyTotalsForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]sales.DailyTotal, error) {
	var rows []sales.DailyTotal
	if err := r.db.WithContext(ctx).
		Model(&sales.Sale{}).
		Select("sale_date AS day, COUNT(*) AS count, COALESCE(SUM(total), 0) AS revenue").
		Where("owner_id = ? AND status = ? AND sale_date >= ? AND sale_date <= ?",
			ownerID, sales.SaleStatusCompleted, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Group("sale_date").
		Order("sale_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Ensure GormSaleRepository implements SaleRepository
var _ sales.SaleRepository = (*GormSaleRepository)(nil)
