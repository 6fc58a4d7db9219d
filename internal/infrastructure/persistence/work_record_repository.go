package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/workforce"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormWorkRecordRepository implements WorkRecordRepository using GORM
type GormWorkRecordRepository struct {
	db *gorm.DB
}

// NewGormWorkRecordRepository creates a new GormWorkRecordRepository
func NewGormWorkRecordRepository(db *gorm.DB) *GormWorkRecordRepository {
	return &GormWorkRecordRepository{db: db}
}

// Create inserts a work record
func (r *GormWorkRecordRepository) Create(ctx context.Context, record *workforce.WorkRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// Update updates a work record
func (r *GormWorkRecordRepository) Update(ctx context.Context, record *workforce.WorkRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// Delete removes a work record
func (r *GormWorkRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&workforce.WorkRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByIDForOwner finds a record by ID
func (r *GormWorkRecordRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*workforce.WorkRecord, error) {
	var record workforce.WorkRecord
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindAllForOwner lists records matching the filter, newest work first
func (r *GormWorkRecordRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]workforce.WorkRecord, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&workforce.WorkRecord{}).
		Where("owner_id = ?", ownerID)

	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		base = base.Where("service_name ILIKE ? OR customer_name ILIKE ?", searchPattern, searchPattern)
	}
	for key, value := range filter.Filters {
		switch key {
		case "worker_id":
			base = base.Where("worker_id = ?", value)
		case "payment_status":
			base = base.Where("payment_status = ?", value)
		case "start_date":
			base = base.Where("work_date >= ?", value)
		case "end_date":
			base = base.Where("work_date <= ?", value)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Order("work_date DESC, created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var records []workforce.WorkRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// SumPaidForRange sums paid record amounts with work dates in [start, end]
func (r *GormWorkRecordRepository) SumPaidForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&workforce.WorkRecord{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("owner_id = ? AND payment_status = ? AND work_date >= ? AND work_date <= ?",
			ownerID, workforce.PaymentStatusPaid, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// Ensure GormWorkRecordRepository implements WorkRecordRepository
var _ workforce.WorkRecordRepository = (*GormWorkRecordRepository)(nil)
