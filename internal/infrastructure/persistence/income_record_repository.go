package persistence

import (
	"context"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormIncomeRecordRepository implements IncomeRecordRepository using GORM
type GormIncomeRecordRepository struct {
	db *gorm.DB
}

// NewGormIncomeRecordRepository creates a new GormIncomeRecordRepository
func NewGormIncomeRecordRepository(db *gorm.DB) *GormIncomeRecordRepository {
	return &GormIncomeRecordRepository{db: db}
}

// Create inserts an income record
func (r *GormIncomeRecordRepository) Create(ctx context.Context, record *accounting.IncomeRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// DeleteBySource removes the record written for a source document.
// Deleting a record that was never written is not an error; cancelling
// a sale twice is rejected upstream.
func (r *GormIncomeRecordRepository) DeleteBySource(ctx context.Context, ownerID uuid.UUID, source accounting.IncomeSource, sourceID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&accounting.IncomeRecord{}, "owner_id = ? AND source = ? AND source_id = ?", ownerID, source, sourceID).
		Error
}

// FindAllForOwner lists income records matching the filter, newest first
func (r *GormIncomeRecordRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]accounting.IncomeRecord, int64, error) {
	base := r.db.WithContext(ctx).
		Model(&accounting.IncomeRecord{}).
		Where("owner_id = ?", ownerID)

	for key, value := range filter.Filters {
		switch key {
		case "source":
			base = base.Where("source = ?", value)
		case "start_date":
			base = base.Where("date >= ?", value)
		case "end_date":
			base = base.Where("date <= ?", value)
		}
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := base.Order("date DESC, created_at DESC")
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var records []accounting.IncomeRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// SumForMonth sums income for one calendar month
func (r *GormIncomeRecordRepository) SumForMonth(ctx context.Context, ownerID uuid.UUID, year, month int) (decimal.Decimal, error) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return r.sumForRange(ctx, ownerID, start, end)
}

// SumForYear sums income for one calendar year
func (r *GormIncomeRecordRepository) SumForYear(ctx context.Context, ownerID uuid.UUID, year int) (decimal.Decimal, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return r.sumForRange(ctx, ownerID, start, end)
}

// SumBySource sums all income from one source for an owner
func (r *GormIncomeRecordRepository) SumBySource(ctx context.Context, ownerID uuid.UUID, source accounting.IncomeSource) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&accounting.IncomeRecord{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("owner_id = ? AND source = ?", ownerID, source).
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// SumBySourceForRange sums income per source in [start, end]
func (r *GormIncomeRecordRepository) SumBySourceForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (map[accounting.IncomeSource]decimal.Decimal, error) {
	var rows []struct {
		Source accounting.IncomeSource
		Total  decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&accounting.IncomeRecord{}).
		Select("source, COALESCE(SUM(amount), 0) AS total").
		Where("owner_id = ? AND date >= ? AND date <= ?",
			ownerID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Group("source").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[accounting.IncomeSource]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.Source] = row.Total
	}
	return totals, nil
}

func (r *GormIncomeRecordRepository) sumForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&accounting.IncomeRecord{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("owner_id = ? AND date >= ? AND date <= ?",
			ownerID, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// Ensure GormIncomeRecordRepository implements IncomeRecordRepository
var _ accounting.IncomeRecordRepository = (*GormIncomeRecordRepository)(nil)
