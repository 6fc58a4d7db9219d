package persistence

import (
	"context"
	"errors"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormTurnoverTaxRepository implements TurnoverTaxRepository using GORM
type GormTurnoverTaxRepository struct {
	db *gorm.DB
}

// NewGormTurnoverTaxRepository creates a new GormTurnoverTaxRepository
func NewGormTurnoverTaxRepository(db *gorm.DB) *GormTurnoverTaxRepository {
	return &GormTurnoverTaxRepository{db: db}
}

// Save creates or updates a tax record
func (r *GormTurnoverTaxRepository) Save(ctx context.Context, record *accounting.TurnoverTaxRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// FindByMonthForOwner finds the record for one month
func (r *GormTurnoverTaxRepository) FindByMonthForOwner(ctx context.Context, ownerID uuid.UUID, year, month int) (*accounting.TurnoverTaxRecord, error) {
	var record accounting.TurnoverTaxRecord
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND year = ? AND month = ?", ownerID, year, month).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByYearForOwner lists all records in a year, month order
func (r *GormTurnoverTaxRepository) FindByYearForOwner(ctx context.Context, ownerID uuid.UUID, year int) ([]accounting.TurnoverTaxRecord, error) {
	var records []accounting.TurnoverTaxRecord
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND year = ?", ownerID, year).
		Order("month ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// SumTaxDue sums tax due across all months for an owner
func (r *GormTurnoverTaxRepository) SumTaxDue(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&accounting.TurnoverTaxRecord{}).
		Select("COALESCE(SUM(tax_due), 0) AS total").
		Where("owner_id = ?", ownerID).
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// Ensure GormTurnoverTaxRepository implements TurnoverTaxRepository
var _ accounting.TurnoverTaxRepository = (*GormTurnoverTaxRepository)(nil)
