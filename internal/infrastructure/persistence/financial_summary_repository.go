package persistence

import (
	"context"
	"errors"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormFinancialSummaryRepository implements FinancialSummaryRepository using GORM
type GormFinancialSummaryRepository struct {
	db *gorm.DB
}

// NewGormFinancialSummaryRepository creates a new GormFinancialSummaryRepository
func NewGormFinancialSummaryRepository(db *gorm.DB) *GormFinancialSummaryRepository {
	return &GormFinancialSummaryRepository{db: db}
}

// Save creates or updates one owner-month summary row
func (r *GormFinancialSummaryRepository) Save(ctx context.Context, summary *accounting.FinancialSummary) error {
	return r.db.WithContext(ctx).Save(summary).Error
}

// FindByMonthForOwner finds the summary for one month
func (r *GormFinancialSummaryRepository) FindByMonthForOwner(ctx context.Context, ownerID uuid.UUID, year, month int) (*accounting.FinancialSummary, error) {
	var summary accounting.FinancialSummary
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND year = ? AND month = ?", ownerID, year, month).
		First(&summary).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &summary, nil
}

// FindByYearForOwner lists all summaries in a year, month order
func (r *GormFinancialSummaryRepository) FindByYearForOwner(ctx context.Context, ownerID uuid.UUID, year int) ([]accounting.FinancialSummary, error) {
	var summaries []accounting.FinancialSummary
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND year = ?", ownerID, year).
		Order("month ASC").
		Find(&summaries).Error; err != nil {
		return nil, err
	}
	return summaries, nil
}

// Ensure GormFinancialSummaryRepository implements FinancialSummaryRepository
var _ accounting.FinancialSummaryRepository = (*GormFinancialSummaryRepository)(nil)
