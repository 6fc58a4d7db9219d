package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.Expense, error) {
	var expense accounting.Expense
	if err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// FindByIDForOwner finds an expense by ID within an owner's books
func (r *GormExpenseRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*accounting.Expense, error) {
	var expense accounting.Expense
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&expense).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &expense, nil
}

// FindAll finds all expenses matching the filter
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]accounting.Expense, error) {
	var expenses []accounting.Expense
	query := r.applyFilter(r.db.WithContext(ctx).Model(&accounting.Expense{}), filter)

	if err := query.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// FindAllForOwner finds all expenses for an owner
func (r *GormExpenseRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]accounting.Expense, error) {
	var expenses []accounting.Expense
	query := r.applyFilter(r.db.WithContext(ctx).Model(&accounting.Expense{}).Where("owner_id = ?", ownerID), filter)

	if err := query.Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *accounting.Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

// Delete deletes an expense
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&accounting.Expense{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts expenses matching the filter
func (r *GormExpenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&accounting.Expense{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForOwner counts expenses for an owner
func (r *GormExpenseRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&accounting.Expense{}).Where("owner_id = ?", ownerID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumPaidForRange sums paid expenses with dates in [start, end]
func (r *GormExpenseRepository) SumPaidForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&accounting.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("owner_id = ? AND payment_status = ? AND expense_date >= ? AND expense_date <= ?",
			ownerID, accounting.PaymentStatusPaid, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// SumPaid sums all paid expenses for an owner
func (r *GormExpenseRepository) SumPaid(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&accounting.Expense{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("owner_id = ? AND payment_status = ?", ownerID, accounting.PaymentStatusPaid).
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// SumPaidByCategoryForRange sums paid expenses per category in a range
func (r *GormExpenseRepository) SumPaidByCategoryForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (map[accounting.ExpenseCategory]decimal.Decimal, error) {
	var rows []struct {
		Category accounting.ExpenseCategory
		Total    decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&accounting.Expense{}).
		Select("category, COALESCE(SUM(amount), 0) AS total").
		Where("owner_id = ? AND payment_status = ? AND expense_date >= ? AND expense_date <= ?",
			ownerID, accounting.PaymentStatusPaid, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Group("category").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	totals := make(map[accounting.ExpenseCategory]decimal.Decimal, len(rows))
	for _, row := range rows {
		totals[row.Category] = row.Total
	}
	return totals, nil
}

// DailyPaidTotalsForRange returns the per-day paid expense series
func (r *GormExpenseRepository) DailyPaidTotalsForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]accounting.DailyAmount, error) {
	var rows []accounting.DailyAmount
	if err := r.db.WithContext(ctx).
		Model(&accounting.Expense{}).
		Select("expense_date AS day, COALESCE(SUM(amount), 0) AS amount").
		Where("owner_id = ? AND payment_status = ? AND expense_date >= ? AND expense_date <= ?",
			ownerID, accounting.PaymentStatusPaid, start.Format("2006-01-02"), end.Format("2006-01-02")).
		Group("expense_date").
		Order("expense_date ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// applyFilter applies filter options to the query
func (r *GormExpenseRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("expense_date DESC, created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormExpenseRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("description ILIKE ? OR receipt_reference ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		case "recurring":
			query = query.Where("recurring = ?", value)
		case "start_date":
			query = query.Where("expense_date >= ?", value)
		case "end_date":
			query = query.Where("expense_date <= ?", value)
		}
	}

	return query
}

// Ensure GormExpenseRepository implements ExpenseRepository
var _ accounting.ExpenseRepository = (*GormExpenseRepository)(nil)
