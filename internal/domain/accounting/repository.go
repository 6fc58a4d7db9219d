package accounting

import (
	"context"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseRepository defines the interface for expense persistence
type ExpenseRepository interface {
	shared.OwnerRepository[Expense]

	// SumPaidForRange sums paid expenses with dates in [start, end]
	SumPaidForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (decimal.Decimal, error)

	// SumPaid sums all paid expenses for an owner
	SumPaid(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)

	// SumPaidByCategoryForRange sums paid expenses per category in a range
	SumPaidByCategoryForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (map[ExpenseCategory]decimal.Decimal, error)

	// DailyPaidTotalsForRange returns the per-day paid expense series
	DailyPaidTotalsForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]DailyAmount, error)
}

// AssetRepository defines the interface for asset persistence
type AssetRepository interface {
	shared.OwnerRepository[Asset]

	// SumActiveValue sums the effective value of active assets
	SumActiveValue(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)

	// CountActive counts active assets
	CountActive(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// IncomeRecordRepository defines the interface for the income projection
type IncomeRecordRepository interface {
	// Create inserts an income record
	Create(ctx context.Context, record *IncomeRecord) error

	// DeleteBySource removes the record written for a source document
	DeleteBySource(ctx context.Context, ownerID uuid.UUID, source IncomeSource, sourceID uuid.UUID) error

	// FindAllForOwner lists income records matching the filter
	FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]IncomeRecord, int64, error)

	// SumForMonth sums income for one calendar month
	SumForMonth(ctx context.Context, ownerID uuid.UUID, year, month int) (decimal.Decimal, error)

	// SumForYear sums income for one calendar year
	SumForYear(ctx context.Context, ownerID uuid.UUID, year int) (decimal.Decimal, error)

	// SumBySource sums all income from one source for an owner
	SumBySource(ctx context.Context, ownerID uuid.UUID, source IncomeSource) (decimal.Decimal, error)

	// SumBySourceForRange sums income per source in [start, end]
	SumBySourceForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (map[IncomeSource]decimal.Decimal, error)
}

// TurnoverTaxRepository defines the interface for tax record persistence
type TurnoverTaxRepository interface {
	// Save inserts or updates a tax record
	Save(ctx context.Context, record *TurnoverTaxRecord) error

	// FindByMonthForOwner finds the record for one month
	FindByMonthForOwner(ctx context.Context, ownerID uuid.UUID, year, month int) (*TurnoverTaxRecord, error)

	// FindByYearForOwner lists all records in a year, month order
	FindByYearForOwner(ctx context.Context, ownerID uuid.UUID, year int) ([]TurnoverTaxRecord, error)

	// SumTaxDue sums tax due across all months for an owner
	SumTaxDue(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error)
}

// FinancialSummaryRepository defines the interface for monthly summaries
type FinancialSummaryRepository interface {
	// Save inserts or updates one owner-month row
	Save(ctx context.Context, summary *FinancialSummary) error

	// FindByMonthForOwner finds the summary for one month
	FindByMonthForOwner(ctx context.Context, ownerID uuid.UUID, year, month int) (*FinancialSummary, error)

	// FindByYearForOwner lists all summaries in a year, month order
	FindByYearForOwner(ctx context.Context, ownerID uuid.UUID, year int) ([]FinancialSummary, error)
}

// DailyAmount is a one-day amount rollup
type DailyAmount struct {
	Day    time.Time       `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}
