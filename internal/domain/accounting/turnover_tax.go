package accounting

import (
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ZRA turnover tax parameters. The first K1,000 of monthly turnover is
// exempt; the rest is taxed at a flat 5%. Businesses stay in the turnover
// regime while annual turnover is at or below K5,000,000.
var (
	MonthlyExemption    = decimal.NewFromInt(1000)
	TurnoverTaxRate     = decimal.RequireFromString("0.05")
	AnnualTurnoverLimit = decimal.NewFromInt(5000000)
)

// ComputeTurnoverTax returns the taxable amount and tax due for one
// month's revenue. The tax due is truncated toward zero at two decimal
// places so the computed liability is never overstated.
func ComputeTurnoverTax(revenue decimal.Decimal) (taxable, taxDue decimal.Decimal) {
	taxable = revenue.Sub(MonthlyExemption)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}
	taxDue = taxable.Mul(TurnoverTaxRate).Truncate(2)
	return taxable, taxDue
}

// TurnoverTaxRecord holds the computed tax position for one month.
// One record exists per (owner, year, month); sale and work-record
// cascades re-sum the month's income and upsert it.
type TurnoverTaxRecord struct {
	shared.OwnerAggregateRoot
	Year               int             `gorm:"not null;uniqueIndex:idx_tax_owner_month,priority:2"`
	Month              int             `gorm:"not null;uniqueIndex:idx_tax_owner_month,priority:3"`
	Revenue            decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TaxableAmount      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TaxDue             decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Rate               decimal.Decimal `gorm:"type:decimal(6,4);not null"` // Rate snapshot at computation time
	ExceedsAnnualLimit bool            `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (TurnoverTaxRecord) TableName() string {
	return "turnover_tax_records"
}

// NewTurnoverTaxRecord creates a tax record for a month with zero revenue
func NewTurnoverTaxRecord(ownerID uuid.UUID, year, month int) (*TurnoverTaxRecord, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if month < 1 || month > 12 {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must be between 1 and 12")
	}
	if year < 2000 || year > 2200 {
		return nil, shared.NewDomainError("INVALID_YEAR", "Year is out of range")
	}

	return &TurnoverTaxRecord{
		OwnerAggregateRoot: shared.NewOwnerAggregateRoot(ownerID),
		Year:               year,
		Month:              month,
		Revenue:            decimal.Zero,
		TaxableAmount:      decimal.Zero,
		TaxDue:             decimal.Zero,
		Rate:               TurnoverTaxRate,
	}, nil
}

// SetRevenue replaces the month's revenue and recomputes the tax position
func (r *TurnoverTaxRecord) SetRevenue(revenue decimal.Decimal) error {
	if revenue.IsNegative() {
		return shared.NewDomainError("INVALID_REVENUE", "Revenue cannot be negative")
	}

	r.Revenue = revenue.Round(2)
	r.TaxableAmount, r.TaxDue = ComputeTurnoverTax(r.Revenue)
	r.Rate = TurnoverTaxRate
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	return nil
}

// FlagAnnualLimit marks whether cumulative annual revenue has passed the
// turnover regime's eligibility threshold
func (r *TurnoverTaxRecord) FlagAnnualLimit(annualRevenue decimal.Decimal) {
	r.ExceedsAnnualLimit = annualRevenue.GreaterThan(AnnualTurnoverLimit)
	r.UpdatedAt = time.Now()
}

// PeriodStart returns the first day of the record's month
func (r *TurnoverTaxRecord) PeriodStart() time.Time {
	return time.Date(r.Year, time.Month(r.Month), 1, 0, 0, 0, 0, time.UTC)
}

// PeriodEnd returns the last day of the record's month
func (r *TurnoverTaxRecord) PeriodEnd() time.Time {
	return r.PeriodStart().AddDate(0, 1, -1)
}
