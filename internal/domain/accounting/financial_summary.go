package accounting

import (
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FinancialSummary is one calendar month's financial position for a
// business: unique per (owner, year, month), rebuilt from the ledgers
// inside every sale, work-record, expense and asset transaction that
// touches the month, so it is always consistent with them.
type FinancialSummary struct {
	shared.OwnerAggregateRoot
	Year            int             `gorm:"not null;uniqueIndex:idx_summary_owner_month,priority:2"`
	Month           int             `gorm:"not null;uniqueIndex:idx_summary_owner_month,priority:3"`
	SalesRevenue    decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ServiceRevenue  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TotalIncome     decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TotalExpenses   decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"` // Paid expenses only
	NetProfit       decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	TotalAssetValue decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"` // Active assets only
	TaxDue          decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	ComputedAt      time.Time       `gorm:"type:timestamptz;not null"`
}

// TableName returns the table name for GORM
func (FinancialSummary) TableName() string {
	return "financial_summaries"
}

// NewFinancialSummary creates an empty summary for one owner-month
func NewFinancialSummary(ownerID uuid.UUID, year, month int) (*FinancialSummary, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if year < 2000 || year > 2100 {
		return nil, shared.NewDomainError("INVALID_YEAR", "Year is out of range")
	}
	if month < 1 || month > 12 {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must be between 1 and 12")
	}

	return &FinancialSummary{
		OwnerAggregateRoot: shared.NewOwnerAggregateRoot(ownerID),
		Year:               year,
		Month:              month,
		SalesRevenue:       decimal.Zero,
		ServiceRevenue:     decimal.Zero,
		TotalIncome:        decimal.Zero,
		TotalExpenses:      decimal.Zero,
		NetProfit:          decimal.Zero,
		TotalAssetValue:    decimal.Zero,
		TaxDue:             decimal.Zero,
		ComputedAt:         time.Now(),
	}, nil
}

// SummaryInput carries the ledger sums a rebuild is computed from
type SummaryInput struct {
	SalesRevenue   decimal.Decimal
	ServiceRevenue decimal.Decimal
	PaidExpenses   decimal.Decimal
	ActiveAssets   decimal.Decimal
	TaxDue         decimal.Decimal
}

// Rebuild replaces the month's figures with freshly computed ledger sums
func (s *FinancialSummary) Rebuild(in SummaryInput) {
	s.SalesRevenue = in.SalesRevenue.Round(2)
	s.ServiceRevenue = in.ServiceRevenue.Round(2)
	s.TotalIncome = s.SalesRevenue.Add(s.ServiceRevenue)
	s.TotalExpenses = in.PaidExpenses.Round(2)
	s.NetProfit = s.TotalIncome.Sub(s.TotalExpenses)
	s.TotalAssetValue = in.ActiveAssets.Round(2)
	s.TaxDue = in.TaxDue.Round(2)
	s.ComputedAt = time.Now()
	s.UpdatedAt = s.ComputedAt
	s.IncrementVersion()
}
