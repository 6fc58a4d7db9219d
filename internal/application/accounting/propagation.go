package accounting

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/application/unitofwork"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
)

// ResyncMonthlyTax re-sums recorded income for the month containing date and
// upserts the owner's turnover tax record for that month. Called from inside
// the sale and work record cascades, after the income projection changed.
func ResyncMonthlyTax(ctx context.Context, repos unitofwork.Repositories, ownerID uuid.UUID, date time.Time) error {
	year, month := date.Year(), int(date.Month())

	revenue, err := repos.Income().SumForMonth(ctx, ownerID, year, month)
	if err != nil {
		return err
	}

	record, err := repos.Tax().FindByMonthForOwner(ctx, ownerID, year, month)
	if err != nil {
		if err != shared.ErrNotFound {
			return err
		}
		record, err = accounting.NewTurnoverTaxRecord(ownerID, year, month)
		if err != nil {
			return err
		}
	}
	if err := record.SetRevenue(revenue); err != nil {
		return err
	}

	annual, err := repos.Income().SumForYear(ctx, ownerID, year)
	if err != nil {
		return err
	}
	record.FlagAnnualLimit(annual)

	return repos.Tax().Save(ctx, record)
}

// RebuildSummary recomputes the monthly summary for the month containing
// date and upserts the (owner, year, month) row. Every figure is re-derived
// from the ledgers; nothing is incremented in place.
func RebuildSummary(ctx context.Context, repos unitofwork.Repositories, ownerID uuid.UUID, date time.Time) error {
	year, month := date.Year(), int(date.Month())
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	bySource, err := repos.Income().SumBySourceForRange(ctx, ownerID, start, end)
	if err != nil {
		return err
	}
	paidExpenses, err := repos.Expenses().SumPaidForRange(ctx, ownerID, start, end)
	if err != nil {
		return err
	}
	assetValue, err := repos.Assets().SumActiveValue(ctx, ownerID)
	if err != nil {
		return err
	}

	var taxDue decimal.Decimal
	taxRecord, err := repos.Tax().FindByMonthForOwner(ctx, ownerID, year, month)
	if err != nil && err != shared.ErrNotFound {
		return err
	}
	if taxRecord != nil {
		taxDue = taxRecord.TaxDue
	}

	summary, err := repos.Summaries().FindByMonthForOwner(ctx, ownerID, year, month)
	if err != nil {
		if err != shared.ErrNotFound {
			return err
		}
		summary, err = accounting.NewFinancialSummary(ownerID, year, month)
		if err != nil {
			return err
		}
	}

	summary.Rebuild(accounting.SummaryInput{
		SalesRevenue:   bySource[accounting.IncomeSourceSale],
		ServiceRevenue: bySource[accounting.IncomeSourceService],
		PaidExpenses:   paidExpenses,
		ActiveAssets:   assetValue,
		TaxDue:         taxDue,
	})

	return repos.Summaries().Save(ctx, summary)
}
