package report

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/catalog"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/inventory"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/sales"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
)

const topItemLimit = 10

// ReportService computes owner-scoped aggregation reports. Results are
// memoized in the snapshot cache; the cache key folds in the owner's
// generation counter, which every write cascade bumps, so a snapshot can
// only ever be re-served between mutations.
type ReportService struct {
	saleRepo     sales.SaleRepository
	expenseRepo  accounting.ExpenseRepository
	incomeRepo   accounting.IncomeRecordRepository
	taxRepo      accounting.TurnoverTaxRepository
	itemRepo     catalog.ItemRepository
	levelRepo    inventory.StockLevelRepository
	movementRepo inventory.StockMovementRepository
	cache        SnapshotCache
	ttl          time.Duration
}

// NewReportService creates a new ReportService
func NewReportService(
	saleRepo sales.SaleRepository,
	expenseRepo accounting.ExpenseRepository,
	incomeRepo accounting.IncomeRecordRepository,
	taxRepo accounting.TurnoverTaxRepository,
	itemRepo catalog.ItemRepository,
	levelRepo inventory.StockLevelRepository,
	movementRepo inventory.StockMovementRepository,
	cache SnapshotCache,
	ttl time.Duration,
) *ReportService {
	if cache == nil {
		cache = NoopCache{}
	}
	return &ReportService{
		saleRepo:     saleRepo,
		expenseRepo:  expenseRepo,
		incomeRepo:   incomeRepo,
		taxRepo:      taxRepo,
		itemRepo:     itemRepo,
		levelRepo:    levelRepo,
		movementRepo: movementRepo,
		cache:        cache,
		ttl:          ttl,
	}
}

func (s *ReportService) key(ctx context.Context, ownerID uuid.UUID, kind string, rng RangeRequest) string {
	gen := s.cache.Generation(ctx, ownerID)
	return fmt.Sprintf("report:%s:%d:%s:%s:%s",
		ownerID, gen, kind, rng.StartDate.Format("2006-01-02"), rng.EndDate.Format("2006-01-02"))
}

// fetch serves a report from the snapshot cache, computing and storing
// it on a miss
func fetch[T any](ctx context.Context, s *ReportService, key string, compute func() (*T, error)) (*T, error) {
	if payload, ok := s.cache.Get(ctx, key); ok {
		var cached T
		if err := json.Unmarshal(payload, &cached); err == nil {
			return &cached, nil
		}
	}

	result, err := compute()
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(result); err == nil {
		s.cache.Set(ctx, key, payload, s.ttl)
	}

	return result, nil
}

func validateRange(rng RangeRequest) error {
	if rng.EndDate.Before(rng.StartDate) {
		return shared.NewDomainError("INVALID_RANGE", "End date cannot be before start date")
	}
	return nil
}

// ProfitLoss computes the profit and loss statement for a range
func (s *ReportService) ProfitLoss(ctx context.Context, ownerID uuid.UUID, rng RangeRequest) (*ProfitLossReport, error) {
	if err := validateRange(rng); err != nil {
		return nil, err
	}

	return fetch(ctx, s, s.key(ctx, ownerID, "profit_loss", rng), func() (*ProfitLossReport, error) {
		bySource, err := s.incomeRepo.SumBySourceForRange(ctx, ownerID, rng.StartDate, rng.EndDate)
		if err != nil {
			return nil, err
		}
		byCategory, err := s.expenseRepo.SumPaidByCategoryForRange(ctx, ownerID, rng.StartDate, rng.EndDate)
		if err != nil {
			return nil, err
		}

		report := &ProfitLossReport{
			StartDate:          rng.StartDate,
			EndDate:            rng.EndDate,
			SalesRevenue:       bySource[accounting.IncomeSourceSale],
			ServiceRevenue:     bySource[accounting.IncomeSourceService],
			ExpensesByCategory: make(map[string]decimal.Decimal, len(byCategory)),
			TotalExpenses:      decimal.Zero,
		}
		report.TotalRevenue = report.SalesRevenue.Add(report.ServiceRevenue)
		for category, amount := range byCategory {
			report.ExpensesByCategory[string(category)] = amount
			report.TotalExpenses = report.TotalExpenses.Add(amount)
		}
		report.NetProfit = report.TotalRevenue.Sub(report.TotalExpenses)

		return report, nil
	})
}

// Sales computes the sales report for a range
func (s *ReportService) Sales(ctx context.Context, ownerID uuid.UUID, rng RangeRequest) (*SalesReport, error) {
	if err := validateRange(rng); err != nil {
		return nil, err
	}

	return fetch(ctx, s, s.key(ctx, ownerID, "sales_report", rng), func() (*SalesReport, error) {
		revenue, err := s.saleRepo.SumCompletedForRange(ctx, ownerID, rng.StartDate, rng.EndDate)
		if err != nil {
			return nil, err
		}
		count, err := s.saleRepo.CountCompletedForRange(ctx, ownerID, rng.StartDate, rng.EndDate)
		if err != nil {
			return nil, err
		}
		aggregates, err := s.saleRepo.TopItemsForRange(ctx, ownerID, rng.StartDate, rng.EndDate, topItemLimit)
		if err != nil {
			return nil, err
		}
		daily, err := s.saleRepo.DailyTotalsForRange(ctx, ownerID, rng.StartDate, rng.EndDate)
		if err != nil {
			return nil, err
		}

		report := &SalesReport{
			StartDate:    rng.StartDate,
			EndDate:      rng.EndDate,
			TotalRevenue: revenue,
			SaleCount:    count,
			DailySeries:  make([]SalesReportDay, len(daily)),
		}
		for i, day := range daily {
			report.DailySeries[i] = SalesReportDay{Day: day.Day, Count: day.Count, Revenue: day.Revenue}
		}

		items := make([]SalesReportItem, len(aggregates))
		for i, agg := range aggregates {
			items[i] = SalesReportItem{
				ItemID:   agg.ItemID,
				ItemName: agg.ItemName,
				Quantity: agg.Quantity,
				Revenue:  agg.Revenue,
			}
		}
		report.TopByQuantity = sortedCopy(items, func(a, b SalesReportItem) bool {
			return a.Quantity.GreaterThan(b.Quantity)
		})
		report.TopByRevenue = sortedCopy(items, func(a, b SalesReportItem) bool {
			return a.Revenue.GreaterThan(b.Revenue)
		})

		return report, nil
	})
}

func sortedCopy(items []SalesReportItem, less func(a, b SalesReportItem) bool) []SalesReportItem {
	out := make([]SalesReportItem, len(items))
	copy(out, items)
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Expenses computes the expense report for a range
func (s *ReportService) Expenses(ctx context.Context, ownerID uuid.UUID, rng RangeRequest) (*ExpenseReport, error) {
	if err := validateRange(rng); err != nil {
		return nil, err
	}

	return fetch(ctx, s, s.key(ctx, ownerID, "expense_report", rng), func() (*ExpenseReport, error) {
		byCategory, err := s.expenseRepo.SumPaidByCategoryForRange(ctx, ownerID, rng.StartDate, rng.EndDate)
		if err != nil {
			return nil, err
		}
		daily, err := s.expenseRepo.DailyPaidTotalsForRange(ctx, ownerID, rng.StartDate, rng.EndDate)
		if err != nil {
			return nil, err
		}

		report := &ExpenseReport{
			StartDate:     rng.StartDate,
			EndDate:       rng.EndDate,
			TotalExpenses: decimal.Zero,
			ByCategory:    make(map[string]decimal.Decimal, len(byCategory)),
			DailySeries:   make([]ExpenseReportDay, len(daily)),
		}
		for category, amount := range byCategory {
			report.ByCategory[string(category)] = amount
			report.TotalExpenses = report.TotalExpenses.Add(amount)
		}
		for i, day := range daily {
			report.DailySeries[i] = ExpenseReportDay{Day: day.Day, Amount: day.Amount}
		}

		return report, nil
	})
}

// Tax computes the turnover tax report for the months a range touches
func (s *ReportService) Tax(ctx context.Context, ownerID uuid.UUID, rng RangeRequest) (*TaxReport, error) {
	if err := validateRange(rng); err != nil {
		return nil, err
	}

	return fetch(ctx, s, s.key(ctx, ownerID, "tax_report", rng), func() (*TaxReport, error) {
		report := &TaxReport{
			StartDate:    rng.StartDate,
			EndDate:      rng.EndDate,
			Months:       make([]TaxReportMonth, 0),
			TotalRevenue: decimal.Zero,
			TotalTaxDue:  decimal.Zero,
			AnnualLimit:  accounting.AnnualTurnoverLimit,
		}

		for year := rng.StartDate.Year(); year <= rng.EndDate.Year(); year++ {
			records, err := s.taxRepo.FindByYearForOwner(ctx, ownerID, year)
			if err != nil {
				return nil, err
			}
			for i := range records {
				record := &records[i]
				if !monthInRange(record.Year, record.Month, rng) {
					continue
				}
				report.Months = append(report.Months, TaxReportMonth{
					Year:               record.Year,
					Month:              record.Month,
					Revenue:            record.Revenue,
					TaxableAmount:      record.TaxableAmount,
					TaxDue:             record.TaxDue,
					ExceedsAnnualLimit: record.ExceedsAnnualLimit,
				})
				report.TotalRevenue = report.TotalRevenue.Add(record.Revenue)
				report.TotalTaxDue = report.TotalTaxDue.Add(record.TaxDue)
				if record.ExceedsAnnualLimit {
					report.ExceedsAnnualLimit = true
				}
			}
		}

		return report, nil
	})
}

func monthInRange(year, month int, rng RangeRequest) bool {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, 0).Add(-time.Nanosecond)
	return !last.Before(rng.StartDate) && !first.After(rng.EndDate)
}

// Inventory computes the stock position report. The stock value is the
// current snapshot; the movement counts cover the requested range.
func (s *ReportService) Inventory(ctx context.Context, ownerID uuid.UUID, rng RangeRequest) (*InventoryReport, error) {
	if err := validateRange(rng); err != nil {
		return nil, err
	}

	return fetch(ctx, s, s.key(ctx, ownerID, "inventory_report", rng), func() (*InventoryReport, error) {
		bulk := shared.Filter{Page: 1, PageSize: 10000, OrderBy: "created_at", OrderDir: "asc", Filters: map[string]interface{}{}}

		levels, err := s.levelRepo.FindAllForOwner(ctx, ownerID, bulk)
		if err != nil {
			return nil, err
		}

		itemFilter := bulk
		itemFilter.Filters = map[string]interface{}{"kind": string(catalog.ItemKindProduct)}
		items, err := s.itemRepo.FindAllForOwner(ctx, ownerID, itemFilter)
		if err != nil {
			return nil, err
		}
		byID := make(map[uuid.UUID]*catalog.Item, len(items))
		for i := range items {
			byID[items[i].ID] = &items[i]
		}

		counts, err := s.movementRepo.CountByTypeForOwner(ctx, ownerID,
			rng.StartDate.Format("2006-01-02"), rng.EndDate.Format("2006-01-02"))
		if err != nil {
			return nil, err
		}

		report := &InventoryReport{
			StartDate:       rng.StartDate,
			EndDate:         rng.EndDate,
			Lines:           make([]InventoryReportLine, 0, len(levels)),
			TotalStockValue: decimal.Zero,
			MovementsByType: make(map[string]int64, len(counts)),
		}
		for movType, count := range counts {
			report.MovementsByType[string(movType)] = count
		}

		for i := range levels {
			level := &levels[i]
			item, ok := byID[level.ItemID]
			if !ok {
				continue
			}
			value := level.Quantity.Mul(item.CostPrice).Round(2)
			line := InventoryReportLine{
				ItemID:     item.ID,
				ItemName:   item.Name,
				SKU:        item.SKU,
				Quantity:   level.Quantity,
				CostPrice:  item.CostPrice,
				StockValue: value,
				Low:        level.IsLow(),
				Out:        level.IsOut(),
			}
			report.Lines = append(report.Lines, line)
			report.TotalStockValue = report.TotalStockValue.Add(value)
			if line.Out {
				report.OutCount++
			} else if line.Low {
				report.LowCount++
			}
		}

		return report, nil
	})
}
