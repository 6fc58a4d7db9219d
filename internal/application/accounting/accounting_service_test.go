package accounting

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/application/unitofwork"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/testsupport"
)

type accountingMocks struct {
	expenseRepo *testsupport.MockExpenseRepository
	assetRepo   *testsupport.MockAssetRepository
	incomeRepo  *testsupport.MockIncomeRecordRepository
	taxRepo     *testsupport.MockTurnoverTaxRepository
	summaryRepo *testsupport.MockFinancialSummaryRepository
	saleRepo    *testsupport.MockSaleRepository
}

func newAccountingMocks() *accountingMocks {
	return &accountingMocks{
		expenseRepo: new(testsupport.MockExpenseRepository),
		assetRepo:   new(testsupport.MockAssetRepository),
		incomeRepo:  new(testsupport.MockIncomeRecordRepository),
		taxRepo:     new(testsupport.MockTurnoverTaxRepository),
		summaryRepo: new(testsupport.MockFinancialSummaryRepository),
		saleRepo:    new(testsupport.MockSaleRepository),
	}
}

func (m *accountingMocks) scope() *unitofwork.NoOpTransactionScope {
	return &unitofwork.NoOpTransactionScope{
		SaleRepo:    m.saleRepo,
		IncomeRepo:  m.incomeRepo,
		TaxRepo:     m.taxRepo,
		SummaryRepo: m.summaryRepo,
		ExpenseRepo: m.expenseRepo,
		AssetRepo:   m.assetRepo,
	}
}

func (m *accountingMocks) expectSummaryRebuild(ownerID uuid.UUID, salesRevenue, paidExpenses decimal.Decimal) {
	m.incomeRepo.On("SumBySourceForRange", mock.Anything, ownerID, mock.Anything, mock.Anything).
		Return(map[accounting.IncomeSource]decimal.Decimal{accounting.IncomeSourceSale: salesRevenue}, nil)
	m.expenseRepo.On("SumPaidForRange", mock.Anything, ownerID, mock.Anything, mock.Anything).Return(paidExpenses, nil)
	m.assetRepo.On("SumActiveValue", mock.Anything, ownerID).Return(decimal.Zero, nil)
	m.taxRepo.On("FindByMonthForOwner", mock.Anything, ownerID, mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	m.summaryRepo.On("FindByMonthForOwner", mock.Anything, ownerID, mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	m.summaryRepo.On("Save", mock.Anything, mock.AnythingOfType("*accounting.FinancialSummary")).Return(nil)
}

func TestExpenseService_Create(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("paid expense lands in the summary rebuild", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewExpenseService(m.expenseRepo, m.scope())

		var saved *accounting.Expense
		m.expenseRepo.On("Save", ctx, mock.AnythingOfType("*accounting.Expense")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(*accounting.Expense)
			}).
			Return(nil)
		m.incomeRepo.On("SumBySourceForRange", mock.Anything, ownerID, mock.Anything, mock.Anything).
			Return(map[accounting.IncomeSource]decimal.Decimal{}, nil)
		m.expenseRepo.On("SumPaidForRange", mock.Anything, ownerID, mock.Anything, mock.Anything).
			Return(decimal.NewFromInt(1200), nil)
		m.assetRepo.On("SumActiveValue", mock.Anything, ownerID).Return(decimal.Zero, nil)
		m.taxRepo.On("FindByMonthForOwner", mock.Anything, ownerID, mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
		m.summaryRepo.On("FindByMonthForOwner", mock.Anything, ownerID, mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		var captured *accounting.FinancialSummary
		m.summaryRepo.On("Save", mock.Anything, mock.AnythingOfType("*accounting.FinancialSummary")).
			Run(func(args mock.Arguments) {
				captured = args.Get(1).(*accounting.FinancialSummary)
			}).
			Return(nil)

		resp, err := svc.Create(ctx, ownerID, CreateExpenseRequest{
			Category:    "rent",
			Description: "Shop rent March",
			Amount:      decimal.NewFromInt(1200),
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "rent", resp.Category)
		assert.Equal(t, "paid", resp.PaymentStatus)
		require.NotNil(t, captured)
		assert.Equal(t, time.Now().Year(), captured.Year)
		assert.Equal(t, int(time.Now().Month()), captured.Month)
		assert.True(t, captured.TotalExpenses.Equal(decimal.NewFromInt(1200)))
		assert.True(t, captured.NetProfit.Equal(decimal.NewFromInt(-1200)))
	})

	t.Run("pending flag keeps the expense out of paid figures", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewExpenseService(m.expenseRepo, m.scope())

		m.expenseRepo.On("Save", ctx, mock.AnythingOfType("*accounting.Expense")).Return(nil)
		m.expectSummaryRebuild(ownerID, decimal.Zero, decimal.Zero)

		resp, err := svc.Create(ctx, ownerID, CreateExpenseRequest{
			Category:    "utilities",
			Description: "ZESCO units",
			Amount:      decimal.NewFromInt(300),
			Pending:     true,
		})

		require.NoError(t, err)
		assert.Equal(t, "pending", resp.PaymentStatus)
	})

	t.Run("recurrence is stored", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewExpenseService(m.expenseRepo, m.scope())

		m.expenseRepo.On("Save", ctx, mock.AnythingOfType("*accounting.Expense")).Return(nil)
		m.expectSummaryRebuild(ownerID, decimal.Zero, decimal.NewFromInt(1200))

		resp, err := svc.Create(ctx, ownerID, CreateExpenseRequest{
			Category:         "rent",
			Description:      "Shop rent",
			Amount:           decimal.NewFromInt(1200),
			RecurrencePeriod: "monthly",
		})

		require.NoError(t, err)
		assert.True(t, resp.Recurring)
		assert.Equal(t, "monthly", resp.RecurrencePeriod)
	})
}

func TestExpenseService_Delete(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	m := newAccountingMocks()
	svc := NewExpenseService(m.expenseRepo, m.scope())

	expense, err := accounting.NewExpense(ownerID, accounting.ExpenseCategoryTransport,
		"Fuel", decimal.NewFromInt(200), time.Now())
	require.NoError(t, err)

	m.expenseRepo.On("FindByIDForOwner", ctx, ownerID, expense.ID).Return(expense, nil)
	m.expenseRepo.On("Delete", ctx, expense.ID).Return(nil)
	m.expectSummaryRebuild(ownerID, decimal.Zero, decimal.Zero)

	require.NoError(t, svc.Delete(ctx, ownerID, expense.ID))
	m.expenseRepo.AssertCalled(t, "Delete", ctx, expense.ID)
	m.summaryRepo.AssertCalled(t, "Save", mock.Anything, mock.AnythingOfType("*accounting.FinancialSummary"))
}

func TestAssetService_Dispose(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	m := newAccountingMocks()
	svc := NewAssetService(m.assetRepo, m.scope())

	asset, err := accounting.NewAsset(ownerID, "Delivery bicycle", accounting.AssetCategoryVehicle,
		decimal.NewFromInt(1500), time.Now())
	require.NoError(t, err)

	m.assetRepo.On("FindByIDForOwner", ctx, ownerID, asset.ID).Return(asset, nil)
	m.assetRepo.On("Save", ctx, asset).Return(nil)
	m.expectSummaryRebuild(ownerID, decimal.Zero, decimal.Zero)

	resp, err := svc.Dispose(ctx, ownerID, asset.ID, "sold")

	require.NoError(t, err)
	assert.Equal(t, "sold", resp.Status)
	require.NotNil(t, resp.DisposedAt)

	_, err = svc.Dispose(ctx, ownerID, asset.ID, "sold")
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
}

func TestTaxService_GetMonth(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("stored month returns computed figures", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewTaxService(m.taxRepo)

		record, err := accounting.NewTurnoverTaxRecord(ownerID, 2026, 3)
		require.NoError(t, err)
		require.NoError(t, record.SetRevenue(decimal.NewFromInt(8000)))

		m.taxRepo.On("FindByMonthForOwner", ctx, ownerID, 2026, 3).Return(record, nil)

		resp, err := svc.GetMonth(ctx, ownerID, 2026, 3)

		require.NoError(t, err)
		assert.True(t, resp.Revenue.Equal(decimal.NewFromInt(8000)))
		assert.True(t, resp.TaxableAmount.Equal(decimal.NewFromInt(7000)))
		assert.Equal(t, "350", resp.TaxDue.String())
	})

	t.Run("missing month reads as zero", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewTaxService(m.taxRepo)

		m.taxRepo.On("FindByMonthForOwner", ctx, ownerID, 2026, 7).Return(nil, shared.ErrNotFound)

		resp, err := svc.GetMonth(ctx, ownerID, 2026, 7)

		require.NoError(t, err)
		assert.True(t, resp.Revenue.IsZero())
		assert.True(t, resp.TaxDue.IsZero())
	})

	t.Run("month out of range is rejected", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewTaxService(m.taxRepo)

		_, err := svc.GetMonth(ctx, ownerID, 2026, 13)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_MONTH", domainErr.Code)
	})
}

func TestTaxService_GetYear(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	m := newAccountingMocks()
	svc := NewTaxService(m.taxRepo)

	march, err := accounting.NewTurnoverTaxRecord(ownerID, 2026, 3)
	require.NoError(t, err)
	require.NoError(t, march.SetRevenue(decimal.NewFromInt(8000)))

	june, err := accounting.NewTurnoverTaxRecord(ownerID, 2026, 6)
	require.NoError(t, err)
	require.NoError(t, june.SetRevenue(decimal.NewFromInt(500)))

	m.taxRepo.On("FindByYearForOwner", ctx, ownerID, 2026).Return([]accounting.TurnoverTaxRecord{*march, *june}, nil)

	position, err := svc.GetYear(ctx, ownerID, 2026)

	require.NoError(t, err)
	require.Len(t, position.Months, 12)
	assert.True(t, position.TotalRevenue.Equal(decimal.NewFromInt(8500)))
	assert.Equal(t, "350", position.TotalTaxDue.String())
	assert.True(t, position.Months[5].TaxDue.IsZero()) // June under the exemption
	assert.False(t, position.ExceedsAnnualLimit)
}

func TestIncomeService(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("list maps source filter and paginates", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewIncomeService(m.incomeRepo)

		record, err := accounting.NewIncomeRecord(ownerID, accounting.IncomeSourceSale, uuid.New(),
			decimal.NewFromInt(500), time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), "Sale SALE-0001")
		require.NoError(t, err)

		m.incomeRepo.On("FindAllForOwner", ctx, ownerID, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Filters["source"] == "sale" && f.Page == 1 && f.PageSize == 20
		})).Return([]accounting.IncomeRecord{*record}, int64(1), nil)

		records, total, err := svc.List(ctx, ownerID, IncomeListFilter{Source: "sale"})

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, records, 1)
		assert.Equal(t, "sale", records[0].Source)
	})

	t.Run("monthly total", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewIncomeService(m.incomeRepo)

		m.incomeRepo.On("SumForMonth", ctx, ownerID, 2025, 6).
			Return(decimal.RequireFromString("12345.678"), nil)

		resp, err := svc.MonthlyTotal(ctx, ownerID, MonthlyIncomeRequest{Year: 2025, Month: 6})

		require.NoError(t, err)
		assert.Equal(t, 2025, resp.Year)
		assert.True(t, resp.TotalIncome.Equal(decimal.RequireFromString("12345.68")))
	})
}

func TestSummaryService_Get(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("month with no activity reads as zero summary", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewSummaryService(m.summaryRepo, m.scope())

		m.summaryRepo.On("FindByMonthForOwner", ctx, ownerID, 2025, 3).Return(nil, shared.ErrNotFound)

		resp, err := svc.GetMonth(ctx, ownerID, 2025, 3)

		require.NoError(t, err)
		assert.Equal(t, 2025, resp.Year)
		assert.Equal(t, 3, resp.Month)
		assert.True(t, resp.TotalIncome.IsZero())
	})

	t.Run("recompute rebuilds the month from the ledgers", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewSummaryService(m.summaryRepo, m.scope())

		m.expectSummaryRebuild(ownerID, decimal.NewFromInt(5000), decimal.NewFromInt(1200))

		resp, err := svc.Recompute(ctx, ownerID, 2025, 3)

		require.NoError(t, err)
		require.NotNil(t, resp)
		m.summaryRepo.AssertCalled(t, "Save", mock.Anything, mock.AnythingOfType("*accounting.FinancialSummary"))
		m.summaryRepo.AssertCalled(t, "FindByMonthForOwner", mock.Anything, ownerID, 2025, 3)
	})

	t.Run("recompute rejects an invalid month", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewSummaryService(m.summaryRepo, m.scope())

		_, err := svc.Recompute(ctx, ownerID, 2025, 13)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_MONTH", domainErr.Code)
	})

	t.Run("list year returns stored months in order", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewSummaryService(m.summaryRepo, m.scope())

		march, err := accounting.NewFinancialSummary(ownerID, 2025, 3)
		require.NoError(t, err)
		march.Rebuild(accounting.SummaryInput{SalesRevenue: decimal.NewFromInt(9000)})
		june, err := accounting.NewFinancialSummary(ownerID, 2025, 6)
		require.NoError(t, err)

		m.summaryRepo.On("FindByYearForOwner", ctx, ownerID, 2025).
			Return([]accounting.FinancialSummary{*march, *june}, nil)

		responses, err := svc.ListYear(ctx, ownerID, 2025)

		require.NoError(t, err)
		require.Len(t, responses, 2)
		assert.Equal(t, 3, responses[0].Month)
		assert.True(t, responses[0].TotalIncome.Equal(decimal.NewFromInt(9000)))
	})
}

func TestSummaryService_Period(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("computes range from the ledgers", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewSummaryService(m.summaryRepo, m.scope())

		m.incomeRepo.On("SumBySourceForRange", mock.Anything, ownerID, start, end).
			Return(map[accounting.IncomeSource]decimal.Decimal{
				accounting.IncomeSourceSale:    decimal.NewFromInt(8000),
				accounting.IncomeSourceService: decimal.NewFromInt(2000),
			}, nil)
		m.expenseRepo.On("SumPaidForRange", mock.Anything, ownerID, start, end).
			Return(decimal.NewFromInt(3500), nil)

		resp, err := svc.Period(ctx, ownerID, PeriodSummaryRequest{StartDate: start, EndDate: end})

		require.NoError(t, err)
		assert.True(t, resp.TotalRevenue.Equal(decimal.NewFromInt(10000)))
		assert.True(t, resp.NetProfit.Equal(decimal.NewFromInt(6500)))
		assert.Equal(t, start, resp.StartDate)
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		m := newAccountingMocks()
		svc := NewSummaryService(m.summaryRepo, m.scope())

		_, err := svc.Period(ctx, ownerID, PeriodSummaryRequest{StartDate: end, EndDate: start})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DATE_RANGE", domainErr.Code)
		m.incomeRepo.AssertNotCalled(t, "SumBySourceForRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
