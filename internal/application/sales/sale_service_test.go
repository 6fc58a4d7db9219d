package sales

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
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/catalog"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/inventory"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/sales"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared/valueobject"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/testsupport"
)

type cascadeMocks struct {
	saleRepo    *testsupport.MockSaleRepository
	itemRepo    *testsupport.MockItemRepository
	levelRepo   *testsupport.MockStockLevelRepository
	mvRepo      *testsupport.MockStockMovementRepository
	alertRepo   *testsupport.MockStockAlertRepository
	incomeRepo  *testsupport.MockIncomeRecordRepository
	taxRepo     *testsupport.MockTurnoverTaxRepository
	summaryRepo *testsupport.MockFinancialSummaryRepository
	expenseRepo *testsupport.MockExpenseRepository
	assetRepo   *testsupport.MockAssetRepository
	workRepo    *testsupport.MockWorkRecordRepository
}

func newCascadeMocks() *cascadeMocks {
	return &cascadeMocks{
		saleRepo:    new(testsupport.MockSaleRepository),
		itemRepo:    new(testsupport.MockItemRepository),
		levelRepo:   new(testsupport.MockStockLevelRepository),
		mvRepo:      new(testsupport.MockStockMovementRepository),
		alertRepo:   new(testsupport.MockStockAlertRepository),
		incomeRepo:  new(testsupport.MockIncomeRecordRepository),
		taxRepo:     new(testsupport.MockTurnoverTaxRepository),
		summaryRepo: new(testsupport.MockFinancialSummaryRepository),
		expenseRepo: new(testsupport.MockExpenseRepository),
		assetRepo:   new(testsupport.MockAssetRepository),
		workRepo:    new(testsupport.MockWorkRecordRepository),
	}
}

func (m *cascadeMocks) scope() *unitofwork.NoOpTransactionScope {
	return &unitofwork.NoOpTransactionScope{
		SaleRepo:          m.saleRepo,
		StockLevelRepo:    m.levelRepo,
		StockMovementRepo: m.mvRepo,
		StockAlertRepo:    m.alertRepo,
		IncomeRepo:        m.incomeRepo,
		TaxRepo:           m.taxRepo,
		SummaryRepo:       m.summaryRepo,
		ExpenseRepo:       m.expenseRepo,
		AssetRepo:         m.assetRepo,
		WorkRecordRepo:    m.workRepo,
	}
}

func (m *cascadeMocks) service() *SaleService {
	return NewSaleService(m.saleRepo, m.itemRepo, m.scope())
}

// expectNoOpenAlerts stubs the alert lookups done after stock changes
func (m *cascadeMocks) expectNoOpenAlerts() {
	m.alertRepo.On("FindOpenByItemForOwner", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, shared.ErrNotFound)
}

// expectPropagation stubs the tax resync and summary rebuild reads
func (m *cascadeMocks) expectPropagation(ownerID uuid.UUID, monthRevenue, saleRevenue decimal.Decimal, salesCount int64) {
	m.incomeRepo.On("SumForMonth", mock.Anything, ownerID, mock.Anything, mock.Anything).Return(monthRevenue, nil)
	m.incomeRepo.On("SumForYear", mock.Anything, ownerID, mock.Anything).Return(monthRevenue, nil)
	m.taxRepo.On("FindByMonthForOwner", mock.Anything, ownerID, mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	m.taxRepo.On("Save", mock.Anything, mock.AnythingOfType("*accounting.TurnoverTaxRecord")).Return(nil)

	m.incomeRepo.On("SumBySourceForRange", mock.Anything, ownerID, mock.Anything, mock.Anything).
		Return(map[accounting.IncomeSource]decimal.Decimal{accounting.IncomeSourceSale: saleRevenue}, nil)
	m.expenseRepo.On("SumPaidForRange", mock.Anything, ownerID, mock.Anything, mock.Anything).Return(decimal.Zero, nil)
	m.assetRepo.On("SumActiveValue", mock.Anything, ownerID).Return(decimal.Zero, nil)
	m.summaryRepo.On("FindByMonthForOwner", mock.Anything, ownerID, mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)
	m.summaryRepo.On("Save", mock.Anything, mock.AnythingOfType("*accounting.FinancialSummary")).Return(nil)
}

func testProduct(t *testing.T, ownerID uuid.UUID, name string, unitPrice, costPrice int64) *catalog.Item {
	t.Helper()
	item, err := catalog.NewProduct(
		ownerID, name, "", "pcs",
		valueobject.NewMoneyZMW(decimal.NewFromInt(unitPrice)),
		valueobject.NewMoneyZMW(decimal.NewFromInt(costPrice)),
	)
	require.NoError(t, err)
	return item
}

func testStockLevel(t *testing.T, ownerID, itemID uuid.UUID, quantity int64) *inventory.StockLevel {
	t.Helper()
	level, err := inventory.NewStockLevel(ownerID, itemID, decimal.Zero)
	require.NoError(t, err)
	if quantity > 0 {
		_, err = level.ApplyMovement(inventory.MovementTypeOpeningStock, decimal.NewFromInt(quantity))
		require.NoError(t, err)
	}
	level.ClearDomainEvents()
	return level
}

func TestSaleService_RecordSale(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	saleDate := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	t.Run("records sale and propagates through the books", func(t *testing.T) {
		m := newCascadeMocks()
		item := testProduct(t, ownerID, "Mealie Meal 25kg", 100, 60)
		level := testStockLevel(t, ownerID, item.ID, 10)

		m.itemRepo.On("FindByIDForOwner", mock.Anything, ownerID, item.ID).Return(item, nil)
		m.saleRepo.On("NextSequenceForDay", mock.Anything, ownerID, saleDate).Return(7, nil)
		m.levelRepo.On("FindByItemForOwnerLocked", mock.Anything, ownerID, item.ID).Return(level, nil)
		m.levelRepo.On("Save", mock.Anything, level).Return(nil)

		var movement *inventory.StockMovement
		m.mvRepo.On("Create", mock.Anything, mock.AnythingOfType("*inventory.StockMovement")).
			Run(func(args mock.Arguments) { movement = args.Get(1).(*inventory.StockMovement) }).
			Return(nil)
		m.expectNoOpenAlerts()

		m.saleRepo.On("Create", mock.Anything, mock.AnythingOfType("*sales.Sale")).Return(nil)

		var income *accounting.IncomeRecord
		m.incomeRepo.On("Create", mock.Anything, mock.AnythingOfType("*accounting.IncomeRecord")).
			Run(func(args mock.Arguments) { income = args.Get(1).(*accounting.IncomeRecord) }).
			Return(nil)
		m.expectPropagation(ownerID, decimal.NewFromInt(500), decimal.NewFromInt(500), 1)

		resp, err := m.service().RecordSale(ctx, ownerID, RecordSaleRequest{
			SaleDate: &saleDate,
			Items: []RecordSaleLineRequest{
				{ItemID: item.ID, Quantity: decimal.NewFromInt(5)},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "SL202603140007", resp.SaleNumber)
		assert.True(t, resp.Total.Equal(decimal.NewFromInt(500)))
		assert.Equal(t, string(sales.SaleStatusCompleted), resp.Status)
		require.Len(t, resp.Items, 1)
		assert.True(t, resp.Items[0].UnitPrice.Equal(decimal.NewFromInt(100)))

		// Stock moved down and the ledger entry carries the sale number
		assert.True(t, level.Quantity.Equal(decimal.NewFromInt(5)))
		require.NotNil(t, movement)
		assert.Equal(t, inventory.MovementTypeSale, movement.Type)
		assert.Equal(t, "SL202603140007", movement.Reference)

		// Income projection written for the full sale total
		require.NotNil(t, income)
		assert.Equal(t, accounting.IncomeSourceSale, income.Source)
		assert.True(t, income.Amount.Equal(decimal.NewFromInt(500)))
	})

	t.Run("rejects the whole sale when one line exceeds stock", func(t *testing.T) {
		m := newCascadeMocks()
		item := testProduct(t, ownerID, "Cooking Oil 2L", 80, 55)
		level := testStockLevel(t, ownerID, item.ID, 3)

		m.itemRepo.On("FindByIDForOwner", mock.Anything, ownerID, item.ID).Return(item, nil)
		m.saleRepo.On("NextSequenceForDay", mock.Anything, ownerID, saleDate).Return(1, nil)
		m.levelRepo.On("FindByItemForOwnerLocked", mock.Anything, ownerID, item.ID).Return(level, nil)

		_, err := m.service().RecordSale(ctx, ownerID, RecordSaleRequest{
			SaleDate: &saleDate,
			Items: []RecordSaleLineRequest{
				{ItemID: item.ID, Quantity: decimal.NewFromInt(5)},
			},
		})

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		assert.True(t, level.Quantity.Equal(decimal.NewFromInt(3)))
		m.saleRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		m.incomeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("rejects services and inactive items", func(t *testing.T) {
		m := newCascadeMocks()
		svc, err := catalog.NewService(ownerID, "Haircut", catalog.PricingModelFixed, valueobject.NewMoneyZMW(decimal.NewFromInt(50)))
		require.NoError(t, err)

		m.itemRepo.On("FindByIDForOwner", mock.Anything, ownerID, svc.ID).Return(svc, nil)

		_, err = m.service().RecordSale(ctx, ownerID, RecordSaleRequest{
			Items: []RecordSaleLineRequest{
				{ItemID: svc.ID, Quantity: decimal.NewFromInt(1)},
			},
		})
		assert.Error(t, err)

		item := testProduct(t, ownerID, "Bread", 15, 10)
		require.NoError(t, item.Deactivate())
		item.ClearDomainEvents()
		m.itemRepo.On("FindByIDForOwner", mock.Anything, ownerID, item.ID).Return(item, nil)

		_, err = m.service().RecordSale(ctx, ownerID, RecordSaleRequest{
			Items: []RecordSaleLineRequest{
				{ItemID: item.ID, Quantity: decimal.NewFromInt(1)},
			},
		})
		assert.Error(t, err)
	})

	t.Run("missing item reads as not found", func(t *testing.T) {
		m := newCascadeMocks()
		missing := uuid.New()
		m.itemRepo.On("FindByIDForOwner", mock.Anything, ownerID, missing).Return(nil, shared.ErrNotFound)

		_, err := m.service().RecordSale(ctx, ownerID, RecordSaleRequest{
			Items: []RecordSaleLineRequest{
				{ItemID: missing, Quantity: decimal.NewFromInt(1)},
			},
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSaleService_CancelSale(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	saleDate := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	newCompletedSale := func(t *testing.T, itemID uuid.UUID) *sales.Sale {
		t.Helper()
		sale, err := sales.NewSale(ownerID, "SL202603140002", saleDate, sales.PaymentMethodCash)
		require.NoError(t, err)
		require.NoError(t, sale.AddLine(itemID, "Mealie Meal 25kg", decimal.NewFromInt(5), decimal.NewFromInt(100)))
		require.NoError(t, sale.Finalize())
		sale.ClearDomainEvents()
		return sale
	}

	t.Run("returns stock and removes the income record", func(t *testing.T) {
		m := newCascadeMocks()
		itemID := uuid.New()
		sale := newCompletedSale(t, itemID)
		level := testStockLevel(t, ownerID, itemID, 0)

		m.saleRepo.On("FindByIDForOwner", mock.Anything, ownerID, sale.ID).Return(sale, nil)
		m.saleRepo.On("Update", mock.Anything, sale).Return(nil)
		m.levelRepo.On("FindByItemForOwnerLocked", mock.Anything, ownerID, itemID).Return(level, nil)
		m.levelRepo.On("Save", mock.Anything, level).Return(nil)

		var movement *inventory.StockMovement
		m.mvRepo.On("Create", mock.Anything, mock.AnythingOfType("*inventory.StockMovement")).
			Run(func(args mock.Arguments) { movement = args.Get(1).(*inventory.StockMovement) }).
			Return(nil)
		m.expectNoOpenAlerts()
		m.incomeRepo.On("DeleteBySource", mock.Anything, ownerID, accounting.IncomeSourceSale, sale.ID).Return(nil)
		m.expectPropagation(ownerID, decimal.Zero, decimal.Zero, 0)

		resp, err := m.service().CancelSale(ctx, ownerID, sale.ID)

		require.NoError(t, err)
		assert.Equal(t, string(sales.SaleStatusCancelled), resp.Status)
		assert.NotNil(t, resp.CancelledAt)

		// Stock came back, tagged with the reversal reference
		assert.True(t, level.Quantity.Equal(decimal.NewFromInt(5)))
		require.NotNil(t, movement)
		assert.Equal(t, inventory.MovementTypeReturn, movement.Type)
		assert.Equal(t, "REV-SL202603140002", movement.Reference)

		m.incomeRepo.AssertCalled(t, "DeleteBySource", mock.Anything, ownerID, accounting.IncomeSourceSale, sale.ID)
	})

	t.Run("cancelling rebuilds the summary for the sale's month", func(t *testing.T) {
		m := newCascadeMocks()
		itemID := uuid.New()
		sale := newCompletedSale(t, itemID)
		level := testStockLevel(t, ownerID, itemID, 0)

		m.saleRepo.On("FindByIDForOwner", mock.Anything, ownerID, sale.ID).Return(sale, nil)
		m.saleRepo.On("Update", mock.Anything, sale).Return(nil)
		m.levelRepo.On("FindByItemForOwnerLocked", mock.Anything, ownerID, itemID).Return(level, nil)
		m.levelRepo.On("Save", mock.Anything, level).Return(nil)
		m.mvRepo.On("Create", mock.Anything, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)
		m.expectNoOpenAlerts()
		m.incomeRepo.On("DeleteBySource", mock.Anything, ownerID, accounting.IncomeSourceSale, sale.ID).Return(nil)

		// After the income record is gone, March still holds one earlier sale.
		remaining := decimal.NewFromInt(300)
		m.incomeRepo.On("SumForMonth", mock.Anything, ownerID, 2026, 3).Return(remaining, nil)
		m.incomeRepo.On("SumForYear", mock.Anything, ownerID, 2026).Return(remaining, nil)
		m.taxRepo.On("FindByMonthForOwner", mock.Anything, ownerID, 2026, 3).Return(nil, shared.ErrNotFound)
		m.taxRepo.On("Save", mock.Anything, mock.AnythingOfType("*accounting.TurnoverTaxRecord")).Return(nil)
		m.incomeRepo.On("SumBySourceForRange", mock.Anything, ownerID, mock.Anything, mock.Anything).
			Return(map[accounting.IncomeSource]decimal.Decimal{accounting.IncomeSourceSale: remaining}, nil)
		m.expenseRepo.On("SumPaidForRange", mock.Anything, ownerID, mock.Anything, mock.Anything).Return(decimal.Zero, nil)
		m.assetRepo.On("SumActiveValue", mock.Anything, ownerID).Return(decimal.Zero, nil)
		m.summaryRepo.On("FindByMonthForOwner", mock.Anything, ownerID, 2026, 3).Return(nil, shared.ErrNotFound)

		var saved *accounting.FinancialSummary
		m.summaryRepo.On("Save", mock.Anything, mock.AnythingOfType("*accounting.FinancialSummary")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*accounting.FinancialSummary) }).
			Return(nil)

		_, err := m.service().CancelSale(ctx, ownerID, sale.ID)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, 2026, saved.Year)
		assert.Equal(t, 3, saved.Month)
		assert.True(t, saved.SalesRevenue.Equal(remaining))
		assert.True(t, saved.TotalIncome.Equal(remaining))
	})

	t.Run("cancelling twice fails", func(t *testing.T) {
		m := newCascadeMocks()
		itemID := uuid.New()
		sale := newCompletedSale(t, itemID)
		require.NoError(t, sale.Cancel())
		sale.ClearDomainEvents()

		m.saleRepo.On("FindByIDForOwner", mock.Anything, ownerID, sale.ID).Return(sale, nil)

		_, err := m.service().CancelSale(ctx, ownerID, sale.ID)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "SALE_ALREADY_CANCELLED", domainErr.Code)
	})

	t.Run("another owner's sale reads as not found", func(t *testing.T) {
		m := newCascadeMocks()
		saleID := uuid.New()
		m.saleRepo.On("FindByIDForOwner", mock.Anything, ownerID, saleID).Return(nil, shared.ErrNotFound)

		_, err := m.service().CancelSale(ctx, ownerID, saleID)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSaleService_DailySummary(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	m := newCascadeMocks()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	m.saleRepo.On("DailyTotalsForRange", mock.Anything, ownerID, start, end).Return([]sales.DailyTotal{
		{Day: start, Count: 2, Revenue: decimal.NewFromInt(300)},
		{Day: start.AddDate(0, 0, 1), Count: 1, Revenue: decimal.NewFromInt(150)},
	}, nil)

	resp, err := m.service().DailySummary(ctx, ownerID, DailySummaryRequest{StartDate: start, EndDate: end})

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalCount)
	assert.True(t, resp.TotalRevenue.Equal(decimal.NewFromInt(450)))
	require.Len(t, resp.Days, 2)

	_, err = m.service().DailySummary(ctx, ownerID, DailySummaryRequest{StartDate: end, EndDate: start})
	assert.Error(t, err)
}
