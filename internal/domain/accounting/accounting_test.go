package accounting

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	ownerID := uuid.New()
	day := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	t.Run("creates paid expense by default", func(t *testing.T) {
		expense, err := NewExpense(ownerID, ExpenseCategoryRent, "March shop rent", decimal.RequireFromString("1500.00"), day)

		require.NoError(t, err)
		assert.True(t, expense.IsPaid())
		assert.NotNil(t, expense.PaidAt)
		assert.False(t, expense.Recurring)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewExpense(ownerID, "insurance", "Premium", decimal.NewFromInt(100), day)
		assert.Error(t, err)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		_, err := NewExpense(ownerID, ExpenseCategoryOther, "Misc", decimal.Zero, day)
		assert.Error(t, err)
	})
}

func TestExpense_PaymentAndRecurrence(t *testing.T) {
	expense, _ := NewExpense(uuid.New(), ExpenseCategoryUtilities, "ZESCO units", decimal.NewFromInt(400), time.Now())

	require.NoError(t, expense.MarkPending())
	assert.False(t, expense.IsPaid())
	assert.Nil(t, expense.PaidAt)
	assert.Error(t, expense.MarkPending())

	require.NoError(t, expense.MarkPaid())
	assert.True(t, expense.IsPaid())
	assert.Error(t, expense.MarkPaid())

	require.NoError(t, expense.SetRecurrence(RecurrenceMonthly))
	assert.True(t, expense.Recurring)

	assert.Error(t, expense.SetRecurrence("fortnightly"))

	expense.ClearRecurrence()
	assert.False(t, expense.Recurring)
	assert.Empty(t, string(expense.RecurrencePeriod))
}

func TestNewAsset(t *testing.T) {
	ownerID := uuid.New()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates active asset", func(t *testing.T) {
		asset, err := NewAsset(ownerID, "Chest freezer", AssetCategoryEquipment, decimal.RequireFromString("4500.00"), day)

		require.NoError(t, err)
		assert.True(t, asset.IsActive())
		assert.Nil(t, asset.CurrentValue)
	})

	t.Run("rejects negative purchase value", func(t *testing.T) {
		_, err := NewAsset(ownerID, "Freezer", AssetCategoryEquipment, decimal.NewFromInt(-1), day)
		assert.Error(t, err)
	})
}

func TestAsset_EffectiveValue(t *testing.T) {
	asset, _ := NewAsset(uuid.New(), "Freezer", AssetCategoryEquipment, decimal.RequireFromString("4500.00"), time.Now())

	t.Run("falls back to purchase value", func(t *testing.T) {
		assert.True(t, asset.EffectiveValue().Equal(decimal.RequireFromString("4500.00")))
	})

	t.Run("uses current value once recorded", func(t *testing.T) {
		require.NoError(t, asset.SetCurrentValue(decimal.RequireFromString("3800.00")))
		assert.True(t, asset.EffectiveValue().Equal(decimal.RequireFromString("3800.00")))
	})
}

func TestAsset_Dispose(t *testing.T) {
	asset, _ := NewAsset(uuid.New(), "Freezer", AssetCategoryEquipment, decimal.NewFromInt(4500), time.Now())

	assert.Error(t, asset.Dispose(AssetStatusActive))

	require.NoError(t, asset.Dispose(AssetStatusSold))
	assert.Equal(t, AssetStatusSold, asset.Status)
	assert.NotNil(t, asset.DisposedAt)
	assert.False(t, asset.IsActive())

	assert.Error(t, asset.Dispose(AssetStatusDisposed))
}

func TestNewIncomeRecord(t *testing.T) {
	ownerID := uuid.New()
	saleID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	t.Run("creates sale income", func(t *testing.T) {
		record, err := NewIncomeRecord(ownerID, IncomeSourceSale, saleID, decimal.RequireFromString("776.50"), day, "Sale SL202603140001")

		require.NoError(t, err)
		assert.Equal(t, IncomeSourceSale, record.Source)
		assert.Equal(t, saleID, record.SourceID)
	})

	t.Run("rejects unknown source", func(t *testing.T) {
		_, err := NewIncomeRecord(ownerID, "grant", saleID, decimal.NewFromInt(100), day, "")
		assert.Error(t, err)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewIncomeRecord(ownerID, IncomeSourceService, saleID, decimal.NewFromInt(-1), day, "")
		assert.Error(t, err)
	})
}

func TestNewFinancialSummary(t *testing.T) {
	t.Run("valid month", func(t *testing.T) {
		summary, err := NewFinancialSummary(uuid.New(), 2025, 3)
		require.NoError(t, err)
		assert.Equal(t, 2025, summary.Year)
		assert.Equal(t, 3, summary.Month)
		assert.True(t, summary.TotalIncome.IsZero())
	})

	t.Run("rejects month out of range", func(t *testing.T) {
		_, err := NewFinancialSummary(uuid.New(), 2025, 13)
		require.Error(t, err)

		_, err = NewFinancialSummary(uuid.New(), 2025, 0)
		require.Error(t, err)
	})

	t.Run("rejects empty owner", func(t *testing.T) {
		_, err := NewFinancialSummary(uuid.Nil, 2025, 3)
		require.Error(t, err)
	})
}

func TestFinancialSummary_Rebuild(t *testing.T) {
	summary, err := NewFinancialSummary(uuid.New(), 2025, 3)
	require.NoError(t, err)

	summary.Rebuild(SummaryInput{
		SalesRevenue:   decimal.RequireFromString("8000.00"),
		ServiceRevenue: decimal.RequireFromString("1200.00"),
		PaidExpenses:   decimal.RequireFromString("3100.00"),
		ActiveAssets:   decimal.RequireFromString("4500.00"),
		TaxDue:         decimal.RequireFromString("410.00"),
	})

	assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("9200.00")))
	assert.True(t, summary.NetProfit.Equal(decimal.RequireFromString("6100.00")))
	assert.True(t, summary.TaxDue.Equal(decimal.RequireFromString("410.00")))
	assert.Equal(t, 2, summary.GetVersion())

	t.Run("rebuild replaces rather than accumulates", func(t *testing.T) {
		summary.Rebuild(SummaryInput{
			SalesRevenue: decimal.RequireFromString("7500.00"),
		})

		assert.True(t, summary.TotalIncome.Equal(decimal.RequireFromString("7500.00")))
		assert.True(t, summary.NetProfit.Equal(decimal.RequireFromString("7500.00")))
		assert.True(t, summary.TotalExpenses.IsZero())
	})
}
