package accounting

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTurnoverTax(t *testing.T) {
	tests := []struct {
		name        string
		revenue     string
		wantTaxable string
		wantTaxDue  string
	}{
		{"typical month of K8000", "8000.00", "7000.00", "350.00"},
		{"revenue below the exemption", "800.00", "0.00", "0.00"},
		{"revenue exactly at the exemption", "1000.00", "0.00", "0.00"},
		{"zero revenue", "0.00", "0.00", "0.00"},
		{"one ngwee over the exemption", "1000.01", "0.01", "0.00"},
		{"fractional tax truncates toward zero", "1000.99", "0.99", "0.04"},
		{"truncation never rounds up", "2359.99", "1359.99", "67.99"},
		{"large month", "450000.00", "449000.00", "22450.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxable, taxDue := ComputeTurnoverTax(decimal.RequireFromString(tt.revenue))

			assert.True(t, taxable.Equal(decimal.RequireFromString(tt.wantTaxable)),
				"taxable: got %s want %s", taxable, tt.wantTaxable)
			assert.True(t, taxDue.Equal(decimal.RequireFromString(tt.wantTaxDue)),
				"tax due: got %s want %s", taxDue, tt.wantTaxDue)
		})
	}
}

func TestNewTurnoverTaxRecord(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates zeroed record with rate snapshot", func(t *testing.T) {
		record, err := NewTurnoverTaxRecord(ownerID, 2026, 3)

		require.NoError(t, err)
		assert.Equal(t, 2026, record.Year)
		assert.Equal(t, 3, record.Month)
		assert.True(t, record.Revenue.IsZero())
		assert.True(t, record.Rate.Equal(TurnoverTaxRate))
		assert.False(t, record.ExceedsAnnualLimit)
	})

	t.Run("rejects invalid month", func(t *testing.T) {
		_, err := NewTurnoverTaxRecord(ownerID, 2026, 13)
		assert.Error(t, err)

		_, err = NewTurnoverTaxRecord(ownerID, 2026, 0)
		assert.Error(t, err)
	})
}

func TestTurnoverTaxRecord_SetRevenue(t *testing.T) {
	record, _ := NewTurnoverTaxRecord(uuid.New(), 2026, 3)

	require.NoError(t, record.SetRevenue(decimal.RequireFromString("8000.00")))

	assert.True(t, record.TaxableAmount.Equal(decimal.RequireFromString("7000.00")))
	assert.True(t, record.TaxDue.Equal(decimal.RequireFromString("350.00")))

	t.Run("re-summing replaces, never accumulates", func(t *testing.T) {
		require.NoError(t, record.SetRevenue(decimal.RequireFromString("500.00")))

		assert.True(t, record.Revenue.Equal(decimal.RequireFromString("500.00")))
		assert.True(t, record.TaxableAmount.IsZero())
		assert.True(t, record.TaxDue.IsZero())
	})

	t.Run("rejects negative revenue", func(t *testing.T) {
		assert.Error(t, record.SetRevenue(decimal.NewFromInt(-1)))
	})
}

func TestTurnoverTaxRecord_FlagAnnualLimit(t *testing.T) {
	record, _ := NewTurnoverTaxRecord(uuid.New(), 2026, 11)

	record.FlagAnnualLimit(decimal.NewFromInt(5000000))
	assert.False(t, record.ExceedsAnnualLimit, "limit is inclusive")

	record.FlagAnnualLimit(decimal.RequireFromString("5000000.01"))
	assert.True(t, record.ExceedsAnnualLimit)
}

func TestTurnoverTaxRecord_Period(t *testing.T) {
	record, _ := NewTurnoverTaxRecord(uuid.New(), 2026, 2)

	assert.Equal(t, "2026-02-01", record.PeriodStart().Format("2006-01-02"))
	assert.Equal(t, "2026-02-28", record.PeriodEnd().Format("2006-01-02"))
}
