package workforce

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorker(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates active worker", func(t *testing.T) {
		worker, err := NewWorker(ownerID, "Mirriam Phiri", "+260966111222", "Stylist")

		require.NoError(t, err)
		assert.Equal(t, "Mirriam Phiri", worker.Name)
		assert.True(t, worker.Active)
		assert.True(t, worker.HourlyRate.IsZero())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewWorker(ownerID, "  ", "", "")
		assert.Error(t, err)
	})
}

func TestWorker_Lifecycle(t *testing.T) {
	worker, _ := NewWorker(uuid.New(), "Mirriam", "", "")

	require.NoError(t, worker.SetHourlyRate(decimal.RequireFromString("45.00")))
	assert.Error(t, worker.SetHourlyRate(decimal.RequireFromString("-1")))

	require.NoError(t, worker.Deactivate())
	assert.Error(t, worker.Deactivate())
	require.NoError(t, worker.Activate())
	assert.Error(t, worker.Activate())
}

func TestComputeAmount(t *testing.T) {
	rate := decimal.RequireFromString("50.00")

	t.Run("hourly multiplies by hours", func(t *testing.T) {
		amount := ComputeAmount("hourly", rate, decimal.RequireFromString("2.5"))
		assert.True(t, amount.Equal(decimal.RequireFromString("125.00")))
	})

	t.Run("fixed ignores hours", func(t *testing.T) {
		amount := ComputeAmount("fixed", rate, decimal.RequireFromString("2.5"))
		assert.True(t, amount.Equal(decimal.RequireFromString("50.00")))
	})
}

func TestNewWorkRecord(t *testing.T) {
	ownerID := uuid.New()
	serviceID := uuid.New()
	day := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)

	t.Run("creates pending record", func(t *testing.T) {
		record, err := NewWorkRecord(ownerID, serviceID, "Hair Braiding", day, decimal.NewFromInt(2), decimal.RequireFromString("100.00"))

		require.NoError(t, err)
		assert.Equal(t, PaymentStatusPending, record.PaymentStatus)
		assert.False(t, record.IsPaid())
		assert.Nil(t, record.WorkerID)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := NewWorkRecord(ownerID, serviceID, "Braiding", day, decimal.Zero, decimal.NewFromInt(-5))
		assert.Error(t, err)
	})

	t.Run("rejects missing service", func(t *testing.T) {
		_, err := NewWorkRecord(ownerID, uuid.Nil, "Braiding", day, decimal.Zero, decimal.NewFromInt(50))
		assert.Error(t, err)
	})
}

func TestWorkRecord_PaymentTransitions(t *testing.T) {
	record, _ := NewWorkRecord(uuid.New(), uuid.New(), "Braiding", time.Now(), decimal.NewFromInt(1), decimal.NewFromInt(50))

	t.Run("mark paid raises event and stamps time", func(t *testing.T) {
		require.NoError(t, record.MarkPaid())

		assert.True(t, record.IsPaid())
		assert.NotNil(t, record.PaidAt)

		events := record.GetDomainEvents()
		require.Len(t, events, 1)
		_, ok := events[0].(*WorkRecordPaidEvent)
		assert.True(t, ok)
	})

	t.Run("double pay is rejected", func(t *testing.T) {
		assert.Error(t, record.MarkPaid())
	})

	t.Run("mark unpaid reverts", func(t *testing.T) {
		record.ClearDomainEvents()

		require.NoError(t, record.MarkUnpaid())

		assert.False(t, record.IsPaid())
		assert.Nil(t, record.PaidAt)

		events := record.GetDomainEvents()
		require.Len(t, events, 1)
		_, ok := events[0].(*WorkRecordUnpaidEvent)
		assert.True(t, ok)
	})

	t.Run("unpaid record cannot be marked unpaid", func(t *testing.T) {
		assert.Error(t, record.MarkUnpaid())
	})
}
