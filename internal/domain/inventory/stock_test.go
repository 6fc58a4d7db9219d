package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLevel(t *testing.T, reorder int64) *StockLevel {
	t.Helper()
	level, err := NewStockLevel(uuid.New(), uuid.New(), decimal.NewFromInt(reorder))
	require.NoError(t, err)
	return level
}

func TestStockLevel_ApplyMovement(t *testing.T) {
	t.Run("opening stock sets the initial quantity", func(t *testing.T) {
		level := newLevel(t, 0)

		mv, err := level.ApplyMovement(MovementTypeOpeningStock, decimal.NewFromInt(50))

		require.NoError(t, err)
		assert.True(t, level.Quantity.Equal(decimal.NewFromInt(50)))
		assert.True(t, mv.QuantityBefore.IsZero())
		assert.True(t, mv.QuantityAfter.Equal(decimal.NewFromInt(50)))
		assert.Equal(t, MovementTypeOpeningStock, mv.Type)
	})

	t.Run("ledger before and after always bracket the live quantity", func(t *testing.T) {
		level := newLevel(t, 0)
		_, err := level.ApplyMovement(MovementTypeStockIn, decimal.NewFromInt(20))
		require.NoError(t, err)

		mv, err := level.ApplyMovement(MovementTypeSale, decimal.NewFromInt(7))

		require.NoError(t, err)
		assert.True(t, mv.QuantityBefore.Equal(decimal.NewFromInt(20)))
		assert.True(t, mv.QuantityAfter.Equal(decimal.NewFromInt(13)))
		assert.True(t, level.Quantity.Equal(mv.QuantityAfter))
		assert.True(t, mv.SignedQuantity().Equal(decimal.NewFromInt(-7)))
	})

	t.Run("sale exceeding stock is rejected and leaves the level untouched", func(t *testing.T) {
		level := newLevel(t, 0)
		_, err := level.ApplyMovement(MovementTypeStockIn, decimal.NewFromInt(3))
		require.NoError(t, err)
		versionBefore := level.GetVersion()

		_, err = level.ApplyMovement(MovementTypeSale, decimal.NewFromInt(5))

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Insufficient stock")
		assert.True(t, level.Quantity.Equal(decimal.NewFromInt(3)))
		assert.Equal(t, versionBefore, level.GetVersion())
	})

	t.Run("damage exceeding stock is rejected", func(t *testing.T) {
		level := newLevel(t, 0)
		_, err := level.ApplyMovement(MovementTypeStockIn, decimal.NewFromInt(2))
		require.NoError(t, err)

		_, err = level.ApplyMovement(MovementTypeDamage, decimal.NewFromInt(3))

		assert.Error(t, err)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		level := newLevel(t, 0)

		_, err := level.ApplyMovement(MovementTypeStockIn, decimal.Zero)

		assert.Error(t, err)
	})

	t.Run("rejects adjustment through ApplyMovement", func(t *testing.T) {
		level := newLevel(t, 0)

		_, err := level.ApplyMovement(MovementTypeAdjustment, decimal.NewFromInt(5))

		assert.Error(t, err)
	})

	t.Run("movement raises a domain event", func(t *testing.T) {
		level := newLevel(t, 0)

		_, err := level.ApplyMovement(MovementTypeStockIn, decimal.NewFromInt(5))

		require.NoError(t, err)
		events := level.GetDomainEvents()
		require.Len(t, events, 1)
		changed, ok := events[0].(*StockLevelChangedEvent)
		require.True(t, ok)
		assert.Equal(t, MovementTypeStockIn, changed.MovementType)
	})
}

func TestStockLevel_ApplyAdjustment(t *testing.T) {
	t.Run("adjusts down to a counted quantity", func(t *testing.T) {
		level := newLevel(t, 0)
		_, err := level.ApplyMovement(MovementTypeStockIn, decimal.NewFromInt(10))
		require.NoError(t, err)

		mv, err := level.ApplyAdjustment(decimal.NewFromInt(8))

		require.NoError(t, err)
		assert.Equal(t, MovementTypeAdjustment, mv.Type)
		assert.True(t, mv.Quantity.Equal(decimal.NewFromInt(2)))
		assert.True(t, mv.SignedQuantity().Equal(decimal.NewFromInt(-2)))
		assert.True(t, level.Quantity.Equal(decimal.NewFromInt(8)))
	})

	t.Run("adjusts up", func(t *testing.T) {
		level := newLevel(t, 0)

		mv, err := level.ApplyAdjustment(decimal.NewFromInt(4))

		require.NoError(t, err)
		assert.True(t, mv.SignedQuantity().Equal(decimal.NewFromInt(4)))
	})

	t.Run("rejects negative target", func(t *testing.T) {
		level := newLevel(t, 0)

		_, err := level.ApplyAdjustment(decimal.NewFromInt(-1))

		assert.Error(t, err)
	})

	t.Run("rejects no-op adjustment", func(t *testing.T) {
		level := newLevel(t, 0)

		_, err := level.ApplyAdjustment(decimal.Zero)

		assert.Error(t, err)
	})
}

func TestStockLevel_Thresholds(t *testing.T) {
	level := newLevel(t, 5)

	assert.True(t, level.IsOut())

	_, err := level.ApplyMovement(MovementTypeStockIn, decimal.NewFromInt(5))
	require.NoError(t, err)
	assert.False(t, level.IsOut())
	assert.True(t, level.IsLow())

	_, err = level.ApplyMovement(MovementTypeStockIn, decimal.NewFromInt(10))
	require.NoError(t, err)
	assert.False(t, level.IsLow())

	assert.True(t, level.CanFulfill(decimal.NewFromInt(15)))
	assert.False(t, level.CanFulfill(decimal.NewFromInt(16)))
}

func TestStockLevel_NoReorderLevelNeverLow(t *testing.T) {
	level := newLevel(t, 0)

	assert.False(t, level.IsLow())
}

func TestMovementType(t *testing.T) {
	increases := []MovementType{MovementTypeOpeningStock, MovementTypeStockIn, MovementTypeReturn}
	decreases := []MovementType{MovementTypeStockOut, MovementTypeSale, MovementTypeDamage, MovementTypeTheft}

	for _, mt := range increases {
		assert.True(t, mt.IsValid(), mt)
		assert.True(t, mt.IsIncrease(), mt)
		assert.False(t, mt.IsDecrease(), mt)
	}
	for _, mt := range decreases {
		assert.True(t, mt.IsValid(), mt)
		assert.True(t, mt.IsDecrease(), mt)
		assert.False(t, mt.IsIncrease(), mt)
	}

	assert.True(t, MovementTypeAdjustment.IsValid())
	assert.False(t, MovementTypeAdjustment.IsIncrease())
	assert.False(t, MovementTypeAdjustment.IsDecrease())

	assert.False(t, MovementType("transfer").IsValid())

	assert.True(t, MovementTypeStockIn.IsManual())
	assert.False(t, MovementTypeSale.IsManual())
	assert.False(t, MovementTypeReturn.IsManual())
}

func TestStockAlert(t *testing.T) {
	ownerID := uuid.New()
	itemID := uuid.New()

	t.Run("lifecycle", func(t *testing.T) {
		alert, err := NewStockAlert(ownerID, itemID, AlertTypeLowStock, decimal.NewFromInt(3), decimal.NewFromInt(5))
		require.NoError(t, err)
		assert.True(t, alert.IsOpen())

		require.NoError(t, alert.Acknowledge())
		assert.Equal(t, AlertStatusAcknowledged, alert.Status)
		assert.Error(t, alert.Acknowledge())

		alert.Resolve()
		assert.False(t, alert.IsOpen())
		assert.Error(t, alert.Acknowledge())
	})

	t.Run("rejects unknown type", func(t *testing.T) {
		_, err := NewStockAlert(ownerID, itemID, "overstock", decimal.Zero, decimal.Zero)
		assert.Error(t, err)
	})
}
