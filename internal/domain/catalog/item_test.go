package catalog

import (
	"strings"
	"testing"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMoney(t *testing.T, s string) valueobject.Money {
	t.Helper()
	m, err := valueobject.NewMoneyZMWFromString(s)
	require.NoError(t, err)
	return m
}

func TestNewProduct(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates product with explicit SKU", func(t *testing.T) {
		item, err := NewProduct(ownerID, "Mealie Meal 25kg", "mm-25", "bag", mustMoney(t, "260.00"), mustMoney(t, "215.00"))

		require.NoError(t, err)
		assert.Equal(t, ItemKindProduct, item.Kind)
		assert.Equal(t, ownerID, item.OwnerID)
		assert.Equal(t, "MM-25", item.SKU)
		assert.Equal(t, "bag", item.Unit)
		assert.True(t, item.Active)
		assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("260.00")))

		events := item.GetDomainEvents()
		require.Len(t, events, 1)
		_, ok := events[0].(*ItemCreatedEvent)
		assert.True(t, ok)
	})

	t.Run("generates SKU when absent", func(t *testing.T) {
		item, err := NewProduct(ownerID, "Cooking Oil 2L", "", "", mustMoney(t, "85.00"), mustMoney(t, "70.00"))

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(item.SKU, "PRD-"))
		assert.Len(t, item.SKU, 10)
		assert.Equal(t, "pcs", item.Unit)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewProduct(ownerID, "  ", "", "", mustMoney(t, "1"), mustMoney(t, "1"))
		assert.Error(t, err)
	})

	t.Run("rejects negative price", func(t *testing.T) {
		_, err := NewProduct(ownerID, "Sugar", "", "", mustMoney(t, "-5"), mustMoney(t, "1"))
		assert.Error(t, err)
	})

	t.Run("rejects SKU with invalid characters", func(t *testing.T) {
		_, err := NewProduct(ownerID, "Sugar", "SK U!", "", mustMoney(t, "1"), mustMoney(t, "1"))
		assert.Error(t, err)
	})
}

func TestNewService(t *testing.T) {
	ownerID := uuid.New()

	t.Run("creates hourly service", func(t *testing.T) {
		item, err := NewService(ownerID, "Hair Braiding", PricingModelHourly, mustMoney(t, "50.00"))

		require.NoError(t, err)
		assert.Equal(t, ItemKindService, item.Kind)
		assert.Equal(t, PricingModelHourly, item.PricingModel)
		assert.True(t, item.IsService())
		assert.Empty(t, item.SKU)
	})

	t.Run("rejects unknown pricing model", func(t *testing.T) {
		_, err := NewService(ownerID, "Repairs", "per-job", mustMoney(t, "50.00"))
		assert.Error(t, err)
	})
}

func TestItem_SetPrices(t *testing.T) {
	ownerID := uuid.New()

	t.Run("updates product prices", func(t *testing.T) {
		item, _ := NewProduct(ownerID, "Sugar 1kg", "", "", mustMoney(t, "30.00"), mustMoney(t, "24.00"))
		item.ClearDomainEvents()

		err := item.SetPrices(mustMoney(t, "32.00"), mustMoney(t, "25.00"))

		require.NoError(t, err)
		assert.True(t, item.UnitPrice.Equal(decimal.RequireFromString("32.00")))
		assert.Equal(t, 2, item.GetVersion())

		events := item.GetDomainEvents()
		require.Len(t, events, 1)
		priceEvent, ok := events[0].(*ItemPriceChangedEvent)
		require.True(t, ok)
		assert.True(t, priceEvent.OldUnitPrice.Equal(decimal.RequireFromString("30.00")))
	})

	t.Run("rejects price change on service", func(t *testing.T) {
		item, _ := NewService(ownerID, "Braiding", PricingModelFixed, mustMoney(t, "150.00"))

		err := item.SetPrices(mustMoney(t, "1"), mustMoney(t, "1"))

		assert.Error(t, err)
	})
}

func TestItem_ActivationLifecycle(t *testing.T) {
	ownerID := uuid.New()
	item, _ := NewProduct(ownerID, "Bread", "", "", mustMoney(t, "15.00"), mustMoney(t, "11.00"))

	require.NoError(t, item.Deactivate())
	assert.False(t, item.Active)

	assert.Error(t, item.Deactivate())

	require.NoError(t, item.Activate())
	assert.True(t, item.Active)

	assert.Error(t, item.Activate())
}

func TestItem_SetReorderLevel(t *testing.T) {
	ownerID := uuid.New()

	t.Run("sets level on product", func(t *testing.T) {
		item, _ := NewProduct(ownerID, "Bread", "", "", mustMoney(t, "15"), mustMoney(t, "11"))

		err := item.SetReorderLevel(decimal.NewFromInt(10))

		require.NoError(t, err)
		assert.True(t, item.ReorderLevel.Equal(decimal.NewFromInt(10)))
	})

	t.Run("rejects level on service", func(t *testing.T) {
		item, _ := NewService(ownerID, "Braiding", PricingModelFixed, mustMoney(t, "150"))

		err := item.SetReorderLevel(decimal.NewFromInt(10))

		assert.Error(t, err)
	})

	t.Run("rejects negative level", func(t *testing.T) {
		item, _ := NewProduct(ownerID, "Bread", "", "", mustMoney(t, "15"), mustMoney(t, "11"))

		err := item.SetReorderLevel(decimal.NewFromInt(-1))

		assert.Error(t, err)
	})
}
