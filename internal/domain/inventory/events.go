package inventory

import (
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant for StockLevel
const AggregateTypeStockLevel = "StockLevel"

// Inventory domain event types
const (
	EventTypeStockLevelChanged = "StockLevelChanged"
)

// StockLevelChangedEvent is published whenever a movement changes a stock level
type StockLevelChangedEvent struct {
	shared.BaseDomainEvent
	ItemID         uuid.UUID       `json:"item_id"`
	MovementType   MovementType    `json:"movement_type"`
	Quantity       decimal.Decimal `json:"quantity"`
	QuantityBefore decimal.Decimal `json:"quantity_before"`
	QuantityAfter  decimal.Decimal `json:"quantity_after"`
}

// NewStockLevelChangedEvent creates a new StockLevelChangedEvent
func NewStockLevelChangedEvent(level *StockLevel, movement *StockMovement) *StockLevelChangedEvent {
	return &StockLevelChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockLevelChanged, AggregateTypeStockLevel, level.ID, level.OwnerID),
		ItemID:          level.ItemID,
		MovementType:    movement.Type,
		Quantity:        movement.Quantity,
		QuantityBefore:  movement.QuantityBefore,
		QuantityAfter:   movement.QuantityAfter,
	}
}
