package inventory

import (
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockLevel tracks the on-hand quantity of one product for one owner.
// All changes go through ApplyMovement or ApplyAdjustment so the movement
// ledger and the live quantity can never diverge. The persistence layer
// locks the row for the duration of the enclosing transaction.
type StockLevel struct {
	shared.OwnerAggregateRoot
	ItemID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_owner_item,priority:2"`
	Quantity     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	ReorderLevel decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (StockLevel) TableName() string {
	return "stock_levels"
}

// NewStockLevel creates an empty stock level for a product
func NewStockLevel(ownerID, itemID uuid.UUID, reorderLevel decimal.Decimal) (*StockLevel, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if reorderLevel.IsNegative() {
		reorderLevel = decimal.Zero
	}

	return &StockLevel{
		OwnerAggregateRoot: shared.NewOwnerAggregateRoot(ownerID),
		ItemID:             itemID,
		Quantity:           decimal.Zero,
		ReorderLevel:       reorderLevel,
	}, nil
}

// ApplyMovement applies a directional movement (anything but adjustment)
// and returns the immutable ledger record. Decreasing movements that would
// drive the quantity below zero fail with INSUFFICIENT_STOCK and leave the
// level untouched.
func (s *StockLevel) ApplyMovement(movType MovementType, quantity decimal.Decimal) (*StockMovement, error) {
	if !movType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Invalid movement type")
	}
	if movType == MovementTypeAdjustment {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Adjustments must set an absolute quantity")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	before := s.Quantity
	var after decimal.Decimal
	if movType.IsDecrease() {
		after = before.Sub(quantity)
		if after.IsNegative() {
			return nil, shared.ErrInsufficientStock
		}
	} else {
		after = before.Add(quantity)
	}

	movement, err := NewStockMovement(s.OwnerID, s.ID, s.ItemID, movType, quantity, before, after)
	if err != nil {
		return nil, err
	}

	s.Quantity = after
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewStockLevelChangedEvent(s, movement))

	return movement, nil
}

// ApplyAdjustment sets the quantity to an absolute non-negative count,
// recording the delta as an adjustment movement. A no-op adjustment
// (same count) is rejected.
func (s *StockLevel) ApplyAdjustment(newQuantity decimal.Decimal) (*StockMovement, error) {
	if newQuantity.IsNegative() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Adjusted quantity cannot be negative")
	}

	before := s.Quantity
	delta := newQuantity.Sub(before)
	if delta.IsZero() {
		return nil, shared.NewDomainError("NO_CHANGE", "Adjustment matches the current quantity")
	}

	movement, err := NewStockMovement(s.OwnerID, s.ID, s.ItemID, MovementTypeAdjustment, delta.Abs(), before, newQuantity)
	if err != nil {
		return nil, err
	}

	s.Quantity = newQuantity
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewStockLevelChangedEvent(s, movement))

	return movement, nil
}

// SetReorderLevel updates the alert threshold
func (s *StockLevel) SetReorderLevel(level decimal.Decimal) error {
	if level.IsNegative() {
		return shared.NewDomainError("INVALID_REORDER_LEVEL", "Reorder level cannot be negative")
	}

	s.ReorderLevel = level
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// IsOut returns true when nothing is left
func (s *StockLevel) IsOut() bool {
	return s.Quantity.IsZero()
}

// IsLow returns true when the quantity is at or below the reorder level
// (and the level is configured)
func (s *StockLevel) IsLow() bool {
	if s.ReorderLevel.IsZero() {
		return false
	}
	return s.Quantity.LessThanOrEqual(s.ReorderLevel)
}

// CanFulfill returns true if the requested quantity is available
func (s *StockLevel) CanFulfill(quantity decimal.Decimal) bool {
	return s.Quantity.GreaterThanOrEqual(quantity)
}
