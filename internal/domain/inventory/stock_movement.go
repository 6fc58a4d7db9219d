package inventory

import (
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType represents the type of stock movement
type MovementType string

const (
	// MovementTypeOpeningStock records the initial count when tracking starts
	MovementTypeOpeningStock MovementType = "opening_stock"
	// MovementTypeStockIn records purchased or received stock
	MovementTypeStockIn MovementType = "stock_in"
	// MovementTypeStockOut records stock manually taken out (own use, transfer)
	MovementTypeStockOut MovementType = "stock_out"
	// MovementTypeSale records stock sold through a sale transaction
	MovementTypeSale MovementType = "sale"
	// MovementTypeReturn records stock coming back from a cancelled sale
	MovementTypeReturn MovementType = "return"
	// MovementTypeAdjustment records a count correction after stocktaking
	MovementTypeAdjustment MovementType = "adjustment"
	// MovementTypeDamage records stock written off as damaged
	MovementTypeDamage MovementType = "damage"
	// MovementTypeTheft records stock written off as stolen
	MovementTypeTheft MovementType = "theft"
)

// String returns the string representation of MovementType
func (t MovementType) String() string {
	return string(t)
}

// IsValid returns true if the movement type is valid
func (t MovementType) IsValid() bool {
	switch t {
	case MovementTypeOpeningStock,
		MovementTypeStockIn,
		MovementTypeStockOut,
		MovementTypeSale,
		MovementTypeReturn,
		MovementTypeAdjustment,
		MovementTypeDamage,
		MovementTypeTheft:
		return true
	}
	return false
}

// IsIncrease returns true if this movement type increases the stock level
func (t MovementType) IsIncrease() bool {
	switch t {
	case MovementTypeOpeningStock,
		MovementTypeStockIn,
		MovementTypeReturn:
		return true
	}
	return false
}

// IsDecrease returns true if this movement type decreases the stock level
func (t MovementType) IsDecrease() bool {
	switch t {
	case MovementTypeStockOut,
		MovementTypeSale,
		MovementTypeDamage,
		MovementTypeTheft:
		return true
	}
	return false
}

// IsManual returns true if the movement can be recorded directly through
// the inventory API. Sale and return movements are only written by the
// sale cascades.
func (t MovementType) IsManual() bool {
	switch t {
	case MovementTypeOpeningStock,
		MovementTypeStockIn,
		MovementTypeStockOut,
		MovementTypeAdjustment,
		MovementTypeDamage,
		MovementTypeTheft:
		return true
	}
	return false
}

// StockMovement is an immutable ledger record of a stock change.
// Once created, movements are never updated or deleted; corrections are
// recorded as new movements.
type StockMovement struct {
	shared.BaseEntity
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null;index:idx_stock_mv_owner_time,priority:1"`
	StockLevelID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type           MovementType    `gorm:"type:varchar(20);not null;index"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Always positive, direction from Type
	QuantityBefore decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	QuantityAfter  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Reference      string          `gorm:"type:varchar(100);index"` // e.g. sale number, REV-<sale number>
	Note           string          `gorm:"type:varchar(255)"`
	MovedAt        time.Time       `gorm:"type:timestamptz;not null;index:idx_stock_mv_owner_time,priority:2"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement creates a new movement record. Callers are expected to
// have computed before/after from a locked stock row.
func NewStockMovement(
	ownerID, stockLevelID, itemID uuid.UUID,
	movType MovementType,
	quantity, quantityBefore, quantityAfter decimal.Decimal,
) (*StockMovement, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if stockLevelID == uuid.Nil || itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Stock level and item IDs cannot be empty")
	}
	if !movType.IsValid() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "Invalid movement type")
	}
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if quantityAfter.IsNegative() {
		return nil, shared.ErrInsufficientStock
	}

	return &StockMovement{
		BaseEntity:     shared.NewBaseEntity(),
		OwnerID:        ownerID,
		StockLevelID:   stockLevelID,
		ItemID:         itemID,
		Type:           movType,
		Quantity:       quantity,
		QuantityBefore: quantityBefore,
		QuantityAfter:  quantityAfter,
		MovedAt:        time.Now(),
	}, nil
}

// WithUnitCost sets the unit cost at movement time
func (m *StockMovement) WithUnitCost(cost decimal.Decimal) *StockMovement {
	m.UnitCost = cost
	return m
}

// WithReference sets the reference (sale number, receipt number, ...)
func (m *StockMovement) WithReference(reference string) *StockMovement {
	m.Reference = reference
	return m
}

// WithNote sets a free-form note
func (m *StockMovement) WithNote(note string) *StockMovement {
	m.Note = note
	return m
}

// SignedQuantity returns the quantity with sign based on movement type.
// Adjustments are signed by the before/after delta.
func (m *StockMovement) SignedQuantity() decimal.Decimal {
	if m.Type == MovementTypeAdjustment {
		return m.QuantityAfter.Sub(m.QuantityBefore)
	}
	if m.Type.IsDecrease() {
		return m.Quantity.Neg()
	}
	return m.Quantity
}
