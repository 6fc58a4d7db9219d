package inventory

import (
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AlertType represents the kind of stock alert
type AlertType string

const (
	AlertTypeLowStock   AlertType = "low_stock"
	AlertTypeOutOfStock AlertType = "out_of_stock"
)

// AlertStatus represents the lifecycle state of an alert
type AlertStatus string

const (
	AlertStatusActive       AlertStatus = "active"
	AlertStatusAcknowledged AlertStatus = "acknowledged"
	AlertStatusResolved     AlertStatus = "resolved"
)

// StockAlert flags a product whose quantity reached the reorder level or
// ran out. One unresolved alert exists per (item, type) at a time; it
// resolves automatically once stock recovers.
type StockAlert struct {
	shared.BaseEntity
	OwnerID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type           AlertType       `gorm:"type:varchar(20);not null"`
	Status         AlertStatus     `gorm:"type:varchar(20);not null;default:'active'"`
	Quantity       decimal.Decimal `gorm:"type:decimal(18,4);not null"` // Quantity when triggered
	ReorderLevel   decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	AcknowledgedAt *time.Time
	ResolvedAt     *time.Time
}

// TableName returns the table name for GORM
func (StockAlert) TableName() string {
	return "stock_alerts"
}

// NewStockAlert creates a new active alert
func NewStockAlert(ownerID, itemID uuid.UUID, alertType AlertType, quantity, reorderLevel decimal.Decimal) (*StockAlert, error) {
	if ownerID == uuid.Nil || itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ALERT", "Owner and item IDs cannot be empty")
	}
	switch alertType {
	case AlertTypeLowStock, AlertTypeOutOfStock:
	default:
		return nil, shared.NewDomainError("INVALID_ALERT_TYPE", "Unknown alert type")
	}

	return &StockAlert{
		BaseEntity:   shared.NewBaseEntity(),
		OwnerID:      ownerID,
		ItemID:       itemID,
		Type:         alertType,
		Status:       AlertStatusActive,
		Quantity:     quantity,
		ReorderLevel: reorderLevel,
	}, nil
}

// Acknowledge marks the alert as seen by the owner
func (a *StockAlert) Acknowledge() error {
	if a.Status == AlertStatusResolved {
		return shared.NewDomainError("ALERT_RESOLVED", "Cannot acknowledge a resolved alert")
	}
	if a.Status == AlertStatusAcknowledged {
		return shared.NewDomainError("ALREADY_ACKNOWLEDGED", "Alert is already acknowledged")
	}

	now := time.Now()
	a.Status = AlertStatusAcknowledged
	a.AcknowledgedAt = &now
	a.UpdatedAt = now

	return nil
}

// Resolve closes the alert once stock has recovered
func (a *StockAlert) Resolve() {
	if a.Status == AlertStatusResolved {
		return
	}

	now := time.Now()
	a.Status = AlertStatusResolved
	a.ResolvedAt = &now
	a.UpdatedAt = now
}

// IsOpen returns true while the alert has not been resolved
func (a *StockAlert) IsOpen() bool {
	return a.Status != AlertStatusResolved
}
