package accounting

import (
	"strings"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetCategory classifies business assets
type AssetCategory string

const (
	AssetCategoryEquipment AssetCategory = "equipment"
	AssetCategoryVehicle   AssetCategory = "vehicle"
	AssetCategoryFurniture AssetCategory = "furniture"
	AssetCategoryBuilding  AssetCategory = "building"
	AssetCategoryOther     AssetCategory = "other"
)

// IsValid returns true if the category is known
func (c AssetCategory) IsValid() bool {
	switch c {
	case AssetCategoryEquipment, AssetCategoryVehicle, AssetCategoryFurniture,
		AssetCategoryBuilding, AssetCategoryOther:
		return true
	}
	return false
}

// AssetStatus represents the lifecycle state of an asset
type AssetStatus string

const (
	AssetStatusActive   AssetStatus = "active"
	AssetStatusDisposed AssetStatus = "disposed"
	AssetStatusSold     AssetStatus = "sold"
)

// Asset is a durable item the business owns. Only active assets count
// toward the asset totals in summaries; the effective value is the current
// value when recorded, falling back to the purchase value.
type Asset struct {
	shared.OwnerAggregateRoot
	Name          string           `gorm:"type:varchar(200);not null"`
	Category      AssetCategory    `gorm:"type:varchar(30);not null;index"`
	PurchaseValue decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	PurchaseDate  time.Time        `gorm:"type:date;not null"`
	CurrentValue  *decimal.Decimal `gorm:"type:decimal(18,2)"`
	Status        AssetStatus      `gorm:"type:varchar(20);not null;default:'active'"`
	Notes         string           `gorm:"type:varchar(255)"`
	DisposedAt    *time.Time
}

// TableName returns the table name for GORM
func (Asset) TableName() string {
	return "assets"
}

// NewAsset creates a new active asset
func NewAsset(ownerID uuid.UUID, name string, category AssetCategory, purchaseValue decimal.Decimal, purchaseDate time.Time) (*Asset, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Asset name cannot be empty")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown asset category")
	}
	if purchaseValue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_VALUE", "Purchase value cannot be negative")
	}
	if purchaseDate.IsZero() {
		purchaseDate = time.Now()
	}

	return &Asset{
		OwnerAggregateRoot: shared.NewOwnerAggregateRoot(ownerID),
		Name:               name,
		Category:           category,
		PurchaseValue:      purchaseValue.Round(2),
		PurchaseDate:       purchaseDate,
		Status:             AssetStatusActive,
	}, nil
}

// Update updates the asset's details
func (a *Asset) Update(name string, category AssetCategory, notes string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Asset name cannot be empty")
	}
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Unknown asset category")
	}

	a.Name = name
	a.Category = category
	a.Notes = notes
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// SetCurrentValue records a revaluation
func (a *Asset) SetCurrentValue(value decimal.Decimal) error {
	if value.IsNegative() {
		return shared.NewDomainError("INVALID_VALUE", "Current value cannot be negative")
	}

	rounded := value.Round(2)
	a.CurrentValue = &rounded
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	return nil
}

// EffectiveValue returns the current value, falling back to purchase value
func (a *Asset) EffectiveValue() decimal.Decimal {
	if a.CurrentValue != nil {
		return *a.CurrentValue
	}
	return a.PurchaseValue
}

// Dispose marks the asset disposed or sold
func (a *Asset) Dispose(status AssetStatus) error {
	if status != AssetStatusDisposed && status != AssetStatusSold {
		return shared.NewDomainError("INVALID_STATUS", "Disposal status must be disposed or sold")
	}
	if a.Status != AssetStatusActive {
		return shared.NewDomainError("NOT_ACTIVE", "Only active assets can be disposed")
	}

	now := time.Now()
	a.Status = status
	a.DisposedAt = &now
	a.UpdatedAt = now
	a.IncrementVersion()

	return nil
}

// IsActive returns true while the asset is in use
func (a *Asset) IsActive() bool {
	return a.Status == AssetStatusActive
}
