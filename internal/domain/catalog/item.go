package catalog

import (
	"strings"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemKind distinguishes inventory-tracked products from billed services
type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindService ItemKind = "service"
)

// PricingModel describes how a service item is charged
type PricingModel string

const (
	PricingModelHourly PricingModel = "hourly"
	PricingModelFixed  PricingModel = "fixed"
)

// Item represents a sellable catalog entry: a physical product or a service.
// Products carry stock-related fields (SKU, cost price, reorder level);
// services carry a pricing model and rate. Historical transactions keep
// referencing deactivated items, so items are never hard-deleted.
type Item struct {
	shared.OwnerAggregateRoot
	Kind        ItemKind `gorm:"type:varchar(20);not null;index"`
	Name        string   `gorm:"type:varchar(200);not null"`
	Description string   `gorm:"type:text"`
	Active      bool     `gorm:"not null;default:true"`

	// Product fields
	SKU          string          `gorm:"type:varchar(50);index"`
	UnitPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CostPrice    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Unit         string          `gorm:"type:varchar(20)"` // e.g. "pcs", "kg", "crate"
	ReorderLevel decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`

	// Service fields
	PricingModel     PricingModel    `gorm:"type:varchar(20)"`
	Rate             decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	EstimatedMinutes int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "catalog_items"
}

// NewProduct creates a new product item. An empty SKU gets a generated one.
func NewProduct(ownerID uuid.UUID, name, sku, unit string, unitPrice, costPrice valueobject.Money) (*Item, error) {
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	if sku == "" {
		sku = GenerateSKU()
	}
	if err := validateSKU(sku); err != nil {
		return nil, err
	}
	if unit == "" {
		unit = "pcs"
	}
	if len(unit) > 20 {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit cannot exceed 20 characters")
	}
	if unitPrice.Amount().IsNegative() || costPrice.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}

	item := &Item{
		OwnerAggregateRoot: shared.NewOwnerAggregateRoot(ownerID),
		Kind:               ItemKindProduct,
		Name:               strings.TrimSpace(name),
		Active:             true,
		SKU:                strings.ToUpper(sku),
		UnitPrice:          unitPrice.Amount(),
		CostPrice:          costPrice.Amount(),
		Unit:               unit,
		ReorderLevel:       decimal.Zero,
	}

	item.AddDomainEvent(NewItemCreatedEvent(item))

	return item, nil
}

// NewService creates a new service item
func NewService(ownerID uuid.UUID, name string, model PricingModel, rate valueobject.Money) (*Item, error) {
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	switch model {
	case PricingModelHourly, PricingModelFixed:
	default:
		return nil, shared.NewDomainError("INVALID_PRICING_MODEL", "Pricing model must be hourly or fixed")
	}
	if rate.Amount().IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Rate cannot be negative")
	}

	item := &Item{
		OwnerAggregateRoot: shared.NewOwnerAggregateRoot(ownerID),
		Kind:               ItemKindService,
		Name:               strings.TrimSpace(name),
		Active:             true,
		PricingModel:       model,
		Rate:               rate.Amount(),
	}

	item.AddDomainEvent(NewItemCreatedEvent(item))

	return item, nil
}

// Update updates name and description
func (i *Item) Update(name, description string) error {
	if err := validateItemName(name); err != nil {
		return err
	}

	i.Name = strings.TrimSpace(name)
	i.Description = description
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemUpdatedEvent(i))

	return nil
}

// SetPrices sets product prices. Past transactions keep the price captured
// at sale time, so this never rewrites history.
func (i *Item) SetPrices(unitPrice, costPrice valueobject.Money) error {
	if i.Kind != ItemKindProduct {
		return shared.NewDomainError("NOT_A_PRODUCT", "Only product items carry unit and cost prices")
	}
	if unitPrice.Amount().IsNegative() || costPrice.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}

	oldUnit := i.UnitPrice
	i.UnitPrice = unitPrice.Amount()
	i.CostPrice = costPrice.Amount()
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemPriceChangedEvent(i, oldUnit))

	return nil
}

// SetRate sets the service rate
func (i *Item) SetRate(model PricingModel, rate valueobject.Money) error {
	if i.Kind != ItemKindService {
		return shared.NewDomainError("NOT_A_SERVICE", "Only service items carry a rate")
	}
	switch model {
	case PricingModelHourly, PricingModelFixed:
	default:
		return shared.NewDomainError("INVALID_PRICING_MODEL", "Pricing model must be hourly or fixed")
	}
	if rate.Amount().IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Rate cannot be negative")
	}

	i.PricingModel = model
	i.Rate = rate.Amount()
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetEstimatedMinutes sets the estimated duration for a service
func (i *Item) SetEstimatedMinutes(minutes int) error {
	if i.Kind != ItemKindService {
		return shared.NewDomainError("NOT_A_SERVICE", "Only service items carry a duration")
	}
	if minutes < 0 {
		return shared.NewDomainError("INVALID_DURATION", "Duration cannot be negative")
	}

	i.EstimatedMinutes = minutes
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetReorderLevel sets the stock level below which alerts are raised
func (i *Item) SetReorderLevel(level decimal.Decimal) error {
	if i.Kind != ItemKindProduct {
		return shared.NewDomainError("NOT_A_PRODUCT", "Only product items carry a reorder level")
	}
	if level.IsNegative() {
		return shared.NewDomainError("INVALID_REORDER_LEVEL", "Reorder level cannot be negative")
	}

	i.ReorderLevel = level
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// Activate re-enables the item for new transactions
func (i *Item) Activate() error {
	if i.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Item is already active")
	}

	i.Active = true
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemStatusChangedEvent(i))

	return nil
}

// Deactivate hides the item from new transactions. Existing sales and
// work records keep referencing it.
func (i *Item) Deactivate() error {
	if !i.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Item is already inactive")
	}

	i.Active = false
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemStatusChangedEvent(i))

	return nil
}

// IsProduct returns true for product items
func (i *Item) IsProduct() bool {
	return i.Kind == ItemKindProduct
}

// IsService returns true for service items
func (i *Item) IsService() bool {
	return i.Kind == ItemKindService
}

// GetUnitPriceMoney returns the unit price as Money
func (i *Item) GetUnitPriceMoney() valueobject.Money {
	return valueobject.NewMoneyZMW(i.UnitPrice)
}

// GetCostPriceMoney returns the cost price as Money
func (i *Item) GetCostPriceMoney() valueobject.Money {
	return valueobject.NewMoneyZMW(i.CostPrice)
}

// GetRateMoney returns the service rate as Money
func (i *Item) GetRateMoney() valueobject.Money {
	return valueobject.NewMoneyZMW(i.Rate)
}

// GenerateSKU produces a product SKU of the form PRD-XXXXXX
func GenerateSKU() string {
	return "PRD-" + strings.ToUpper(uuid.New().String()[:6])
}

func validateItemName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 200 characters")
	}
	return nil
}

func validateSKU(sku string) error {
	if len(sku) > 50 {
		return shared.NewDomainError("INVALID_SKU", "SKU cannot exceed 50 characters")
	}
	for _, r := range sku {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_SKU", "SKU can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}
