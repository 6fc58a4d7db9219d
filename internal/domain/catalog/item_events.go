package catalog

import (
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant for Item
const AggregateTypeItem = "CatalogItem"

// Item domain event types
const (
	EventTypeItemCreated       = "CatalogItemCreated"
	EventTypeItemUpdated       = "CatalogItemUpdated"
	EventTypeItemPriceChanged  = "CatalogItemPriceChanged"
	EventTypeItemStatusChanged = "CatalogItemStatusChanged"
)

// ItemCreatedEvent is published when a catalog item is created
type ItemCreatedEvent struct {
	shared.BaseDomainEvent
	Kind ItemKind `json:"kind"`
	Name string   `json:"name"`
	SKU  string   `json:"sku,omitempty"`
}

// NewItemCreatedEvent creates a new ItemCreatedEvent
func NewItemCreatedEvent(item *Item) *ItemCreatedEvent {
	return &ItemCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemCreated, AggregateTypeItem, item.ID, item.OwnerID),
		Kind:            item.Kind,
		Name:            item.Name,
		SKU:             item.SKU,
	}
}

// ItemUpdatedEvent is published when a catalog item is updated
type ItemUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewItemUpdatedEvent creates a new ItemUpdatedEvent
func NewItemUpdatedEvent(item *Item) *ItemUpdatedEvent {
	return &ItemUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemUpdated, AggregateTypeItem, item.ID, item.OwnerID),
		Name:            item.Name,
	}
}

// ItemPriceChangedEvent is published when a product's prices change
type ItemPriceChangedEvent struct {
	shared.BaseDomainEvent
	OldUnitPrice decimal.Decimal `json:"old_unit_price"`
	NewUnitPrice decimal.Decimal `json:"new_unit_price"`
}

// NewItemPriceChangedEvent creates a new ItemPriceChangedEvent
func NewItemPriceChangedEvent(item *Item, oldUnitPrice decimal.Decimal) *ItemPriceChangedEvent {
	return &ItemPriceChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemPriceChanged, AggregateTypeItem, item.ID, item.OwnerID),
		OldUnitPrice:    oldUnitPrice,
		NewUnitPrice:    item.UnitPrice,
	}
}

// ItemStatusChangedEvent is published when an item is activated or deactivated
type ItemStatusChangedEvent struct {
	shared.BaseDomainEvent
	Active bool `json:"active"`
}

// NewItemStatusChangedEvent creates a new ItemStatusChangedEvent
func NewItemStatusChangedEvent(item *Item) *ItemStatusChangedEvent {
	return &ItemStatusChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemStatusChanged, AggregateTypeItem, item.ID, item.OwnerID),
		Active:          item.Active,
	}
}
