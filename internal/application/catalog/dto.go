package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/catalog"
)

// CreateItemRequest contains the input for creating a catalog item.
// Product fields apply when kind is product, service fields when kind is
// service; irrelevant fields are ignored.
type CreateItemRequest struct {
	Kind        string `json:"kind" binding:"required,oneof=product service"`
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=1000"`

	// Product fields
	SKU          string           `json:"sku" binding:"omitempty,max=50"`
	Unit         string           `json:"unit" binding:"omitempty,max=20"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	ReorderLevel *decimal.Decimal `json:"reorder_level"`

	// Service fields
	PricingModel     string           `json:"pricing_model" binding:"omitempty,oneof=hourly fixed"`
	Rate             *decimal.Decimal `json:"rate"`
	EstimatedMinutes *int             `json:"estimated_minutes" binding:"omitempty,min=0"`
}

// UpdateItemRequest contains optional item fields to change
type UpdateItemRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`

	UnitPrice    *decimal.Decimal `json:"unit_price"`
	CostPrice    *decimal.Decimal `json:"cost_price"`
	ReorderLevel *decimal.Decimal `json:"reorder_level"`

	PricingModel     *string          `json:"pricing_model" binding:"omitempty,oneof=hourly fixed"`
	Rate             *decimal.Decimal `json:"rate"`
	EstimatedMinutes *int             `json:"estimated_minutes" binding:"omitempty,min=0"`
}

// ItemListFilter contains filters for listing items
type ItemListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir"`
	Search   string `form:"search"`
	Kind     string `form:"kind" binding:"omitempty,oneof=product service"`
	Active   *bool  `form:"active"`
}

// ItemResponse contains full item data for API responses
type ItemResponse struct {
	ID          uuid.UUID `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`

	SKU          string          `json:"sku,omitempty"`
	Unit         string          `json:"unit,omitempty"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`

	PricingModel     string          `json:"pricing_model,omitempty"`
	Rate             decimal.Decimal `json:"rate"`
	EstimatedMinutes int             `json:"estimated_minutes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToItemResponse converts a domain item to a response DTO
func ToItemResponse(item *catalog.Item) ItemResponse {
	return ItemResponse{
		ID:               item.ID,
		Kind:             string(item.Kind),
		Name:             item.Name,
		Description:      item.Description,
		Active:           item.Active,
		SKU:              item.SKU,
		Unit:             item.Unit,
		UnitPrice:        item.UnitPrice,
		CostPrice:        item.CostPrice,
		ReorderLevel:     item.ReorderLevel,
		PricingModel:     string(item.PricingModel),
		Rate:             item.Rate,
		EstimatedMinutes: item.EstimatedMinutes,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}

// ToItemResponses converts a slice of domain items
func ToItemResponses(items []catalog.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i := range items {
		responses[i] = ToItemResponse(&items[i])
	}
	return responses
}
