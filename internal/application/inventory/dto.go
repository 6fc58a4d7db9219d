package inventory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/inventory"
)

// RecordMovementRequest represents a request to record a manual stock movement
type RecordMovementRequest struct {
	ItemID    uuid.UUID        `json:"item_id" binding:"required"`
	Type      string           `json:"type" binding:"required,oneof=opening_stock stock_in stock_out damage theft"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required"`
	UnitCost  *decimal.Decimal `json:"unit_cost"`
	Reference string           `json:"reference" binding:"max=100"`
	Note      string           `json:"note" binding:"max=255"`
}

// AdjustStockRequest represents a request to set an absolute stock count
type AdjustStockRequest struct {
	ItemID      uuid.UUID       `json:"item_id" binding:"required"`
	NewQuantity decimal.Decimal `json:"new_quantity"`
	Note        string          `json:"note" binding:"max=255"`
}

// SetReorderLevelRequest represents a request to change an item's alert threshold
type SetReorderLevelRequest struct {
	ReorderLevel decimal.Decimal `json:"reorder_level"`
}

// StockListFilter represents filter options for the stock level list
type StockListFilter struct {
	Search   string `form:"search"`
	LowOnly  bool   `form:"low_only"`
	OutOnly  bool   `form:"out_only"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// MovementListFilter represents filter options for the movement ledger
type MovementListFilter struct {
	Type     string `form:"type" binding:"omitempty,oneof=opening_stock stock_in stock_out sale return adjustment damage theft"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
}

// AlertListFilter represents filter options for the stock alert list
type AlertListFilter struct {
	Status   string `form:"status" binding:"omitempty,oneof=active acknowledged resolved"`
	Type     string `form:"type" binding:"omitempty,oneof=low_stock out_of_stock"`
	Page     int    `form:"page" binding:"min=0"`
	PageSize int    `form:"page_size" binding:"min=0,max=100"`
}

// StockLevelResponse represents a stock level in API responses
type StockLevelResponse struct {
	ID           uuid.UUID       `json:"id"`
	ItemID       uuid.UUID       `json:"item_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	IsLow        bool            `json:"is_low"`
	IsOut        bool            `json:"is_out"`
	UpdatedAt    time.Time       `json:"updated_at"`
	Version      int             `json:"version"`
}

// StockMovementResponse represents a ledger entry in API responses
type StockMovementResponse struct {
	ID             uuid.UUID       `json:"id"`
	ItemID         uuid.UUID       `json:"item_id"`
	Type           string          `json:"type"`
	Quantity       decimal.Decimal `json:"quantity"`
	QuantityBefore decimal.Decimal `json:"quantity_before"`
	QuantityAfter  decimal.Decimal `json:"quantity_after"`
	UnitCost       decimal.Decimal `json:"unit_cost"`
	Reference      string          `json:"reference,omitempty"`
	Note           string          `json:"note,omitempty"`
	MovedAt        time.Time       `json:"moved_at"`
}

// StockAlertResponse represents a stock alert in API responses
type StockAlertResponse struct {
	ID           uuid.UUID       `json:"id"`
	ItemID       uuid.UUID       `json:"item_id"`
	Type         string          `json:"type"`
	Status       string          `json:"status"`
	Quantity     decimal.Decimal `json:"quantity"`
	ReorderLevel decimal.Decimal `json:"reorder_level"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// ToStockLevelResponse converts a domain stock level to a response DTO
func ToStockLevelResponse(level *inventory.StockLevel) *StockLevelResponse {
	return &StockLevelResponse{
		ID:           level.ID,
		ItemID:       level.ItemID,
		Quantity:     level.Quantity,
		ReorderLevel: level.ReorderLevel,
		IsLow:        level.IsLow(),
		IsOut:        level.IsOut(),
		UpdatedAt:    level.UpdatedAt,
		Version:      level.Version,
	}
}

// ToStockLevelResponses converts a slice of stock levels to response DTOs
func ToStockLevelResponses(levels []inventory.StockLevel) []StockLevelResponse {
	responses := make([]StockLevelResponse, len(levels))
	for i := range levels {
		responses[i] = *ToStockLevelResponse(&levels[i])
	}
	return responses
}

// ToStockMovementResponse converts a ledger entry to a response DTO
func ToStockMovementResponse(m *inventory.StockMovement) *StockMovementResponse {
	return &StockMovementResponse{
		ID:             m.ID,
		ItemID:         m.ItemID,
		Type:           m.Type.String(),
		Quantity:       m.Quantity,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		UnitCost:       m.UnitCost,
		Reference:      m.Reference,
		Note:           m.Note,
		MovedAt:        m.MovedAt,
	}
}

// ToStockMovementResponses converts a slice of ledger entries to response DTOs
func ToStockMovementResponses(movements []inventory.StockMovement) []StockMovementResponse {
	responses := make([]StockMovementResponse, len(movements))
	for i := range movements {
		responses[i] = *ToStockMovementResponse(&movements[i])
	}
	return responses
}

// ToStockAlertResponse converts a stock alert to a response DTO
func ToStockAlertResponse(a *inventory.StockAlert) *StockAlertResponse {
	return &StockAlertResponse{
		ID:           a.ID,
		ItemID:       a.ItemID,
		Type:         string(a.Type),
		Status:       string(a.Status),
		Quantity:     a.Quantity,
		ReorderLevel: a.ReorderLevel,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

// ToStockAlertResponses converts a slice of alerts to response DTOs
func ToStockAlertResponses(alerts []inventory.StockAlert) []StockAlertResponse {
	responses := make([]StockAlertResponse, len(alerts))
	for i := range alerts {
		responses[i] = *ToStockAlertResponse(&alerts[i])
	}
	return responses
}
