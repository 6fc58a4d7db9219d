package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/sales"
)

// RecordSaleLineRequest represents one product line of a sale being recorded
type RecordSaleLineRequest struct {
	ItemID   uuid.UUID       `json:"item_id" binding:"required"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	// UnitPrice overrides the catalog price for this line when set
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

// RecordSaleRequest represents a request to record a completed sale
type RecordSaleRequest struct {
	CustomerName  string                  `json:"customer_name" binding:"max=200"`
	CustomerPhone string                  `json:"customer_phone" binding:"max=50"`
	SaleDate      *time.Time              `json:"sale_date"`
	PaymentMethod string                  `json:"payment_method" binding:"omitempty,oneof=cash mobile_money bank credit"`
	Discount      *decimal.Decimal        `json:"discount"`
	Note          string                  `json:"note" binding:"max=255"`
	Items         []RecordSaleLineRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleListFilter represents filter options for the sale list
type SaleListFilter struct {
	Search        string     `form:"search"`
	Status        string     `form:"status" binding:"omitempty,oneof=completed cancelled"`
	PaymentMethod string     `form:"payment_method" binding:"omitempty,oneof=cash mobile_money bank credit"`
	StartDate     *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate       *time.Time `form:"end_date" time_format:"2006-01-02"`
	Page          int        `form:"page" binding:"min=0"`
	PageSize      int        `form:"page_size" binding:"min=0,max=100"`
}

// DailySummaryRequest represents the date range for the daily sales rollup
type DailySummaryRequest struct {
	StartDate time.Time `form:"start_date" time_format:"2006-01-02" binding:"required"`
	EndDate   time.Time `form:"end_date" time_format:"2006-01-02" binding:"required"`
}

// SaleLineResponse represents one sale line in API responses
type SaleLineResponse struct {
	ID        uuid.UUID       `json:"id"`
	ItemID    uuid.UUID       `json:"item_id"`
	ItemName  string          `json:"item_name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID            uuid.UUID          `json:"id"`
	SaleNumber    string             `json:"sale_number"`
	CustomerName  string             `json:"customer_name,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty"`
	SaleDate      time.Time          `json:"sale_date"`
	PaymentMethod string             `json:"payment_method"`
	Status        string             `json:"status"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	Total         decimal.Decimal    `json:"total"`
	Note          string             `json:"note,omitempty"`
	CancelledAt   *time.Time         `json:"cancelled_at,omitempty"`
	Items         []SaleLineResponse `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

// SaleListResponse represents a list item for sales, without lines
type SaleListResponse struct {
	ID            uuid.UUID       `json:"id"`
	SaleNumber    string          `json:"sale_number"`
	CustomerName  string          `json:"customer_name,omitempty"`
	SaleDate      time.Time       `json:"sale_date"`
	PaymentMethod string          `json:"payment_method"`
	Status        string          `json:"status"`
	Total         decimal.Decimal `json:"total"`
	LineCount     int             `json:"line_count"`
}

// DailySummaryResponse represents the per-day sales rollup
type DailySummaryResponse struct {
	Days         []DailyTotalResponse `json:"days"`
	TotalCount   int64                `json:"total_count"`
	TotalRevenue decimal.Decimal      `json:"total_revenue"`
}

// DailyTotalResponse represents one day in the rollup
type DailyTotalResponse struct {
	Day     time.Time       `json:"day"`
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// ToSaleResponse converts a domain sale to a response DTO
func ToSaleResponse(sale *sales.Sale) *SaleResponse {
	items := make([]SaleLineResponse, len(sale.Items))
	for i, line := range sale.Items {
		items[i] = SaleLineResponse{
			ID:        line.ID,
			ItemID:    line.ItemID,
			ItemName:  line.ItemName,
			Quantity:  line.Quantity,
			UnitPrice: line.UnitPrice,
			LineTotal: line.LineTotal,
		}
	}

	return &SaleResponse{
		ID:            sale.ID,
		SaleNumber:    sale.SaleNumber,
		CustomerName:  sale.CustomerName,
		CustomerPhone: sale.CustomerPhone,
		SaleDate:      sale.SaleDate,
		PaymentMethod: string(sale.PaymentMethod),
		Status:        string(sale.Status),
		Subtotal:      sale.Subtotal,
		Discount:      sale.Discount,
		Total:         sale.Total,
		Note:          sale.Note,
		CancelledAt:   sale.CancelledAt,
		Items:         items,
		CreatedAt:     sale.CreatedAt,
	}
}

// ToSaleListResponses converts domain sales to list DTOs
func ToSaleListResponses(items []sales.Sale) []SaleListResponse {
	responses := make([]SaleListResponse, len(items))
	for i := range items {
		s := &items[i]
		responses[i] = SaleListResponse{
			ID:            s.ID,
			SaleNumber:    s.SaleNumber,
			CustomerName:  s.CustomerName,
			SaleDate:      s.SaleDate,
			PaymentMethod: string(s.PaymentMethod),
			Status:        string(s.Status),
			Total:         s.Total,
			LineCount:     len(s.Items),
		}
	}
	return responses
}
