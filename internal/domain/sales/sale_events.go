package sales

import (
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant for Sale
const AggregateTypeSale = "Sale"

// Sale domain event types
const (
	EventTypeSaleRecorded  = "SaleRecorded"
	EventTypeSaleCancelled = "SaleCancelled"
)

// SaleRecordedEvent is published when a sale is recorded
type SaleRecordedEvent struct {
	shared.BaseDomainEvent
	SaleNumber string          `json:"sale_number"`
	Total      decimal.Decimal `json:"total"`
	LineCount  int             `json:"line_count"`
}

// NewSaleRecordedEvent creates a new SaleRecordedEvent
func NewSaleRecordedEvent(sale *Sale) *SaleRecordedEvent {
	return &SaleRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleRecorded, AggregateTypeSale, sale.ID, sale.OwnerID),
		SaleNumber:      sale.SaleNumber,
		Total:           sale.Total,
		LineCount:       len(sale.Items),
	}
}

// SaleCancelledEvent is published when a sale is cancelled
type SaleCancelledEvent struct {
	shared.BaseDomainEvent
	SaleNumber string          `json:"sale_number"`
	Total      decimal.Decimal `json:"total"`
}

// NewSaleCancelledEvent creates a new SaleCancelledEvent
func NewSaleCancelledEvent(sale *Sale) *SaleCancelledEvent {
	return &SaleCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleCancelled, AggregateTypeSale, sale.ID, sale.OwnerID),
		SaleNumber:      sale.SaleNumber,
		Total:           sale.Total,
	}
}
