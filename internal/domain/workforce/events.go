package workforce

import (
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Aggregate type constant for WorkRecord
const AggregateTypeWorkRecord = "WorkRecord"

// Workforce domain event types
const (
	EventTypeWorkRecordPaid   = "WorkRecordPaid"
	EventTypeWorkRecordUnpaid = "WorkRecordUnpaid"
)

// WorkRecordPaidEvent is published when a work record is marked paid
type WorkRecordPaidEvent struct {
	shared.BaseDomainEvent
	ServiceName string          `json:"service_name"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewWorkRecordPaidEvent creates a new WorkRecordPaidEvent
func NewWorkRecordPaidEvent(record *WorkRecord) *WorkRecordPaidEvent {
	return &WorkRecordPaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeWorkRecordPaid, AggregateTypeWorkRecord, record.ID, record.OwnerID),
		ServiceName:     record.ServiceName,
		Amount:          record.Amount,
	}
}

// WorkRecordUnpaidEvent is published when a paid record reverts to pending
type WorkRecordUnpaidEvent struct {
	shared.BaseDomainEvent
	ServiceName string          `json:"service_name"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewWorkRecordUnpaidEvent creates a new WorkRecordUnpaidEvent
func NewWorkRecordUnpaidEvent(record *WorkRecord) *WorkRecordUnpaidEvent {
	return &WorkRecordUnpaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeWorkRecordUnpaid, AggregateTypeWorkRecord, record.ID, record.OwnerID),
		ServiceName:     record.ServiceName,
		Amount:          record.Amount,
	}
}
