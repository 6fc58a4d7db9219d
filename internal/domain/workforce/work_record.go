package workforce

import (
	"strings"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents whether a work record has been paid
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// WorkRecord is one performed service job. Only paid records count as
// income; marking a record paid writes an income record dated by the work
// date, and marking it unpaid removes that income again. Paid records
// cannot be deleted.
type WorkRecord struct {
	shared.OwnerAggregateRoot
	WorkerID      *uuid.UUID      `gorm:"type:uuid;index"`
	ServiceItemID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ServiceName   string          `gorm:"type:varchar(200);not null"` // Captured at record time
	CustomerName  string          `gorm:"type:varchar(200)"`
	WorkDate      time.Time       `gorm:"type:date;not null;index"`
	Hours         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Amount        decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	PaymentStatus PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending'"`
	Notes         string          `gorm:"type:varchar(255)"`
	PaidAt        *time.Time
}

// TableName returns the table name for GORM
func (WorkRecord) TableName() string {
	return "work_records"
}

// NewWorkRecord creates a new pending work record. The amount is what the
// customer owes for the job; callers compute it from the service pricing
// model (hourly rate times hours, or the fixed rate) unless overridden.
func NewWorkRecord(
	ownerID, serviceItemID uuid.UUID,
	serviceName string,
	workDate time.Time,
	hours, amount decimal.Decimal,
) (*WorkRecord, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if serviceItemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SERVICE", "Service item ID cannot be empty")
	}
	if hours.IsNegative() {
		return nil, shared.NewDomainError("INVALID_HOURS", "Hours cannot be negative")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	if workDate.IsZero() {
		workDate = time.Now()
	}

	return &WorkRecord{
		OwnerAggregateRoot: shared.NewOwnerAggregateRoot(ownerID),
		ServiceItemID:      serviceItemID,
		ServiceName:        strings.TrimSpace(serviceName),
		WorkDate:           workDate,
		Hours:              hours,
		Amount:             amount.Round(2),
		PaymentStatus:      PaymentStatusPending,
	}, nil
}

// AssignWorker sets who performed the job
func (r *WorkRecord) AssignWorker(workerID uuid.UUID) {
	r.WorkerID = &workerID
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// SetCustomer sets the customer name
func (r *WorkRecord) SetCustomer(name string) {
	r.CustomerName = strings.TrimSpace(name)
	r.UpdatedAt = time.Now()
}

// SetNotes sets free-form notes
func (r *WorkRecord) SetNotes(notes string) {
	r.Notes = notes
	r.UpdatedAt = time.Now()
}

// MarkPaid transitions the record to paid
func (r *WorkRecord) MarkPaid() error {
	if r.PaymentStatus == PaymentStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Work record is already paid")
	}

	now := time.Now()
	r.PaymentStatus = PaymentStatusPaid
	r.PaidAt = &now
	r.UpdatedAt = now
	r.IncrementVersion()

	r.AddDomainEvent(NewWorkRecordPaidEvent(r))

	return nil
}

// MarkUnpaid reverts a paid record to pending
func (r *WorkRecord) MarkUnpaid() error {
	if r.PaymentStatus != PaymentStatusPaid {
		return shared.NewDomainError("NOT_PAID", "Work record is not paid")
	}

	r.PaymentStatus = PaymentStatusPending
	r.PaidAt = nil
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewWorkRecordUnpaidEvent(r))

	return nil
}

// IsPaid returns true if the record has been paid
func (r *WorkRecord) IsPaid() bool {
	return r.PaymentStatus == PaymentStatusPaid
}

// ComputeAmount derives the amount owed from a pricing model and rate
func ComputeAmount(model string, rate, hours decimal.Decimal) decimal.Decimal {
	if model == "hourly" {
		return rate.Mul(hours).Round(2)
	}
	return rate.Round(2)
}
