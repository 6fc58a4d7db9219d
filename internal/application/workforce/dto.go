package workforce

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/workforce"
)

// CreateWorkerRequest contains the input for adding a worker
type CreateWorkerRequest struct {
	Name       string           `json:"name" binding:"required,max=200"`
	Phone      string           `json:"phone" binding:"omitempty,max=50"`
	Role       string           `json:"role" binding:"omitempty,max=100"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
}

// UpdateWorkerRequest contains optional worker fields to change
type UpdateWorkerRequest struct {
	Name       *string          `json:"name" binding:"omitempty,max=200"`
	Phone      *string          `json:"phone" binding:"omitempty,max=50"`
	Role       *string          `json:"role" binding:"omitempty,max=100"`
	HourlyRate *decimal.Decimal `json:"hourly_rate"`
}

// WorkerListFilter contains filters for listing workers
type WorkerListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Search   string `form:"search"`
	Active   *bool  `form:"active"`
}

// CreateWorkRecordRequest contains the input for recording a performed job.
// Amount is derived from the service's pricing model unless overridden.
type CreateWorkRecordRequest struct {
	ServiceItemID uuid.UUID        `json:"service_item_id" binding:"required"`
	WorkerID      *uuid.UUID       `json:"worker_id"`
	CustomerName  string           `json:"customer_name" binding:"omitempty,max=200"`
	WorkDate      *time.Time       `json:"work_date"`
	Hours         *decimal.Decimal `json:"hours"`
	Amount        *decimal.Decimal `json:"amount"`
	Notes         string           `json:"notes" binding:"omitempty,max=255"`
}

// WorkRecordListFilter contains filters for listing work records
type WorkRecordListFilter struct {
	Page          int        `form:"page"`
	PageSize      int        `form:"page_size"`
	WorkerID      *uuid.UUID `form:"worker_id"`
	PaymentStatus string     `form:"payment_status" binding:"omitempty,oneof=pending paid"`
	StartDate     *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate       *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// WorkerResponse contains worker data for API responses
type WorkerResponse struct {
	ID         uuid.UUID       `json:"id"`
	Name       string          `json:"name"`
	Phone      string          `json:"phone,omitempty"`
	Role       string          `json:"role,omitempty"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
}

// WorkRecordResponse contains work record data for API responses
type WorkRecordResponse struct {
	ID            uuid.UUID       `json:"id"`
	WorkerID      *uuid.UUID      `json:"worker_id,omitempty"`
	ServiceItemID uuid.UUID       `json:"service_item_id"`
	ServiceName   string          `json:"service_name"`
	CustomerName  string          `json:"customer_name,omitempty"`
	WorkDate      time.Time       `json:"work_date"`
	Hours         decimal.Decimal `json:"hours"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"payment_status"`
	Notes         string          `json:"notes,omitempty"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToWorkerResponse converts a domain worker to a response DTO
func ToWorkerResponse(worker *workforce.Worker) WorkerResponse {
	return WorkerResponse{
		ID:         worker.ID,
		Name:       worker.Name,
		Phone:      worker.Phone,
		Role:       worker.Role,
		HourlyRate: worker.HourlyRate,
		Active:     worker.Active,
		CreatedAt:  worker.CreatedAt,
	}
}

// ToWorkerResponses converts a slice of domain workers
func ToWorkerResponses(workers []workforce.Worker) []WorkerResponse {
	responses := make([]WorkerResponse, len(workers))
	for i := range workers {
		responses[i] = ToWorkerResponse(&workers[i])
	}
	return responses
}

// ToWorkRecordResponse converts a domain work record to a response DTO
func ToWorkRecordResponse(record *workforce.WorkRecord) WorkRecordResponse {
	return WorkRecordResponse{
		ID:            record.ID,
		WorkerID:      record.WorkerID,
		ServiceItemID: record.ServiceItemID,
		ServiceName:   record.ServiceName,
		CustomerName:  record.CustomerName,
		WorkDate:      record.WorkDate,
		Hours:         record.Hours,
		Amount:        record.Amount,
		PaymentStatus: string(record.PaymentStatus),
		Notes:         record.Notes,
		PaidAt:        record.PaidAt,
		CreatedAt:     record.CreatedAt,
	}
}

// ToWorkRecordResponses converts a slice of domain work records
func ToWorkRecordResponses(records []workforce.WorkRecord) []WorkRecordResponse {
	responses := make([]WorkRecordResponse, len(records))
	for i := range records {
		responses[i] = ToWorkRecordResponse(&records[i])
	}
	return responses
}
