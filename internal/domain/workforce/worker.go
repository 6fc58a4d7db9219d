package workforce

import (
	"strings"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Worker is someone who performs services for the business: the owner
// themselves, a family member, or hired help. Work records may optionally
// name the worker who did the job.
type Worker struct {
	shared.OwnerAggregateRoot
	Name       string          `gorm:"type:varchar(200);not null"`
	Phone      string          `gorm:"type:varchar(50)"`
	Role       string          `gorm:"type:varchar(100)"`
	HourlyRate decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Active     bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Worker) TableName() string {
	return "workers"
}

// NewWorker creates a new worker
func NewWorker(ownerID uuid.UUID, name, phone, role string) (*Worker, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Worker name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Worker name cannot exceed 200 characters")
	}

	return &Worker{
		OwnerAggregateRoot: shared.NewOwnerAggregateRoot(ownerID),
		Name:               name,
		Phone:              strings.TrimSpace(phone),
		Role:               strings.TrimSpace(role),
		HourlyRate:         decimal.Zero,
		Active:             true,
	}, nil
}

// Update updates the worker's details
func (w *Worker) Update(name, phone, role string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Worker name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Worker name cannot exceed 200 characters")
	}

	w.Name = name
	w.Phone = strings.TrimSpace(phone)
	w.Role = strings.TrimSpace(role)
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	return nil
}

// SetHourlyRate sets the worker's default hourly rate
func (w *Worker) SetHourlyRate(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Hourly rate cannot be negative")
	}

	w.HourlyRate = rate
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	return nil
}

// Deactivate hides the worker from new work records
func (w *Worker) Deactivate() error {
	if !w.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Worker is already inactive")
	}

	w.Active = false
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	return nil
}

// Activate re-enables the worker
func (w *Worker) Activate() error {
	if w.Active {
		return shared.NewDomainError("ALREADY_ACTIVE", "Worker is already active")
	}

	w.Active = true
	w.UpdatedAt = time.Now()
	w.IncrementVersion()

	return nil
}
