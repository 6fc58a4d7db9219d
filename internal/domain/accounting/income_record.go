package accounting

import (
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeSource identifies what produced an income record
type IncomeSource string

const (
	IncomeSourceSale    IncomeSource = "sale"
	IncomeSourceService IncomeSource = "service"
)

// IsValid returns true if the income source is known
func (s IncomeSource) IsValid() bool {
	return s == IncomeSourceSale || s == IncomeSourceService
}

// IncomeRecord is a projection row: one per completed sale and one per
// paid work record. They are written and removed only by the sale and
// work-record cascades, never through the API, which reads them for
// income listings and monthly tax sums.
type IncomeRecord struct {
	shared.BaseEntity
	OwnerID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_income_owner_date,priority:1"`
	Source      IncomeSource    `gorm:"type:varchar(20);not null;index"`
	SourceID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_income_source_ref"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index:idx_income_owner_date,priority:2"`
	Description string          `gorm:"type:varchar(255)"`
}

// TableName returns the table name for GORM
func (IncomeRecord) TableName() string {
	return "income_records"
}

// NewIncomeRecord creates a new income record
func NewIncomeRecord(ownerID uuid.UUID, source IncomeSource, sourceID uuid.UUID, amount decimal.Decimal, date time.Time, description string) (*IncomeRecord, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if !source.IsValid() {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Income source must be sale or service")
	}
	if sourceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SOURCE", "Source ID cannot be empty")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount cannot be negative")
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &IncomeRecord{
		BaseEntity:  shared.NewBaseEntity(),
		OwnerID:     ownerID,
		Source:      source,
		SourceID:    sourceID,
		Amount:      amount.Round(2),
		Date:        date,
		Description: description,
	}, nil
}
