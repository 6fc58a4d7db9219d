package accounting

import (
	"strings"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory classifies business expenses
type ExpenseCategory string

const (
	ExpenseCategoryRent              ExpenseCategory = "rent"
	ExpenseCategoryUtilities         ExpenseCategory = "utilities"
	ExpenseCategoryTransport         ExpenseCategory = "transport"
	ExpenseCategorySalaries          ExpenseCategory = "salaries"
	ExpenseCategoryInventoryPurchase ExpenseCategory = "inventory_purchase"
	ExpenseCategoryMarketing         ExpenseCategory = "marketing"
	ExpenseCategoryOther             ExpenseCategory = "other"
)

// IsValid returns true if the category is known
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryRent, ExpenseCategoryUtilities, ExpenseCategoryTransport,
		ExpenseCategorySalaries, ExpenseCategoryInventoryPurchase,
		ExpenseCategoryMarketing, ExpenseCategoryOther:
		return true
	}
	return false
}

// RecurrencePeriod describes how often a recurring expense repeats
type RecurrencePeriod string

const (
	RecurrenceWeekly    RecurrencePeriod = "weekly"
	RecurrenceMonthly   RecurrencePeriod = "monthly"
	RecurrenceQuarterly RecurrencePeriod = "quarterly"
	RecurrenceAnnually  RecurrencePeriod = "annually"
)

// Expense is money going out of the business. Only paid expenses count
// toward financial summaries and profit figures; pending ones are
// commitments the owner is tracking.
type Expense struct {
	shared.OwnerAggregateRoot
	Category         ExpenseCategory  `gorm:"type:varchar(30);not null;index"`
	Description      string           `gorm:"type:varchar(255);not null"`
	Amount           decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	ExpenseDate      time.Time        `gorm:"type:date;not null;index"`
	PaymentStatus    PaymentStatus    `gorm:"type:varchar(20);not null;default:'paid'"`
	Recurring        bool             `gorm:"not null;default:false"`
	RecurrencePeriod RecurrencePeriod `gorm:"type:varchar(20)"`
	ReceiptReference string           `gorm:"type:varchar(100)"`
	PaidAt           *time.Time
}

// PaymentStatus represents whether an expense has been paid
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// TableName returns the table name for GORM
func (Expense) TableName() string {
	return "expenses"
}

// NewExpense creates a new paid expense (the common case for cash businesses)
func NewExpense(ownerID uuid.UUID, category ExpenseCategory, description string, amount decimal.Decimal, expenseDate time.Time) (*Expense, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown expense category")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if expenseDate.IsZero() {
		expenseDate = time.Now()
	}

	now := time.Now()
	return &Expense{
		OwnerAggregateRoot: shared.NewOwnerAggregateRoot(ownerID),
		Category:           category,
		Description:        description,
		Amount:             amount.Round(2),
		ExpenseDate:        expenseDate,
		PaymentStatus:      PaymentStatusPaid,
		PaidAt:             &now,
	}, nil
}

// Update updates the expense details
func (e *Expense) Update(category ExpenseCategory, description string, amount decimal.Decimal, expenseDate time.Time) error {
	if !category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Unknown expense category")
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot be empty")
	}
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}

	e.Category = category
	e.Description = description
	e.Amount = amount.Round(2)
	if !expenseDate.IsZero() {
		e.ExpenseDate = expenseDate
	}
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// MarkPending flags the expense as not yet paid
func (e *Expense) MarkPending() error {
	if e.PaymentStatus == PaymentStatusPending {
		return shared.NewDomainError("ALREADY_PENDING", "Expense is already pending")
	}

	e.PaymentStatus = PaymentStatusPending
	e.PaidAt = nil
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// MarkPaid flags the expense as paid
func (e *Expense) MarkPaid() error {
	if e.PaymentStatus == PaymentStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Expense is already paid")
	}

	now := time.Now()
	e.PaymentStatus = PaymentStatusPaid
	e.PaidAt = &now
	e.UpdatedAt = now
	e.IncrementVersion()

	return nil
}

// SetRecurrence marks the expense as recurring with a period
func (e *Expense) SetRecurrence(period RecurrencePeriod) error {
	switch period {
	case RecurrenceWeekly, RecurrenceMonthly, RecurrenceQuarterly, RecurrenceAnnually:
	default:
		return shared.NewDomainError("INVALID_RECURRENCE", "Unknown recurrence period")
	}

	e.Recurring = true
	e.RecurrencePeriod = period
	e.UpdatedAt = time.Now()
	e.IncrementVersion()

	return nil
}

// ClearRecurrence makes the expense one-off again
func (e *Expense) ClearRecurrence() {
	e.Recurring = false
	e.RecurrencePeriod = ""
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
}

// SetReceiptReference attaches a receipt number or reference
func (e *Expense) SetReceiptReference(ref string) {
	e.ReceiptReference = strings.TrimSpace(ref)
	e.UpdatedAt = time.Now()
}

// IsPaid returns true if the expense has been paid
func (e *Expense) IsPaid() bool {
	return e.PaymentStatus == PaymentStatusPaid
}
