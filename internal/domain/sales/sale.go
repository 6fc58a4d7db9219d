package sales

import (
	"fmt"
	"strings"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleStatus represents the status of a sale
type SaleStatus string

const (
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodMobileMoney PaymentMethod = "mobile_money"
	PaymentMethodBank        PaymentMethod = "bank"
	PaymentMethodCredit      PaymentMethod = "credit"
)

// IsValid returns true if the payment method is known
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodMobileMoney, PaymentMethodBank, PaymentMethodCredit:
		return true
	}
	return false
}

// Sale is a completed sales transaction with one or more product lines.
// Line prices are captured at sale time; later catalog price changes never
// rewrite a recorded sale. Sales are cancelled, never deleted, so the sale
// number sequence stays dense and auditable.
type Sale struct {
	shared.OwnerAggregateRoot
	SaleNumber    string          `gorm:"type:varchar(20);not null;uniqueIndex:idx_sale_owner_number,priority:2"`
	CustomerName  string          `gorm:"type:varchar(200)"`
	CustomerPhone string          `gorm:"type:varchar(50)"`
	SaleDate      time.Time       `gorm:"type:date;not null;index"`
	PaymentMethod PaymentMethod   `gorm:"type:varchar(20);not null;default:'cash'"`
	Status        SaleStatus      `gorm:"type:varchar(20);not null;default:'completed'"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Discount      decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Total         decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0"`
	Note          string          `gorm:"type:varchar(255)"`
	CancelledAt   *time.Time

	Items []SaleItem `gorm:"foreignKey:SaleID"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// SaleItem is one product line of a sale
type SaleItem struct {
	shared.BaseEntity
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	OwnerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ItemName  string          `gorm:"type:varchar(200);not null"` // Captured at sale time
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"` // Captured at sale time
	LineTotal decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName returns the table name for GORM
func (SaleItem) TableName() string {
	return "sale_items"
}

// NewSale creates an empty sale; add lines with AddLine before saving
func NewSale(ownerID uuid.UUID, saleNumber string, saleDate time.Time, method PaymentMethod) (*Sale, error) {
	if ownerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}
	if saleNumber == "" {
		return nil, shared.NewDomainError("INVALID_SALE_NUMBER", "Sale number cannot be empty")
	}
	if method == "" {
		method = PaymentMethodCash
	}
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Unknown payment method")
	}
	if saleDate.IsZero() {
		saleDate = time.Now()
	}

	return &Sale{
		OwnerAggregateRoot: shared.NewOwnerAggregateRoot(ownerID),
		SaleNumber:         saleNumber,
		SaleDate:           saleDate,
		PaymentMethod:      method,
		Status:             SaleStatusCompleted,
		Subtotal:           decimal.Zero,
		Discount:           decimal.Zero,
		Total:              decimal.Zero,
	}, nil
}

// SetCustomer sets the optional customer details
func (s *Sale) SetCustomer(name, phone string) {
	s.CustomerName = strings.TrimSpace(name)
	s.CustomerPhone = strings.TrimSpace(phone)
}

// AddLine adds a product line and recomputes totals
func (s *Sale) AddLine(itemID uuid.UUID, itemName string, quantity, unitPrice decimal.Decimal) error {
	if itemID == uuid.Nil {
		return shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	lineTotal := quantity.Mul(unitPrice).Round(2)
	s.Items = append(s.Items, SaleItem{
		BaseEntity: shared.NewBaseEntity(),
		SaleID:     s.ID,
		OwnerID:    s.OwnerID,
		ItemID:     itemID,
		ItemName:   strings.TrimSpace(itemName),
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		LineTotal:  lineTotal,
	})

	s.recomputeTotals()

	return nil
}

// ApplyDiscount applies an absolute discount to the sale
func (s *Sale) ApplyDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	if discount.GreaterThan(s.Subtotal) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed the subtotal")
	}

	s.Discount = discount.Round(2)
	s.recomputeTotals()

	return nil
}

// Finalize validates the sale is complete and raises the recorded event
func (s *Sale) Finalize() error {
	if len(s.Items) == 0 {
		return shared.NewDomainError("EMPTY_SALE", "A sale needs at least one line")
	}

	s.AddDomainEvent(NewSaleRecordedEvent(s))

	return nil
}

// Cancel marks the sale cancelled. The caller reverses stock and income
// in the same transaction.
func (s *Sale) Cancel() error {
	if s.Status == SaleStatusCancelled {
		return shared.NewDomainError("SALE_ALREADY_CANCELLED", "Sale is already cancelled")
	}

	now := time.Now()
	s.Status = SaleStatusCancelled
	s.CancelledAt = &now
	s.UpdatedAt = now
	s.IncrementVersion()

	s.AddDomainEvent(NewSaleCancelledEvent(s))

	return nil
}

// IsCancelled returns true if the sale has been cancelled
func (s *Sale) IsCancelled() bool {
	return s.Status == SaleStatusCancelled
}

// ReversalReference is the reference written on return movements when the
// sale is cancelled
func (s *Sale) ReversalReference() string {
	return "REV-" + s.SaleNumber
}

func (s *Sale) recomputeTotals() {
	subtotal := decimal.Zero
	for _, line := range s.Items {
		subtotal = subtotal.Add(line.LineTotal)
	}
	s.Subtotal = subtotal.Round(2)
	s.Total = s.Subtotal.Sub(s.Discount).Round(2)
	s.UpdatedAt = time.Now()
}

// FormatSaleNumber builds a sale number of the form SL{YYYYMMDD}{seq:04d}.
// Sequences restart at 1 each day per owner.
func FormatSaleNumber(date time.Time, seq int) string {
	return fmt.Sprintf("SL%s%04d", date.Format("20060102"), seq)
}
