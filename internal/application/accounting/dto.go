package accounting

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
)

// CreateExpenseRequest contains the input for recording an expense
type CreateExpenseRequest struct {
	Category         string          `json:"category" binding:"required,oneof=rent utilities transport salaries inventory_purchase marketing other"`
	Description      string          `json:"description" binding:"required,max=255"`
	Amount           decimal.Decimal `json:"amount" binding:"required"`
	ExpenseDate      *time.Time      `json:"expense_date"`
	Pending          bool            `json:"pending"`
	RecurrencePeriod string          `json:"recurrence_period" binding:"omitempty,oneof=weekly monthly quarterly annually"`
	ReceiptReference string          `json:"receipt_reference" binding:"omitempty,max=100"`
}

// UpdateExpenseRequest contains optional expense fields to change
type UpdateExpenseRequest struct {
	Category         *string          `json:"category" binding:"omitempty,oneof=rent utilities transport salaries inventory_purchase marketing other"`
	Description      *string          `json:"description" binding:"omitempty,max=255"`
	Amount           *decimal.Decimal `json:"amount"`
	ExpenseDate      *time.Time       `json:"expense_date"`
	RecurrencePeriod *string          `json:"recurrence_period" binding:"omitempty,oneof=weekly monthly quarterly annually"`
	ReceiptReference *string          `json:"receipt_reference" binding:"omitempty,max=100"`
}

// ExpenseListFilter contains filters for listing expenses
type ExpenseListFilter struct {
	Page          int        `form:"page"`
	PageSize      int        `form:"page_size"`
	Category      string     `form:"category" binding:"omitempty,oneof=rent utilities transport salaries inventory_purchase marketing other"`
	PaymentStatus string     `form:"payment_status" binding:"omitempty,oneof=pending paid"`
	Recurring     *bool      `form:"recurring"`
	StartDate     *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate       *time.Time `form:"end_date" time_format:"2006-01-02"`
	Search        string     `form:"search"`
}

// ExpenseResponse contains expense data for API responses
type ExpenseResponse struct {
	ID               uuid.UUID       `json:"id"`
	Category         string          `json:"category"`
	Description      string          `json:"description"`
	Amount           decimal.Decimal `json:"amount"`
	ExpenseDate      time.Time       `json:"expense_date"`
	PaymentStatus    string          `json:"payment_status"`
	Recurring        bool            `json:"recurring"`
	RecurrencePeriod string          `json:"recurrence_period,omitempty"`
	ReceiptReference string          `json:"receipt_reference,omitempty"`
	PaidAt           *time.Time      `json:"paid_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// CreateAssetRequest contains the input for recording an asset
type CreateAssetRequest struct {
	Name          string           `json:"name" binding:"required,max=200"`
	Category      string           `json:"category" binding:"required,oneof=equipment vehicle furniture building other"`
	PurchaseValue decimal.Decimal  `json:"purchase_value" binding:"required"`
	PurchaseDate  *time.Time       `json:"purchase_date"`
	CurrentValue  *decimal.Decimal `json:"current_value"`
	Notes         string           `json:"notes" binding:"omitempty,max=255"`
}

// UpdateAssetRequest contains optional asset fields to change
type UpdateAssetRequest struct {
	Name         *string          `json:"name" binding:"omitempty,max=200"`
	Category     *string          `json:"category" binding:"omitempty,oneof=equipment vehicle furniture building other"`
	CurrentValue *decimal.Decimal `json:"current_value"`
	Notes        *string          `json:"notes" binding:"omitempty,max=255"`
}

// AssetListFilter contains filters for listing assets
type AssetListFilter struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Category string `form:"category" binding:"omitempty,oneof=equipment vehicle furniture building other"`
	Status   string `form:"status" binding:"omitempty,oneof=active disposed sold"`
	Search   string `form:"search"`
}

// AssetResponse contains asset data for API responses
type AssetResponse struct {
	ID             uuid.UUID        `json:"id"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	PurchaseValue  decimal.Decimal  `json:"purchase_value"`
	PurchaseDate   time.Time        `json:"purchase_date"`
	CurrentValue   *decimal.Decimal `json:"current_value,omitempty"`
	EffectiveValue decimal.Decimal  `json:"effective_value"`
	Status         string           `json:"status"`
	Notes          string           `json:"notes,omitempty"`
	DisposedAt     *time.Time       `json:"disposed_at,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
}

// IncomeListFilter contains filters for listing income records
type IncomeListFilter struct {
	Page      int        `form:"page"`
	PageSize  int        `form:"page_size"`
	Source    string     `form:"source" binding:"omitempty,oneof=sale service"`
	StartDate *time.Time `form:"start_date" time_format:"2006-01-02"`
	EndDate   *time.Time `form:"end_date" time_format:"2006-01-02"`
}

// IncomeRecordResponse contains income projection data for API responses
type IncomeRecordResponse struct {
	ID          uuid.UUID       `json:"id"`
	Source      string          `json:"source"`
	SourceID    uuid.UUID       `json:"source_id"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description,omitempty"`
}

// TurnoverTaxResponse contains one month's computed tax position
type TurnoverTaxResponse struct {
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	Revenue            decimal.Decimal `json:"revenue"`
	TaxableAmount      decimal.Decimal `json:"taxable_amount"`
	TaxDue             decimal.Decimal `json:"tax_due"`
	Rate               decimal.Decimal `json:"rate"`
	ExceedsAnnualLimit bool            `json:"exceeds_annual_limit"`
}

// AnnualTaxPositionResponse aggregates a year of turnover tax
type AnnualTaxPositionResponse struct {
	Year               int                   `json:"year"`
	Months             []TurnoverTaxResponse `json:"months"`
	TotalRevenue       decimal.Decimal       `json:"total_revenue"`
	TotalTaxDue        decimal.Decimal       `json:"total_tax_due"`
	AnnualLimit        decimal.Decimal       `json:"annual_limit"`
	ExceedsAnnualLimit bool                  `json:"exceeds_annual_limit"`
}

// SummaryMonthQuery names the calendar month a summary is read for.
// Both fields optional; handlers default to the current month.
type SummaryMonthQuery struct {
	Year  int `form:"year" binding:"omitempty,min=2000,max=2100"`
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
}

// FinancialSummaryResponse contains one month's financial position
type FinancialSummaryResponse struct {
	Year            int             `json:"year"`
	Month           int             `json:"month"`
	SalesRevenue    decimal.Decimal `json:"sales_revenue"`
	ServiceRevenue  decimal.Decimal `json:"service_revenue"`
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	TotalAssetValue decimal.Decimal `json:"total_asset_value"`
	TaxDue          decimal.Decimal `json:"tax_due"`
	ComputedAt      time.Time       `json:"computed_at"`
}

// MonthlyIncomeRequest names the calendar month a total is computed for
type MonthlyIncomeRequest struct {
	Year  int `form:"year" binding:"required,min=2000,max=2100"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// MonthlyIncomeResponse contains the income total for one calendar month
type MonthlyIncomeResponse struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	TotalIncome decimal.Decimal `json:"total_income"`
}

// PeriodSummaryRequest is the date range a period summary is computed for
type PeriodSummaryRequest struct {
	StartDate time.Time `form:"start_date" time_format:"2006-01-02" binding:"required"`
	EndDate   time.Time `form:"end_date" time_format:"2006-01-02" binding:"required"`
}

// PeriodSummaryResponse contains the financial position for one date range,
// computed from the ledgers on demand
type PeriodSummaryResponse struct {
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	SalesRevenue   decimal.Decimal `json:"sales_revenue"`
	ServiceRevenue decimal.Decimal `json:"service_revenue"`
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalExpenses  decimal.Decimal `json:"total_expenses"`
	NetProfit      decimal.Decimal `json:"net_profit"`
}

// ToExpenseResponse converts a domain expense to a response DTO
func ToExpenseResponse(expense *accounting.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:               expense.ID,
		Category:         string(expense.Category),
		Description:      expense.Description,
		Amount:           expense.Amount,
		ExpenseDate:      expense.ExpenseDate,
		PaymentStatus:    string(expense.PaymentStatus),
		Recurring:        expense.Recurring,
		RecurrencePeriod: string(expense.RecurrencePeriod),
		ReceiptReference: expense.ReceiptReference,
		PaidAt:           expense.PaidAt,
		CreatedAt:        expense.CreatedAt,
	}
}

// ToExpenseResponses converts a slice of domain expenses
func ToExpenseResponses(expenses []accounting.Expense) []ExpenseResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses
}

// ToAssetResponse converts a domain asset to a response DTO
func ToAssetResponse(asset *accounting.Asset) AssetResponse {
	return AssetResponse{
		ID:             asset.ID,
		Name:           asset.Name,
		Category:       string(asset.Category),
		PurchaseValue:  asset.PurchaseValue,
		PurchaseDate:   asset.PurchaseDate,
		CurrentValue:   asset.CurrentValue,
		EffectiveValue: asset.EffectiveValue(),
		Status:         string(asset.Status),
		Notes:          asset.Notes,
		DisposedAt:     asset.DisposedAt,
		CreatedAt:      asset.CreatedAt,
	}
}

// ToAssetResponses converts a slice of domain assets
func ToAssetResponses(assets []accounting.Asset) []AssetResponse {
	responses := make([]AssetResponse, len(assets))
	for i := range assets {
		responses[i] = ToAssetResponse(&assets[i])
	}
	return responses
}

// ToIncomeRecordResponse converts a domain income record to a response DTO
func ToIncomeRecordResponse(record *accounting.IncomeRecord) IncomeRecordResponse {
	return IncomeRecordResponse{
		ID:          record.ID,
		Source:      string(record.Source),
		SourceID:    record.SourceID,
		Amount:      record.Amount,
		Date:        record.Date,
		Description: record.Description,
	}
}

// ToIncomeRecordResponses converts a slice of domain income records
func ToIncomeRecordResponses(records []accounting.IncomeRecord) []IncomeRecordResponse {
	responses := make([]IncomeRecordResponse, len(records))
	for i := range records {
		responses[i] = ToIncomeRecordResponse(&records[i])
	}
	return responses
}

// ToTurnoverTaxResponse converts a domain tax record to a response DTO
func ToTurnoverTaxResponse(record *accounting.TurnoverTaxRecord) TurnoverTaxResponse {
	return TurnoverTaxResponse{
		Year:               record.Year,
		Month:              record.Month,
		Revenue:            record.Revenue,
		TaxableAmount:      record.TaxableAmount,
		TaxDue:             record.TaxDue,
		Rate:               record.Rate,
		ExceedsAnnualLimit: record.ExceedsAnnualLimit,
	}
}

// ToFinancialSummaryResponse converts a domain summary to a response DTO
func ToFinancialSummaryResponse(summary *accounting.FinancialSummary) FinancialSummaryResponse {
	return FinancialSummaryResponse{
		Year:            summary.Year,
		Month:           summary.Month,
		SalesRevenue:    summary.SalesRevenue,
		ServiceRevenue:  summary.ServiceRevenue,
		TotalIncome:     summary.TotalIncome,
		TotalExpenses:   summary.TotalExpenses,
		NetProfit:       summary.NetProfit,
		TotalAssetValue: summary.TotalAssetValue,
		TaxDue:          summary.TaxDue,
		ComputedAt:      summary.ComputedAt,
	}
}
