package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RangeRequest is the common date range all reports accept
type RangeRequest struct {
	StartDate time.Time `form:"start_date" time_format:"2006-01-02" binding:"required"`
	EndDate   time.Time `form:"end_date" time_format:"2006-01-02" binding:"required"`
}

// ProfitLossReport is the profit and loss statement for a range
type ProfitLossReport struct {
	StartDate          time.Time                  `json:"start_date"`
	EndDate            time.Time                  `json:"end_date"`
	SalesRevenue       decimal.Decimal            `json:"sales_revenue"`
	ServiceRevenue     decimal.Decimal            `json:"service_revenue"`
	TotalRevenue       decimal.Decimal            `json:"total_revenue"`
	ExpensesByCategory map[string]decimal.Decimal `json:"expenses_by_category"`
	TotalExpenses      decimal.Decimal            `json:"total_expenses"`
	NetProfit          decimal.Decimal            `json:"net_profit"`
}

// SalesReportItem is a per-item rollup within a sales report
type SalesReportItem struct {
	ItemID   uuid.UUID       `json:"item_id"`
	ItemName string          `json:"item_name"`
	Quantity decimal.Decimal `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// SalesReportDay is one day of the sales series
type SalesReportDay struct {
	Day     time.Time       `json:"day"`
	Count   int64           `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}

// SalesReport aggregates completed sales for a range
type SalesReport struct {
	StartDate     time.Time         `json:"start_date"`
	EndDate       time.Time         `json:"end_date"`
	TotalRevenue  decimal.Decimal   `json:"total_revenue"`
	SaleCount     int64             `json:"sale_count"`
	TopByQuantity []SalesReportItem `json:"top_by_quantity"`
	TopByRevenue  []SalesReportItem `json:"top_by_revenue"`
	DailySeries   []SalesReportDay  `json:"daily_series"`
}

// ExpenseReportDay is one day of the expense series
type ExpenseReportDay struct {
	Day    time.Time       `json:"day"`
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseReport aggregates paid expenses for a range
type ExpenseReport struct {
	StartDate     time.Time                  `json:"start_date"`
	EndDate       time.Time                  `json:"end_date"`
	TotalExpenses decimal.Decimal            `json:"total_expenses"`
	ByCategory    map[string]decimal.Decimal `json:"by_category"`
	DailySeries   []ExpenseReportDay         `json:"daily_series"`
}

// TaxReportMonth is one month's tax position within a tax report
type TaxReportMonth struct {
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	Revenue            decimal.Decimal `json:"revenue"`
	TaxableAmount      decimal.Decimal `json:"taxable_amount"`
	TaxDue             decimal.Decimal `json:"tax_due"`
	ExceedsAnnualLimit bool            `json:"exceeds_annual_limit"`
}

// TaxReport lists the months a range touches plus running totals
type TaxReport struct {
	StartDate          time.Time        `json:"start_date"`
	EndDate            time.Time        `json:"end_date"`
	Months             []TaxReportMonth `json:"months"`
	TotalRevenue       decimal.Decimal  `json:"total_revenue"`
	TotalTaxDue        decimal.Decimal  `json:"total_tax_due"`
	AnnualLimit        decimal.Decimal  `json:"annual_limit"`
	ExceedsAnnualLimit bool             `json:"exceeds_annual_limit"`
}

// InventoryReportLine is one product's stock position and value
type InventoryReportLine struct {
	ItemID     uuid.UUID       `json:"item_id"`
	ItemName   string          `json:"item_name"`
	SKU        string          `json:"sku,omitempty"`
	Quantity   decimal.Decimal `json:"quantity"`
	CostPrice  decimal.Decimal `json:"cost_price"`
	StockValue decimal.Decimal `json:"stock_value"`
	Low        bool            `json:"low"`
	Out        bool            `json:"out"`
}

// InventoryReport is the current stock position plus the range's
// movement activity
type InventoryReport struct {
	StartDate       time.Time             `json:"start_date"`
	EndDate         time.Time             `json:"end_date"`
	Lines           []InventoryReportLine `json:"lines"`
	TotalStockValue decimal.Decimal       `json:"total_stock_value"`
	LowCount        int64                 `json:"low_count"`
	OutCount        int64                 `json:"out_count"`
	MovementsByType map[string]int64      `json:"movements_by_type"`
}
