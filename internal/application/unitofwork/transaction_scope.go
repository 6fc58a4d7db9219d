package unitofwork

import (
	"context"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/inventory"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/sales"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/workforce"
)

// TransactionScope provides transactional access to the repositories the
// bookkeeping cascades touch. Recording a sale, cancelling one, or marking
// a work record paid each mutate several ledgers (stock, income, tax,
// summary); running the whole cascade through one scope makes those writes
// commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos Repositories) error) error
}

// Repositories provides access to repositories bound to one transaction.
// All repositories returned share the same underlying database transaction.
type Repositories interface {
	// Sales returns the sale repository scoped to the current transaction
	Sales() sales.SaleRepository
	// StockLevels returns the stock level repository scoped to the current transaction
	StockLevels() inventory.StockLevelRepository
	// StockMovements returns the movement ledger repository scoped to the current transaction
	StockMovements() inventory.StockMovementRepository
	// StockAlerts returns the stock alert repository scoped to the current transaction
	StockAlerts() inventory.StockAlertRepository
	// Income returns the income projection repository scoped to the current transaction
	Income() accounting.IncomeRecordRepository
	// Tax returns the turnover tax repository scoped to the current transaction
	Tax() accounting.TurnoverTaxRepository
	// Summaries returns the financial summary repository scoped to the current transaction
	Summaries() accounting.FinancialSummaryRepository
	// Expenses returns the expense repository scoped to the current transaction
	Expenses() accounting.ExpenseRepository
	// Assets returns the asset repository scoped to the current transaction
	Assets() accounting.AssetRepository
	// WorkRecords returns the work record repository scoped to the current transaction
	WorkRecords() workforce.WorkRecordRepository
}

// NoOpTransactionScope runs cascades without a real transaction.
// Used in tests, where the repositories are mocks anyway.
type NoOpTransactionScope struct {
	SaleRepo          sales.SaleRepository
	StockLevelRepo    inventory.StockLevelRepository
	StockMovementRepo inventory.StockMovementRepository
	StockAlertRepo    inventory.StockAlertRepository
	IncomeRepo        accounting.IncomeRecordRepository
	TaxRepo           accounting.TurnoverTaxRepository
	SummaryRepo       accounting.FinancialSummaryRepository
	ExpenseRepo       accounting.ExpenseRepository
	AssetRepo         accounting.AssetRepository
	WorkRecordRepo    workforce.WorkRecordRepository
}

// Execute runs the function without a real transaction
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos Repositories) error) error {
	return fn(s)
}

// Sales returns the sale repository
func (s *NoOpTransactionScope) Sales() sales.SaleRepository { return s.SaleRepo }

// StockLevels returns the stock level repository
func (s *NoOpTransactionScope) StockLevels() inventory.StockLevelRepository { return s.StockLevelRepo }

// StockMovements returns the movement ledger repository
func (s *NoOpTransactionScope) StockMovements() inventory.StockMovementRepository {
	return s.StockMovementRepo
}

// StockAlerts returns the stock alert repository
func (s *NoOpTransactionScope) StockAlerts() inventory.StockAlertRepository { return s.StockAlertRepo }

// Income returns the income projection repository
func (s *NoOpTransactionScope) Income() accounting.IncomeRecordRepository { return s.IncomeRepo }

// Tax returns the turnover tax repository
func (s *NoOpTransactionScope) Tax() accounting.TurnoverTaxRepository { return s.TaxRepo }

// Summaries returns the financial summary repository
func (s *NoOpTransactionScope) Summaries() accounting.FinancialSummaryRepository {
	return s.SummaryRepo
}

// Expenses returns the expense repository
func (s *NoOpTransactionScope) Expenses() accounting.ExpenseRepository { return s.ExpenseRepo }

// Assets returns the asset repository
func (s *NoOpTransactionScope) Assets() accounting.AssetRepository { return s.AssetRepo }

// WorkRecords returns the work record repository
func (s *NoOpTransactionScope) WorkRecords() workforce.WorkRecordRepository {
	return s.WorkRecordRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ Repositories = (*NoOpTransactionScope)(nil)
