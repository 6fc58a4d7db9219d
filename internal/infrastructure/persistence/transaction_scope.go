package persistence

import (
	"context"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/application/report"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/application/unitofwork"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/inventory"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/sales"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/workforce"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/infrastructure/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// Every bookkeeping cascade commits through here, so this is also where
// cached report snapshots get invalidated for the acting owner.
type GormTransactionScope struct {
	db          *gorm.DB
	invalidator report.Invalidator
}

// NewGormTransactionScope creates a new GormTransactionScope.
// The invalidator may be nil when report caching is disabled.
func NewGormTransactionScope(db *gorm.DB, invalidator report.Invalidator) *GormTransactionScope {
	return &GormTransactionScope{db: db, invalidator: invalidator}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
// After a successful commit the owner's report snapshots are invalidated.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos unitofwork.Repositories) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormRepositories{tx: tx})
	})
	if err != nil {
		return err
	}

	if s.invalidator != nil {
		if ownerID, parseErr := uuid.Parse(logger.GetOwnerID(ctx)); parseErr == nil {
			s.invalidator.Invalidate(ctx, ownerID)
		}
	}
	return nil
}

// gormRepositories provides access to all repositories within a transaction.
type gormRepositories struct {
	tx *gorm.DB
}

// Sales returns the sale repository scoped to the current transaction
func (r *gormRepositories) Sales() sales.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// StockLevels returns the stock level repository scoped to the current transaction
func (r *gormRepositories) StockLevels() inventory.StockLevelRepository {
	return NewGormStockLevelRepository(r.tx)
}

// StockMovements returns the movement ledger repository scoped to the current transaction
func (r *gormRepositories) StockMovements() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

// StockAlerts returns the stock alert repository scoped to the current transaction
func (r *gormRepositories) StockAlerts() inventory.StockAlertRepository {
	return NewGormStockAlertRepository(r.tx)
}

// Income returns the income projection repository scoped to the current transaction
func (r *gormRepositories) Income() accounting.IncomeRecordRepository {
	return NewGormIncomeRecordRepository(r.tx)
}

// Tax returns the turnover tax repository scoped to the current transaction
func (r *gormRepositories) Tax() accounting.TurnoverTaxRepository {
	return NewGormTurnoverTaxRepository(r.tx)
}

// Summaries returns the financial summary repository scoped to the current transaction
func (r *gormRepositories) Summaries() accounting.FinancialSummaryRepository {
	return NewGormFinancialSummaryRepository(r.tx)
}

// Expenses returns the expense repository scoped to the current transaction
func (r *gormRepositories) Expenses() accounting.ExpenseRepository {
	return NewGormExpenseRepository(r.tx)
}

// Assets returns the asset repository scoped to the current transaction
func (r *gormRepositories) Assets() accounting.AssetRepository {
	return NewGormAssetRepository(r.tx)
}

// WorkRecords returns the work record repository scoped to the current transaction
func (r *gormRepositories) WorkRecords() workforce.WorkRecordRepository {
	return NewGormWorkRecordRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ unitofwork.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormRepositories implements Repositories
var _ unitofwork.Repositories = (*gormRepositories)(nil)
