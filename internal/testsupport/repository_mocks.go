// Package testsupport provides mock repository implementations shared by
// the application service tests. The bookkeeping cascades cut across six
// bounded contexts, so the same mocks are needed from several packages.
package testsupport

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/catalog"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/identity"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/inventory"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/sales"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/workforce"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByPhone(ctx context.Context, phone string) (*identity.User, error) {
	args := m.Called(ctx, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByIdentifier(ctx context.Context, identifier string) (*identity.User, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

// MockItemRepository is a mock implementation of catalog.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Item, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]catalog.Item, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]catalog.Item), args.Error(1)
}

func (m *MockItemRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) FindByNameForOwner(ctx context.Context, ownerID uuid.UUID, kind catalog.ItemKind, name string) (*catalog.Item, error) {
	args := m.Called(ctx, ownerID, kind, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindBySKUForOwner(ctx context.Context, ownerID uuid.UUID, sku string) (*catalog.Item, error) {
	args := m.Called(ctx, ownerID, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) ExistsByNameForOwner(ctx context.Context, ownerID uuid.UUID, kind catalog.ItemKind, name string) (bool, error) {
	args := m.Called(ctx, ownerID, kind, name)
	return args.Bool(0), args.Error(1)
}

// MockStockLevelRepository is a mock implementation of inventory.StockLevelRepository
type MockStockLevelRepository struct {
	mock.Mock
}

func (m *MockStockLevelRepository) Save(ctx context.Context, level *inventory.StockLevel) error {
	args := m.Called(ctx, level)
	return args.Error(0)
}

func (m *MockStockLevelRepository) FindByItemForOwner(ctx context.Context, ownerID, itemID uuid.UUID) (*inventory.StockLevel, error) {
	args := m.Called(ctx, ownerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLevel), args.Error(1)
}

func (m *MockStockLevelRepository) FindByItemForOwnerLocked(ctx context.Context, ownerID, itemID uuid.UUID) (*inventory.StockLevel, error) {
	args := m.Called(ctx, ownerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockLevel), args.Error(1)
}

func (m *MockStockLevelRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]inventory.StockLevel, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]inventory.StockLevel), args.Error(1)
}

func (m *MockStockLevelRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockStockMovementRepository is a mock implementation of inventory.StockMovementRepository
type MockStockMovementRepository struct {
	mock.Mock
}

func (m *MockStockMovementRepository) Create(ctx context.Context, movement *inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockStockMovementRepository) FindByItemForOwner(ctx context.Context, ownerID, itemID uuid.UUID, filter shared.Filter) ([]inventory.StockMovement, int64, error) {
	args := m.Called(ctx, ownerID, itemID, filter)
	return args.Get(0).([]inventory.StockMovement), args.Get(1).(int64), args.Error(2)
}

func (m *MockStockMovementRepository) CountByTypeForOwner(ctx context.Context, ownerID uuid.UUID, start, end string) (map[inventory.MovementType]int64, error) {
	args := m.Called(ctx, ownerID, start, end)
	return args.Get(0).(map[inventory.MovementType]int64), args.Error(1)
}

// MockStockAlertRepository is a mock implementation of inventory.StockAlertRepository
type MockStockAlertRepository struct {
	mock.Mock
}

func (m *MockStockAlertRepository) Save(ctx context.Context, alert *inventory.StockAlert) error {
	args := m.Called(ctx, alert)
	return args.Error(0)
}

func (m *MockStockAlertRepository) FindOpenByItemForOwner(ctx context.Context, ownerID, itemID uuid.UUID, alertType inventory.AlertType) (*inventory.StockAlert, error) {
	args := m.Called(ctx, ownerID, itemID, alertType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockAlert), args.Error(1)
}

func (m *MockStockAlertRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*inventory.StockAlert, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.StockAlert), args.Error(1)
}

func (m *MockStockAlertRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]inventory.StockAlert, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]inventory.StockAlert), args.Get(1).(int64), args.Error(2)
}

func (m *MockStockAlertRepository) CountOpenForOwner(ctx context.Context, ownerID uuid.UUID) (map[inventory.AlertType]int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(map[inventory.AlertType]int64), args.Error(1)
}

// MockSaleRepository is a mock implementation of sales.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *sales.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) Update(ctx context.Context, sale *sales.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*sales.Sale, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.Sale), args.Error(1)
}

func (m *MockSaleRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]sales.Sale, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]sales.Sale), args.Get(1).(int64), args.Error(2)
}

func (m *MockSaleRepository) NextSequenceForDay(ctx context.Context, ownerID uuid.UUID, day time.Time) (int, error) {
	args := m.Called(ctx, ownerID, day)
	return args.Int(0), args.Error(1)
}

func (m *MockSaleRepository) SumCompletedForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockSaleRepository) CountCompletedForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (int64, error) {
	args := m.Called(ctx, ownerID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleRepository) CountCompletedForOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleRepository) TopItemsForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time, limit int) ([]sales.ItemAggregate, error) {
	args := m.Called(ctx, ownerID, start, end, limit)
	return args.Get(0).([]sales.ItemAggregate), args.Error(1)
}

func (m *MockSaleRepository) DailyTotalsForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]sales.DailyTotal, error) {
	args := m.Called(ctx, ownerID, start, end)
	return args.Get(0).([]sales.DailyTotal), args.Error(1)
}

// MockWorkerRepository is a mock implementation of workforce.WorkerRepository
type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) FindByID(ctx context.Context, id uuid.UUID) (*workforce.Worker, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Worker), args.Error(1)
}

func (m *MockWorkerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workforce.Worker, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]workforce.Worker), args.Error(1)
}

func (m *MockWorkerRepository) Save(ctx context.Context, worker *workforce.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *MockWorkerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWorkerRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*workforce.Worker, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.Worker), args.Error(1)
}

func (m *MockWorkerRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]workforce.Worker, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]workforce.Worker), args.Error(1)
}

func (m *MockWorkerRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

// MockWorkRecordRepository is a mock implementation of workforce.WorkRecordRepository
type MockWorkRecordRepository struct {
	mock.Mock
}

func (m *MockWorkRecordRepository) Create(ctx context.Context, record *workforce.WorkRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockWorkRecordRepository) Update(ctx context.Context, record *workforce.WorkRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockWorkRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkRecordRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*workforce.WorkRecord, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workforce.WorkRecord), args.Error(1)
}

func (m *MockWorkRecordRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]workforce.WorkRecord, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]workforce.WorkRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockWorkRecordRepository) SumPaidForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockExpenseRepository is a mock implementation of accounting.ExpenseRepository
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]accounting.Expense, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]accounting.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Save(ctx context.Context, expense *accounting.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockExpenseRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenseRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*accounting.Expense, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.Expense), args.Error(1)
}

func (m *MockExpenseRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]accounting.Expense, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]accounting.Expense), args.Error(1)
}

func (m *MockExpenseRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockExpenseRepository) SumPaidForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, start, end)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExpenseRepository) SumPaid(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockExpenseRepository) SumPaidByCategoryForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (map[accounting.ExpenseCategory]decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, start, end)
	return args.Get(0).(map[accounting.ExpenseCategory]decimal.Decimal), args.Error(1)
}

func (m *MockExpenseRepository) DailyPaidTotalsForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) ([]accounting.DailyAmount, error) {
	args := m.Called(ctx, ownerID, start, end)
	return args.Get(0).([]accounting.DailyAmount), args.Error(1)
}

// MockAssetRepository is a mock implementation of accounting.AssetRepository
type MockAssetRepository struct {
	mock.Mock
}

func (m *MockAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.Asset, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAll(ctx context.Context, filter shared.Filter) ([]accounting.Asset, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]accounting.Asset), args.Error(1)
}

func (m *MockAssetRepository) Save(ctx context.Context, asset *accounting.Asset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAssetRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssetRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*accounting.Asset, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.Asset), args.Error(1)
}

func (m *MockAssetRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]accounting.Asset, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]accounting.Asset), args.Error(1)
}

func (m *MockAssetRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAssetRepository) SumActiveValue(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockAssetRepository) CountActive(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// MockIncomeRecordRepository is a mock implementation of accounting.IncomeRecordRepository
type MockIncomeRecordRepository struct {
	mock.Mock
}

func (m *MockIncomeRecordRepository) Create(ctx context.Context, record *accounting.IncomeRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockIncomeRecordRepository) DeleteBySource(ctx context.Context, ownerID uuid.UUID, source accounting.IncomeSource, sourceID uuid.UUID) error {
	args := m.Called(ctx, ownerID, source, sourceID)
	return args.Error(0)
}

func (m *MockIncomeRecordRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]accounting.IncomeRecord, int64, error) {
	args := m.Called(ctx, ownerID, filter)
	return args.Get(0).([]accounting.IncomeRecord), args.Get(1).(int64), args.Error(2)
}

func (m *MockIncomeRecordRepository) SumForMonth(ctx context.Context, ownerID uuid.UUID, year, month int) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, year, month)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockIncomeRecordRepository) SumForYear(ctx context.Context, ownerID uuid.UUID, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockIncomeRecordRepository) SumBySource(ctx context.Context, ownerID uuid.UUID, source accounting.IncomeSource) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, source)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockIncomeRecordRepository) SumBySourceForRange(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (map[accounting.IncomeSource]decimal.Decimal, error) {
	args := m.Called(ctx, ownerID, start, end)
	return args.Get(0).(map[accounting.IncomeSource]decimal.Decimal), args.Error(1)
}

// MockTurnoverTaxRepository is a mock implementation of accounting.TurnoverTaxRepository
type MockTurnoverTaxRepository struct {
	mock.Mock
}

func (m *MockTurnoverTaxRepository) Save(ctx context.Context, record *accounting.TurnoverTaxRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockTurnoverTaxRepository) FindByMonthForOwner(ctx context.Context, ownerID uuid.UUID, year, month int) (*accounting.TurnoverTaxRecord, error) {
	args := m.Called(ctx, ownerID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.TurnoverTaxRecord), args.Error(1)
}

func (m *MockTurnoverTaxRepository) FindByYearForOwner(ctx context.Context, ownerID uuid.UUID, year int) ([]accounting.TurnoverTaxRecord, error) {
	args := m.Called(ctx, ownerID, year)
	return args.Get(0).([]accounting.TurnoverTaxRecord), args.Error(1)
}

func (m *MockTurnoverTaxRepository) SumTaxDue(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockFinancialSummaryRepository is a mock implementation of accounting.FinancialSummaryRepository
type MockFinancialSummaryRepository struct {
	mock.Mock
}

func (m *MockFinancialSummaryRepository) Save(ctx context.Context, summary *accounting.FinancialSummary) error {
	args := m.Called(ctx, summary)
	return args.Error(0)
}

func (m *MockFinancialSummaryRepository) FindByMonthForOwner(ctx context.Context, ownerID uuid.UUID, year, month int) (*accounting.FinancialSummary, error) {
	args := m.Called(ctx, ownerID, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounting.FinancialSummary), args.Error(1)
}

func (m *MockFinancialSummaryRepository) FindByYearForOwner(ctx context.Context, ownerID uuid.UUID, year int) ([]accounting.FinancialSummary, error) {
	args := m.Called(ctx, ownerID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]accounting.FinancialSummary), args.Error(1)
}

// Interface conformance checks
var (
	_ identity.UserRepository               = (*MockUserRepository)(nil)
	_ catalog.ItemRepository                = (*MockItemRepository)(nil)
	_ inventory.StockLevelRepository        = (*MockStockLevelRepository)(nil)
	_ inventory.StockMovementRepository     = (*MockStockMovementRepository)(nil)
	_ inventory.StockAlertRepository        = (*MockStockAlertRepository)(nil)
	_ sales.SaleRepository                  = (*MockSaleRepository)(nil)
	_ workforce.WorkerRepository            = (*MockWorkerRepository)(nil)
	_ workforce.WorkRecordRepository        = (*MockWorkRecordRepository)(nil)
	_ accounting.ExpenseRepository          = (*MockExpenseRepository)(nil)
	_ accounting.AssetRepository            = (*MockAssetRepository)(nil)
	_ accounting.IncomeRecordRepository     = (*MockIncomeRecordRepository)(nil)
	_ accounting.TurnoverTaxRepository      = (*MockTurnoverTaxRepository)(nil)
	_ accounting.FinancialSummaryRepository = (*MockFinancialSummaryRepository)(nil)
)
