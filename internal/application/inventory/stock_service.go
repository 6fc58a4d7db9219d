package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/application/unitofwork"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/catalog"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/inventory"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
)

// StockService handles stock level and movement ledger use cases.
// Manual movements go through here; sale and return movements are written
// only by the sale recording and cancellation cascades.
type StockService struct {
	itemRepo  catalog.ItemRepository
	levelRepo inventory.StockLevelRepository
	mvRepo    inventory.StockMovementRepository
	alertRepo inventory.StockAlertRepository
	scope     unitofwork.TransactionScope
}

// NewStockService creates a new stock service
func NewStockService(
	itemRepo catalog.ItemRepository,
	levelRepo inventory.StockLevelRepository,
	mvRepo inventory.StockMovementRepository,
	alertRepo inventory.StockAlertRepository,
	scope unitofwork.TransactionScope,
) *StockService {
	return &StockService{
		itemRepo:  itemRepo,
		levelRepo: levelRepo,
		mvRepo:    mvRepo,
		alertRepo: alertRepo,
		scope:     scope,
	}
}

// RecordMovement records a manual stock movement for a product.
// The stock row is created on first movement; opening_stock is just the
// conventional type for that first entry.
func (s *StockService) RecordMovement(ctx context.Context, ownerID uuid.UUID, req RecordMovementRequest) (*StockMovementResponse, error) {
	movType := inventory.MovementType(req.Type)
	if !movType.IsManual() {
		return nil, shared.NewDomainError("INVALID_MOVEMENT_TYPE", "This movement type is recorded automatically")
	}

	item, err := s.findProduct(ctx, ownerID, req.ItemID)
	if err != nil {
		return nil, err
	}

	var movement *inventory.StockMovement
	err = s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		level, err := s.lockOrCreateLevel(ctx, repos, item)
		if err != nil {
			return err
		}

		movement, err = level.ApplyMovement(movType, req.Quantity)
		if err != nil {
			return err
		}
		if req.UnitCost != nil {
			movement.WithUnitCost(*req.UnitCost)
		}
		movement.WithReference(req.Reference).WithNote(req.Note)

		if err := repos.StockLevels().Save(ctx, level); err != nil {
			return err
		}
		if err := repos.StockMovements().Create(ctx, movement); err != nil {
			return err
		}
		return SyncAlerts(ctx, repos.StockAlerts(), level)
	})
	if err != nil {
		return nil, err
	}

	return ToStockMovementResponse(movement), nil
}

// AdjustStock sets the absolute stock count after a physical recount,
// recording the delta in the ledger
func (s *StockService) AdjustStock(ctx context.Context, ownerID uuid.UUID, req AdjustStockRequest) (*StockMovementResponse, error) {
	item, err := s.findProduct(ctx, ownerID, req.ItemID)
	if err != nil {
		return nil, err
	}

	var movement *inventory.StockMovement
	err = s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		level, err := s.lockOrCreateLevel(ctx, repos, item)
		if err != nil {
			return err
		}

		movement, err = level.ApplyAdjustment(req.NewQuantity)
		if err != nil {
			return err
		}
		movement.WithNote(req.Note)

		if err := repos.StockLevels().Save(ctx, level); err != nil {
			return err
		}
		if err := repos.StockMovements().Create(ctx, movement); err != nil {
			return err
		}
		return SyncAlerts(ctx, repos.StockAlerts(), level)
	})
	if err != nil {
		return nil, err
	}

	return ToStockMovementResponse(movement), nil
}

// SetReorderLevel changes the alert threshold for a product
func (s *StockService) SetReorderLevel(ctx context.Context, ownerID, itemID uuid.UUID, req SetReorderLevelRequest) (*StockLevelResponse, error) {
	item, err := s.findProduct(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	var level *inventory.StockLevel
	err = s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		level, err = s.lockOrCreateLevel(ctx, repos, item)
		if err != nil {
			return err
		}
		if err := level.SetReorderLevel(req.ReorderLevel); err != nil {
			return err
		}
		if err := repos.StockLevels().Save(ctx, level); err != nil {
			return err
		}
		return SyncAlerts(ctx, repos.StockAlerts(), level)
	})
	if err != nil {
		return nil, err
	}

	return ToStockLevelResponse(level), nil
}

// GetStock returns the stock level for one product. A product that never
// had a movement reads as zero stock.
func (s *StockService) GetStock(ctx context.Context, ownerID, itemID uuid.UUID) (*StockLevelResponse, error) {
	item, err := s.findProduct(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	level, err := s.levelRepo.FindByItemForOwner(ctx, ownerID, itemID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		level, err = inventory.NewStockLevel(ownerID, itemID, item.ReorderLevel)
		if err != nil {
			return nil, err
		}
	}

	return ToStockLevelResponse(level), nil
}

// ListStock lists stock levels for an owner
func (s *StockService) ListStock(ctx context.Context, ownerID uuid.UUID, filter StockListFilter) ([]StockLevelResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.LowOnly {
		domainFilter.Filters["low_only"] = true
	}
	if filter.OutOnly {
		domainFilter.Filters["out_only"] = true
	}

	levels, err := s.levelRepo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.levelRepo.CountForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToStockLevelResponses(levels), total, nil
}

// ListMovements lists the movement ledger for one product, newest first
func (s *StockService) ListMovements(ctx context.Context, ownerID, itemID uuid.UUID, filter MovementListFilter) ([]StockMovementResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}

	movements, total, err := s.mvRepo.FindByItemForOwner(ctx, ownerID, itemID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToStockMovementResponses(movements), total, nil
}

// ListAlerts lists stock alerts for an owner
func (s *StockService) ListAlerts(ctx context.Context, ownerID uuid.UUID, filter AlertListFilter) ([]StockAlertResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Type != "" {
		domainFilter.Filters["type"] = filter.Type
	}

	alerts, total, err := s.alertRepo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToStockAlertResponses(alerts), total, nil
}

// AcknowledgeAlert marks an alert as seen
func (s *StockService) AcknowledgeAlert(ctx context.Context, ownerID, alertID uuid.UUID) (*StockAlertResponse, error) {
	alert, err := s.alertRepo.FindByIDForOwner(ctx, ownerID, alertID)
	if err != nil {
		return nil, err
	}
	if err := alert.Acknowledge(); err != nil {
		return nil, err
	}
	if err := s.alertRepo.Save(ctx, alert); err != nil {
		return nil, err
	}
	return ToStockAlertResponse(alert), nil
}

// findProduct loads an item and verifies it is a product
func (s *StockService) findProduct(ctx context.Context, ownerID, itemID uuid.UUID) (*catalog.Item, error) {
	item, err := s.itemRepo.FindByIDForOwner(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}
	if !item.IsProduct() {
		return nil, shared.NewDomainError("NOT_A_PRODUCT", "Services do not carry stock")
	}
	return item, nil
}

// lockOrCreateLevel loads the stock row under a write lock, creating it on
// first use with the item's reorder level
func (s *StockService) lockOrCreateLevel(ctx context.Context, repos unitofwork.Repositories, item *catalog.Item) (*inventory.StockLevel, error) {
	level, err := repos.StockLevels().FindByItemForOwnerLocked(ctx, item.OwnerID, item.ID)
	if err == nil {
		return level, nil
	}
	if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	level, err = inventory.NewStockLevel(item.OwnerID, item.ID, item.ReorderLevel)
	if err != nil {
		return nil, err
	}
	if err := repos.StockLevels().Save(ctx, level); err != nil {
		return nil, err
	}
	return level, nil
}

// SyncAlerts reconciles open stock alerts with the current stock level:
// it raises the out_of_stock or low_stock alert the level now warrants and
// resolves open alerts that no longer apply. Also called from the sale
// cascades after automatic movements.
func SyncAlerts(ctx context.Context, alerts inventory.StockAlertRepository, level *inventory.StockLevel) error {
	wantOut := level.IsOut()
	wantLow := level.IsLow() && !level.IsOut()

	if err := syncAlert(ctx, alerts, level, inventory.AlertTypeOutOfStock, wantOut); err != nil {
		return err
	}
	return syncAlert(ctx, alerts, level, inventory.AlertTypeLowStock, wantLow)
}

func syncAlert(ctx context.Context, alerts inventory.StockAlertRepository, level *inventory.StockLevel, alertType inventory.AlertType, wanted bool) error {
	open, err := alerts.FindOpenByItemForOwner(ctx, level.OwnerID, level.ItemID, alertType)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return err
	}

	switch {
	case wanted && open == nil:
		alert, err := inventory.NewStockAlert(level.OwnerID, level.ItemID, alertType, level.Quantity, level.ReorderLevel)
		if err != nil {
			return err
		}
		return alerts.Save(ctx, alert)
	case !wanted && open != nil:
		open.Resolve()
		return alerts.Save(ctx, open)
	}
	return nil
}
