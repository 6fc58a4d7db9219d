package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appaccounting "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/accounting"
	appinventory "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/inventory"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/application/unitofwork"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/catalog"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/inventory"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/sales"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
)

// SaleService records and cancels sales. Recording a sale runs the full
// bookkeeping cascade in one transaction: the sale itself, one stock
// movement per line, the income projection, the month's turnover tax
// record and the running financial summary. A failure anywhere rolls the
// whole sale back.
type SaleService struct {
	saleRepo sales.SaleRepository
	itemRepo catalog.ItemRepository
	scope    unitofwork.TransactionScope
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo sales.SaleRepository, itemRepo catalog.ItemRepository, scope unitofwork.TransactionScope) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
		itemRepo: itemRepo,
		scope:    scope,
	}
}

// saleLine pairs a validated catalog item with the requested line data
type saleLine struct {
	item      *catalog.Item
	quantity  decimal.Decimal
	unitPrice decimal.Decimal
}

// RecordSale records a completed sale and propagates it through the books.
// Every line must be an active product with enough stock; one short line
// rejects the whole sale.
func (s *SaleService) RecordSale(ctx context.Context, ownerID uuid.UUID, req RecordSaleRequest) (*SaleResponse, error) {
	lines, err := s.resolveLines(ctx, ownerID, req.Items)
	if err != nil {
		return nil, err
	}

	saleDate := time.Now()
	if req.SaleDate != nil {
		saleDate = *req.SaleDate
	}

	var sale *sales.Sale
	err = s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		seq, err := repos.Sales().NextSequenceForDay(ctx, ownerID, saleDate)
		if err != nil {
			return err
		}
		saleNumber := sales.FormatSaleNumber(saleDate, seq)

		sale, err = sales.NewSale(ownerID, saleNumber, saleDate, sales.PaymentMethod(req.PaymentMethod))
		if err != nil {
			return err
		}
		sale.SetCustomer(req.CustomerName, req.CustomerPhone)
		sale.Note = req.Note

		for _, line := range lines {
			if err := sale.AddLine(line.item.ID, line.item.Name, line.quantity, line.unitPrice); err != nil {
				return err
			}
		}
		if req.Discount != nil {
			if err := sale.ApplyDiscount(*req.Discount); err != nil {
				return err
			}
		}
		if err := sale.Finalize(); err != nil {
			return err
		}

		for _, line := range lines {
			if err := s.moveStock(ctx, repos, line.item, line.quantity, saleNumber); err != nil {
				return err
			}
		}

		if err := repos.Sales().Create(ctx, sale); err != nil {
			return err
		}

		income, err := accounting.NewIncomeRecord(
			ownerID, accounting.IncomeSourceSale, sale.ID,
			sale.Total, saleDate, fmt.Sprintf("Sale %s", saleNumber),
		)
		if err != nil {
			return err
		}
		if err := repos.Income().Create(ctx, income); err != nil {
			return err
		}

		if err := appaccounting.ResyncMonthlyTax(ctx, repos, ownerID, saleDate); err != nil {
			return err
		}
		return appaccounting.RebuildSummary(ctx, repos, ownerID, sale.SaleDate)
	})
	if err != nil {
		return nil, err
	}

	return ToSaleResponse(sale), nil
}

// CancelSale reverses a recorded sale: stock comes back as return
// movements tagged with the reversal reference, the income record is
// removed and the tax record and summary are recomputed. The sale row
// stays, marked cancelled.
func (s *SaleService) CancelSale(ctx context.Context, ownerID, saleID uuid.UUID) (*SaleResponse, error) {
	var sale *sales.Sale
	err := s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		var err error
		sale, err = repos.Sales().FindByIDForOwner(ctx, ownerID, saleID)
		if err != nil {
			return err
		}
		if err := sale.Cancel(); err != nil {
			return err
		}
		if err := repos.Sales().Update(ctx, sale); err != nil {
			return err
		}

		for _, line := range sale.Items {
			if err := s.returnStock(ctx, repos, ownerID, line, sale.ReversalReference()); err != nil {
				return err
			}
		}

		if err := repos.Income().DeleteBySource(ctx, ownerID, accounting.IncomeSourceSale, sale.ID); err != nil {
			return err
		}
		if err := appaccounting.ResyncMonthlyTax(ctx, repos, ownerID, sale.SaleDate); err != nil {
			return err
		}
		return appaccounting.RebuildSummary(ctx, repos, ownerID, sale.SaleDate)
	})
	if err != nil {
		return nil, err
	}

	return ToSaleResponse(sale), nil
}

// GetByID returns a sale with its lines
func (s *SaleService) GetByID(ctx context.Context, ownerID, saleID uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByIDForOwner(ctx, ownerID, saleID)
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

// List lists sales matching the filter
func (s *SaleService) List(ctx context.Context, ownerID uuid.UUID, filter SaleListFilter) ([]SaleListResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.PaymentMethod != "" {
		domainFilter.Filters["payment_method"] = filter.PaymentMethod
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	items, total, err := s.saleRepo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToSaleListResponses(items), total, nil
}

// DailySummary returns the per-day completed sales rollup for a range
func (s *SaleService) DailySummary(ctx context.Context, ownerID uuid.UUID, req DailySummaryRequest) (*DailySummaryResponse, error) {
	start := req.StartDate
	end := req.EndDate
	if end.Before(start) {
		return nil, shared.NewDomainError("INVALID_RANGE", "End date is before start date")
	}

	totals, err := s.saleRepo.DailyTotalsForRange(ctx, ownerID, start, end)
	if err != nil {
		return nil, err
	}

	resp := &DailySummaryResponse{
		Days:         make([]DailyTotalResponse, len(totals)),
		TotalRevenue: decimal.Zero,
	}
	for i, t := range totals {
		resp.Days[i] = DailyTotalResponse{Day: t.Day, Count: t.Count, Revenue: t.Revenue}
		resp.TotalCount += t.Count
		resp.TotalRevenue = resp.TotalRevenue.Add(t.Revenue)
	}
	return resp, nil
}

// resolveLines validates the requested items and captures their prices
func (s *SaleService) resolveLines(ctx context.Context, ownerID uuid.UUID, reqs []RecordSaleLineRequest) ([]saleLine, error) {
	lines := make([]saleLine, 0, len(reqs))
	for _, lr := range reqs {
		item, err := s.itemRepo.FindByIDForOwner(ctx, ownerID, lr.ItemID)
		if err != nil {
			return nil, err
		}
		if !item.IsProduct() {
			return nil, shared.NewDomainError("NOT_A_PRODUCT", "Only products can be sold on a sale; record services as work")
		}
		if !item.Active {
			return nil, shared.NewDomainError("ITEM_INACTIVE", "Item is deactivated")
		}

		unitPrice := item.UnitPrice
		if lr.UnitPrice != nil {
			unitPrice = *lr.UnitPrice
		}
		lines = append(lines, saleLine{item: item, quantity: lr.Quantity, unitPrice: unitPrice})
	}
	return lines, nil
}

// moveStock applies the sale movement for one line under a row lock.
// A product with no stock row has zero stock, which reads as insufficient.
func (s *SaleService) moveStock(ctx context.Context, repos unitofwork.Repositories, item *catalog.Item, quantity decimal.Decimal, saleNumber string) error {
	level, err := repos.StockLevels().FindByItemForOwnerLocked(ctx, item.OwnerID, item.ID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.ErrInsufficientStock
		}
		return err
	}

	movement, err := level.ApplyMovement(inventory.MovementTypeSale, quantity)
	if err != nil {
		return err
	}
	movement.WithReference(saleNumber).WithUnitCost(item.CostPrice)

	if err := repos.StockLevels().Save(ctx, level); err != nil {
		return err
	}
	if err := repos.StockMovements().Create(ctx, movement); err != nil {
		return err
	}
	return appinventory.SyncAlerts(ctx, repos.StockAlerts(), level)
}

// returnStock puts one cancelled line's quantity back under a row lock
func (s *SaleService) returnStock(ctx context.Context, repos unitofwork.Repositories, ownerID uuid.UUID, line sales.SaleItem, reference string) error {
	level, err := repos.StockLevels().FindByItemForOwnerLocked(ctx, ownerID, line.ItemID)
	if err != nil {
		return err
	}

	movement, err := level.ApplyMovement(inventory.MovementTypeReturn, line.Quantity)
	if err != nil {
		return err
	}
	movement.WithReference(reference)

	if err := repos.StockLevels().Save(ctx, level); err != nil {
		return err
	}
	if err := repos.StockMovements().Create(ctx, movement); err != nil {
		return err
	}
	return appinventory.SyncAlerts(ctx, repos.StockAlerts(), level)
}
