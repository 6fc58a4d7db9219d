package catalog

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/catalog"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared/valueobject"
)

// ItemService handles catalog item operations
type ItemService struct {
	itemRepo catalog.ItemRepository
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo catalog.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

// Create creates a new product or service item
func (s *ItemService) Create(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*ItemResponse, error) {
	kind := catalog.ItemKind(req.Kind)

	exists, err := s.itemRepo.ExistsByNameForOwner(ctx, ownerID, kind, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An item with this name already exists")
	}

	var item *catalog.Item
	switch kind {
	case catalog.ItemKindProduct:
		item, err = s.createProduct(ctx, ownerID, req)
	case catalog.ItemKindService:
		item, err = s.createService(ownerID, req)
	default:
		return nil, shared.NewDomainError("INVALID_KIND", "Item kind must be product or service")
	}
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := item.Update(item.Name, req.Description); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

func (s *ItemService) createProduct(ctx context.Context, ownerID uuid.UUID, req CreateItemRequest) (*catalog.Item, error) {
	if req.SKU != "" {
		existing, err := s.itemRepo.FindBySKUForOwner(ctx, ownerID, req.SKU)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if existing != nil {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "A product with this SKU already exists")
		}
	}

	unitPrice := decimal.Zero
	costPrice := decimal.Zero
	if req.UnitPrice != nil {
		unitPrice = *req.UnitPrice
	}
	if req.CostPrice != nil {
		costPrice = *req.CostPrice
	}

	item, err := catalog.NewProduct(ownerID, req.Name, req.SKU, req.Unit,
		valueobject.NewMoneyZMW(unitPrice), valueobject.NewMoneyZMW(costPrice))
	if err != nil {
		return nil, err
	}

	if req.ReorderLevel != nil {
		if err := item.SetReorderLevel(*req.ReorderLevel); err != nil {
			return nil, err
		}
	}

	return item, nil
}

func (s *ItemService) createService(ownerID uuid.UUID, req CreateItemRequest) (*catalog.Item, error) {
	if req.PricingModel == "" {
		return nil, shared.NewDomainError("INVALID_PRICING_MODEL", "Pricing model is required for services")
	}

	rate := decimal.Zero
	if req.Rate != nil {
		rate = *req.Rate
	}

	item, err := catalog.NewService(ownerID, req.Name,
		catalog.PricingModel(req.PricingModel), valueobject.NewMoneyZMW(rate))
	if err != nil {
		return nil, err
	}

	if req.EstimatedMinutes != nil {
		if err := item.SetEstimatedMinutes(*req.EstimatedMinutes); err != nil {
			return nil, err
		}
	}

	return item, nil
}

// GetByID retrieves an item by ID
func (s *ItemService) GetByID(ctx context.Context, ownerID, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByIDForOwner(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves items with filtering and pagination
func (s *ItemService) List(ctx context.Context, ownerID uuid.UUID, filter ItemListFilter) ([]ItemResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.OrderBy == "" {
		filter.OrderBy = "name"
	}
	if filter.OrderDir == "" {
		filter.OrderDir = "asc"
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  filter.OrderBy,
		OrderDir: filter.OrderDir,
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}

	if filter.Kind != "" {
		domainFilter.Filters["kind"] = filter.Kind
	}
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}

	items, err := s.itemRepo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.itemRepo.CountForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToItemResponses(items), total, nil
}

// Update updates an item
func (s *ItemService) Update(ctx context.Context, ownerID, itemID uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByIDForOwner(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Description != nil {
		name := item.Name
		description := item.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.Description != nil {
			description = *req.Description
		}
		if req.Name != nil && name != item.Name {
			exists, err := s.itemRepo.ExistsByNameForOwner(ctx, ownerID, item.Kind, name)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, shared.NewDomainError("ALREADY_EXISTS", "An item with this name already exists")
			}
		}
		if err := item.Update(name, description); err != nil {
			return nil, err
		}
	}

	if item.IsProduct() {
		if req.UnitPrice != nil || req.CostPrice != nil {
			unitPrice := item.UnitPrice
			costPrice := item.CostPrice
			if req.UnitPrice != nil {
				unitPrice = *req.UnitPrice
			}
			if req.CostPrice != nil {
				costPrice = *req.CostPrice
			}
			if err := item.SetPrices(valueobject.NewMoneyZMW(unitPrice), valueobject.NewMoneyZMW(costPrice)); err != nil {
				return nil, err
			}
		}
		if req.ReorderLevel != nil {
			if err := item.SetReorderLevel(*req.ReorderLevel); err != nil {
				return nil, err
			}
		}
	}

	if item.IsService() {
		if req.PricingModel != nil || req.Rate != nil {
			model := item.PricingModel
			rate := item.Rate
			if req.PricingModel != nil {
				model = catalog.PricingModel(*req.PricingModel)
			}
			if req.Rate != nil {
				rate = *req.Rate
			}
			if err := item.SetRate(model, valueobject.NewMoneyZMW(rate)); err != nil {
				return nil, err
			}
		}
		if req.EstimatedMinutes != nil {
			if err := item.SetEstimatedMinutes(*req.EstimatedMinutes); err != nil {
				return nil, err
			}
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Activate re-enables a deactivated item
func (s *ItemService) Activate(ctx context.Context, ownerID, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByIDForOwner(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.Activate(); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Deactivate retires an item from sale. Historical records keep referencing
// it, so this is the only removal operation.
func (s *ItemService) Deactivate(ctx context.Context, ownerID, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByIDForOwner(ctx, ownerID, itemID)
	if err != nil {
		return nil, err
	}

	if err := item.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}
