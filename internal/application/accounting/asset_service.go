package accounting

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/application/unitofwork"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
)

// AssetService handles asset register operations. Mutations rebuild the
// financial summary, since active asset values feed the position figures.
type AssetService struct {
	assetRepo accounting.AssetRepository
	scope     unitofwork.TransactionScope
}

// NewAssetService creates a new AssetService
func NewAssetService(assetRepo accounting.AssetRepository, scope unitofwork.TransactionScope) *AssetService {
	return &AssetService{assetRepo: assetRepo, scope: scope}
}

// Create records an asset
func (s *AssetService) Create(ctx context.Context, ownerID uuid.UUID, req CreateAssetRequest) (*AssetResponse, error) {
	purchaseDate := time.Now()
	if req.PurchaseDate != nil {
		purchaseDate = *req.PurchaseDate
	}

	asset, err := accounting.NewAsset(ownerID, req.Name, accounting.AssetCategory(req.Category),
		req.PurchaseValue, purchaseDate)
	if err != nil {
		return nil, err
	}

	if req.CurrentValue != nil {
		if err := asset.SetCurrentValue(*req.CurrentValue); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		if err := asset.Update(asset.Name, asset.Category, req.Notes); err != nil {
			return nil, err
		}
	}

	err = s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.Assets().Save(ctx, asset); err != nil {
			return err
		}
		return RebuildSummary(ctx, repos, ownerID, asset.PurchaseDate)
	})
	if err != nil {
		return nil, err
	}

	response := ToAssetResponse(asset)
	return &response, nil
}

// GetByID retrieves an asset by ID
func (s *AssetService) GetByID(ctx context.Context, ownerID, assetID uuid.UUID) (*AssetResponse, error) {
	asset, err := s.assetRepo.FindByIDForOwner(ctx, ownerID, assetID)
	if err != nil {
		return nil, err
	}

	response := ToAssetResponse(asset)
	return &response, nil
}

// List retrieves assets with filtering and pagination
func (s *AssetService) List(ctx context.Context, ownerID uuid.UUID, filter AssetListFilter) ([]AssetResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "purchase_date",
		OrderDir: "desc",
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	assets, err := s.assetRepo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.assetRepo.CountForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToAssetResponses(assets), total, nil
}

// Update updates an asset
func (s *AssetService) Update(ctx context.Context, ownerID, assetID uuid.UUID, req UpdateAssetRequest) (*AssetResponse, error) {
	asset, err := s.assetRepo.FindByIDForOwner(ctx, ownerID, assetID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Category != nil || req.Notes != nil {
		name := asset.Name
		category := asset.Category
		notes := asset.Notes
		if req.Name != nil {
			name = *req.Name
		}
		if req.Category != nil {
			category = accounting.AssetCategory(*req.Category)
		}
		if req.Notes != nil {
			notes = *req.Notes
		}
		if err := asset.Update(name, category, notes); err != nil {
			return nil, err
		}
	}

	if req.CurrentValue != nil {
		if err := asset.SetCurrentValue(*req.CurrentValue); err != nil {
			return nil, err
		}
	}

	err = s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.Assets().Save(ctx, asset); err != nil {
			return err
		}
		return RebuildSummary(ctx, repos, ownerID, asset.PurchaseDate)
	})
	if err != nil {
		return nil, err
	}

	response := ToAssetResponse(asset)
	return &response, nil
}

// Dispose marks an asset disposed or sold. The asset stays in the
// register but stops counting toward the active asset total.
func (s *AssetService) Dispose(ctx context.Context, ownerID, assetID uuid.UUID, status string) (*AssetResponse, error) {
	asset, err := s.assetRepo.FindByIDForOwner(ctx, ownerID, assetID)
	if err != nil {
		return nil, err
	}

	if err := asset.Dispose(accounting.AssetStatus(status)); err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.Assets().Save(ctx, asset); err != nil {
			return err
		}
		return RebuildSummary(ctx, repos, ownerID, asset.PurchaseDate)
	})
	if err != nil {
		return nil, err
	}

	response := ToAssetResponse(asset)
	return &response, nil
}
