package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormAssetRepository implements AssetRepository using GORM
type GormAssetRepository struct {
	db *gorm.DB
}

// NewGormAssetRepository creates a new GormAssetRepository
func NewGormAssetRepository(db *gorm.DB) *GormAssetRepository {
	return &GormAssetRepository{db: db}
}

// FindByID finds an asset by ID
func (r *GormAssetRepository) FindByID(ctx context.Context, id uuid.UUID) (*accounting.Asset, error) {
	var asset accounting.Asset
	if err := r.db.WithContext(ctx).First(&asset, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// FindByIDForOwner finds an asset by ID within an owner's register
func (r *GormAssetRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*accounting.Asset, error) {
	var asset accounting.Asset
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&asset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &asset, nil
}

// FindAll finds all assets matching the filter
func (r *GormAssetRepository) FindAll(ctx context.Context, filter shared.Filter) ([]accounting.Asset, error) {
	var assets []accounting.Asset
	query := r.applyFilter(r.db.WithContext(ctx).Model(&accounting.Asset{}), filter)

	if err := query.Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// FindAllForOwner finds all assets for an owner
func (r *GormAssetRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]accounting.Asset, error) {
	var assets []accounting.Asset
	query := r.applyFilter(r.db.WithContext(ctx).Model(&accounting.Asset{}).Where("owner_id = ?", ownerID), filter)

	if err := query.Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// Save creates or updates an asset
func (r *GormAssetRepository) Save(ctx context.Context, asset *accounting.Asset) error {
	return r.db.WithContext(ctx).Save(asset).Error
}

// Delete deletes an asset
func (r *GormAssetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&accounting.Asset{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts assets matching the filter
func (r *GormAssetRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&accounting.Asset{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForOwner counts assets for an owner
func (r *GormAssetRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&accounting.Asset{}).Where("owner_id = ?", ownerID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// SumActiveValue sums the effective value of active assets.
// Effective value is the current value when set, else the purchase value.
func (r *GormAssetRepository) SumActiveValue(ctx context.Context, ownerID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&accounting.Asset{}).
		Select("COALESCE(SUM(COALESCE(current_value, purchase_value)), 0) AS total").
		Where("owner_id = ? AND status = ?", ownerID, accounting.AssetStatusActive).
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// CountActive counts active assets
func (r *GormAssetRepository) CountActive(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&accounting.Asset{}).
		Where("owner_id = ? AND status = ?", ownerID, accounting.AssetStatusActive).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormAssetRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	if filter.OrderBy != "" {
		orderDir := "ASC"
		if strings.ToLower(filter.OrderDir) == "desc" {
			orderDir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + orderDir)
	} else {
		query = query.Order("purchase_date DESC, created_at DESC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormAssetRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "category":
			query = query.Where("category = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	return query
}

// Ensure GormAssetRepository implements AssetRepository
var _ accounting.AssetRepository = (*GormAssetRepository)(nil)
