package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/workforce"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormWorkerRepository implements WorkerRepository using GORM
type GormWorkerRepository struct {
	db *gorm.DB
}

// NewGormWorkerRepository creates a new GormWorkerRepository
func NewGormWorkerRepository(db *gorm.DB) *GormWorkerRepository {
	return &GormWorkerRepository{db: db}
}

// FindByID finds a worker by ID
func (r *GormWorkerRepository) FindByID(ctx context.Context, id uuid.UUID) (*workforce.Worker, error) {
	var worker workforce.Worker
	if err := r.db.WithContext(ctx).First(&worker, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &worker, nil
}

// FindByIDForOwner finds a worker by ID within an owner's roster
func (r *GormWorkerRepository) FindByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (*workforce.Worker, error) {
	var worker workforce.Worker
	if err := r.db.WithContext(ctx).
		Where("owner_id = ? AND id = ?", ownerID, id).
		First(&worker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &worker, nil
}

// FindAll finds all workers matching the filter
func (r *GormWorkerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]workforce.Worker, error) {
	var workers []workforce.Worker
	query := r.applyFilter(r.db.WithContext(ctx).Model(&workforce.Worker{}), filter)

	if err := query.Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

// FindAllForOwner finds all workers for an owner
func (r *GormWorkerRepository) FindAllForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) ([]workforce.Worker, error) {
	var workers []workforce.Worker
	query := r.applyFilter(r.db.WithContext(ctx).Model(&workforce.Worker{}).Where("owner_id = ?", ownerID), filter)

	if err := query.Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

// Save creates or updates a worker
func (r *GormWorkerRepository) Save(ctx context.Context, worker *workforce.Worker) error {
	return r.db.WithContext(ctx).Save(worker).Error
}

// Delete deletes a worker
func (r *GormWorkerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&workforce.Worker{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts workers matching the filter
func (r *GormWorkerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&workforce.Worker{}), filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountForOwner counts workers for an owner
func (r *GormWorkerRepository) CountForOwner(ctx context.Context, ownerID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&workforce.Worker{}).Where("owner_id = ?", ownerID)
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// applyFilter applies filter options to the query
func (r *GormWorkerRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
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
		query = query.Order("name ASC")
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormWorkerRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR role ILIKE ?", searchPattern, searchPattern)
	}

	if active, ok := filter.Filters["active"]; ok {
		query = query.Where("active = ?", active)
	}

	return query
}

// Ensure GormWorkerRepository implements WorkerRepository
var _ workforce.WorkerRepository = (*GormWorkerRepository)(nil)
