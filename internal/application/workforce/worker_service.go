package workforce

import (
	"context"

	"github.com/google/uuid"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/workforce"
)

// WorkerService handles worker roster operations
type WorkerService struct {
	workerRepo workforce.WorkerRepository
}

// NewWorkerService creates a new WorkerService
func NewWorkerService(workerRepo workforce.WorkerRepository) *WorkerService {
	return &WorkerService{workerRepo: workerRepo}
}

// Create adds a worker to the roster
func (s *WorkerService) Create(ctx context.Context, ownerID uuid.UUID, req CreateWorkerRequest) (*WorkerResponse, error) {
	worker, err := workforce.NewWorker(ownerID, req.Name, req.Phone, req.Role)
	if err != nil {
		return nil, err
	}

	if req.HourlyRate != nil {
		if err := worker.SetHourlyRate(*req.HourlyRate); err != nil {
			return nil, err
		}
	}

	if err := s.workerRepo.Save(ctx, worker); err != nil {
		return nil, err
	}

	response := ToWorkerResponse(worker)
	return &response, nil
}

// GetByID retrieves a worker by ID
func (s *WorkerService) GetByID(ctx context.Context, ownerID, workerID uuid.UUID) (*WorkerResponse, error) {
	worker, err := s.workerRepo.FindByIDForOwner(ctx, ownerID, workerID)
	if err != nil {
		return nil, err
	}

	response := ToWorkerResponse(worker)
	return &response, nil
}

// List retrieves workers with filtering and pagination
func (s *WorkerService) List(ctx context.Context, ownerID uuid.UUID, filter WorkerListFilter) ([]WorkerResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "name",
		OrderDir: "asc",
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Active != nil {
		domainFilter.Filters["active"] = *filter.Active
	}

	workers, err := s.workerRepo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.workerRepo.CountForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToWorkerResponses(workers), total, nil
}

// Update updates a worker
func (s *WorkerService) Update(ctx context.Context, ownerID, workerID uuid.UUID, req UpdateWorkerRequest) (*WorkerResponse, error) {
	worker, err := s.workerRepo.FindByIDForOwner(ctx, ownerID, workerID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.Phone != nil || req.Role != nil {
		name := worker.Name
		phone := worker.Phone
		role := worker.Role
		if req.Name != nil {
			name = *req.Name
		}
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Role != nil {
			role = *req.Role
		}
		if err := worker.Update(name, phone, role); err != nil {
			return nil, err
		}
	}

	if req.HourlyRate != nil {
		if err := worker.SetHourlyRate(*req.HourlyRate); err != nil {
			return nil, err
		}
	}

	if err := s.workerRepo.Save(ctx, worker); err != nil {
		return nil, err
	}

	response := ToWorkerResponse(worker)
	return &response, nil
}

// Deactivate removes a worker from the active roster. Existing work
// records keep referencing the worker.
func (s *WorkerService) Deactivate(ctx context.Context, ownerID, workerID uuid.UUID) (*WorkerResponse, error) {
	worker, err := s.workerRepo.FindByIDForOwner(ctx, ownerID, workerID)
	if err != nil {
		return nil, err
	}

	if err := worker.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.workerRepo.Save(ctx, worker); err != nil {
		return nil, err
	}

	response := ToWorkerResponse(worker)
	return &response, nil
}

// Activate restores a deactivated worker
func (s *WorkerService) Activate(ctx context.Context, ownerID, workerID uuid.UUID) (*WorkerResponse, error) {
	worker, err := s.workerRepo.FindByIDForOwner(ctx, ownerID, workerID)
	if err != nil {
		return nil, err
	}

	if err := worker.Activate(); err != nil {
		return nil, err
	}
	if err := s.workerRepo.Save(ctx, worker); err != nil {
		return nil, err
	}

	response := ToWorkerResponse(worker)
	return &response, nil
}
