package workforce

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	appaccounting "github.com/Mbewe2000/Metrilabs-metribooks/internal/application/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/application/unitofwork"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/catalog"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/workforce"
)

// WorkRecordService handles service job recording and payment tracking.
// Payment transitions cascade into the income ledger, the monthly tax
// projection, and the financial summary, so they run inside one scope.
type WorkRecordService struct {
	recordRepo workforce.WorkRecordRepository
	workerRepo workforce.WorkerRepository
	itemRepo   catalog.ItemRepository
	scope      unitofwork.TransactionScope
}

// NewWorkRecordService creates a new WorkRecordService
func NewWorkRecordService(
	recordRepo workforce.WorkRecordRepository,
	workerRepo workforce.WorkerRepository,
	itemRepo catalog.ItemRepository,
	scope unitofwork.TransactionScope,
) *WorkRecordService {
	return &WorkRecordService{
		recordRepo: recordRepo,
		workerRepo: workerRepo,
		itemRepo:   itemRepo,
		scope:      scope,
	}
}

// Create records a performed job as a pending work record
func (s *WorkRecordService) Create(ctx context.Context, ownerID uuid.UUID, req CreateWorkRecordRequest) (*WorkRecordResponse, error) {
	item, err := s.itemRepo.FindByIDForOwner(ctx, ownerID, req.ServiceItemID)
	if err != nil {
		return nil, err
	}
	if !item.IsService() {
		return nil, shared.NewDomainError("NOT_A_SERVICE", "Work records can only reference service items")
	}
	if !item.Active {
		return nil, shared.NewDomainError("ITEM_INACTIVE", "Service is deactivated")
	}

	hours := decimal.Zero
	if req.Hours != nil {
		hours = *req.Hours
	}
	if item.PricingModel == catalog.PricingModelHourly && hours.IsZero() && req.Amount == nil {
		return nil, shared.NewDomainError("INVALID_HOURS", "Hours are required for hourly services")
	}

	amount := workforce.ComputeAmount(string(item.PricingModel), item.Rate, hours)
	if req.Amount != nil {
		amount = *req.Amount
	}

	workDate := time.Now()
	if req.WorkDate != nil {
		workDate = *req.WorkDate
	}

	record, err := workforce.NewWorkRecord(ownerID, item.ID, item.Name, workDate, hours, amount)
	if err != nil {
		return nil, err
	}

	if req.WorkerID != nil {
		worker, err := s.workerRepo.FindByIDForOwner(ctx, ownerID, *req.WorkerID)
		if err != nil {
			return nil, err
		}
		record.AssignWorker(worker.ID)
	}
	if req.CustomerName != "" {
		record.SetCustomer(req.CustomerName)
	}
	if req.Notes != "" {
		record.SetNotes(req.Notes)
	}

	if err := s.recordRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	response := ToWorkRecordResponse(record)
	return &response, nil
}

// GetByID retrieves a work record by ID
func (s *WorkRecordService) GetByID(ctx context.Context, ownerID, recordID uuid.UUID) (*WorkRecordResponse, error) {
	record, err := s.recordRepo.FindByIDForOwner(ctx, ownerID, recordID)
	if err != nil {
		return nil, err
	}

	response := ToWorkRecordResponse(record)
	return &response, nil
}

// List retrieves work records with filtering and pagination
func (s *WorkRecordService) List(ctx context.Context, ownerID uuid.UUID, filter WorkRecordListFilter) ([]WorkRecordResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "work_date",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
	if filter.WorkerID != nil {
		domainFilter.Filters["worker_id"] = *filter.WorkerID
	}
	if filter.PaymentStatus != "" {
		domainFilter.Filters["payment_status"] = filter.PaymentStatus
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	records, total, err := s.recordRepo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToWorkRecordResponses(records), total, nil
}

// MarkPaid marks a record paid and posts the matching income, dated by the
// work date so the month's tax lands in the right period
func (s *WorkRecordService) MarkPaid(ctx context.Context, ownerID, recordID uuid.UUID) (*WorkRecordResponse, error) {
	record, err := s.recordRepo.FindByIDForOwner(ctx, ownerID, recordID)
	if err != nil {
		return nil, err
	}

	if err := record.MarkPaid(); err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.WorkRecords().Update(ctx, record); err != nil {
			return err
		}

		income, err := accounting.NewIncomeRecord(ownerID, accounting.IncomeSourceService, record.ID,
			record.Amount, record.WorkDate, "Service "+record.ServiceName)
		if err != nil {
			return err
		}
		if err := repos.Income().Create(ctx, income); err != nil {
			return err
		}

		if err := appaccounting.ResyncMonthlyTax(ctx, repos, ownerID, record.WorkDate); err != nil {
			return err
		}
		return appaccounting.RebuildSummary(ctx, repos, ownerID, record.WorkDate)
	})
	if err != nil {
		return nil, err
	}

	response := ToWorkRecordResponse(record)
	return &response, nil
}

// MarkUnpaid reverts a paid record to pending and removes its income again
func (s *WorkRecordService) MarkUnpaid(ctx context.Context, ownerID, recordID uuid.UUID) (*WorkRecordResponse, error) {
	record, err := s.recordRepo.FindByIDForOwner(ctx, ownerID, recordID)
	if err != nil {
		return nil, err
	}

	if err := record.MarkUnpaid(); err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.WorkRecords().Update(ctx, record); err != nil {
			return err
		}

		if err := repos.Income().DeleteBySource(ctx, ownerID, accounting.IncomeSourceService, record.ID); err != nil {
			return err
		}

		if err := appaccounting.ResyncMonthlyTax(ctx, repos, ownerID, record.WorkDate); err != nil {
			return err
		}
		return appaccounting.RebuildSummary(ctx, repos, ownerID, record.WorkDate)
	})
	if err != nil {
		return nil, err
	}

	response := ToWorkRecordResponse(record)
	return &response, nil
}

// Delete removes a pending work record. Paid records must be marked
// unpaid first so the income side stays consistent.
func (s *WorkRecordService) Delete(ctx context.Context, ownerID, recordID uuid.UUID) error {
	record, err := s.recordRepo.FindByIDForOwner(ctx, ownerID, recordID)
	if err != nil {
		return err
	}

	if record.IsPaid() {
		return shared.NewDomainError("RECORD_PAID", "Paid work records cannot be deleted; mark unpaid first")
	}

	return s.recordRepo.Delete(ctx, record.ID)
}
