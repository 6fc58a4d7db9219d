package accounting

import (
	"context"

	"github.com/google/uuid"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
)

// IncomeService reads the income projection. Income records are written
// only by the sale and work-record cascades; this service never mutates.
type IncomeService struct {
	incomeRepo accounting.IncomeRecordRepository
}

// NewIncomeService creates a new IncomeService
func NewIncomeService(incomeRepo accounting.IncomeRecordRepository) *IncomeService {
	return &IncomeService{incomeRepo: incomeRepo}
}

// List retrieves income records with filtering and pagination
func (s *IncomeService) List(ctx context.Context, ownerID uuid.UUID, filter IncomeListFilter) ([]IncomeRecordResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "date",
		OrderDir: "desc",
		Filters:  make(map[string]interface{}),
	}
	if filter.Source != "" {
		domainFilter.Filters["source"] = filter.Source
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	records, total, err := s.incomeRepo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToIncomeRecordResponses(records), total, nil
}

// MonthlyTotal sums the income projection for one calendar month
func (s *IncomeService) MonthlyTotal(ctx context.Context, ownerID uuid.UUID, req MonthlyIncomeRequest) (*MonthlyIncomeResponse, error) {
	total, err := s.incomeRepo.SumForMonth(ctx, ownerID, req.Year, req.Month)
	if err != nil {
		return nil, err
	}

	return &MonthlyIncomeResponse{
		Year:        req.Year,
		Month:       req.Month,
		TotalIncome: total.Round(2),
	}, nil
}
