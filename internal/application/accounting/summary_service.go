package accounting

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/application/unitofwork"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
)

// SummaryService reads and recomputes monthly financial summaries
type SummaryService struct {
	summaryRepo accounting.FinancialSummaryRepository
	scope       unitofwork.TransactionScope
}

// NewSummaryService creates a new SummaryService
func NewSummaryService(summaryRepo accounting.FinancialSummaryRepository, scope unitofwork.TransactionScope) *SummaryService {
	return &SummaryService{summaryRepo: summaryRepo, scope: scope}
}

// GetMonth returns the summary for one calendar month. A month with no
// recorded activity reads as an all-zero summary.
func (s *SummaryService) GetMonth(ctx context.Context, ownerID uuid.UUID, year, month int) (*FinancialSummaryResponse, error) {
	summary, err := s.summaryRepo.FindByMonthForOwner(ctx, ownerID, year, month)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			summary, err = accounting.NewFinancialSummary(ownerID, year, month)
			if err != nil {
				return nil, err
			}
			response := ToFinancialSummaryResponse(summary)
			return &response, nil
		}
		return nil, err
	}

	response := ToFinancialSummaryResponse(summary)
	return &response, nil
}

// ListYear returns the stored monthly summaries for one calendar year,
// in month order. Months with no activity have no row and are omitted.
func (s *SummaryService) ListYear(ctx context.Context, ownerID uuid.UUID, year int) ([]FinancialSummaryResponse, error) {
	summaries, err := s.summaryRepo.FindByYearForOwner(ctx, ownerID, year)
	if err != nil {
		return nil, err
	}

	responses := make([]FinancialSummaryResponse, 0, len(summaries))
	for i := range summaries {
		responses = append(responses, ToFinancialSummaryResponse(&summaries[i]))
	}
	return responses, nil
}

// Recompute rebuilds one month's summary from the ledgers. The cascades
// keep it consistent on their own; this is the manual refresh for when
// the owner wants to be sure.
func (s *SummaryService) Recompute(ctx context.Context, ownerID uuid.UUID, year, month int) (*FinancialSummaryResponse, error) {
	if month < 1 || month > 12 {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must be between 1 and 12")
	}

	date := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	err := s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		return RebuildSummary(ctx, repos, ownerID, date)
	})
	if err != nil {
		return nil, err
	}

	return s.GetMonth(ctx, ownerID, year, month)
}

// Period computes the financial position for one date range straight from
// the ledgers. Nothing is stored; the monthly summaries are untouched.
func (s *SummaryService) Period(ctx context.Context, ownerID uuid.UUID, req PeriodSummaryRequest) (*PeriodSummaryResponse, error) {
	if req.EndDate.Before(req.StartDate) {
		return nil, shared.NewDomainError("INVALID_DATE_RANGE", "End date must not be before start date")
	}

	resp := &PeriodSummaryResponse{StartDate: req.StartDate, EndDate: req.EndDate}
	err := s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		bySource, err := repos.Income().SumBySourceForRange(ctx, ownerID, req.StartDate, req.EndDate)
		if err != nil {
			return err
		}
		expenses, err := repos.Expenses().SumPaidForRange(ctx, ownerID, req.StartDate, req.EndDate)
		if err != nil {
			return err
		}

		resp.SalesRevenue = bySource[accounting.IncomeSourceSale].Round(2)
		resp.ServiceRevenue = bySource[accounting.IncomeSourceService].Round(2)
		resp.TotalRevenue = resp.SalesRevenue.Add(resp.ServiceRevenue)
		resp.TotalExpenses = expenses.Round(2)
		resp.NetProfit = resp.TotalRevenue.Sub(resp.TotalExpenses)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
