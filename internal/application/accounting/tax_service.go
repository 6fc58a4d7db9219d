package accounting

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
)

// TaxService reads the monthly turnover tax projection. Months with no
// income simply have no stored record and read as a zero position.
type TaxService struct {
	taxRepo accounting.TurnoverTaxRepository
}

// NewTaxService creates a new TaxService
func NewTaxService(taxRepo accounting.TurnoverTaxRepository) *TaxService {
	return &TaxService{taxRepo: taxRepo}
}

// GetMonth returns the tax position for one month
func (s *TaxService) GetMonth(ctx context.Context, ownerID uuid.UUID, year, month int) (*TurnoverTaxResponse, error) {
	if month < 1 || month > 12 {
		return nil, shared.NewDomainError("INVALID_MONTH", "Month must be between 1 and 12")
	}

	record, err := s.taxRepo.FindByMonthForOwner(ctx, ownerID, year, month)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return zeroMonth(year, month), nil
		}
		return nil, err
	}

	response := ToTurnoverTaxResponse(record)
	return &response, nil
}

// GetYear returns the full-year tax position, month by month
func (s *TaxService) GetYear(ctx context.Context, ownerID uuid.UUID, year int) (*AnnualTaxPositionResponse, error) {
	records, err := s.taxRepo.FindByYearForOwner(ctx, ownerID, year)
	if err != nil {
		return nil, err
	}

	byMonth := make(map[int]*accounting.TurnoverTaxRecord, len(records))
	for i := range records {
		byMonth[records[i].Month] = &records[i]
	}

	position := &AnnualTaxPositionResponse{
		Year:         year,
		Months:       make([]TurnoverTaxResponse, 0, 12),
		TotalRevenue: decimal.Zero,
		TotalTaxDue:  decimal.Zero,
		AnnualLimit:  accounting.AnnualTurnoverLimit,
	}

	for month := 1; month <= 12; month++ {
		record, ok := byMonth[month]
		if !ok {
			position.Months = append(position.Months, *zeroMonth(year, month))
			continue
		}
		position.Months = append(position.Months, ToTurnoverTaxResponse(record))
		position.TotalRevenue = position.TotalRevenue.Add(record.Revenue)
		position.TotalTaxDue = position.TotalTaxDue.Add(record.TaxDue)
	}

	position.ExceedsAnnualLimit = position.TotalRevenue.GreaterThan(accounting.AnnualTurnoverLimit)

	return position, nil
}

func zeroMonth(year, month int) *TurnoverTaxResponse {
	return &TurnoverTaxResponse{
		Year:          year,
		Month:         month,
		Revenue:       decimal.Zero,
		TaxableAmount: decimal.Zero,
		TaxDue:        decimal.Zero,
		Rate:          accounting.TurnoverTaxRate,
	}
}
