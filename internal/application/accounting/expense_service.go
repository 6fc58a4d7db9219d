package accounting

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/application/unitofwork"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/accounting"
	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
)

// ExpenseService handles expense tracking. Every mutation that touches a
// paid expense rebuilds the financial summary, since paid expenses feed
// the profit figures.
type ExpenseService struct {
	expenseRepo accounting.ExpenseRepository
	scope       unitofwork.TransactionScope
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo accounting.ExpenseRepository, scope unitofwork.TransactionScope) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo, scope: scope}
}

// Create records an expense
func (s *ExpenseService) Create(ctx context.Context, ownerID uuid.UUID, req CreateExpenseRequest) (*ExpenseResponse, error) {
	expenseDate := time.Now()
	if req.ExpenseDate != nil {
		expenseDate = *req.ExpenseDate
	}

	expense, err := accounting.NewExpense(ownerID, accounting.ExpenseCategory(req.Category),
		req.Description, req.Amount, expenseDate)
	if err != nil {
		return nil, err
	}

	if req.Pending {
		if err := expense.MarkPending(); err != nil {
			return nil, err
		}
	}
	if req.RecurrencePeriod != "" {
		if err := expense.SetRecurrence(accounting.RecurrencePeriod(req.RecurrencePeriod)); err != nil {
			return nil, err
		}
	}
	if req.ReceiptReference != "" {
		expense.SetReceiptReference(req.ReceiptReference)
	}

	err = s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.Expenses().Save(ctx, expense); err != nil {
			return err
		}
		return RebuildSummary(ctx, repos, ownerID, expense.ExpenseDate)
	})
	if err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, ownerID, expenseID uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByIDForOwner(ctx, ownerID, expenseID)
	if err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// List retrieves expenses with filtering and pagination
func (s *ExpenseService) List(ctx context.Context, ownerID uuid.UUID, filter ExpenseListFilter) ([]ExpenseResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	domainFilter := shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
		OrderBy:  "expense_date",
		OrderDir: "desc",
		Search:   filter.Search,
		Filters:  make(map[string]interface{}),
	}
	if filter.Category != "" {
		domainFilter.Filters["category"] = filter.Category
	}
	if filter.PaymentStatus != "" {
		domainFilter.Filters["payment_status"] = filter.PaymentStatus
	}
	if filter.Recurring != nil {
		domainFilter.Filters["recurring"] = *filter.Recurring
	}
	if filter.StartDate != nil {
		domainFilter.Filters["start_date"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		domainFilter.Filters["end_date"] = *filter.EndDate
	}

	expenses, err := s.expenseRepo.FindAllForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.expenseRepo.CountForOwner(ctx, ownerID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToExpenseResponses(expenses), total, nil
}

// Update updates an expense
func (s *ExpenseService) Update(ctx context.Context, ownerID, expenseID uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByIDForOwner(ctx, ownerID, expenseID)
	if err != nil {
		return nil, err
	}

	category := expense.Category
	description := expense.Description
	amount := expense.Amount
	expenseDate := expense.ExpenseDate
	if req.Category != nil {
		category = accounting.ExpenseCategory(*req.Category)
	}
	if req.Description != nil {
		description = *req.Description
	}
	if req.Amount != nil {
		amount = *req.Amount
	}
	if req.ExpenseDate != nil {
		expenseDate = *req.ExpenseDate
	}
	if err := expense.Update(category, description, amount, expenseDate); err != nil {
		return nil, err
	}

	if req.RecurrencePeriod != nil {
		if *req.RecurrencePeriod == "" {
			expense.ClearRecurrence()
		} else if err := expense.SetRecurrence(accounting.RecurrencePeriod(*req.RecurrencePeriod)); err != nil {
			return nil, err
		}
	}
	if req.ReceiptReference != nil {
		expense.SetReceiptReference(*req.ReceiptReference)
	}

	err = s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.Expenses().Save(ctx, expense); err != nil {
			return err
		}
		return RebuildSummary(ctx, repos, ownerID, expense.ExpenseDate)
	})
	if err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// MarkPaid settles a pending expense
func (s *ExpenseService) MarkPaid(ctx context.Context, ownerID, expenseID uuid.UUID) (*ExpenseResponse, error) {
	return s.transition(ctx, ownerID, expenseID, (*accounting.Expense).MarkPaid)
}

// MarkPending reverts a paid expense to pending
func (s *ExpenseService) MarkPending(ctx context.Context, ownerID, expenseID uuid.UUID) (*ExpenseResponse, error) {
	return s.transition(ctx, ownerID, expenseID, (*accounting.Expense).MarkPending)
}

func (s *ExpenseService) transition(ctx context.Context, ownerID, expenseID uuid.UUID, fn func(*accounting.Expense) error) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByIDForOwner(ctx, ownerID, expenseID)
	if err != nil {
		return nil, err
	}

	if err := fn(expense); err != nil {
		return nil, err
	}

	err = s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.Expenses().Save(ctx, expense); err != nil {
			return err
		}
		return RebuildSummary(ctx, repos, ownerID, expense.ExpenseDate)
	})
	if err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// Delete removes an expense and refreshes the summary
func (s *ExpenseService) Delete(ctx context.Context, ownerID, expenseID uuid.UUID) error {
	expense, err := s.expenseRepo.FindByIDForOwner(ctx, ownerID, expenseID)
	if err != nil {
		return err
	}

	return s.scope.Execute(ctx, func(repos unitofwork.Repositories) error {
		if err := repos.Expenses().Delete(ctx, expense.ID); err != nil {
			return err
		}
		return RebuildSummary(ctx, repos, ownerID, expense.ExpenseDate)
	})
}
