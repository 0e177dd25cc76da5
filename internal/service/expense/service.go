package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/expense"
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
)

type ExpenseServiceImpl struct {
	expenseRepo expense.ExpenseRepository
}

func NewExpenseService(expenseRepo expense.ExpenseRepository) expense.ExpenseService {
	return &ExpenseServiceImpl{expenseRepo: expenseRepo}
}

func toExpenseResponse(e expense.Expense) expense.ExpenseResponse {
	return expense.ExpenseResponse{
		ID:           e.ID,
		CategoryID:   e.CategoryID,
		CategoryName: e.CategoryName,
		SiteID:       e.SiteID,
		SiteName:     e.SiteName,
		Description:  e.Description,
		Amount:       e.Amount,
		ExpenseDate:  e.ExpenseDate.Format("2006-01-02"),
	}
}

func validatePeriod(month, year int) error {
	if month < 1 || month > 12 {
		return validator.ValidationErrors{
			{Field: "month", Message: "must be between 1 and 12"},
		}
	}
	return nil
}

// Create implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Create(ctx context.Context, req expense.CreateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	expenseDate, _ := time.Parse("2006-01-02", req.ExpenseDate)

	created, err := s.expenseRepo.Create(ctx, expense.Expense{
		CategoryID:  req.CategoryID,
		SiteID:      req.SiteID,
		Description: req.Description,
		Amount:      req.Amount,
		ExpenseDate: expenseDate,
	})
	if err != nil {
		return expense.ExpenseResponse{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return toExpenseResponse(created), nil
}

// GetByID implements expense.ExpenseService.
func (s *ExpenseServiceImpl) GetByID(ctx context.Context, id string) (expense.ExpenseResponse, error) {
	exp, err := s.expenseRepo.GetByID(ctx, id)
	if err != nil {
		return expense.ExpenseResponse{}, err
	}
	return toExpenseResponse(exp), nil
}

// List implements expense.ExpenseService.
func (s *ExpenseServiceImpl) List(ctx context.Context, month, year int) ([]expense.ExpenseResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.List(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	responses := make([]expense.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		responses = append(responses, toExpenseResponse(e))
	}
	return responses, nil
}

// Update implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Update(ctx context.Context, req expense.UpdateExpenseRequest) (expense.ExpenseResponse, error) {
	if err := req.Validate(); err != nil {
		return expense.ExpenseResponse{}, err
	}

	if err := s.expenseRepo.Update(ctx, req); err != nil {
		return expense.ExpenseResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// Delete implements expense.ExpenseService.
func (s *ExpenseServiceImpl) Delete(ctx context.Context, id string) error {
	return s.expenseRepo.Delete(ctx, id)
}

// SummarizeMonth implements expense.ExpenseService.
func (s *ExpenseServiceImpl) SummarizeMonth(ctx context.Context, month, year int) (expense.MonthSummaryResponse, error) {
	if err := validatePeriod(month, year); err != nil {
		return expense.MonthSummaryResponse{}, err
	}

	summary, err := s.expenseRepo.SummarizeMonth(ctx, month, year)
	if err != nil {
		return expense.MonthSummaryResponse{}, fmt.Errorf("failed to summarize expenses: %w", err)
	}

	resp := expense.MonthSummaryResponse{
		Month: summary.Month,
		Year:  summary.Year,
		Total: summary.Total,
	}
	for _, ct := range summary.ByCategory {
		resp.ByCategory = append(resp.ByCategory, expense.CategoryTotalResponse{
			CategoryID:   ct.CategoryID,
			CategoryName: ct.CategoryName,
			Total:        ct.Total,
		})
	}
	return resp, nil
}
