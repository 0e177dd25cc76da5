package expense

import "context"

type ExpenseService interface {
	Create(ctx context.Context, req CreateExpenseRequest) (ExpenseResponse, error)
	GetByID(ctx context.Context, id string) (ExpenseResponse, error)
	List(ctx context.Context, month, year int) ([]ExpenseResponse, error)
	Update(ctx context.Context, req UpdateExpenseRequest) (ExpenseResponse, error)
	Delete(ctx context.Context, id string) error
	SummarizeMonth(ctx context.Context, month, year int) (MonthSummaryResponse, error)
}
