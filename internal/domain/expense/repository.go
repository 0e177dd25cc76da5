package expense

import "context"

type ExpenseRepository interface {
	Create(ctx context.Context, exp Expense) (Expense, error)
	GetByID(ctx context.Context, id string) (Expense, error)
	List(ctx context.Context, month, year int) ([]Expense, error)
	Update(ctx context.Context, req UpdateExpenseRequest) error
	Delete(ctx context.Context, id string) error
	SummarizeMonth(ctx context.Context, month, year int) (MonthSummary, error)
}
