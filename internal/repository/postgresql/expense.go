package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/constrack/backoffice-backend-go/internal/domain/expense"
	"github.com/constrack/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type expenseRepositoryImpl struct {
	db *database.DB
}

func NewExpenseRepository(db *database.DB) expense.ExpenseRepository {
	return &expenseRepositoryImpl{db: db}
}

const expenseSelectColumns = `
	x.id, x.category_id, x.site_id, x.description, x.amount, x.expense_date,
	x.created_at, x.updated_at, c.name AS category_name, s.name AS site_name
`

func scanExpense(row pgx.Row) (expense.Expense, error) {
	var e expense.Expense
	err := row.Scan(
		&e.ID,
		&e.CategoryID,
		&e.SiteID,
		&e.Description,
		&e.Amount,
		&e.ExpenseDate,
		&e.CreatedAt,
		&e.UpdatedAt,
		&e.CategoryName,
		&e.SiteName,
	)
	return e, err
}

// Create implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Create(ctx context.Context, exp expense.Expense) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expenses (id, category_id, site_id, description, amount, expense_date, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		exp.CategoryID,
		exp.SiteID,
		exp.Description,
		exp.Amount,
		exp.ExpenseDate,
	).Scan(&exp.ID, &exp.CreatedAt, &exp.UpdatedAt)

	if err != nil {
		return expense.Expense{}, fmt.Errorf("failed to create expense: %w", err)
	}

	return exp, nil
}

// GetByID implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) GetByID(ctx context.Context, id string) (expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenseSelectColumns + `
		FROM expenses x
		LEFT JOIN expense_categories c ON c.id = x.category_id
		LEFT JOIN sites s ON s.id = x.site_id
		WHERE x.id = $1
	`

	e, err := scanExpense(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return expense.Expense{}, expense.ErrExpenseNotFound
		}
		return expense.Expense{}, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

// List implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) List(ctx context.Context, month, year int) ([]expense.Expense, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + expenseSelectColumns + `
		FROM expenses x
		LEFT JOIN expense_categories c ON c.id = x.category_id
		LEFT JOIN sites s ON s.id = x.site_id
		WHERE EXTRACT(MONTH FROM x.expense_date) = $1
			AND EXTRACT(YEAR FROM x.expense_date) = $2
		ORDER BY x.expense_date DESC
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []expense.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return expenses, nil
}

// Update implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Update(ctx context.Context, req expense.UpdateExpenseRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE expenses SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.CategoryID != nil {
		query += fmt.Sprintf(", category_id = $%d", argIdx)
		args = append(args, *req.CategoryID)
		argIdx++
	}
	if req.SiteID != nil {
		query += fmt.Sprintf(", site_id = $%d", argIdx)
		args = append(args, *req.SiteID)
		argIdx++
	}
	if req.Description != nil {
		query += fmt.Sprintf(", description = $%d", argIdx)
		args = append(args, *req.Description)
		argIdx++
	}
	if req.Amount != nil {
		query += fmt.Sprintf(", amount = $%d", argIdx)
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.ExpenseDate != nil {
		query += fmt.Sprintf(", expense_date = $%d", argIdx)
		args = append(args, *req.ExpenseDate)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

// Delete implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM expenses WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return expense.ErrExpenseNotFound
	}

	return nil
}

// SummarizeMonth implements expense.ExpenseRepository.
func (r *expenseRepositoryImpl) SummarizeMonth(ctx context.Context, month, year int) (expense.MonthSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT x.category_id, c.name, COALESCE(SUM(x.amount), 0)
		FROM expenses x
		LEFT JOIN expense_categories c ON c.id = x.category_id
		WHERE EXTRACT(MONTH FROM x.expense_date) = $1
			AND EXTRACT(YEAR FROM x.expense_date) = $2
		GROUP BY x.category_id, c.name
		ORDER BY c.name ASC NULLS LAST
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return expense.MonthSummary{}, fmt.Errorf("failed to summarize expenses: %w", err)
	}
	defer rows.Close()

	summary := expense.MonthSummary{Month: month, Year: year, Total: decimal.Zero}
	for rows.Next() {
		var ct expense.CategoryTotal
		if err := rows.Scan(&ct.CategoryID, &ct.CategoryName, &ct.Total); err != nil {
			return expense.MonthSummary{}, fmt.Errorf("failed to scan category total: %w", err)
		}
		summary.Total = summary.Total.Add(ct.Total)
		summary.ByCategory = append(summary.ByCategory, ct)
	}

	if err = rows.Err(); err != nil {
		return expense.MonthSummary{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return summary, nil
}
