package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/constrack/backoffice-backend-go/internal/domain/master/category"
	"github.com/constrack/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type categoryRepositoryImpl struct {
	db *database.DB
}

func NewCategoryRepository(db *database.DB) category.CategoryRepository {
	return &categoryRepositoryImpl{db: db}
}

// Create implements category.CategoryRepository.
func (r *categoryRepositoryImpl) Create(ctx context.Context, cat category.Category) (category.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO expense_categories (id, name, description, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, cat.Name, cat.Description).Scan(
		&cat.ID,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return category.Category{}, category.ErrCategoryNameExists
		}
		return category.Category{}, fmt.Errorf("failed to create expense category: %w", err)
	}

	return cat, nil
}

// GetByID implements category.CategoryRepository.
func (r *categoryRepositoryImpl) GetByID(ctx context.Context, id string) (category.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM expense_categories
		WHERE id = $1
	`

	var cat category.Category
	err := q.QueryRow(ctx, query, id).Scan(
		&cat.ID,
		&cat.Name,
		&cat.Description,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return category.Category{}, category.ErrCategoryNotFound
		}
		return category.Category{}, fmt.Errorf("failed to get expense category: %w", err)
	}

	return cat, nil
}

// List implements category.CategoryRepository.
func (r *categoryRepositoryImpl) List(ctx context.Context) ([]category.Category, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, description, created_at, updated_at
		FROM expense_categories
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category
	for rows.Next() {
		var cat category.Category
		err := rows.Scan(
			&cat.ID,
			&cat.Name,
			&cat.Description,
			&cat.CreatedAt,
			&cat.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense category: %w", err)
		}
		categories = append(categories, cat)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return categories, nil
}

// Update implements category.CategoryRepository.
func (r *categoryRepositoryImpl) Update(ctx context.Context, req category.UpdateCategoryRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE expense_categories SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	if req.Name != nil {
		query += fmt.Sprintf(", name = $%d", argIdx)
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Description != nil {
		query += fmt.Sprintf(", description = $%d", argIdx)
		args = append(args, *req.Description)
		argIdx++
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, req.ID)

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return category.ErrCategoryNameExists
		}
		return fmt.Errorf("failed to update expense category: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}

// Delete implements category.CategoryRepository.
func (r *categoryRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM expense_categories WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return category.ErrCategoryInUse
		}
		return fmt.Errorf("failed to delete expense category: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	return nil
}
