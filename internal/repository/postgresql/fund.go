package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/constrack/backoffice-backend-go/internal/domain/fund"
	"github.com/constrack/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type fundRepositoryImpl struct {
	db *database.DB
}

func NewFundRepository(db *database.DB) fund.FundRepository {
	return &fundRepositoryImpl{db: db}
}

// Create implements fund.FundRepository.
func (r *fundRepositoryImpl) Create(ctx context.Context, txn fund.Transaction) (fund.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO fund_transactions (id, type, amount, description, site_id, transaction_date, created_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		txn.Type,
		txn.Amount,
		txn.Description,
		txn.SiteID,
		txn.TransactionDate,
	).Scan(&txn.ID, &txn.CreatedAt)

	if err != nil {
		return fund.Transaction{}, fmt.Errorf("failed to create fund transaction: %w", err)
	}

	return txn, nil
}

// GetByID implements fund.FundRepository.
func (r *fundRepositoryImpl) GetByID(ctx context.Context, id string) (fund.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT f.id, f.type, f.amount, f.description, f.site_id, f.transaction_date, f.created_at,
			s.name AS site_name
		FROM fund_transactions f
		LEFT JOIN sites s ON s.id = f.site_id
		WHERE f.id = $1
	`

	var txn fund.Transaction
	err := q.QueryRow(ctx, query, id).Scan(
		&txn.ID,
		&txn.Type,
		&txn.Amount,
		&txn.Description,
		&txn.SiteID,
		&txn.TransactionDate,
		&txn.CreatedAt,
		&txn.SiteName,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fund.Transaction{}, fund.ErrTransactionNotFound
		}
		return fund.Transaction{}, fmt.Errorf("failed to get fund transaction: %w", err)
	}

	return txn, nil
}

// List implements fund.FundRepository.
func (r *fundRepositoryImpl) List(ctx context.Context) ([]fund.Transaction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT f.id, f.type, f.amount, f.description, f.site_id, f.transaction_date, f.created_at,
			s.name AS site_name
		FROM fund_transactions f
		LEFT JOIN sites s ON s.id = f.site_id
		ORDER BY f.transaction_date DESC, f.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list fund transactions: %w", err)
	}
	defer rows.Close()

	var txns []fund.Transaction
	for rows.Next() {
		var txn fund.Transaction
		err := rows.Scan(
			&txn.ID,
			&txn.Type,
			&txn.Amount,
			&txn.Description,
			&txn.SiteID,
			&txn.TransactionDate,
			&txn.CreatedAt,
			&txn.SiteName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fund transaction: %w", err)
		}
		txns = append(txns, txn)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return txns, nil
}

// Delete implements fund.FundRepository.
func (r *fundRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM fund_transactions WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete fund transaction: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return fund.ErrTransactionNotFound
	}

	return nil
}

// Summarize implements fund.FundRepository.
func (r *fundRepositoryImpl) Summarize(ctx context.Context) (fund.Summary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'credit'), 0) AS total_credit,
			COALESCE(SUM(amount) FILTER (WHERE type = 'debit'), 0) AS total_debit
		FROM fund_transactions
	`

	var summary fund.Summary
	if err := q.QueryRow(ctx, query).Scan(&summary.TotalCredit, &summary.TotalDebit); err != nil {
		return fund.Summary{}, fmt.Errorf("failed to summarize funds: %w", err)
	}

	summary.Balance = summary.TotalCredit.Sub(summary.TotalDebit)
	return summary, nil
}
