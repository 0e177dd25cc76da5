package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/constrack/backoffice-backend-go/internal/domain/company"
	"github.com/constrack/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type companySettingsRepositoryImpl struct {
	db *database.DB
}

func NewCompanySettingsRepository(db *database.DB) company.SettingsRepository {
	return &companySettingsRepositoryImpl{db: db}
}

// Get implements company.SettingsRepository. The table holds a single row,
// seeded by migration.
func (r *companySettingsRepositoryImpl) Get(ctx context.Context) (company.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, address, phone, email, gstin, bank_name, account_number,
			ifsc_code, upi_id, updated_at
		FROM company_settings
		LIMIT 1
	`

	var s company.Settings
	err := q.QueryRow(ctx, query).Scan(
		&s.ID,
		&s.Name,
		&s.Address,
		&s.Phone,
		&s.Email,
		&s.GSTIN,
		&s.BankName,
		&s.AccountNumber,
		&s.IFSCCode,
		&s.UPIID,
		&s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Settings{}, company.ErrSettingsNotFound
		}
		return company.Settings{}, fmt.Errorf("failed to get company settings: %w", err)
	}

	return s, nil
}

// Update implements company.SettingsRepository.
func (r *companySettingsRepositoryImpl) Update(ctx context.Context, req company.UpdateSettingsRequest) error {
	q := GetQuerier(ctx, r.db)

	// Build dynamic update query
	query := `UPDATE company_settings SET updated_at = NOW()`
	args := []interface{}{}
	argIdx := 1

	set := func(column string, value interface{}) {
		query += fmt.Sprintf(", %s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if req.Name != nil {
		set("name", *req.Name)
	}
	if req.Address != nil {
		set("address", *req.Address)
	}
	if req.Phone != nil {
		set("phone", *req.Phone)
	}
	if req.Email != nil {
		set("email", *req.Email)
	}
	if req.GSTIN != nil {
		set("gstin", *req.GSTIN)
	}
	if req.BankName != nil {
		set("bank_name", *req.BankName)
	}
	if req.AccountNumber != nil {
		set("account_number", *req.AccountNumber)
	}
	if req.IFSCCode != nil {
		set("ifsc_code", *req.IFSCCode)
	}
	if req.UPIID != nil {
		set("upi_id", *req.UPIID)
	}

	query += ` WHERE id = (SELECT id FROM company_settings LIMIT 1)`

	commandTag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update company settings: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return company.ErrSettingsNotFound
	}

	return nil
}
