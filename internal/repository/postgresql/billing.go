package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/constrack/backoffice-backend-go/internal/domain/billing"
	"github.com/constrack/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type billRepositoryImpl struct {
	db *database.DB
}

func NewBillRepository(db *database.DB) billing.BillRepository {
	return &billRepositoryImpl{db: db}
}

const billSelectColumns = `
	id, bill_number, client_name, client_email, client_phone, description,
	amount, tax_amount, total_amount, bill_date, due_date, status, paid_amount,
	created_by, created_at, updated_at
`

func scanBill(row pgx.Row) (billing.Bill, error) {
	var b billing.Bill
	err := row.Scan(
		&b.ID,
		&b.BillNumber,
		&b.ClientName,
		&b.ClientEmail,
		&b.ClientPhone,
		&b.Description,
		&b.Amount,
		&b.TaxAmount,
		&b.TotalAmount,
		&b.BillDate,
		&b.DueDate,
		&b.Status,
		&b.PaidAmount,
		&b.CreatedBy,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}

// Create implements billing.BillRepository.
func (r *billRepositoryImpl) Create(ctx context.Context, bill billing.Bill) (billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bills (id, bill_number, client_name, client_email, client_phone, description,
			amount, tax_amount, total_amount, bill_date, due_date, status, paid_amount,
			created_by, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		bill.BillNumber,
		bill.ClientName,
		bill.ClientEmail,
		bill.ClientPhone,
		bill.Description,
		bill.Amount,
		bill.TaxAmount,
		bill.TotalAmount,
		bill.BillDate,
		bill.DueDate,
		bill.Status,
		bill.PaidAmount,
		bill.CreatedBy,
	).Scan(&bill.ID, &bill.CreatedAt, &bill.UpdatedAt)

	if err != nil {
		return billing.Bill{}, fmt.Errorf("failed to create bill: %w", err)
	}

	return bill, nil
}

// GetByID implements billing.BillRepository.
func (r *billRepositoryImpl) GetByID(ctx context.Context, id string) (billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + billSelectColumns + `
		FROM bills
		WHERE id = $1
	`

	b, err := scanBill(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return billing.Bill{}, billing.ErrBillNotFound
		}
		return billing.Bill{}, fmt.Errorf("failed to get bill: %w", err)
	}

	return b, nil
}

// List implements billing.BillRepository.
func (r *billRepositoryImpl) List(ctx context.Context) ([]billing.Bill, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + billSelectColumns + `
		FROM bills
		ORDER BY bill_date DESC, bill_number DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer rows.Close()

	var bills []billing.Bill
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		bills = append(bills, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return bills, nil
}

// NextBillNumber implements billing.BillRepository.
func (r *billRepositoryImpl) NextBillNumber(ctx context.Context, year int) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) + 1
		FROM bills
		WHERE EXTRACT(YEAR FROM bill_date) = $1
	`

	var next int
	if err := q.QueryRow(ctx, query, year).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to get next bill number: %w", err)
	}

	return next, nil
}

// MarkPaid implements billing.BillRepository. Settles the bill in full:
// paid_amount becomes total_amount.
func (r *billRepositoryImpl) MarkPaid(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bills
		SET status = 'paid', paid_amount = total_amount, updated_at = NOW()
		WHERE id = $1 AND status = 'unpaid'
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to mark bill paid: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return billing.ErrBillNotFound
	}

	return nil
}

// Cancel implements billing.BillRepository.
func (r *billRepositoryImpl) Cancel(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bills
		SET status = 'cancelled', updated_at = NOW()
		WHERE id = $1 AND status = 'unpaid'
	`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to cancel bill: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return billing.ErrBillNotFound
	}

	return nil
}

type billMetadataRepositoryImpl struct {
	db *database.DB
}

func NewBillMetadataRepository(db *database.DB) billing.MetadataRepository {
	return &billMetadataRepositoryImpl{db: db}
}

// Put implements billing.MetadataRepository. Line items go into a JSONB
// column; the rest of the sidecar is flat.
func (r *billMetadataRepositoryImpl) Put(ctx context.Context, meta billing.Metadata) error {
	q := GetQuerier(ctx, r.db)

	items, err := json.Marshal(meta.LineItems)
	if err != nil {
		return fmt.Errorf("failed to encode line items: %w", err)
	}

	query := `
		INSERT INTO bill_metadata (bill_id, company_name, company_address, company_gstin,
			client_address, client_gstin, gst_enabled, gst_rate, cgst, sgst, line_items,
			bank_name, account_number, ifsc_code, upi_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (bill_id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			company_address = EXCLUDED.company_address,
			company_gstin = EXCLUDED.company_gstin,
			client_address = EXCLUDED.client_address,
			client_gstin = EXCLUDED.client_gstin,
			gst_enabled = EXCLUDED.gst_enabled,
			gst_rate = EXCLUDED.gst_rate,
			cgst = EXCLUDED.cgst,
			sgst = EXCLUDED.sgst,
			line_items = EXCLUDED.line_items,
			bank_name = EXCLUDED.bank_name,
			account_number = EXCLUDED.account_number,
			ifsc_code = EXCLUDED.ifsc_code,
			upi_id = EXCLUDED.upi_id
	`

	_, err = q.Exec(ctx, query,
		meta.BillID,
		meta.CompanyName,
		meta.CompanyAddress,
		meta.CompanyGSTIN,
		meta.ClientAddress,
		meta.ClientGSTIN,
		meta.GSTEnabled,
		meta.GSTRate,
		meta.CGST,
		meta.SGST,
		items,
		meta.BankName,
		meta.AccountNumber,
		meta.IFSCCode,
		meta.UPIID,
	)
	if err != nil {
		return fmt.Errorf("failed to put bill metadata: %w", err)
	}

	return nil
}

// GetByBillID implements billing.MetadataRepository.
func (r *billMetadataRepositoryImpl) GetByBillID(ctx context.Context, billID string) (billing.Metadata, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT bill_id, company_name, company_address, company_gstin, client_address,
			client_gstin, gst_enabled, gst_rate, cgst, sgst, line_items,
			bank_name, account_number, ifsc_code, upi_id
		FROM bill_metadata
		WHERE bill_id = $1
	`

	var meta billing.Metadata
	var items []byte
	err := q.QueryRow(ctx, query, billID).Scan(
		&meta.BillID,
		&meta.CompanyName,
		&meta.CompanyAddress,
		&meta.CompanyGSTIN,
		&meta.ClientAddress,
		&meta.ClientGSTIN,
		&meta.GSTEnabled,
		&meta.GSTRate,
		&meta.CGST,
		&meta.SGST,
		&items,
		&meta.BankName,
		&meta.AccountNumber,
		&meta.IFSCCode,
		&meta.UPIID,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return billing.Metadata{}, billing.ErrMetadataNotFound
		}
		return billing.Metadata{}, fmt.Errorf("failed to get bill metadata: %w", err)
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &meta.LineItems); err != nil {
			return billing.Metadata{}, fmt.Errorf("failed to decode line items: %w", err)
		}
	}

	return meta, nil
}
