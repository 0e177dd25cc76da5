package postgresql

import (
	"context"
	"testing"

	"github.com/constrack/backoffice-backend-go/internal/domain/billing"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextBillNumber_SequentialPerYear(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewBillRepository(db)

	mock.ExpectQuery("FROM bills").
		WithArgs(2025).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))

	next, err := repo.NextBillNumber(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, 42, next)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaid_SettlesUnpaidBill(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewBillRepository(db)

	mock.ExpectExec("UPDATE bills").
		WithArgs("bill-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.MarkPaid(context.Background(), "bill-1"))

	// Already-paid and cancelled bills are not matched by the update.
	mock.ExpectExec("UPDATE bills").
		WithArgs("bill-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.MarkPaid(context.Background(), "bill-1")
	assert.ErrorIs(t, err, billing.ErrBillNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetadataGetByBillID_DecodesLineItems(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewBillMetadataRepository(db)

	items := []byte(`[{"description":"Excavation work","amount":"500"},{"description":"Material supply","amount":"1500"}]`)

	rows := pgxmock.NewRows([]string{
		"bill_id", "company_name", "company_address", "company_gstin", "client_address",
		"client_gstin", "gst_enabled", "gst_rate", "cgst", "sgst", "line_items",
		"bank_name", "account_number", "ifsc_code", "upi_id",
	}).AddRow(
		"bill-1", "Shree Infra Projects", "Pune", "27AAPFU0939F1ZV", "",
		"", true, "18", "180", "180", items,
		"", "", "", "",
	)

	mock.ExpectQuery("FROM bill_metadata").
		WithArgs("bill-1").
		WillReturnRows(rows)

	meta, err := repo.GetByBillID(context.Background(), "bill-1")
	require.NoError(t, err)

	require.Len(t, meta.LineItems, 2)
	assert.Equal(t, "Excavation work", meta.LineItems[0].Description)
	assert.True(t, meta.LineItems[1].Amount.Equal(decimal.NewFromInt(1500)))
	assert.True(t, meta.GSTEnabled)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMetadataGetByBillID_Missing(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewBillMetadataRepository(db)

	mock.ExpectQuery("FROM bill_metadata").
		WithArgs("bill-x").
		WillReturnRows(pgxmock.NewRows([]string{"bill_id"}))

	_, err := repo.GetByBillID(context.Background(), "bill-x")
	assert.ErrorIs(t, err, billing.ErrMetadataNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
