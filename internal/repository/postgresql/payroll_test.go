package postgresql

import (
	"context"
	"testing"
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/payroll"
	"github.com/constrack/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (pgxmock.PgxPoolIface, *database.DB) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, &database.DB{Pool: mock}
}

func TestGetStructureForPeriod_PicksLatestEffective(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	periodStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	effective := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Now()

	rows := pgxmock.NewRows([]string{
		"id", "employee_id", "basic_salary", "hra", "transport_allowance",
		"other_allowances", "effective_from", "created_at", "updated_at",
	}).AddRow(
		"st-2", "emp-1", "20000", "2000", "1000", "500", effective, now, now,
	)

	mock.ExpectQuery("FROM salary_structures").
		WithArgs("emp-1", periodStart).
		WillReturnRows(rows)

	s, err := repo.GetStructureForPeriod(context.Background(), "emp-1", periodStart)
	require.NoError(t, err)

	assert.Equal(t, "st-2", s.ID)
	assert.True(t, s.BasicSalary.Equal(decimal.NewFromInt(20000)))
	assert.True(t, s.EffectiveFrom.Equal(effective))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStructureForPeriod_NoneQualifies(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	periodStart := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM salary_structures").
		WithArgs("emp-1", periodStart).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetStructureForPeriod(context.Background(), "emp-1", periodStart)
	assert.ErrorIs(t, err, payroll.ErrMissingSalaryStructure)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePayment_DuplicatePeriod(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	mock.ExpectQuery("INSERT INTO salary_payments").
		WithArgs(
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.CreatePayment(context.Background(), payroll.SalaryPayment{
		EmployeeID: "emp-1",
		Month:      6,
		Year:       2025,
		Status:     payroll.PaymentStatusPending,
	})
	assert.ErrorIs(t, err, payroll.ErrPaymentAlreadyExists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkPaymentPaid_OnlyPendingTransitions(t *testing.T) {
	mock, db := newMockDB(t)
	repo := NewPayrollRepository(db)

	paidOn := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE salary_payments").
		WithArgs(paidOn, "pay-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.MarkPaymentPaid(context.Background(), "pay-1", paidOn))

	// Re-marking the same payment touches zero rows.
	mock.ExpectExec("UPDATE salary_payments").
		WithArgs(paidOn, "pay-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.MarkPaymentPaid(context.Background(), "pay-1", paidOn)
	assert.ErrorIs(t, err, payroll.ErrPaymentAlreadyPaid)

	assert.NoError(t, mock.ExpectationsWereMet())
}
