package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/payroll"
	"github.com/constrack/backoffice-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// CreateStructure implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateStructure(ctx context.Context, s payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_structures (id, employee_id, basic_salary, hra, transport_allowance,
			other_allowances, effective_from, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.EmployeeID,
		s.BasicSalary,
		s.HRA,
		s.TransportAllowance,
		s.OtherAllowances,
		s.EffectiveFrom,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return payroll.SalaryStructure{}, fmt.Errorf("failed to create salary structure: %w", err)
	}

	return s, nil
}

// GetStructuresByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetStructuresByEmployee(ctx context.Context, employeeID string) ([]payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, basic_salary, hra, transport_allowance, other_allowances,
			effective_from, created_at, updated_at
		FROM salary_structures
		WHERE employee_id = $1
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary structures: %w", err)
	}
	defer rows.Close()

	var structures []payroll.SalaryStructure
	for rows.Next() {
		var s payroll.SalaryStructure
		err := rows.Scan(
			&s.ID,
			&s.EmployeeID,
			&s.BasicSalary,
			&s.HRA,
			&s.TransportAllowance,
			&s.OtherAllowances,
			&s.EffectiveFrom,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary structure: %w", err)
		}
		structures = append(structures, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return structures, nil
}

// GetStructureForPeriod implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetStructureForPeriod(ctx context.Context, employeeID string, periodStart time.Time) (payroll.SalaryStructure, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, basic_salary, hra, transport_allowance, other_allowances,
			effective_from, created_at, updated_at
		FROM salary_structures
		WHERE employee_id = $1 AND effective_from <= $2
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var s payroll.SalaryStructure
	err := q.QueryRow(ctx, query, employeeID, periodStart).Scan(
		&s.ID,
		&s.EmployeeID,
		&s.BasicSalary,
		&s.HRA,
		&s.TransportAllowance,
		&s.OtherAllowances,
		&s.EffectiveFrom,
		&s.CreatedAt,
		&s.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryStructure{}, payroll.ErrMissingSalaryStructure
		}
		return payroll.SalaryStructure{}, fmt.Errorf("failed to get salary structure for period: %w", err)
	}

	return s, nil
}

// DeleteStructure implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteStructure(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM salary_structures WHERE id = $1`

	commandTag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete salary structure: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payroll.ErrStructureNotFound
	}

	return nil
}

const paymentSelectColumns = `
	p.id, p.employee_id, p.month, p.year, p.basic_salary, p.allowances, p.gross_salary,
	p.deductions, p.net_salary, p.working_days, p.present_days, p.absent_days,
	p.status, p.paid_on, p.created_by, p.created_at, p.updated_at,
	e.full_name, e.employee_code
`

func scanPayment(row pgx.Row) (payroll.SalaryPayment, error) {
	var p payroll.SalaryPayment
	err := row.Scan(
		&p.ID,
		&p.EmployeeID,
		&p.Month,
		&p.Year,
		&p.BasicSalary,
		&p.Allowances,
		&p.GrossSalary,
		&p.Deductions,
		&p.NetSalary,
		&p.WorkingDays,
		&p.PresentDays,
		&p.AbsentDays,
		&p.Status,
		&p.PaidOn,
		&p.CreatedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.EmployeeName,
		&p.EmployeeCode,
	)
	return p, err
}

// CreatePayment implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreatePayment(ctx context.Context, p payroll.SalaryPayment) (payroll.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_payments (id, employee_id, month, year, basic_salary, allowances,
			gross_salary, deductions, net_salary, working_days, present_days, absent_days,
			status, created_by, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID,
		p.Month,
		p.Year,
		p.BasicSalary,
		p.Allowances,
		p.GrossSalary,
		p.Deductions,
		p.NetSalary,
		p.WorkingDays,
		p.PresentDays,
		p.AbsentDays,
		p.Status,
		p.CreatedBy,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return payroll.SalaryPayment{}, payroll.ErrPaymentAlreadyExists
		}
		return payroll.SalaryPayment{}, fmt.Errorf("failed to create salary payment: %w", err)
	}

	return p, nil
}

// GetPaymentByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPaymentByID(ctx context.Context, id string) (payroll.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentSelectColumns + `
		FROM salary_payments p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.id = $1
	`

	p, err := scanPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryPayment{}, payroll.ErrPaymentNotFound
		}
		return payroll.SalaryPayment{}, fmt.Errorf("failed to get salary payment: %w", err)
	}

	return p, nil
}

// ListPayments implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListPayments(ctx context.Context, month, year int) ([]payroll.SalaryPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + paymentSelectColumns + `
		FROM salary_payments p
		JOIN employees e ON e.id = p.employee_id
		WHERE p.month = $1 AND p.year = $2
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary payments: %w", err)
	}
	defer rows.Close()

	var payments []payroll.SalaryPayment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan salary payment: %w", err)
		}
		payments = append(payments, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return payments, nil
}

// MarkPaymentPaid implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) MarkPaymentPaid(ctx context.Context, id string, paidOn time.Time) error {
	q := GetQuerier(ctx, r.db)

	// Only a pending payment can transition to paid.
	query := `
		UPDATE salary_payments
		SET status = 'paid', paid_on = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'pending'
	`

	commandTag, err := q.Exec(ctx, query, paidOn, id)
	if err != nil {
		return fmt.Errorf("failed to mark salary payment paid: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return payroll.ErrPaymentAlreadyPaid
	}

	return nil
}
