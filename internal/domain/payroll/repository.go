package payroll

import (
	"context"
	"time"
)

type PayrollRepository interface {
	// Salary structures
	CreateStructure(ctx context.Context, s SalaryStructure) (SalaryStructure, error)
	GetStructuresByEmployee(ctx context.Context, employeeID string) ([]SalaryStructure, error)
	// GetStructureForPeriod picks the structure with the latest effective_from
	// on or before periodStart. ErrMissingSalaryStructure when none qualifies.
	GetStructureForPeriod(ctx context.Context, employeeID string, periodStart time.Time) (SalaryStructure, error)
	DeleteStructure(ctx context.Context, id string) error

	// Salary payments
	CreatePayment(ctx context.Context, p SalaryPayment) (SalaryPayment, error)
	GetPaymentByID(ctx context.Context, id string) (SalaryPayment, error)
	ListPayments(ctx context.Context, month, year int) ([]SalaryPayment, error)
	MarkPaymentPaid(ctx context.Context, id string, paidOn time.Time) error
}
