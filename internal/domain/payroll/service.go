package payroll

import "context"

type PayrollService interface {
	// Structures
	CreateStructure(ctx context.Context, req UpsertStructureRequest) (StructureResponse, error)
	GetEmployeeStructures(ctx context.Context, employeeID string) ([]StructureResponse, error)
	DeleteStructure(ctx context.Context, id string) error

	// Computation and payments
	ComputeSalary(ctx context.Context, req ComputeSalaryRequest) (BreakdownResponse, error)
	SavePayment(ctx context.Context, req SavePaymentRequest) (PaymentResponse, error)
	ListPayments(ctx context.Context, month, year int) ([]PaymentResponse, error)
	MarkPaid(ctx context.Context, id string) (PaymentResponse, error)
	// RenderPayslip returns a printable PDF for a saved payment.
	RenderPayslip(ctx context.Context, id string) ([]byte, error)
}
