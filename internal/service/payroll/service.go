package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/attendance"
	"github.com/constrack/backoffice-backend-go/internal/domain/employee"
	"github.com/constrack/backoffice-backend-go/internal/domain/payroll"
	"github.com/constrack/backoffice-backend-go/internal/pkg/jwt"
	"github.com/constrack/backoffice-backend-go/internal/pkg/pdf"
)

type PayrollServiceImpl struct {
	payrollRepo    payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:    payrollRepo,
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func toStructureResponse(s payroll.SalaryStructure) payroll.StructureResponse {
	return payroll.StructureResponse{
		ID:                 s.ID,
		EmployeeID:         s.EmployeeID,
		BasicSalary:        s.BasicSalary,
		HRA:                s.HRA,
		TransportAllowance: s.TransportAllowance,
		OtherAllowances:    s.OtherAllowances,
		EffectiveFrom:      s.EffectiveFrom.Format("2006-01-02"),
	}
}

func toPaymentResponse(p payroll.SalaryPayment) payroll.PaymentResponse {
	resp := payroll.PaymentResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		Month:       p.Month,
		Year:        p.Year,
		BasicSalary: p.BasicSalary,
		Allowances:  p.Allowances,
		GrossSalary: p.GrossSalary,
		Deductions:  p.Deductions,
		NetSalary:   p.NetSalary,
		WorkingDays: p.WorkingDays,
		PresentDays: p.PresentDays,
		AbsentDays:  p.AbsentDays,
		Status:      string(p.Status),
	}
	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.EmployeeCode != nil {
		resp.EmployeeCode = *p.EmployeeCode
	}
	if p.PaidOn != nil {
		paidOn := p.PaidOn.Format("2006-01-02")
		resp.PaidOn = &paidOn
	}
	return resp
}

// CreateStructure implements payroll.PayrollService.
func (s *PayrollServiceImpl) CreateStructure(ctx context.Context, req payroll.UpsertStructureRequest) (payroll.StructureResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.StructureResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.StructureResponse{}, err
	}

	effectiveFrom, _ := time.Parse("2006-01-02", req.EffectiveFrom)

	created, err := s.payrollRepo.CreateStructure(ctx, payroll.SalaryStructure{
		EmployeeID:         req.EmployeeID,
		BasicSalary:        req.BasicSalary,
		HRA:                req.HRA,
		TransportAllowance: req.TransportAllowance,
		OtherAllowances:    req.OtherAllowances,
		EffectiveFrom:      effectiveFrom,
	})
	if err != nil {
		return payroll.StructureResponse{}, fmt.Errorf("failed to create salary structure: %w", err)
	}

	return toStructureResponse(created), nil
}

// GetEmployeeStructures implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetEmployeeStructures(ctx context.Context, employeeID string) ([]payroll.StructureResponse, error) {
	structures, err := s.payrollRepo.GetStructuresByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary structures: %w", err)
	}

	responses := make([]payroll.StructureResponse, 0, len(structures))
	for _, st := range structures {
		responses = append(responses, toStructureResponse(st))
	}
	return responses, nil
}

// DeleteStructure implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeleteStructure(ctx context.Context, id string) error {
	return s.payrollRepo.DeleteStructure(ctx, id)
}

// computeForPeriod resolves the effective structure and the month's attendance
// and runs the calculator.
func (s *PayrollServiceImpl) computeForPeriod(ctx context.Context, employeeID string, month, year int) (payroll.Breakdown, error) {
	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)

	structure, err := s.payrollRepo.GetStructureForPeriod(ctx, employeeID, periodStart)
	if err != nil {
		return payroll.Breakdown{}, err
	}

	statuses, err := s.attendanceRepo.StatusesForMonth(ctx, employeeID, month, year)
	if err != nil {
		return payroll.Breakdown{}, fmt.Errorf("failed to load attendance: %w", err)
	}

	return payroll.ComputeSalary(structure, statuses, month, year)
}

// ComputeSalary implements payroll.PayrollService. Preview only; persists
// nothing.
func (s *PayrollServiceImpl) ComputeSalary(ctx context.Context, req payroll.ComputeSalaryRequest) (payroll.BreakdownResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.BreakdownResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return payroll.BreakdownResponse{}, err
	}

	breakdown, err := s.computeForPeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return payroll.BreakdownResponse{}, err
	}

	return payroll.BreakdownResponse{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		WorkingDays: breakdown.WorkingDays.StringFixed(1),
		PresentDays: breakdown.PresentDays.StringFixed(1),
		AbsentDays:  breakdown.AbsentDays.StringFixed(1),
		BasicSalary: breakdown.BasicSalary.StringFixed(2),
		Allowances:  breakdown.Allowances.StringFixed(2),
		GrossSalary: breakdown.GrossSalary.StringFixed(2),
		Deductions:  breakdown.Deductions.StringFixed(2),
		NetSalary:   breakdown.NetSalary.StringFixed(2),
	}, nil
}

// SavePayment implements payroll.PayrollService. Computes the salary for the
// period and persists it as a pending payment, one per employee and month.
func (s *PayrollServiceImpl) SavePayment(ctx context.Context, req payroll.SavePaymentRequest) (payroll.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PaymentResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	breakdown, err := s.computeForPeriod(ctx, req.EmployeeID, req.Month, req.Year)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	payment := payroll.SalaryPayment{
		EmployeeID:  req.EmployeeID,
		Month:       req.Month,
		Year:        req.Year,
		BasicSalary: breakdown.BasicSalary,
		Allowances:  breakdown.Allowances,
		GrossSalary: breakdown.GrossSalary,
		Deductions:  breakdown.Deductions,
		NetSalary:   breakdown.NetSalary,
		WorkingDays: breakdown.WorkingDays,
		PresentDays: breakdown.PresentDays,
		AbsentDays:  breakdown.AbsentDays,
		Status:      payroll.PaymentStatusPending,
	}
	if userID, ok := jwt.UserIDFromContext(ctx); ok {
		payment.CreatedBy = &userID
	}

	created, err := s.payrollRepo.CreatePayment(ctx, payment)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}

	created.EmployeeName = &emp.FullName
	created.EmployeeCode = &emp.EmployeeCode
	return toPaymentResponse(created), nil
}

// ListPayments implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayments(ctx context.Context, month, year int) ([]payroll.PaymentResponse, error) {
	if month < 1 || month > 12 {
		return nil, payroll.ErrInvalidPeriod
	}

	payments, err := s.payrollRepo.ListPayments(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary payments: %w", err)
	}

	responses := make([]payroll.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, toPaymentResponse(p))
	}
	return responses, nil
}

// MarkPaid implements payroll.PayrollService.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PaymentResponse, error) {
	payment, err := s.payrollRepo.GetPaymentByID(ctx, id)
	if err != nil {
		return payroll.PaymentResponse{}, err
	}
	if payment.Status == payroll.PaymentStatusPaid {
		return payroll.PaymentResponse{}, payroll.ErrPaymentAlreadyPaid
	}

	paidOn := time.Now().UTC()
	if err := s.payrollRepo.MarkPaymentPaid(ctx, id, paidOn); err != nil {
		return payroll.PaymentResponse{}, err
	}

	payment.Status = payroll.PaymentStatusPaid
	payment.PaidOn = &paidOn
	return toPaymentResponse(payment), nil
}

// RenderPayslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) RenderPayslip(ctx context.Context, id string) ([]byte, error) {
	payment, err := s.payrollRepo.GetPaymentByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return pdf.RenderPayslip(payment)
}
