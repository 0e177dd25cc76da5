package payroll

import (
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== SALARY STRUCTURE DTOs ==========

type UpsertStructureRequest struct {
	EmployeeID         string          `json:"-"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HRA                decimal.Decimal `json:"hra"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
	EffectiveFrom      string          `json:"effective_from"`
}

func (r *UpsertStructureRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}
	if r.HRA.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hra", Message: "must be non-negative"})
	}
	if r.TransportAllowance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "transport_allowance", Message: "must be non-negative"})
	}
	if r.OtherAllowances.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "other_allowances", Message: "must be non-negative"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StructureResponse struct {
	ID                 string          `json:"id"`
	EmployeeID         string          `json:"employee_id"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HRA                decimal.Decimal `json:"hra"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
	EffectiveFrom      string          `json:"effective_from"`
}

// ========== SALARY COMPUTATION DTOs ==========

type ComputeSalaryRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *ComputeSalaryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if r.Year < 2000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a four-digit year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// BreakdownResponse mirrors Breakdown with display rounding applied.
type BreakdownResponse struct {
	EmployeeID  string `json:"employee_id"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	WorkingDays string `json:"working_days"`
	PresentDays string `json:"present_days"`
	AbsentDays  string `json:"absent_days"`
	BasicSalary string `json:"basic_salary"`
	Allowances  string `json:"allowances"`
	GrossSalary string `json:"gross_salary"`
	Deductions  string `json:"deductions"`
	NetSalary   string `json:"net_salary"`
}

// ========== SALARY PAYMENT DTOs ==========

type SavePaymentRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *SavePaymentRequest) Validate() error {
	req := ComputeSalaryRequest{EmployeeID: r.EmployeeID, Month: r.Month, Year: r.Year}
	return req.Validate()
}

type PaymentResponse struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	EmployeeName string          `json:"employee_name,omitempty"`
	EmployeeCode string          `json:"employee_code,omitempty"`
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	BasicSalary  decimal.Decimal `json:"basic_salary"`
	Allowances   decimal.Decimal `json:"allowances"`
	GrossSalary  decimal.Decimal `json:"gross_salary"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	WorkingDays  decimal.Decimal `json:"working_days"`
	PresentDays  decimal.Decimal `json:"present_days"`
	AbsentDays   decimal.Decimal `json:"absent_days"`
	Status       string          `json:"status"`
	PaidOn       *string         `json:"paid_on,omitempty"`
}
