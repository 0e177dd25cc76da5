package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryStructure is an employee's pay composition. An employee may carry
// several structures over time; the one effective for a period is the latest
// with EffectiveFrom on or before the period start.
type SalaryStructure struct {
	ID                 string
	EmployeeID         string
	BasicSalary        decimal.Decimal
	HRA                decimal.Decimal
	TransportAllowance decimal.Decimal
	OtherAllowances    decimal.Decimal
	EffectiveFrom      time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// PaymentStatus enum
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
)

// SalaryPayment - computed salary for one employee and one month, persisted
// with all intermediates so the record stands on its own for audit.
type SalaryPayment struct {
	ID          string
	EmployeeID  string
	Month       int
	Year        int
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	GrossSalary decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
	WorkingDays decimal.Decimal
	PresentDays decimal.Decimal
	AbsentDays  decimal.Decimal
	Status      PaymentStatus
	PaidOn      *time.Time
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
