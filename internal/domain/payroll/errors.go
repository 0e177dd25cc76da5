package payroll

import "errors"

var (
	ErrMissingSalaryStructure = errors.New("no salary structure found for employee")
	ErrStructureNotFound      = errors.New("salary structure not found")
	ErrInvalidPeriod          = errors.New("invalid salary period")
	ErrInvalidAttendance      = errors.New("attendance records exceed days in month")
	ErrPaymentNotFound        = errors.New("salary payment not found")
	ErrPaymentAlreadyExists   = errors.New("salary payment already exists for this period")
	ErrPaymentAlreadyPaid     = errors.New("salary payment already marked as paid")
)
