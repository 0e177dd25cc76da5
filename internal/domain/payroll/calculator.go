package payroll

import (
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
)

// Breakdown carries every intermediate of a salary computation. The UI and
// the persisted payment both need the full picture, not just the net figure.
type Breakdown struct {
	WorkingDays decimal.Decimal
	PresentDays decimal.Decimal
	AbsentDays  decimal.Decimal
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal
	GrossSalary decimal.Decimal
	Deductions  decimal.Decimal
	NetSalary   decimal.Decimal
}

var half = decimal.NewFromFloat(0.5)

// ComputeSalary derives one employee's salary for a calendar month from the
// salary structure and the month's attendance statuses. Pure: no I/O, same
// inputs always yield the same breakdown.
//
// Working days are the month's calendar days, not adjusted for weekends.
// Present days count full presents plus half of half-days; leave and holiday
// statuses are unpaid. The gross is pro-rated by a per-day rate and absent
// days are deducted. Nothing is rounded here; callers round at display time.
func ComputeSalary(structure SalaryStructure, statuses []attendance.Status, month, year int) (Breakdown, error) {
	if month < 1 || month > 12 || year < 1 {
		return Breakdown{}, ErrInvalidPeriod
	}

	workingDays := decimal.NewFromInt(int64(daysInMonth(month, year)))
	if workingDays.IsZero() {
		return Breakdown{}, ErrInvalidPeriod
	}
	if len(statuses) > daysInMonth(month, year) {
		return Breakdown{}, ErrInvalidAttendance
	}

	presentDays := decimal.Zero
	for _, status := range statuses {
		switch status {
		case attendance.StatusPresent:
			presentDays = presentDays.Add(decimal.NewFromInt(1))
		case attendance.StatusHalfDay:
			presentDays = presentDays.Add(half)
		}
	}
	absentDays := workingDays.Sub(presentDays)

	allowances := structure.HRA.
		Add(structure.TransportAllowance).
		Add(structure.OtherAllowances)
	grossSalary := structure.BasicSalary.Add(allowances)

	perDayRate := grossSalary.Div(workingDays)
	deductions := perDayRate.Mul(absentDays)
	netSalary := grossSalary.Sub(deductions)

	return Breakdown{
		WorkingDays: workingDays,
		PresentDays: presentDays,
		AbsentDays:  absentDays,
		BasicSalary: structure.BasicSalary,
		Allowances:  allowances,
		GrossSalary: grossSalary,
		Deductions:  deductions,
		NetSalary:   netSalary,
	}, nil
}

func daysInMonth(month, year int) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
