package payroll

import (
	"testing"

	"github.com/constrack/backoffice-backend-go/internal/domain/attendance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func structureFor(basic, hra, transport, other int64) SalaryStructure {
	return SalaryStructure{
		BasicSalary:        decimal.NewFromInt(basic),
		HRA:                decimal.NewFromInt(hra),
		TransportAllowance: decimal.NewFromInt(transport),
		OtherAllowances:    decimal.NewFromInt(other),
	}
}

func repeatStatus(status attendance.Status, n int) []attendance.Status {
	statuses := make([]attendance.Status, n)
	for i := range statuses {
		statuses[i] = status
	}
	return statuses
}

func TestComputeSalary_TwoAbsentDays(t *testing.T) {
	// 30-day month, 28 present, 2 days with no record (implicitly absent).
	structure := structureFor(20000, 2000, 1000, 500)
	statuses := repeatStatus(attendance.StatusPresent, 28)

	b, err := ComputeSalary(structure, statuses, 6, 2025)
	require.NoError(t, err)

	assert.Equal(t, "30", b.WorkingDays.String())
	assert.Equal(t, "28", b.PresentDays.String())
	assert.Equal(t, "2", b.AbsentDays.String())
	assert.Equal(t, "23500", b.GrossSalary.String())
	assert.Equal(t, "1566.67", b.Deductions.StringFixed(2))
	assert.Equal(t, "21933.33", b.NetSalary.StringFixed(2))
}

func TestComputeSalary_FullAttendanceNoDeduction(t *testing.T) {
	structure := structureFor(20000, 2000, 1000, 500)
	statuses := repeatStatus(attendance.StatusPresent, 30)

	b, err := ComputeSalary(structure, statuses, 6, 2025)
	require.NoError(t, err)

	assert.True(t, b.Deductions.IsZero(), "no absences should mean no deduction")
	assert.True(t, b.NetSalary.Equal(b.GrossSalary))
}

func TestComputeSalary_DeductionsPlusNetEqualsGross(t *testing.T) {
	structure := structureFor(31337, 1250, 900, 75)
	statuses := append(repeatStatus(attendance.StatusPresent, 17), repeatStatus(attendance.StatusHalfDay, 5)...)

	b, err := ComputeSalary(structure, statuses, 2, 2025)
	require.NoError(t, err)

	// Exact identity, no rounding before display.
	assert.True(t, b.Deductions.Add(b.NetSalary).Equal(b.GrossSalary))
}

func TestComputeSalary_HalfDaysCountAsHalf(t *testing.T) {
	structure := structureFor(10000, 0, 0, 0)
	statuses := append(repeatStatus(attendance.StatusPresent, 10), repeatStatus(attendance.StatusHalfDay, 4)...)

	b, err := ComputeSalary(structure, statuses, 4, 2025)
	require.NoError(t, err)

	assert.Equal(t, "12", b.PresentDays.String())
	assert.Equal(t, "18", b.AbsentDays.String())
}

func TestComputeSalary_LeaveAndHolidayAreUnpaid(t *testing.T) {
	structure := structureFor(10000, 0, 0, 0)
	statuses := []attendance.Status{
		attendance.StatusPresent,
		attendance.StatusLeave,
		attendance.StatusHoliday,
		attendance.StatusAbsent,
	}

	b, err := ComputeSalary(structure, statuses, 4, 2025)
	require.NoError(t, err)

	assert.Equal(t, "1", b.PresentDays.String())
	assert.Equal(t, "29", b.AbsentDays.String())
}

func TestComputeSalary_FebruaryLeapYear(t *testing.T) {
	structure := structureFor(29000, 0, 0, 0)

	b, err := ComputeSalary(structure, repeatStatus(attendance.StatusPresent, 29), 2, 2024)
	require.NoError(t, err)

	assert.Equal(t, "29", b.WorkingDays.String())
	assert.True(t, b.NetSalary.Equal(b.GrossSalary))
}

func TestComputeSalary_InvalidPeriod(t *testing.T) {
	structure := structureFor(10000, 0, 0, 0)

	_, err := ComputeSalary(structure, nil, 0, 2025)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = ComputeSalary(structure, nil, 13, 2025)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestComputeSalary_AttendanceExceedsMonth(t *testing.T) {
	structure := structureFor(10000, 0, 0, 0)
	statuses := repeatStatus(attendance.StatusPresent, 31)

	_, err := ComputeSalary(structure, statuses, 4, 2025)
	assert.ErrorIs(t, err, ErrInvalidAttendance)
}

func TestComputeSalary_Idempotent(t *testing.T) {
	structure := structureFor(20000, 2000, 1000, 500)
	statuses := append(repeatStatus(attendance.StatusPresent, 20), repeatStatus(attendance.StatusHalfDay, 3)...)

	first, err := ComputeSalary(structure, statuses, 9, 2025)
	require.NoError(t, err)
	second, err := ComputeSalary(structure, statuses, 9, 2025)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
