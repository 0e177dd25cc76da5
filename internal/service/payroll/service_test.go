package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/attendance"
	"github.com/constrack/backoffice-backend-go/internal/domain/employee"
	"github.com/constrack/backoffice-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollRepo struct {
	structures []payroll.SalaryStructure
	payments   map[string]payroll.SalaryPayment
	nextID     int
}

func newFakePayrollRepo() *fakePayrollRepo {
	return &fakePayrollRepo{payments: map[string]payroll.SalaryPayment{}}
}

func (f *fakePayrollRepo) CreateStructure(_ context.Context, s payroll.SalaryStructure) (payroll.SalaryStructure, error) {
	s.ID = "st-1"
	f.structures = append(f.structures, s)
	return s, nil
}

func (f *fakePayrollRepo) GetStructuresByEmployee(_ context.Context, employeeID string) ([]payroll.SalaryStructure, error) {
	var out []payroll.SalaryStructure
	for _, s := range f.structures {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) GetStructureForPeriod(_ context.Context, employeeID string, periodStart time.Time) (payroll.SalaryStructure, error) {
	var best *payroll.SalaryStructure
	for i, s := range f.structures {
		if s.EmployeeID != employeeID || s.EffectiveFrom.After(periodStart) {
			continue
		}
		if best == nil || s.EffectiveFrom.After(best.EffectiveFrom) {
			best = &f.structures[i]
		}
	}
	if best == nil {
		return payroll.SalaryStructure{}, payroll.ErrMissingSalaryStructure
	}
	return *best, nil
}

func (f *fakePayrollRepo) DeleteStructure(_ context.Context, id string) error {
	for i, s := range f.structures {
		if s.ID == id {
			f.structures = append(f.structures[:i], f.structures[i+1:]...)
			return nil
		}
	}
	return payroll.ErrStructureNotFound
}

func (f *fakePayrollRepo) CreatePayment(_ context.Context, p payroll.SalaryPayment) (payroll.SalaryPayment, error) {
	for _, existing := range f.payments {
		if existing.EmployeeID == p.EmployeeID && existing.Month == p.Month && existing.Year == p.Year {
			return payroll.SalaryPayment{}, payroll.ErrPaymentAlreadyExists
		}
	}
	f.nextID++
	p.ID = "pay-" + string(rune('0'+f.nextID))
	f.payments[p.ID] = p
	return p, nil
}

func (f *fakePayrollRepo) GetPaymentByID(_ context.Context, id string) (payroll.SalaryPayment, error) {
	p, ok := f.payments[id]
	if !ok {
		return payroll.SalaryPayment{}, payroll.ErrPaymentNotFound
	}
	return p, nil
}

func (f *fakePayrollRepo) ListPayments(_ context.Context, month, year int) ([]payroll.SalaryPayment, error) {
	var out []payroll.SalaryPayment
	for _, p := range f.payments {
		if p.Month == month && p.Year == year {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) MarkPaymentPaid(_ context.Context, id string, paidOn time.Time) error {
	p, ok := f.payments[id]
	if !ok || p.Status != payroll.PaymentStatusPending {
		return payroll.ErrPaymentAlreadyPaid
	}
	p.Status = payroll.PaymentStatusPaid
	p.PaidOn = &paidOn
	f.payments[id] = p
	return nil
}

type fakeAttendanceRepo struct {
	statuses []attendance.Status
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	return a, nil
}

func (f *fakeAttendanceRepo) ListByDate(_ context.Context, _ time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) ListByEmployeeMonth(_ context.Context, _ string, _, _ int) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) StatusesForMonth(_ context.Context, _ string, _, _ int) ([]attendance.Status, error) {
	return f.statuses, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, e employee.Employee) (employee.Employee, error) {
	return e, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ *employee.Status) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func repeatStatuses(s attendance.Status, n int) []attendance.Status {
	out := make([]attendance.Status, n)
	for i := range out {
		out[i] = s
	}
	return out
}

func newTestService(statuses []attendance.Status) (payroll.PayrollService, *fakePayrollRepo) {
	payrollRepo := newFakePayrollRepo()
	payrollRepo.structures = append(payrollRepo.structures, payroll.SalaryStructure{
		ID:                 "st-1",
		EmployeeID:         "emp-1",
		BasicSalary:        decimal.NewFromInt(20000),
		HRA:                decimal.NewFromInt(2000),
		TransportAllowance: decimal.NewFromInt(1000),
		OtherAllowances:    decimal.NewFromInt(500),
		EffectiveFrom:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})

	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", EmployeeCode: "EMP001", FullName: "Ravi Kumar", Status: employee.StatusActive},
	}}

	svc := NewPayrollService(payrollRepo, &fakeAttendanceRepo{statuses: statuses}, employeeRepo)
	return svc, payrollRepo
}

func TestComputeSalary_TwoAbsentDays(t *testing.T) {
	svc, _ := newTestService(repeatStatuses(attendance.StatusPresent, 28))

	resp, err := svc.ComputeSalary(context.Background(), payroll.ComputeSalaryRequest{
		EmployeeID: "emp-1",
		Month:      6,
		Year:       2025,
	})
	require.NoError(t, err)

	assert.Equal(t, "30.0", resp.WorkingDays)
	assert.Equal(t, "28.0", resp.PresentDays)
	assert.Equal(t, "2.0", resp.AbsentDays)
	assert.Equal(t, "23500.00", resp.GrossSalary)
	assert.Equal(t, "1566.67", resp.Deductions)
	assert.Equal(t, "21933.33", resp.NetSalary)
}

func TestComputeSalary_MissingStructure(t *testing.T) {
	svc, repo := newTestService(nil)
	repo.structures = nil

	_, err := svc.ComputeSalary(context.Background(), payroll.ComputeSalaryRequest{
		EmployeeID: "emp-1",
		Month:      6,
		Year:       2025,
	})
	assert.ErrorIs(t, err, payroll.ErrMissingSalaryStructure)
}

func TestComputeSalary_StructureNotYetEffective(t *testing.T) {
	svc, repo := newTestService(nil)
	repo.structures[0].EffectiveFrom = time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ComputeSalary(context.Background(), payroll.ComputeSalaryRequest{
		EmployeeID: "emp-1",
		Month:      6,
		Year:       2025,
	})
	assert.ErrorIs(t, err, payroll.ErrMissingSalaryStructure)
}

func TestSavePayment_PersistsPendingPayment(t *testing.T) {
	svc, repo := newTestService(repeatStatuses(attendance.StatusPresent, 30))

	resp, err := svc.SavePayment(context.Background(), payroll.SavePaymentRequest{
		EmployeeID: "emp-1",
		Month:      6,
		Year:       2025,
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Ravi Kumar", resp.EmployeeName)
	assert.True(t, resp.Deductions.IsZero())
	assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(23500)))

	saved, err := repo.GetPaymentByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, payroll.PaymentStatusPending, saved.Status)
	// deductions + net == gross, exactly
	assert.True(t, saved.Deductions.Add(saved.NetSalary).Equal(saved.GrossSalary))
}

func TestSavePayment_DuplicatePeriodRejected(t *testing.T) {
	svc, _ := newTestService(repeatStatuses(attendance.StatusPresent, 30))

	req := payroll.SavePaymentRequest{EmployeeID: "emp-1", Month: 6, Year: 2025}

	_, err := svc.SavePayment(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.SavePayment(context.Background(), req)
	assert.ErrorIs(t, err, payroll.ErrPaymentAlreadyExists)
}

func TestMarkPaid_TransitionsOnce(t *testing.T) {
	svc, _ := newTestService(repeatStatuses(attendance.StatusPresent, 30))

	saved, err := svc.SavePayment(context.Background(), payroll.SavePaymentRequest{
		EmployeeID: "emp-1",
		Month:      6,
		Year:       2025,
	})
	require.NoError(t, err)

	paid, err := svc.MarkPaid(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Status)
	require.NotNil(t, paid.PaidOn)

	_, err = svc.MarkPaid(context.Background(), saved.ID)
	assert.ErrorIs(t, err, payroll.ErrPaymentAlreadyPaid)
}

func TestRenderPayslip_ProducesPDF(t *testing.T) {
	svc, _ := newTestService(repeatStatuses(attendance.StatusPresent, 30))

	saved, err := svc.SavePayment(context.Background(), payroll.SavePaymentRequest{
		EmployeeID: "emp-1",
		Month:      6,
		Year:       2025,
	})
	require.NoError(t, err)

	data, err := svc.RenderPayslip(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.True(t, len(data) > 0)
	assert.Equal(t, "%PDF", string(data[:4]))
}
