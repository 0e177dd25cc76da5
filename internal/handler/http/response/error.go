package response

import (
	"errors"
	"net/http"

	"github.com/constrack/backoffice-backend-go/internal/domain/attendance"
	"github.com/constrack/backoffice-backend-go/internal/domain/auth"
	"github.com/constrack/backoffice-backend-go/internal/domain/billing"
	"github.com/constrack/backoffice-backend-go/internal/domain/company"
	"github.com/constrack/backoffice-backend-go/internal/domain/employee"
	"github.com/constrack/backoffice-backend-go/internal/domain/expense"
	"github.com/constrack/backoffice-backend-go/internal/domain/fund"
	"github.com/constrack/backoffice-backend-go/internal/domain/master/category"
	"github.com/constrack/backoffice-backend-go/internal/domain/master/department"
	"github.com/constrack/backoffice-backend-go/internal/domain/payroll"
	"github.com/constrack/backoffice-backend-go/internal/domain/site"
	"github.com/constrack/backoffice-backend-go/internal/domain/user"
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrAdminAccessRequired):
		Forbidden(w, "Admin access required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrUnknownEmployee):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Payroll domain errors
	case errors.Is(err, payroll.ErrMissingSalaryStructure):
		NotFound(w, "No salary structure effective for this period")
	case errors.Is(err, payroll.ErrStructureNotFound):
		NotFound(w, "Salary structure not found")
	case errors.Is(err, payroll.ErrPaymentNotFound):
		NotFound(w, "Salary payment not found")
	case errors.Is(err, payroll.ErrPaymentAlreadyExists):
		Conflict(w, "Salary payment already exists for this period")
	case errors.Is(err, payroll.ErrPaymentAlreadyPaid):
		Conflict(w, "Salary payment already marked as paid")
	case errors.Is(err, payroll.ErrInvalidPeriod):
		BadRequest(w, "Invalid salary period", nil)
	case errors.Is(err, payroll.ErrInvalidAttendance):
		BadRequest(w, "Attendance records exceed days in month", nil)

	// Billing domain errors
	case errors.Is(err, billing.ErrBillNotFound):
		NotFound(w, "Bill not found")
	case errors.Is(err, billing.ErrMetadataNotFound):
		NotFound(w, "Bill metadata not found")
	case errors.Is(err, billing.ErrBillAlreadyPaid):
		Conflict(w, "Bill already marked as paid")
	case errors.Is(err, billing.ErrBillCancelled):
		Conflict(w, "Bill is cancelled")
	case errors.Is(err, billing.ErrNoLineItems):
		BadRequest(w, "Bill must have at least one line item", nil)
	case errors.Is(err, billing.ErrNegativeAmount):
		BadRequest(w, "Line item amounts must be non-negative", nil)
	case errors.Is(err, billing.ErrNegativeRate):
		BadRequest(w, "GST rate must be non-negative", nil)
	case errors.Is(err, billing.ErrInvalidBill):
		BadRequest(w, "Bill is missing required fields", nil)

	// Expense and fund domain errors
	case errors.Is(err, expense.ErrExpenseNotFound):
		NotFound(w, "Expense not found")
	case errors.Is(err, expense.ErrInvalidPeriod):
		BadRequest(w, "Invalid expense period", nil)
	case errors.Is(err, fund.ErrTransactionNotFound):
		NotFound(w, "Fund transaction not found")

	// Site domain errors
	case errors.Is(err, site.ErrSiteNotFound):
		NotFound(w, "Site not found")
	case errors.Is(err, site.ErrProgressNotFound):
		NotFound(w, "Progress update not found")

	// Company settings
	case errors.Is(err, company.ErrSettingsNotFound):
		NotFound(w, "Company settings not found")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department with this name already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department is referenced by employees")
	case errors.Is(err, category.ErrCategoryNotFound):
		NotFound(w, "Expense category not found")
	case errors.Is(err, category.ErrCategoryNameExists):
		Conflict(w, "Expense category with this name already exists")
	case errors.Is(err, category.ErrCategoryInUse):
		Conflict(w, "Expense category is referenced by expenses")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
