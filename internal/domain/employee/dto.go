package employee

import (
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
)

// EmployeeResponse represents the response structure for an employee.
type EmployeeResponse struct {
	ID             string  `json:"id"`
	EmployeeCode   string  `json:"employee_code"`
	FullName       string  `json:"full_name"`
	Email          *string `json:"email,omitempty"`
	PhoneNumber    string  `json:"phone_number"`
	Designation    string  `json:"designation"`
	DepartmentID   *string `json:"department_id,omitempty"`
	DepartmentName *string `json:"department_name,omitempty"`
	Address        *string `json:"address,omitempty"`
	JoinDate       string  `json:"join_date"`
	Status         string  `json:"status"`
}

// CreateEmployeeRequest represents the request structure for creating an employee.
type CreateEmployeeRequest struct {
	EmployeeCode string  `json:"employee_code"`
	FullName     string  `json:"full_name"`
	Email        *string `json:"email,omitempty"`
	PhoneNumber  string  `json:"phone_number"`
	Designation  string  `json:"designation"`
	DepartmentID *string `json:"department_id,omitempty"`
	Address      *string `json:"address,omitempty"`
	JoinDate     string  `json:"join_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_code",
			Message: "employee_code is required",
		})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if len(r.FullName) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 100 characters",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if validator.IsEmpty(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number is required",
		})
	} else if !validator.IsValidPhoneNumber(r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be a valid phone number",
		})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{
			Field:   "designation",
			Message: "designation is required",
		})
	}
	if _, ok := validator.IsValidDate(r.JoinDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "join_date",
			Message: "join_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest represents the request structure for updating an employee.
// Nil fields are left untouched.
type UpdateEmployeeRequest struct {
	ID           string  `json:"-"`
	FullName     *string `json:"full_name,omitempty"`
	Email        *string `json:"email,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
	Designation  *string `json:"designation,omitempty"`
	DepartmentID *string `json:"department_id,omitempty"`
	Address      *string `json:"address,omitempty"`
	Status       *string `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not be empty",
			})
		}
		if len(*r.FullName) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not exceed 100 characters",
			})
		}
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.PhoneNumber != nil && !validator.IsValidPhoneNumber(*r.PhoneNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone_number",
			Message: "phone_number must be a valid phone number",
		})
	}
	if r.Status != nil && !Status(*r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: active, inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		EmployeeCode:   e.EmployeeCode,
		FullName:       e.FullName,
		Email:          e.Email,
		PhoneNumber:    e.PhoneNumber,
		Designation:    e.Designation,
		DepartmentID:   e.DepartmentID,
		DepartmentName: e.DepartmentName,
		Address:        e.Address,
		JoinDate:       e.JoinDate.Format("2006-01-02"),
		Status:         string(e.Status),
	}
}
