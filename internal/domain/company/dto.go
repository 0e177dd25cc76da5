package company

import (
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
)

// SettingsResponse represents the response structure for company settings.
type SettingsResponse struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	GSTIN         string `json:"gstin"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	IFSCCode      string `json:"ifsc_code"`
	UPIID         string `json:"upi_id"`
}

// UpdateSettingsRequest represents the request structure for updating company
// settings. Nil fields are left untouched.
type UpdateSettingsRequest struct {
	Name          *string `json:"name,omitempty"`
	Address       *string `json:"address,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	GSTIN         *string `json:"gstin,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	IFSCCode      *string `json:"ifsc_code,omitempty"`
	UPIID         *string `json:"upi_id,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Email != nil && *r.Email != "" && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}
	if r.GSTIN != nil && *r.GSTIN != "" && !validator.IsValidGSTIN(*r.GSTIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "gstin",
			Message: "gstin must be a valid GSTIN",
		})
	}
	if r.IFSCCode != nil && *r.IFSCCode != "" && !validator.IsValidIFSC(*r.IFSCCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "ifsc_code",
			Message: "ifsc_code must be a valid IFSC code",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
