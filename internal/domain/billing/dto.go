package billing

import (
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type LineItemRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

type CreateBillRequest struct {
	ClientName    string            `json:"client_name"`
	ClientEmail   *string           `json:"client_email,omitempty"`
	ClientPhone   *string           `json:"client_phone,omitempty"`
	ClientAddress string            `json:"client_address"`
	ClientGSTIN   string            `json:"client_gstin"`
	LineItems     []LineItemRequest `json:"line_items"`
	GSTEnabled    bool              `json:"gst_enabled"`
	GSTRate       decimal.Decimal   `json:"gst_rate"`
	BillDate      string            `json:"bill_date"`
	DueDate       *string           `json:"due_date,omitempty"`

	// Company block overrides; empty fields fall back to company settings.
	CompanyName    string `json:"company_name"`
	CompanyAddress string `json:"company_address"`
	CompanyGSTIN   string `json:"company_gstin"`
}

func (r *CreateBillRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ClientName) {
		errs = append(errs, validator.ValidationError{Field: "client_name", Message: "is required"})
	}
	if r.ClientEmail != nil && !validator.IsValidEmail(*r.ClientEmail) {
		errs = append(errs, validator.ValidationError{Field: "client_email", Message: "must be a valid email address"})
	}
	if len(r.LineItems) == 0 {
		errs = append(errs, validator.ValidationError{Field: "line_items", Message: "at least one line item is required"})
	}
	for _, item := range r.LineItems {
		if validator.IsEmpty(item.Description) {
			errs = append(errs, validator.ValidationError{Field: "line_items", Message: "every line item needs a description"})
			break
		}
	}
	for _, item := range r.LineItems {
		if item.Amount.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "line_items", Message: "amounts must be non-negative"})
			break
		}
	}
	if r.GSTEnabled {
		if r.GSTRate.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "gst_rate", Message: "must be non-negative"})
		}
		if r.CompanyGSTIN != "" && !validator.IsValidGSTIN(r.CompanyGSTIN) {
			errs = append(errs, validator.ValidationError{Field: "company_gstin", Message: "must be a valid GSTIN"})
		}
		if r.ClientGSTIN != "" && !validator.IsValidGSTIN(r.ClientGSTIN) {
			errs = append(errs, validator.ValidationError{Field: "client_gstin", Message: "must be a valid GSTIN"})
		}
	}
	if _, ok := validator.IsValidDate(r.BillDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "bill_date", Message: "must be in YYYY-MM-DD format"})
	}
	if r.DueDate != nil {
		if _, ok := validator.IsValidDate(*r.DueDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "due_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ComputeTaxRequest struct {
	LineItems  []LineItemRequest `json:"line_items"`
	GSTEnabled bool              `json:"gst_enabled"`
	GSTRate    decimal.Decimal   `json:"gst_rate"`
}

type TaxBreakdownResponse struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	CGST        decimal.Decimal `json:"cgst"`
	SGST        decimal.Decimal `json:"sgst"`
	TaxTotal    decimal.Decimal `json:"tax_total"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type BillResponse struct {
	ID          string          `json:"id"`
	BillNumber  string          `json:"bill_number"`
	ClientName  string          `json:"client_name"`
	ClientEmail *string         `json:"client_email,omitempty"`
	ClientPhone *string         `json:"client_phone,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	TaxAmount   decimal.Decimal `json:"tax_amount"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	BillDate    string          `json:"bill_date"`
	DueDate     *string         `json:"due_date,omitempty"`
	Status      string          `json:"status"`
	PaidAmount  decimal.Decimal `json:"paid_amount"`
}
