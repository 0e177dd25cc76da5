package expense

import (
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ExpenseResponse represents the response structure for an expense.
type ExpenseResponse struct {
	ID           string          `json:"id"`
	CategoryID   *string         `json:"category_id,omitempty"`
	CategoryName *string         `json:"category_name,omitempty"`
	SiteID       *string         `json:"site_id,omitempty"`
	SiteName     *string         `json:"site_name,omitempty"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"`
	ExpenseDate  string          `json:"expense_date"`
}

// CreateExpenseRequest represents the request structure for recording an expense.
type CreateExpenseRequest struct {
	CategoryID  *string         `json:"category_id,omitempty"`
	SiteID      *string         `json:"site_id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate string          `json:"expense_date"`
}

func (r *CreateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}
	if _, ok := validator.IsValidDate(r.ExpenseDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "expense_date",
			Message: "expense_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateExpenseRequest represents the request structure for updating an expense.
type UpdateExpenseRequest struct {
	ID          string           `json:"-"`
	CategoryID  *string          `json:"category_id,omitempty"`
	SiteID      *string          `json:"site_id,omitempty"`
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	ExpenseDate *string          `json:"expense_date,omitempty"`
}

func (r *UpdateExpenseRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Description != nil && validator.IsEmpty(*r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description must not be empty",
		})
	}
	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}
	if r.ExpenseDate != nil {
		if _, ok := validator.IsValidDate(*r.ExpenseDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "expense_date",
				Message: "expense_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CategoryTotalResponse struct {
	CategoryID   *string         `json:"category_id,omitempty"`
	CategoryName *string         `json:"category_name,omitempty"`
	Total        decimal.Decimal `json:"total"`
}

type MonthSummaryResponse struct {
	Month      int                     `json:"month"`
	Year       int                     `json:"year"`
	Total      decimal.Decimal         `json:"total"`
	ByCategory []CategoryTotalResponse `json:"by_category"`
}
