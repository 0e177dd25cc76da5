package fund

import (
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// TransactionResponse represents the response structure for a fund transaction.
type TransactionResponse struct {
	ID              string          `json:"id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	SiteID          *string         `json:"site_id,omitempty"`
	SiteName        *string         `json:"site_name,omitempty"`
	TransactionDate string          `json:"transaction_date"`
}

// CreateTransactionRequest represents the request structure for recording a
// fund credit or debit.
type CreateTransactionRequest struct {
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Description     string          `json:"description"`
	SiteID          *string         `json:"site_id,omitempty"`
	TransactionDate string          `json:"transaction_date"`
}

func (r *CreateTransactionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !TransactionType(r.Type).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of: credit, debit",
		})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be greater than zero",
		})
	}
	if validator.IsEmpty(r.Description) {
		errs = append(errs, validator.ValidationError{
			Field:   "description",
			Message: "description is required",
		})
	}
	if _, ok := validator.IsValidDate(r.TransactionDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "transaction_date",
			Message: "transaction_date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SummaryResponse struct {
	TotalCredit decimal.Decimal `json:"total_credit"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	Balance     decimal.Decimal `json:"balance"`
}
