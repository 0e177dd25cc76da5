package fund

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeCredit TransactionType = "credit"
	TypeDebit  TransactionType = "debit"
)

func (t TransactionType) Valid() bool {
	return t == TypeCredit || t == TypeDebit
}

type Transaction struct {
	ID              string
	Type            TransactionType
	Amount          decimal.Decimal
	Description     string
	SiteID          *string
	TransactionDate time.Time
	CreatedAt       time.Time

	// Joined for list views.
	SiteName *string
}

// Summary is the running position over all recorded transactions:
// balance = total credits - total debits.
type Summary struct {
	TotalCredit decimal.Decimal
	TotalDebit  decimal.Decimal
	Balance     decimal.Decimal
}
