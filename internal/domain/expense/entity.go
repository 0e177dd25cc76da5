package expense

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID          string
	CategoryID  *string
	SiteID      *string
	Description string
	Amount      decimal.Decimal
	ExpenseDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined for list views.
	CategoryName *string
	SiteName     *string
}

// CategoryTotal is one row of the month summary: everything spent against a
// single category in the period.
type CategoryTotal struct {
	CategoryID   *string
	CategoryName *string
	Total        decimal.Decimal
}

type MonthSummary struct {
	Month      int
	Year       int
	Total      decimal.Decimal
	ByCategory []CategoryTotal
}
