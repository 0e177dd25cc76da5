package billing

import (
	"github.com/shopspring/decimal"
)

// TaxBreakdown is the result of a GST computation over a bill's line items.
// CGST and SGST are always equal halves of the tax total (intra-state
// dual-GST split; no asymmetric split exists).
type TaxBreakdown struct {
	Subtotal    decimal.Decimal
	CGST        decimal.Decimal
	SGST        decimal.Decimal
	TaxTotal    decimal.Decimal
	TotalAmount decimal.Decimal
}

var hundred = decimal.NewFromInt(100)

// ComputeTax derives subtotal, GST split and grand total from line items.
// Pure and stateless; the originating UI recomputes on every keystroke, so
// identical inputs must always produce identical outputs.
func ComputeTax(items []LineItem, gstEnabled bool, gstRatePercent decimal.Decimal) (TaxBreakdown, error) {
	if len(items) == 0 {
		return TaxBreakdown{}, ErrNoLineItems
	}
	if gstRatePercent.IsNegative() {
		return TaxBreakdown{}, ErrNegativeRate
	}

	subtotal := decimal.Zero
	for _, item := range items {
		if item.Amount.IsNegative() {
			return TaxBreakdown{}, ErrNegativeAmount
		}
		subtotal = subtotal.Add(item.Amount)
	}

	taxTotal := decimal.Zero
	if gstEnabled {
		taxTotal = subtotal.Mul(gstRatePercent).Div(hundred)
	}
	halfTax := taxTotal.Div(decimal.NewFromInt(2))

	return TaxBreakdown{
		Subtotal:    subtotal,
		CGST:        halfTax,
		SGST:        halfTax,
		TaxTotal:    taxTotal,
		TotalAmount: subtotal.Add(taxTotal),
	}, nil
}
