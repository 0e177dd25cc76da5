package billing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(amounts ...float64) []LineItem {
	result := make([]LineItem, len(amounts))
	for i, amount := range amounts {
		result[i] = LineItem{Description: "item", Amount: decimal.NewFromFloat(amount)}
	}
	return result
}

func TestComputeTax_GSTEnabled(t *testing.T) {
	b, err := ComputeTax(items(500, 1500), true, decimal.NewFromInt(18))
	require.NoError(t, err)

	assert.Equal(t, "2000", b.Subtotal.String())
	assert.Equal(t, "360", b.TaxTotal.String())
	assert.Equal(t, "180", b.CGST.String())
	assert.Equal(t, "180", b.SGST.String())
	assert.Equal(t, "2360", b.TotalAmount.String())
}

func TestComputeTax_GSTDisabled(t *testing.T) {
	b, err := ComputeTax(items(500, 1500), false, decimal.NewFromInt(18))
	require.NoError(t, err)

	assert.True(t, b.TaxTotal.IsZero())
	assert.True(t, b.CGST.IsZero())
	assert.True(t, b.SGST.IsZero())
	assert.True(t, b.TotalAmount.Equal(b.Subtotal))
}

func TestComputeTax_SplitIsAlwaysEven(t *testing.T) {
	b, err := ComputeTax(items(333.33), true, decimal.NewFromFloat(12.5))
	require.NoError(t, err)

	assert.True(t, b.CGST.Equal(b.SGST))
	assert.True(t, b.CGST.Add(b.SGST).Equal(b.TaxTotal))
	assert.True(t, b.Subtotal.Add(b.TaxTotal).Equal(b.TotalAmount))
}

func TestComputeTax_EmptyLineItems(t *testing.T) {
	_, err := ComputeTax(nil, true, decimal.NewFromInt(18))
	assert.ErrorIs(t, err, ErrNoLineItems)
}

func TestComputeTax_NegativeAmount(t *testing.T) {
	_, err := ComputeTax(items(100, -5), true, decimal.NewFromInt(18))
	assert.ErrorIs(t, err, ErrNegativeAmount)
}

func TestComputeTax_NegativeRate(t *testing.T) {
	_, err := ComputeTax(items(100), true, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, ErrNegativeRate)
}

func TestComputeTax_ZeroRate(t *testing.T) {
	b, err := ComputeTax(items(100), true, decimal.Zero)
	require.NoError(t, err)

	assert.True(t, b.TaxTotal.IsZero())
	assert.True(t, b.TotalAmount.Equal(b.Subtotal))
}

func TestComputeTax_Idempotent(t *testing.T) {
	in := items(199.99, 0.01, 800)
	rate := decimal.NewFromInt(18)

	first, err := ComputeTax(in, true, rate)
	require.NoError(t, err)
	second, err := ComputeTax(in, true, rate)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
