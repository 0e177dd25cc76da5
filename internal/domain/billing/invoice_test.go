package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBill() Bill {
	email := "client@example.com"
	return Bill{
		ID:          "b1",
		BillNumber:  "BILL-2025-0042",
		ClientName:  "Acme Constructions",
		ClientEmail: &email,
		Description: "Excavation work, Material supply",
		Amount:      decimal.NewFromInt(2000),
		TaxAmount:   decimal.NewFromInt(360),
		TotalAmount: decimal.NewFromInt(2360),
		BillDate:    time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:      BillStatusUnpaid,
		PaidAmount:  decimal.Zero,
	}
}

func testMetadata() Metadata {
	return Metadata{
		CompanyName:    "Shree Infra Projects",
		CompanyAddress: "Plot 12, Industrial Area, Pune",
		CompanyGSTIN:   "27AAPFU0939F1ZV",
		GSTEnabled:     true,
		GSTRate:        decimal.NewFromInt(18),
		CGST:           decimal.NewFromInt(180),
		SGST:           decimal.NewFromInt(180),
		LineItems: []LineItem{
			{Description: "Excavation work", Amount: decimal.NewFromInt(500)},
			{Description: "Material supply", Amount: decimal.NewFromInt(1500)},
		},
	}
}

func TestRenderInvoice_GSTBill(t *testing.T) {
	doc, err := RenderInvoice(testBill(), testMetadata())
	require.NoError(t, err)

	assert.Contains(t, doc, "TAX INVOICE (GST)")
	assert.Contains(t, doc, "GSTIN: 27AAPFU0939F1ZV")
	assert.Contains(t, doc, "Shree Infra Projects")
	assert.Contains(t, doc, "Acme Constructions")
	assert.Contains(t, doc, "CGST (9%)")
	assert.Contains(t, doc, "SGST (9%)")
	assert.Contains(t, doc, "Excavation work")
	assert.Contains(t, doc, "Material supply")
	assert.Contains(t, doc, "2360.00")
	assert.Contains(t, doc, "Two Thousand Three Hundred Sixty Rupees Only")
	assert.NotContains(t, doc, "Balance Due")
	assert.NotContains(t, doc, "Payment Details")
}

func TestRenderInvoice_NonGSTBill(t *testing.T) {
	meta := testMetadata()
	meta.GSTEnabled = false

	doc, err := RenderInvoice(testBill(), meta)
	require.NoError(t, err)

	assert.Contains(t, doc, "INVOICE (NON-GST)")
	assert.NotContains(t, doc, "GSTIN:")
	assert.NotContains(t, doc, "CGST")
}

func TestRenderInvoice_LineItemsEnumerated(t *testing.T) {
	doc, err := RenderInvoice(testBill(), testMetadata())
	require.NoError(t, err)

	assert.Contains(t, doc, "<td>1</td><td>Excavation work</td>")
	assert.Contains(t, doc, "<td>2</td><td>Material supply</td>")
}

func TestRenderInvoice_PaidBillShowsBalance(t *testing.T) {
	bill := testBill()
	bill.Status = BillStatusPaid
	bill.PaidAmount = decimal.NewFromInt(2360)

	doc, err := RenderInvoice(bill, testMetadata())
	require.NoError(t, err)

	assert.Contains(t, doc, "Paid:")
	assert.Contains(t, doc, "Balance Due:")
	assert.Contains(t, doc, "0.00")
}

func TestRenderInvoice_PaymentDetailsBlock(t *testing.T) {
	meta := testMetadata()
	meta.BankName = "State Bank of India"
	meta.AccountNumber = "00000012345678"
	meta.IFSCCode = "SBIN0005943"
	meta.UPIID = "shreeinfra@upi"

	doc, err := RenderInvoice(testBill(), meta)
	require.NoError(t, err)

	assert.Contains(t, doc, "Payment Details")
	assert.Contains(t, doc, "State Bank of India")
	assert.Contains(t, doc, "SBIN0005943")
	assert.Contains(t, doc, "shreeinfra@upi")
}

func TestRenderInvoice_MissingRequiredFields(t *testing.T) {
	bill := testBill()
	bill.Description = ""

	_, err := RenderInvoice(bill, testMetadata())
	assert.ErrorIs(t, err, ErrInvalidBill)

	bill = testBill()
	bill.ClientName = "   "
	_, err = RenderInvoice(bill, testMetadata())
	assert.ErrorIs(t, err, ErrInvalidBill)
}

func TestRenderInvoice_FallsBackToBillDescription(t *testing.T) {
	meta := testMetadata()
	meta.LineItems = nil

	doc, err := RenderInvoice(testBill(), meta)
	require.NoError(t, err)

	assert.Contains(t, doc, "Excavation work, Material supply")
	assert.Contains(t, doc, "2000.00")
}
