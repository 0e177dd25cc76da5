package billing

import (
	"html/template"
	"strings"

	"github.com/shopspring/decimal"
)

// RenderInvoice produces the self-contained printable invoice document for a
// finalized bill and its metadata. All data is supplied by the caller; the
// renderer performs no I/O. A bill without a description or client name
// fails with ErrInvalidBill rather than printing placeholders.
func RenderInvoice(bill Bill, meta Metadata) (string, error) {
	if strings.TrimSpace(bill.ClientName) == "" || strings.TrimSpace(bill.Description) == "" {
		return "", ErrInvalidBill
	}

	data := buildInvoiceData(bill, meta)

	var sb strings.Builder
	if err := invoiceTmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return sb.String(), nil
}

type invoiceLineItem struct {
	Number      int
	Description string
	Amount      string
}

type invoiceData struct {
	Title          string
	CompanyName    string
	CompanyAddress string
	CompanyGSTIN   string
	GSTEnabled     bool

	BillNumber  string
	BillDate    string
	DueDate     string
	Status      string
	ClientName  string
	ClientEmail string
	ClientPhone string
	ClientAddr  string
	ClientGSTIN string

	Items []invoiceLineItem

	Subtotal  string
	HalfRate  string
	GSTRate   string
	CGST      string
	SGST      string
	TaxTotal  string
	Total     string
	ShowPaid  bool
	Paid      string
	Balance   string
	InWords   string
	HasBank   bool
	BankName  string
	AccountNo string
	IFSC      string
	UPIID     string
}

func buildInvoiceData(bill Bill, meta Metadata) invoiceData {
	data := invoiceData{
		Title:          "INVOICE (NON-GST)",
		CompanyName:    meta.CompanyName,
		CompanyAddress: meta.CompanyAddress,
		CompanyGSTIN:   meta.CompanyGSTIN,
		GSTEnabled:     meta.GSTEnabled,
		BillNumber:     bill.BillNumber,
		BillDate:       bill.BillDate.Format("02/01/2006"),
		Status:         strings.ToUpper(string(bill.Status)),
		ClientName:     bill.ClientName,
		ClientAddr:     meta.ClientAddress,
		ClientGSTIN:    meta.ClientGSTIN,
		Subtotal:       bill.Amount.StringFixed(2),
		GSTRate:        meta.GSTRate.String(),
		HalfRate:       meta.GSTRate.Div(decimal.NewFromInt(2)).String(),
		CGST:           meta.CGST.StringFixed(2),
		SGST:           meta.SGST.StringFixed(2),
		TaxTotal:       bill.TaxAmount.StringFixed(2),
		Total:          bill.TotalAmount.StringFixed(2),
		InWords:        AmountInWords(bill.TotalAmount.Round(0).IntPart()),
	}
	if meta.GSTEnabled {
		data.Title = "TAX INVOICE (GST)"
	}
	if bill.ClientEmail != nil {
		data.ClientEmail = *bill.ClientEmail
	}
	if bill.ClientPhone != nil {
		data.ClientPhone = *bill.ClientPhone
	}
	if bill.DueDate != nil {
		data.DueDate = bill.DueDate.Format("02/01/2006")
	}

	// The metadata line items drive the table; a bill persisted before
	// metadata existed falls back to its single description row.
	if len(meta.LineItems) > 0 {
		for i, item := range meta.LineItems {
			data.Items = append(data.Items, invoiceLineItem{
				Number:      i + 1,
				Description: item.Description,
				Amount:      item.Amount.StringFixed(2),
			})
		}
	} else {
		data.Items = []invoiceLineItem{{Number: 1, Description: bill.Description, Amount: bill.Amount.StringFixed(2)}}
	}

	if bill.PaidAmount.IsPositive() {
		data.ShowPaid = true
		data.Paid = bill.PaidAmount.StringFixed(2)
		data.Balance = bill.TotalAmount.Sub(bill.PaidAmount).StringFixed(2)
	}

	data.HasBank = meta.BankName != "" || meta.AccountNumber != "" || meta.IFSCCode != "" || meta.UPIID != ""
	data.BankName = meta.BankName
	data.AccountNo = meta.AccountNumber
	data.IFSC = meta.IFSCCode
	data.UPIID = meta.UPIID

	return data
}

var invoiceTmpl = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<title>Bill {{.BillNumber}}</title>
<style>
  body { font-family: Arial, sans-serif; font-size: 13px; color: #222; margin: 40px; }
  .company-header { text-align: center; border-bottom: 2px solid #000; padding-bottom: 12px; }
  .company-header h1 { margin: 0; font-size: 22px; }
  .company-header .gstin { font-weight: bold; margin-top: 5px; }
  .invoice-title { text-align: center; font-size: 16px; font-weight: bold; margin: 16px 0; }
  .meta { display: flex; justify-content: space-between; margin-bottom: 16px; }
  table { width: 100%; border-collapse: collapse; margin: 12px 0; }
  th { background: #f5f5f5; border: 1px solid #ddd; padding: 8px; text-align: left; font-size: 11px; }
  td { border: 1px solid #ddd; padding: 8px; font-size: 12px; }
  td.num { text-align: right; }
  .totals td { border: none; }
  .total-row td { font-weight: bold; border-top: 2px solid #000; }
  .amount-words { margin: 16px 0; padding: 8px; background: #f9f9f9; }
  .payment-details { margin: 16px 0; border: 1px solid #ddd; padding: 10px; }
  .terms { margin-top: 24px; font-size: 11px; color: #555; }
</style>
</head>
<body>
  <div class="company-header">
    <h1>{{.CompanyName}}</h1>
    <p>{{.CompanyAddress}}</p>
    {{if .GSTEnabled}}<div class="gstin">GSTIN: {{.CompanyGSTIN}}</div>{{end}}
  </div>

  <div class="invoice-title">{{.Title}}</div>

  <div class="meta">
    <div>
      <p><strong>Bill To:</strong></p>
      <p>{{.ClientName}}</p>
      {{if .ClientAddr}}<p>{{.ClientAddr}}</p>{{end}}
      {{if .ClientEmail}}<p>{{.ClientEmail}}</p>{{end}}
      {{if .ClientPhone}}<p>{{.ClientPhone}}</p>{{end}}
      {{if and .GSTEnabled .ClientGSTIN}}<p><strong>GSTIN:</strong> {{.ClientGSTIN}}</p>{{end}}
    </div>
    <div>
      <p><strong>Bill No:</strong> {{.BillNumber}}</p>
      <p><strong>Date:</strong> {{.BillDate}}</p>
      {{if .DueDate}}<p><strong>Due Date:</strong> {{.DueDate}}</p>{{end}}
      <p><strong>Status:</strong> {{.Status}}</p>
    </div>
  </div>

  <table>
    <thead>
      <tr><th style="width:60px">S.No</th><th>Description of Services/Goods</th><th style="width:120px">Amount (Rs.)</th></tr>
    </thead>
    <tbody>
      {{range .Items}}<tr><td>{{.Number}}</td><td>{{.Description}}</td><td class="num">{{.Amount}}</td></tr>
      {{end}}
    </tbody>
  </table>

  {{if .GSTEnabled}}
  <table>
    <thead>
      <tr><th>Taxable Amount</th><th>CGST ({{.HalfRate}}%)</th><th>SGST ({{.HalfRate}}%)</th><th>Total Tax</th></tr>
    </thead>
    <tbody>
      <tr><td>{{.Subtotal}}</td><td class="num">{{.CGST}}</td><td class="num">{{.SGST}}</td><td class="num">{{.TaxTotal}}</td></tr>
    </tbody>
  </table>
  {{end}}

  <table class="totals">
    <tr><td>Subtotal:</td><td class="num">{{.Subtotal}}</td></tr>
    {{if .GSTEnabled}}<tr><td>GST ({{.GSTRate}}%):</td><td class="num">{{.TaxTotal}}</td></tr>{{end}}
    <tr class="total-row"><td>TOTAL AMOUNT:</td><td class="num">{{.Total}}</td></tr>
    {{if .ShowPaid}}
    <tr><td>Paid:</td><td class="num">{{.Paid}}</td></tr>
    <tr><td>Balance Due:</td><td class="num">{{.Balance}}</td></tr>
    {{end}}
  </table>

  <div class="amount-words"><strong>Amount in Words:</strong> {{.InWords}} Rupees Only</div>

  {{if .HasBank}}
  <div class="payment-details">
    <p><strong>Payment Details:</strong></p>
    {{if .BankName}}<p>Bank: {{.BankName}}</p>{{end}}
    {{if .AccountNo}}<p>Account No: {{.AccountNo}}</p>{{end}}
    {{if .IFSC}}<p>IFSC: {{.IFSC}}</p>{{end}}
    {{if .UPIID}}<p>UPI: {{.UPIID}}</p>{{end}}
  </div>
  {{end}}

  <div class="terms">
    <p>1. Payment is due within the specified due date. Late payments may incur additional charges.</p>
    <p>2. All disputes subject to local jurisdiction only.</p>
    {{if .GSTEnabled}}<p>3. This is a computer-generated GST invoice and does not require physical signature.</p>{{end}}
  </div>
</body>
</html>
`))
