package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus enum
type BillStatus string

const (
	BillStatusUnpaid    BillStatus = "unpaid"
	BillStatusPaid      BillStatus = "paid"
	BillStatusCancelled BillStatus = "cancelled"
)

// LineItem is one priced entry on a bill. Order matters on the rendered
// invoice; a bill carries at least one.
type LineItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// Bill is the persisted invoice record. Amount is the line-item subtotal;
// TotalAmount = Amount + TaxAmount always holds.
type Bill struct {
	ID          string
	BillNumber  string
	ClientName  string
	ClientEmail *string
	ClientPhone *string
	Description string
	Amount      decimal.Decimal
	TaxAmount   decimal.Decimal
	TotalAmount decimal.Decimal
	BillDate    time.Time
	DueDate     *time.Time
	Status      BillStatus
	PaidAmount  decimal.Decimal
	CreatedBy   *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Metadata is the render-time sidecar for one bill: company identity, GST
// registration, payment details and the original line items. Written once at
// bill creation, read back only when the printable invoice is produced.
type Metadata struct {
	BillID         string          `json:"-"`
	CompanyName    string          `json:"company_name"`
	CompanyAddress string          `json:"company_address"`
	CompanyGSTIN   string          `json:"company_gstin"`
	ClientAddress  string          `json:"client_address"`
	ClientGSTIN    string          `json:"client_gstin"`
	GSTEnabled     bool            `json:"gst_enabled"`
	GSTRate        decimal.Decimal `json:"gst_rate"`
	CGST           decimal.Decimal `json:"cgst"`
	SGST           decimal.Decimal `json:"sgst"`
	LineItems      []LineItem      `json:"line_items"`
	BankName       string          `json:"bank_name"`
	AccountNumber  string          `json:"account_number"`
	IFSCCode       string          `json:"ifsc_code"`
	UPIID          string          `json:"upi_id"`
}
