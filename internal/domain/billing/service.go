package billing

import "context"

type BillingService interface {
	ComputeTax(ctx context.Context, req ComputeTaxRequest) (TaxBreakdownResponse, error)
	CreateBill(ctx context.Context, req CreateBillRequest) (BillResponse, error)
	GetBill(ctx context.Context, id string) (BillResponse, error)
	ListBills(ctx context.Context) ([]BillResponse, error)
	MarkPaid(ctx context.Context, id string) (BillResponse, error)
	Cancel(ctx context.Context, id string) (BillResponse, error)
	// RenderInvoice returns the printable HTML document for a bill.
	RenderInvoice(ctx context.Context, id string) (string, error)
}
