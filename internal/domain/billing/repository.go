package billing

import "context"

type BillRepository interface {
	Create(ctx context.Context, bill Bill) (Bill, error)
	GetByID(ctx context.Context, id string) (Bill, error)
	List(ctx context.Context) ([]Bill, error)
	// NextBillNumber returns the next sequential number for the bill's year.
	NextBillNumber(ctx context.Context, year int) (int, error)
	MarkPaid(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string) error
}

// MetadataRepository is the render-time sidecar store: written once at bill
// creation, read back when that bill's printable invoice is produced.
type MetadataRepository interface {
	Put(ctx context.Context, meta Metadata) error
	GetByBillID(ctx context.Context, billID string) (Metadata, error)
}
