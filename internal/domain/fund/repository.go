package fund

import "context"

type FundRepository interface {
	Create(ctx context.Context, txn Transaction) (Transaction, error)
	GetByID(ctx context.Context, id string) (Transaction, error)
	List(ctx context.Context) ([]Transaction, error)
	Delete(ctx context.Context, id string) error
	Summarize(ctx context.Context) (Summary, error)
}
