package fund

import "context"

type FundService interface {
	Create(ctx context.Context, req CreateTransactionRequest) (TransactionResponse, error)
	List(ctx context.Context) ([]TransactionResponse, error)
	Delete(ctx context.Context, id string) error
	Summarize(ctx context.Context) (SummaryResponse, error)
}
