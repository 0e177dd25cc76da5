package fund

import (
	"context"
	"fmt"
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/fund"
)

type FundServiceImpl struct {
	fundRepo fund.FundRepository
}

func NewFundService(fundRepo fund.FundRepository) fund.FundService {
	return &FundServiceImpl{fundRepo: fundRepo}
}

func toTransactionResponse(txn fund.Transaction) fund.TransactionResponse {
	return fund.TransactionResponse{
		ID:              txn.ID,
		Type:            string(txn.Type),
		Amount:          txn.Amount,
		Description:     txn.Description,
		SiteID:          txn.SiteID,
		SiteName:        txn.SiteName,
		TransactionDate: txn.TransactionDate.Format("2006-01-02"),
	}
}

// Create implements fund.FundService.
func (s *FundServiceImpl) Create(ctx context.Context, req fund.CreateTransactionRequest) (fund.TransactionResponse, error) {
	if err := req.Validate(); err != nil {
		return fund.TransactionResponse{}, err
	}

	transactionDate, _ := time.Parse("2006-01-02", req.TransactionDate)

	created, err := s.fundRepo.Create(ctx, fund.Transaction{
		Type:            fund.TransactionType(req.Type),
		Amount:          req.Amount,
		Description:     req.Description,
		SiteID:          req.SiteID,
		TransactionDate: transactionDate,
	})
	if err != nil {
		return fund.TransactionResponse{}, fmt.Errorf("failed to create fund transaction: %w", err)
	}

	return toTransactionResponse(created), nil
}

// List implements fund.FundService.
func (s *FundServiceImpl) List(ctx context.Context) ([]fund.TransactionResponse, error) {
	txns, err := s.fundRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list fund transactions: %w", err)
	}

	responses := make([]fund.TransactionResponse, 0, len(txns))
	for _, txn := range txns {
		responses = append(responses, toTransactionResponse(txn))
	}
	return responses, nil
}

// Delete implements fund.FundService.
func (s *FundServiceImpl) Delete(ctx context.Context, id string) error {
	return s.fundRepo.Delete(ctx, id)
}

// Summarize implements fund.FundService.
func (s *FundServiceImpl) Summarize(ctx context.Context) (fund.SummaryResponse, error) {
	summary, err := s.fundRepo.Summarize(ctx)
	if err != nil {
		return fund.SummaryResponse{}, fmt.Errorf("failed to summarize funds: %w", err)
	}

	return fund.SummaryResponse{
		TotalCredit: summary.TotalCredit,
		TotalDebit:  summary.TotalDebit,
		Balance:     summary.Balance,
	}, nil
}
