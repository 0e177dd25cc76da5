package billing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/billing"
	"github.com/constrack/backoffice-backend-go/internal/domain/company"
	"github.com/constrack/backoffice-backend-go/internal/pkg/database"
	"github.com/constrack/backoffice-backend-go/internal/pkg/jwt"
	"github.com/constrack/backoffice-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
)

type BillingServiceImpl struct {
	db           *database.DB
	billRepo     billing.BillRepository
	metadataRepo billing.MetadataRepository
	settingsRepo company.SettingsRepository
}

func NewBillingService(
	db *database.DB,
	billRepo billing.BillRepository,
	metadataRepo billing.MetadataRepository,
	settingsRepo company.SettingsRepository,
) billing.BillingService {
	return &BillingServiceImpl{
		db:           db,
		billRepo:     billRepo,
		metadataRepo: metadataRepo,
		settingsRepo: settingsRepo,
	}
}

func toBillResponse(b billing.Bill) billing.BillResponse {
	resp := billing.BillResponse{
		ID:          b.ID,
		BillNumber:  b.BillNumber,
		ClientName:  b.ClientName,
		ClientEmail: b.ClientEmail,
		ClientPhone: b.ClientPhone,
		Description: b.Description,
		Amount:      b.Amount,
		TaxAmount:   b.TaxAmount,
		TotalAmount: b.TotalAmount,
		BillDate:    b.BillDate.Format("2006-01-02"),
		Status:      string(b.Status),
		PaidAmount:  b.PaidAmount,
	}
	if b.DueDate != nil {
		due := b.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}

func toLineItems(items []billing.LineItemRequest) []billing.LineItem {
	result := make([]billing.LineItem, 0, len(items))
	for _, item := range items {
		result = append(result, billing.LineItem{
			Description: strings.TrimSpace(item.Description),
			Amount:      item.Amount,
		})
	}
	return result
}

// ComputeTax implements billing.BillingService. Preview only; persists
// nothing.
func (s *BillingServiceImpl) ComputeTax(ctx context.Context, req billing.ComputeTaxRequest) (billing.TaxBreakdownResponse, error) {
	breakdown, err := billing.ComputeTax(toLineItems(req.LineItems), req.GSTEnabled, req.GSTRate)
	if err != nil {
		return billing.TaxBreakdownResponse{}, err
	}

	return billing.TaxBreakdownResponse{
		Subtotal:    breakdown.Subtotal,
		CGST:        breakdown.CGST,
		SGST:        breakdown.SGST,
		TaxTotal:    breakdown.TaxTotal,
		TotalAmount: breakdown.TotalAmount,
	}, nil
}

// CreateBill implements billing.BillingService. Computes the tax breakdown,
// persists the bill and its metadata sidecar in one transaction, and numbers
// the bill sequentially within its year.
func (s *BillingServiceImpl) CreateBill(ctx context.Context, req billing.CreateBillRequest) (billing.BillResponse, error) {
	if err := req.Validate(); err != nil {
		return billing.BillResponse{}, err
	}

	items := toLineItems(req.LineItems)
	breakdown, err := billing.ComputeTax(items, req.GSTEnabled, req.GSTRate)
	if err != nil {
		return billing.BillResponse{}, err
	}

	// Company identity defaults come from settings; the request may override.
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, company.ErrSettingsNotFound) {
		return billing.BillResponse{}, fmt.Errorf("failed to load company settings: %w", err)
	}
	companyName := req.CompanyName
	if companyName == "" {
		companyName = settings.Name
	}
	companyAddress := req.CompanyAddress
	if companyAddress == "" {
		companyAddress = settings.Address
	}
	companyGSTIN := req.CompanyGSTIN
	if companyGSTIN == "" {
		companyGSTIN = settings.GSTIN
	}

	billDate, _ := time.Parse("2006-01-02", req.BillDate)
	var dueDate *time.Time
	if req.DueDate != nil {
		d, _ := time.Parse("2006-01-02", *req.DueDate)
		dueDate = &d
	}

	descriptions := make([]string, 0, len(items))
	for _, item := range items {
		descriptions = append(descriptions, item.Description)
	}

	bill := billing.Bill{
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Description: strings.Join(descriptions, ", "),
		Amount:      breakdown.Subtotal,
		TaxAmount:   breakdown.TaxTotal,
		TotalAmount: breakdown.TotalAmount,
		BillDate:    billDate,
		DueDate:     dueDate,
		Status:      billing.BillStatusUnpaid,
		PaidAmount:  decimal.Zero,
	}
	if userID, ok := jwt.UserIDFromContext(ctx); ok {
		bill.CreatedBy = &userID
	}

	var created billing.Bill
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		seq, err := s.billRepo.NextBillNumber(txCtx, billDate.Year())
		if err != nil {
			return err
		}
		bill.BillNumber = fmt.Sprintf("BILL-%d-%04d", billDate.Year(), seq)

		created, err = s.billRepo.Create(txCtx, bill)
		if err != nil {
			return err
		}

		return s.metadataRepo.Put(txCtx, billing.Metadata{
			BillID:         created.ID,
			CompanyName:    companyName,
			CompanyAddress: companyAddress,
			CompanyGSTIN:   companyGSTIN,
			ClientAddress:  req.ClientAddress,
			ClientGSTIN:    req.ClientGSTIN,
			GSTEnabled:     req.GSTEnabled,
			GSTRate:        req.GSTRate,
			CGST:           breakdown.CGST,
			SGST:           breakdown.SGST,
			LineItems:      items,
			BankName:       settings.BankName,
			AccountNumber:  settings.AccountNumber,
			IFSCCode:       settings.IFSCCode,
			UPIID:          settings.UPIID,
		})
	})
	if err != nil {
		return billing.BillResponse{}, err
	}

	return toBillResponse(created), nil
}

// GetBill implements billing.BillingService.
func (s *BillingServiceImpl) GetBill(ctx context.Context, id string) (billing.BillResponse, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return billing.BillResponse{}, err
	}
	return toBillResponse(bill), nil
}

// ListBills implements billing.BillingService.
func (s *BillingServiceImpl) ListBills(ctx context.Context) ([]billing.BillResponse, error) {
	bills, err := s.billRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	responses := make([]billing.BillResponse, 0, len(bills))
	for _, b := range bills {
		responses = append(responses, toBillResponse(b))
	}
	return responses, nil
}

// MarkPaid implements billing.BillingService. Settlement is all-or-nothing:
// the paid amount becomes the bill total.
func (s *BillingServiceImpl) MarkPaid(ctx context.Context, id string) (billing.BillResponse, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return billing.BillResponse{}, err
	}
	switch bill.Status {
	case billing.BillStatusPaid:
		return billing.BillResponse{}, billing.ErrBillAlreadyPaid
	case billing.BillStatusCancelled:
		return billing.BillResponse{}, billing.ErrBillCancelled
	}

	if err := s.billRepo.MarkPaid(ctx, id); err != nil {
		return billing.BillResponse{}, err
	}

	bill.Status = billing.BillStatusPaid
	bill.PaidAmount = bill.TotalAmount
	return toBillResponse(bill), nil
}

// Cancel implements billing.BillingService.
func (s *BillingServiceImpl) Cancel(ctx context.Context, id string) (billing.BillResponse, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return billing.BillResponse{}, err
	}
	switch bill.Status {
	case billing.BillStatusPaid:
		return billing.BillResponse{}, billing.ErrBillAlreadyPaid
	case billing.BillStatusCancelled:
		return billing.BillResponse{}, billing.ErrBillCancelled
	}

	if err := s.billRepo.Cancel(ctx, id); err != nil {
		return billing.BillResponse{}, err
	}

	bill.Status = billing.BillStatusCancelled
	return toBillResponse(bill), nil
}

// RenderInvoice implements billing.BillingService. A bill persisted without a
// metadata sidecar still renders, using company settings for the header.
func (s *BillingServiceImpl) RenderInvoice(ctx context.Context, id string) (string, error) {
	bill, err := s.billRepo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}

	meta, err := s.metadataRepo.GetByBillID(ctx, id)
	if err != nil {
		if !errors.Is(err, billing.ErrMetadataNotFound) {
			return "", fmt.Errorf("failed to load bill metadata: %w", err)
		}
		settings, sErr := s.settingsRepo.Get(ctx)
		if sErr != nil && !errors.Is(sErr, company.ErrSettingsNotFound) {
			return "", fmt.Errorf("failed to load company settings: %w", sErr)
		}
		meta = billing.Metadata{
			BillID:         bill.ID,
			CompanyName:    settings.Name,
			CompanyAddress: settings.Address,
			CompanyGSTIN:   settings.GSTIN,
			GSTEnabled:     bill.TaxAmount.IsPositive(),
			BankName:       settings.BankName,
			AccountNumber:  settings.AccountNumber,
			IFSCCode:       settings.IFSCCode,
			UPIID:          settings.UPIID,
		}
		if meta.GSTEnabled {
			// The GST breakdown was lost with the sidecar; rebuild it from
			// the bill so the printed split still halves the tax evenly.
			half := bill.TaxAmount.Div(decimal.NewFromInt(2))
			meta.CGST = half
			meta.SGST = half
			if bill.Amount.IsPositive() {
				meta.GSTRate = bill.TaxAmount.Mul(decimal.NewFromInt(100)).Div(bill.Amount)
			}
		}
	}

	return billing.RenderInvoice(bill, meta)
}
