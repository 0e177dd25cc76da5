package billing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/billing"
	"github.com/constrack/backoffice-backend-go/internal/domain/company"
	"github.com/constrack/backoffice-backend-go/internal/pkg/database"
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBillRepo struct {
	bills  map[string]billing.Bill
	nextID int
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: map[string]billing.Bill{}}
}

func (f *fakeBillRepo) Create(_ context.Context, b billing.Bill) (billing.Bill, error) {
	f.nextID++
	b.ID = fmt.Sprintf("bill-%03d", f.nextID)
	f.bills[b.ID] = b
	return b, nil
}

func (f *fakeBillRepo) GetByID(_ context.Context, id string) (billing.Bill, error) {
	b, ok := f.bills[id]
	if !ok {
		return billing.Bill{}, billing.ErrBillNotFound
	}
	return b, nil
}

func (f *fakeBillRepo) List(_ context.Context) ([]billing.Bill, error) {
	out := make([]billing.Bill, 0, len(f.bills))
	for _, b := range f.bills {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeBillRepo) NextBillNumber(_ context.Context, year int) (int, error) {
	count := 0
	for _, b := range f.bills {
		if b.BillDate.Year() == year {
			count++
		}
	}
	return count + 1, nil
}

func (f *fakeBillRepo) MarkPaid(_ context.Context, id string) error {
	b := f.bills[id]
	b.Status = billing.BillStatusPaid
	b.PaidAmount = b.TotalAmount
	f.bills[id] = b
	return nil
}

func (f *fakeBillRepo) Cancel(_ context.Context, id string) error {
	b := f.bills[id]
	b.Status = billing.BillStatusCancelled
	f.bills[id] = b
	return nil
}

type fakeMetadataRepo struct {
	byBillID map[string]billing.Metadata
}

func newFakeMetadataRepo() *fakeMetadataRepo {
	return &fakeMetadataRepo{byBillID: map[string]billing.Metadata{}}
}

func (f *fakeMetadataRepo) Put(_ context.Context, m billing.Metadata) error {
	f.byBillID[m.BillID] = m
	return nil
}

func (f *fakeMetadataRepo) GetByBillID(_ context.Context, billID string) (billing.Metadata, error) {
	m, ok := f.byBillID[billID]
	if !ok {
		return billing.Metadata{}, billing.ErrMetadataNotFound
	}
	return m, nil
}

type fakeSettingsRepo struct {
	settings company.Settings
	missing  bool
}

func (f *fakeSettingsRepo) Get(_ context.Context) (company.Settings, error) {
	if f.missing {
		return company.Settings{}, company.ErrSettingsNotFound
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(_ context.Context, _ company.UpdateSettingsRequest) error {
	return nil
}

type billingFixture struct {
	svc      billing.BillingService
	billRepo *fakeBillRepo
	metaRepo *fakeMetadataRepo
	mock     pgxmock.PgxPoolIface
}

func newBillingFixture(t *testing.T) *billingFixture {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	billRepo := newFakeBillRepo()
	metaRepo := newFakeMetadataRepo()
	settingsRepo := &fakeSettingsRepo{settings: company.Settings{
		Name:          "Sharma Constructions",
		Address:       "14 MG Road, Pune",
		GSTIN:         "27ABCDE1234F1Z5",
		BankName:      "State Bank of India",
		AccountNumber: "3921845067",
		IFSCCode:      "SBIN0001234",
		UPIID:         "sharmaconstructions@sbi",
	}}

	svc := NewBillingService(&database.DB{Pool: mock}, billRepo, metaRepo, settingsRepo)
	return &billingFixture{svc: svc, billRepo: billRepo, metaRepo: metaRepo, mock: mock}
}

func validCreateRequest() billing.CreateBillRequest {
	return billing.CreateBillRequest{
		ClientName:    "Mehta Developers",
		ClientAddress: "7 FC Road, Pune",
		ClientGSTIN:   "27FGHIJ5678K1Z3",
		LineItems: []billing.LineItemRequest{
			{Description: "Excavation work", Amount: decimal.NewFromInt(50000)},
			{Description: "RCC slab casting", Amount: decimal.NewFromInt(150000)},
		},
		GSTEnabled: true,
		GSTRate:    decimal.NewFromInt(18),
		BillDate:   "2025-06-15",
	}
}

func TestCreateBill_NumbersAndTotals(t *testing.T) {
	f := newBillingFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.CreateBill(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "BILL-2025-0001", resp.BillNumber)
	assert.Equal(t, "unpaid", resp.Status)
	assert.Equal(t, "Excavation work, RCC slab casting", resp.Description)
	assert.True(t, resp.Amount.Equal(decimal.NewFromInt(200000)))
	assert.True(t, resp.TaxAmount.Equal(decimal.NewFromInt(36000)))
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(236000)))
	assert.True(t, resp.PaidAmount.IsZero())

	require.NoError(t, f.mock.ExpectationsWereMet())
}

func TestCreateBill_SequentialWithinYear(t *testing.T) {
	f := newBillingFixture(t)

	for i := 0; i < 2; i++ {
		f.mock.ExpectBegin()
		f.mock.ExpectCommit()
	}

	first, err := f.svc.CreateBill(context.Background(), validCreateRequest())
	require.NoError(t, err)
	second, err := f.svc.CreateBill(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "BILL-2025-0001", first.BillNumber)
	assert.Equal(t, "BILL-2025-0002", second.BillNumber)
}

func TestCreateBill_MetadataCarriesSettings(t *testing.T) {
	f := newBillingFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	resp, err := f.svc.CreateBill(context.Background(), validCreateRequest())
	require.NoError(t, err)

	meta, err := f.metaRepo.GetByBillID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sharma Constructions", meta.CompanyName)
	assert.Equal(t, "27ABCDE1234F1Z5", meta.CompanyGSTIN)
	assert.Equal(t, "SBIN0001234", meta.IFSCCode)
	assert.Len(t, meta.LineItems, 2)
	// CGST and SGST split the tax evenly.
	assert.True(t, meta.CGST.Equal(decimal.NewFromInt(18000)))
	assert.True(t, meta.SGST.Equal(decimal.NewFromInt(18000)))
}

func TestCreateBill_CompanyOverrideWins(t *testing.T) {
	f := newBillingFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	req := validCreateRequest()
	req.CompanyName = "Sharma Infra Projects"
	req.CompanyGSTIN = "29ABCDE1234F1Z5"

	resp, err := f.svc.CreateBill(context.Background(), req)
	require.NoError(t, err)

	meta, err := f.metaRepo.GetByBillID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sharma Infra Projects", meta.CompanyName)
	assert.Equal(t, "29ABCDE1234F1Z5", meta.CompanyGSTIN)
	// Address was not overridden, so settings fill it.
	assert.Equal(t, "14 MG Road, Pune", meta.CompanyAddress)
}

func TestCreateBill_ValidationFailures(t *testing.T) {
	f := newBillingFixture(t)

	req := validCreateRequest()
	req.ClientName = "  "
	req.LineItems = nil

	_, err := f.svc.CreateBill(context.Background(), req)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	fields := make([]string, 0, len(errs))
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	assert.Contains(t, fields, "client_name")
	assert.Contains(t, fields, "line_items")
}

func TestComputeTax_GSTDisabled(t *testing.T) {
	f := newBillingFixture(t)

	resp, err := f.svc.ComputeTax(context.Background(), billing.ComputeTaxRequest{
		LineItems: []billing.LineItemRequest{
			{Description: "Plumbing", Amount: decimal.NewFromInt(12500)},
		},
		GSTEnabled: false,
		GSTRate:    decimal.NewFromInt(18),
	})
	require.NoError(t, err)

	assert.True(t, resp.TaxTotal.IsZero())
	assert.True(t, resp.TotalAmount.Equal(decimal.NewFromInt(12500)))
}

func TestMarkPaid_SettlesFullAmount(t *testing.T) {
	f := newBillingFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	created, err := f.svc.CreateBill(context.Background(), validCreateRequest())
	require.NoError(t, err)

	paid, err := f.svc.MarkPaid(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "paid", paid.Status)
	assert.True(t, paid.PaidAmount.Equal(paid.TotalAmount))

	_, err = f.svc.MarkPaid(context.Background(), created.ID)
	assert.ErrorIs(t, err, billing.ErrBillAlreadyPaid)
}

func TestCancel_RejectsPaidBill(t *testing.T) {
	f := newBillingFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	created, err := f.svc.CreateBill(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = f.svc.MarkPaid(context.Background(), created.ID)
	require.NoError(t, err)

	_, err = f.svc.Cancel(context.Background(), created.ID)
	assert.ErrorIs(t, err, billing.ErrBillAlreadyPaid)
}

func TestRenderInvoice_UsesStoredMetadata(t *testing.T) {
	f := newBillingFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	created, err := f.svc.CreateBill(context.Background(), validCreateRequest())
	require.NoError(t, err)

	html, err := f.svc.RenderInvoice(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Contains(t, html, "BILL-2025-0001")
	assert.Contains(t, html, "Sharma Constructions")
	assert.Contains(t, html, "Mehta Developers")
	assert.Contains(t, html, "Excavation work")
	assert.Contains(t, html, "CGST")
}

func TestRenderInvoice_FallsBackToSettings(t *testing.T) {
	f := newBillingFixture(t)

	// A bill persisted outside CreateBill has no metadata sidecar.
	bill, err := f.billRepo.Create(context.Background(), billing.Bill{
		BillNumber:  "BILL-2025-0042",
		ClientName:  "Patil Associates",
		Description: "Road repair",
		Amount:      decimal.NewFromInt(80000),
		TaxAmount:   decimal.Zero,
		TotalAmount: decimal.NewFromInt(80000),
		BillDate:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Status:      billing.BillStatusUnpaid,
		PaidAmount:  decimal.Zero,
	})
	require.NoError(t, err)

	html, err := f.svc.RenderInvoice(context.Background(), bill.ID)
	require.NoError(t, err)

	assert.Contains(t, html, "BILL-2025-0042")
	assert.Contains(t, html, "Sharma Constructions")
	assert.Contains(t, html, "Patil Associates")
	assert.NotContains(t, html, "CGST")
}

func TestRenderInvoice_RebuildsGSTBreakdownWithoutMetadata(t *testing.T) {
	f := newBillingFixture(t)

	// A GST bill without its sidecar must still print a consistent split.
	bill, err := f.billRepo.Create(context.Background(), billing.Bill{
		BillNumber:  "BILL-2025-0043",
		ClientName:  "Patil Associates",
		Description: "Borewell drilling",
		Amount:      decimal.NewFromInt(2000),
		TaxAmount:   decimal.NewFromInt(360),
		TotalAmount: decimal.NewFromInt(2360),
		BillDate:    time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		Status:      billing.BillStatusUnpaid,
		PaidAmount:  decimal.Zero,
	})
	require.NoError(t, err)

	html, err := f.svc.RenderInvoice(context.Background(), bill.ID)
	require.NoError(t, err)

	assert.Contains(t, html, "TAX INVOICE (GST)")
	assert.Contains(t, html, "CGST (9%)")
	assert.Contains(t, html, "SGST (9%)")
	assert.Contains(t, html, "180.00")
	assert.Contains(t, html, "GST (18%)")
	assert.NotContains(t, html, "GST (0%)")
}
