package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constrack/backoffice-backend-go/internal/domain/billing"
	"github.com/constrack/backoffice-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BillingHandler interface {
	ComputeTax(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Invoice(w http.ResponseWriter, r *http.Request)
}

type BillingHandlerImpl struct {
	billingService billing.BillingService
}

func NewBillingHandler(billingService billing.BillingService) BillingHandler {
	return &BillingHandlerImpl{billingService: billingService}
}

// ComputeTax implements BillingHandler. Preview of the GST breakdown before a
// bill is saved.
func (h *BillingHandlerImpl) ComputeTax(w http.ResponseWriter, r *http.Request) {
	var computeReq billing.ComputeTaxRequest

	if err := json.NewDecoder(r.Body).Decode(&computeReq); err != nil {
		slog.Error("Compute tax decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	breakdown, err := h.billingService.ComputeTax(r.Context(), computeReq)
	if err != nil {
		slog.Error("Compute tax service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdown)
}

// Create implements BillingHandler.
func (h *BillingHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq billing.CreateBillRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create bill decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.billingService.CreateBill(r.Context(), createReq)
	if err != nil {
		slog.Error("Create bill service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bill created successfully", created)
}

// GetByID implements BillingHandler.
func (h *BillingHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	bill, err := h.billingService.GetBill(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, bill)
}

// List implements BillingHandler.
func (h *BillingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billingService.ListBills(r.Context())
	if err != nil {
		slog.Error("List bills service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, bills)
}

// MarkPaid implements BillingHandler.
func (h *BillingHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	paid, err := h.billingService.MarkPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Mark bill paid service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Bill marked as paid", paid)
}

// Cancel implements BillingHandler.
func (h *BillingHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	cancelled, err := h.billingService.Cancel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Cancel bill service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Bill cancelled", cancelled)
}

// Invoice implements BillingHandler. Serves the printable HTML document.
func (h *BillingHandlerImpl) Invoice(w http.ResponseWriter, r *http.Request) {
	html, err := h.billingService.RenderInvoice(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Render invoice service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}
