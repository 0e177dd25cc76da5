package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/constrack/backoffice-backend-go/internal/domain/payroll"
	"github.com/constrack/backoffice-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	CreateStructure(w http.ResponseWriter, r *http.Request)
	GetEmployeeStructures(w http.ResponseWriter, r *http.Request)
	DeleteStructure(w http.ResponseWriter, r *http.Request)
	ComputeSalary(w http.ResponseWriter, r *http.Request)
	SavePayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	DownloadPayslip(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// CreateStructure implements PayrollHandler. A new structure for the same
// employee supersedes older ones from its effective date onward.
func (h *PayrollHandlerImpl) CreateStructure(w http.ResponseWriter, r *http.Request) {
	var structureReq payroll.UpsertStructureRequest

	if err := json.NewDecoder(r.Body).Decode(&structureReq); err != nil {
		slog.Error("Create salary structure decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	structureReq.EmployeeID = chi.URLParam(r, "employeeID")

	created, err := h.payrollService.CreateStructure(r.Context(), structureReq)
	if err != nil {
		slog.Error("Create salary structure service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary structure created successfully", created)
}

// GetEmployeeStructures implements PayrollHandler.
func (h *PayrollHandlerImpl) GetEmployeeStructures(w http.ResponseWriter, r *http.Request) {
	structures, err := h.payrollService.GetEmployeeStructures(r.Context(), chi.URLParam(r, "employeeID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, structures)
}

// DeleteStructure implements PayrollHandler.
func (h *PayrollHandlerImpl) DeleteStructure(w http.ResponseWriter, r *http.Request) {
	if err := h.payrollService.DeleteStructure(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary structure deleted successfully", nil)
}

// ComputeSalary implements PayrollHandler. Preview only; nothing persists.
func (h *PayrollHandlerImpl) ComputeSalary(w http.ResponseWriter, r *http.Request) {
	var computeReq payroll.ComputeSalaryRequest

	if err := json.NewDecoder(r.Body).Decode(&computeReq); err != nil {
		slog.Error("Compute salary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	breakdown, err := h.payrollService.ComputeSalary(r.Context(), computeReq)
	if err != nil {
		slog.Error("Compute salary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, breakdown)
}

// SavePayment implements PayrollHandler.
func (h *PayrollHandlerImpl) SavePayment(w http.ResponseWriter, r *http.Request) {
	var saveReq payroll.SavePaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&saveReq); err != nil {
		slog.Error("Save salary payment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	saved, err := h.payrollService.SavePayment(r.Context(), saveReq)
	if err != nil {
		slog.Error("Save salary payment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Salary payment saved successfully", saved)
}

// ListPayments implements PayrollHandler.
func (h *PayrollHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearFromQuery(r)

	payments, err := h.payrollService.ListPayments(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payments)
}

// MarkPaid implements PayrollHandler.
func (h *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	paid, err := h.payrollService.MarkPaid(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Mark salary paid service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Salary payment marked as paid", paid)
}

// DownloadPayslip implements PayrollHandler. Streams the payslip PDF.
func (h *PayrollHandlerImpl) DownloadPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	pdfBytes, err := h.payrollService.RenderPayslip(r.Context(), id)
	if err != nil {
		slog.Error("Render payslip service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payslip-%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdfBytes)
}
