package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constrack/backoffice-backend-go/internal/domain/expense"
	"github.com/constrack/backoffice-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExpenseHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	MonthSummary(w http.ResponseWriter, r *http.Request)
}

type ExpenseHandlerImpl struct {
	expenseService expense.ExpenseService
}

func NewExpenseHandler(expenseService expense.ExpenseService) ExpenseHandler {
	return &ExpenseHandlerImpl{expenseService: expenseService}
}

// Create implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq expense.CreateExpenseRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.expenseService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense recorded successfully", created)
}

// GetByID implements ExpenseHandler.
func (h *ExpenseHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	exp, err := h.expenseService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, exp)
}

// List implements ExpenseHandler.
func (h *ExpenseHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearFromQuery(r)

	expenses, err := h.expenseService.List(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, expenses)
}

// Update implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq expense.UpdateExpenseRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update expense decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.expenseService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update expense service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense updated successfully", updated)
}

// Delete implements ExpenseHandler.
func (h *ExpenseHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.expenseService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Expense deleted successfully", nil)
}

// MonthSummary implements ExpenseHandler.
func (h *ExpenseHandlerImpl) MonthSummary(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearFromQuery(r)

	summary, err := h.expenseService.SummarizeMonth(r.Context(), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
