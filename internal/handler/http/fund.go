package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constrack/backoffice-backend-go/internal/domain/fund"
	"github.com/constrack/backoffice-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type FundHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type FundHandlerImpl struct {
	fundService fund.FundService
}

func NewFundHandler(fundService fund.FundService) FundHandler {
	return &FundHandlerImpl{fundService: fundService}
}

// Create implements FundHandler.
func (h *FundHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq fund.CreateTransactionRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create fund transaction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.fundService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create fund transaction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Fund transaction recorded successfully", created)
}

// List implements FundHandler.
func (h *FundHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	txns, err := h.fundService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, txns)
}

// Delete implements FundHandler.
func (h *FundHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.fundService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Fund transaction deleted successfully", nil)
}

// Summary implements FundHandler.
func (h *FundHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.fundService.Summarize(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}
