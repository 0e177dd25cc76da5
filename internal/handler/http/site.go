package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constrack/backoffice-backend-go/internal/domain/site"
	"github.com/constrack/backoffice-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SiteHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	AddProgress(w http.ResponseWriter, r *http.Request)
	ListProgress(w http.ResponseWriter, r *http.Request)
	DeleteProgress(w http.ResponseWriter, r *http.Request)
}

type SiteHandlerImpl struct {
	siteService site.SiteService
}

func NewSiteHandler(siteService site.SiteService) SiteHandler {
	return &SiteHandlerImpl{siteService: siteService}
}

// Create implements SiteHandler.
func (h *SiteHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq site.CreateSiteRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create site decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.siteService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create site service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Site created successfully", created)
}

// GetByID implements SiteHandler.
func (h *SiteHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	st, err := h.siteService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, st)
}

// List implements SiteHandler.
func (h *SiteHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	sites, err := h.siteService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, sites)
}

// Update implements SiteHandler.
func (h *SiteHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq site.UpdateSiteRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update site decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	updated, err := h.siteService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update site service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site updated successfully", updated)
}

// Delete implements SiteHandler.
func (h *SiteHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.siteService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Site deleted successfully", nil)
}

// AddProgress implements SiteHandler.
func (h *SiteHandlerImpl) AddProgress(w http.ResponseWriter, r *http.Request) {
	var progressReq site.AddProgressRequest

	if err := json.NewDecoder(r.Body).Decode(&progressReq); err != nil {
		slog.Error("Add site progress decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	progressReq.SiteID = chi.URLParam(r, "id")

	created, err := h.siteService.AddProgress(r.Context(), progressReq)
	if err != nil {
		slog.Error("Add site progress service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Progress update added successfully", created)
}

// ListProgress implements SiteHandler.
func (h *SiteHandlerImpl) ListProgress(w http.ResponseWriter, r *http.Request) {
	updates, err := h.siteService.ListProgress(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updates)
}

// DeleteProgress implements SiteHandler.
func (h *SiteHandlerImpl) DeleteProgress(w http.ResponseWriter, r *http.Request) {
	if err := h.siteService.DeleteProgress(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "progressID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Progress update deleted successfully", nil)
}
