package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constrack/backoffice-backend-go/internal/domain/company"
	"github.com/constrack/backoffice-backend-go/internal/handler/http/response"
)

type CompanyHandler interface {
	GetSettings(w http.ResponseWriter, r *http.Request)
	UpdateSettings(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	settingsService company.SettingsService
}

func NewCompanyHandler(settingsService company.SettingsService) CompanyHandler {
	return &CompanyHandlerImpl{settingsService: settingsService}
}

// GetSettings implements CompanyHandler.
func (h *CompanyHandlerImpl) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settingsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, settings)
}

// UpdateSettings implements CompanyHandler.
func (h *CompanyHandlerImpl) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var updateReq company.UpdateSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update company settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.settingsService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update company settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company settings updated successfully", updated)
}
