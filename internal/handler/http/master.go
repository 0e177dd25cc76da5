package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constrack/backoffice-backend-go/internal/domain/master/category"
	"github.com/constrack/backoffice-backend-go/internal/domain/master/department"
	"github.com/constrack/backoffice-backend-go/internal/handler/http/response"
	"github.com/constrack/backoffice-backend-go/internal/service/master"
	"github.com/go-chi/chi/v5"
)

type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreateCategory(w http.ResponseWriter, r *http.Request)
	GetCategory(w http.ResponseWriter, r *http.Request)
	ListCategories(w http.ResponseWriter, r *http.Request)
	UpdateCategory(w http.ResponseWriter, r *http.Request)
	DeleteCategory(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &MasterHandlerImpl{masterService: masterService}
}

// ==================== DEPARTMENT OPERATIONS ====================

// CreateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var createReq department.CreateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create department decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateDepartment(r.Context(), createReq)
	if err != nil {
		slog.Error("Create department service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Department created successfully", created)
}

// GetDepartment implements MasterHandler.
func (h *MasterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	dept, err := h.masterService.GetDepartment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, dept)
}

// ListDepartments implements MasterHandler.
func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	departments, err := h.masterService.ListDepartments(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, departments)
}

// UpdateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var updateReq department.UpdateDepartmentRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update department decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateDepartment(r.Context(), updateReq); err != nil {
		slog.Error("Update department service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Department updated successfully", nil)
}

// DeleteDepartment implements MasterHandler.
func (h *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteDepartment(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted successfully", nil)
}

// ==================== EXPENSE CATEGORY OPERATIONS ====================

// CreateCategory implements MasterHandler.
func (h *MasterHandlerImpl) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var createReq category.CreateCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create expense category decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.masterService.CreateCategory(r.Context(), createReq)
	if err != nil {
		slog.Error("Create expense category service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Expense category created successfully", created)
}

// GetCategory implements MasterHandler.
func (h *MasterHandlerImpl) GetCategory(w http.ResponseWriter, r *http.Request) {
	cat, err := h.masterService.GetCategory(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cat)
}

// ListCategories implements MasterHandler.
func (h *MasterHandlerImpl) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.masterService.ListCategories(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, categories)
}

// UpdateCategory implements MasterHandler.
func (h *MasterHandlerImpl) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var updateReq category.UpdateCategoryRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update expense category decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	if err := h.masterService.UpdateCategory(r.Context(), updateReq); err != nil {
		slog.Error("Update expense category service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Expense category updated successfully", nil)
}

// DeleteCategory implements MasterHandler.
func (h *MasterHandlerImpl) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Expense category deleted successfully", nil)
}
