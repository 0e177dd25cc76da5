package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/constrack/backoffice-backend-go/internal/domain/attendance"
	"github.com/constrack/backoffice-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListByEmployeeMonth(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// Mark implements AttendanceHandler. Marking the same employee and date again
// overwrites the earlier status.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	var markReq attendance.MarkAttendanceRequest

	if err := json.NewDecoder(r.Body).Decode(&markReq); err != nil {
		slog.Error("Mark attendance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	marked, err := h.attendanceService.Mark(r.Context(), markReq)
	if err != nil {
		slog.Error("Mark attendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance marked successfully", marked)
}

// ListByDate implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	records, err := h.attendanceService.ListByDate(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// ListByEmployeeMonth implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ListByEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	month, year := monthYearFromQuery(r)

	records, err := h.attendanceService.ListByEmployeeMonth(r.Context(), chi.URLParam(r, "employeeID"), month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}
