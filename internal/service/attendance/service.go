package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/attendance"
	"github.com/constrack/backoffice-backend-go/internal/domain/employee"
	"github.com/constrack/backoffice-backend-go/internal/pkg/jwt"
	"github.com/constrack/backoffice-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func toAttendanceResponse(a attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		Date:       a.Date.Format("2006-01-02"),
		Status:     string(a.Status),
	}
	if a.EmployeeName != nil {
		resp.EmployeeName = *a.EmployeeName
	}
	if a.EmployeeCode != nil {
		resp.EmployeeCode = *a.EmployeeCode
	}
	return resp
}

// Mark implements attendance.AttendanceService. Re-marking the same day
// replaces the earlier status.
func (s *AttendanceServiceImpl) Mark(ctx context.Context, req attendance.MarkAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	record := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     attendance.Status(req.Status),
	}
	if userID, ok := jwt.UserIDFromContext(ctx); ok {
		record.MarkedBy = &userID
	}

	marked, err := s.attendanceRepo.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	marked.EmployeeName = &emp.FullName
	marked.EmployeeCode = &emp.EmployeeCode
	return toAttendanceResponse(marked), nil
}

// ListByDate implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByDate(ctx context.Context, date string) ([]attendance.AttendanceResponse, error) {
	parsed, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{
			{Field: "date", Message: "must be in YYYY-MM-DD format"},
		}
	}

	records, err := s.attendanceRepo.ListByDate(ctx, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, toAttendanceResponse(a))
	}
	return responses, nil
}

// ListByEmployeeMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.AttendanceResponse, error) {
	if month < 1 || month > 12 {
		return nil, validator.ValidationErrors{
			{Field: "month", Message: "must be between 1 and 12"},
		}
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, a := range records {
		responses = append(responses, toAttendanceResponse(a))
	}
	return responses, nil
}
