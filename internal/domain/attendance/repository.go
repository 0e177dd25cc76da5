package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// Upsert inserts the record or, when one exists for (employee_id, date),
	// replaces its status.
	Upsert(ctx context.Context, a Attendance) (Attendance, error)
	ListByDate(ctx context.Context, date time.Time) ([]Attendance, error)
	ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]Attendance, error)
	// StatusesForMonth returns only the per-day statuses recorded for the
	// employee in the month, in date order. Days with no row are omitted.
	StatusesForMonth(ctx context.Context, employeeID string, month, year int) ([]Status, error)
}
