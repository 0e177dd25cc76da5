package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/constrack/backoffice-backend-go/internal/domain/attendance"
	"github.com/constrack/backoffice-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, a attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (id, employee_id, date, status, marked_by, created_at, updated_at)
		VALUES (gen_random_uuid(), $1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (employee_id, date)
		DO UPDATE SET status = EXCLUDED.status, marked_by = EXCLUDED.marked_by, updated_at = NOW()
		RETURNING id, employee_id, date, status, marked_by, created_at, updated_at
	`

	var result attendance.Attendance
	err := q.QueryRow(ctx, query, a.EmployeeID, a.Date, a.Status, a.MarkedBy).Scan(
		&result.ID,
		&result.EmployeeID,
		&result.Date,
		&result.Status,
		&result.MarkedBy,
		&result.CreatedAt,
		&result.UpdatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			return attendance.Attendance{}, attendance.ErrUnknownEmployee
		}
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return result, nil
}

// ListByDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.marked_by, a.created_at, a.updated_at,
			e.full_name, e.employee_code
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.date = $1
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by date: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID,
			&a.EmployeeID,
			&a.Date,
			&a.Status,
			&a.MarkedBy,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.EmployeeName,
			&a.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// ListByEmployeeMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.employee_id, a.date, a.status, a.marked_by, a.created_at, a.updated_at,
			e.full_name, e.employee_code
		FROM attendance a
		JOIN employees e ON e.id = a.employee_id
		WHERE a.employee_id = $1
			AND EXTRACT(MONTH FROM a.date) = $2
			AND EXTRACT(YEAR FROM a.date) = $3
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance by month: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var a attendance.Attendance
		err := rows.Scan(
			&a.ID,
			&a.EmployeeID,
			&a.Date,
			&a.Status,
			&a.MarkedBy,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.EmployeeName,
			&a.EmployeeCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return records, nil
}

// StatusesForMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) StatusesForMonth(ctx context.Context, employeeID string, month, year int) ([]attendance.Status, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT status
		FROM attendance
		WHERE employee_id = $1
			AND EXTRACT(MONTH FROM date) = $2
			AND EXTRACT(YEAR FROM date) = $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance statuses: %w", err)
	}
	defer rows.Close()

	var statuses []attendance.Status
	for rows.Next() {
		var s attendance.Status
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("failed to scan attendance status: %w", err)
		}
		statuses = append(statuses, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return statuses, nil
}
