package attendance

import "time"

// Status enum. Half days count as 0.5 of a present day in salary math;
// leave and holiday days are unpaid.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half_day"
	StatusLeave   Status = "leave"
	StatusHoliday Status = "holiday"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave, StatusHoliday:
		return true
	}
	return false
}

// Attendance is one employee's record for one calendar day.
// Unique per (employee_id, date); re-marking updates in place.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	MarkedBy   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
}
