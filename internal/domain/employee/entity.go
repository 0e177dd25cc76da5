package employee

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) Valid() bool {
	return s == StatusActive || s == StatusInactive
}

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Email        *string
	PhoneNumber  string
	Designation  string
	DepartmentID *string
	Address      *string
	JoinDate     time.Time
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined for list views.
	DepartmentName *string
}
