package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrInvalidStatus      = errors.New("invalid attendance status")
	ErrUnknownEmployee    = errors.New("attendance references unknown employee")
)
