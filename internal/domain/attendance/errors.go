package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn   = errors.New("worker already has an attendance record for today")
	ErrAlreadyCheckedOut  = errors.New("attendance is already checked out")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
