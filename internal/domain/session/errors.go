package session

import "errors"

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionNotActive     = errors.New("session is not active")
	ErrSessionNotClosed     = errors.New("session must be closed before validation")
	ErrSessionAlreadyActive = errors.New("worker already has an active session")
	ErrAttendanceClosed     = errors.New("attendance is already checked out")
)
