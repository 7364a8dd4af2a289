package session

import (
	"context"
	"time"
)

// SessionRepository defines data access for labor sessions.
type SessionRepository interface {
	Create(ctx context.Context, s Session) (Session, error)

	GetByID(ctx context.Context, id string) (Session, error)

	// GetActiveByWorker returns the worker's currently active session,
	// nil when there is none.
	GetActiveByWorker(ctx context.Context, workerID string) (*Session, error)

	// Close transitions active -> closed with the given end time. Returns
	// ErrSessionNotActive when the session exists but is not active, and
	// ErrSessionNotFound when it does not exist.
	Close(ctx context.Context, id string, endTime time.Time) (Session, error)

	// CloseAllActiveByAttendance closes every active session under an
	// attendance in one statement and reports how many rows changed.
	// Calling it again is a no-op returning zero, which makes check-out
	// retries safe.
	CloseAllActiveByAttendance(ctx context.Context, attendanceID string, endTime time.Time) (int64, error)

	// MarkValidated transitions closed -> validated.
	MarkValidated(ctx context.Context, id string) (Session, error)

	List(ctx context.Context, filter SessionFilter) ([]Session, int64, error)
}
