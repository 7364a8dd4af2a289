package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
type AttendanceRepository interface {
	// Create inserts a new attendance row. The (worker_id, date) unique
	// index rejects a second record for the same day; the implementation
	// maps that violation to ErrAlreadyCheckedIn so concurrent check-ins
	// resolve to exactly one success.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByWorkerAndDate retrieves the day's record, nil if none exists.
	GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*Attendance, error)

	// SetCheckedOut transitions on_site -> checked_out, stamping the
	// check-out time. Returns ErrAlreadyCheckedOut when the row is not
	// on_site any more, and ErrAttendanceNotFound when it does not exist.
	SetCheckedOut(ctx context.Context, id string, checkOutTime time.Time) (Attendance, error)

	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
}
