package session

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusClosed    Status = "closed"
	StatusValidated Status = "validated"
)

// Session is one continuous span of labor under a single exporter and
// facility, nested inside an attendance day. Its worker and date always
// match the parent attendance.
type Session struct {
	ID           string
	AttendanceID string
	WorkerID     string
	ExporterID   string
	FacilityID   string
	SupervisorID string
	Date         time.Time
	Status       Status
	StartTime    time.Time
	EndTime      *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	WorkerName   *string
	ExporterName *string
}

// IsActive reports whether the session is still accruing time.
func (s *Session) IsActive() bool {
	return s.Status == StatusActive
}

// Duration returns the session's length of labor. Closed and validated
// sessions measure start to end; active sessions measure start to now, so
// the value grows as now advances. A start time after the reference instant
// is a data error: Duration returns 0 and ok=false, never a negative span.
func Duration(s Session, now time.Time) (time.Duration, bool) {
	end := now
	if s.EndTime != nil {
		end = *s.EndTime
	}
	if s.StartTime.After(end) {
		return 0, false
	}
	return end.Sub(s.StartTime), true
}
