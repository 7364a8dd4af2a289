package attendance

import "time"

type Status string

const (
	StatusOnSite     Status = "on_site"
	StatusCheckedOut Status = "checked_out"
)

// Attendance is one worker's presence record for one calendar day.
// At most one record exists per (worker, date); the pair carries a unique
// index so concurrent check-ins cannot both succeed.
type Attendance struct {
	ID           string
	WorkerID     string
	FacilityID   string
	SupervisorID string
	Date         time.Time // calendar day, truncated
	Status       Status
	CheckInTime  time.Time
	CheckOutTime *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// DTO / Join
	WorkerName *string
	WorkerCode *string
}

// IsCheckedOut reports whether the attendance has reached its terminal state.
func (a *Attendance) IsCheckedOut() bool {
	return a.Status == StatusCheckedOut
}
