package worker

import "time"

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

type Worker struct {
	ID            string
	Code          string // unique business code, uppercase
	FullName      string
	CooperativeID string
	FacilityID    *string
	Status        Status

	// Consent attributes are written once at enrollment and never mutated.
	ConsentSignedAt    time.Time
	ConsentDocumentRef string

	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO / Join
	CooperativeName *string
	FacilityName    *string
}

// IsActive reports whether the worker may be checked in.
func (w *Worker) IsActive() bool {
	return w.Status == StatusActive
}
