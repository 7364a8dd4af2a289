package session

import (
	"github.com/agroverde/packhouse-backend-go/internal/pkg/validator"
)

type OpenSessionRequest struct {
	AttendanceID string `json:"attendance_id"`
	ExporterID   string `json:"exporter_id"`
	FacilityID   string `json:"facility_id"`
}

func (r *OpenSessionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}
	if validator.IsEmpty(r.ExporterID) {
		errs = append(errs, validator.ValidationError{
			Field:   "exporter_id",
			Message: "exporter_id is required",
		})
	}
	if validator.IsEmpty(r.FacilityID) {
		errs = append(errs, validator.ValidationError{
			Field:   "facility_id",
			Message: "facility_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SessionFilter struct {
	AttendanceID *string
	WorkerID     *string
	ExporterID   *string
	Status       *string
	Date         *string
	Page         int
	Limit        int
}

func (f *SessionFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{"active", "closed", "validated"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, closed, validated",
		})
	}

	if f.Date != nil && *f.Date != "" {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SessionResponse struct {
	ID           string  `json:"id"`
	AttendanceID string  `json:"attendance_id"`
	WorkerID     string  `json:"worker_id"`
	WorkerName   *string `json:"worker_name,omitempty"`
	ExporterID   string  `json:"exporter_id"`
	ExporterName *string `json:"exporter_name,omitempty"`
	FacilityID   string  `json:"facility_id"`
	SupervisorID string  `json:"supervisor_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	StartTime    string  `json:"start_time"`
	EndTime      *string `json:"end_time,omitempty"`

	// DurationHours is live for active sessions: it is evaluated against
	// the clock at response time and keeps growing until the session closes.
	DurationHours float64 `json:"duration_hours"`
}

type ListSessionsResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Sessions   []SessionResponse `json:"sessions"`
}
