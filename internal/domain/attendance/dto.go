package attendance

import (
	"github.com/agroverde/packhouse-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	WorkerID   string `json:"worker_id"`
	FacilityID string `json:"facility_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
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

type CheckOutRequest struct {
	AttendanceID string `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendanceFilter is the typed query filter for attendance listings.
// Each optional field maps to one predicate; nothing is shaped dynamically.
type AttendanceFilter struct {
	WorkerID   *string
	FacilityID *string
	Status     *string
	Date       *string
	StartDate  *string
	EndDate    *string
	Page       int
	Limit      int
	SortBy     string
	SortOrder  string
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{"on_site", "checked_out"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of on_site, checked_out",
		})
	}

	for field, v := range map[string]*string{
		"date":       f.Date,
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if v != nil && *v != "" {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	WorkerID     string  `json:"worker_id"`
	WorkerName   *string `json:"worker_name,omitempty"`
	WorkerCode   *string `json:"worker_code,omitempty"`
	FacilityID   string  `json:"facility_id"`
	SupervisorID string  `json:"supervisor_id"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
}

// CheckOutResponse reports the closed attendance together with how many
// sessions were force-closed by this call. A retried check-out that finds
// its sessions already closed reports zero.
type CheckOutResponse struct {
	Attendance     AttendanceResponse `json:"attendance"`
	SessionsClosed int64              `json:"sessions_closed"`
}

type ListAttendanceResponse struct {
	TotalCount  int64                `json:"total_count"`
	Page        int                  `json:"page"`
	Limit       int                  `json:"limit"`
	Attendances []AttendanceResponse `json:"attendances"`
}
