package bag

import (
	"fmt"
	"strings"

	"github.com/agroverde/packhouse-backend-go/internal/pkg/validator"
)

type RecordBagRequest struct {
	BagNumber  string      `json:"bag_number"`
	ExporterID string      `json:"exporter_id"`
	FacilityID string      `json:"facility_id"`
	Date       string      `json:"date"` // YYYY-MM-DD
	WeightKG   float64     `json:"weight_kg"`
	Workers    []BagWorker `json:"workers"`
}

func (r *RecordBagRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BagNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "bag_number",
			Message: "bag_number is required",
		})
	} else if !validator.IsValidBagNumber(r.BagNumber) {
		errs = append(errs, validator.ValidationError{
			Field:   "bag_number",
			Message: "bag_number must be 3-30 letters, digits or dashes",
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

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.WeightKG < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "weight_kg",
			Message: "weight_kg must not be negative",
		})
	}

	if len(r.Workers) < MinWorkers || len(r.Workers) > MaxWorkers {
		errs = append(errs, validator.ValidationError{
			Field:   "workers",
			Message: fmt.Sprintf("a bag is produced by %d to %d workers, got %d", MinWorkers, MaxWorkers, len(r.Workers)),
		})
	}
	for i, w := range r.Workers {
		if validator.IsEmpty(w.WorkerID) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("workers[%d].worker_id", i),
				Message: "worker_id is required",
			})
		}
		if validator.IsEmpty(w.SessionID) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("workers[%d].session_id", i),
				Message: "session_id is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NormalizedBagNumber returns the bag number in canonical uppercase form,
// which is the form stored and compared against the unique index.
func (r *RecordBagRequest) NormalizedBagNumber() string {
	return strings.ToUpper(strings.TrimSpace(r.BagNumber))
}

type ProgressStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *ProgressStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, []string{"validated", "locked"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of validated, locked",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type BagFilter struct {
	ExporterID *string
	FacilityID *string
	Date       *string
	Status     *string
	Page       int
	Limit      int
}

func (f *BagFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{"completed", "validated", "locked"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of completed, validated, locked",
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

type BagResponse struct {
	ID           string      `json:"id"`
	BagNumber    string      `json:"bag_number"`
	ExporterID   string      `json:"exporter_id"`
	ExporterName *string     `json:"exporter_name,omitempty"`
	FacilityID   string      `json:"facility_id"`
	SupervisorID string      `json:"supervisor_id"`
	Date         string      `json:"date"`
	WeightKG     float64     `json:"weight_kg"`
	Status       string      `json:"status"`
	Workers      []BagWorker `json:"workers"`
	CreatedAt    string      `json:"created_at"`
}

type ListBagsResponse struct {
	TotalCount int64         `json:"total_count"`
	Page       int           `json:"page"`
	Limit      int           `json:"limit"`
	Bags       []BagResponse `json:"bags"`
}
