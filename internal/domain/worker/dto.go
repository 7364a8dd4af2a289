package worker

import (
	"strings"

	"github.com/agroverde/packhouse-backend-go/internal/pkg/validator"
)

type EnrollWorkerRequest struct {
	Code               string  `json:"code"`
	FullName           string  `json:"full_name"`
	CooperativeID      string  `json:"cooperative_id"`
	FacilityID         *string `json:"facility_id"`
	ConsentSignedAt    string  `json:"consent_signed_at"` // RFC3339
	ConsentDocumentRef string  `json:"consent_document_ref"`
}

func (r *EnrollWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if !validator.IsValidWorkerCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must look like COOP-0042 (prefix, dash, 4 digits)",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}

	if validator.IsEmpty(r.CooperativeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "cooperative_id",
			Message: "cooperative_id is required",
		})
	}

	if validator.IsEmpty(r.ConsentSignedAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "consent_signed_at",
			Message: "consent_signed_at is required",
		})
	} else if _, ok := validator.IsValidDateTime(r.ConsentSignedAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "consent_signed_at",
			Message: "consent_signed_at must be an RFC3339 timestamp",
		})
	}

	if validator.IsEmpty(r.ConsentDocumentRef) {
		errs = append(errs, validator.ValidationError{
			Field:   "consent_document_ref",
			Message: "consent_document_ref is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NormalizedCode returns the worker code in canonical uppercase form.
func (r *EnrollWorkerRequest) NormalizedCode() string {
	return strings.ToUpper(strings.TrimSpace(r.Code))
}

type UpdateWorkerRequest struct {
	ID         string  `json:"-"`
	FullName   *string `json:"full_name"`
	FacilityID *string `json:"facility_id"`
	Status     *string `json:"status"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{"active", "inactive", "suspended"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, inactive, suspended",
		})
	}

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be blank",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerFilter struct {
	CooperativeID *string
	FacilityID    *string
	Status        *string
	Search        *string
	Page          int
	Limit         int
}

func (f *WorkerFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{"active", "inactive", "suspended"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of active, inactive, suspended",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerResponse struct {
	ID                 string  `json:"id"`
	Code               string  `json:"code"`
	FullName           string  `json:"full_name"`
	CooperativeID      string  `json:"cooperative_id"`
	CooperativeName    *string `json:"cooperative_name,omitempty"`
	FacilityID         *string `json:"facility_id,omitempty"`
	FacilityName       *string `json:"facility_name,omitempty"`
	Status             string  `json:"status"`
	ConsentSignedAt    string  `json:"consent_signed_at"`
	ConsentDocumentRef string  `json:"consent_document_ref"`
	CreatedAt          string  `json:"created_at"`
	UpdatedAt          string  `json:"updated_at"`
}

type ListWorkersResponse struct {
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	Workers    []WorkerResponse `json:"workers"`
}
