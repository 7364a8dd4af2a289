package exporter

import (
	"strings"

	"github.com/agroverde/packhouse-backend-go/internal/pkg/validator"
)

type ExporterResponse struct {
	ID     string `json:"id"`
	Code   string `json:"code"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

type CreateExporterRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

func (r *CreateExporterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code is required",
		})
	} else if !validator.IsValidBusinessCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 2-20 letters or digits",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// NormalizedCode returns the business code in canonical uppercase form.
func (r *CreateExporterRequest) NormalizedCode() string {
	return strings.ToUpper(strings.TrimSpace(r.Code))
}

type UpdateExporterRequest struct {
	ID   string  `json:"-"`
	Name *string `json:"name,omitempty"`
}

func (r *UpdateExporterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
