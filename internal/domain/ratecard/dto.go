package ratecard

import (
	"github.com/agroverde/packhouse-backend-go/internal/pkg/validator"
)

type CreateRateCardRequest struct {
	ExporterID string  `json:"exporter_id"`
	RatePerBag float64 `json:"rate_per_bag"`
	ValidFrom  string  `json:"valid_from"`         // YYYY-MM-DD
	ValidTo    *string `json:"valid_to,omitempty"` // YYYY-MM-DD, open-ended when absent
}

func (r *CreateRateCardRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ExporterID) {
		errs = append(errs, validator.ValidationError{
			Field:   "exporter_id",
			Message: "exporter_id is required",
		})
	}

	if r.RatePerBag <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "rate_per_bag",
			Message: "rate_per_bag must be positive",
		})
	}

	from, fromOK := validator.IsValidDate(r.ValidFrom)
	if !fromOK {
		errs = append(errs, validator.ValidationError{
			Field:   "valid_from",
			Message: "valid_from must be in YYYY-MM-DD format",
		})
	}

	if r.ValidTo != nil {
		to, toOK := validator.IsValidDate(*r.ValidTo)
		if !toOK {
			errs = append(errs, validator.ValidationError{
				Field:   "valid_to",
				Message: "valid_to must be in YYYY-MM-DD format",
			})
		} else if fromOK && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "valid_to",
				Message: "valid_to must not precede valid_from",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RateCardResponse struct {
	ID         string  `json:"id"`
	ExporterID string  `json:"exporter_id"`
	RatePerBag float64 `json:"rate_per_bag"`
	ValidFrom  string  `json:"valid_from"`
	ValidTo    *string `json:"valid_to,omitempty"`
	Active     bool    `json:"active"`
}

// DailyEarningsResponse is a computed snapshot of one worker's pay for one
// day: an hourly component at the flat configured rate, and a per-bag
// component splitting each bag's rate across its contributors.
type DailyEarningsResponse struct {
	WorkerID       string  `json:"worker_id"`
	Date           string  `json:"date"`
	HoursWorked    float64 `json:"hours_worked"`
	HourlyEarnings float64 `json:"hourly_earnings"`
	BagCount       int     `json:"bag_count"`
	BagEarnings    float64 `json:"bag_earnings"`
	TotalEarnings  float64 `json:"total_earnings"`
}
