package ratecard

import "time"

// RateCard defines the per-bag pay rate agreed with an exporter over a
// validity window. When windows overlap, the card with the latest
// valid_from wins.
type RateCard struct {
	ID         string
	ExporterID string
	RatePerBag float64
	ValidFrom  time.Time
	ValidTo    *time.Time // open-ended when nil
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Covers reports whether the card's validity window contains date.
func (r *RateCard) Covers(date time.Time) bool {
	if date.Before(r.ValidFrom) {
		return false
	}
	if r.ValidTo != nil && date.After(*r.ValidTo) {
		return false
	}
	return r.Active
}
