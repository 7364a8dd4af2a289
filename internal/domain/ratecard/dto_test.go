package ratecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestCreateRateCardRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CreateRateCardRequest
		wantErr bool
	}{
		{
			"valid open-ended",
			CreateRateCardRequest{ExporterID: "exp-1", RatePerBag: 1.5, ValidFrom: "2026-01-01"},
			false,
		},
		{
			"valid bounded window",
			CreateRateCardRequest{ExporterID: "exp-1", RatePerBag: 1.5, ValidFrom: "2026-01-01", ValidTo: strPtr("2026-06-30")},
			false,
		},
		{
			"single-day window",
			CreateRateCardRequest{ExporterID: "exp-1", RatePerBag: 1.5, ValidFrom: "2026-01-01", ValidTo: strPtr("2026-01-01")},
			false,
		},
		{
			"missing exporter",
			CreateRateCardRequest{RatePerBag: 1.5, ValidFrom: "2026-01-01"},
			true,
		},
		{
			"zero rate",
			CreateRateCardRequest{ExporterID: "exp-1", RatePerBag: 0, ValidFrom: "2026-01-01"},
			true,
		},
		{
			"negative rate",
			CreateRateCardRequest{ExporterID: "exp-1", RatePerBag: -0.5, ValidFrom: "2026-01-01"},
			true,
		},
		{
			"malformed valid_from",
			CreateRateCardRequest{ExporterID: "exp-1", RatePerBag: 1.5, ValidFrom: "01/01/2026"},
			true,
		},
		{
			"valid_to before valid_from",
			CreateRateCardRequest{ExporterID: "exp-1", RatePerBag: 1.5, ValidFrom: "2026-06-30", ValidTo: strPtr("2026-01-01")},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
