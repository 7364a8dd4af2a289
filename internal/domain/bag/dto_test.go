package bag

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validRecordRequest(workerCount int) *RecordBagRequest {
	workers := make([]BagWorker, 0, workerCount)
	for i := 0; i < workerCount; i++ {
		workers = append(workers, BagWorker{
			WorkerID:  fmt.Sprintf("worker-%d", i+1),
			SessionID: fmt.Sprintf("session-%d", i+1),
		})
	}
	return &RecordBagRequest{
		BagNumber:  "BAG-2026-001",
		ExporterID: "exporter-1",
		FacilityID: "facility-1",
		Date:       "2026-03-10",
		WeightKG:   25.5,
		Workers:    workers,
	}
}

func TestRecordBagRequestWorkerCount(t *testing.T) {
	tests := []struct {
		count   int
		wantErr bool
	}{
		{0, true},
		{1, true},
		{2, false},
		{3, false},
		{4, false},
		{5, true},
	}

	for _, tt := range tests {
		err := validRecordRequest(tt.count).Validate()
		if tt.wantErr {
			assert.Error(t, err, "%d workers must not validate", tt.count)
		} else {
			assert.NoError(t, err, "%d workers must validate", tt.count)
		}
	}
}

func TestRecordBagRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RecordBagRequest)
		wantErr bool
	}{
		{"valid", func(r *RecordBagRequest) {}, false},
		{"empty bag number", func(r *RecordBagRequest) { r.BagNumber = "" }, true},
		{"malformed bag number", func(r *RecordBagRequest) { r.BagNumber = "b!" }, true},
		{"missing exporter", func(r *RecordBagRequest) { r.ExporterID = "" }, true},
		{"missing facility", func(r *RecordBagRequest) { r.FacilityID = "" }, true},
		{"bad date format", func(r *RecordBagRequest) { r.Date = "10-03-2026" }, true},
		{"negative weight", func(r *RecordBagRequest) { r.WeightKG = -1 }, true},
		{"zero weight allowed", func(r *RecordBagRequest) { r.WeightKG = 0 }, false},
		{"worker missing id", func(r *RecordBagRequest) { r.Workers[0].WorkerID = "" }, true},
		{"worker missing session", func(r *RecordBagRequest) { r.Workers[1].SessionID = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRecordRequest(2)
			tt.mutate(req)
			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizedBagNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"bag-2026-001", "BAG-2026-001"},
		{"  BAG-7 ", "BAG-7"},
		{"MiXeD-01", "MIXED-01"},
	}

	for _, tt := range tests {
		req := &RecordBagRequest{BagNumber: tt.in}
		assert.Equal(t, tt.want, req.NormalizedBagNumber())
	}
}

func TestProgressStatusRequestValidate(t *testing.T) {
	tests := []struct {
		status  string
		wantErr bool
	}{
		{"validated", false},
		{"locked", false},
		{"completed", true},
		{"shipped", true},
		{"", true},
	}

	for _, tt := range tests {
		req := &ProgressStatusRequest{Status: tt.status}
		err := req.Validate()
		if tt.wantErr {
			assert.Error(t, err, "status %q", tt.status)
		} else {
			assert.NoError(t, err, "status %q", tt.status)
		}
	}
}
