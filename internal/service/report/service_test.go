package report

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroverde/packhouse-backend-go/internal/config"
	"github.com/agroverde/packhouse-backend-go/internal/domain/report"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/clock"
)

// dayRecordingRepo is an in-memory report.Repository that remembers which
// dates the daily-operations queries were asked for.
type dayRecordingRepo struct {
	bagStatsDate time.Time
	spansDate    time.Time
}

func (r *dayRecordingRepo) BagStatsByDate(ctx context.Context, date time.Time) (report.BagDayStats, error) {
	r.bagStatsDate = date
	return report.BagDayStats{}, nil
}

func (r *dayRecordingRepo) SessionSpansByDate(ctx context.Context, date time.Time) ([]report.SessionSpan, error) {
	r.spansDate = date
	return nil, nil
}

func (r *dayRecordingRepo) SessionSpansByWorker(ctx context.Context, workerID string) ([]report.SessionSpan, error) {
	return nil, nil
}

func (r *dayRecordingRepo) SessionSpansByWorkerAndDate(ctx context.Context, workerID string, date time.Time) ([]report.SessionSpan, error) {
	return nil, nil
}

func (r *dayRecordingRepo) SessionSpansAll(ctx context.Context) ([]report.SessionSpan, error) {
	return nil, nil
}

func (r *dayRecordingRepo) CountBagsByWorker(ctx context.Context, workerID string) (int64, error) {
	return 0, nil
}

func (r *dayRecordingRepo) CountAttendanceDays(ctx context.Context, workerID string, from, to time.Time) (int64, error) {
	return 0, nil
}

func (r *dayRecordingRepo) WorkerStatusCounts(ctx context.Context) (report.WorkerStatusCounts, error) {
	return report.WorkerStatusCounts{}, nil
}

func (r *dayRecordingRepo) TopPerformer(ctx context.Context) (*report.TopPerformerRow, error) {
	return nil, nil
}

func (r *dayRecordingRepo) ExporterBagCounts(ctx context.Context, date time.Time) ([]report.ExporterRankingEntry, error) {
	return nil, nil
}

func (r *dayRecordingRepo) AttendanceRows(ctx context.Context, filter *report.AttendanceReportFilter) ([]report.AttendanceRow, error) {
	return nil, nil
}

func TestSumHours(t *testing.T) {
	now := time.Date(2026, 3, 10, 16, 0, 0, 0, time.UTC)
	end := func(h int) *time.Time {
		e := time.Date(2026, 3, 10, h, 0, 0, 0, time.UTC)
		return &e
	}

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, 0.0, sumHours(nil, now))
	})

	t.Run("closed spans", func(t *testing.T) {
		spans := []report.SessionSpan{
			{WorkerID: "w1", StartTime: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), EndTime: end(12)},
			{WorkerID: "w1", StartTime: time.Date(2026, 3, 10, 13, 0, 0, 0, time.UTC), EndTime: end(15)},
		}
		assert.InDelta(t, 6.0, sumHours(spans, now), 1e-9)
	})

	t.Run("open span measured to now", func(t *testing.T) {
		spans := []report.SessionSpan{
			{WorkerID: "w1", StartTime: time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)},
		}
		assert.InDelta(t, 1.5, sumHours(spans, now), 1e-9)
	})

	t.Run("open span growing with now", func(t *testing.T) {
		spans := []report.SessionSpan{
			{WorkerID: "w1", StartTime: time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)},
		}
		before := sumHours(spans, now)
		after := sumHours(spans, now.Add(time.Hour))
		assert.InDelta(t, 1.0, after-before, 1e-9)
	})

	t.Run("span starting after now contributes nothing", func(t *testing.T) {
		spans := []report.SessionSpan{
			{WorkerID: "w1", StartTime: now.Add(time.Hour)},
			{WorkerID: "w2", StartTime: time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC), EndTime: end(10)},
		}
		assert.InDelta(t, 2.0, sumHours(spans, now), 1e-9)
	})
}

func TestDailyOperationsDefaultsToToday(t *testing.T) {
	ctx := context.Background()
	today := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	repo := &dayRecordingRepo{}
	svc := NewReportService(nil, clock.NewFixed(today), config.BusinessConfig{NominalBagWeightKG: 60}, repo)

	resp, err := svc.DailyOperations(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Equal(t, "2026-03-10", repo.bagStatsDate.Format("2006-01-02"))
	assert.Equal(t, "2026-03-10", repo.spansDate.Format("2006-01-02"))
	assert.Equal(t, int64(0), resp.BagsCount)
	assert.Equal(t, 0.0, resp.TotalKilograms)
	assert.Equal(t, 0.0, resp.AvgWorkersPerBag)
}

func TestDailyOperationsRejectsMalformedDate(t *testing.T) {
	repo := &dayRecordingRepo{}
	svc := NewReportService(nil, clock.NewFixed(time.Now()), config.BusinessConfig{NominalBagWeightKG: 60}, repo)

	_, err := svc.DailyOperations(context.Background(), "10-03-2026")
	assert.Error(t, err)
}

func TestBuildDailyOperationsEmptyDay(t *testing.T) {
	resp := buildDailyOperations("2026-03-10", report.BagDayStats{}, 0, 60)

	require.NotNil(t, resp)
	assert.Equal(t, "2026-03-10", resp.Date)
	assert.Equal(t, int64(0), resp.BagsCount)
	assert.Equal(t, 0.0, resp.TotalKilograms)
	assert.Equal(t, 0.0, resp.AvgWorkersPerBag)
	assert.Equal(t, 0.0, resp.TotalHoursToday)
	assert.Equal(t, int64(0), resp.ExportersServed)
}

func TestBuildDailyOperationsTonnageFromNominalWeight(t *testing.T) {
	stats := report.BagDayStats{
		BagCount:        3,
		WorkerEntries:   9,
		ExportersServed: 2,
	}

	resp := buildDailyOperations("2026-03-10", stats, 12.5, 60)

	// Tonnage is the bag count priced at the nominal weight, never a sum
	// of keyed-in per-bag weights.
	assert.InDelta(t, 180.0, resp.TotalKilograms, 1e-9)
	assert.InDelta(t, 3.0, resp.AvgWorkersPerBag, 1e-9)
	assert.Equal(t, int64(3), resp.BagsCount)
	assert.Equal(t, int64(2), resp.ExportersServed)
	assert.InDelta(t, 12.5, resp.TotalHoursToday, 1e-9)
}

func TestBuildAttendanceReportEmpty(t *testing.T) {
	resp := buildAttendanceReport(nil)

	require.NotNil(t, resp)
	assert.Equal(t, int64(0), resp.TotalRecords)
	assert.Equal(t, int64(0), resp.UniqueWorkers)
	assert.Empty(t, resp.ByStatus)
	assert.Empty(t, resp.PerWorker)
}

func TestBuildAttendanceReport(t *testing.T) {
	rows := []report.AttendanceRow{
		{WorkerID: "w1", Status: "checked_out"},
		{WorkerID: "w2", Status: "on_site"},
		{WorkerID: "w1", Status: "checked_out"},
		{WorkerID: "w3", Status: "checked_out"},
		{WorkerID: "w2", Status: "checked_out"},
	}

	resp := buildAttendanceReport(rows)

	assert.Equal(t, int64(5), resp.TotalRecords)
	assert.Equal(t, int64(3), resp.UniqueWorkers)
	assert.Equal(t, int64(4), resp.ByStatus["checked_out"])
	assert.Equal(t, int64(1), resp.ByStatus["on_site"])

	require.Len(t, resp.PerWorker, 3)
	// Per-worker order follows first appearance in the rows.
	assert.Equal(t, "w1", resp.PerWorker[0].WorkerID)
	assert.Equal(t, "w2", resp.PerWorker[1].WorkerID)
	assert.Equal(t, "w3", resp.PerWorker[2].WorkerID)

	assert.Equal(t, int64(2), resp.PerWorker[0].TotalDays)
	assert.Equal(t, int64(2), resp.PerWorker[0].CheckedOutDays)
	assert.Equal(t, int64(2), resp.PerWorker[1].TotalDays)
	assert.Equal(t, int64(1), resp.PerWorker[1].CheckedOutDays)
	assert.Equal(t, int64(1), resp.PerWorker[2].TotalDays)
	assert.Equal(t, int64(1), resp.PerWorker[2].CheckedOutDays)
}
