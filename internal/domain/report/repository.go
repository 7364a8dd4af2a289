package report

import (
	"context"
	"time"
)

// SessionSpan is the raw material for hour aggregation: one labor
// session's start and (possibly open) end.
type SessionSpan struct {
	WorkerID  string
	StartTime time.Time
	EndTime   *time.Time
}

// BagDayStats carries per-day bag aggregates straight from the store.
// Tonnage is derived from BagCount and the nominal bag weight, so stored
// per-bag weights never feed this struct.
type BagDayStats struct {
	BagCount        int64
	WorkerEntries   int64
	ExportersServed int64
}

type WorkerStatusCounts struct {
	Active    int64
	Inactive  int64
	Suspended int64
}

type TopPerformerRow struct {
	WorkerID   string
	WorkerName *string
	BagCount   int64
}

type AttendanceRow struct {
	WorkerID string
	Status   string
}

type Repository interface {
	BagStatsByDate(ctx context.Context, date time.Time) (BagDayStats, error)
	SessionSpansByDate(ctx context.Context, date time.Time) ([]SessionSpan, error)
	SessionSpansByWorker(ctx context.Context, workerID string) ([]SessionSpan, error)
	SessionSpansByWorkerAndDate(ctx context.Context, workerID string, date time.Time) ([]SessionSpan, error)
	SessionSpansAll(ctx context.Context) ([]SessionSpan, error)
	CountBagsByWorker(ctx context.Context, workerID string) (int64, error)
	CountAttendanceDays(ctx context.Context, workerID string, from, to time.Time) (int64, error)
	WorkerStatusCounts(ctx context.Context) (WorkerStatusCounts, error)
	// TopPerformer returns nil when no bags have been recorded yet.
	TopPerformer(ctx context.Context) (*TopPerformerRow, error)
	ExporterBagCounts(ctx context.Context, date time.Time) ([]ExporterRankingEntry, error)
	AttendanceRows(ctx context.Context, filter *AttendanceReportFilter) ([]AttendanceRow, error)
}
