package report

import "context"

type Service interface {
	DailyOperations(ctx context.Context, date string) (*DailyOperationsResponse, error)
	WorkerDetail(ctx context.Context, workerID string) (*WorkerDetailResponse, error)
	WorkforceStats(ctx context.Context) (*WorkforceStatsResponse, error)
	AttendanceReport(ctx context.Context, filter *AttendanceReportFilter) (*AttendanceReportResponse, error)
	ExporterRanking(ctx context.Context, date string) ([]ExporterRankingEntry, error)
}

// ExporterRankingEntry ranks exporters by bags produced on a day.
type ExporterRankingEntry struct {
	ExporterID   string `json:"exporter_id"`
	ExporterName string `json:"exporter_name"`
	BagCount     int64  `json:"bag_count"`
}
