package report

import (
	"context"
	"time"

	"github.com/agroverde/packhouse-backend-go/internal/config"
	"github.com/agroverde/packhouse-backend-go/internal/domain/report"
	"github.com/agroverde/packhouse-backend-go/internal/domain/session"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/clock"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
)

type ReportServiceImpl struct {
	db       *database.DB
	clock    clock.Clock
	business config.BusinessConfig
	report.Repository
}

func NewReportService(db *database.DB, clk clock.Clock, business config.BusinessConfig, reportRepository report.Repository) report.Service {
	return &ReportServiceImpl{
		db:         db,
		clock:      clk,
		business:   business,
		Repository: reportRepository,
	}
}

// sumHours totals the spans' durations against one fixed reference instant.
// Open spans are measured start to now; spans with a start after now are
// data errors and contribute nothing.
func sumHours(spans []report.SessionSpan, now time.Time) float64 {
	var hours float64
	for _, span := range spans {
		d, ok := session.Duration(session.Session{StartTime: span.StartTime, EndTime: span.EndTime}, now)
		if !ok {
			continue
		}
		hours += d.Hours()
	}
	return hours
}

// buildDailyOperations shapes one day's bag statistics and labor hours into
// the daily operations report. Tonnage is bag count times the nominal bag
// weight, never the keyed-in per-bag weights, so throughput stays uniform
// across weighed and unweighed bags. A day with no bags yields zeros, never
// a division by zero.
func buildDailyOperations(date string, stats report.BagDayStats, hours float64, nominalKG float64) *report.DailyOperationsResponse {
	resp := &report.DailyOperationsResponse{
		Date:            date,
		BagsCount:       stats.BagCount,
		TotalKilograms:  float64(stats.BagCount) * nominalKG,
		TotalHoursToday: hours,
		ExportersServed: stats.ExportersServed,
	}
	if stats.BagCount > 0 {
		resp.AvgWorkersPerBag = float64(stats.WorkerEntries) / float64(stats.BagCount)
	}

	return resp
}

// DailyOperations implements report.Service. An empty date means today per
// the service clock.
func (s *ReportServiceImpl) DailyOperations(ctx context.Context, date string) (*report.DailyOperationsResponse, error) {
	if date == "" {
		date = s.clock.Now().Format("2006-01-02")
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}

	stats, err := s.Repository.BagStatsByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	spans, err := s.Repository.SessionSpansByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	return buildDailyOperations(date, stats, sumHours(spans, s.clock.Now()), s.business.NominalBagWeightKG), nil
}

// WorkerDetail implements report.Service. Earnings here are the hourly
// component only; per-bag earnings depend on exporter rate cards and live in
// the daily earnings endpoint.
func (s *ReportServiceImpl) WorkerDetail(ctx context.Context, workerID string) (*report.WorkerDetailResponse, error) {
	spans, err := s.Repository.SessionSpansByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	totalBags, err := s.Repository.CountBagsByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	daysWorked, err := s.Repository.CountAttendanceDays(ctx, workerID, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	totalHours := sumHours(spans, now)

	return &report.WorkerDetailResponse{
		WorkerID:            workerID,
		TotalHours:          totalHours,
		TotalBags:           totalBags,
		Earnings:            totalHours * s.business.HourlyRate,
		DaysWorkedThisMonth: daysWorked,
	}, nil
}

// WorkforceStats implements report.Service.
func (s *ReportServiceImpl) WorkforceStats(ctx context.Context) (*report.WorkforceStatsResponse, error) {
	counts, err := s.Repository.WorkerStatusCounts(ctx)
	if err != nil {
		return nil, err
	}

	spans, err := s.Repository.SessionSpansAll(ctx)
	if err != nil {
		return nil, err
	}

	top, err := s.Repository.TopPerformer(ctx)
	if err != nil {
		return nil, err
	}

	totalHours := sumHours(spans, s.clock.Now())

	resp := &report.WorkforceStatsResponse{
		ActiveWorkers:    counts.Active,
		InactiveWorkers:  counts.Inactive,
		SuspendedWorkers: counts.Suspended,
		TotalHours:       totalHours,
		TotalLaborCosts:  totalHours * s.business.HourlyRate,
	}
	if counts.Active > 0 {
		resp.AvgHoursPerWorker = totalHours / float64(counts.Active)
	}
	if top != nil {
		resp.TopPerformer = &report.TopPerformerResponse{
			WorkerID:   top.WorkerID,
			WorkerName: top.WorkerName,
			BagCount:   top.BagCount,
		}
	}

	return resp, nil
}

// buildAttendanceReport aggregates raw attendance rows into the report
// shape. The per-worker slice is keyed and ordered by worker id so the same
// rows always produce the same report.
func buildAttendanceReport(rows []report.AttendanceRow) *report.AttendanceReportResponse {
	byStatus := map[string]int64{}
	perWorker := map[string]*report.WorkerAttendanceSummary{}
	order := []string{}

	for _, row := range rows {
		byStatus[row.Status]++

		summary, seen := perWorker[row.WorkerID]
		if !seen {
			summary = &report.WorkerAttendanceSummary{WorkerID: row.WorkerID}
			perWorker[row.WorkerID] = summary
			order = append(order, row.WorkerID)
		}
		summary.TotalDays++
		if row.Status == "checked_out" {
			summary.CheckedOutDays++
		}
	}

	resp := &report.AttendanceReportResponse{
		TotalRecords:  int64(len(rows)),
		ByStatus:      byStatus,
		UniqueWorkers: int64(len(perWorker)),
		PerWorker:     make([]report.WorkerAttendanceSummary, 0, len(order)),
	}
	for _, workerID := range order {
		resp.PerWorker = append(resp.PerWorker, *perWorker[workerID])
	}

	return resp
}

// AttendanceReport implements report.Service.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, filter *report.AttendanceReportFilter) (*report.AttendanceReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.Repository.AttendanceRows(ctx, filter)
	if err != nil {
		return nil, err
	}

	return buildAttendanceReport(rows), nil
}

// ExporterRanking implements report.Service.
func (s *ReportServiceImpl) ExporterRanking(ctx context.Context, date string) ([]report.ExporterRankingEntry, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}

	return s.Repository.ExporterBagCounts(ctx, day)
}
