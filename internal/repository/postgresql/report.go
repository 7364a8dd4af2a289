package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agroverde/packhouse-backend-go/internal/domain/report"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.Repository {
	return &reportRepositoryImpl{db: db}
}

// BagStatsByDate implements report.Repository.
func (r *reportRepositoryImpl) BagStatsByDate(ctx context.Context, date time.Time) (report.BagDayStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			   COALESCE(SUM(worker_count), 0),
			   COUNT(DISTINCT exporter_id)
		FROM (
			SELECT b.id, b.exporter_id,
				   (SELECT COUNT(*) FROM bag_workers bw WHERE bw.bag_id = b.id) AS worker_count
			FROM bags b
			WHERE b.date = $1
		) day_bags
	`

	var stats report.BagDayStats
	err := q.QueryRow(ctx, query, date).Scan(
		&stats.BagCount, &stats.WorkerEntries, &stats.ExportersServed,
	)
	if err != nil {
		return report.BagDayStats{}, err
	}

	return stats, nil
}

// SessionSpansByDate implements report.Repository.
func (r *reportRepositoryImpl) SessionSpansByDate(ctx context.Context, date time.Time) ([]report.SessionSpan, error) {
	return r.spans(ctx, "date = $1", date)
}

// SessionSpansByWorker implements report.Repository.
func (r *reportRepositoryImpl) SessionSpansByWorker(ctx context.Context, workerID string) ([]report.SessionSpan, error) {
	return r.spans(ctx, "worker_id = $1", workerID)
}

// SessionSpansByWorkerAndDate implements report.Repository.
func (r *reportRepositoryImpl) SessionSpansByWorkerAndDate(ctx context.Context, workerID string, date time.Time) ([]report.SessionSpan, error) {
	return r.spans(ctx, "worker_id = $1 AND date = $2", workerID, date)
}

// SessionSpansAll implements report.Repository.
func (r *reportRepositoryImpl) SessionSpansAll(ctx context.Context) ([]report.SessionSpan, error) {
	return r.spans(ctx, "1=1")
}

func (r *reportRepositoryImpl) spans(ctx context.Context, predicate string, args ...any) ([]report.SessionSpan, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT worker_id, start_time, end_time
		FROM sessions
		WHERE %s
	`, predicate)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var spans []report.SessionSpan
	for rows.Next() {
		var s report.SessionSpan
		if err := rows.Scan(&s.WorkerID, &s.StartTime, &s.EndTime); err != nil {
			return nil, err
		}
		spans = append(spans, s)
	}

	return spans, rows.Err()
}

// CountBagsByWorker implements report.Repository.
func (r *reportRepositoryImpl) CountBagsByWorker(ctx context.Context, workerID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM bag_workers WHERE worker_id = $1`, workerID).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CountAttendanceDays implements report.Repository.
func (r *reportRepositoryImpl) CountAttendanceDays(ctx context.Context, workerID string, from, to time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*)
		FROM attendances
		WHERE worker_id = $1 AND date >= $2 AND date <= $3
	`

	var count int64
	err := q.QueryRow(ctx, query, workerID, from, to).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// WorkerStatusCounts implements report.Repository.
func (r *reportRepositoryImpl) WorkerStatusCounts(ctx context.Context) (report.WorkerStatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'active'),
			COUNT(*) FILTER (WHERE status = 'inactive'),
			COUNT(*) FILTER (WHERE status = 'suspended')
		FROM workers
	`

	var counts report.WorkerStatusCounts
	err := q.QueryRow(ctx, query).Scan(&counts.Active, &counts.Inactive, &counts.Suspended)
	if err != nil {
		return report.WorkerStatusCounts{}, err
	}

	return counts, nil
}

// TopPerformer implements report.Repository. The worker id tie-break keeps
// the answer stable when two workers share the top bag count.
func (r *reportRepositoryImpl) TopPerformer(ctx context.Context) (*report.TopPerformerRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT bw.worker_id, w.full_name, COUNT(*) AS bag_count
		FROM bag_workers bw
		JOIN workers w ON w.id = bw.worker_id
		GROUP BY bw.worker_id, w.full_name
		ORDER BY bag_count DESC, bw.worker_id ASC
		LIMIT 1
	`

	var row report.TopPerformerRow
	err := q.QueryRow(ctx, query).Scan(&row.WorkerID, &row.WorkerName, &row.BagCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &row, nil
}

// ExporterBagCounts implements report.Repository.
func (r *reportRepositoryImpl) ExporterBagCounts(ctx context.Context, date time.Time) ([]report.ExporterRankingEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.exporter_id, e.name, COUNT(*) AS bag_count
		FROM bags b
		JOIN exporters e ON e.id = b.exporter_id
		WHERE b.date = $1
		GROUP BY b.exporter_id, e.name
		ORDER BY bag_count DESC, b.exporter_id ASC
	`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []report.ExporterRankingEntry
	for rows.Next() {
		var e report.ExporterRankingEntry
		if err := rows.Scan(&e.ExporterID, &e.ExporterName, &e.BagCount); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// AttendanceRows implements report.Repository.
func (r *reportRepositoryImpl) AttendanceRows(ctx context.Context, filter *report.AttendanceReportFilter) ([]report.AttendanceRow, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.WorkerID != nil && *filter.WorkerID != "" {
		conditions = append(conditions, fmt.Sprintf("worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}

	query := fmt.Sprintf(`
		SELECT worker_id, status
		FROM attendances
		WHERE %s
	`, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []report.AttendanceRow
	for rows.Next() {
		var row report.AttendanceRow
		if err := rows.Scan(&row.WorkerID, &row.Status); err != nil {
			return nil, err
		}
		out = append(out, row)
	}

	return out, rows.Err()
}
