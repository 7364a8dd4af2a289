package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agroverde/packhouse-backend-go/internal/domain/session"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) session.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// Create implements session.SessionRepository.
func (r *sessionRepositoryImpl) Create(ctx context.Context, s session.Session) (session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO sessions (
			attendance_id, worker_id, exporter_id, facility_id, supervisor_id,
			date, status, start_time
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.AttendanceID,
		s.WorkerID,
		s.ExporterID,
		s.FacilityID,
		s.SupervisorID,
		s.Date,
		s.Status,
		s.StartTime,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return session.Session{}, err
	}

	return s, nil
}

// GetByID implements session.SessionRepository.
func (r *sessionRepositoryImpl) GetByID(ctx context.Context, id string) (session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT s.id, s.attendance_id, s.worker_id, s.exporter_id, s.facility_id,
			   s.supervisor_id, s.date, s.status, s.start_time, s.end_time,
			   s.created_at, s.updated_at, w.full_name, e.name
		FROM sessions s
		JOIN workers w ON w.id = s.worker_id
		JOIN exporters e ON e.id = s.exporter_id
		WHERE s.id = $1
	`

	var s session.Session
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.AttendanceID, &s.WorkerID, &s.ExporterID, &s.FacilityID,
		&s.SupervisorID, &s.Date, &s.Status, &s.StartTime, &s.EndTime,
		&s.CreatedAt, &s.UpdatedAt, &s.WorkerName, &s.ExporterName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return session.Session{}, session.ErrSessionNotFound
		}
		return session.Session{}, err
	}

	return s, nil
}

// GetActiveByWorker implements session.SessionRepository.
func (r *sessionRepositoryImpl) GetActiveByWorker(ctx context.Context, workerID string) (*session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_id, worker_id, exporter_id, facility_id,
			   supervisor_id, date, status, start_time, end_time,
			   created_at, updated_at
		FROM sessions
		WHERE worker_id = $1 AND status = 'active'
		ORDER BY start_time DESC
		LIMIT 1
	`

	var s session.Session
	err := q.QueryRow(ctx, query, workerID).Scan(
		&s.ID, &s.AttendanceID, &s.WorkerID, &s.ExporterID, &s.FacilityID,
		&s.SupervisorID, &s.Date, &s.Status, &s.StartTime, &s.EndTime,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &s, nil
}

// Close implements session.SessionRepository. The status guard makes the
// transition race-free: only one caller moves a session out of active.
func (r *sessionRepositoryImpl) Close(ctx context.Context, id string, endTime time.Time) (session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sessions
		SET status = 'closed', end_time = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'active'
		RETURNING id, attendance_id, worker_id, exporter_id, facility_id,
				  supervisor_id, date, status, start_time, end_time,
				  created_at, updated_at
	`

	var s session.Session
	err := q.QueryRow(ctx, query, endTime, id).Scan(
		&s.ID, &s.AttendanceID, &s.WorkerID, &s.ExporterID, &s.FacilityID,
		&s.SupervisorID, &s.Date, &s.Status, &s.StartTime, &s.EndTime,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			var exists bool
			if chkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM sessions WHERE id = $1)`, id).Scan(&exists); chkErr != nil {
				return session.Session{}, chkErr
			}
			if !exists {
				return session.Session{}, session.ErrSessionNotFound
			}
			return session.Session{}, session.ErrSessionNotActive
		}
		return session.Session{}, err
	}

	return s, nil
}

// CloseAllActiveByAttendance implements session.SessionRepository. A single
// bulk UPDATE closes everything still active under the attendance; rerunning
// it matches nothing and reports zero.
func (r *sessionRepositoryImpl) CloseAllActiveByAttendance(ctx context.Context, attendanceID string, endTime time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sessions
		SET status = 'closed', end_time = $1, updated_at = NOW()
		WHERE attendance_id = $2 AND status = 'active'
	`

	tag, err := q.Exec(ctx, query, endTime, attendanceID)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

// MarkValidated implements session.SessionRepository.
func (r *sessionRepositoryImpl) MarkValidated(ctx context.Context, id string) (session.Session, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE sessions
		SET status = 'validated', updated_at = NOW()
		WHERE id = $1 AND status = 'closed'
		RETURNING id, attendance_id, worker_id, exporter_id, facility_id,
				  supervisor_id, date, status, start_time, end_time,
				  created_at, updated_at
	`

	var s session.Session
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.AttendanceID, &s.WorkerID, &s.ExporterID, &s.FacilityID,
		&s.SupervisorID, &s.Date, &s.Status, &s.StartTime, &s.EndTime,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			var exists bool
			if chkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM sessions WHERE id = $1)`, id).Scan(&exists); chkErr != nil {
				return session.Session{}, chkErr
			}
			if !exists {
				return session.Session{}, session.ErrSessionNotFound
			}
			return session.Session{}, session.ErrSessionNotClosed
		}
		return session.Session{}, err
	}

	return s, nil
}

// List implements session.SessionRepository.
func (r *sessionRepositoryImpl) List(ctx context.Context, filter session.SessionFilter) ([]session.Session, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.AttendanceID != nil {
		conditions = append(conditions, fmt.Sprintf("s.attendance_id = $%d", argIdx))
		args = append(args, *filter.AttendanceID)
		argIdx++
	}
	if filter.WorkerID != nil {
		conditions = append(conditions, fmt.Sprintf("s.worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.ExporterID != nil {
		conditions = append(conditions, fmt.Sprintf("s.exporter_id = $%d", argIdx))
		args = append(args, *filter.ExporterID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("s.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		conditions = append(conditions, fmt.Sprintf("s.date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM sessions s WHERE %s`, where)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT s.id, s.attendance_id, s.worker_id, s.exporter_id, s.facility_id,
			   s.supervisor_id, s.date, s.status, s.start_time, s.end_time,
			   s.created_at, s.updated_at, w.full_name, e.name
		FROM sessions s
		JOIN workers w ON w.id = s.worker_id
		JOIN exporters e ON e.id = s.exporter_id
		WHERE %s
		ORDER BY s.start_time DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		var s session.Session
		if err := rows.Scan(
			&s.ID, &s.AttendanceID, &s.WorkerID, &s.ExporterID, &s.FacilityID,
			&s.SupervisorID, &s.Date, &s.Status, &s.StartTime, &s.EndTime,
			&s.CreatedAt, &s.UpdatedAt, &s.WorkerName, &s.ExporterName,
		); err != nil {
			return nil, 0, err
		}
		sessions = append(sessions, s)
	}

	return sessions, total, rows.Err()
}
