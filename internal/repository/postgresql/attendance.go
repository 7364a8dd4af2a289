package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agroverde/packhouse-backend-go/internal/domain/attendance"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository. The unique index on
// (worker_id, date) is the single source of truth for the one-record-per-day
// rule; a violation means another check-in already won.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (worker_id, facility_id, supervisor_id, date, status, check_in_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.WorkerID,
		att.FacilityID,
		att.SupervisorID,
		att.Date,
		att.Status,
		att.CheckInTime,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, err
	}

	return att, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.worker_id, a.facility_id, a.supervisor_id, a.date, a.status,
			   a.check_in_time, a.check_out_time, a.created_at, a.updated_at,
			   w.full_name, w.code
		FROM attendances a
		JOIN workers w ON w.id = a.worker_id
		WHERE a.id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.WorkerID, &att.FacilityID, &att.SupervisorID, &att.Date, &att.Status,
		&att.CheckInTime, &att.CheckOutTime, &att.CreatedAt, &att.UpdatedAt,
		&att.WorkerName, &att.WorkerCode,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, err
	}

	return att, nil
}

// GetByWorkerAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByWorkerAndDate(ctx context.Context, workerID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, worker_id, facility_id, supervisor_id, date, status,
			   check_in_time, check_out_time, created_at, updated_at
		FROM attendances
		WHERE worker_id = $1 AND date = $2
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, workerID, date).Scan(
		&att.ID, &att.WorkerID, &att.FacilityID, &att.SupervisorID, &att.Date, &att.Status,
		&att.CheckInTime, &att.CheckOutTime, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return &att, nil
}

// SetCheckedOut implements attendance.AttendanceRepository. The status guard
// in the WHERE clause makes the transition race-free: only one caller can
// move a row out of on_site.
func (r *attendanceRepositoryImpl) SetCheckedOut(ctx context.Context, id string, checkOutTime time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances
		SET status = 'checked_out', check_out_time = $1, updated_at = NOW()
		WHERE id = $2 AND status = 'on_site'
		RETURNING id, worker_id, facility_id, supervisor_id, date, status,
				  check_in_time, check_out_time, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, checkOutTime, id).Scan(
		&att.ID, &att.WorkerID, &att.FacilityID, &att.SupervisorID, &att.Date, &att.Status,
		&att.CheckInTime, &att.CheckOutTime, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// distinguish missing rows from rows that already left on_site
			var exists bool
			if chkErr := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM attendances WHERE id = $1)`, id).Scan(&exists); chkErr != nil {
				return attendance.Attendance{}, chkErr
			}
			if !exists {
				return attendance.Attendance{}, attendance.ErrAttendanceNotFound
			}
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Attendance{}, err
	}

	return att, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.WorkerID != nil {
		conditions = append(conditions, fmt.Sprintf("a.worker_id = $%d", argIdx))
		args = append(args, *filter.WorkerID)
		argIdx++
	}
	if filter.FacilityID != nil {
		conditions = append(conditions, fmt.Sprintf("a.facility_id = $%d", argIdx))
		args = append(args, *filter.FacilityID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM attendances a WHERE %s`, where)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortBy := "a.check_in_time"
	if filter.SortBy == "date" {
		sortBy = "a.date"
	}
	sortOrder := "DESC"
	if strings.EqualFold(filter.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT a.id, a.worker_id, a.facility_id, a.supervisor_id, a.date, a.status,
			   a.check_in_time, a.check_out_time, a.created_at, a.updated_at,
			   w.full_name, w.code
		FROM attendances a
		JOIN workers w ON w.id = a.worker_id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, where, sortBy, sortOrder, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.WorkerID, &att.FacilityID, &att.SupervisorID, &att.Date, &att.Status,
			&att.CheckInTime, &att.CheckOutTime, &att.CreatedAt, &att.UpdatedAt,
			&att.WorkerName, &att.WorkerCode,
		); err != nil {
			return nil, 0, err
		}
		attendances = append(attendances, att)
	}

	return attendances, total, rows.Err()
}
