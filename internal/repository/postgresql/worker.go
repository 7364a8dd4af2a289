package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/agroverde/packhouse-backend-go/internal/domain/worker"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type workerRepositoryImpl struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) worker.WorkerRepository {
	return &workerRepositoryImpl{db: db}
}

// Create implements worker.WorkerRepository.
func (r *workerRepositoryImpl) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO workers (
			code, full_name, cooperative_id, facility_id, status,
			consent_signed_at, consent_document_ref
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		w.Code,
		w.FullName,
		w.CooperativeID,
		w.FacilityID,
		w.Status,
		w.ConsentSignedAt,
		w.ConsentDocumentRef,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return worker.Worker{}, worker.ErrWorkerCodeExists
		}
		return worker.Worker{}, err
	}

	return w, nil
}

// GetByID implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	return r.getOne(ctx, "w.id = $1", id)
}

// GetByCode implements worker.WorkerRepository.
func (r *workerRepositoryImpl) GetByCode(ctx context.Context, code string) (worker.Worker, error) {
	return r.getOne(ctx, "w.code = $1", code)
}

func (r *workerRepositoryImpl) getOne(ctx context.Context, predicate string, arg any) (worker.Worker, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT w.id, w.code, w.full_name, w.cooperative_id, w.facility_id, w.status,
			   w.consent_signed_at, w.consent_document_ref, w.created_at, w.updated_at,
			   c.name, f.name
		FROM workers w
		JOIN cooperatives c ON c.id = w.cooperative_id
		LEFT JOIN facilities f ON f.id = w.facility_id
		WHERE %s
	`, predicate)

	var w worker.Worker
	err := q.QueryRow(ctx, query, arg).Scan(
		&w.ID, &w.Code, &w.FullName, &w.CooperativeID, &w.FacilityID, &w.Status,
		&w.ConsentSignedAt, &w.ConsentDocumentRef, &w.CreatedAt, &w.UpdatedAt,
		&w.CooperativeName, &w.FacilityName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return worker.Worker{}, worker.ErrWorkerNotFound
		}
		return worker.Worker{}, err
	}

	return w, nil
}

// Update implements worker.WorkerRepository. Consent columns and the worker
// code are immutable and are never part of the SET list.
func (r *workerRepositoryImpl) Update(ctx context.Context, w worker.Worker) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE workers
		SET full_name = $1, facility_id = $2, status = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, w.FullName, w.FacilityID, w.Status, w.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return worker.ErrWorkerNotFound
	}

	return nil
}

// List implements worker.WorkerRepository.
func (r *workerRepositoryImpl) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.CooperativeID != nil {
		conditions = append(conditions, fmt.Sprintf("w.cooperative_id = $%d", argIdx))
		args = append(args, *filter.CooperativeID)
		argIdx++
	}
	if filter.FacilityID != nil {
		conditions = append(conditions, fmt.Sprintf("w.facility_id = $%d", argIdx))
		args = append(args, *filter.FacilityID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("w.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(w.full_name ILIKE $%d OR w.code ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM workers w WHERE %s`, where)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT w.id, w.code, w.full_name, w.cooperative_id, w.facility_id, w.status,
			   w.consent_signed_at, w.consent_document_ref, w.created_at, w.updated_at,
			   c.name, f.name
		FROM workers w
		JOIN cooperatives c ON c.id = w.cooperative_id
		LEFT JOIN facilities f ON f.id = w.facility_id
		WHERE %s
		ORDER BY w.code ASC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var workers []worker.Worker
	for rows.Next() {
		var w worker.Worker
		if err := rows.Scan(
			&w.ID, &w.Code, &w.FullName, &w.CooperativeID, &w.FacilityID, &w.Status,
			&w.ConsentSignedAt, &w.ConsentDocumentRef, &w.CreatedAt, &w.UpdatedAt,
			&w.CooperativeName, &w.FacilityName,
		); err != nil {
			return nil, 0, err
		}
		workers = append(workers, w)
	}

	return workers, total, rows.Err()
}
