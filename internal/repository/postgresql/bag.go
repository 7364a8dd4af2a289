package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/agroverde/packhouse-backend-go/internal/domain/bag"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type bagRepositoryImpl struct {
	db *database.DB
}

func NewBagRepository(db *database.DB) bag.BagRepository {
	return &bagRepositoryImpl{db: db}
}

// Create implements bag.BagRepository. The bag row and its worker links are
// written in one transaction so a failed link insert never leaves a bag
// without contributors.
func (r *bagRepositoryImpl) Create(ctx context.Context, b bag.Bag) (bag.Bag, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		b.ID = uuid.New().String()

		insertBag := `
			INSERT INTO bags (id, bag_number, exporter_id, facility_id, supervisor_id, date, weight_kg, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at, updated_at
		`
		err := tx.QueryRow(ctx, insertBag,
			b.ID,
			b.BagNumber,
			b.ExporterID,
			b.FacilityID,
			b.SupervisorID,
			b.Date,
			b.WeightKG,
			b.Status,
		).Scan(&b.CreatedAt, &b.UpdatedAt)
		if err != nil {
			return err
		}

		insertLink := `
			INSERT INTO bag_workers (bag_id, worker_id, session_id)
			VALUES ($1, $2, $3)
		`
		for _, bw := range b.Workers {
			if _, err := tx.Exec(ctx, insertLink, b.ID, bw.WorkerID, bw.SessionID); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if database.IsUniqueViolation(err) {
			return bag.Bag{}, bag.ErrBagNumberExists
		}
		return bag.Bag{}, err
	}

	return b, nil
}

// GetByID implements bag.BagRepository.
func (r *bagRepositoryImpl) GetByID(ctx context.Context, id string) (bag.Bag, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.bag_number, b.exporter_id, b.facility_id, b.supervisor_id,
			   b.date, b.weight_kg, b.status, b.created_at, b.updated_at, e.name
		FROM bags b
		JOIN exporters e ON e.id = b.exporter_id
		WHERE b.id = $1
	`

	var out bag.Bag
	err := q.QueryRow(ctx, query, id).Scan(
		&out.ID, &out.BagNumber, &out.ExporterID, &out.FacilityID, &out.SupervisorID,
		&out.Date, &out.WeightKG, &out.Status, &out.CreatedAt, &out.UpdatedAt, &out.ExporterName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return bag.Bag{}, bag.ErrBagNotFound
		}
		return bag.Bag{}, err
	}

	workers, err := r.workersOf(ctx, out.ID)
	if err != nil {
		return bag.Bag{}, err
	}
	out.Workers = workers

	return out, nil
}

func (r *bagRepositoryImpl) workersOf(ctx context.Context, bagID string) ([]bag.BagWorker, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT worker_id, session_id FROM bag_workers WHERE bag_id = $1`, bagID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workers []bag.BagWorker
	for rows.Next() {
		var bw bag.BagWorker
		if err := rows.Scan(&bw.WorkerID, &bw.SessionID); err != nil {
			return nil, err
		}
		workers = append(workers, bw)
	}

	return workers, rows.Err()
}

// UpdateStatus implements bag.BagRepository.
func (r *bagRepositoryImpl) UpdateStatus(ctx context.Context, id string, status bag.Status) (bag.Bag, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE bags
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, bag_number, exporter_id, facility_id, supervisor_id,
				  date, weight_kg, status, created_at, updated_at
	`

	var out bag.Bag
	err := q.QueryRow(ctx, query, status, id).Scan(
		&out.ID, &out.BagNumber, &out.ExporterID, &out.FacilityID, &out.SupervisorID,
		&out.Date, &out.WeightKG, &out.Status, &out.CreatedAt, &out.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return bag.Bag{}, bag.ErrBagNotFound
		}
		return bag.Bag{}, err
	}

	return out, nil
}

// List implements bag.BagRepository.
func (r *bagRepositoryImpl) List(ctx context.Context, filter bag.BagFilter) ([]bag.Bag, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []any{}
	argIdx := 1

	if filter.ExporterID != nil {
		conditions = append(conditions, fmt.Sprintf("b.exporter_id = $%d", argIdx))
		args = append(args, *filter.ExporterID)
		argIdx++
	}
	if filter.FacilityID != nil {
		conditions = append(conditions, fmt.Sprintf("b.facility_id = $%d", argIdx))
		args = append(args, *filter.FacilityID)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		conditions = append(conditions, fmt.Sprintf("b.date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("b.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM bags b WHERE %s`, where)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	query := fmt.Sprintf(`
		SELECT b.id, b.bag_number, b.exporter_id, b.facility_id, b.supervisor_id,
			   b.date, b.weight_kg, b.status, b.created_at, b.updated_at, e.name
		FROM bags b
		JOIN exporters e ON e.id = b.exporter_id
		WHERE %s
		ORDER BY b.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, argIdx, argIdx+1)
	args = append(args, filter.Limit, offset)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var bags []bag.Bag
	for rows.Next() {
		var b bag.Bag
		if err := rows.Scan(
			&b.ID, &b.BagNumber, &b.ExporterID, &b.FacilityID, &b.SupervisorID,
			&b.Date, &b.WeightKG, &b.Status, &b.CreatedAt, &b.UpdatedAt, &b.ExporterName,
		); err != nil {
			return nil, 0, err
		}
		bags = append(bags, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	for i := range bags {
		workers, err := r.workersOf(ctx, bags[i].ID)
		if err != nil {
			return nil, 0, err
		}
		bags[i].Workers = workers
	}

	return bags, total, nil
}

// SharesByWorkerAndDate implements bag.BagRepository.
func (r *bagRepositoryImpl) SharesByWorkerAndDate(ctx context.Context, workerID string, date string) ([]bag.WorkerShare, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT b.id, b.exporter_id, counts.n
		FROM bags b
		JOIN bag_workers bw ON bw.bag_id = b.id
		JOIN (
			SELECT bag_id, COUNT(*) AS n
			FROM bag_workers
			GROUP BY bag_id
		) counts ON counts.bag_id = b.id
		WHERE bw.worker_id = $1 AND b.date = $2
	`

	rows, err := q.Query(ctx, query, workerID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shares []bag.WorkerShare
	for rows.Next() {
		var s bag.WorkerShare
		if err := rows.Scan(&s.BagID, &s.ExporterID, &s.WorkerCount); err != nil {
			return nil, err
		}
		shares = append(shares, s)
	}

	return shares, rows.Err()
}
