package postgresql

import (
	"context"

	"github.com/agroverde/packhouse-backend-go/internal/domain/master/exporter"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type exporterRepositoryImpl struct {
	db *database.DB
}

func NewExporterRepository(db *database.DB) exporter.ExporterRepository {
	return &exporterRepositoryImpl{db: db}
}

// Create implements exporter.ExporterRepository.
func (r *exporterRepositoryImpl) Create(ctx context.Context, e exporter.Exporter) (exporter.Exporter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO exporters (code, name, active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, e.Code, e.Name, e.Active).Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return exporter.Exporter{}, exporter.ErrExporterCodeExists
		}
		return exporter.Exporter{}, err
	}

	return e, nil
}

// GetByID implements exporter.ExporterRepository.
func (r *exporterRepositoryImpl) GetByID(ctx context.Context, id string) (exporter.Exporter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, active, created_at, updated_at
		FROM exporters
		WHERE id = $1
	`

	var e exporter.Exporter
	err := q.QueryRow(ctx, query, id).Scan(&e.ID, &e.Code, &e.Name, &e.Active, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return exporter.Exporter{}, exporter.ErrExporterNotFound
		}
		return exporter.Exporter{}, err
	}

	return e, nil
}

// List implements exporter.ExporterRepository.
func (r *exporterRepositoryImpl) List(ctx context.Context, includeInactive bool) ([]exporter.Exporter, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, active, created_at, updated_at
		FROM exporters
		WHERE active = TRUE OR $1
		ORDER BY code ASC
	`

	rows, err := q.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exporters []exporter.Exporter
	for rows.Next() {
		var e exporter.Exporter
		if err := rows.Scan(&e.ID, &e.Code, &e.Name, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		exporters = append(exporters, e)
	}

	return exporters, rows.Err()
}

// Update implements exporter.ExporterRepository.
func (r *exporterRepositoryImpl) Update(ctx context.Context, req exporter.UpdateExporterRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE exporters
		SET name = COALESCE($1, name), updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, req.Name, req.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return exporter.ErrExporterNotFound
	}

	return nil
}

// Deactivate implements exporter.ExporterRepository.
func (r *exporterRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE exporters SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return exporter.ErrExporterNotFound
	}

	return nil
}
