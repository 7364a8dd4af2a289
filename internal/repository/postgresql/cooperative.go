package postgresql

import (
	"context"

	"github.com/agroverde/packhouse-backend-go/internal/domain/master/cooperative"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type cooperativeRepositoryImpl struct {
	db *database.DB
}

func NewCooperativeRepository(db *database.DB) cooperative.CooperativeRepository {
	return &cooperativeRepositoryImpl{db: db}
}

// Create implements cooperative.CooperativeRepository.
func (r *cooperativeRepositoryImpl) Create(ctx context.Context, c cooperative.Cooperative) (cooperative.Cooperative, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO cooperatives (code, name, active)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, c.Code, c.Name, c.Active).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return cooperative.Cooperative{}, cooperative.ErrCooperativeCodeExists
		}
		return cooperative.Cooperative{}, err
	}

	return c, nil
}

// GetByID implements cooperative.CooperativeRepository.
func (r *cooperativeRepositoryImpl) GetByID(ctx context.Context, id string) (cooperative.Cooperative, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, active, created_at, updated_at
		FROM cooperatives
		WHERE id = $1
	`

	var c cooperative.Cooperative
	err := q.QueryRow(ctx, query, id).Scan(&c.ID, &c.Code, &c.Name, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return cooperative.Cooperative{}, cooperative.ErrCooperativeNotFound
		}
		return cooperative.Cooperative{}, err
	}

	return c, nil
}

// List implements cooperative.CooperativeRepository.
func (r *cooperativeRepositoryImpl) List(ctx context.Context, includeInactive bool) ([]cooperative.Cooperative, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, active, created_at, updated_at
		FROM cooperatives
		WHERE active = TRUE OR $1
		ORDER BY code ASC
	`

	rows, err := q.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cooperatives []cooperative.Cooperative
	for rows.Next() {
		var c cooperative.Cooperative
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		cooperatives = append(cooperatives, c)
	}

	return cooperatives, rows.Err()
}

// Update implements cooperative.CooperativeRepository.
func (r *cooperativeRepositoryImpl) Update(ctx context.Context, req cooperative.UpdateCooperativeRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE cooperatives
		SET name = COALESCE($1, name), updated_at = NOW()
		WHERE id = $2
	`

	tag, err := q.Exec(ctx, query, req.Name, req.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return cooperative.ErrCooperativeNotFound
	}

	return nil
}

// Deactivate implements cooperative.CooperativeRepository.
func (r *cooperativeRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE cooperatives SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return cooperative.ErrCooperativeNotFound
	}

	return nil
}
