package postgresql

import (
	"context"

	"github.com/agroverde/packhouse-backend-go/internal/domain/master/facility"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type facilityRepositoryImpl struct {
	db *database.DB
}

func NewFacilityRepository(db *database.DB) facility.FacilityRepository {
	return &facilityRepositoryImpl{db: db}
}

// Create implements facility.FacilityRepository.
func (r *facilityRepositoryImpl) Create(ctx context.Context, f facility.Facility) (facility.Facility, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO facilities (code, name, location, active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, f.Code, f.Name, f.Location, f.Active).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return facility.Facility{}, facility.ErrFacilityCodeExists
		}
		return facility.Facility{}, err
	}

	return f, nil
}

// GetByID implements facility.FacilityRepository.
func (r *facilityRepositoryImpl) GetByID(ctx context.Context, id string) (facility.Facility, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, location, active, created_at, updated_at
		FROM facilities
		WHERE id = $1
	`

	var f facility.Facility
	err := q.QueryRow(ctx, query, id).Scan(&f.ID, &f.Code, &f.Name, &f.Location, &f.Active, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return facility.Facility{}, facility.ErrFacilityNotFound
		}
		return facility.Facility{}, err
	}

	return f, nil
}

// List implements facility.FacilityRepository.
func (r *facilityRepositoryImpl) List(ctx context.Context, includeInactive bool) ([]facility.Facility, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, location, active, created_at, updated_at
		FROM facilities
		WHERE active = TRUE OR $1
		ORDER BY code ASC
	`

	rows, err := q.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var facilities []facility.Facility
	for rows.Next() {
		var f facility.Facility
		if err := rows.Scan(&f.ID, &f.Code, &f.Name, &f.Location, &f.Active, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		facilities = append(facilities, f)
	}

	return facilities, rows.Err()
}

// Update implements facility.FacilityRepository.
func (r *facilityRepositoryImpl) Update(ctx context.Context, req facility.UpdateFacilityRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE facilities
		SET name = COALESCE($1, name), location = COALESCE($2, location), updated_at = NOW()
		WHERE id = $3
	`

	tag, err := q.Exec(ctx, query, req.Name, req.Location, req.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return facility.ErrFacilityNotFound
	}

	return nil
}

// Deactivate implements facility.FacilityRepository.
func (r *facilityRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE facilities SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return facility.ErrFacilityNotFound
	}

	return nil
}
