package postgresql

import (
	"context"

	"github.com/agroverde/packhouse-backend-go/internal/domain/user"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, newUser user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (email, full_name, password_hash, role, exporter_id, facility_id, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newUser.Email,
		newUser.FullName,
		newUser.PasswordHash,
		newUser.Role,
		newUser.ExporterID,
		newUser.FacilityID,
		newUser.Active,
	).Scan(&newUser.ID, &newUser.CreatedAt, &newUser.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, err
	}

	return newUser, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, full_name, password_hash, role, exporter_id, facility_id, active,
			   created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role,
		&u.ExporterID, &u.FacilityID, &u.Active,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, full_name, password_hash, role, exporter_id, facility_id, active,
			   created_at, updated_at
		FROM users
		WHERE email = $1
	`

	var u user.User
	err := q.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role,
		&u.ExporterID, &u.FacilityID, &u.Active,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}

	return u, nil
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, u user.User) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users
		SET email = $1, full_name = $2, role = $3, exporter_id = $4, facility_id = $5,
			active = $6, updated_at = NOW()
		WHERE id = $7
	`

	tag, err := q.Exec(ctx, query,
		u.Email, u.FullName, u.Role, u.ExporterID, u.FacilityID, u.Active, u.ID,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.ErrEmailExists
		}
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, full_name, password_hash, role, exporter_id, facility_id, active,
			   created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.Email, &u.FullName, &u.PasswordHash, &u.Role,
			&u.ExporterID, &u.FacilityID, &u.Active,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// CountActiveAdmins implements user.UserRepository.
func (r *userRepositoryImpl) CountActiveAdmins(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'admin' AND active = TRUE`).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
