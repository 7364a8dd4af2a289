package postgresql

import (
	"context"
	"time"

	"github.com/agroverde/packhouse-backend-go/internal/domain/ratecard"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type rateCardRepositoryImpl struct {
	db *database.DB
}

func NewRateCardRepository(db *database.DB) ratecard.RateCardRepository {
	return &rateCardRepositoryImpl{db: db}
}

// Create implements ratecard.RateCardRepository.
func (r *rateCardRepositoryImpl) Create(ctx context.Context, rc ratecard.RateCard) (ratecard.RateCard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO rate_cards (exporter_id, rate_per_bag, valid_from, valid_to, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		rc.ExporterID, rc.RatePerBag, rc.ValidFrom, rc.ValidTo, rc.Active,
	).Scan(&rc.ID, &rc.CreatedAt, &rc.UpdatedAt)
	if err != nil {
		return ratecard.RateCard{}, err
	}

	return rc, nil
}

// GetByID implements ratecard.RateCardRepository.
func (r *rateCardRepositoryImpl) GetByID(ctx context.Context, id string) (ratecard.RateCard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, exporter_id, rate_per_bag, valid_from, valid_to, active, created_at, updated_at
		FROM rate_cards
		WHERE id = $1
	`

	var rc ratecard.RateCard
	err := q.QueryRow(ctx, query, id).Scan(
		&rc.ID, &rc.ExporterID, &rc.RatePerBag, &rc.ValidFrom, &rc.ValidTo,
		&rc.Active, &rc.CreatedAt, &rc.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ratecard.RateCard{}, ratecard.ErrRateCardNotFound
		}
		return ratecard.RateCard{}, err
	}

	return rc, nil
}

// ListByExporter implements ratecard.RateCardRepository.
func (r *rateCardRepositoryImpl) ListByExporter(ctx context.Context, exporterID string) ([]ratecard.RateCard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, exporter_id, rate_per_bag, valid_from, valid_to, active, created_at, updated_at
		FROM rate_cards
		WHERE exporter_id = $1
		ORDER BY valid_from DESC
	`

	rows, err := q.Query(ctx, query, exporterID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []ratecard.RateCard
	for rows.Next() {
		var rc ratecard.RateCard
		if err := rows.Scan(
			&rc.ID, &rc.ExporterID, &rc.RatePerBag, &rc.ValidFrom, &rc.ValidTo,
			&rc.Active, &rc.CreatedAt, &rc.UpdatedAt,
		); err != nil {
			return nil, err
		}
		cards = append(cards, rc)
	}

	return cards, rows.Err()
}

// Deactivate implements ratecard.RateCardRepository.
func (r *rateCardRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE rate_cards SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ratecard.ErrRateCardNotFound
	}

	return nil
}

// ResolveRate implements ratecard.RateCardRepository. When two windows
// overlap, the card with the latest valid_from wins.
func (r *rateCardRepositoryImpl) ResolveRate(ctx context.Context, exporterID string, date time.Time) (ratecard.RateCard, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, exporter_id, rate_per_bag, valid_from, valid_to, active, created_at, updated_at
		FROM rate_cards
		WHERE exporter_id = $1
		  AND active = TRUE
		  AND valid_from <= $2
		  AND (valid_to IS NULL OR valid_to >= $2)
		ORDER BY valid_from DESC
		LIMIT 1
	`

	var rc ratecard.RateCard
	err := q.QueryRow(ctx, query, exporterID, date).Scan(
		&rc.ID, &rc.ExporterID, &rc.RatePerBag, &rc.ValidFrom, &rc.ValidTo,
		&rc.Active, &rc.CreatedAt, &rc.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return ratecard.RateCard{}, ratecard.ErrNoRateForDate
		}
		return ratecard.RateCard{}, err
	}

	return rc, nil
}
