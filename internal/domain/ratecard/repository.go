package ratecard

import (
	"context"
	"time"
)

type RateCardRepository interface {
	Create(ctx context.Context, rc RateCard) (RateCard, error)
	GetByID(ctx context.Context, id string) (RateCard, error)
	ListByExporter(ctx context.Context, exporterID string) ([]RateCard, error)
	Deactivate(ctx context.Context, id string) error

	// ResolveRate returns the active card covering date for the exporter,
	// preferring the latest valid_from when windows overlap. Returns
	// ErrNoRateForDate when nothing covers the date.
	ResolveRate(ctx context.Context, exporterID string, date time.Time) (RateCard, error)
}
