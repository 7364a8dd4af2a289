package ratecard

import "context"

// RateCardService defines rate card administration and earnings computation
type RateCardService interface {
	Create(ctx context.Context, req CreateRateCardRequest) (RateCardResponse, error)
	Get(ctx context.Context, id string) (RateCardResponse, error)
	ListByExporter(ctx context.Context, exporterID string) ([]RateCardResponse, error)
	Deactivate(ctx context.Context, id string) error

	// ComputeDaily derives one worker's earnings for one day from their
	// session hours and bag shares. Nothing is persisted; the same inputs
	// always produce the same snapshot.
	ComputeDaily(ctx context.Context, workerID string, date string) (DailyEarningsResponse, error)
}
