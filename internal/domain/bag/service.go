package bag

import "context"

// BagService defines bag recording business logic
type BagService interface {
	// Record creates an immutable bag record referencing 2-4 worker/session
	// pairs. The pairs are stored as given; whether a referenced session is
	// closed or belongs to the named worker is the caller's responsibility.
	Record(ctx context.Context, req RecordBagRequest) (BagResponse, error)

	// ProgressStatus advances completed -> validated -> locked (admin only)
	ProgressStatus(ctx context.Context, req ProgressStatusRequest) (BagResponse, error)

	Get(ctx context.Context, id string) (BagResponse, error)
	List(ctx context.Context, filter BagFilter) (ListBagsResponse, error)
}
