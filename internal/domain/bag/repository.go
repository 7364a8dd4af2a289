package bag

import "context"

// WorkerShare is one worker's slice of a bag for earnings computation:
// the bag's rate is split evenly across WorkerCount contributors.
type WorkerShare struct {
	BagID       string
	ExporterID  string
	WorkerCount int
}

// BagRepository defines data access for bag records.
type BagRepository interface {
	// Create inserts the bag and its worker links in one transaction.
	// The unique index on bag_number surfaces duplicates as
	// ErrBagNumberExists.
	Create(ctx context.Context, b Bag) (Bag, error)

	GetByID(ctx context.Context, id string) (Bag, error)

	// UpdateStatus applies a status progression; it does not touch any
	// other column, bags are append-only.
	UpdateStatus(ctx context.Context, id string, status Status) (Bag, error)

	List(ctx context.Context, filter BagFilter) ([]Bag, int64, error)

	// SharesByWorkerAndDate returns, for each bag the worker contributed to
	// on the given day, the exporter and the number of co-workers, for
	// per-bag earnings splits.
	SharesByWorkerAndDate(ctx context.Context, workerID string, date string) ([]WorkerShare, error)
}
