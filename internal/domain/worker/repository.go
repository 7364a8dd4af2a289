package worker

import "context"

type WorkerRepository interface {
	// Create inserts a new worker; the unique index on code surfaces
	// duplicates as ErrWorkerCodeExists.
	Create(ctx context.Context, w Worker) (Worker, error)

	GetByID(ctx context.Context, id string) (Worker, error)
	GetByCode(ctx context.Context, code string) (Worker, error)

	// Update mutates name, facility and status. Consent attributes and the
	// worker code are immutable after enrollment and are never written here.
	Update(ctx context.Context, w Worker) error

	List(ctx context.Context, filter WorkerFilter) ([]Worker, int64, error)
}
