package worker

import "context"

// WorkerService defines workforce roster operations
type WorkerService interface {
	// Enroll registers a new worker with their signed consent attributes
	Enroll(ctx context.Context, req EnrollWorkerRequest) (WorkerResponse, error)

	// Update mutates name, facility assignment or lifecycle status
	Update(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)

	// Deactivate soft-deactivates a worker; workers are never hard-deleted
	Deactivate(ctx context.Context, id string) error

	Get(ctx context.Context, id string) (WorkerResponse, error)
	List(ctx context.Context, filter WorkerFilter) (ListWorkersResponse, error)
}
