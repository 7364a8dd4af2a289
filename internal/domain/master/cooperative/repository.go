package cooperative

import "context"

type CooperativeRepository interface {
	Create(ctx context.Context, c Cooperative) (Cooperative, error)
	GetByID(ctx context.Context, id string) (Cooperative, error)
	List(ctx context.Context, includeInactive bool) ([]Cooperative, error)
	Update(ctx context.Context, req UpdateCooperativeRequest) error
	// Deactivate soft-deactivates; cooperatives are never hard-deleted.
	Deactivate(ctx context.Context, id string) error
}
