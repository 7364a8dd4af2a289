package facility

import "context"

type FacilityRepository interface {
	Create(ctx context.Context, f Facility) (Facility, error)
	GetByID(ctx context.Context, id string) (Facility, error)
	List(ctx context.Context, includeInactive bool) ([]Facility, error)
	Update(ctx context.Context, req UpdateFacilityRequest) error
	// Deactivate soft-deactivates; facilities are never hard-deleted.
	Deactivate(ctx context.Context, id string) error
}
