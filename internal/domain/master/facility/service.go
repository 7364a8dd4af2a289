package facility

import "context"

type FacilityService interface {
	Create(ctx context.Context, req CreateFacilityRequest) (FacilityResponse, error)
	Get(ctx context.Context, id string) (FacilityResponse, error)
	List(ctx context.Context, includeInactive bool) ([]FacilityResponse, error)
	Update(ctx context.Context, req UpdateFacilityRequest) (FacilityResponse, error)
	Deactivate(ctx context.Context, id string) error
}
