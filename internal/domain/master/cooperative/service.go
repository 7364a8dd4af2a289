package cooperative

import "context"

type CooperativeService interface {
	Create(ctx context.Context, req CreateCooperativeRequest) (CooperativeResponse, error)
	Get(ctx context.Context, id string) (CooperativeResponse, error)
	List(ctx context.Context, includeInactive bool) ([]CooperativeResponse, error)
	Update(ctx context.Context, req UpdateCooperativeRequest) (CooperativeResponse, error)
	Deactivate(ctx context.Context, id string) error
}
