package exporter

import "context"

type ExporterService interface {
	Create(ctx context.Context, req CreateExporterRequest) (ExporterResponse, error)
	Get(ctx context.Context, id string) (ExporterResponse, error)
	List(ctx context.Context, includeInactive bool) ([]ExporterResponse, error)
	Update(ctx context.Context, req UpdateExporterRequest) (ExporterResponse, error)
	Deactivate(ctx context.Context, id string) error
}
