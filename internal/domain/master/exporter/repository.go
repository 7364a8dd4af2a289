package exporter

import "context"

type ExporterRepository interface {
	Create(ctx context.Context, e Exporter) (Exporter, error)
	GetByID(ctx context.Context, id string) (Exporter, error)
	List(ctx context.Context, includeInactive bool) ([]Exporter, error)
	Update(ctx context.Context, req UpdateExporterRequest) error
	// Deactivate soft-deactivates; exporters are never hard-deleted.
	Deactivate(ctx context.Context, id string) error
}
