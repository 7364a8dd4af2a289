// Package master implements the services for the reference entities bags,
// sessions and workers hang off: exporters, cooperatives and facilities.
package master

import (
	"context"

	"github.com/agroverde/packhouse-backend-go/internal/domain/master/cooperative"
	"github.com/agroverde/packhouse-backend-go/internal/domain/master/exporter"
	"github.com/agroverde/packhouse-backend-go/internal/domain/master/facility"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
)

type ExporterServiceImpl struct {
	db *database.DB
	exporter.ExporterRepository
}

func NewExporterService(db *database.DB, repo exporter.ExporterRepository) exporter.ExporterService {
	return &ExporterServiceImpl{db: db, ExporterRepository: repo}
}

// Create implements exporter.ExporterService.
func (s *ExporterServiceImpl) Create(ctx context.Context, req exporter.CreateExporterRequest) (exporter.ExporterResponse, error) {
	if err := req.Validate(); err != nil {
		return exporter.ExporterResponse{}, err
	}

	created, err := s.ExporterRepository.Create(ctx, exporter.Exporter{
		Code:   req.NormalizedCode(),
		Name:   req.Name,
		Active: true,
	})
	if err != nil {
		return exporter.ExporterResponse{}, err
	}

	return exporterResponse(created), nil
}

// Get implements exporter.ExporterService.
func (s *ExporterServiceImpl) Get(ctx context.Context, id string) (exporter.ExporterResponse, error) {
	e, err := s.ExporterRepository.GetByID(ctx, id)
	if err != nil {
		return exporter.ExporterResponse{}, err
	}

	return exporterResponse(e), nil
}

// List implements exporter.ExporterService.
func (s *ExporterServiceImpl) List(ctx context.Context, includeInactive bool) ([]exporter.ExporterResponse, error) {
	exporters, err := s.ExporterRepository.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]exporter.ExporterResponse, 0, len(exporters))
	for _, e := range exporters {
		responses = append(responses, exporterResponse(e))
	}

	return responses, nil
}

// Update implements exporter.ExporterService.
func (s *ExporterServiceImpl) Update(ctx context.Context, req exporter.UpdateExporterRequest) (exporter.ExporterResponse, error) {
	if err := req.Validate(); err != nil {
		return exporter.ExporterResponse{}, err
	}

	if err := s.ExporterRepository.Update(ctx, req); err != nil {
		return exporter.ExporterResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Deactivate implements exporter.ExporterService.
func (s *ExporterServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.ExporterRepository.Deactivate(ctx, id)
}

func exporterResponse(e exporter.Exporter) exporter.ExporterResponse {
	return exporter.ExporterResponse{ID: e.ID, Code: e.Code, Name: e.Name, Active: e.Active}
}

type CooperativeServiceImpl struct {
	db *database.DB
	cooperative.CooperativeRepository
}

func NewCooperativeService(db *database.DB, repo cooperative.CooperativeRepository) cooperative.CooperativeService {
	return &CooperativeServiceImpl{db: db, CooperativeRepository: repo}
}

// Create implements cooperative.CooperativeService.
func (s *CooperativeServiceImpl) Create(ctx context.Context, req cooperative.CreateCooperativeRequest) (cooperative.CooperativeResponse, error) {
	if err := req.Validate(); err != nil {
		return cooperative.CooperativeResponse{}, err
	}

	created, err := s.CooperativeRepository.Create(ctx, cooperative.Cooperative{
		Code:   req.NormalizedCode(),
		Name:   req.Name,
		Active: true,
	})
	if err != nil {
		return cooperative.CooperativeResponse{}, err
	}

	return cooperativeResponse(created), nil
}

// Get implements cooperative.CooperativeService.
func (s *CooperativeServiceImpl) Get(ctx context.Context, id string) (cooperative.CooperativeResponse, error) {
	c, err := s.CooperativeRepository.GetByID(ctx, id)
	if err != nil {
		return cooperative.CooperativeResponse{}, err
	}

	return cooperativeResponse(c), nil
}

// List implements cooperative.CooperativeService.
func (s *CooperativeServiceImpl) List(ctx context.Context, includeInactive bool) ([]cooperative.CooperativeResponse, error) {
	cooperatives, err := s.CooperativeRepository.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]cooperative.CooperativeResponse, 0, len(cooperatives))
	for _, c := range cooperatives {
		responses = append(responses, cooperativeResponse(c))
	}

	return responses, nil
}

// Update implements cooperative.CooperativeService.
func (s *CooperativeServiceImpl) Update(ctx context.Context, req cooperative.UpdateCooperativeRequest) (cooperative.CooperativeResponse, error) {
	if err := req.Validate(); err != nil {
		return cooperative.CooperativeResponse{}, err
	}

	if err := s.CooperativeRepository.Update(ctx, req); err != nil {
		return cooperative.CooperativeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Deactivate implements cooperative.CooperativeService.
func (s *CooperativeServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.CooperativeRepository.Deactivate(ctx, id)
}

func cooperativeResponse(c cooperative.Cooperative) cooperative.CooperativeResponse {
	return cooperative.CooperativeResponse{ID: c.ID, Code: c.Code, Name: c.Name, Active: c.Active}
}

type FacilityServiceImpl struct {
	db *database.DB
	facility.FacilityRepository
}

func NewFacilityService(db *database.DB, repo facility.FacilityRepository) facility.FacilityService {
	return &FacilityServiceImpl{db: db, FacilityRepository: repo}
}

// Create implements facility.FacilityService.
func (s *FacilityServiceImpl) Create(ctx context.Context, req facility.CreateFacilityRequest) (facility.FacilityResponse, error) {
	if err := req.Validate(); err != nil {
		return facility.FacilityResponse{}, err
	}

	created, err := s.FacilityRepository.Create(ctx, facility.Facility{
		Code:     req.NormalizedCode(),
		Name:     req.Name,
		Location: req.Location,
		Active:   true,
	})
	if err != nil {
		return facility.FacilityResponse{}, err
	}

	return facilityResponse(created), nil
}

// Get implements facility.FacilityService.
func (s *FacilityServiceImpl) Get(ctx context.Context, id string) (facility.FacilityResponse, error) {
	f, err := s.FacilityRepository.GetByID(ctx, id)
	if err != nil {
		return facility.FacilityResponse{}, err
	}

	return facilityResponse(f), nil
}

// List implements facility.FacilityService.
func (s *FacilityServiceImpl) List(ctx context.Context, includeInactive bool) ([]facility.FacilityResponse, error) {
	facilities, err := s.FacilityRepository.List(ctx, includeInactive)
	if err != nil {
		return nil, err
	}

	responses := make([]facility.FacilityResponse, 0, len(facilities))
	for _, f := range facilities {
		responses = append(responses, facilityResponse(f))
	}

	return responses, nil
}

// Update implements facility.FacilityService.
func (s *FacilityServiceImpl) Update(ctx context.Context, req facility.UpdateFacilityRequest) (facility.FacilityResponse, error) {
	if err := req.Validate(); err != nil {
		return facility.FacilityResponse{}, err
	}

	if err := s.FacilityRepository.Update(ctx, req); err != nil {
		return facility.FacilityResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// Deactivate implements facility.FacilityService.
func (s *FacilityServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.FacilityRepository.Deactivate(ctx, id)
}

func facilityResponse(f facility.Facility) facility.FacilityResponse {
	return facility.FacilityResponse{
		ID:       f.ID,
		Code:     f.Code,
		Name:     f.Name,
		Location: f.Location,
		Active:   f.Active,
	}
}
