package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/agroverde/packhouse-backend-go/internal/domain/master/cooperative"
	"github.com/agroverde/packhouse-backend-go/internal/domain/worker"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
)

type WorkerServiceImpl struct {
	db *database.DB
	worker.WorkerRepository
	cooperative.CooperativeRepository
}

func NewWorkerService(db *database.DB, workerRepository worker.WorkerRepository, cooperativeRepository cooperative.CooperativeRepository) worker.WorkerService {
	return &WorkerServiceImpl{
		db:                    db,
		WorkerRepository:      workerRepository,
		CooperativeRepository: cooperativeRepository,
	}
}

// Enroll implements worker.WorkerService.
func (s *WorkerServiceImpl) Enroll(ctx context.Context, req worker.EnrollWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	coop, err := s.CooperativeRepository.GetByID(ctx, req.CooperativeID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	if !coop.Active {
		return worker.WorkerResponse{}, cooperative.ErrCooperativeInactive
	}

	consentSignedAt, err := time.Parse(time.RFC3339, req.ConsentSignedAt)
	if err != nil {
		return worker.WorkerResponse{}, fmt.Errorf("failed to parse consent timestamp: %w", err)
	}

	newWorker := worker.Worker{
		Code:               req.NormalizedCode(),
		FullName:           req.FullName,
		CooperativeID:      req.CooperativeID,
		FacilityID:         req.FacilityID,
		Status:             worker.StatusActive,
		ConsentSignedAt:    consentSignedAt,
		ConsentDocumentRef: req.ConsentDocumentRef,
	}

	created, err := s.WorkerRepository.Create(ctx, newWorker)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	created.CooperativeName = &coop.Name

	return toResponse(created), nil
}

// Update implements worker.WorkerService. Consent attributes and the worker
// code never change after enrollment; the request cannot carry them.
func (s *WorkerServiceImpl) Update(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	current, err := s.WorkerRepository.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.FullName != nil {
		current.FullName = *req.FullName
	}
	if req.FacilityID != nil {
		current.FacilityID = req.FacilityID
	}
	if req.Status != nil {
		current.Status = worker.Status(*req.Status)
	}

	if err := s.WorkerRepository.Update(ctx, current); err != nil {
		return worker.WorkerResponse{}, err
	}

	updated, err := s.WorkerRepository.GetByID(ctx, req.ID)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toResponse(updated), nil
}

// Deactivate implements worker.WorkerService.
func (s *WorkerServiceImpl) Deactivate(ctx context.Context, id string) error {
	current, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	current.Status = worker.StatusInactive
	return s.WorkerRepository.Update(ctx, current)
}

// Get implements worker.WorkerService.
func (s *WorkerServiceImpl) Get(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return toResponse(w), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context, filter worker.WorkerFilter) (worker.ListWorkersResponse, error) {
	if err := filter.Validate(); err != nil {
		return worker.ListWorkersResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	workers, total, err := s.WorkerRepository.List(ctx, filter)
	if err != nil {
		return worker.ListWorkersResponse{}, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, toResponse(w))
	}

	return worker.ListWorkersResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Workers:    responses,
	}, nil
}

func toResponse(w worker.Worker) worker.WorkerResponse {
	return worker.WorkerResponse{
		ID:                 w.ID,
		Code:               w.Code,
		FullName:           w.FullName,
		CooperativeID:      w.CooperativeID,
		CooperativeName:    w.CooperativeName,
		FacilityID:         w.FacilityID,
		FacilityName:       w.FacilityName,
		Status:             string(w.Status),
		ConsentSignedAt:    w.ConsentSignedAt.Format(time.RFC3339),
		ConsentDocumentRef: w.ConsentDocumentRef,
		CreatedAt:          w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          w.UpdatedAt.Format(time.RFC3339),
	}
}
