package bag

import (
	"context"
	"time"

	"github.com/agroverde/packhouse-backend-go/internal/domain/bag"
	"github.com/agroverde/packhouse-backend-go/internal/domain/master/exporter"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
)

type BagServiceImpl struct {
	db *database.DB
	bag.BagRepository
	exporter.ExporterRepository
}

func NewBagService(db *database.DB, bagRepository bag.BagRepository, exporterRepository exporter.ExporterRepository) bag.BagService {
	return &BagServiceImpl{
		db:                 db,
		BagRepository:      bagRepository,
		ExporterRepository: exporterRepository,
	}
}

// Record implements bag.BagService. The bag number's global uniqueness is
// enforced by the repository's unique index on the uppercase form.
func (s *BagServiceImpl) Record(ctx context.Context, req bag.RecordBagRequest) (bag.BagResponse, error) {
	if err := req.Validate(); err != nil {
		return bag.BagResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return bag.BagResponse{}, err
	}
	supervisorID, ok := claims["user_id"].(string)
	if !ok || supervisorID == "" {
		return bag.BagResponse{}, jwtauth.ErrUnauthorized
	}

	exp, err := s.ExporterRepository.GetByID(ctx, req.ExporterID)
	if err != nil {
		return bag.BagResponse{}, err
	}
	if !exp.Active {
		return bag.BagResponse{}, exporter.ErrExporterInactive
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return bag.BagResponse{}, err
	}

	newBag := bag.Bag{
		BagNumber:    req.NormalizedBagNumber(),
		ExporterID:   req.ExporterID,
		FacilityID:   req.FacilityID,
		SupervisorID: supervisorID,
		Date:         date,
		WeightKG:     req.WeightKG,
		Status:       bag.StatusCompleted,
		Workers:      req.Workers,
	}

	created, err := s.BagRepository.Create(ctx, newBag)
	if err != nil {
		return bag.BagResponse{}, err
	}
	created.ExporterName = &exp.Name

	return toResponse(created), nil
}

// ProgressStatus implements bag.BagService. Only forward moves are allowed:
// completed -> validated -> locked.
func (s *BagServiceImpl) ProgressStatus(ctx context.Context, req bag.ProgressStatusRequest) (bag.BagResponse, error) {
	if err := req.Validate(); err != nil {
		return bag.BagResponse{}, err
	}

	current, err := s.BagRepository.GetByID(ctx, req.ID)
	if err != nil {
		return bag.BagResponse{}, err
	}

	next := bag.Status(req.Status)
	valid := (current.Status == bag.StatusCompleted && next == bag.StatusValidated) ||
		(current.Status == bag.StatusValidated && next == bag.StatusLocked)
	if !valid {
		return bag.BagResponse{}, bag.ErrInvalidStatusChange
	}

	updated, err := s.BagRepository.UpdateStatus(ctx, req.ID, next)
	if err != nil {
		return bag.BagResponse{}, err
	}
	updated.Workers = current.Workers
	updated.ExporterName = current.ExporterName

	return toResponse(updated), nil
}

// Get implements bag.BagService.
func (s *BagServiceImpl) Get(ctx context.Context, id string) (bag.BagResponse, error) {
	b, err := s.BagRepository.GetByID(ctx, id)
	if err != nil {
		return bag.BagResponse{}, err
	}

	return toResponse(b), nil
}

// List implements bag.BagService.
func (s *BagServiceImpl) List(ctx context.Context, filter bag.BagFilter) (bag.ListBagsResponse, error) {
	if err := filter.Validate(); err != nil {
		return bag.ListBagsResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	bags, total, err := s.BagRepository.List(ctx, filter)
	if err != nil {
		return bag.ListBagsResponse{}, err
	}

	responses := make([]bag.BagResponse, 0, len(bags))
	for _, b := range bags {
		responses = append(responses, toResponse(b))
	}

	return bag.ListBagsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Bags:       responses,
	}, nil
}

func toResponse(b bag.Bag) bag.BagResponse {
	return bag.BagResponse{
		ID:           b.ID,
		BagNumber:    b.BagNumber,
		ExporterID:   b.ExporterID,
		ExporterName: b.ExporterName,
		FacilityID:   b.FacilityID,
		SupervisorID: b.SupervisorID,
		Date:         b.Date.Format("2006-01-02"),
		WeightKG:     b.WeightKG,
		Status:       string(b.Status),
		Workers:      b.Workers,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
	}
}
