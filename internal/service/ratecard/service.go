package ratecard

import (
	"context"
	"time"

	"github.com/agroverde/packhouse-backend-go/internal/config"
	"github.com/agroverde/packhouse-backend-go/internal/domain/bag"
	"github.com/agroverde/packhouse-backend-go/internal/domain/ratecard"
	"github.com/agroverde/packhouse-backend-go/internal/domain/report"
	"github.com/agroverde/packhouse-backend-go/internal/domain/session"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/clock"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
)

type RateCardServiceImpl struct {
	db       *database.DB
	clock    clock.Clock
	business config.BusinessConfig
	ratecard.RateCardRepository
	bag.BagRepository
	report.Repository
}

func NewRateCardService(db *database.DB, clk clock.Clock, business config.BusinessConfig, rateCardRepository ratecard.RateCardRepository, bagRepository bag.BagRepository, reportRepository report.Repository) ratecard.RateCardService {
	return &RateCardServiceImpl{
		db:                 db,
		clock:              clk,
		business:           business,
		RateCardRepository: rateCardRepository,
		BagRepository:      bagRepository,
		Repository:         reportRepository,
	}
}

// Create implements ratecard.RateCardService.
func (s *RateCardServiceImpl) Create(ctx context.Context, req ratecard.CreateRateCardRequest) (ratecard.RateCardResponse, error) {
	if err := req.Validate(); err != nil {
		return ratecard.RateCardResponse{}, err
	}

	validFrom, _ := time.Parse("2006-01-02", req.ValidFrom)
	var validTo *time.Time
	if req.ValidTo != nil {
		parsed, _ := time.Parse("2006-01-02", *req.ValidTo)
		validTo = &parsed
	}

	created, err := s.RateCardRepository.Create(ctx, ratecard.RateCard{
		ExporterID: req.ExporterID,
		RatePerBag: req.RatePerBag,
		ValidFrom:  validFrom,
		ValidTo:    validTo,
		Active:     true,
	})
	if err != nil {
		return ratecard.RateCardResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements ratecard.RateCardService.
func (s *RateCardServiceImpl) Get(ctx context.Context, id string) (ratecard.RateCardResponse, error) {
	rc, err := s.RateCardRepository.GetByID(ctx, id)
	if err != nil {
		return ratecard.RateCardResponse{}, err
	}

	return toResponse(rc), nil
}

// ListByExporter implements ratecard.RateCardService.
func (s *RateCardServiceImpl) ListByExporter(ctx context.Context, exporterID string) ([]ratecard.RateCardResponse, error) {
	cards, err := s.RateCardRepository.ListByExporter(ctx, exporterID)
	if err != nil {
		return nil, err
	}

	responses := make([]ratecard.RateCardResponse, 0, len(cards))
	for _, rc := range cards {
		responses = append(responses, toResponse(rc))
	}

	return responses, nil
}

// Deactivate implements ratecard.RateCardService.
func (s *RateCardServiceImpl) Deactivate(ctx context.Context, id string) error {
	return s.RateCardRepository.Deactivate(ctx, id)
}

// ComputeDaily implements ratecard.RateCardService. Hours come from the
// worker's sessions on the day, paid at the flat configured hourly rate.
// Each bag pays its exporter's per-bag rate split evenly across the bag's
// contributors; a bag whose exporter has no covering rate card pays nothing
// rather than failing the whole computation.
func (s *RateCardServiceImpl) ComputeDaily(ctx context.Context, workerID string, date string) (ratecard.DailyEarningsResponse, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ratecard.DailyEarningsResponse{}, err
	}

	spans, err := s.Repository.SessionSpansByWorkerAndDate(ctx, workerID, day)
	if err != nil {
		return ratecard.DailyEarningsResponse{}, err
	}

	now := s.clock.Now()
	var hours float64
	for _, span := range spans {
		d, ok := session.Duration(session.Session{StartTime: span.StartTime, EndTime: span.EndTime}, now)
		if !ok {
			continue
		}
		hours += d.Hours()
	}

	shares, err := s.BagRepository.SharesByWorkerAndDate(ctx, workerID, date)
	if err != nil {
		return ratecard.DailyEarningsResponse{}, err
	}

	rates := map[string]float64{}
	var bagEarnings float64
	for _, share := range shares {
		rate, cached := rates[share.ExporterID]
		if !cached {
			rc, err := s.RateCardRepository.ResolveRate(ctx, share.ExporterID, day)
			switch err {
			case nil:
				rate = rc.RatePerBag
			case ratecard.ErrNoRateForDate:
				rate = 0
			default:
				return ratecard.DailyEarningsResponse{}, err
			}
			rates[share.ExporterID] = rate
		}
		if share.WorkerCount > 0 {
			bagEarnings += rate / float64(share.WorkerCount)
		}
	}

	hourlyEarnings := hours * s.business.HourlyRate

	return ratecard.DailyEarningsResponse{
		WorkerID:       workerID,
		Date:           date,
		HoursWorked:    hours,
		HourlyEarnings: hourlyEarnings,
		BagCount:       len(shares),
		BagEarnings:    bagEarnings,
		TotalEarnings:  hourlyEarnings + bagEarnings,
	}, nil
}

func toResponse(rc ratecard.RateCard) ratecard.RateCardResponse {
	resp := ratecard.RateCardResponse{
		ID:         rc.ID,
		ExporterID: rc.ExporterID,
		RatePerBag: rc.RatePerBag,
		ValidFrom:  rc.ValidFrom.Format("2006-01-02"),
		Active:     rc.Active,
	}
	if rc.ValidTo != nil {
		formatted := rc.ValidTo.Format("2006-01-02")
		resp.ValidTo = &formatted
	}

	return resp
}
