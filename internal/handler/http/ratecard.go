package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agroverde/packhouse-backend-go/internal/domain/ratecard"
	"github.com/agroverde/packhouse-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RateCardHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	ListByExporter(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	DailyEarnings(w http.ResponseWriter, r *http.Request)
}

type RateCardHandlerImpl struct {
	rateCardService ratecard.RateCardService
}

func NewRateCardHandler(rateCardService ratecard.RateCardService) RateCardHandler {
	return &RateCardHandlerImpl{rateCardService: rateCardService}
}

// Create implements RateCardHandler.
func (h *RateCardHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq ratecard.CreateRateCardRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create rate card decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.rateCardService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create rate card service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rate card created successfully", created)
}

// Get implements RateCardHandler.
func (h *RateCardHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.rateCardService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListByExporter implements RateCardHandler.
func (h *RateCardHandlerImpl) ListByExporter(w http.ResponseWriter, r *http.Request) {
	cards, err := h.rateCardService.ListByExporter(r.Context(), chi.URLParam(r, "exporterID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cards)
}

// Deactivate implements RateCardHandler.
func (h *RateCardHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	if err := h.rateCardService.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rate card deactivated successfully", nil)
}

// DailyEarnings implements RateCardHandler.
func (h *RateCardHandlerImpl) DailyEarnings(w http.ResponseWriter, r *http.Request) {
	workerID := chi.URLParam(r, "workerID")
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}

	earnings, err := h.rateCardService.ComputeDaily(r.Context(), workerID, date)
	if err != nil {
		slog.Error("Daily earnings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, earnings)
}
