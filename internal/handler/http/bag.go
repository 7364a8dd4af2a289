package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agroverde/packhouse-backend-go/internal/domain/bag"
	"github.com/agroverde/packhouse-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type BagHandler interface {
	Record(w http.ResponseWriter, r *http.Request)
	ProgressStatus(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type BagHandlerImpl struct {
	bagService bag.BagService
}

func NewBagHandler(bagService bag.BagService) BagHandler {
	return &BagHandlerImpl{bagService: bagService}
}

// Record implements BagHandler.
func (h *BagHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var recordReq bag.RecordBagRequest

	if err := json.NewDecoder(r.Body).Decode(&recordReq); err != nil {
		slog.Error("Record bag decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	bagResponse, err := h.bagService.Record(r.Context(), recordReq)
	if err != nil {
		slog.Error("Record bag service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Bag recorded", "bag_id", bagResponse.ID, "bag_number", bagResponse.BagNumber)
	response.Created(w, "Bag recorded successfully", bagResponse)
}

// ProgressStatus implements BagHandler.
func (h *BagHandlerImpl) ProgressStatus(w http.ResponseWriter, r *http.Request) {
	var progressReq bag.ProgressStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&progressReq); err != nil {
		slog.Error("Progress bag status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	progressReq.ID = chi.URLParam(r, "id")

	bagResponse, err := h.bagService.ProgressStatus(r.Context(), progressReq)
	if err != nil {
		slog.Error("Progress bag status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Bag status updated successfully", bagResponse)
}

// Get implements BagHandler.
func (h *BagHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	bagResponse, err := h.bagService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, bagResponse)
}

// List implements BagHandler.
func (h *BagHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := bag.BagFilter{
		ExporterID: optionalQuery(r, "exporter_id"),
		FacilityID: optionalQuery(r, "facility_id"),
		Date:       optionalQuery(r, "date"),
		Status:     optionalQuery(r, "status"),
		Page:       intQuery(r, "page", 1),
		Limit:      intQuery(r, "limit", 20),
	}

	listResponse, err := h.bagService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResponse.Bags, &response.Meta{
		Page:       listResponse.Page,
		Limit:      listResponse.Limit,
		TotalItems: listResponse.TotalCount,
		TotalPages: totalPages(listResponse.TotalCount, listResponse.Limit),
	})
}
