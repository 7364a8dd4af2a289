package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agroverde/packhouse-backend-go/internal/domain/worker"
	"github.com/agroverde/packhouse-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkerHandler interface {
	Enroll(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type WorkerHandlerImpl struct {
	workerService worker.WorkerService
}

func NewWorkerHandler(workerService worker.WorkerService) WorkerHandler {
	return &WorkerHandlerImpl{workerService: workerService}
}

// Enroll implements WorkerHandler.
func (h *WorkerHandlerImpl) Enroll(w http.ResponseWriter, r *http.Request) {
	var enrollReq worker.EnrollWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&enrollReq); err != nil {
		slog.Error("Enroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	workerResponse, err := h.workerService.Enroll(r.Context(), enrollReq)
	if err != nil {
		slog.Error("Enroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker enrolled", "worker_id", workerResponse.ID, "code", workerResponse.Code)
	response.Created(w, "Worker enrolled successfully", workerResponse)
}

// Update implements WorkerHandler.
func (h *WorkerHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var updateReq worker.UpdateWorkerRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update worker decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = chi.URLParam(r, "id")

	workerResponse, err := h.workerService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker updated successfully", workerResponse)
}

// Deactivate implements WorkerHandler.
func (h *WorkerHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.workerService.Deactivate(r.Context(), id); err != nil {
		slog.Error("Deactivate worker service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Worker deactivated successfully", nil)
}

// Get implements WorkerHandler.
func (h *WorkerHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	workerResponse, err := h.workerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, workerResponse)
}

// List implements WorkerHandler.
func (h *WorkerHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := worker.WorkerFilter{
		CooperativeID: optionalQuery(r, "cooperative_id"),
		FacilityID:    optionalQuery(r, "facility_id"),
		Status:        optionalQuery(r, "status"),
		Search:        optionalQuery(r, "search"),
		Page:          intQuery(r, "page", 1),
		Limit:         intQuery(r, "limit", 20),
	}

	listResponse, err := h.workerService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResponse.Workers, &response.Meta{
		Page:       listResponse.Page,
		Limit:      listResponse.Limit,
		TotalItems: listResponse.TotalCount,
		TotalPages: totalPages(listResponse.TotalCount, listResponse.Limit),
	})
}

func totalPages(totalItems int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int((totalItems + int64(limit) - 1) / int64(limit))
}
