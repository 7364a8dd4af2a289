package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agroverde/packhouse-backend-go/internal/domain/session"
	"github.com/agroverde/packhouse-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SessionHandler interface {
	Open(w http.ResponseWriter, r *http.Request)
	Close(w http.ResponseWriter, r *http.Request)
	MarkValidated(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type SessionHandlerImpl struct {
	sessionService session.SessionService
}

func NewSessionHandler(sessionService session.SessionService) SessionHandler {
	return &SessionHandlerImpl{sessionService: sessionService}
}

// Open implements SessionHandler.
func (h *SessionHandlerImpl) Open(w http.ResponseWriter, r *http.Request) {
	var openReq session.OpenSessionRequest

	if err := json.NewDecoder(r.Body).Decode(&openReq); err != nil {
		slog.Error("Open session decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	sessionResponse, err := h.sessionService.Open(r.Context(), openReq)
	if err != nil {
		slog.Error("Open session service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Session opened", "session_id", sessionResponse.ID, "worker_id", sessionResponse.WorkerID)
	response.Created(w, "Session opened successfully", sessionResponse)
}

// Close implements SessionHandler.
func (h *SessionHandlerImpl) Close(w http.ResponseWriter, r *http.Request) {
	sessionResponse, err := h.sessionService.Close(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Close session service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Session closed", "session_id", sessionResponse.ID)
	response.SuccessWithMessage(w, "Session closed successfully", sessionResponse)
}

// MarkValidated implements SessionHandler.
func (h *SessionHandlerImpl) MarkValidated(w http.ResponseWriter, r *http.Request) {
	sessionResponse, err := h.sessionService.MarkValidated(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		slog.Error("Validate session service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Session validated successfully", sessionResponse)
}

// Get implements SessionHandler.
func (h *SessionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	sessionResponse, err := h.sessionService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, sessionResponse)
}

// List implements SessionHandler.
func (h *SessionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := session.SessionFilter{
		AttendanceID: optionalQuery(r, "attendance_id"),
		WorkerID:     optionalQuery(r, "worker_id"),
		ExporterID:   optionalQuery(r, "exporter_id"),
		Status:       optionalQuery(r, "status"),
		Date:         optionalQuery(r, "date"),
		Page:         intQuery(r, "page", 1),
		Limit:        intQuery(r, "limit", 20),
	}

	listResponse, err := h.sessionService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResponse.Sessions, &response.Meta{
		Page:       listResponse.Page,
		Limit:      listResponse.Limit,
		TotalItems: listResponse.TotalCount,
		TotalPages: totalPages(listResponse.TotalCount, listResponse.Limit),
	})
}
