package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agroverde/packhouse-backend-go/internal/domain/master/cooperative"
	"github.com/agroverde/packhouse-backend-go/internal/domain/master/exporter"
	"github.com/agroverde/packhouse-backend-go/internal/domain/master/facility"
	"github.com/agroverde/packhouse-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// MasterHandler serves the reference entities: exporters, cooperatives and
// facilities. Reads are open to any authenticated user; writes are wired
// behind the admin middleware in the router.
type MasterHandler interface {
	CreateExporter(w http.ResponseWriter, r *http.Request)
	GetExporter(w http.ResponseWriter, r *http.Request)
	ListExporters(w http.ResponseWriter, r *http.Request)
	UpdateExporter(w http.ResponseWriter, r *http.Request)
	DeactivateExporter(w http.ResponseWriter, r *http.Request)

	CreateCooperative(w http.ResponseWriter, r *http.Request)
	GetCooperative(w http.ResponseWriter, r *http.Request)
	ListCooperatives(w http.ResponseWriter, r *http.Request)
	UpdateCooperative(w http.ResponseWriter, r *http.Request)
	DeactivateCooperative(w http.ResponseWriter, r *http.Request)

	CreateFacility(w http.ResponseWriter, r *http.Request)
	GetFacility(w http.ResponseWriter, r *http.Request)
	ListFacilities(w http.ResponseWriter, r *http.Request)
	UpdateFacility(w http.ResponseWriter, r *http.Request)
	DeactivateFacility(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	exporterService    exporter.ExporterService
	cooperativeService cooperative.CooperativeService
	facilityService    facility.FacilityService
}

func NewMasterHandler(exporterService exporter.ExporterService, cooperativeService cooperative.CooperativeService, facilityService facility.FacilityService) MasterHandler {
	return &MasterHandlerImpl{
		exporterService:    exporterService,
		cooperativeService: cooperativeService,
		facilityService:    facilityService,
	}
}

// CreateExporter implements MasterHandler.
func (h *MasterHandlerImpl) CreateExporter(w http.ResponseWriter, r *http.Request) {
	var req exporter.CreateExporterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.exporterService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create exporter service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Exporter created successfully", created)
}

// GetExporter implements MasterHandler.
func (h *MasterHandlerImpl) GetExporter(w http.ResponseWriter, r *http.Request) {
	found, err := h.exporterService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListExporters implements MasterHandler.
func (h *MasterHandlerImpl) ListExporters(w http.ResponseWriter, r *http.Request) {
	exporters, err := h.exporterService.List(r.Context(), boolQuery(r, "include_inactive"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, exporters)
}

// UpdateExporter implements MasterHandler.
func (h *MasterHandlerImpl) UpdateExporter(w http.ResponseWriter, r *http.Request) {
	var req exporter.UpdateExporterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.exporterService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update exporter service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exporter updated successfully", updated)
}

// DeactivateExporter implements MasterHandler.
func (h *MasterHandlerImpl) DeactivateExporter(w http.ResponseWriter, r *http.Request) {
	if err := h.exporterService.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Exporter deactivated successfully", nil)
}

// CreateCooperative implements MasterHandler.
func (h *MasterHandlerImpl) CreateCooperative(w http.ResponseWriter, r *http.Request) {
	var req cooperative.CreateCooperativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.cooperativeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create cooperative service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Cooperative created successfully", created)
}

// GetCooperative implements MasterHandler.
func (h *MasterHandlerImpl) GetCooperative(w http.ResponseWriter, r *http.Request) {
	found, err := h.cooperativeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListCooperatives implements MasterHandler.
func (h *MasterHandlerImpl) ListCooperatives(w http.ResponseWriter, r *http.Request) {
	cooperatives, err := h.cooperativeService.List(r.Context(), boolQuery(r, "include_inactive"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, cooperatives)
}

// UpdateCooperative implements MasterHandler.
func (h *MasterHandlerImpl) UpdateCooperative(w http.ResponseWriter, r *http.Request) {
	var req cooperative.UpdateCooperativeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.cooperativeService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update cooperative service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cooperative updated successfully", updated)
}

// DeactivateCooperative implements MasterHandler.
func (h *MasterHandlerImpl) DeactivateCooperative(w http.ResponseWriter, r *http.Request) {
	if err := h.cooperativeService.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Cooperative deactivated successfully", nil)
}

// CreateFacility implements MasterHandler.
func (h *MasterHandlerImpl) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req facility.CreateFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.facilityService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create facility service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Facility created successfully", created)
}

// GetFacility implements MasterHandler.
func (h *MasterHandlerImpl) GetFacility(w http.ResponseWriter, r *http.Request) {
	found, err := h.facilityService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, found)
}

// ListFacilities implements MasterHandler.
func (h *MasterHandlerImpl) ListFacilities(w http.ResponseWriter, r *http.Request) {
	facilities, err := h.facilityService.List(r.Context(), boolQuery(r, "include_inactive"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, facilities)
}

// UpdateFacility implements MasterHandler.
func (h *MasterHandlerImpl) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	var req facility.UpdateFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.facilityService.Update(r.Context(), req)
	if err != nil {
		slog.Error("Update facility service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Facility updated successfully", updated)
}

// DeactivateFacility implements MasterHandler.
func (h *MasterHandlerImpl) DeactivateFacility(w http.ResponseWriter, r *http.Request) {
	if err := h.facilityService.Deactivate(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Facility deactivated successfully", nil)
}
