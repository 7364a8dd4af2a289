package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/agroverde/packhouse-backend-go/internal/domain/attendance"
	"github.com/agroverde/packhouse-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	CheckOut(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var checkInReq attendance.CheckInRequest

	if err := json.NewDecoder(r.Body).Decode(&checkInReq); err != nil {
		slog.Error("CheckIn decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	attendanceResponse, err := h.attendanceService.CheckIn(r.Context(), checkInReq)
	if err != nil {
		slog.Error("CheckIn service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker checked in", "attendance_id", attendanceResponse.ID, "worker_id", attendanceResponse.WorkerID)
	response.Created(w, "Worker checked in successfully", attendanceResponse)
}

// CheckOut implements AttendanceHandler.
func (h *AttendanceHandlerImpl) CheckOut(w http.ResponseWriter, r *http.Request) {
	checkOutReq := attendance.CheckOutRequest{AttendanceID: chi.URLParam(r, "id")}

	checkOutResponse, err := h.attendanceService.CheckOut(r.Context(), checkOutReq)
	if err != nil {
		slog.Error("CheckOut service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Worker checked out",
		"attendance_id", checkOutResponse.Attendance.ID,
		"sessions_closed", checkOutResponse.SessionsClosed,
	)
	response.SuccessWithMessage(w, "Worker checked out successfully", checkOutResponse)
}

// Get implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	attendanceResponse, err := h.attendanceService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendanceResponse)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AttendanceFilter{
		WorkerID:   optionalQuery(r, "worker_id"),
		FacilityID: optionalQuery(r, "facility_id"),
		Status:     optionalQuery(r, "status"),
		Date:       optionalQuery(r, "date"),
		StartDate:  optionalQuery(r, "start_date"),
		EndDate:    optionalQuery(r, "end_date"),
		Page:       intQuery(r, "page", 1),
		Limit:      intQuery(r, "limit", 20),
		SortBy:     r.URL.Query().Get("sort_by"),
		SortOrder:  r.URL.Query().Get("sort_order"),
	}

	listResponse, err := h.attendanceService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, listResponse.Attendances, &response.Meta{
		Page:       listResponse.Page,
		Limit:      listResponse.Limit,
		TotalItems: listResponse.TotalCount,
		TotalPages: totalPages(listResponse.TotalCount, listResponse.Limit),
	})
}
