package http

import (
	"log/slog"
	"net/http"

	"github.com/agroverde/packhouse-backend-go/internal/domain/report"
	"github.com/agroverde/packhouse-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ReportHandler interface {
	DailyOperations(w http.ResponseWriter, r *http.Request)
	WorkerDetail(w http.ResponseWriter, r *http.Request)
	WorkforceStats(w http.ResponseWriter, r *http.Request)
	AttendanceReport(w http.ResponseWriter, r *http.Request)
	ExporterRanking(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// DailyOperations implements ReportHandler. An absent date query parameter
// means today; the service resolves it against its clock.
func (h *ReportHandlerImpl) DailyOperations(w http.ResponseWriter, r *http.Request) {
	daily, err := h.reportService.DailyOperations(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		slog.Error("Daily operations report error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, daily)
}

// WorkerDetail implements ReportHandler.
func (h *ReportHandlerImpl) WorkerDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.reportService.WorkerDetail(r.Context(), chi.URLParam(r, "workerID"))
	if err != nil {
		slog.Error("Worker detail report error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, detail)
}

// WorkforceStats implements ReportHandler.
func (h *ReportHandlerImpl) WorkforceStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.reportService.WorkforceStats(r.Context())
	if err != nil {
		slog.Error("Workforce stats report error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// AttendanceReport implements ReportHandler.
func (h *ReportHandlerImpl) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	filter := &report.AttendanceReportFilter{
		StartDate: optionalQuery(r, "start_date"),
		EndDate:   optionalQuery(r, "end_date"),
		WorkerID:  optionalQuery(r, "worker_id"),
	}

	attendanceReport, err := h.reportService.AttendanceReport(r.Context(), filter)
	if err != nil {
		slog.Error("Attendance report error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, attendanceReport)
}

// ExporterRanking implements ReportHandler.
func (h *ReportHandlerImpl) ExporterRanking(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "date query parameter is required", nil)
		return
	}

	ranking, err := h.reportService.ExporterRanking(r.Context(), date)
	if err != nil {
		slog.Error("Exporter ranking report error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, ranking)
}
