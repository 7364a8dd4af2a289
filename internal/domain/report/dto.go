package report

import (
	"github.com/agroverde/packhouse-backend-go/internal/pkg/validator"
)

// DailyOperationsResponse summarizes one day of packhouse throughput.
type DailyOperationsResponse struct {
	Date                string  `json:"date"`
	BagsCount           int64   `json:"bags_count"`
	TotalKilograms      float64 `json:"total_kilograms"`
	AvgWorkersPerBag    float64 `json:"avg_workers_per_bag"`
	TotalHoursToday     float64 `json:"total_hours_today"`
	ExportersServed     int64   `json:"exporters_served"`
}

// WorkerDetailResponse is one worker's all-time labor statistics.
type WorkerDetailResponse struct {
	WorkerID            string  `json:"worker_id"`
	TotalHours          float64 `json:"total_hours"`
	TotalBags           int64   `json:"total_bags"`
	Earnings            float64 `json:"earnings"`
	DaysWorkedThisMonth int64   `json:"days_worked_this_month"`
}

// TopPerformerResponse names the worker appearing on the most bags.
// Ties break to the lowest worker id so the answer is deterministic.
type TopPerformerResponse struct {
	WorkerID   string  `json:"worker_id"`
	WorkerName *string `json:"worker_name,omitempty"`
	BagCount   int64   `json:"bag_count"`
}

type WorkforceStatsResponse struct {
	ActiveWorkers     int64                 `json:"active_workers"`
	InactiveWorkers   int64                 `json:"inactive_workers"`
	SuspendedWorkers  int64                 `json:"suspended_workers"`
	TotalHours        float64               `json:"total_hours"`
	TotalLaborCosts   float64               `json:"total_labor_costs"`
	AvgHoursPerWorker float64               `json:"avg_hours_per_worker"`
	TopPerformer      *TopPerformerResponse `json:"top_performer,omitempty"`
}

// AttendanceReportFilter narrows the attendance report by an optional
// inclusive date range and/or a single worker.
type AttendanceReportFilter struct {
	StartDate *string
	EndDate   *string
	WorkerID  *string
}

func (f *AttendanceReportFilter) Validate() error {
	var errs validator.ValidationErrors

	for field, v := range map[string]*string{
		"start_date": f.StartDate,
		"end_date":   f.EndDate,
	} {
		if v != nil && *v != "" {
			if _, ok := validator.IsValidDate(*v); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   field,
					Message: field + " must be in YYYY-MM-DD format",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkerAttendanceSummary struct {
	WorkerID       string `json:"worker_id"`
	TotalDays      int64  `json:"total_days"`
	CheckedOutDays int64  `json:"checked_out_days"`
}

type AttendanceReportResponse struct {
	TotalRecords  int64                     `json:"total_records"`
	ByStatus      map[string]int64          `json:"by_status"`
	UniqueWorkers int64                     `json:"unique_workers"`
	PerWorker     []WorkerAttendanceSummary `json:"per_worker"`
}
