package response

import (
	"errors"
	"net/http"

	"github.com/agroverde/packhouse-backend-go/internal/domain/attendance"
	"github.com/agroverde/packhouse-backend-go/internal/domain/auth"
	"github.com/agroverde/packhouse-backend-go/internal/domain/bag"
	"github.com/agroverde/packhouse-backend-go/internal/domain/master/cooperative"
	"github.com/agroverde/packhouse-backend-go/internal/domain/master/exporter"
	"github.com/agroverde/packhouse-backend-go/internal/domain/master/facility"
	"github.com/agroverde/packhouse-backend-go/internal/domain/ratecard"
	"github.com/agroverde/packhouse-backend-go/internal/domain/session"
	"github.com/agroverde/packhouse-backend-go/internal/domain/user"
	"github.com/agroverde/packhouse-backend-go/internal/domain/worker"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, auth.ErrUserInactive):
		Forbidden(w, "User account is deactivated")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")
	case errors.Is(err, user.ErrSupervisorAccessRequired):
		Forbidden(w, "Supervisor access required")
	case errors.Is(err, user.ErrPermissionDenied):
		Forbidden(w, "Permission denied")
	case errors.Is(err, user.ErrCannotDeactivateLastAdmin):
		Conflict(w, "Cannot deactivate the last active administrator")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrWorkerCodeExists):
		Conflict(w, "Worker code already registered")
	case errors.Is(err, worker.ErrWorkerInactive):
		Conflict(w, "Worker is not active")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Worker already checked in today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Attendance already checked out")

	// Session domain errors
	case errors.Is(err, session.ErrSessionNotFound):
		NotFound(w, "Session not found")
	case errors.Is(err, session.ErrSessionNotActive):
		Conflict(w, "Session is not active")
	case errors.Is(err, session.ErrSessionNotClosed):
		Conflict(w, "Session must be closed before validation")
	case errors.Is(err, session.ErrSessionAlreadyActive):
		Conflict(w, "Worker already has an active session")
	case errors.Is(err, session.ErrAttendanceClosed):
		Conflict(w, "Attendance is already checked out")

	// Bag domain errors
	case errors.Is(err, bag.ErrBagNotFound):
		NotFound(w, "Bag not found")
	case errors.Is(err, bag.ErrBagNumberExists):
		Conflict(w, "Bag number already recorded")
	case errors.Is(err, bag.ErrInvalidStatusChange):
		Conflict(w, "Invalid bag status progression")

	// Master data errors
	case errors.Is(err, exporter.ErrExporterNotFound):
		NotFound(w, "Exporter not found")
	case errors.Is(err, exporter.ErrExporterCodeExists):
		Conflict(w, "Exporter code already exists")
	case errors.Is(err, exporter.ErrExporterInactive):
		Conflict(w, "Exporter is deactivated")
	case errors.Is(err, cooperative.ErrCooperativeNotFound):
		NotFound(w, "Cooperative not found")
	case errors.Is(err, cooperative.ErrCooperativeCodeExists):
		Conflict(w, "Cooperative code already exists")
	case errors.Is(err, cooperative.ErrCooperativeInactive):
		Conflict(w, "Cooperative is deactivated")
	case errors.Is(err, facility.ErrFacilityNotFound):
		NotFound(w, "Facility not found")
	case errors.Is(err, facility.ErrFacilityCodeExists):
		Conflict(w, "Facility code already exists")
	case errors.Is(err, facility.ErrFacilityInactive):
		Conflict(w, "Facility is deactivated")

	// Rate card errors
	case errors.Is(err, ratecard.ErrRateCardNotFound):
		NotFound(w, "Rate card not found")
	case errors.Is(err, ratecard.ErrNoRateForDate):
		NotFound(w, "No rate card covers the requested date")
	case errors.Is(err, ratecard.ErrInvalidWindow):
		BadRequest(w, "valid_to must not precede valid_from", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
