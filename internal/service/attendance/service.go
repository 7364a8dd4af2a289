package attendance

import (
	"context"
	"time"

	"github.com/agroverde/packhouse-backend-go/internal/domain/attendance"
	"github.com/agroverde/packhouse-backend-go/internal/domain/worker"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/clock"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/agroverde/packhouse-backend-go/internal/domain/session"
	"github.com/agroverde/packhouse-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db    *database.DB
	clock clock.Clock
	attendance.AttendanceRepository
	session.SessionRepository
	worker.WorkerRepository
}

func NewAttendanceService(db *database.DB, clk clock.Clock, attendanceRepository attendance.AttendanceRepository, sessionRepository session.SessionRepository, workerRepository worker.WorkerRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		clock:                clk,
		AttendanceRepository: attendanceRepository,
		SessionRepository:    sessionRepository,
		WorkerRepository:     workerRepository,
	}
}

func supervisorFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", err
	}

	supervisorID, ok := claims["user_id"].(string)
	if !ok || supervisorID == "" {
		return "", jwtauth.ErrUnauthorized
	}

	return supervisorID, nil
}

// CheckIn implements attendance.AttendanceService. The one-record-per-day
// rule is enforced by the repository's unique index, never by a
// check-then-insert sequence.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	supervisorID, err := supervisorFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	w, err := s.WorkerRepository.GetByID(ctx, req.WorkerID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !w.IsActive() {
		return attendance.AttendanceResponse{}, worker.ErrWorkerInactive
	}

	now := s.clock.Now()
	newAttendance := attendance.Attendance{
		WorkerID:     req.WorkerID,
		FacilityID:   req.FacilityID,
		SupervisorID: supervisorID,
		Date:         now.Truncate(24 * time.Hour),
		Status:       attendance.StatusOnSite,
		CheckInTime:  now,
	}

	created, err := s.AttendanceRepository.Create(ctx, newAttendance)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	created.WorkerName = &w.FullName
	created.WorkerCode = &w.Code

	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. The session sweep and
// the attendance transition run in one transaction; a retry after the
// attendance already closed reports ErrAlreadyCheckedOut without touching
// any session.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.CheckOutResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	current, err := s.AttendanceRepository.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}
	if current.IsCheckedOut() {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	now := s.clock.Now()

	var closed attendance.Attendance
	var sessionsClosed int64
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		sessionsClosed, err = s.SessionRepository.CloseAllActiveByAttendance(txCtx, req.AttendanceID, now)
		if err != nil {
			return err
		}

		closed, err = s.AttendanceRepository.SetCheckedOut(txCtx, req.AttendanceID, now)
		return err
	})
	if err != nil {
		return attendance.CheckOutResponse{}, err
	}
	closed.WorkerName = current.WorkerName
	closed.WorkerCode = current.WorkerCode

	return attendance.CheckOutResponse{
		Attendance:     toResponse(closed),
		SessionsClosed: sessionsClosed,
	}, nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.AttendanceRepository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(att), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	attendances, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, toResponse(att))
	}

	return attendance.ListAttendanceResponse{
		TotalCount:  total,
		Page:        filter.Page,
		Limit:       filter.Limit,
		Attendances: responses,
	}, nil
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	resp := attendance.AttendanceResponse{
		ID:           att.ID,
		WorkerID:     att.WorkerID,
		WorkerName:   att.WorkerName,
		WorkerCode:   att.WorkerCode,
		FacilityID:   att.FacilityID,
		SupervisorID: att.SupervisorID,
		Date:         att.Date.Format("2006-01-02"),
		Status:       string(att.Status),
		CheckInTime:  att.CheckInTime.Format(time.RFC3339),
	}
	if att.CheckOutTime != nil {
		formatted := att.CheckOutTime.Format(time.RFC3339)
		resp.CheckOutTime = &formatted
	}

	return resp
}
