package session

import (
	"context"
	"time"

	"github.com/agroverde/packhouse-backend-go/internal/domain/attendance"
	"github.com/agroverde/packhouse-backend-go/internal/domain/master/exporter"
	"github.com/agroverde/packhouse-backend-go/internal/domain/session"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/clock"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
)

type SessionServiceImpl struct {
	db    *database.DB
	clock clock.Clock
	session.SessionRepository
	attendance.AttendanceRepository
	exporter.ExporterRepository
}

func NewSessionService(db *database.DB, clk clock.Clock, sessionRepository session.SessionRepository, attendanceRepository attendance.AttendanceRepository, exporterRepository exporter.ExporterRepository) session.SessionService {
	return &SessionServiceImpl{
		db:                   db,
		clock:                clk,
		SessionRepository:    sessionRepository,
		AttendanceRepository: attendanceRepository,
		ExporterRepository:   exporterRepository,
	}
}

// Open implements session.SessionService. The worker and date come from the
// parent attendance, never from the request, so a session can never disagree
// with the day it sits under.
func (s *SessionServiceImpl) Open(ctx context.Context, req session.OpenSessionRequest) (session.SessionResponse, error) {
	if err := req.Validate(); err != nil {
		return session.SessionResponse{}, err
	}

	att, err := s.AttendanceRepository.GetByID(ctx, req.AttendanceID)
	if err != nil {
		return session.SessionResponse{}, err
	}
	if att.IsCheckedOut() {
		return session.SessionResponse{}, session.ErrAttendanceClosed
	}

	exp, err := s.ExporterRepository.GetByID(ctx, req.ExporterID)
	if err != nil {
		return session.SessionResponse{}, err
	}
	if !exp.Active {
		return session.SessionResponse{}, exporter.ErrExporterInactive
	}

	active, err := s.SessionRepository.GetActiveByWorker(ctx, att.WorkerID)
	if err != nil {
		return session.SessionResponse{}, err
	}
	if active != nil {
		return session.SessionResponse{}, session.ErrSessionAlreadyActive
	}

	now := s.clock.Now()
	newSession := session.Session{
		AttendanceID: att.ID,
		WorkerID:     att.WorkerID,
		ExporterID:   req.ExporterID,
		FacilityID:   req.FacilityID,
		SupervisorID: att.SupervisorID,
		Date:         att.Date,
		Status:       session.StatusActive,
		StartTime:    now,
	}

	created, err := s.SessionRepository.Create(ctx, newSession)
	if err != nil {
		return session.SessionResponse{}, err
	}
	created.WorkerName = att.WorkerName
	created.ExporterName = &exp.Name

	return s.toResponse(created), nil
}

// Close implements session.SessionService.
func (s *SessionServiceImpl) Close(ctx context.Context, id string) (session.SessionResponse, error) {
	closed, err := s.SessionRepository.Close(ctx, id, s.clock.Now())
	if err != nil {
		return session.SessionResponse{}, err
	}

	return s.toResponse(closed), nil
}

// MarkValidated implements session.SessionService.
func (s *SessionServiceImpl) MarkValidated(ctx context.Context, id string) (session.SessionResponse, error) {
	validated, err := s.SessionRepository.MarkValidated(ctx, id)
	if err != nil {
		return session.SessionResponse{}, err
	}

	return s.toResponse(validated), nil
}

// Get implements session.SessionService.
func (s *SessionServiceImpl) Get(ctx context.Context, id string) (session.SessionResponse, error) {
	found, err := s.SessionRepository.GetByID(ctx, id)
	if err != nil {
		return session.SessionResponse{}, err
	}

	return s.toResponse(found), nil
}

// List implements session.SessionService.
func (s *SessionServiceImpl) List(ctx context.Context, filter session.SessionFilter) (session.ListSessionsResponse, error) {
	if err := filter.Validate(); err != nil {
		return session.ListSessionsResponse{}, err
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	sessions, total, err := s.SessionRepository.List(ctx, filter)
	if err != nil {
		return session.ListSessionsResponse{}, err
	}

	responses := make([]session.SessionResponse, 0, len(sessions))
	for _, found := range sessions {
		responses = append(responses, s.toResponse(found))
	}

	return session.ListSessionsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Sessions:   responses,
	}, nil
}

func (s *SessionServiceImpl) toResponse(found session.Session) session.SessionResponse {
	resp := session.SessionResponse{
		ID:           found.ID,
		AttendanceID: found.AttendanceID,
		WorkerID:     found.WorkerID,
		WorkerName:   found.WorkerName,
		ExporterID:   found.ExporterID,
		ExporterName: found.ExporterName,
		FacilityID:   found.FacilityID,
		SupervisorID: found.SupervisorID,
		Date:         found.Date.Format("2006-01-02"),
		Status:       string(found.Status),
		StartTime:    found.StartTime.Format(time.RFC3339),
	}
	if found.EndTime != nil {
		formatted := found.EndTime.Format(time.RFC3339)
		resp.EndTime = &formatted
	}

	if d, ok := session.Duration(found, s.clock.Now()); ok {
		resp.DurationHours = d.Hours()
	}

	return resp
}
