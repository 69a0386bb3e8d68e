package exception

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/exception"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/notification"
	"github.com/google/uuid"
)

// defaultSweepLimit caps how many rows the inline escalation pass touches
// when UpdateStatus moves an exception to PENDING.
const defaultSweepLimit = 500

type ManagerServiceImpl struct {
	exceptionRepo  exception.Repository
	attendanceRepo attendance.Repository
	dispatcher     notification.Dispatcher
	window         time.Duration
	now            func() time.Time
}

func NewManagerService(
	exceptionRepo exception.Repository,
	attendanceRepo attendance.Repository,
	dispatcher notification.Dispatcher,
	window time.Duration,
) exception.ManagerService {
	return &ManagerServiceImpl{
		exceptionRepo:  exceptionRepo,
		attendanceRepo: attendanceRepo,
		dispatcher:     dispatcher,
		window:         window,
		now:            time.Now,
	}
}

// Create implements exception.ManagerService.
func (s *ManagerServiceImpl) Create(ctx context.Context, req exception.CreateRequest) (exception.Response, error) {
	if err := req.Validate(); err != nil {
		return exception.Response{}, err
	}

	// The record must exist before anything is written; a dangling exception
	// would poison the record's exception set.
	if _, err := s.attendanceRepo.GetByID(ctx, req.AttendanceRecordID); err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return exception.Response{}, attendance.ErrRecordNotFound
		}
		return exception.Response{}, fmt.Errorf("failed to check attendance record: %w", err)
	}

	created, err := s.exceptionRepo.Create(ctx, exception.TimeException{
		ID:                 uuid.NewString(),
		EmployeeID:         req.EmployeeID,
		Type:               exception.Type(req.Type),
		AttendanceRecordID: req.AttendanceRecordID,
		AssigneeID:         req.AssigneeID,
		Status:             exception.StatusOpen,
		Reason:             req.Reason,
	})
	if err != nil {
		return exception.Response{}, fmt.Errorf("failed to create time exception: %w", err)
	}

	s.dispatcher.Dispatch(ctx, notification.Event{
		RecipientID: created.AssigneeID,
		Type:        notification.TypeExceptionAssigned,
		Message:     fmt.Sprintf("Time exception %s (%s) was assigned to you", created.ID, created.Type),
	})

	return exception.ToResponse(created), nil
}

// UpdateStatus implements exception.ManagerService.
func (s *ManagerServiceImpl) UpdateStatus(ctx context.Context, id string, req exception.UpdateStatusRequest) (exception.Response, error) {
	if err := req.Validate(); err != nil {
		return exception.Response{}, err
	}

	exc, err := s.exceptionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, exception.ErrExceptionNotFound) {
			return exception.Response{}, exception.ErrExceptionNotFound
		}
		return exception.Response{}, fmt.Errorf("failed to get time exception: %w", err)
	}

	target := exception.Status(req.Status)
	reason := exc.Reason
	if req.Reason != nil {
		reason = req.Reason
	}
	if err := s.exceptionRepo.UpdateStatus(ctx, id, target, reason); err != nil {
		return exception.Response{}, fmt.Errorf("failed to update exception status: %w", err)
	}

	// Parking an exception starts its SLA clock; run one pass right away so
	// anything already past the window does not wait for the next sweep.
	if target == exception.StatusPending {
		if _, err := s.EscalateStale(ctx, s.window, defaultSweepLimit); err != nil {
			slog.Error("inline escalation pass failed", "error", err)
		}
	}

	exc.Status = target
	exc.Reason = reason
	return exception.ToResponse(exc), nil
}

// Get implements exception.ManagerService.
func (s *ManagerServiceImpl) Get(ctx context.Context, id string) (exception.Response, error) {
	exc, err := s.exceptionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, exception.ErrExceptionNotFound) {
			return exception.Response{}, exception.ErrExceptionNotFound
		}
		return exception.Response{}, fmt.Errorf("failed to get time exception: %w", err)
	}
	return exception.ToResponse(exc), nil
}

// List implements exception.ManagerService.
func (s *ManagerServiceImpl) List(ctx context.Context, filter exception.ListFilter) ([]exception.Response, int64, error) {
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	exceptions, total, err := s.exceptionRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list time exceptions: %w", err)
	}

	responses := make([]exception.Response, 0, len(exceptions))
	for _, exc := range exceptions {
		responses = append(responses, exception.ToResponse(exc))
	}
	return responses, total, nil
}

// EscalateStale implements exception.ManagerService.
func (s *ManagerServiceImpl) EscalateStale(ctx context.Context, window time.Duration, limit int) (int, error) {
	olderThan := s.now().UTC().Add(-window)

	stale, err := s.exceptionRepo.ListStalePending(ctx, olderThan, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to list stale pending exceptions: %w", err)
	}

	escalated := 0
	for _, exc := range stale {
		if err := s.exceptionRepo.UpdateStatus(ctx, exc.ID, exception.StatusEscalated, exc.Reason); err != nil {
			return escalated, fmt.Errorf("failed to escalate exception %s: %w", exc.ID, err)
		}
		escalated++

		s.dispatcher.Dispatch(ctx, notification.Event{
			RecipientID: exc.AssigneeID,
			Type:        notification.TypeExceptionEscalated,
			Message:     fmt.Sprintf("Time exception %s exceeded its response window and was escalated", exc.ID),
		})
	}
	return escalated, nil
}
