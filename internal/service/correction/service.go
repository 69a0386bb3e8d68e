package correction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/correction"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/exception"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/notification"
	"github.com/google/uuid"
)

type WorkflowServiceImpl struct {
	correctionRepo correction.Repository
	exceptionRepo  exception.Repository
	attendanceRepo attendance.Repository
	dispatcher     notification.Dispatcher
}

func NewWorkflowService(
	correctionRepo correction.Repository,
	exceptionRepo exception.Repository,
	attendanceRepo attendance.Repository,
	dispatcher notification.Dispatcher,
) correction.WorkflowService {
	return &WorkflowServiceImpl{
		correctionRepo: correctionRepo,
		exceptionRepo:  exceptionRepo,
		attendanceRepo: attendanceRepo,
		dispatcher:     dispatcher,
	}
}

// Create implements correction.WorkflowService.
func (s *WorkflowServiceImpl) Create(ctx context.Context, req correction.CreateRequest) (correction.Response, error) {
	if err := req.Validate(); err != nil {
		return correction.Response{}, err
	}

	rec, err := s.attendanceRepo.GetByID(ctx, req.AttendanceRecordID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return correction.Response{}, attendance.ErrRecordNotFound
		}
		return correction.Response{}, fmt.Errorf("failed to check attendance record: %w", err)
	}

	created, err := s.correctionRepo.Create(ctx, correction.Request{
		ID:                 uuid.NewString(),
		EmployeeID:         req.EmployeeID,
		AttendanceRecordID: req.AttendanceRecordID,
		Reason:             req.Reason,
		Status:             correction.StatusSubmitted,
	})
	if err != nil {
		return correction.Response{}, fmt.Errorf("failed to create correction request: %w", err)
	}

	// An open dispute holds the record out of payroll until review completes.
	if err := s.attendanceRepo.SetFinalized(ctx, rec.ID, false); err != nil {
		return correction.Response{}, fmt.Errorf("failed to unlock record for payroll: %w", err)
	}

	s.dispatcher.Dispatch(ctx, notification.Event{
		RecipientID: req.EmployeeID,
		Type:        notification.TypeCorrectionSubmitted,
		Message:     fmt.Sprintf("Correction request for record %s was submitted", rec.ID),
	})

	return correction.ToResponse(created), nil
}

// UpdateStatus implements correction.WorkflowService.
func (s *WorkflowServiceImpl) UpdateStatus(ctx context.Context, id string, req correction.UpdateStatusRequest) (correction.Response, error) {
	if err := req.Validate(); err != nil {
		return correction.Response{}, err
	}

	target := correction.Status(req.Status)
	if target == correction.StatusEscalated {
		return correction.Response{}, correction.ErrEscalationReservedToSweep
	}

	cr, err := s.correctionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, correction.ErrCorrectionNotFound) {
			return correction.Response{}, correction.ErrCorrectionNotFound
		}
		return correction.Response{}, fmt.Errorf("failed to get correction request: %w", err)
	}

	if !correction.CanTransition(cr.Status, target) {
		return correction.Response{}, correction.ErrInvalidStatusTransition
	}

	if err := s.correctionRepo.UpdateStatus(ctx, id, target); err != nil {
		return correction.Response{}, fmt.Errorf("failed to update correction status: %w", err)
	}

	// Only approval releases the record back to payroll, and only once no
	// other open request still references it. Rejection terminates the
	// dispute but leaves the hold in place for payroll to resolve.
	if target == correction.StatusApproved {
		open, err := s.correctionRepo.HasOpenForRecord(ctx, cr.AttendanceRecordID)
		if err != nil {
			return correction.Response{}, fmt.Errorf("failed to check open correction requests: %w", err)
		}
		if !open {
			if err := s.attendanceRepo.SetFinalized(ctx, cr.AttendanceRecordID, true); err != nil {
				return correction.Response{}, fmt.Errorf("failed to re-finalize record for payroll: %w", err)
			}
		}
	}

	s.dispatcher.Dispatch(ctx, notification.Event{
		RecipientID: cr.EmployeeID,
		Type:        notification.TypeCorrectionReviewed,
		Message:     fmt.Sprintf("Correction request %s moved to %s", cr.ID, target),
	})

	cr.Status = target
	return correction.ToResponse(cr), nil
}

// Get implements correction.WorkflowService.
func (s *WorkflowServiceImpl) Get(ctx context.Context, id string) (correction.Response, error) {
	cr, err := s.correctionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, correction.ErrCorrectionNotFound) {
			return correction.Response{}, correction.ErrCorrectionNotFound
		}
		return correction.Response{}, fmt.Errorf("failed to get correction request: %w", err)
	}
	return correction.ToResponse(cr), nil
}

// List implements correction.WorkflowService.
func (s *WorkflowServiceImpl) List(ctx context.Context, filter correction.ListFilter) ([]correction.Response, int64, error) {
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	requests, total, err := s.correctionRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list correction requests: %w", err)
	}

	responses := make([]correction.Response, 0, len(requests))
	for _, cr := range requests {
		responses = append(responses, correction.ToResponse(cr))
	}
	return responses, total, nil
}

// EscalatePastCutoff implements correction.WorkflowService.
func (s *WorkflowServiceImpl) EscalatePastCutoff(ctx context.Context, cutoff time.Time, limit int) (correction.SweepResult, error) {
	var result correction.SweepResult

	stale, err := s.correctionRepo.ListStaleSubmitted(ctx, cutoff, limit)
	if err != nil {
		return result, fmt.Errorf("failed to list stale correction requests: %w", err)
	}
	for _, cr := range stale {
		if err := s.correctionRepo.UpdateStatus(ctx, cr.ID, correction.StatusEscalated); err != nil {
			return result, fmt.Errorf("failed to escalate correction request %s: %w", cr.ID, err)
		}
		result.EscalatedCorrections++

		s.dispatcher.Dispatch(ctx, notification.Event{
			RecipientID: cr.EmployeeID,
			Type:        notification.TypeCorrectionEscalated,
			Message:     fmt.Sprintf("Correction request %s was escalated at the payroll cutoff", cr.ID),
		})
	}

	// Exceptions still PENDING at the cutoff are escalated in bulk, without
	// per-item notifications; the sweep result is the audit signal.
	pending, err := s.exceptionRepo.ListPendingCreatedBefore(ctx, cutoff, limit)
	if err != nil {
		return result, fmt.Errorf("failed to list pending exceptions: %w", err)
	}
	for _, exc := range pending {
		if err := s.exceptionRepo.UpdateStatus(ctx, exc.ID, exception.StatusEscalated, exc.Reason); err != nil {
			return result, fmt.Errorf("failed to escalate exception %s: %w", exc.ID, err)
		}
		result.EscalatedExceptions++
	}

	return result, nil
}
