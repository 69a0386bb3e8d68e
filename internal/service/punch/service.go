package punch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/notification"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/shift"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/locking"
	"github.com/google/uuid"
)

// maxConflictRetries bounds the optimistic-concurrency retry loop. The keyed
// mutex already serializes punches within one process; the version check
// covers concurrent instances.
const maxConflictRetries = 3

type PunchServiceImpl struct {
	attendanceRepo attendance.Repository
	resolver       assignment.Service
	dispatcher     notification.Dispatcher
	locks          *locking.KeyedMutex
	now            func() time.Time
}

func NewPunchService(
	attendanceRepo attendance.Repository,
	resolver assignment.Service,
	dispatcher notification.Dispatcher,
) attendance.PunchService {
	return &PunchServiceImpl{
		attendanceRepo: attendanceRepo,
		resolver:       resolver,
		dispatcher:     dispatcher,
		locks:          locking.NewKeyedMutex(),
		now:            time.Now,
	}
}

// Clock implements attendance.PunchService.
func (s *PunchServiceImpl) Clock(ctx context.Context, req attendance.ClockRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	// Punch timestamps come from the server clock, never the client.
	ts := req.Timestamp
	if ts.IsZero() {
		ts = s.now().UTC()
	}
	day := truncateToDay(ts)
	incoming := attendance.Punch{Type: attendance.PunchType(req.Type), Timestamp: ts}

	key := req.EmployeeID + "|" + day.Format("2006-01-02")
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	resolved, err := s.resolver.Resolve(ctx, req.EmployeeID, day)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to resolve shift for punch: %w", err)
	}

	var rec attendance.Record
	for attempt := 0; ; attempt++ {
		existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, day)
		if err != nil {
			return attendance.RecordResponse{}, fmt.Errorf("failed to load attendance record: %w", err)
		}

		if existing == nil {
			rec = attendance.Record{
				ID:                  uuid.NewString(),
				EmployeeID:          req.EmployeeID,
				Date:                day,
				Punches:             applyPolicy(nil, incoming, resolved.Policy),
				FinalizedForPayroll: true,
			}
			recompute(&rec)

			created, err := s.attendanceRepo.Create(ctx, rec)
			if err != nil {
				return attendance.RecordResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
			}
			rec = created
			break
		}

		rec = *existing
		rec.Punches = applyPolicy(rec.Punches, incoming, resolved.Policy)
		recompute(&rec)

		err = s.attendanceRepo.UpdatePunches(ctx, rec)
		if err == nil {
			break
		}
		if errors.Is(err, attendance.ErrVersionConflict) && attempt < maxConflictRetries {
			continue
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	// An OUT should complete the day; flag it to the employee when it does not.
	if incoming.Type == attendance.PunchOut && rec.HasMissedPunch {
		s.dispatcher.Dispatch(ctx, notification.Event{
			RecipientID: rec.EmployeeID,
			Type:        notification.TypeMissedPunch,
			Message:     fmt.Sprintf("Attendance for %s has a missed punch", rec.Date.Format("2006-01-02")),
		})
	}

	return attendance.ToResponse(rec), nil
}

// OverwritePunches implements attendance.PunchService.
func (s *PunchServiceImpl) OverwritePunches(ctx context.Context, req attendance.ManualCorrectionRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.attendanceRepo.GetByID(ctx, req.RecordID)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	key := rec.EmployeeID + "|" + rec.Date.Format("2006-01-02")
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	for attempt := 0; ; attempt++ {
		punches := make([]attendance.Punch, 0, len(req.Punches))
		for _, p := range req.Punches {
			punches = append(punches, attendance.Punch{
				Type:      attendance.PunchType(p.Type),
				Timestamp: p.Timestamp,
			})
		}
		rec.Punches = punches
		recompute(&rec)

		err = s.attendanceRepo.UpdatePunches(ctx, rec)
		if err == nil {
			break
		}
		if errors.Is(err, attendance.ErrVersionConflict) && attempt < maxConflictRetries {
			fresh, ferr := s.attendanceRepo.GetByID(ctx, req.RecordID)
			if ferr != nil {
				return attendance.RecordResponse{}, fmt.Errorf("failed to reload attendance record: %w", ferr)
			}
			rec = fresh
			continue
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to overwrite punches: %w", err)
	}

	reason := "no reason provided"
	if req.Reason != nil && *req.Reason != "" {
		reason = *req.Reason
	}
	s.dispatcher.Dispatch(ctx, notification.Event{
		RecipientID: rec.EmployeeID,
		Type:        notification.TypeAttendanceCorrected,
		Message:     fmt.Sprintf("Attendance for %s was corrected by an administrator: %s", rec.Date.Format("2006-01-02"), reason),
	})

	return attendance.ToResponse(rec), nil
}

// Get implements attendance.PunchService.
func (s *PunchServiceImpl) Get(ctx context.Context, id string) (attendance.RecordResponse, error) {
	rec, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.RecordResponse{}, attendance.ErrRecordNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	return attendance.ToResponse(rec), nil
}

// List implements attendance.PunchService.
func (s *PunchServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListRecordsResponse, error) {
	if filter.Limit == 0 {
		filter.Limit = 20
	}
	if filter.Page == 0 {
		filter.Page = 1
	}

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListRecordsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, attendance.ToResponse(rec))
	}

	return attendance.ListRecordsResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		Records:    responses,
	}, nil
}

func applyPolicy(existing []attendance.Punch, incoming attendance.Punch, policy string) []attendance.Punch {
	if policy == string(shift.PunchPolicyFirstLast) {
		return attendance.ApplyFirstLast(existing, incoming)
	}
	return append(existing, incoming)
}

func recompute(rec *attendance.Record) {
	rec.WorkMinutes = attendance.CalculateWorkMinutes(rec.Punches)
	rec.HasMissedPunch = attendance.HasMissedPunch(rec.Punches)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
