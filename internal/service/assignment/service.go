package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/employee"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/shift"
	"github.com/google/uuid"
)

type AssignmentServiceImpl struct {
	assignmentRepo assignment.Repository
	shiftRepo      shift.ShiftRepository
	ruleRepo       shift.ScheduleRuleRepository
	directory      employee.Directory // nil until the external collaborator is wired
}

func NewAssignmentService(
	assignmentRepo assignment.Repository,
	shiftRepo shift.ShiftRepository,
	ruleRepo shift.ScheduleRuleRepository,
	directory employee.Directory,
) assignment.Service {
	return &AssignmentServiceImpl{
		assignmentRepo: assignmentRepo,
		shiftRepo:      shiftRepo,
		ruleRepo:       ruleRepo,
		directory:      directory,
	}
}

// Create implements assignment.Service.
func (s *AssignmentServiceImpl) Create(ctx context.Context, req assignment.CreateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	entity, err := s.buildAssignment(ctx, req.EmployeeID, req.ShiftID, req.ScheduleRuleID, req.StartDate, req.EndDate, req.Status)
	if err != nil {
		return assignment.AssignmentResponse{}, err
	}

	created, err := s.assignmentRepo.Create(ctx, entity)
	if err != nil {
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to create assignment: %w", err)
	}
	return assignment.ToResponse(created), nil
}

// buildAssignment validates shift and schedule-rule references and assembles
// the entity shared by the single and bulk creation paths.
func (s *AssignmentServiceImpl) buildAssignment(ctx context.Context, employeeID, shiftID string, ruleID *string, startDate string, endDate *string, status *string) (assignment.ShiftAssignment, error) {
	if _, err := s.shiftRepo.GetByID(ctx, shiftID); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return assignment.ShiftAssignment{}, shift.ErrShiftNotFound
		}
		return assignment.ShiftAssignment{}, fmt.Errorf("failed to check shift: %w", err)
	}
	if ruleID != nil {
		if _, err := s.ruleRepo.GetByID(ctx, *ruleID); err != nil {
			if errors.Is(err, shift.ErrScheduleRuleNotFound) {
				return assignment.ShiftAssignment{}, shift.ErrScheduleRuleNotFound
			}
			return assignment.ShiftAssignment{}, fmt.Errorf("failed to check schedule rule: %w", err)
		}
	}

	start, _ := time.Parse("2006-01-02", startDate)
	entity := assignment.ShiftAssignment{
		ID:             uuid.NewString(),
		EmployeeID:     employeeID,
		ShiftID:        shiftID,
		ScheduleRuleID: ruleID,
		StartDate:      start,
		Status:         assignment.StatusPending,
	}
	if endDate != nil {
		end, _ := time.Parse("2006-01-02", *endDate)
		entity.EndDate = &end
	}
	if status != nil {
		entity.Status = assignment.Status(*status)
	}
	return entity, nil
}

// BulkCreate implements assignment.Service.
func (s *AssignmentServiceImpl) BulkCreate(ctx context.Context, req assignment.BulkCreateAssignmentRequest) (assignment.BulkCreateResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.BulkCreateResponse{}, err
	}

	employeeIDs := req.EmployeeIDs
	if len(employeeIDs) == 0 {
		// Department/position expansion needs the external directory.
		if s.directory == nil {
			return assignment.BulkCreateResponse{}, employee.ErrDirectoryNotConfigured
		}
		ids, err := s.directory.FindByDepartmentAndPosition(ctx, req.DepartmentID, req.PositionID)
		if err != nil {
			return assignment.BulkCreateResponse{}, fmt.Errorf("failed to expand department/position criterion: %w", err)
		}
		employeeIDs = ids
	}
	if len(employeeIDs) == 0 {
		return assignment.BulkCreateResponse{}, assignment.ErrEmptyEmployeeList
	}

	responses := make([]assignment.AssignmentResponse, 0, len(employeeIDs))
	for _, employeeID := range employeeIDs {
		entity, err := s.buildAssignment(ctx, employeeID, req.ShiftID, req.ScheduleRuleID, req.StartDate, req.EndDate, req.Status)
		if err != nil {
			return assignment.BulkCreateResponse{}, err
		}
		entity.DepartmentID = req.DepartmentID
		entity.PositionID = req.PositionID

		created, err := s.assignmentRepo.Create(ctx, entity)
		if err != nil {
			return assignment.BulkCreateResponse{}, fmt.Errorf("failed to create assignment for employee %s: %w", employeeID, err)
		}
		responses = append(responses, assignment.ToResponse(created))
	}

	return assignment.BulkCreateResponse{
		Created:     len(responses),
		Assignments: responses,
	}, nil
}

// Get implements assignment.Service.
func (s *AssignmentServiceImpl) Get(ctx context.Context, id string) (assignment.AssignmentResponse, error) {
	a, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, assignment.ErrAssignmentNotFound) {
			return assignment.AssignmentResponse{}, assignment.ErrAssignmentNotFound
		}
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to get assignment: %w", err)
	}
	return assignment.ToResponse(a), nil
}

// List implements assignment.Service.
func (s *AssignmentServiceImpl) List(ctx context.Context, filter assignment.ListFilter) ([]assignment.AssignmentResponse, int64, error) {
	assignments, total, err := s.assignmentRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}

	responses := make([]assignment.AssignmentResponse, 0, len(assignments))
	for _, a := range assignments {
		responses = append(responses, assignment.ToResponse(a))
	}
	return responses, total, nil
}

// Update implements assignment.Service.
func (s *AssignmentServiceImpl) Update(ctx context.Context, id string, req assignment.UpdateAssignmentRequest) (assignment.AssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return assignment.AssignmentResponse{}, err
	}

	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(ctx, *req.ShiftID); err != nil {
			if errors.Is(err, shift.ErrShiftNotFound) {
				return assignment.AssignmentResponse{}, shift.ErrShiftNotFound
			}
			return assignment.AssignmentResponse{}, fmt.Errorf("failed to check shift: %w", err)
		}
	}
	if req.ScheduleRuleID != nil {
		if _, err := s.ruleRepo.GetByID(ctx, *req.ScheduleRuleID); err != nil {
			if errors.Is(err, shift.ErrScheduleRuleNotFound) {
				return assignment.AssignmentResponse{}, shift.ErrScheduleRuleNotFound
			}
			return assignment.AssignmentResponse{}, fmt.Errorf("failed to check schedule rule: %w", err)
		}
	}

	if err := s.assignmentRepo.Update(ctx, id, req); err != nil {
		if errors.Is(err, assignment.ErrAssignmentNotFound) {
			return assignment.AssignmentResponse{}, assignment.ErrAssignmentNotFound
		}
		return assignment.AssignmentResponse{}, fmt.Errorf("failed to update assignment: %w", err)
	}
	return s.Get(ctx, id)
}

// Delete implements assignment.Service.
func (s *AssignmentServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.assignmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, assignment.ErrAssignmentNotFound) {
			return assignment.ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	return nil
}

// Resolve implements assignment.Service.
func (s *AssignmentServiceImpl) Resolve(ctx context.Context, employeeID string, date time.Time) (assignment.ResolvedShift, error) {
	active, err := s.assignmentRepo.GetActiveAssignment(ctx, employeeID, date)
	if err != nil {
		return assignment.ResolvedShift{}, fmt.Errorf("failed to resolve active assignment: %w", err)
	}
	if active == nil {
		// No approved assignment covers the date: keep every punch.
		return assignment.ResolvedShift{Policy: string(shift.PunchPolicyAll)}, nil
	}

	sh, err := s.shiftRepo.GetByID(ctx, active.ShiftID)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return assignment.ResolvedShift{}, shift.ErrShiftNotFound
		}
		return assignment.ResolvedShift{}, fmt.Errorf("failed to load assigned shift: %w", err)
	}

	return assignment.ResolvedShift{
		Assignment: active,
		ShiftID:    sh.ID,
		StartTime:  sh.StartTime,
		EndTime:    sh.EndTime,
		Policy:     string(sh.PunchPolicy),
	}, nil
}
