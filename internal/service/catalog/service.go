package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/shift"
	"github.com/google/uuid"
)

type CatalogServiceImpl struct {
	shiftTypeRepo    shift.ShiftTypeRepository
	shiftRepo        shift.ShiftRepository
	scheduleRuleRepo shift.ScheduleRuleRepository
}

func NewCatalogService(
	shiftTypeRepo shift.ShiftTypeRepository,
	shiftRepo shift.ShiftRepository,
	scheduleRuleRepo shift.ScheduleRuleRepository,
) shift.CatalogService {
	return &CatalogServiceImpl{
		shiftTypeRepo:    shiftTypeRepo,
		shiftRepo:        shiftRepo,
		scheduleRuleRepo: scheduleRuleRepo,
	}
}

// CreateShiftType implements shift.CatalogService.
func (s *CatalogServiceImpl) CreateShiftType(ctx context.Context, req shift.CreateShiftTypeRequest) (shift.ShiftTypeResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftTypeResponse{}, err
	}

	created, err := s.shiftTypeRepo.Create(ctx, shift.ShiftType{
		ID:       uuid.NewString(),
		Name:     req.Name,
		IsActive: true,
	})
	if err != nil {
		return shift.ShiftTypeResponse{}, fmt.Errorf("failed to create shift type: %w", err)
	}

	return toShiftTypeResponse(created), nil
}

// GetShiftType implements shift.CatalogService.
func (s *CatalogServiceImpl) GetShiftType(ctx context.Context, id string) (shift.ShiftTypeResponse, error) {
	st, err := s.shiftTypeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shift.ErrShiftTypeNotFound) {
			return shift.ShiftTypeResponse{}, shift.ErrShiftTypeNotFound
		}
		return shift.ShiftTypeResponse{}, fmt.Errorf("failed to get shift type: %w", err)
	}
	return toShiftTypeResponse(st), nil
}

// ListShiftTypes implements shift.CatalogService.
func (s *CatalogServiceImpl) ListShiftTypes(ctx context.Context, activeOnly bool) ([]shift.ShiftTypeResponse, error) {
	types, err := s.shiftTypeRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift types: %w", err)
	}

	responses := make([]shift.ShiftTypeResponse, 0, len(types))
	for _, st := range types {
		responses = append(responses, toShiftTypeResponse(st))
	}
	return responses, nil
}

// UpdateShiftType implements shift.CatalogService.
func (s *CatalogServiceImpl) UpdateShiftType(ctx context.Context, id string, req shift.UpdateShiftTypeRequest) (shift.ShiftTypeResponse, error) {
	if err := s.shiftTypeRepo.Update(ctx, id, req); err != nil {
		if errors.Is(err, shift.ErrShiftTypeNotFound) {
			return shift.ShiftTypeResponse{}, shift.ErrShiftTypeNotFound
		}
		return shift.ShiftTypeResponse{}, fmt.Errorf("failed to update shift type: %w", err)
	}
	return s.GetShiftType(ctx, id)
}

// DeleteShiftType implements shift.CatalogService.
func (s *CatalogServiceImpl) DeleteShiftType(ctx context.Context, id string) error {
	if err := s.shiftTypeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shift.ErrShiftTypeNotFound) || errors.Is(err, shift.ErrShiftTypeInUse) {
			return err
		}
		return fmt.Errorf("failed to delete shift type: %w", err)
	}
	return nil
}

// CreateShift implements shift.CatalogService.
func (s *CatalogServiceImpl) CreateShift(ctx context.Context, req shift.CreateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	// The referenced shift type must exist.
	if _, err := s.shiftTypeRepo.GetByID(ctx, req.ShiftTypeID); err != nil {
		if errors.Is(err, shift.ErrShiftTypeNotFound) {
			return shift.ShiftResponse{}, shift.ErrShiftTypeNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to check shift type: %w", err)
	}

	created, err := s.shiftRepo.Create(ctx, shift.Shift{
		ID:          uuid.NewString(),
		ShiftTypeID: req.ShiftTypeID,
		Name:        req.Name,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		PunchPolicy: shift.PunchPolicy(req.PunchPolicy),
		IsActive:    true,
	})
	if err != nil {
		return shift.ShiftResponse{}, fmt.Errorf("failed to create shift: %w", err)
	}

	return toShiftResponse(created), nil
}

// GetShift implements shift.CatalogService.
func (s *CatalogServiceImpl) GetShift(ctx context.Context, id string) (shift.ShiftResponse, error) {
	sh, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to get shift: %w", err)
	}
	return toShiftResponse(sh), nil
}

// ListShifts implements shift.CatalogService.
func (s *CatalogServiceImpl) ListShifts(ctx context.Context, activeOnly bool) ([]shift.ShiftResponse, error) {
	shifts, err := s.shiftRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	responses := make([]shift.ShiftResponse, 0, len(shifts))
	for _, sh := range shifts {
		responses = append(responses, toShiftResponse(sh))
	}
	return responses, nil
}

// UpdateShift implements shift.CatalogService.
func (s *CatalogServiceImpl) UpdateShift(ctx context.Context, id string, req shift.UpdateShiftRequest) (shift.ShiftResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ShiftResponse{}, err
	}

	if err := s.shiftRepo.Update(ctx, id, req); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ShiftResponse{}, shift.ErrShiftNotFound
		}
		return shift.ShiftResponse{}, fmt.Errorf("failed to update shift: %w", err)
	}
	return s.GetShift(ctx, id)
}

// DeleteShift implements shift.CatalogService.
func (s *CatalogServiceImpl) DeleteShift(ctx context.Context, id string) error {
	if err := s.shiftRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shift.ErrShiftNotFound) {
			return shift.ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

// CreateScheduleRule implements shift.CatalogService.
func (s *CatalogServiceImpl) CreateScheduleRule(ctx context.Context, req shift.CreateScheduleRuleRequest) (shift.ScheduleRuleResponse, error) {
	if err := req.Validate(); err != nil {
		return shift.ScheduleRuleResponse{}, err
	}

	created, err := s.scheduleRuleRepo.Create(ctx, shift.ScheduleRule{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Recurrence: req.Recurrence,
		RestDays:   req.RestDays,
		IsActive:   true,
	})
	if err != nil {
		return shift.ScheduleRuleResponse{}, fmt.Errorf("failed to create schedule rule: %w", err)
	}

	return toScheduleRuleResponse(created), nil
}

// GetScheduleRule implements shift.CatalogService.
func (s *CatalogServiceImpl) GetScheduleRule(ctx context.Context, id string) (shift.ScheduleRuleResponse, error) {
	rule, err := s.scheduleRuleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shift.ErrScheduleRuleNotFound) {
			return shift.ScheduleRuleResponse{}, shift.ErrScheduleRuleNotFound
		}
		return shift.ScheduleRuleResponse{}, fmt.Errorf("failed to get schedule rule: %w", err)
	}
	return toScheduleRuleResponse(rule), nil
}

// ListScheduleRules implements shift.CatalogService.
func (s *CatalogServiceImpl) ListScheduleRules(ctx context.Context, activeOnly bool) ([]shift.ScheduleRuleResponse, error) {
	rules, err := s.scheduleRuleRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule rules: %w", err)
	}

	responses := make([]shift.ScheduleRuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, toScheduleRuleResponse(rule))
	}
	return responses, nil
}

// UpdateScheduleRule implements shift.CatalogService.
func (s *CatalogServiceImpl) UpdateScheduleRule(ctx context.Context, id string, req shift.UpdateScheduleRuleRequest) (shift.ScheduleRuleResponse, error) {
	if err := s.scheduleRuleRepo.Update(ctx, id, req); err != nil {
		if errors.Is(err, shift.ErrScheduleRuleNotFound) {
			return shift.ScheduleRuleResponse{}, shift.ErrScheduleRuleNotFound
		}
		return shift.ScheduleRuleResponse{}, fmt.Errorf("failed to update schedule rule: %w", err)
	}
	return s.GetScheduleRule(ctx, id)
}

// DeleteScheduleRule implements shift.CatalogService.
func (s *CatalogServiceImpl) DeleteScheduleRule(ctx context.Context, id string) error {
	if err := s.scheduleRuleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, shift.ErrScheduleRuleNotFound) {
			return shift.ErrScheduleRuleNotFound
		}
		return fmt.Errorf("failed to delete schedule rule: %w", err)
	}
	return nil
}

func toShiftTypeResponse(st shift.ShiftType) shift.ShiftTypeResponse {
	return shift.ShiftTypeResponse{
		ID:       st.ID,
		Name:     st.Name,
		IsActive: st.IsActive,
	}
}

func toShiftResponse(sh shift.Shift) shift.ShiftResponse {
	return shift.ShiftResponse{
		ID:            sh.ID,
		ShiftTypeID:   sh.ShiftTypeID,
		ShiftTypeName: sh.ShiftTypeName,
		Name:          sh.Name,
		StartTime:     sh.StartTime,
		EndTime:       sh.EndTime,
		PunchPolicy:   string(sh.PunchPolicy),
		IsActive:      sh.IsActive,
	}
}

func toScheduleRuleResponse(rule shift.ScheduleRule) shift.ScheduleRuleResponse {
	return shift.ScheduleRuleResponse{
		ID:         rule.ID,
		Name:       rule.Name,
		Recurrence: rule.Recurrence,
		RestDays:   rule.RestDays,
		IsActive:   rule.IsActive,
	}
}
