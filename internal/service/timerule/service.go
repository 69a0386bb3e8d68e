package timerule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/timerule"
	"github.com/google/uuid"
)

type RuleServiceImpl struct {
	overtimeRepo timerule.OvertimeRuleRepository
	latenessRepo timerule.LatenessRuleRepository
	holidayRepo  timerule.HolidayRepository
}

func NewRuleService(
	overtimeRepo timerule.OvertimeRuleRepository,
	latenessRepo timerule.LatenessRuleRepository,
	holidayRepo timerule.HolidayRepository,
) timerule.RuleService {
	return &RuleServiceImpl{
		overtimeRepo: overtimeRepo,
		latenessRepo: latenessRepo,
		holidayRepo:  holidayRepo,
	}
}

// CreateOvertimeRule implements timerule.RuleService.
func (s *RuleServiceImpl) CreateOvertimeRule(ctx context.Context, req timerule.CreateOvertimeRuleRequest) (timerule.OvertimeRuleResponse, error) {
	if err := req.Validate(); err != nil {
		return timerule.OvertimeRuleResponse{}, err
	}

	created, err := s.overtimeRepo.Create(ctx, timerule.OvertimeRule{
		ID:                    uuid.NewString(),
		Name:                  req.Name,
		DailyThresholdMinutes: req.DailyThresholdMinutes,
		Multiplier:            req.Multiplier,
		IsActive:              true,
	})
	if err != nil {
		return timerule.OvertimeRuleResponse{}, fmt.Errorf("failed to create overtime rule: %w", err)
	}
	return toOvertimeRuleResponse(created), nil
}

// GetOvertimeRule implements timerule.RuleService.
func (s *RuleServiceImpl) GetOvertimeRule(ctx context.Context, id string) (timerule.OvertimeRuleResponse, error) {
	rule, err := s.overtimeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, timerule.ErrOvertimeRuleNotFound) {
			return timerule.OvertimeRuleResponse{}, timerule.ErrOvertimeRuleNotFound
		}
		return timerule.OvertimeRuleResponse{}, fmt.Errorf("failed to get overtime rule: %w", err)
	}
	return toOvertimeRuleResponse(rule), nil
}

// ListOvertimeRules implements timerule.RuleService.
func (s *RuleServiceImpl) ListOvertimeRules(ctx context.Context) ([]timerule.OvertimeRuleResponse, error) {
	rules, err := s.overtimeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime rules: %w", err)
	}

	responses := make([]timerule.OvertimeRuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, toOvertimeRuleResponse(rule))
	}
	return responses, nil
}

// UpdateOvertimeRule implements timerule.RuleService.
func (s *RuleServiceImpl) UpdateOvertimeRule(ctx context.Context, id string, req timerule.UpdateOvertimeRuleRequest) (timerule.OvertimeRuleResponse, error) {
	if err := s.overtimeRepo.Update(ctx, id, req); err != nil {
		if errors.Is(err, timerule.ErrOvertimeRuleNotFound) {
			return timerule.OvertimeRuleResponse{}, timerule.ErrOvertimeRuleNotFound
		}
		return timerule.OvertimeRuleResponse{}, fmt.Errorf("failed to update overtime rule: %w", err)
	}
	return s.GetOvertimeRule(ctx, id)
}

// DeleteOvertimeRule implements timerule.RuleService.
func (s *RuleServiceImpl) DeleteOvertimeRule(ctx context.Context, id string) error {
	if err := s.overtimeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, timerule.ErrOvertimeRuleNotFound) {
			return timerule.ErrOvertimeRuleNotFound
		}
		return fmt.Errorf("failed to delete overtime rule: %w", err)
	}
	return nil
}

// CreateLatenessRule implements timerule.RuleService.
func (s *RuleServiceImpl) CreateLatenessRule(ctx context.Context, req timerule.CreateLatenessRuleRequest) (timerule.LatenessRuleResponse, error) {
	if err := req.Validate(); err != nil {
		return timerule.LatenessRuleResponse{}, err
	}

	created, err := s.latenessRepo.Create(ctx, timerule.LatenessRule{
		ID:           uuid.NewString(),
		Name:         req.Name,
		GraceMinutes: req.GraceMinutes,
		IsActive:     true,
	})
	if err != nil {
		return timerule.LatenessRuleResponse{}, fmt.Errorf("failed to create lateness rule: %w", err)
	}
	return toLatenessRuleResponse(created), nil
}

// GetLatenessRule implements timerule.RuleService.
func (s *RuleServiceImpl) GetLatenessRule(ctx context.Context, id string) (timerule.LatenessRuleResponse, error) {
	rule, err := s.latenessRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, timerule.ErrLatenessRuleNotFound) {
			return timerule.LatenessRuleResponse{}, timerule.ErrLatenessRuleNotFound
		}
		return timerule.LatenessRuleResponse{}, fmt.Errorf("failed to get lateness rule: %w", err)
	}
	return toLatenessRuleResponse(rule), nil
}

// ListLatenessRules implements timerule.RuleService.
func (s *RuleServiceImpl) ListLatenessRules(ctx context.Context) ([]timerule.LatenessRuleResponse, error) {
	rules, err := s.latenessRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lateness rules: %w", err)
	}

	responses := make([]timerule.LatenessRuleResponse, 0, len(rules))
	for _, rule := range rules {
		responses = append(responses, toLatenessRuleResponse(rule))
	}
	return responses, nil
}

// UpdateLatenessRule implements timerule.RuleService.
func (s *RuleServiceImpl) UpdateLatenessRule(ctx context.Context, id string, req timerule.UpdateLatenessRuleRequest) (timerule.LatenessRuleResponse, error) {
	if err := s.latenessRepo.Update(ctx, id, req); err != nil {
		if errors.Is(err, timerule.ErrLatenessRuleNotFound) {
			return timerule.LatenessRuleResponse{}, timerule.ErrLatenessRuleNotFound
		}
		return timerule.LatenessRuleResponse{}, fmt.Errorf("failed to update lateness rule: %w", err)
	}
	return s.GetLatenessRule(ctx, id)
}

// DeleteLatenessRule implements timerule.RuleService.
func (s *RuleServiceImpl) DeleteLatenessRule(ctx context.Context, id string) error {
	if err := s.latenessRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, timerule.ErrLatenessRuleNotFound) {
			return timerule.ErrLatenessRuleNotFound
		}
		return fmt.Errorf("failed to delete lateness rule: %w", err)
	}
	return nil
}

// CreateHoliday implements timerule.RuleService.
func (s *RuleServiceImpl) CreateHoliday(ctx context.Context, req timerule.CreateHolidayRequest) (timerule.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return timerule.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.holidayRepo.Create(ctx, timerule.Holiday{
		ID:   uuid.NewString(),
		Name: req.Name,
		Date: date,
	})
	if err != nil {
		return timerule.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}
	return toHolidayResponse(created), nil
}

// GetHoliday implements timerule.RuleService.
func (s *RuleServiceImpl) GetHoliday(ctx context.Context, id string) (timerule.HolidayResponse, error) {
	holiday, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, timerule.ErrHolidayNotFound) {
			return timerule.HolidayResponse{}, timerule.ErrHolidayNotFound
		}
		return timerule.HolidayResponse{}, fmt.Errorf("failed to get holiday: %w", err)
	}
	return toHolidayResponse(holiday), nil
}

// ListHolidays implements timerule.RuleService.
func (s *RuleServiceImpl) ListHolidays(ctx context.Context) ([]timerule.HolidayResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]timerule.HolidayResponse, 0, len(holidays))
	for _, holiday := range holidays {
		responses = append(responses, toHolidayResponse(holiday))
	}
	return responses, nil
}

// UpdateHoliday implements timerule.RuleService.
func (s *RuleServiceImpl) UpdateHoliday(ctx context.Context, id string, req timerule.UpdateHolidayRequest) (timerule.HolidayResponse, error) {
	if req.Date != nil {
		if _, err := time.Parse("2006-01-02", *req.Date); err != nil {
			return timerule.HolidayResponse{}, fmt.Errorf("invalid holiday date %q: %w", *req.Date, err)
		}
	}

	if err := s.holidayRepo.Update(ctx, id, req); err != nil {
		if errors.Is(err, timerule.ErrHolidayNotFound) {
			return timerule.HolidayResponse{}, timerule.ErrHolidayNotFound
		}
		return timerule.HolidayResponse{}, fmt.Errorf("failed to update holiday: %w", err)
	}
	return s.GetHoliday(ctx, id)
}

// DeleteHoliday implements timerule.RuleService.
func (s *RuleServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if err := s.holidayRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, timerule.ErrHolidayNotFound) {
			return timerule.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}
	return nil
}

func toOvertimeRuleResponse(rule timerule.OvertimeRule) timerule.OvertimeRuleResponse {
	return timerule.OvertimeRuleResponse{
		ID:                    rule.ID,
		Name:                  rule.Name,
		DailyThresholdMinutes: rule.DailyThresholdMinutes,
		Multiplier:            rule.Multiplier,
		IsActive:              rule.IsActive,
	}
}

func toLatenessRuleResponse(rule timerule.LatenessRule) timerule.LatenessRuleResponse {
	return timerule.LatenessRuleResponse{
		ID:           rule.ID,
		Name:         rule.Name,
		GraceMinutes: rule.GraceMinutes,
		IsActive:     rule.IsActive,
	}
}

func toHolidayResponse(holiday timerule.Holiday) timerule.HolidayResponse {
	return timerule.HolidayResponse{
		ID:   holiday.ID,
		Name: holiday.Name,
		Date: holiday.Date.Format("2006-01-02"),
	}
}
