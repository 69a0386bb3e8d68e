package shift

import "context"

// CatalogService manages the reusable shift templates and schedule rules
// that assignments bind employees to.
type CatalogService interface {
	CreateShiftType(ctx context.Context, req CreateShiftTypeRequest) (ShiftTypeResponse, error)
	GetShiftType(ctx context.Context, id string) (ShiftTypeResponse, error)
	ListShiftTypes(ctx context.Context, activeOnly bool) ([]ShiftTypeResponse, error)
	UpdateShiftType(ctx context.Context, id string, req UpdateShiftTypeRequest) (ShiftTypeResponse, error)
	DeleteShiftType(ctx context.Context, id string) error

	CreateShift(ctx context.Context, req CreateShiftRequest) (ShiftResponse, error)
	GetShift(ctx context.Context, id string) (ShiftResponse, error)
	ListShifts(ctx context.Context, activeOnly bool) ([]ShiftResponse, error)
	UpdateShift(ctx context.Context, id string, req UpdateShiftRequest) (ShiftResponse, error)
	DeleteShift(ctx context.Context, id string) error

	CreateScheduleRule(ctx context.Context, req CreateScheduleRuleRequest) (ScheduleRuleResponse, error)
	GetScheduleRule(ctx context.Context, id string) (ScheduleRuleResponse, error)
	ListScheduleRules(ctx context.Context, activeOnly bool) ([]ScheduleRuleResponse, error)
	UpdateScheduleRule(ctx context.Context, id string, req UpdateScheduleRuleRequest) (ScheduleRuleResponse, error)
	DeleteScheduleRule(ctx context.Context, id string) error
}
