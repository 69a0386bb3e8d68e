package shift

import "context"

type ShiftTypeRepository interface {
	Create(ctx context.Context, shiftType ShiftType) (ShiftType, error)
	GetByID(ctx context.Context, id string) (ShiftType, error)
	List(ctx context.Context, activeOnly bool) ([]ShiftType, error)
	Update(ctx context.Context, id string, req UpdateShiftTypeRequest) error
	Delete(ctx context.Context, id string) error
}

type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context, activeOnly bool) ([]Shift, error)
	Update(ctx context.Context, id string, req UpdateShiftRequest) error
	Delete(ctx context.Context, id string) error
}

type ScheduleRuleRepository interface {
	Create(ctx context.Context, rule ScheduleRule) (ScheduleRule, error)
	GetByID(ctx context.Context, id string) (ScheduleRule, error)
	List(ctx context.Context, activeOnly bool) ([]ScheduleRule, error)
	Update(ctx context.Context, id string, req UpdateScheduleRuleRequest) error
	Delete(ctx context.Context, id string) error
}
