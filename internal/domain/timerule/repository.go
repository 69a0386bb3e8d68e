package timerule

import (
	"context"
	"time"
)

type OvertimeRuleRepository interface {
	Create(ctx context.Context, rule OvertimeRule) (OvertimeRule, error)
	GetByID(ctx context.Context, id string) (OvertimeRule, error)
	GetActive(ctx context.Context) (*OvertimeRule, error)
	List(ctx context.Context) ([]OvertimeRule, error)
	Update(ctx context.Context, id string, req UpdateOvertimeRuleRequest) error
	Delete(ctx context.Context, id string) error
}

type LatenessRuleRepository interface {
	Create(ctx context.Context, rule LatenessRule) (LatenessRule, error)
	GetByID(ctx context.Context, id string) (LatenessRule, error)
	GetActive(ctx context.Context) (*LatenessRule, error)
	List(ctx context.Context) ([]LatenessRule, error)
	Update(ctx context.Context, id string, req UpdateLatenessRuleRequest) error
	Delete(ctx context.Context, id string) error
}

type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)

	// GetByDate returns (nil, nil) when the date is not a holiday.
	GetByDate(ctx context.Context, date time.Time) (*Holiday, error)

	List(ctx context.Context) ([]Holiday, error)
	Update(ctx context.Context, id string, req UpdateHolidayRequest) error
	Delete(ctx context.Context, id string) error
}
