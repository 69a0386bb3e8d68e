package timerule

import "context"

// RuleService is administrative CRUD over the reporting configuration
// entities. No cross-entity side effects.
type RuleService interface {
	CreateOvertimeRule(ctx context.Context, req CreateOvertimeRuleRequest) (OvertimeRuleResponse, error)
	GetOvertimeRule(ctx context.Context, id string) (OvertimeRuleResponse, error)
	ListOvertimeRules(ctx context.Context) ([]OvertimeRuleResponse, error)
	UpdateOvertimeRule(ctx context.Context, id string, req UpdateOvertimeRuleRequest) (OvertimeRuleResponse, error)
	DeleteOvertimeRule(ctx context.Context, id string) error

	CreateLatenessRule(ctx context.Context, req CreateLatenessRuleRequest) (LatenessRuleResponse, error)
	GetLatenessRule(ctx context.Context, id string) (LatenessRuleResponse, error)
	ListLatenessRules(ctx context.Context) ([]LatenessRuleResponse, error)
	UpdateLatenessRule(ctx context.Context, id string, req UpdateLatenessRuleRequest) (LatenessRuleResponse, error)
	DeleteLatenessRule(ctx context.Context, id string) error

	CreateHoliday(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	GetHoliday(ctx context.Context, id string) (HolidayResponse, error)
	ListHolidays(ctx context.Context) ([]HolidayResponse, error)
	UpdateHoliday(ctx context.Context, id string, req UpdateHolidayRequest) (HolidayResponse, error)
	DeleteHoliday(ctx context.Context, id string) error
}
