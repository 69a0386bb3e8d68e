package http

import (
	"encoding/json"
	"net/http"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/timerule"
	"github.com/clockwise-hr/timetrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type TimeRuleHandler interface {
	CreateOvertimeRule(w http.ResponseWriter, r *http.Request)
	GetOvertimeRule(w http.ResponseWriter, r *http.Request)
	ListOvertimeRules(w http.ResponseWriter, r *http.Request)
	UpdateOvertimeRule(w http.ResponseWriter, r *http.Request)
	DeleteOvertimeRule(w http.ResponseWriter, r *http.Request)

	CreateLatenessRule(w http.ResponseWriter, r *http.Request)
	GetLatenessRule(w http.ResponseWriter, r *http.Request)
	ListLatenessRules(w http.ResponseWriter, r *http.Request)
	UpdateLatenessRule(w http.ResponseWriter, r *http.Request)
	DeleteLatenessRule(w http.ResponseWriter, r *http.Request)

	CreateHoliday(w http.ResponseWriter, r *http.Request)
	GetHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	UpdateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
}

type timeRuleHandlerImpl struct {
	ruleService timerule.RuleService
}

func NewTimeRuleHandler(ruleService timerule.RuleService) TimeRuleHandler {
	return &timeRuleHandlerImpl{
		ruleService: ruleService,
	}
}

// CreateOvertimeRule implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) CreateOvertimeRule(w http.ResponseWriter, r *http.Request) {
	var req timerule.CreateOvertimeRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ruleService.CreateOvertimeRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overtime rule created", result)
}

// GetOvertimeRule implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) GetOvertimeRule(w http.ResponseWriter, r *http.Request) {
	result, err := h.ruleService.GetOvertimeRule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListOvertimeRules implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) ListOvertimeRules(w http.ResponseWriter, r *http.Request) {
	results, err := h.ruleService.ListOvertimeRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateOvertimeRule implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) UpdateOvertimeRule(w http.ResponseWriter, r *http.Request) {
	var req timerule.UpdateOvertimeRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ruleService.UpdateOvertimeRule(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteOvertimeRule implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) DeleteOvertimeRule(w http.ResponseWriter, r *http.Request) {
	if err := h.ruleService.DeleteOvertimeRule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// CreateLatenessRule implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) CreateLatenessRule(w http.ResponseWriter, r *http.Request) {
	var req timerule.CreateLatenessRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ruleService.CreateLatenessRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Lateness rule created", result)
}

// GetLatenessRule implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) GetLatenessRule(w http.ResponseWriter, r *http.Request) {
	result, err := h.ruleService.GetLatenessRule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListLatenessRules implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) ListLatenessRules(w http.ResponseWriter, r *http.Request) {
	results, err := h.ruleService.ListLatenessRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateLatenessRule implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) UpdateLatenessRule(w http.ResponseWriter, r *http.Request) {
	var req timerule.UpdateLatenessRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ruleService.UpdateLatenessRule(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteLatenessRule implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) DeleteLatenessRule(w http.ResponseWriter, r *http.Request) {
	if err := h.ruleService.DeleteLatenessRule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// CreateHoliday implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req timerule.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ruleService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", result)
}

// GetHoliday implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) GetHoliday(w http.ResponseWriter, r *http.Request) {
	result, err := h.ruleService.GetHoliday(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListHolidays implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	results, err := h.ruleService.ListHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateHoliday implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	var req timerule.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.ruleService.UpdateHoliday(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteHoliday implements TimeRuleHandler.
func (h *timeRuleHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.ruleService.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}
