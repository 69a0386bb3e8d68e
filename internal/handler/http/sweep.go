package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/config"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/correction"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/exception"
	"github.com/clockwise-hr/timetrack-backend-go/internal/handler/http/response"
)

// SweepHandler exposes the batch escalation sweeps to external schedulers.
// Both sweeps are idempotent, so re-running a failed invocation is safe.
type SweepHandler interface {
	ExceptionEscalation(w http.ResponseWriter, r *http.Request)
	PayrollCutoff(w http.ResponseWriter, r *http.Request)
}

type sweepHandlerImpl struct {
	workflowService correction.WorkflowService
	managerService  exception.ManagerService
	defaults        config.SweepConfig
}

func NewSweepHandler(workflowService correction.WorkflowService, managerService exception.ManagerService, defaults config.SweepConfig) SweepHandler {
	return &sweepHandlerImpl{
		workflowService: workflowService,
		managerService:  managerService,
		defaults:        defaults,
	}
}

type exceptionSweepRequest struct {
	WindowHours *int `json:"window_hours"`
	Limit       *int `json:"limit"`
}

type payrollCutoffRequest struct {
	Cutoff string `json:"cutoff"`
	Limit  *int   `json:"limit"`
}

// ExceptionEscalation implements SweepHandler. Escalates PENDING exceptions
// whose last update is older than the window; falls back to the configured
// window and batch limit when the body omits them.
func (h *sweepHandlerImpl) ExceptionEscalation(w http.ResponseWriter, r *http.Request) {
	var req exceptionSweepRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	window := h.defaults.ExceptionWindow
	if req.WindowHours != nil {
		if *req.WindowHours <= 0 {
			response.BadRequest(w, "window_hours must be positive", nil)
			return
		}
		window = time.Duration(*req.WindowHours) * time.Hour
	}
	limit := h.defaults.BatchLimit
	if req.Limit != nil && *req.Limit > 0 {
		limit = *req.Limit
	}

	escalated, err := h.managerService.EscalateStale(r.Context(), window, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]int{"escalated_exceptions": escalated})
}

// PayrollCutoff implements SweepHandler. Escalates correction requests still
// SUBMITTED, and PENDING exceptions, created before the cutoff.
func (h *sweepHandlerImpl) PayrollCutoff(w http.ResponseWriter, r *http.Request) {
	var req payrollCutoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cutoff, err := time.Parse(time.RFC3339, req.Cutoff)
	if err != nil {
		response.BadRequest(w, "cutoff must be an RFC 3339 timestamp", nil)
		return
	}
	limit := h.defaults.BatchLimit
	if req.Limit != nil && *req.Limit > 0 {
		limit = *req.Limit
	}

	result, err := h.workflowService.EscalatePastCutoff(r.Context(), cutoff, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
