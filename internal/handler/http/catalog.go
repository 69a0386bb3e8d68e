package http

import (
	"encoding/json"
	"net/http"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/shift"
	"github.com/clockwise-hr/timetrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler interface {
	CreateShiftType(w http.ResponseWriter, r *http.Request)
	GetShiftType(w http.ResponseWriter, r *http.Request)
	ListShiftTypes(w http.ResponseWriter, r *http.Request)
	UpdateShiftType(w http.ResponseWriter, r *http.Request)
	DeleteShiftType(w http.ResponseWriter, r *http.Request)

	CreateShift(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	UpdateShift(w http.ResponseWriter, r *http.Request)
	DeleteShift(w http.ResponseWriter, r *http.Request)

	CreateScheduleRule(w http.ResponseWriter, r *http.Request)
	GetScheduleRule(w http.ResponseWriter, r *http.Request)
	ListScheduleRules(w http.ResponseWriter, r *http.Request)
	UpdateScheduleRule(w http.ResponseWriter, r *http.Request)
	DeleteScheduleRule(w http.ResponseWriter, r *http.Request)
}

type catalogHandlerImpl struct {
	catalogService shift.CatalogService
}

func NewCatalogHandler(catalogService shift.CatalogService) CatalogHandler {
	return &catalogHandlerImpl{
		catalogService: catalogService,
	}
}

// CreateShiftType implements CatalogHandler.
func (h *catalogHandlerImpl) CreateShiftType(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateShiftType(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift type created", result)
}

// GetShiftType implements CatalogHandler.
func (h *catalogHandlerImpl) GetShiftType(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.GetShiftType(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListShiftTypes implements CatalogHandler.
func (h *catalogHandlerImpl) ListShiftTypes(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListShiftTypes(r.Context(), queryBool(r, "active_only"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateShiftType implements CatalogHandler.
func (h *catalogHandlerImpl) UpdateShiftType(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.UpdateShiftType(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteShiftType implements CatalogHandler.
func (h *catalogHandlerImpl) DeleteShiftType(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteShiftType(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// CreateShift implements CatalogHandler.
func (h *catalogHandlerImpl) CreateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateShift(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift created", result)
}

// GetShift implements CatalogHandler.
func (h *catalogHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.GetShift(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListShifts implements CatalogHandler.
func (h *catalogHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListShifts(r.Context(), queryBool(r, "active_only"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateShift implements CatalogHandler.
func (h *catalogHandlerImpl) UpdateShift(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.UpdateShift(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteShift implements CatalogHandler.
func (h *catalogHandlerImpl) DeleteShift(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteShift(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

// CreateScheduleRule implements CatalogHandler.
func (h *catalogHandlerImpl) CreateScheduleRule(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateScheduleRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.CreateScheduleRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Schedule rule created", result)
}

// GetScheduleRule implements CatalogHandler.
func (h *catalogHandlerImpl) GetScheduleRule(w http.ResponseWriter, r *http.Request) {
	result, err := h.catalogService.GetScheduleRule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListScheduleRules implements CatalogHandler.
func (h *catalogHandlerImpl) ListScheduleRules(w http.ResponseWriter, r *http.Request) {
	results, err := h.catalogService.ListScheduleRules(r.Context(), queryBool(r, "active_only"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, results)
}

// UpdateScheduleRule implements CatalogHandler.
func (h *catalogHandlerImpl) UpdateScheduleRule(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateScheduleRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.catalogService.UpdateScheduleRule(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteScheduleRule implements CatalogHandler.
func (h *catalogHandlerImpl) DeleteScheduleRule(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.DeleteScheduleRule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}
