package http

import (
	"encoding/json"
	"net/http"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/exception"
	"github.com/clockwise-hr/timetrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type ExceptionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type exceptionHandlerImpl struct {
	managerService exception.ManagerService
}

func NewExceptionHandler(managerService exception.ManagerService) ExceptionHandler {
	return &exceptionHandlerImpl{
		managerService: managerService,
	}
}

// Create implements ExceptionHandler.
func (h *exceptionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req exception.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.managerService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Time exception raised", result)
}

// UpdateStatus implements ExceptionHandler.
func (h *exceptionHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req exception.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.managerService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements ExceptionHandler.
func (h *exceptionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.managerService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements ExceptionHandler.
func (h *exceptionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	filter := exception.ListFilter{
		EmployeeID: queryString(r, "employee_id"),
		Type:       queryString(r, "type"),
		Status:     queryString(r, "status"),
		Page:       page,
		Limit:      limit,
	}

	results, total, err := h.managerService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
	})
}
