package http

import (
	"encoding/json"
	"net/http"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/correction"
	"github.com/clockwise-hr/timetrack-backend-go/internal/handler/http/response"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type CorrectionHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	UpdateStatus(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type correctionHandlerImpl struct {
	workflowService correction.WorkflowService
	jwtService      jwt.Service
}

func NewCorrectionHandler(workflowService correction.WorkflowService, jwtService jwt.Service) CorrectionHandler {
	return &correctionHandlerImpl{
		workflowService: workflowService,
		jwtService:      jwtService,
	}
}

// Create implements CorrectionHandler. The requester is always the token
// holder; a correction cannot be filed on someone else's behalf.
func (h *correctionHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.jwtService.EmployeeIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req correction.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.workflowService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Correction request submitted", result)
}

// UpdateStatus implements CorrectionHandler.
func (h *correctionHandlerImpl) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req correction.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.workflowService.UpdateStatus(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Get implements CorrectionHandler.
func (h *correctionHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.workflowService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements CorrectionHandler.
func (h *correctionHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	filter := correction.ListFilter{
		EmployeeID: queryString(r, "employee_id"),
		Status:     queryString(r, "status"),
		Page:       page,
		Limit:      limit,
	}

	results, total, err := h.workflowService.List(r.Context(), filter)
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
