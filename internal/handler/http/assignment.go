package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timetrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AssignmentHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	BulkCreate(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Resolve(w http.ResponseWriter, r *http.Request)
}

type assignmentHandlerImpl struct {
	assignmentService assignment.Service
}

func NewAssignmentHandler(assignmentService assignment.Service) AssignmentHandler {
	return &assignmentHandlerImpl{
		assignmentService: assignmentService,
	}
}

// Create implements AssignmentHandler.
func (h *assignmentHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req assignment.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assignmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assignment created", result)
}

// BulkCreate implements AssignmentHandler.
func (h *assignmentHandlerImpl) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req assignment.BulkCreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assignmentService.BulkCreate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assignments created", result)
}

// Get implements AssignmentHandler.
func (h *assignmentHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.assignmentService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AssignmentHandler.
func (h *assignmentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	filter := assignment.ListFilter{
		EmployeeID: queryString(r, "employee_id"),
		ShiftID:    queryString(r, "shift_id"),
		Status:     queryString(r, "status"),
		Page:       page,
		Limit:      limit,
	}

	results, total, err := h.assignmentService.List(r.Context(), filter)
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

// Update implements AssignmentHandler.
func (h *assignmentHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req assignment.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.assignmentService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Delete implements AssignmentHandler.
func (h *assignmentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.assignmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, nil)
}

type resolvedShiftResponse struct {
	Assignment *assignment.AssignmentResponse `json:"assignment,omitempty"`
	ShiftID    string                         `json:"shift_id,omitempty"`
	StartTime  string                         `json:"start_time,omitempty"`
	EndTime    string                         `json:"end_time,omitempty"`
	Policy     string                         `json:"policy"`
}

// Resolve implements AssignmentHandler. Answers which shift window and punch
// policy governs an employee on a given date.
func (h *assignmentHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	employeeID := r.URL.Query().Get("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}
	date, err := time.Parse("2006-01-02", r.URL.Query().Get("date"))
	if err != nil {
		response.BadRequest(w, "date must be YYYY-MM-DD", nil)
		return
	}

	resolved, err := h.assignmentService.Resolve(r.Context(), employeeID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	resp := resolvedShiftResponse{
		ShiftID:   resolved.ShiftID,
		StartTime: resolved.StartTime,
		EndTime:   resolved.EndTime,
		Policy:    resolved.Policy,
	}
	if resolved.Assignment != nil {
		a := assignment.ToResponse(*resolved.Assignment)
		resp.Assignment = &a
	}
	response.Success(w, resp)
}
