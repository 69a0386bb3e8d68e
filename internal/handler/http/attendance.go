package http

import (
	"encoding/json"
	"net/http"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timetrack-backend-go/internal/handler/http/response"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	Clock(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	OverwritePunches(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	punchService attendance.PunchService
	jwtService   jwt.Service
}

func NewAttendanceHandler(punchService attendance.PunchService, jwtService jwt.Service) AttendanceHandler {
	return &attendanceHandlerImpl{
		punchService: punchService,
		jwtService:   jwtService,
	}
}

// Clock implements AttendanceHandler. The employee identity comes from the
// verified token and the timestamp from the server clock; the body only
// carries the punch direction.
func (h *attendanceHandlerImpl) Clock(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.jwtService.EmployeeIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	var req attendance.ClockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = employeeID

	result, err := h.punchService.Clock(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Punch recorded", result)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.punchService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements AttendanceHandler.
func (h *attendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page, limit := pagination(r)
	filter := attendance.ListFilter{
		EmployeeID: queryString(r, "employee_id"),
		StartDate:  queryString(r, "start_date"),
		EndDate:    queryString(r, "end_date"),
		Page:       page,
		Limit:      limit,
	}

	result, err := h.punchService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

// ListMine implements AttendanceHandler. Same as List, but scoped to the
// token holder regardless of query params.
func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID, err := h.jwtService.EmployeeIDFromContext(r.Context())
	if err != nil {
		response.Unauthorized(w, err.Error())
		return
	}

	page, limit := pagination(r)
	filter := attendance.ListFilter{
		EmployeeID: &employeeID,
		StartDate:  queryString(r, "start_date"),
		EndDate:    queryString(r, "end_date"),
		Page:       page,
		Limit:      limit,
	}

	result, err := h.punchService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
	})
}

// OverwritePunches implements AttendanceHandler. Administrative wholesale
// replacement of a record's punch sequence.
func (h *attendanceHandlerImpl) OverwritePunches(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualCorrectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.RecordID = chi.URLParam(r, "id")

	result, err := h.punchService.OverwritePunches(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
