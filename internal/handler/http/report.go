package http

import (
	"net/http"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/report"
	"github.com/clockwise-hr/timetrack-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Attendance(w http.ResponseWriter, r *http.Request)
	Overtime(w http.ResponseWriter, r *http.Request)
	Exceptions(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
	}
}

func reportFilter(r *http.Request) report.Filter {
	return report.Filter{
		EmployeeID: queryString(r, "employee_id"),
		StartDate:  queryString(r, "start_date"),
		EndDate:    queryString(r, "end_date"),
	}
}

// Attendance implements ReportHandler.
func (h *reportHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Attendance(r.Context(), reportFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Overtime implements ReportHandler.
func (h *reportHandlerImpl) Overtime(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Overtime(r.Context(), reportFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Exceptions implements ReportHandler.
func (h *reportHandlerImpl) Exceptions(w http.ResponseWriter, r *http.Request) {
	filter := report.ExceptionFilter{
		Filter: reportFilter(r),
		Type:   queryString(r, "type"),
		Status: queryString(r, "status"),
	}

	result, err := h.reportService.Exceptions(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
