package report

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/assignment"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/attendance"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/exception"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/report"
	"github.com/clockwise-hr/timetrack-backend-go/internal/domain/timerule"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/validator"
)

// reportPageSize caps each page pulled from the attendance store while a
// report aggregates.
const reportPageSize = 500

type ServiceImpl struct {
	attendanceRepo attendance.Repository
	exceptionRepo  exception.Repository
	resolver       assignment.Service
	latenessRepo   timerule.LatenessRuleRepository
	holidayRepo    timerule.HolidayRepository
}

func NewService(
	attendanceRepo attendance.Repository,
	exceptionRepo exception.Repository,
	resolver assignment.Service,
	latenessRepo timerule.LatenessRuleRepository,
	holidayRepo timerule.HolidayRepository,
) report.Service {
	return &ServiceImpl{
		attendanceRepo: attendanceRepo,
		exceptionRepo:  exceptionRepo,
		resolver:       resolver,
		latenessRepo:   latenessRepo,
		holidayRepo:    holidayRepo,
	}
}

// Attendance implements report.Service.
func (s *ServiceImpl) Attendance(ctx context.Context, filter report.Filter) (report.AttendanceReport, error) {
	if err := filter.Validate(); err != nil {
		return report.AttendanceReport{}, err
	}

	records, err := s.collectRecords(ctx, filter)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	grace, err := s.activeGraceMinutes(ctx)
	if err != nil {
		return report.AttendanceReport{}, err
	}

	rpt := report.AttendanceReport{Rows: make([]report.AttendanceReportRow, 0, len(records))}
	for _, rec := range records {
		row := report.AttendanceReportRow{
			RecordID:       rec.ID,
			EmployeeID:     rec.EmployeeID,
			Date:           rec.Date.Format("2006-01-02"),
			WorkMinutes:    rec.WorkMinutes,
			HasMissedPunch: rec.HasMissedPunch,
		}

		if late, ok, err := s.lateMinutes(ctx, rec, grace); err != nil {
			return report.AttendanceReport{}, err
		} else if ok {
			row.LateMinutes = &late
		}

		holiday, err := s.holidayRepo.GetByDate(ctx, rec.Date)
		if err != nil {
			return report.AttendanceReport{}, fmt.Errorf("failed to check holiday: %w", err)
		}
		if holiday != nil {
			name := holiday.Name
			row.HolidayName = &name
		}

		rpt.Count++
		rpt.TotalWorkMinutes += rec.WorkMinutes
		rpt.Rows = append(rpt.Rows, row)
	}
	return rpt, nil
}

// Overtime implements report.Service.
func (s *ServiceImpl) Overtime(ctx context.Context, filter report.Filter) (report.OvertimeReport, error) {
	if err := filter.Validate(); err != nil {
		return report.OvertimeReport{}, err
	}

	records, err := s.collectRecords(ctx, filter)
	if err != nil {
		return report.OvertimeReport{}, err
	}

	rpt := report.OvertimeReport{Rows: []report.OvertimeReportRow{}}
	for _, rec := range records {
		rpt.Count++

		resolved, err := s.resolver.Resolve(ctx, rec.EmployeeID, rec.Date)
		if err != nil {
			return report.OvertimeReport{}, fmt.Errorf("failed to resolve shift for record %s: %w", rec.ID, err)
		}
		if resolved.Assignment == nil {
			// Without a governing shift there is no expected duration to
			// measure overtime against.
			continue
		}

		expected := expectedMinutes(resolved.StartTime, resolved.EndTime)
		overtime := rec.WorkMinutes - expected
		if overtime <= 0 {
			continue
		}

		rpt.TotalOvertimeMinutes += overtime
		rpt.Rows = append(rpt.Rows, report.OvertimeReportRow{
			RecordID:        rec.ID,
			EmployeeID:      rec.EmployeeID,
			Date:            rec.Date.Format("2006-01-02"),
			ShiftID:         resolved.ShiftID,
			ExpectedMinutes: expected,
			ActualMinutes:   rec.WorkMinutes,
			OvertimeMinutes: overtime,
		})
	}
	return rpt, nil
}

// Exceptions implements report.Service.
func (s *ServiceImpl) Exceptions(ctx context.Context, filter report.ExceptionFilter) (report.ExceptionReport, error) {
	if err := filter.Validate(); err != nil {
		return report.ExceptionReport{}, err
	}

	var start, end time.Time
	if filter.StartDate != nil {
		start, _ = time.Parse("2006-01-02", *filter.StartDate)
	}
	if filter.EndDate != nil {
		end, _ = time.Parse("2006-01-02", *filter.EndDate)
		end = end.AddDate(0, 0, 1) // end date is inclusive
	}

	rpt := report.ExceptionReport{
		ByType:   map[string]int{},
		ByStatus: map[string]int{},
		Rows:     []report.ExceptionReportRow{},
	}

	for page := 1; ; page++ {
		exceptions, _, err := s.exceptionRepo.List(ctx, exception.ListFilter{
			EmployeeID: filter.EmployeeID,
			Type:       filter.Type,
			Status:     filter.Status,
			Page:       page,
			Limit:      reportPageSize,
		})
		if err != nil {
			return report.ExceptionReport{}, fmt.Errorf("failed to list exceptions: %w", err)
		}

		for _, exc := range exceptions {
			if !start.IsZero() && exc.CreatedAt.Before(start) {
				continue
			}
			if !end.IsZero() && !exc.CreatedAt.Before(end) {
				continue
			}

			rpt.Count++
			rpt.ByType[string(exc.Type)]++
			rpt.ByStatus[string(exc.Status)]++
			rpt.Rows = append(rpt.Rows, report.ExceptionReportRow{
				ExceptionID: exc.ID,
				EmployeeID:  exc.EmployeeID,
				Type:        string(exc.Type),
				Status:      string(exc.Status),
				CreatedAt:   exc.CreatedAt.UTC().Format(time.RFC3339),
			})
		}

		if len(exceptions) < reportPageSize {
			break
		}
	}
	return rpt, nil
}

func (s *ServiceImpl) collectRecords(ctx context.Context, filter report.Filter) ([]attendance.Record, error) {
	var all []attendance.Record
	for page := 1; ; page++ {
		records, _, err := s.attendanceRepo.List(ctx, attendance.ListFilter{
			EmployeeID: filter.EmployeeID,
			StartDate:  filter.StartDate,
			EndDate:    filter.EndDate,
			Page:       page,
			Limit:      reportPageSize,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list attendance records: %w", err)
		}
		all = append(all, records...)
		if len(records) < reportPageSize {
			return all, nil
		}
	}
}

// activeGraceMinutes returns the grace period of the active lateness rule, or
// -1 when no rule is active and lateness should not be annotated.
func (s *ServiceImpl) activeGraceMinutes(ctx context.Context) (int, error) {
	rule, err := s.latenessRepo.GetActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load active lateness rule: %w", err)
	}
	if rule == nil {
		return -1, nil
	}
	return rule.GraceMinutes, nil
}

// lateMinutes computes how many minutes past the shift start (plus grace) the
// first IN punch landed. ok is false when nothing governs the day: no active
// lateness rule, no assignment, or no IN punch.
func (s *ServiceImpl) lateMinutes(ctx context.Context, rec attendance.Record, grace int) (int, bool, error) {
	if grace < 0 {
		return 0, false, nil
	}

	resolved, err := s.resolver.Resolve(ctx, rec.EmployeeID, rec.Date)
	if err != nil {
		return 0, false, fmt.Errorf("failed to resolve shift for record %s: %w", rec.ID, err)
	}
	if resolved.Assignment == nil {
		return 0, false, nil
	}

	firstIn, ok := firstInPunch(rec.Punches)
	if !ok {
		return 0, false, nil
	}
	if !validator.IsValidClockTime(resolved.StartTime) {
		return 0, false, nil
	}

	shiftStart := validator.ClockTimeToMinutes(resolved.StartTime)
	arrival := firstIn.Hour()*60 + firstIn.Minute()
	late := arrival - (shiftStart + grace)
	if late <= 0 {
		return 0, false, nil
	}
	return late, true, nil
}

func firstInPunch(punches []attendance.Punch) (time.Time, bool) {
	sorted := attendance.SortPunches(punches)
	for _, p := range sorted {
		if p.Type == attendance.PunchIn {
			return p.Timestamp, true
		}
	}
	return time.Time{}, false
}

// expectedMinutes measures the shift window, treating an end at or before the
// start as crossing midnight.
func expectedMinutes(startTime, endTime string) int {
	if !validator.IsValidClockTime(startTime) || !validator.IsValidClockTime(endTime) {
		return 0
	}
	start := validator.ClockTimeToMinutes(startTime)
	end := validator.ClockTimeToMinutes(endTime)
	if end <= start {
		end += 24 * 60
	}
	return end - start
}
