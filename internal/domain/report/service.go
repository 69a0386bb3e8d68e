package report

import "context"

// Service derives reports from attendance records, resolved shift windows
// and the reporting configuration entities. Read-only.
type Service interface {
	Attendance(ctx context.Context, filter Filter) (AttendanceReport, error)
	Overtime(ctx context.Context, filter Filter) (OvertimeReport, error)
	Exceptions(ctx context.Context, filter ExceptionFilter) (ExceptionReport, error)
}
