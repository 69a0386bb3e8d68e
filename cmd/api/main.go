package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clockwise-hr/timetrack-backend-go/internal/config"
	appHTTP "github.com/clockwise-hr/timetrack-backend-go/internal/handler/http"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/cron"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/database"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/jwt"
	"github.com/clockwise-hr/timetrack-backend-go/internal/pkg/migrate"
	"github.com/clockwise-hr/timetrack-backend-go/internal/repository/postgresql"
	assignmentService "github.com/clockwise-hr/timetrack-backend-go/internal/service/assignment"
	catalogService "github.com/clockwise-hr/timetrack-backend-go/internal/service/catalog"
	correctionService "github.com/clockwise-hr/timetrack-backend-go/internal/service/correction"
	exceptionService "github.com/clockwise-hr/timetrack-backend-go/internal/service/exception"
	notificationService "github.com/clockwise-hr/timetrack-backend-go/internal/service/notification"
	punchService "github.com/clockwise-hr/timetrack-backend-go/internal/service/punch"
	reportService "github.com/clockwise-hr/timetrack-backend-go/internal/service/report"
	timeruleService "github.com/clockwise-hr/timetrack-backend-go/internal/service/timerule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	if err := migrate.Up("migrations", dsn); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	shiftTypeRepo := postgresql.NewShiftTypeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	scheduleRuleRepo := postgresql.NewScheduleRuleRepository(db)
	assignmentRepo := postgresql.NewAssignmentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	correctionRepo := postgresql.NewCorrectionRepository(db)
	exceptionRepo := postgresql.NewExceptionRepository(db)
	overtimeRuleRepo := postgresql.NewOvertimeRuleRepository(db)
	latenessRuleRepo := postgresql.NewLatenessRuleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret)
	notificationSvc := notificationService.NewService(notificationRepo)
	defer notificationSvc.Close()

	catalogSvc := catalogService.NewCatalogService(shiftTypeRepo, shiftRepo, scheduleRuleRepo)
	// The employee directory is an external collaborator; bulk assignment by
	// department/position stays unavailable until it is wired.
	assignmentSvc := assignmentService.NewAssignmentService(assignmentRepo, shiftRepo, scheduleRuleRepo, nil)
	punchSvc := punchService.NewPunchService(attendanceRepo, assignmentSvc, notificationSvc)
	correctionSvc := correctionService.NewWorkflowService(correctionRepo, exceptionRepo, attendanceRepo, notificationSvc)
	exceptionSvc := exceptionService.NewManagerService(exceptionRepo, attendanceRepo, notificationSvc, cfg.Sweep.ExceptionWindow)
	ruleSvc := timeruleService.NewRuleService(overtimeRuleRepo, latenessRuleRepo, holidayRepo)
	reportSvc := reportService.NewService(attendanceRepo, exceptionRepo, assignmentSvc, latenessRuleRepo, holidayRepo)

	scheduler := cron.NewScheduler()
	cron.NewEscalationJobs(exceptionSvc, cfg.Sweep).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Attendance:   appHTTP.NewAttendanceHandler(punchSvc, jwtService),
		Correction:   appHTTP.NewCorrectionHandler(correctionSvc, jwtService),
		Exception:    appHTTP.NewExceptionHandler(exceptionSvc),
		Sweep:        appHTTP.NewSweepHandler(correctionSvc, exceptionSvc, cfg.Sweep),
		Catalog:      appHTTP.NewCatalogHandler(catalogSvc),
		Assignment:   appHTTP.NewAssignmentHandler(assignmentSvc),
		TimeRule:     appHTTP.NewTimeRuleHandler(ruleSvc),
		Report:       appHTTP.NewReportHandler(reportSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc),
	}
	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		slog.Info("Server starting", "port", cfg.App.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)
	}
}
