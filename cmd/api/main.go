package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/presensia/attendance-backend-go/internal/config"
	appHTTP "github.com/presensia/attendance-backend-go/internal/handler/http"
	"github.com/presensia/attendance-backend-go/internal/pkg/cron"
	"github.com/presensia/attendance-backend-go/internal/pkg/database"
	"github.com/presensia/attendance-backend-go/internal/pkg/sse"
	"github.com/presensia/attendance-backend-go/internal/repository/postgresql"
	reconcileService "github.com/presensia/attendance-backend-go/internal/service/reconcile"
	scheduleService "github.com/presensia/attendance-backend-go/internal/service/schedule"
	tapService "github.com/presensia/attendance-backend-go/internal/service/tap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	userRepo := postgresql.NewUserRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	deviceRepo := postgresql.NewDeviceRepository(db)
	cardRepo := postgresql.NewCardRepository(db)
	scanRepo := postgresql.NewScanRepository(db)
	rawAttendanceRepo := postgresql.NewRawAttendanceRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	hub := sse.NewHub()
	location := cfg.Location()

	sessionSvc := scheduleService.NewSessionService(scheduleRepo, cfg.Attendance.ScanWindow)
	tapSvc := tapService.NewTapService(
		deviceRepo,
		cardRepo,
		scanRepo,
		userRepo,
		sessionSvc,
		holidayRepo,
		leaveRepo,
		rawAttendanceRepo,
		hub,
		location,
	)
	reconcileSvc := reconcileService.NewReconcileService(
		userRepo,
		sessionSvc,
		holidayRepo,
		leaveRepo,
		rawAttendanceRepo,
		attendanceRepo,
		cfg.Attendance.BatchWorkers,
		logger,
	)

	scheduler := cron.NewScheduler()
	scheduler.AddDailyJob(
		"daily-attendance-reconcile",
		cfg.Attendance.ReconcileHour,
		location,
		reconcileService.NewDailyJob(reconcileSvc, location, logger),
	)
	scheduler.Start()
	defer scheduler.Stop()

	tapHandler := appHTTP.NewTapHandler(tapSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(reconcileSvc, location)
	monitorHandler := appHTTP.NewMonitorHandler(hub)

	router := appHTTP.NewRouter(cfg, tapHandler, attendanceHandler, monitorHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
