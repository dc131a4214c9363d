package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"
	"github.com/kelola-hr/leave-ledger-go/internal/config"
	appHTTP "github.com/kelola-hr/leave-ledger-go/internal/handler/http"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/cron"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/database"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/jwt"
	"github.com/kelola-hr/leave-ledger-go/internal/pkg/notifier"
	"github.com/kelola-hr/leave-ledger-go/internal/repository/postgresql"
	attendanceService "github.com/kelola-hr/leave-ledger-go/internal/service/attendance"
	leaveService "github.com/kelola-hr/leave-ledger-go/internal/service/leave"
	ledgerService "github.com/kelola-hr/leave-ledger-go/internal/service/ledger"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "leave-ledger"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	ledgerRepo := postgresql.NewPeriodLedgerRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	jwtService, err := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	if err != nil {
		log.Fatal("Failed to initialize JWT service:", err)
	}

	decisionNotifier, err := notifier.NewSMTPNotifier(cfg.SMTP, logger)
	if err != nil {
		log.Fatal("Failed to initialize notifier:", err)
	}

	autoCredit := decimal.NewFromFloat(cfg.Leave.MonthlyAutoCredit)
	ledgerStore := ledgerService.NewStore(ledgerRepo, employeeRepo, autoCredit, logger)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		employeeRepo,
		holidayRepo,
		ledgerStore,
		cfg.Shift,
		logger,
	)
	leaveSvc := leaveService.NewLeaveService(
		db,
		leaveRequestRepo,
		employeeRepo,
		ledgerStore,
		decisionNotifier,
		logger,
	)

	sweeper := attendanceService.NewAbsenceSweeper(attendanceRepo, cfg.Shift, logger)
	scheduler := cron.NewScheduler(1, 0, cfg.Shift.Location(), logger)
	scheduler.Register(cron.Job{Name: "absence-sweep", Run: sweeper.Sweep})
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc, logger)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc, logger)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerStore, logger)

	router := appHTTP.NewRouter(logger, jwtService, attendanceHandler, leaveHandler, ledgerHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
