package main

import (
	"fmt"
	"net/http"

	"github.com/agroverde/packhouse-backend-go/internal/config"
	appHTTP "github.com/agroverde/packhouse-backend-go/internal/handler/http"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/clock"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/database"
	"github.com/agroverde/packhouse-backend-go/internal/pkg/jwt"
	"github.com/agroverde/packhouse-backend-go/internal/repository/postgresql"
	attendanceService "github.com/agroverde/packhouse-backend-go/internal/service/attendance"
	serviceAuth "github.com/agroverde/packhouse-backend-go/internal/service/auth"
	bagService "github.com/agroverde/packhouse-backend-go/internal/service/bag"
	"github.com/agroverde/packhouse-backend-go/internal/service/master"
	rateCardService "github.com/agroverde/packhouse-backend-go/internal/service/ratecard"
	reportService "github.com/agroverde/packhouse-backend-go/internal/service/report"
	sessionService "github.com/agroverde/packhouse-backend-go/internal/service/session"
	workerService "github.com/agroverde/packhouse-backend-go/internal/service/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	bagRepo := postgresql.NewBagRepository(db)
	exporterRepo := postgresql.NewExporterRepository(db)
	cooperativeRepo := postgresql.NewCooperativeRepository(db)
	facilityRepo := postgresql.NewFacilityRepository(db)
	rateCardRepo := postgresql.NewRateCardRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	clk := clock.NewSystemClock()

	authSvc := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	workerSvc := workerService.NewWorkerService(db, workerRepo, cooperativeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, clk, attendanceRepo, sessionRepo, workerRepo)
	sessionSvc := sessionService.NewSessionService(db, clk, sessionRepo, attendanceRepo, exporterRepo)
	bagSvc := bagService.NewBagService(db, bagRepo, exporterRepo)
	exporterSvc := master.NewExporterService(db, exporterRepo)
	cooperativeSvc := master.NewCooperativeService(db, cooperativeRepo)
	facilitySvc := master.NewFacilityService(db, facilityRepo)
	rateCardSvc := rateCardService.NewRateCardService(db, clk, cfg.Business, rateCardRepo, bagRepo, reportRepo)
	reportSvc := reportService.NewReportService(db, clk, cfg.Business, reportRepo)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(JWTService, authSvc),
		Worker:     appHTTP.NewWorkerHandler(workerSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Session:    appHTTP.NewSessionHandler(sessionSvc),
		Bag:        appHTTP.NewBagHandler(bagSvc),
		Master:     appHTTP.NewMasterHandler(exporterSvc, cooperativeSvc, facilitySvc),
		RateCard:   appHTTP.NewRateCardHandler(rateCardSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
