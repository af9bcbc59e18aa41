package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/campuslab/attendance-backend-go/internal/config"
	appHTTP "github.com/campuslab/attendance-backend-go/internal/handler/http"
	"github.com/campuslab/attendance-backend-go/internal/pkg/clock"
	"github.com/campuslab/attendance-backend-go/internal/pkg/cron"
	"github.com/campuslab/attendance-backend-go/internal/pkg/database"
	"github.com/campuslab/attendance-backend-go/internal/pkg/faceverify"
	"github.com/campuslab/attendance-backend-go/internal/pkg/jwt"
	"github.com/campuslab/attendance-backend-go/internal/pkg/metrics"
	"github.com/campuslab/attendance-backend-go/internal/pkg/oauth"
	"github.com/campuslab/attendance-backend-go/internal/pkg/ratelimit"
	"github.com/campuslab/attendance-backend-go/internal/pkg/storage"
	"github.com/campuslab/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/campuslab/attendance-backend-go/internal/service/attendance"
	authService "github.com/campuslab/attendance-backend-go/internal/service/auth"
	classroomService "github.com/campuslab/attendance-backend-go/internal/service/classroom"
	faceService "github.com/campuslab/attendance-backend-go/internal/service/face"
	masterService "github.com/campuslab/attendance-backend-go/internal/service/master"
	reportService "github.com/campuslab/attendance-backend-go/internal/service/report"
	scheduleService "github.com/campuslab/attendance-backend-go/internal/service/schedule"
	sessionService "github.com/campuslab/attendance-backend-go/internal/service/session"
	userService "github.com/campuslab/attendance-backend-go/internal/service/user"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal("Invalid config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Pool.Close()

	redisClient := ratelimit.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer redisClient.Close()

	var verifyLimiter ratelimit.Limiter
	if ratelimit.Healthy(context.Background(), redisClient) {
		verifyLimiter = ratelimit.NewRedisLimiter(redisClient, "verify-code", cfg.Redis.VerifyLimit, cfg.Redis.VerifyWindow)
	} else {
		slog.Warn("Redis unreachable, verify-code rate limiting disabled", "addr", cfg.Redis.Addr)
	}

	userRepo := postgresql.NewUserRepository(db)
	semesterRepo := postgresql.NewSemesterRepository(db)
	subjectRepo := postgresql.NewSubjectRepository(db)
	roomRepo := postgresql.NewRoomRepository(db)
	classRepo := postgresql.NewClassRepository(db)
	enrollRepo := postgresql.NewEnrollmentRepository(db)
	slotRepo := postgresql.NewSlotRepository(db)
	sessionRepo := postgresql.NewSessionRepository(db)
	recordRepo := postgresql.NewRecordRepository(db)
	reportRepo := postgresql.NewReportRepository(db)
	faceRepo := postgresql.NewFaceRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes, cfg.OAuth2Google.AllowedDomain)
	faceVerifier := faceverify.New(cfg.FaceService.URL, cfg.FaceService.Timeout, cfg.FaceService.Skip)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}

	registry := prometheus.NewRegistry()
	appMetrics := metrics.New(registry)
	clk := clock.System()

	authSvc := authService.NewAuthService(userRepo, jwtService)
	masterSvc := masterService.NewMasterService(semesterRepo, subjectRepo, roomRepo)
	userSvc := userService.NewUserService(userRepo)
	classroomSvc := classroomService.NewClassroomService(classRepo, enrollRepo, userRepo)
	scheduleSvc := scheduleService.NewScheduleService(slotRepo, enrollRepo, clk)
	sessionSvc := sessionService.NewSessionService(sessionRepo, slotRepo, clk, appMetrics, cfg.Attendance.CodeLength, cfg.Attendance.SessionTTL)
	attendanceSvc := attendanceService.NewAttendanceService(sessionRepo, slotRepo, recordRepo, reportRepo, enrollRepo, faceVerifier, fileStorage, clk, appMetrics, cfg.Attendance)
	reportSvc := reportService.NewReportService(reportRepo, slotRepo)
	faceSvc := faceService.NewFaceService(faceRepo, fileStorage)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(sessionRepo, slotRepo, clk).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(appHTTP.RouterDeps{
		JWTService:    jwtService,
		VerifyLimiter: verifyLimiter,
		Registry:      registry,

		Auth:       appHTTP.NewAuthHandler(jwtService, authSvc, googleService),
		Master:     appHTTP.NewMasterHandler(masterSvc),
		Users:      appHTTP.NewUserHandler(userSvc),
		Classrooms: appHTTP.NewClassroomHandler(classroomSvc),
		Schedules:  appHTTP.NewScheduleHandler(scheduleSvc),
		Sessions:   appHTTP.NewSessionHandler(sessionSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Reports:    appHTTP.NewReportHandler(reportSvc),
		Faces:      appHTTP.NewFaceHandler(faceSvc),

		UploadsPath: cfg.Storage.BasePath,
		Env:         cfg.App.Env,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("Server listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	<-ctx.Done()
	slog.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
