package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/campuslab/attendance-backend-go/internal/domain/user"
	"github.com/campuslab/attendance-backend-go/internal/handler/http/middleware"
	"github.com/campuslab/attendance-backend-go/internal/pkg/jwt"
	"github.com/campuslab/attendance-backend-go/internal/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type RouterDeps struct {
	JWTService    jwt.Service
	VerifyLimiter ratelimit.Limiter
	Registry      *prometheus.Registry

	Auth       AuthHandler
	Master     MasterHandler
	Users      UserHandler
	Classrooms ClassroomHandler
	Schedules  ScheduleHandler
	Sessions   SessionHandler
	Attendance AttendanceHandler
	Reports    ReportHandler
	Faces      FaceHandler

	UploadsPath string
	Env         string
}

func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "campus-attendance"),
		slog.String("version", "v1.0.0"),
		slog.String("env", deps.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	if deps.Registry != nil {
		r.Method("GET", "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	if deps.UploadsPath != "" {
		fileServer := http.FileServer(http.Dir(deps.UploadsPath))
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))
	}

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.Auth.Login)
			r.Post("/refresh", deps.Auth.RefreshToken)
			r.Post("/logout", deps.Auth.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/login/google", deps.Auth.LoginWithGoogle)
				r.Get("/callback/google", deps.Auth.OAuthCallbackGoogle)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			// Academic office
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/semesters", func(r chi.Router) {
					r.Get("/", deps.Master.ListSemesters)
					r.Post("/", deps.Master.CreateSemester)
					r.Delete("/{id}", deps.Master.DeleteSemester)
				})
				r.Route("/subjects", func(r chi.Router) {
					r.Get("/", deps.Master.ListSubjects)
					r.Post("/", deps.Master.CreateSubject)
					r.Delete("/{id}", deps.Master.DeleteSubject)
				})
				r.Route("/rooms", func(r chi.Router) {
					r.Get("/", deps.Master.ListRooms)
					r.Post("/", deps.Master.CreateRoom)
					r.Delete("/{id}", deps.Master.DeleteRoom)
				})
				r.Route("/users", func(r chi.Router) {
					r.Get("/", deps.Users.List)
					r.Post("/", deps.Users.Create)
					r.Get("/{id}", deps.Users.Get)
					r.Delete("/{id}", deps.Users.Delete)
				})
			})

			r.Route("/classes", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Get("/", deps.Classrooms.List)
					r.Post("/", deps.Classrooms.Create)
					r.Delete("/{id}", deps.Classrooms.Delete)
					r.Post("/{id}/students", deps.Classrooms.Enroll)
					r.Delete("/{id}/students/{studentID}", deps.Classrooms.Unenroll)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireLecturer)
					r.Get("/{id}/students", deps.Classrooms.ListEnrollments)
				})
			})

			r.Route("/slots", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireAdmin)
					r.Post("/", deps.Schedules.Create)
					r.Delete("/{id}", deps.Schedules.Delete)
				})

				r.Get("/{id}", deps.Schedules.Get)

				// Lecturer opens (or rotates) the attendance session
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireLecturer)
					r.Post("/{id}/session", deps.Sessions.Open)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStudent)
					r.Get("/{id}/my-status", deps.Attendance.SlotStatus)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireLecturer)
					r.Get("/teaching", deps.Schedules.MyTeaching)
				})
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStudent)
					r.Get("/upcoming", deps.Schedules.MyUpcoming)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Use(middleware.RequireStudent)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RateLimit(deps.VerifyLimiter))
					r.Post("/verify-code", deps.Attendance.VerifyCode)
				})
				r.Post("/checkin", deps.Attendance.CheckIn)
				r.Get("/my-records", deps.Attendance.MyRecords)
			})

			r.Route("/face", func(r chi.Router) {
				r.Use(middleware.RequireStudent)
				r.Post("/register", deps.Faces.Register)
				r.Get("/status", deps.Faces.Status)
				r.Delete("/", deps.Faces.Unregister)
			})

			r.Route("/reports", func(r chi.Router) {
				r.With(middleware.RequirePermission(user.PermissionReportView)).
					Get("/", deps.Reports.List)
				r.With(middleware.RequirePermission(user.PermissionReportReview)).
					Put("/{id}/review", deps.Reports.Review)
			})
		})
	})
	return r
}
