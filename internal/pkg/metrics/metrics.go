package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the application's prometheus collectors.
type Metrics struct {
	SessionsOpened  prometheus.Counter
	CodeVerifyTotal *prometheus.CounterVec
	CheckinsTotal   *prometheus.CounterVec
	FaceVerifyTotal *prometheus.CounterVec
	CheatingReports prometheus.Counter
}

// New registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SessionsOpened: factory.NewCounter(prometheus.CounterOpts{
			Name: "attendance_sessions_opened_total",
			Help: "Attendance sessions opened or rotated by lecturers.",
		}),
		CodeVerifyTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_code_verify_total",
			Help: "Code verification attempts by outcome.",
		}, []string{"outcome"}),
		CheckinsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_checkins_total",
			Help: "Check-in submissions by resulting record status.",
		}, []string{"status"}),
		FaceVerifyTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "attendance_face_verify_total",
			Help: "Face service verification calls by outcome.",
		}, []string{"outcome"}),
		CheatingReports: factory.NewCounter(prometheus.CounterOpts{
			Name: "attendance_cheating_reports_total",
			Help: "Cheating reports raised by the check-in pipeline.",
		}),
	}
}
