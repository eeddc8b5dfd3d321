package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"sync"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerboost_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	RequestDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "careerboost_http_request_duration_seconds",
			Help:       "Duration of HTTP requests by route and status code.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"route", "code"},
	)
	ApplicationsSubmittedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "careerboost_applications_submitted_total",
			Help: "Total number of submitted applications.",
		},
	)
	ApplicationsWithdrawnCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "careerboost_applications_withdrawn_total",
			Help: "Total number of withdrawn applications.",
		},
	)
	StatusChangesCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerboost_application_status_changes_total",
			Help: "Total number of application status changes by new status.",
		},
		[]string{"status"},
	)
	NotificationsCreatedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerboost_notifications_created_total",
			Help: "Total number of created notifications by kind.",
		},
		[]string{"kind"},
	)
	ProjectionFailuresCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerboost_notification_projection_failures_total",
			Help: "Total number of notification projections that failed after the primary change was saved.",
		},
		[]string{"stage"},
	)
	NotificationsPurgedCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "careerboost_notifications_purged_total",
			Help: "Total number of read notifications removed by retention.",
		},
	)
	MatchScore = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "careerboost_match_percent",
			Help:    "Distribution of computed skill match percentages.",
			Buckets: []float64{0, 10, 25, 50, 75, 90, 100},
		},
	)
	BioGenerationsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "careerboost_bio_generations_total",
			Help: "Total number of generated bios by source.",
		},
		[]string{"source"},
	)
)

var registerOnce sync.Once

func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ErrorsCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(ApplicationsSubmittedCounter)
		prometheus.MustRegister(ApplicationsWithdrawnCounter)
		prometheus.MustRegister(StatusChangesCounter)
		prometheus.MustRegister(NotificationsCreatedCounter)
		prometheus.MustRegister(ProjectionFailuresCounter)
		prometheus.MustRegister(NotificationsPurgedCounter)
		prometheus.MustRegister(MatchScore)
		prometheus.MustRegister(BioGenerationsCounter)
	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
