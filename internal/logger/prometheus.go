package logger

import (
	"github.com/maxaizer/careerboost/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// prometheusHook counts error entries in careerboost_errors_total, labelled by
// their error_type field.
type prometheusHook struct{}

func (h *prometheusHook) Fire(entry *log.Entry) error {
	metrics.ErrorsCounter.WithLabelValues(errorTypeOf(entry)).Inc()
	return nil
}

func (h *prometheusHook) Levels() []log.Level {
	return []log.Level{
		log.ErrorLevel,
		log.FatalLevel,
		log.PanicLevel,
	}
}

func errorTypeOf(entry *log.Entry) string {
	if errorType, ok := entry.Data[ErrorTypeField].(string); ok && errorType != "" {
		return errorType
	}
	return ErrorTypeUnknown
}

// GormWriter sends gorm's error output through logrus as db errors.
type GormWriter struct{}

func (GormWriter) Printf(format string, args ...any) {
	log.WithField(ErrorTypeField, ErrorTypeDb).Errorf(format, args...)
}

func addPrometheusHook() {
	log.AddHook(&prometheusHook{})
	log.Info("Prometheus logging enabled")
}
