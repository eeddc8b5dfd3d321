package logger

import (
	"github.com/maxaizer/careerboost/internal/config"
	"github.com/maxaizer/careerboost/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"io"
	"testing"
)

func Test_PrometheusHook_ShouldCountErrorsByType(t *testing.T) {
	logger := log.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(&prometheusHook{})

	before := testutil.ToFloat64(metrics.ErrorsCounter.WithLabelValues(ErrorTypeNotification))
	beforeUnknown := testutil.ToFloat64(metrics.ErrorsCounter.WithLabelValues(ErrorTypeUnknown))

	logger.WithField(ErrorTypeField, ErrorTypeNotification).Error("projection failed")
	logger.Error("untyped failure")
	logger.WithField(ErrorTypeField, "").Error("blank type")
	logger.Warn("not counted")

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ErrorsCounter.WithLabelValues(ErrorTypeNotification)))
	assert.Equal(t, beforeUnknown+2, testutil.ToFloat64(metrics.ErrorsCounter.WithLabelValues(ErrorTypeUnknown)))
}

func Test_GormWriter_ShouldCountDbErrors(t *testing.T) {
	hooks := log.StandardLogger().ReplaceHooks(make(log.LevelHooks))
	defer log.StandardLogger().ReplaceHooks(hooks)
	out := log.StandardLogger().Out
	defer log.SetOutput(out)
	log.SetOutput(io.Discard)
	log.AddHook(&prometheusHook{})

	before := testutil.ToFloat64(metrics.ErrorsCounter.WithLabelValues(ErrorTypeDb))

	GormWriter{}.Printf("%s record not saved", "jobs")

	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ErrorsCounter.WithLabelValues(ErrorTypeDb)))
}

func Test_LevelFrom_ShouldMapConfigLevels(t *testing.T) {
	assert.Equal(t, log.DebugLevel, levelFrom(config.LoggerConfig{LogLevel: config.LevelDebug}))
	assert.Equal(t, log.WarnLevel, levelFrom(config.LoggerConfig{LogLevel: config.LevelWarning}))
	assert.Equal(t, log.InfoLevel, levelFrom(config.LoggerConfig{}))
}
