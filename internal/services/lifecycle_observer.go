package services

import (
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/careerboost/internal/events"
	"github.com/maxaizer/careerboost/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// LifecycleObserver keeps the lifecycle metrics in step with the events on the bus.
type LifecycleObserver struct {
	bus EventBus.Bus
}

func NewLifecycleObserver(bus EventBus.Bus) (*LifecycleObserver, error) {
	o := &LifecycleObserver{bus: bus}

	subscriptions := []struct {
		topic   string
		handler any
	}{
		{events.ApplicationSubmittedTopic, o.onSubmitted},
		{events.ApplicationStatusChangedTopic, o.onStatusChanged},
		{events.ApplicationWithdrawnTopic, o.onWithdrawn},
		{events.NotificationCreatedTopic, o.onNotificationCreated},
		{events.NotificationProjectionFailedTopic, o.onProjectionFailed},
	}

	for _, s := range subscriptions {
		if err := bus.Subscribe(s.topic, s.handler); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *LifecycleObserver) Stop() {
	_ = o.bus.Unsubscribe(events.ApplicationSubmittedTopic, o.onSubmitted)
	_ = o.bus.Unsubscribe(events.ApplicationStatusChangedTopic, o.onStatusChanged)
	_ = o.bus.Unsubscribe(events.ApplicationWithdrawnTopic, o.onWithdrawn)
	_ = o.bus.Unsubscribe(events.NotificationCreatedTopic, o.onNotificationCreated)
	_ = o.bus.Unsubscribe(events.NotificationProjectionFailedTopic, o.onProjectionFailed)
}

func (o *LifecycleObserver) onSubmitted(event events.ApplicationSubmitted) {
	metrics.ApplicationsSubmittedCounter.Inc()
}

func (o *LifecycleObserver) onStatusChanged(event events.ApplicationStatusChanged) {
	metrics.StatusChangesCounter.WithLabelValues(string(event.To)).Inc()
	if event.From.IsFinal() && event.From != event.To {
		log.Infof("application %d left final status %s", event.Application.ID, event.From)
	}
}

func (o *LifecycleObserver) onWithdrawn(event events.ApplicationWithdrawn) {
	metrics.ApplicationsWithdrawnCounter.Inc()
}

func (o *LifecycleObserver) onNotificationCreated(event events.NotificationCreated) {
	metrics.NotificationsCreatedCounter.WithLabelValues(string(event.Notification.Kind)).Inc()
}

func (o *LifecycleObserver) onProjectionFailed(event events.NotificationProjectionFailed) {
	metrics.ProjectionFailuresCounter.WithLabelValues(event.Stage).Inc()
}
