package events

import "github.com/maxaizer/careerboost/internal/entities"

var (
	ApplicationSubmittedTopic     = "ApplicationSubmittedEvent"
	ApplicationStatusChangedTopic = "ApplicationStatusChangedEvent"
	ApplicationWithdrawnTopic     = "ApplicationWithdrawnEvent"
)

type ApplicationSubmitted struct {
	Application entities.Application
	Job         entities.Job
}

type ApplicationStatusChanged struct {
	Application entities.Application
	Job         entities.Job
	From        entities.ApplicationStatus
	To          entities.ApplicationStatus
	ChangedBy   entities.Caller
}

type ApplicationWithdrawn struct {
	ApplicationID uint
	JobID         uint
	CandidateID   uint
}
