package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/careerboost/internal/apperrors"
	"github.com/maxaizer/careerboost/internal/entities"
	"github.com/maxaizer/careerboost/internal/events"
	"github.com/maxaizer/careerboost/internal/logger"
	"github.com/maxaizer/careerboost/internal/repositories"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"time"
)

const (
	stageNewApplication = "new_application"
	stageStatusChange   = "status_change"
)

type jobReader interface {
	GetByID(ctx context.Context, id uint) (*entities.Job, error)
}

type applicationRepository interface {
	Add(ctx context.Context, application *entities.Application) error
	GetByID(ctx context.Context, id uint) (*entities.Application, error)
	FindByCandidateAndJob(ctx context.Context, candidateID, jobID uint) (*entities.Application, error)
	GetByCandidate(ctx context.Context, candidateID uint) ([]entities.Application, error)
	GetByJob(ctx context.Context, jobID uint) ([]entities.Application, error)
	UpdateStatus(ctx context.Context, id uint, status entities.ApplicationStatus) error
	Remove(ctx context.Context, id uint) error
}

type notificationProjector interface {
	OnNewApplication(ctx context.Context, job entities.Job, application entities.Application) error
	OnStatusChange(ctx context.Context, job entities.Job, application entities.Application,
		status entities.ApplicationStatus) error
}

// Applications owns the application state machine. Notifications are a side
// effect: a projection failure is logged and never undoes the saved change.
type Applications struct {
	jobs          jobReader
	applications  applicationRepository
	notifications notificationProjector
	bus           EventBus.Bus
}

func NewApplications(jobs jobReader, applications applicationRepository,
	notifications notificationProjector, bus EventBus.Bus) *Applications {

	return &Applications{
		jobs:          jobs,
		applications:  applications,
		notifications: notifications,
		bus:           bus,
	}
}

func (s *Applications) Apply(ctx context.Context, caller entities.Caller, jobID uint,
	motivationLetter string) (*entities.Application, error) {

	if caller.Role != entities.RoleCandidate {
		return nil, apperrors.Forbidden("only candidates can apply")
	}

	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "load job")
	}
	if job == nil || !job.IsActive {
		return nil, apperrors.NotFound("job not found or inactive")
	}

	existing, err := s.applications.FindByCandidateAndJob(ctx, caller.ID, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "check existing application")
	}
	if existing != nil {
		return nil, apperrors.Conflict("you already applied to this job")
	}

	application := entities.NewApplication(caller.ID, jobID, motivationLetter)
	if err = s.applications.Add(ctx, application); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, apperrors.Conflict("you already applied to this job")
		}
		return nil, errors.Wrap(err, "add application")
	}
	log.Infof("candidate %d applied to job %d, application %d", caller.ID, jobID, application.ID)

	if err = s.notifications.OnNewApplication(ctx, *job, *application); err != nil {
		s.projectionFailed(application.ID, stageNewApplication, err)
	}
	s.publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{Application: *application, Job: *job})

	return s.reload(ctx, application)
}

func (s *Applications) ListMine(ctx context.Context, caller entities.Caller) ([]entities.Application, error) {
	if caller.Role != entities.RoleCandidate {
		return nil, apperrors.Forbidden("only candidates have applications")
	}

	applications, err := s.applications.GetByCandidate(ctx, caller.ID)
	if err != nil {
		return nil, errors.Wrap(err, "list candidate applications")
	}
	return nonNil(applications), nil
}

func (s *Applications) ListForJob(ctx context.Context, jobID uint, caller entities.Caller) ([]entities.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "load job")
	}
	if job == nil {
		return nil, apperrors.NotFound("job not found")
	}
	if !caller.CanManage(job.RecruiterID) {
		return nil, apperrors.Forbidden("not allowed")
	}

	applications, err := s.applications.GetByJob(ctx, jobID)
	if err != nil {
		return nil, errors.Wrap(err, "list job applications")
	}
	return nonNil(applications), nil
}

// UpdateStatus moves an application to any status. There is no transition
// table: a final status can be changed again.
func (s *Applications) UpdateStatus(ctx context.Context, applicationID uint, status string,
	caller entities.Caller) (*entities.Application, error) {

	to, err := entities.ToApplicationStatus(status)
	if err != nil {
		return nil, apperrors.InvalidInput("invalid status %q", status)
	}

	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return nil, errors.Wrap(err, "load application")
	}
	if application == nil {
		return nil, apperrors.NotFound("application not found")
	}

	job, err := s.jobs.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, errors.Wrap(err, "load job")
	}
	if job == nil {
		return nil, apperrors.NotFound("job not found")
	}
	if !caller.CanManage(job.RecruiterID) {
		return nil, apperrors.Forbidden("not allowed")
	}

	from := application.Status
	if err = s.applications.UpdateStatus(ctx, application.ID, to); err != nil {
		return nil, errors.Wrap(err, "update application status")
	}
	application.Status = to
	application.UpdatedAt = time.Now()
	log.Infof("application %d status changed from %s to %s by user %d", application.ID, from, to, caller.ID)

	if err = s.notifications.OnStatusChange(ctx, *job, *application, to); err != nil {
		s.projectionFailed(application.ID, stageStatusChange, err)
	}
	s.publish(events.ApplicationStatusChangedTopic, events.ApplicationStatusChanged{
		Application: *application,
		Job:         *job,
		From:        from,
		To:          to,
		ChangedBy:   caller,
	})

	return application, nil
}

// Withdraw deletes the caller's application. Notifications already delivered
// about it stay in the recruiter's feed.
func (s *Applications) Withdraw(ctx context.Context, applicationID uint, caller entities.Caller) error {
	application, err := s.applications.GetByID(ctx, applicationID)
	if err != nil {
		return errors.Wrap(err, "load application")
	}
	if application == nil {
		return apperrors.NotFound("application not found")
	}
	if application.CandidateID != caller.ID {
		return apperrors.Forbidden("not allowed")
	}

	if err = s.applications.Remove(ctx, application.ID); err != nil {
		return errors.Wrap(err, "remove application")
	}
	log.Infof("application %d withdrawn by candidate %d", application.ID, caller.ID)

	s.publish(events.ApplicationWithdrawnTopic, events.ApplicationWithdrawn{
		ApplicationID: application.ID,
		JobID:         application.JobID,
		CandidateID:   application.CandidateID,
	})
	return nil
}

func (s *Applications) reload(ctx context.Context, application *entities.Application) (*entities.Application, error) {
	loaded, err := s.applications.GetByID(ctx, application.ID)
	if err != nil {
		return nil, errors.Wrap(err, "reload application")
	}
	if loaded == nil {
		return application, nil
	}
	return loaded, nil
}

func (s *Applications) projectionFailed(applicationID uint, stage string, err error) {
	log.WithField(logger.ErrorTypeField, logger.ErrorTypeNotification).
		Errorf("notification projection %s failed for application %d: %v", stage, applicationID, err)

	s.publish(events.NotificationProjectionFailedTopic, events.NotificationProjectionFailed{
		ApplicationID: applicationID,
		Stage:         stage,
		Err:           err,
	})
}

func (s *Applications) publish(topic string, event any) {
	if s.bus != nil {
		s.bus.Publish(topic, event)
	}
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
