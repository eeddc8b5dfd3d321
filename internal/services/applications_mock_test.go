package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/careerboost/internal/apperrors"
	"github.com/maxaizer/careerboost/internal/entities"
	"github.com/maxaizer/careerboost/internal/events"
	"github.com/maxaizer/careerboost/internal/metrics"
	"github.com/maxaizer/careerboost/internal/repositories"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"testing"
)

type mockJobs struct {
	jobs map[uint]entities.Job
}

func (m mockJobs) GetByID(ctx context.Context, id uint) (*entities.Job, error) {
	if job, ok := m.jobs[id]; ok {
		return &job, nil
	}
	return nil, nil
}

type mockApplications struct {
	mock.Mock
}

func (m *mockApplications) Add(ctx context.Context, application *entities.Application) error {
	return m.Called(ctx, application).Error(0)
}

func (m *mockApplications) GetByID(ctx context.Context, id uint) (*entities.Application, error) {
	args := m.Called(ctx, id)
	application, _ := args.Get(0).(*entities.Application)
	return application, args.Error(1)
}

func (m *mockApplications) FindByCandidateAndJob(ctx context.Context, candidateID, jobID uint) (*entities.Application, error) {
	args := m.Called(ctx, candidateID, jobID)
	application, _ := args.Get(0).(*entities.Application)
	return application, args.Error(1)
}

func (m *mockApplications) GetByCandidate(ctx context.Context, candidateID uint) ([]entities.Application, error) {
	args := m.Called(ctx, candidateID)
	return args.Get(0).([]entities.Application), args.Error(1)
}

func (m *mockApplications) GetByJob(ctx context.Context, jobID uint) ([]entities.Application, error) {
	args := m.Called(ctx, jobID)
	return args.Get(0).([]entities.Application), args.Error(1)
}

func (m *mockApplications) UpdateStatus(ctx context.Context, id uint, status entities.ApplicationStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *mockApplications) Remove(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

type mockProjector struct {
	mock.Mock
}

func (m *mockProjector) OnNewApplication(ctx context.Context, job entities.Job, application entities.Application) error {
	return m.Called(ctx, job, application).Error(0)
}

func (m *mockProjector) OnStatusChange(ctx context.Context, job entities.Job, application entities.Application,
	status entities.ApplicationStatus) error {
	return m.Called(ctx, job, application, status).Error(0)
}

var (
	testCandidate = entities.Caller{ID: 1, Role: entities.RoleCandidate}
	testRecruiter = entities.Caller{ID: 2, Role: entities.RoleRecruiter}
	testJob       = entities.Job{ID: 10, RecruiterID: 2, Title: "Go developer", IsActive: true}
)

func Test_UpdateStatus_WhenProjectionFails_ShouldStillSucceed(t *testing.T) {
	metrics.Register()
	bus := EventBus.New()
	observer, err := NewLifecycleObserver(bus)
	require.NoError(t, err)
	defer observer.Stop()

	var failed []events.NotificationProjectionFailed
	require.NoError(t, bus.Subscribe(events.NotificationProjectionFailedTopic, func(e events.NotificationProjectionFailed) {
		failed = append(failed, e)
	}))

	applications := &mockApplications{}
	applications.On("GetByID", mock.Anything, uint(5)).
		Return(&entities.Application{ID: 5, CandidateID: 1, JobID: 10, Status: entities.StatusPending}, nil)
	applications.On("UpdateStatus", mock.Anything, uint(5), entities.StatusAccepted).Return(nil).Once()

	projector := &mockProjector{}
	projector.On("OnStatusChange", mock.Anything, mock.Anything, mock.Anything, entities.StatusAccepted).
		Return(errors.New("database is locked")).Once()

	before := testutil.ToFloat64(metrics.ProjectionFailuresCounter.WithLabelValues(stageStatusChange))

	service := NewApplications(mockJobs{jobs: map[uint]entities.Job{10: testJob}}, applications, projector, bus)
	updated, err := service.UpdateStatus(context.Background(), 5, "accepted", testRecruiter)

	require.NoError(t, err)
	assert.Equal(t, entities.StatusAccepted, updated.Status)
	require.Len(t, failed, 1)
	assert.Equal(t, uint(5), failed[0].ApplicationID)
	assert.Equal(t, before+1, testutil.ToFloat64(metrics.ProjectionFailuresCounter.WithLabelValues(stageStatusChange)))
	applications.AssertExpectations(t)
	projector.AssertExpectations(t)
}

func Test_Apply_WhenProjectionFails_ShouldReturnApplication(t *testing.T) {
	applications := &mockApplications{}
	applications.On("FindByCandidateAndJob", mock.Anything, uint(1), uint(10)).Return(nil, nil)
	applications.On("Add", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*entities.Application).ID = 7 }).
		Return(nil)
	applications.On("GetByID", mock.Anything, uint(7)).
		Return(&entities.Application{ID: 7, CandidateID: 1, JobID: 10, Status: entities.StatusPending}, nil)

	projector := &mockProjector{}
	projector.On("OnNewApplication", mock.Anything, testJob, mock.Anything).Return(errors.New("boom"))

	service := NewApplications(mockJobs{jobs: map[uint]entities.Job{10: testJob}}, applications, projector, nil)
	application, err := service.Apply(context.Background(), testCandidate, 10, "")

	require.NoError(t, err)
	assert.Equal(t, uint(7), application.ID)
	projector.AssertExpectations(t)
}

func Test_Apply_WhenUniqueIndexViolated_ShouldFailWithConflict(t *testing.T) {
	applications := &mockApplications{}
	applications.On("FindByCandidateAndJob", mock.Anything, uint(1), uint(10)).Return(nil, nil)
	applications.On("Add", mock.Anything, mock.Anything).Return(repositories.ErrDuplicate)

	projector := &mockProjector{}

	service := NewApplications(mockJobs{jobs: map[uint]entities.Job{10: testJob}}, applications, projector, nil)
	_, err := service.Apply(context.Background(), testCandidate, 10, "")

	assert.True(t, apperrors.Is(err, apperrors.KindConflict))
	projector.AssertNotCalled(t, "OnNewApplication", mock.Anything, mock.Anything, mock.Anything)
}

func Test_LifecycleObserver_ShouldCountEvents(t *testing.T) {
	metrics.Register()
	bus := EventBus.New()
	observer, err := NewLifecycleObserver(bus)
	require.NoError(t, err)
	defer observer.Stop()

	submitted := testutil.ToFloat64(metrics.ApplicationsSubmittedCounter)
	rejected := testutil.ToFloat64(metrics.StatusChangesCounter.WithLabelValues("rejected"))
	withdrawn := testutil.ToFloat64(metrics.ApplicationsWithdrawnCounter)

	bus.Publish(events.ApplicationSubmittedTopic, events.ApplicationSubmitted{})
	bus.Publish(events.ApplicationStatusChangedTopic, events.ApplicationStatusChanged{
		From: entities.StatusPending, To: entities.StatusRejected,
	})
	bus.Publish(events.ApplicationWithdrawnTopic, events.ApplicationWithdrawn{})

	assert.Equal(t, submitted+1, testutil.ToFloat64(metrics.ApplicationsSubmittedCounter))
	assert.Equal(t, rejected+1, testutil.ToFloat64(metrics.StatusChangesCounter.WithLabelValues("rejected")))
	assert.Equal(t, withdrawn+1, testutil.ToFloat64(metrics.ApplicationsWithdrawnCounter))
}
