package services

import (
	"context"
	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/careerboost/internal/config"
	"github.com/maxaizer/careerboost/internal/entities"
	"github.com/maxaizer/careerboost/internal/repositories"
	"github.com/maxaizer/careerboost/internal/skills"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"path/filepath"
	"testing"
)

type environment struct {
	db                    *gorm.DB
	bus                   EventBus.Bus
	users                 *repositories.Users
	jobRepo               *repositories.Jobs
	applicationRepo       *repositories.Applications
	notificationRepo      *repositories.Notifications
	notifications         *Notifications
	applications          *Applications
	jobs                  *Jobs
	candidate, recruiter  entities.Caller
	otherRecruiter, admin entities.Caller
}

func upEnvironment(t *testing.T) *environment {
	t.Helper()

	dbCtx, err := repositories.NewDbContext(config.DBConfig{
		Driver:           config.DriverSQLite,
		ConnectionString: filepath.Join(t.TempDir(), "testdatabase.db"),
	})
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())
	t.Cleanup(func() { _ = dbCtx.Close() })

	env := &environment{
		db:               dbCtx.DB,
		bus:              EventBus.New(),
		users:            repositories.NewUsersRepository(dbCtx.DB),
		jobRepo:          repositories.NewJobsRepository(dbCtx.DB),
		applicationRepo:  repositories.NewApplicationsRepository(dbCtx.DB),
		notificationRepo: repositories.NewNotificationsRepository(dbCtx.DB),
	}
	env.notifications = NewNotifications(env.notificationRepo, env.bus, DefaultNotificationsListLimit)
	env.applications = NewApplications(env.jobRepo, env.applicationRepo, env.notifications, env.bus)
	env.jobs = NewJobs(env.jobRepo, skills.NewNormalizer(0))

	env.candidate = env.addUser(t, "candidate@test.io", entities.RoleCandidate)
	env.recruiter = env.addUser(t, "recruiter@test.io", entities.RoleRecruiter)
	env.otherRecruiter = env.addUser(t, "other@test.io", entities.RoleRecruiter)
	env.admin = env.addUser(t, "admin@test.io", entities.RoleAdmin)
	return env
}

func (env *environment) addUser(t *testing.T, email string, role entities.Role) entities.Caller {
	t.Helper()

	user := &entities.User{Username: email, Email: email, PasswordHash: "hash", Role: role}
	require.NoError(t, env.users.Add(context.Background(), user))
	return entities.Caller{ID: user.ID, Role: role}
}

func (env *environment) addJob(t *testing.T, title string) *entities.Job {
	t.Helper()

	job, err := env.jobs.Create(context.Background(), env.recruiter, JobInput{
		Title:          title,
		Company:        "Acme",
		Description:    "Build things",
		RequiredSkills: []string{"Go", "SQL"},
	})
	require.NoError(t, err)
	return job
}

func (env *environment) notificationsOf(t *testing.T, caller entities.Caller) []entities.Notification {
	t.Helper()

	list, err := env.notifications.List(context.Background(), caller, 0)
	require.NoError(t, err)
	return list
}
