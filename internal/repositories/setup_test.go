package repositories

import (
	"context"
	"github.com/maxaizer/careerboost/internal/config"
	"github.com/maxaizer/careerboost/internal/entities"
	"github.com/stretchr/testify/require"
	"path/filepath"
	"testing"
)

func newTestDb(t *testing.T) *DbContext {
	t.Helper()

	dbCtx, err := NewDbContext(config.DBConfig{
		Driver:           config.DriverSQLite,
		ConnectionString: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)
	require.NoError(t, dbCtx.Migrate())

	t.Cleanup(func() { _ = dbCtx.Close() })
	return dbCtx
}

func addUser(t *testing.T, db *DbContext, email string, role entities.Role) *entities.User {
	t.Helper()

	user := &entities.User{Username: email, Email: email, PasswordHash: "hash", Role: role}
	require.NoError(t, NewUsersRepository(db.DB).Add(context.Background(), user))
	return user
}

func addJob(t *testing.T, db *DbContext, recruiterID uint, title string) *entities.Job {
	t.Helper()

	job := &entities.Job{
		RecruiterID:    recruiterID,
		Title:          title,
		Company:        "Acme",
		Description:    "desc",
		Type:           entities.FullTime,
		RequiredSkills: []string{"Go", "SQL"},
		IsActive:       true,
	}
	require.NoError(t, NewJobsRepository(db.DB).Add(context.Background(), job))
	return job
}
