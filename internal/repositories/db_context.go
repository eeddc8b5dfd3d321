package repositories

import (
	"fmt"
	"github.com/glebarez/sqlite"
	"github.com/maxaizer/careerboost/internal/config"
	"github.com/maxaizer/careerboost/internal/entities"
	applogger "github.com/maxaizer/careerboost/internal/logger"
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"strings"
	"time"
)

// ErrDuplicate is returned when a write violates a uniqueness constraint.
var ErrDuplicate = errors.New("duplicate record")

type DbContext struct {
	DB *gorm.DB
}

func NewDbContext(cfg config.DBConfig) (*DbContext, error) {

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.ConnectionString)
	case config.DriverSQLite, "":
		dialector = sqlite.Open(cfg.ConnectionString)
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(applogger.GormWriter{}, logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Error,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
		// notification and application references are weak: a withdrawn application
		// leaves notifications pointing at it untouched
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	return &DbContext{DB: db}, nil
}

func (c *DbContext) Migrate() error {
	models := []struct {
		name  string
		model any
	}{
		{"User", entities.User{}},
		{"Job", entities.Job{}},
		{"Application", entities.Application{}},
		{"Notification", entities.Notification{}},
		{"Profile", entities.Profile{}},
		{"CompanyProfile", entities.CompanyProfile{}},
		{"Skill", entities.Skill{}},
	}

	for _, m := range models {
		if err := c.DB.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("failed to migrate %s entity: %w", m.name, err)
		}
	}

	if err := c.DB.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_application_candidate_job " +
		"ON applications (candidate_id, job_id)").Error; err != nil {
		return fmt.Errorf("failed to create application index: %w", err)
	}

	if err := c.DB.Exec("CREATE INDEX IF NOT EXISTS idx_notification_recipient_application " +
		"ON notifications (recipient_id, application_id, kind)").Error; err != nil {
		return fmt.Errorf("failed to create notification index: %w", err)
	}

	return nil
}

func (c *DbContext) Close() error {
	db, err := c.DB.DB()
	if err != nil {
		return err
	}

	return db.Close()
}

func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "duplicate key value") {
		return ErrDuplicate
	}
	return err
}

func notFoundAsNil[T any](value *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return value, nil
}

func userSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "username", "email", "role")
}

func jobSummary(db *gorm.DB) *gorm.DB {
	return db.Select("id", "recruiter_id", "title", "company", "location", "is_active")
}
