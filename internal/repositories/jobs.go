package repositories

import (
	"context"
	"github.com/maxaizer/careerboost/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Add(ctx context.Context, job *entities.Job) error {
	return translate(repo.db.WithContext(ctx).Omit(clause.Associations).Create(job).Error)
}

func (repo *Jobs) GetByID(ctx context.Context, id uint) (*entities.Job, error) {
	var job entities.Job
	err := repo.db.WithContext(ctx).
		Preload("Recruiter", userSummary).
		First(&job, "id = ?", id).Error
	return notFoundAsNil(&job, err)
}

func (repo *Jobs) GetActive(ctx context.Context) ([]entities.Job, error) {
	var jobs []entities.Job
	if err := repo.db.WithContext(ctx).
		Preload("Recruiter", userSummary).
		Where("is_active = ?", true).
		Order("created_at DESC, id DESC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) Update(ctx context.Context, job *entities.Job) error {
	return translate(repo.db.WithContext(ctx).Omit(clause.Associations).Save(job).Error)
}

func (repo *Jobs) Remove(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Delete(&entities.Job{}, "id = ?", id).Error
}
