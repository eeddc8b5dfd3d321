package repositories

import (
	"context"
	"github.com/maxaizer/careerboost/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Applications struct {
	db *gorm.DB
}

func NewApplicationsRepository(db *gorm.DB) *Applications {
	return &Applications{db: db}
}

// Add fails with ErrDuplicate when the candidate already applied to the job.
func (repo *Applications) Add(ctx context.Context, application *entities.Application) error {
	return translate(repo.db.WithContext(ctx).Omit(clause.Associations).Create(application).Error)
}

func (repo *Applications) GetByID(ctx context.Context, id uint) (*entities.Application, error) {
	var application entities.Application
	err := repo.db.WithContext(ctx).
		Preload("Job", jobSummary).
		Preload("Candidate", userSummary).
		First(&application, "id = ?", id).Error
	return notFoundAsNil(&application, err)
}

func (repo *Applications) FindByCandidateAndJob(ctx context.Context, candidateID, jobID uint) (*entities.Application, error) {
	var application entities.Application
	err := repo.db.WithContext(ctx).
		First(&application, "candidate_id = ? AND job_id = ?", candidateID, jobID).Error
	return notFoundAsNil(&application, err)
}

func (repo *Applications) GetByCandidate(ctx context.Context, candidateID uint) ([]entities.Application, error) {
	var applications []entities.Application
	if err := repo.db.WithContext(ctx).
		Preload("Job", jobSummary).
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC, id DESC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) GetByJob(ctx context.Context, jobID uint) ([]entities.Application, error) {
	var applications []entities.Application
	if err := repo.db.WithContext(ctx).
		Preload("Candidate", userSummary).
		Where("job_id = ?", jobID).
		Order("created_at DESC, id DESC").
		Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

func (repo *Applications) UpdateStatus(ctx context.Context, id uint, status entities.ApplicationStatus) error {
	return repo.db.WithContext(ctx).Model(&entities.Application{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (repo *Applications) Remove(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Delete(&entities.Application{}, "id = ?", id).Error
}
