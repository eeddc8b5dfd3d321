package repositories

import (
	"context"
	"github.com/maxaizer/careerboost/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Profiles struct {
	db *gorm.DB
}

func NewProfilesRepository(db *gorm.DB) *Profiles {
	return &Profiles{db: db}
}

func (repo *Profiles) Add(ctx context.Context, profile *entities.Profile) error {
	return translate(repo.db.WithContext(ctx).Omit(clause.Associations).Create(profile).Error)
}

func (repo *Profiles) GetByUser(ctx context.Context, userID uint) (*entities.Profile, error) {
	var profile entities.Profile
	err := repo.db.WithContext(ctx).
		Preload("User", userSummary).
		First(&profile, "user_id = ?", userID).Error
	return notFoundAsNil(&profile, err)
}

func (repo *Profiles) Update(ctx context.Context, profile *entities.Profile) error {
	return repo.db.WithContext(ctx).Omit(clause.Associations).Save(profile).Error
}

func (repo *Profiles) RemoveByUser(ctx context.Context, userID uint) error {
	return repo.db.WithContext(ctx).Delete(&entities.Profile{}, "user_id = ?", userID).Error
}
