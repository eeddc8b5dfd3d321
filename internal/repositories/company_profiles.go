package repositories

import (
	"context"
	"github.com/maxaizer/careerboost/internal/entities"
	"gorm.io/gorm"
)

type CompanyProfiles struct {
	db *gorm.DB
}

func NewCompanyProfilesRepository(db *gorm.DB) *CompanyProfiles {
	return &CompanyProfiles{db: db}
}

func (repo *CompanyProfiles) Add(ctx context.Context, profile *entities.CompanyProfile) error {
	return translate(repo.db.WithContext(ctx).Create(profile).Error)
}

func (repo *CompanyProfiles) GetByUser(ctx context.Context, userID uint) (*entities.CompanyProfile, error) {
	var profile entities.CompanyProfile
	return notFoundAsNil(&profile, repo.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error)
}

func (repo *CompanyProfiles) Update(ctx context.Context, profile *entities.CompanyProfile) error {
	return repo.db.WithContext(ctx).Save(profile).Error
}
