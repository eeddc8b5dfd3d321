package repositories

import (
	"context"
	"github.com/maxaizer/careerboost/internal/entities"
	"gorm.io/gorm"
)

type Skills struct {
	db *gorm.DB
}

func NewSkillsRepository(db *gorm.DB) *Skills {
	return &Skills{db: db}
}

func (repo *Skills) Add(ctx context.Context, skill *entities.Skill) error {
	return translate(repo.db.WithContext(ctx).Create(skill).Error)
}

func (repo *Skills) GetAll(ctx context.Context) ([]entities.Skill, error) {
	var skills []entities.Skill
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&skills).Error; err != nil {
		return nil, err
	}
	return skills, nil
}

func (repo *Skills) GetByID(ctx context.Context, id uint) (*entities.Skill, error) {
	var skill entities.Skill
	return notFoundAsNil(&skill, repo.db.WithContext(ctx).First(&skill, "id = ?", id).Error)
}

func (repo *Skills) FindByNameAndLevel(ctx context.Context, name string, level entities.SkillLevel) (*entities.Skill, error) {
	var skill entities.Skill
	err := repo.db.WithContext(ctx).First(&skill, "name = ? AND level = ?", name, level).Error
	return notFoundAsNil(&skill, err)
}

func (repo *Skills) Update(ctx context.Context, skill *entities.Skill) error {
	return translate(repo.db.WithContext(ctx).Save(skill).Error)
}

func (repo *Skills) Remove(ctx context.Context, id uint) error {
	return repo.db.WithContext(ctx).Delete(&entities.Skill{}, "id = ?", id).Error
}
