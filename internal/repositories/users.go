package repositories

import (
	"context"
	"github.com/maxaizer/careerboost/internal/entities"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Users struct {
	db *gorm.DB
}

func NewUsersRepository(db *gorm.DB) *Users {
	return &Users{db: db}
}

func (repo *Users) Add(ctx context.Context, user *entities.User) error {
	return translate(repo.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error)
}

func (repo *Users) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	return notFoundAsNil(&user, repo.db.WithContext(ctx).First(&user, "id = ?", id).Error)
}

func (repo *Users) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var user entities.User
	return notFoundAsNil(&user, repo.db.WithContext(ctx).First(&user, "email = ?", email).Error)
}
