package db

import (
	"github.com/tbowo/careline/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) FindByID(userID uint) (models.User, bool, error) {
	return repo.findOne("id = ?", userID)
}

func (repo *UserRepository) FindByPhone(phone string) (models.User, bool, error) {
	return repo.findOne("phone = ?", phone)
}

func (repo *UserRepository) FindByOpenID(openID string) (models.User, bool, error) {
	return repo.findOne("openid = ?", openID)
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) Save(user *models.User) error {
	return repo.database.Save(user).Error
}

func (repo *UserRepository) findOne(query string, argument any) (models.User, bool, error) {
	user := models.User{}
	result := repo.database.Where(query, argument).Limit(1).Find(&user)
	if result.Error != nil {
		return models.User{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.User{}, false, nil
	}
	return user, true, nil
}
