package db

import (
	"github.com/tbowo/careline/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) FindActiveByFamily(familyID uint) (models.Cycle, bool, error) {
	cycle := models.Cycle{}
	result := repo.database.
		Where("family_id = ? AND is_active = ?", familyID, true).
		Order("cycle_no DESC, id DESC").
		Limit(1).
		Find(&cycle)
	if result.Error != nil {
		return models.Cycle{}, false, result.Error
	}
	return cycle, result.RowsAffected > 0, nil
}

func (repo *CycleRepository) FindByFamilyAndNo(familyID uint, cycleNo int) (models.Cycle, bool, error) {
	cycle := models.Cycle{}
	result := repo.database.
		Where("family_id = ? AND cycle_no = ?", familyID, cycleNo).
		Limit(1).
		Find(&cycle)
	if result.Error != nil {
		return models.Cycle{}, false, result.Error
	}
	return cycle, result.RowsAffected > 0, nil
}

func (repo *CycleRepository) ListByFamily(familyID uint) ([]models.Cycle, error) {
	cycles := make([]models.Cycle, 0)
	if err := repo.database.
		Where("family_id = ?", familyID).
		Order("cycle_no ASC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) DeactivateAllForFamily(familyID uint) error {
	return repo.database.Model(&models.Cycle{}).
		Where("family_id = ? AND is_active = ?", familyID, true).
		Update("is_active", false).Error
}

func (repo *CycleRepository) Create(cycle *models.Cycle) error {
	return repo.database.Create(cycle).Error
}

func (repo *CycleRepository) Save(cycle *models.Cycle) error {
	return repo.database.Save(cycle).Error
}
