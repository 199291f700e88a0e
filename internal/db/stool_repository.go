package db

import (
	"time"

	"github.com/tbowo/careline/internal/models"
	"gorm.io/gorm"
)

type StoolRepository struct {
	database *gorm.DB
}

func NewStoolRepository(database *gorm.DB) *StoolRepository {
	return &StoolRepository{database: database}
}

func (repo *StoolRepository) Create(event *models.StoolEvent) error {
	return repo.database.Create(event).Error
}

func (repo *StoolRepository) ListByFamilyAndDayRange(familyID uint, dayStart time.Time, dayEnd time.Time) ([]models.StoolEvent, error) {
	events := make([]models.StoolEvent, 0)
	if err := repo.database.
		Where("family_id = ? AND date >= ? AND date < ?", familyID, dayStart, dayEnd).
		Order("recorded_at ASC, id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *StoolRepository) ListByFamilyRange(familyID uint, fromStart time.Time, toEnd time.Time) ([]models.StoolEvent, error) {
	events := make([]models.StoolEvent, 0)
	if err := repo.database.
		Where("family_id = ? AND date >= ? AND date < ?", familyID, fromStart, toEnd).
		Order("date ASC, recorded_at ASC, id ASC").
		Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

func (repo *StoolRepository) FindByIDAndFamily(eventID uint, familyID uint) (models.StoolEvent, bool, error) {
	event := models.StoolEvent{}
	result := repo.database.
		Where("id = ? AND family_id = ?", eventID, familyID).
		Limit(1).
		Find(&event)
	if result.Error != nil {
		return models.StoolEvent{}, false, result.Error
	}
	return event, result.RowsAffected > 0, nil
}

func (repo *StoolRepository) Delete(eventID uint) error {
	return repo.database.Delete(&models.StoolEvent{}, eventID).Error
}
