package db

import (
	"github.com/tbowo/careline/internal/models"
	"gorm.io/gorm"
)

type MessageRepository struct {
	database *gorm.DB
}

func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{database: database}
}

func (repo *MessageRepository) DeactivateBySender(familyID uint, senderID uint) error {
	return repo.database.Model(&models.FamilyMessage{}).
		Where("family_id = ? AND sender_id = ? AND is_active = ?", familyID, senderID, true).
		Update("is_active", false).Error
}

func (repo *MessageRepository) Create(message *models.FamilyMessage) error {
	return repo.database.Create(message).Error
}

func (repo *MessageRepository) ListActiveExcludingSender(familyID uint, senderID uint, limit int) ([]models.FamilyMessage, error) {
	messages := make([]models.FamilyMessage, 0)
	if err := repo.database.
		Where("family_id = ? AND is_active = ? AND sender_id <> ?", familyID, true, senderID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
