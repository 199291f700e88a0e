package services

import (
	"errors"
	"strings"
	"time"

	"github.com/tbowo/careline/internal/models"
)

var ErrEmptyMessage = errors.New("message content is empty")

const activeMessageLimit = 3

type MessageRepository interface {
	DeactivateBySender(familyID uint, senderID uint) error
	Create(message *models.FamilyMessage) error
	ListActiveExcludingSender(familyID uint, senderID uint, limit int) ([]models.FamilyMessage, error)
}

type MessageService struct {
	messages MessageRepository
}

func NewMessageService(messages MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Send replaces the sender's previous active note with a new one.
func (service *MessageService) Send(familyID uint, senderID uint, content string) (models.FamilyMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return models.FamilyMessage{}, ErrEmptyMessage
	}

	if err := service.messages.DeactivateBySender(familyID, senderID); err != nil {
		return models.FamilyMessage{}, err
	}

	message := models.FamilyMessage{
		FamilyID:  familyID,
		SenderID:  senderID,
		Content:   content,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := service.messages.Create(&message); err != nil {
		return models.FamilyMessage{}, err
	}
	return message, nil
}

// ActiveForReader lists the newest active notes from the other family
// members, for the home screen.
func (service *MessageService) ActiveForReader(familyID uint, readerID uint) ([]models.FamilyMessage, error) {
	return service.messages.ListActiveExcludingSender(familyID, readerID, activeMessageLimit)
}
