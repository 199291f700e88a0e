package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tbowo/careline/internal/services"
)

type sendMessageRequest struct {
	Content string `json:"content"`
}

type messageView struct {
	ID             uint      `json:"id"`
	SenderID       uint      `json:"sender_id"`
	SenderNickname string    `json:"sender_nickname"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

func (handler *Handler) SendMessage(c *fiber.Ctx) error {
	request := sendMessageRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, _ := currentUser(c)
	membership, _ := currentMembership(c)
	message, err := handler.messageService.Send(membership.FamilyID, user.ID, request.Content)
	if err != nil {
		if errors.Is(err, services.ErrEmptyMessage) {
			return apiError(c, fiber.StatusBadRequest, "message content is empty")
		}
		return apiError(c, fiber.StatusInternalServerError, "send message failed")
	}

	return c.JSON(messageView{
		ID:             message.ID,
		SenderID:       message.SenderID,
		SenderNickname: user.Nickname,
		Content:        message.Content,
		CreatedAt:      message.CreatedAt,
	})
}

func (handler *Handler) ActiveMessages(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	membership, _ := currentMembership(c)

	messages, err := handler.messageService.ActiveForReader(membership.FamilyID, user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load messages failed")
	}

	views := make([]messageView, 0, len(messages))
	for _, message := range messages {
		nickname := ""
		if sender, found, findErr := handler.repositories.Users.FindByID(message.SenderID); findErr == nil && found {
			nickname = sender.Nickname
		}
		views = append(views, messageView{
			ID:             message.ID,
			SenderID:       message.SenderID,
			SenderNickname: nickname,
			Content:        message.Content,
			CreatedAt:      message.CreatedAt,
		})
	}
	return c.JSON(views)
}
