package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tbowo/careline/internal/models"
	"github.com/tbowo/careline/internal/services"
)

type registerRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type wechatLoginRequest struct {
	Code string `json:"code"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	UserID      uint   `json:"user_id"`
	Nickname    string `json:"nickname"`
}

type userView struct {
	ID        uint    `json:"id"`
	Phone     *string `json:"phone"`
	Nickname  string  `json:"nickname"`
	AvatarURL string  `json:"avatar_url"`
}

func (handler *Handler) Register(c *fiber.Ctx) error {
	request := registerRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(request.Phone) == "" || request.Password == "" {
		return apiError(c, fiber.StatusBadRequest, "phone and password are required")
	}

	user, err := handler.authService.Register(request.Phone, request.Password, request.Nickname)
	if err != nil {
		if errors.Is(err, services.ErrPhoneAlreadyRegistered) {
			return apiError(c, fiber.StatusBadRequest, "phone already registered")
		}
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}

	return handler.sendToken(c, user)
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	request := loginRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, err := handler.authService.LoginByPhone(request.Phone, request.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid phone or password")
		}
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	return handler.sendToken(c, user)
}

func (handler *Handler) WeChatLogin(c *fiber.Ctx) error {
	request := wechatLoginRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}
	if strings.TrimSpace(request.Code) == "" {
		return apiError(c, fiber.StatusBadRequest, "code is required")
	}

	user, err := handler.authService.LoginByWeChat(request.Code)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	return handler.sendToken(c, user)
}

func (handler *Handler) Me(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	return c.JSON(userView{
		ID:        user.ID,
		Phone:     user.Phone,
		Nickname:  user.Nickname,
		AvatarURL: user.AvatarURL,
	})
}

func (handler *Handler) sendToken(c *fiber.Ctx, user models.User) error {
	token, err := handler.buildAccessToken(user)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "token issue failed")
	}
	return c.JSON(tokenResponse{
		AccessToken: token,
		UserID:      user.ID,
		Nickname:    user.Nickname,
	})
}
