package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tbowo/careline/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrPhoneAlreadyRegistered = errors.New("phone already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrUserNotFound           = errors.New("user not found")
)

type AuthUserRepository interface {
	FindByID(userID uint) (models.User, bool, error)
	FindByPhone(phone string) (models.User, bool, error)
	FindByOpenID(openID string) (models.User, bool, error)
	Create(user *models.User) error
	Save(user *models.User) error
}

type AuthService struct {
	users AuthUserRepository
}

func NewAuthService(users AuthUserRepository) *AuthService {
	return &AuthService{users: users}
}

func (service *AuthService) Register(phone string, password string, nickname string) (models.User, error) {
	phone = strings.TrimSpace(phone)
	_, exists, err := service.users.FindByPhone(phone)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, ErrPhoneAlreadyRegistered
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}

	nickname = strings.TrimSpace(nickname)
	if nickname == "" && len(phone) >= 4 {
		nickname = fmt.Sprintf("用户%s", phone[len(phone)-4:])
	}

	user := models.User{
		Phone:        &phone,
		PasswordHash: string(passwordHash),
		Nickname:     nickname,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) LoginByPhone(phone string, password string) (models.User, error) {
	user, found, err := service.users.FindByPhone(strings.TrimSpace(phone))
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// LoginByWeChat exchanges a mini-program login code for a user, creating one
// on first sight. Resolving the code against the WeChat code2session API is
// the deployment's concern; the code is used as the openid surrogate here,
// matching the upstream stub.
func (service *AuthService) LoginByWeChat(code string) (models.User, error) {
	openID := "wx_" + strings.TrimSpace(code)
	user, found, err := service.users.FindByOpenID(openID)
	if err != nil {
		return models.User{}, err
	}
	if found {
		return user, nil
	}

	user = models.User{
		OpenID:    &openID,
		Nickname:  "微信用户",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := service.users.Create(&user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (service *AuthService) FindByID(userID uint) (models.User, error) {
	user, found, err := service.users.FindByID(userID)
	if err != nil {
		return models.User{}, err
	}
	if !found {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}
