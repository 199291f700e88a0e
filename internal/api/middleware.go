package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tbowo/careline/internal/models"
	"github.com/tbowo/careline/internal/services"
)

func (handler *Handler) LanguageMiddleware(c *fiber.Ctx) error {
	language := handler.i18n.DetectFromAcceptLanguage(c.Get(fiber.HeaderAcceptLanguage))
	c.Locals(contextLanguageKey, language)
	return c.Next()
}

// AuthRequired resolves the Bearer token into a user. An invalid or expired
// token is always a 401 so clients can drop their session in one place.
func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	userID, err := handler.parseAccessToken(token)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := handler.authService.FindByID(userID)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	return c.Next()
}

// FamilyRequired loads the caller's family membership; family-scoped routes
// reject users who have not created or joined a family yet.
func (handler *Handler) FamilyRequired(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	membership, err := handler.familyService.Membership(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrNoFamily) {
			return apiError(c, fiber.StatusBadRequest, "join a family first")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to load membership")
	}

	c.Locals(contextMembershipKey, membership)
	return c.Next()
}

func bearerToken(c *fiber.Ctx) string {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

func currentUser(c *fiber.Ctx) (models.User, bool) {
	user, ok := c.Locals(contextUserKey).(models.User)
	return user, ok
}

func currentMembership(c *fiber.Ctx) (models.FamilyMember, bool) {
	membership, ok := c.Locals(contextMembershipKey).(models.FamilyMember)
	return membership, ok
}

func requestLanguage(c *fiber.Ctx) string {
	language, _ := c.Locals(contextLanguageKey).(string)
	return language
}
