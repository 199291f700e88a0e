package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tbowo/careline/internal/models"
	"github.com/tbowo/careline/internal/services"
)

type createFamilyRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type joinFamilyRequest struct {
	InviteCode string `json:"invite_code"`
	Role       string `json:"role"`
}

type memberView struct {
	UserID   uint   `json:"user_id"`
	Nickname string `json:"nickname"`
	Role     string `json:"role"`
}

type familyView struct {
	ID         uint         `json:"id"`
	Name       string       `json:"name"`
	InviteCode string       `json:"invite_code"`
	MyRole     string       `json:"my_role"`
	Members    []memberView `json:"members"`
}

func (handler *Handler) CreateFamily(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	request := createFamilyRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	family, member, err := handler.familyService.Create(user.ID, request.Name, models.Role(request.Role))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			return apiError(c, fiber.StatusBadRequest, "invalid role")
		case errors.Is(err, services.ErrAlreadyInFamily):
			return apiError(c, fiber.StatusBadRequest, "already in a family")
		default:
			return apiError(c, fiber.StatusInternalServerError, "create family failed")
		}
	}

	return handler.familyResponse(c, family, member)
}

func (handler *Handler) JoinFamily(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	request := joinFamilyRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	family, member, err := handler.familyService.Join(user.ID, request.InviteCode, models.Role(request.Role))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidRole):
			return apiError(c, fiber.StatusBadRequest, "invalid role")
		case errors.Is(err, services.ErrAlreadyInFamily):
			return apiError(c, fiber.StatusBadRequest, "already in a family")
		case errors.Is(err, services.ErrInviteCodeInvalid):
			return apiError(c, fiber.StatusNotFound, "invite code not found")
		case errors.Is(err, services.ErrPatientSeatTaken):
			return apiError(c, fiber.StatusBadRequest, "family already has a patient")
		default:
			return apiError(c, fiber.StatusInternalServerError, "join family failed")
		}
	}

	return handler.familyResponse(c, family, member)
}

func (handler *Handler) MyFamily(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	member, err := handler.familyService.Membership(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrNoFamily) {
			return apiError(c, fiber.StatusNotFound, "no family yet")
		}
		return apiError(c, fiber.StatusInternalServerError, "load family failed")
	}

	family, _, err := handler.familyService.FamilyWithMembers(member.FamilyID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load family failed")
	}

	return handler.familyResponse(c, family, member)
}

func (handler *Handler) familyResponse(c *fiber.Ctx, family models.Family, member models.FamilyMember) error {
	_, members, err := handler.familyService.FamilyWithMembers(family.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load family failed")
	}

	view := familyView{
		ID:         family.ID,
		Name:       family.Name,
		InviteCode: family.InviteCode,
		MyRole:     string(member.Role),
		Members:    make([]memberView, 0, len(members)),
	}
	for _, item := range members {
		nickname := ""
		if user, found, findErr := handler.repositories.Users.FindByID(item.UserID); findErr == nil && found {
			nickname = user.Nickname
		}
		view.Members = append(view.Members, memberView{
			UserID:   item.UserID,
			Nickname: nickname,
			Role:     string(item.Role),
		})
	}

	return c.JSON(view)
}
