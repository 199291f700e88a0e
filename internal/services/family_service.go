package services

import (
	"errors"
	"strings"
	"time"

	"github.com/tbowo/careline/internal/models"
	"github.com/tbowo/careline/internal/security"
)

var (
	ErrAlreadyInFamily   = errors.New("user already belongs to a family")
	ErrNoFamily          = errors.New("user has no family")
	ErrInviteCodeInvalid = errors.New("invite code invalid")
	ErrPatientSeatTaken  = errors.New("family already has a patient")
	ErrInvalidRole       = errors.New("invalid role")
)

const defaultFamilyName = "我的家庭"

type FamilyRepository interface {
	Create(family *models.Family, firstMember *models.FamilyMember) error
	FindByID(familyID uint) (models.Family, bool, error)
	FindByInviteCode(inviteCode string) (models.Family, bool, error)
	InviteCodeExists(inviteCode string) (bool, error)
	FindMembershipByUserID(userID uint) (models.FamilyMember, bool, error)
	ListMembers(familyID uint) ([]models.FamilyMember, error)
	HasMemberWithRole(familyID uint, role models.Role) (bool, error)
	CreateMember(member *models.FamilyMember) error
}

type FamilyService struct {
	families FamilyRepository
}

func NewFamilyService(families FamilyRepository) *FamilyService {
	return &FamilyService{families: families}
}

// Create opens a family space with the creator as its first member. V1 keeps
// one family per user.
func (service *FamilyService) Create(userID uint, name string, role models.Role) (models.Family, models.FamilyMember, error) {
	if !role.Valid() {
		return models.Family{}, models.FamilyMember{}, ErrInvalidRole
	}
	if _, inFamily, err := service.families.FindMembershipByUserID(userID); err != nil {
		return models.Family{}, models.FamilyMember{}, err
	} else if inFamily {
		return models.Family{}, models.FamilyMember{}, ErrAlreadyInFamily
	}

	inviteCode, err := service.uniqueInviteCode()
	if err != nil {
		return models.Family{}, models.FamilyMember{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultFamilyName
	}

	family := models.Family{
		Name:       name,
		InviteCode: inviteCode,
		CreatedBy:  userID,
		CreatedAt:  time.Now(),
	}
	member := models.FamilyMember{
		UserID:   userID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	if err := service.families.Create(&family, &member); err != nil {
		return models.Family{}, models.FamilyMember{}, err
	}
	return family, member, nil
}

// Join adds the user to the family behind an invite code. Only one patient
// seat exists per family.
func (service *FamilyService) Join(userID uint, inviteCode string, role models.Role) (models.Family, models.FamilyMember, error) {
	if !role.Valid() {
		return models.Family{}, models.FamilyMember{}, ErrInvalidRole
	}
	if _, inFamily, err := service.families.FindMembershipByUserID(userID); err != nil {
		return models.Family{}, models.FamilyMember{}, err
	} else if inFamily {
		return models.Family{}, models.FamilyMember{}, ErrAlreadyInFamily
	}

	normalized := strings.ToUpper(strings.TrimSpace(inviteCode))
	family, found, err := service.families.FindByInviteCode(normalized)
	if err != nil {
		return models.Family{}, models.FamilyMember{}, err
	}
	if !found {
		return models.Family{}, models.FamilyMember{}, ErrInviteCodeInvalid
	}

	if role == models.RolePatient {
		taken, err := service.families.HasMemberWithRole(family.ID, models.RolePatient)
		if err != nil {
			return models.Family{}, models.FamilyMember{}, err
		}
		if taken {
			return models.Family{}, models.FamilyMember{}, ErrPatientSeatTaken
		}
	}

	member := models.FamilyMember{
		UserID:   userID,
		FamilyID: family.ID,
		Role:     role,
		JoinedAt: time.Now(),
	}
	if err := service.families.CreateMember(&member); err != nil {
		return models.Family{}, models.FamilyMember{}, err
	}
	return family, member, nil
}

// Membership resolves the caller's family and role; ErrNoFamily when the
// user has not joined one yet.
func (service *FamilyService) Membership(userID uint) (models.FamilyMember, error) {
	member, found, err := service.families.FindMembershipByUserID(userID)
	if err != nil {
		return models.FamilyMember{}, err
	}
	if !found {
		return models.FamilyMember{}, ErrNoFamily
	}
	return member, nil
}

func (service *FamilyService) FamilyWithMembers(familyID uint) (models.Family, []models.FamilyMember, error) {
	family, found, err := service.families.FindByID(familyID)
	if err != nil {
		return models.Family{}, nil, err
	}
	if !found {
		return models.Family{}, nil, ErrNoFamily
	}
	members, err := service.families.ListMembers(familyID)
	if err != nil {
		return models.Family{}, nil, err
	}
	return family, members, nil
}

func (service *FamilyService) uniqueInviteCode() (string, error) {
	for {
		code, err := security.InviteCode()
		if err != nil {
			return "", err
		}
		exists, err := service.families.InviteCodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}
