package db

import (
	"github.com/tbowo/careline/internal/models"
	"gorm.io/gorm"
)

type FamilyRepository struct {
	database *gorm.DB
}

func NewFamilyRepository(database *gorm.DB) *FamilyRepository {
	return &FamilyRepository{database: database}
}

func (repo *FamilyRepository) Create(family *models.Family, firstMember *models.FamilyMember) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(family).Error; err != nil {
			return err
		}
		firstMember.FamilyID = family.ID
		return tx.Create(firstMember).Error
	})
}

func (repo *FamilyRepository) FindByID(familyID uint) (models.Family, bool, error) {
	family := models.Family{}
	result := repo.database.Where("id = ?", familyID).Limit(1).Find(&family)
	if result.Error != nil {
		return models.Family{}, false, result.Error
	}
	return family, result.RowsAffected > 0, nil
}

func (repo *FamilyRepository) FindByInviteCode(inviteCode string) (models.Family, bool, error) {
	family := models.Family{}
	result := repo.database.Where("invite_code = ?", inviteCode).Limit(1).Find(&family)
	if result.Error != nil {
		return models.Family{}, false, result.Error
	}
	return family, result.RowsAffected > 0, nil
}

func (repo *FamilyRepository) InviteCodeExists(inviteCode string) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.Family{}).Where("invite_code = ?", inviteCode).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindMembershipByUserID returns the user's first membership. V1 keeps one
// family per user.
func (repo *FamilyRepository) FindMembershipByUserID(userID uint) (models.FamilyMember, bool, error) {
	member := models.FamilyMember{}
	result := repo.database.Where("user_id = ?", userID).Order("joined_at ASC, id ASC").Limit(1).Find(&member)
	if result.Error != nil {
		return models.FamilyMember{}, false, result.Error
	}
	return member, result.RowsAffected > 0, nil
}

func (repo *FamilyRepository) ListMembers(familyID uint) ([]models.FamilyMember, error) {
	members := make([]models.FamilyMember, 0)
	if err := repo.database.Where("family_id = ?", familyID).Order("joined_at ASC, id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (repo *FamilyRepository) HasMemberWithRole(familyID uint, role models.Role) (bool, error) {
	var count int64
	if err := repo.database.Model(&models.FamilyMember{}).
		Where("family_id = ? AND role = ?", familyID, role).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (repo *FamilyRepository) CreateMember(member *models.FamilyMember) error {
	return repo.database.Create(member).Error
}
