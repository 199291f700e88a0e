package models

import "time"

// Role identifies who a family member is relative to the patient. The
// patient records for themselves; caregivers record on the patient's behalf
// behind an explicit confirmation step.
type Role string

const (
	RolePatient   Role = "patient"
	RoleCaregiver Role = "caregiver"
)

func (role Role) Valid() bool {
	return role == RolePatient || role == RoleCaregiver
}

// RequiresConfirmation reports whether the daily form must be explicitly
// acknowledged before it becomes editable for this role.
func (role Role) RequiresConfirmation() bool {
	return role == RoleCaregiver
}

type Family struct {
	ID         uint      `gorm:"primaryKey"`
	Name       string    `gorm:"size:64;not null"`
	InviteCode string    `gorm:"size:16;uniqueIndex;not null"`
	CreatedBy  uint      `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
}

type FamilyMember struct {
	ID       uint      `gorm:"primaryKey"`
	UserID   uint      `gorm:"not null;uniqueIndex:uidx_user_family"`
	FamilyID uint      `gorm:"not null;uniqueIndex:uidx_user_family"`
	Role     Role      `gorm:"size:16;not null"`
	JoinedAt time.Time `gorm:"not null"`
}
