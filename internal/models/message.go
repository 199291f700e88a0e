package models

import "time"

// FamilyMessage is a short note left for the other family members. Sending a
// new message deactivates the sender's previous active ones.
type FamilyMessage struct {
	ID        uint      `gorm:"primaryKey"`
	FamilyID  uint      `gorm:"not null;index"`
	SenderID  uint      `gorm:"not null"`
	Content   string    `gorm:"type:text;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
}
