package models

import "time"

type User struct {
	ID           uint      `gorm:"primaryKey"`
	OpenID       *string   `gorm:"column:openid;size:128;uniqueIndex"`
	Phone        *string   `gorm:"size:20;uniqueIndex"`
	PasswordHash string    `gorm:"size:128"`
	Nickname     string    `gorm:"size:64"`
	AvatarURL    string    `gorm:"size:512"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}
