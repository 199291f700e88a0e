package models

import "time"

const DefaultCycleLengthDays = 21

// Cycle is one chemotherapy course. A family has at most one active cycle;
// creating a cycle with an existing cycle_no replaces that record in place.
type Cycle struct {
	ID         uint      `gorm:"primaryKey"`
	FamilyID   uint      `gorm:"not null;uniqueIndex:uidx_family_cycle;index:idx_family_active"`
	CycleNo    int       `gorm:"not null;uniqueIndex:uidx_family_cycle"`
	StartDate  time.Time `gorm:"type:date;not null"`
	LengthDays int       `gorm:"not null;default:21"`
	Regimen    string    `gorm:"size:64"`
	IsActive   bool      `gorm:"not null;default:true;index:idx_family_active"`
	CreatedAt  time.Time `gorm:"not null"`
}
