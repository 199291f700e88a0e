package models

import "time"

const (
	MinBristol = 1
	MaxBristol = 7
)

// StoolEvent is an append-only record of a single bowel movement. Multiple
// events per day are expected; the day's DailyLog carries the aggregate.
type StoolEvent struct {
	ID       uint      `gorm:"primaryKey"`
	FamilyID uint      `gorm:"not null;index:idx_stool_family_date"`
	Date     time.Time `gorm:"type:date;not null;index:idx_stool_family_date"`
	Time     string    `gorm:"size:8"`
	Bristol  *int
	Blood    bool `gorm:"not null;default:false"`
	Mucus    bool `gorm:"not null;default:false"`
	Tenesmus bool `gorm:"not null;default:false"`

	RecordedAt time.Time `gorm:"not null"`
}
