package models

import "time"

// Ordinal scale bounds for the optional symptom fields. Energy follows the
// ECOG performance scale.
const (
	MaxEnergy       = 4
	MaxNausea       = 3
	MaxAppetite     = 5
	MaxSleepQuality = 3
	MaxDiarrhea     = 3
)

// DailyLog is the single per-day symptom record for a family. Optional
// ordinal fields are pointers: nil means the question was never answered,
// which must stay distinct from a recorded zero.
type DailyLog struct {
	ID       uint      `gorm:"primaryKey"`
	FamilyID uint      `gorm:"not null;uniqueIndex:uidx_family_date;index:idx_family_date_range"`
	Date     time.Time `gorm:"type:date;not null;uniqueIndex:uidx_family_date;index:idx_family_date_range"`
	CycleNo  *int      `gorm:"index:idx_family_cycle_no"`
	CycleDay *int

	Energy       *int
	Nausea       *int
	Appetite     *int
	SleepQuality *int
	Fever        bool `gorm:"not null;default:false"`
	TempC        *float64
	StoolCount   *int
	Diarrhea     *int
	Numbness     bool   `gorm:"not null;default:false"`
	MouthSore    bool   `gorm:"not null;default:false"`
	IsToughDay   bool   `gorm:"not null;default:false"`
	Note         string `gorm:"type:text"`

	// Aggregates synced from same-day stool events.
	StoolBloodCount    int `gorm:"not null;default:0"`
	StoolMucusCount    int `gorm:"not null;default:0"`
	StoolTenesmusCount int `gorm:"not null;default:0"`

	RecordedBy *uint
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}
