package services

import (
	"errors"

	"github.com/tbowo/careline/internal/models"
)

var ErrDailyValueOutOfRange = errors.New("daily log value out of range")

// DailyLogInput is one upsert payload for a calendar day. Every field is
// tri-state; clients submit the full field set on save so a save is a full
// overwrite of the day's optional fields.
type DailyLogInput struct {
	Energy       Optional[int]     `json:"energy"`
	Nausea       Optional[int]     `json:"nausea"`
	Appetite     Optional[int]     `json:"appetite"`
	SleepQuality Optional[int]     `json:"sleep_quality"`
	Diarrhea     Optional[int]     `json:"diarrhea"`
	Fever        Optional[bool]    `json:"fever"`
	TempC        Optional[float64] `json:"temp_c"`
	StoolCount   Optional[int]     `json:"stool_count"`
	Numbness     Optional[bool]    `json:"numbness"`
	MouthSore    Optional[bool]    `json:"mouth_sore"`
	IsToughDay   Optional[bool]    `json:"is_tough_day"`
	Note         Optional[string]  `json:"note"`
}

// Validate checks ordinal bounds on every provided value.
func (input DailyLogInput) Validate() error {
	checks := []struct {
		field Optional[int]
		max   int
	}{
		{input.Energy, models.MaxEnergy},
		{input.Nausea, models.MaxNausea},
		{input.Appetite, models.MaxAppetite},
		{input.SleepQuality, models.MaxSleepQuality},
		{input.Diarrhea, models.MaxDiarrhea},
	}
	for _, check := range checks {
		if check.field.Present && check.field.Valid {
			if check.field.Value < 0 || check.field.Value > check.max {
				return ErrDailyValueOutOfRange
			}
		}
	}
	if input.StoolCount.Present && input.StoolCount.Valid && input.StoolCount.Value < 0 {
		return ErrDailyValueOutOfRange
	}
	return nil
}

func (input DailyLogInput) toughDayRequested() bool {
	return input.IsToughDay.Present && input.IsToughDay.Valid && input.IsToughDay.Value
}

func applyOrdinal(target **int, field Optional[int]) {
	if !field.Present {
		return
	}
	*target = field.Ptr()
}

func applyBool(target *bool, field Optional[bool]) {
	if !field.Present {
		return
	}
	*target = field.Valid && field.Value
}
