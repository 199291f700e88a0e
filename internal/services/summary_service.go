package services

import (
	"sort"
	"time"

	"github.com/tbowo/careline/internal/models"
)

// TrendPoint is one day's values flattened for charting.
type TrendPoint struct {
	Date         time.Time `json:"date"`
	CycleDay     *int      `json:"cycle_day"`
	Energy       *int      `json:"energy"`
	Nausea       *int      `json:"nausea"`
	Appetite     *int      `json:"appetite"`
	SleepQuality *int      `json:"sleep_quality"`
	StoolCount   *int      `json:"stool_count"`
	Diarrhea     *int      `json:"diarrhea"`
	Fever        bool      `json:"fever"`
	TempC        *float64  `json:"temp_c"`
	IsToughDay   bool      `json:"is_tough_day"`
}

type FeverEvent struct {
	Date     string  `json:"date"`
	CycleDay *int    `json:"day"`
	TempC    float64 `json:"temp"`
}

type BloodEvent struct {
	Date     string `json:"date"`
	CycleDay *int   `json:"day"`
	Count    int    `json:"count"`
}

type WorstDay struct {
	CycleDay *int     `json:"day"`
	Date     string   `json:"date"`
	Reasons  []string `json:"reasons"`
}

// KeyStats condenses a cycle's logs into the numbers a doctor asks about:
// peaks, fever and blood incidents, recent averages and the hardest days.
type KeyStats struct {
	MaxNausea      *int         `json:"max_nausea"`
	MaxNauseaDay   *int         `json:"max_nausea_day"`
	MinEnergy      *int         `json:"min_energy"`
	MinEnergyDay   *int         `json:"min_energy_day"`
	MaxStool       *int         `json:"max_stool"`
	MaxStoolDay    *int         `json:"max_stool_day"`
	MaxDiarrhea    *int         `json:"max_diarrhea"`
	MaxDiarrheaDay *int         `json:"max_diarrhea_day"`
	FeverEvents    []FeverEvent `json:"fever_events"`
	BloodEvents    []BloodEvent `json:"blood_events"`
	AvgEnergy7d    *float64     `json:"avg_energy_7d"`
	AvgNausea7d    *float64     `json:"avg_nausea_7d"`
	AvgStool7d     *float64     `json:"avg_stool_7d"`
	AvgSleep7d     *float64     `json:"avg_sleep_7d"`
	WorstDays      []WorstDay   `json:"worst_days"`
}

func BuildTrendPoints(logs []models.DailyLog) []TrendPoint {
	points := make([]TrendPoint, 0, len(logs))
	for _, entry := range logs {
		points = append(points, TrendPoint{
			Date:         entry.Date,
			CycleDay:     entry.CycleDay,
			Energy:       entry.Energy,
			Nausea:       entry.Nausea,
			Appetite:     entry.Appetite,
			SleepQuality: entry.SleepQuality,
			StoolCount:   entry.StoolCount,
			Diarrhea:     entry.Diarrhea,
			Fever:        entry.Fever,
			TempC:        entry.TempC,
			IsToughDay:   entry.IsToughDay,
		})
	}
	return points
}

// BuildKeyStats computes peaks, incident lists, recent averages and a
// worst-3 composite over the given logs. Unanswered fields never count as
// zeros; they are skipped.
func BuildKeyStats(logs []models.DailyLog, recentDays int) KeyStats {
	stats := KeyStats{
		FeverEvents: []FeverEvent{},
		BloodEvents: []BloodEvent{},
		WorstDays:   []WorstDay{},
	}
	if len(logs) == 0 {
		return stats
	}
	if recentDays <= 0 {
		recentDays = 7
	}

	for _, entry := range logs {
		notePeak(entry.Nausea, entry.CycleDay, &stats.MaxNausea, &stats.MaxNauseaDay)
		notePeak(entry.Energy, entry.CycleDay, &stats.MinEnergy, &stats.MinEnergyDay)
		notePeak(entry.StoolCount, entry.CycleDay, &stats.MaxStool, &stats.MaxStoolDay)
		notePeak(entry.Diarrhea, entry.CycleDay, &stats.MaxDiarrhea, &stats.MaxDiarrheaDay)

		if entry.Fever && entry.TempC != nil {
			stats.FeverEvents = append(stats.FeverEvents, FeverEvent{
				Date:     FormatDay(entry.Date),
				CycleDay: entry.CycleDay,
				TempC:    *entry.TempC,
			})
		}
		if entry.StoolBloodCount > 0 {
			stats.BloodEvents = append(stats.BloodEvents, BloodEvent{
				Date:     FormatDay(entry.Date),
				CycleDay: entry.CycleDay,
				Count:    entry.StoolBloodCount,
			})
		}
	}

	recent := make([]models.DailyLog, 0, len(logs))
	recent = append(recent, logs...)
	sort.Slice(recent, func(i, j int) bool {
		return recent[i].Date.After(recent[j].Date)
	})
	if len(recent) > recentDays {
		recent = recent[:recentDays]
	}
	stats.AvgEnergy7d = averageOrdinal(recent, func(entry models.DailyLog) *int { return entry.Energy })
	stats.AvgNausea7d = averageOrdinal(recent, func(entry models.DailyLog) *int { return entry.Nausea })
	stats.AvgStool7d = averageOrdinal(recent, func(entry models.DailyLog) *int { return entry.StoolCount })
	stats.AvgSleep7d = averageOrdinal(recent, func(entry models.DailyLog) *int { return entry.SleepQuality })

	stats.WorstDays = worstDays(logs, 3)

	return stats
}

// notePeak keeps the higher ordinal together with the cycle day it happened
// on. Energy uses the same direction because higher ECOG means worse.
func notePeak(value *int, cycleDay *int, bestValue **int, bestDay **int) {
	if value == nil {
		return
	}
	if *bestValue != nil && *value <= **bestValue {
		return
	}
	*bestValue = value
	*bestDay = cycleDay
}

func averageOrdinal(logs []models.DailyLog, pick func(models.DailyLog) *int) *float64 {
	total := 0
	count := 0
	for _, entry := range logs {
		if value := pick(entry); value != nil {
			total += *value
			count++
		}
	}
	if count == 0 {
		return nil
	}
	average := float64(int(float64(total)/float64(count)*10+0.5)) / 10
	return &average
}

type scoredDay struct {
	score    int
	cycleDay *int
	date     string
	reasons  []string
}

func worstDays(logs []models.DailyLog, limit int) []WorstDay {
	scored := make([]scoredDay, 0, len(logs))
	for _, entry := range logs {
		day := scoredDay{cycleDay: entry.CycleDay, date: FormatDay(entry.Date), reasons: []string{}}
		if entry.Energy != nil {
			day.score += *entry.Energy
			if *entry.Energy >= 3 {
				day.reasons = append(day.reasons, reasonEnergy(*entry.Energy))
			}
		}
		if entry.Nausea != nil {
			day.score += *entry.Nausea
			if *entry.Nausea >= 2 {
				day.reasons = append(day.reasons, reasonNausea(*entry.Nausea))
			}
		}
		if entry.Fever && entry.TempC != nil {
			day.score += 3
			day.reasons = append(day.reasons, reasonFever(*entry.TempC))
		}
		if entry.StoolCount != nil && *entry.StoolCount >= 5 {
			day.score += 2
			day.reasons = append(day.reasons, reasonStool(*entry.StoolCount))
		}
		scored = append(scored, day)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	result := make([]WorstDay, 0, len(scored))
	for _, day := range scored {
		result = append(result, WorstDay{CycleDay: day.cycleDay, Date: day.date, Reasons: day.reasons})
	}
	return result
}
