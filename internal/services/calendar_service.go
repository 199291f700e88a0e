package services

import (
	"time"

	"github.com/tbowo/careline/internal/models"
)

type CalendarDay struct {
	Date     time.Time `json:"date"`
	CycleDay *int      `json:"cycle_day"`
	Status   DayStatus `json:"status"`
	Emoji    string    `json:"emoji"`
	Recorded bool      `json:"recorded"`
}

type CalendarMonth struct {
	Year          int           `json:"year"`
	Month         int           `json:"month"`
	Days          []CalendarDay `json:"days"`
	TotalRecorded int           `json:"total_recorded"`
	GoodDays      int           `json:"good_days"`
	Streak        int           `json:"streak"`
}

// BuildCalendarMonth derives a per-day status view for one month. The streak
// counts consecutive recorded days backwards from the most recent past day
// of the month.
func BuildCalendarMonth(logs []models.DailyLog, cycle *models.Cycle, year int, month time.Month, today time.Time, location *time.Location) CalendarMonth {
	if location == nil {
		location = time.UTC
	}
	todayStart := DateAtLocation(today, location)
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, location)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	logByDay := make(map[string]models.DailyLog, len(logs))
	for _, entry := range logs {
		logByDay[FormatDay(DateAtLocation(entry.Date, location))] = entry
	}

	streak := 0
	for dayNumber := daysInMonth; dayNumber >= 1; dayNumber-- {
		day := time.Date(year, month, dayNumber, 0, 0, 0, 0, location)
		if day.After(todayStart) {
			continue
		}
		if _, recorded := logByDay[FormatDay(day)]; !recorded {
			break
		}
		streak++
	}

	result := CalendarMonth{Year: year, Month: int(month), Days: make([]CalendarDay, 0, daysInMonth), Streak: streak}

	for dayNumber := 1; dayNumber <= daysInMonth; dayNumber++ {
		day := time.Date(year, month, dayNumber, 0, 0, 0, 0, location)

		var cycleDay *int
		if cycle != nil {
			delta := CurrentCycleDay(day, DateAtLocation(cycle.StartDate, location))
			if delta >= 1 && delta <= cycle.LengthDays {
				cycleDay = &delta
			}
		}

		entry, recorded := logByDay[FormatDay(day)]
		calendarDay := CalendarDay{Date: day, CycleDay: cycleDay, Recorded: recorded, Status: DayStatusNone}
		switch {
		case recorded:
			calendarDay.Status, calendarDay.Emoji = StatusForScores(entry.Energy, entry.Nausea, entry.IsToughDay)
		case !day.After(todayStart) && cycleDay == nil:
			calendarDay.Status = DayStatusRest
		}

		result.Days = append(result.Days, calendarDay)
		if calendarDay.Status == DayStatusGood {
			result.GoodDays++
		}
		if calendarDay.Recorded {
			result.TotalRecorded++
		}
	}

	return result
}
