package services

import "time"

// Phase is the position of a day within a chemotherapy cycle. The boundaries
// (day 2, 7 and 14) track typical side-effect timing and are fixed domain
// constants.
type Phase string

const (
	PhaseEarly      Phase = "early"
	PhasePeakWindow Phase = "peak_window"
	PhaseRecovery   Phase = "recovery"
	PhaseLate       Phase = "late"
	PhaseOverrun    Phase = "overrun"
)

const (
	earlyPhaseLastDay    = 2
	peakWindowLastDay    = 7
	recoveryPhaseLastDay = 14
)

// CurrentCycleDay returns the 1-based day of the cycle for today. The raw
// arithmetic result is returned unclamped: a start date in the future yields
// a value below 1 and callers decide how to present it.
func CurrentCycleDay(today time.Time, startDate time.Time) int {
	todayStart := DateAtLocation(today, today.Location())
	cycleStart := DateAtLocation(startDate, today.Location())
	return int(todayStart.Sub(cycleStart).Hours()/24) + 1
}

// CycleProgressPercent reports how far through the cycle the given day is,
// capped at 100. A non-positive length yields 0.
func CycleProgressPercent(currentDay int, lengthDays int) float64 {
	if lengthDays <= 0 {
		return 0
	}
	percent := float64(currentDay) / float64(lengthDays) * 100
	if percent > 100 {
		return 100
	}
	if percent < 0 {
		return 0
	}
	return percent
}

// CyclePhase maps a cycle day to its phase tag. Days past the cycle length
// are reported as overrun, never clamped.
func CyclePhase(currentDay int, lengthDays int) Phase {
	if lengthDays > 0 && currentDay > lengthDays {
		return PhaseOverrun
	}
	switch {
	case currentDay <= earlyPhaseLastDay:
		return PhaseEarly
	case currentDay <= peakWindowLastDay:
		return PhasePeakWindow
	case currentDay <= recoveryPhaseLastDay:
		return PhaseRecovery
	default:
		return PhaseLate
	}
}

// DayStatus classifies a recorded day for calendar display from its combined
// energy and nausea burden.
type DayStatus string

const (
	DayStatusGood  DayStatus = "good"
	DayStatusOkay  DayStatus = "okay"
	DayStatusTough DayStatus = "tough"
	DayStatusRest  DayStatus = "rest"
	DayStatusNone  DayStatus = "none"
)

func StatusForScores(energy *int, nausea *int, isToughDay bool) (DayStatus, string) {
	if isToughDay {
		return DayStatusTough, "💪"
	}
	score := 0
	if energy != nil {
		score += *energy
	}
	if nausea != nil {
		score += *nausea
	}
	if score <= 2 {
		return DayStatusGood, "😊"
	}
	if score <= 4 {
		return DayStatusOkay, "😐"
	}
	return DayStatusTough, "💪"
}

// StatusEmoji is the home-screen face for today's record. Unrecorded days
// show the placeholder pencil.
func StatusEmoji(energy *int, nausea *int) string {
	if energy == nil && nausea == nil {
		return "📝"
	}
	energyValue := 0
	if energy != nil {
		energyValue = *energy
	}
	nauseaValue := 0
	if nausea != nil {
		nauseaValue = *nausea
	}
	if energyValue >= 3 || nauseaValue >= 3 {
		return "😔"
	}
	if energyValue >= 2 || nauseaValue >= 2 {
		return "😐"
	}
	if energyValue <= 1 && nauseaValue <= 1 {
		return "😊"
	}
	return "💪"
}
