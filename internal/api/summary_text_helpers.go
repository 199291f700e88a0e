package api

import (
	"strconv"
	"strings"

	"github.com/tbowo/careline/internal/models"
	"github.com/tbowo/careline/internal/services"
)

// caregiverDigest renders the copy-paste visit digest. Sections with no data
// are dropped entirely rather than printed empty.
func (handler *Handler) caregiverDigest(language string, cycle models.Cycle, stats services.KeyStats) string {
	now := handler.now()
	day := services.CurrentCycleDay(now, cycle.StartDate)

	lines := []string{handler.i18n.Translate(language, "summary.caregiver.title"), ""}

	if cycle.LengthDays > 0 && day > cycle.LengthDays {
		lines = append(lines,
			handler.i18n.Translatef(language, "summary.caregiver.overrun", cycle.CycleNo, cycle.LengthDays, day-cycle.LengthDays),
			handler.i18n.Translate(language, "summary.caregiver.overrun_hint"))
	} else {
		phase := services.CyclePhase(day, cycle.LengthDays)
		lines = append(lines,
			handler.i18n.Translatef(language, "summary.caregiver.current",
				cycle.CycleNo, day, cycle.LengthDays, services.PhaseMessageFor(models.RoleCaregiver, phase)))
	}
	if cycle.Regimen != "" {
		lines = append(lines, handler.i18n.Translatef(language, "summary.caregiver.regimen", cycle.Regimen))
	}
	lines = append(lines, "")

	if stats.MaxNausea != nil {
		lines = append(lines, handler.i18n.Translatef(language, "summary.caregiver.max_nausea", *stats.MaxNausea, dayLabel(stats.MaxNauseaDay)))
	}
	if stats.MinEnergy != nil {
		lines = append(lines, handler.i18n.Translatef(language, "summary.caregiver.min_energy", *stats.MinEnergy, dayLabel(stats.MinEnergyDay)))
	}
	if stats.MaxStool != nil {
		lines = append(lines, handler.i18n.Translatef(language, "summary.caregiver.max_stool", *stats.MaxStool, dayLabel(stats.MaxStoolDay)))
	}
	if stats.MaxDiarrhea != nil {
		lines = append(lines, handler.i18n.Translatef(language, "summary.caregiver.max_diarrhea", *stats.MaxDiarrhea, dayLabel(stats.MaxDiarrheaDay)))
	}

	if len(stats.FeverEvents) > 0 {
		lines = append(lines, "", handler.i18n.Translatef(language, "summary.caregiver.fever_header", len(stats.FeverEvents)))
		for _, event := range stats.FeverEvents {
			lines = append(lines, handler.i18n.Translatef(language, "summary.caregiver.fever_line", dayLabel(event.CycleDay), event.TempC))
		}
	}
	if len(stats.BloodEvents) > 0 {
		lines = append(lines, "", handler.i18n.Translatef(language, "summary.caregiver.blood_header", len(stats.BloodEvents)))
	}

	averages := []string{}
	if stats.AvgEnergy7d != nil {
		averages = append(averages, handler.i18n.Translatef(language, "summary.caregiver.avg_energy", *stats.AvgEnergy7d))
	}
	if stats.AvgNausea7d != nil {
		averages = append(averages, handler.i18n.Translatef(language, "summary.caregiver.avg_nausea", *stats.AvgNausea7d))
	}
	if stats.AvgStool7d != nil {
		averages = append(averages, handler.i18n.Translatef(language, "summary.caregiver.avg_stool", *stats.AvgStool7d))
	}
	if len(averages) > 0 {
		lines = append(lines, "", handler.i18n.Translate(language, "summary.caregiver.recent_header"))
		lines = append(lines, averages...)
	}

	if len(stats.WorstDays) > 0 {
		lines = append(lines, "", handler.i18n.Translate(language, "summary.caregiver.worst_header"))
		for _, worst := range stats.WorstDays {
			lines = append(lines, handler.i18n.Translatef(language, "summary.caregiver.worst_line",
				dayLabel(worst.CycleDay), strings.Join(worst.Reasons, " ")))
		}
	}

	lines = append(lines, "", handler.i18n.Translatef(language, "summary.caregiver.footer", services.FormatDay(now)))
	return strings.Join(lines, "\n")
}

// patientDigest keeps the patient's view short and gentle. No peaks, no
// incident lists.
func (handler *Handler) patientDigest(language string, cycle models.Cycle, stats services.KeyStats) string {
	now := handler.now()
	day := services.CurrentCycleDay(now, cycle.StartDate)
	percent := int(services.CycleProgressPercent(day, cycle.LengthDays))

	displayDay := day
	if cycle.LengthDays > 0 && displayDay > cycle.LengthDays {
		displayDay = cycle.LengthDays
	}
	if displayDay < 1 {
		displayDay = 1
	}

	lines := []string{
		handler.i18n.Translatef(language, "summary.patient.today", cycle.CycleNo, displayDay),
		handler.i18n.Translatef(language, "summary.patient.progress", percent),
	}

	switch {
	case percent >= 100:
		lines = append(lines, handler.i18n.Translate(language, "summary.patient.done"))
	case stats.AvgEnergy7d != nil && *stats.AvgEnergy7d <= 1.5:
		lines = append(lines, handler.i18n.Translate(language, "summary.patient.good_state"))
	case day > 7:
		lines = append(lines, handler.i18n.Translate(language, "summary.patient.recovering"))
	default:
		lines = append(lines, handler.i18n.Translate(language, "summary.patient.fighting"))
	}

	lines = append(lines, handler.i18n.Translate(language, "summary.patient.cheer"))
	return strings.Join(lines, "\n")
}

func dayLabel(cycleDay *int) string {
	if cycleDay == nil {
		return "?"
	}
	return strconv.Itoa(*cycleDay)
}
