package services

import (
	"testing"

	"github.com/tbowo/careline/internal/models"
)

func intPtr(value int) *int {
	return &value
}

func floatPtr(value float64) *float64 {
	return &value
}

func summaryLog(t *testing.T, date string, mutate func(*models.DailyLog)) models.DailyLog {
	t.Helper()

	entry := models.DailyLog{Date: mustParseDay(t, date)}
	if mutate != nil {
		mutate(&entry)
	}
	return entry
}

func TestBuildKeyStatsPeaksAndIncidents(t *testing.T) {
	t.Parallel()

	logs := []models.DailyLog{
		summaryLog(t, "2026-02-01", func(entry *models.DailyLog) {
			entry.CycleDay = intPtr(1)
			entry.Energy = intPtr(1)
			entry.Nausea = intPtr(1)
		}),
		summaryLog(t, "2026-02-04", func(entry *models.DailyLog) {
			entry.CycleDay = intPtr(4)
			entry.Energy = intPtr(3)
			entry.Nausea = intPtr(3)
			entry.Fever = true
			entry.TempC = floatPtr(38.6)
			entry.StoolCount = intPtr(6)
			entry.StoolBloodCount = 2
		}),
		summaryLog(t, "2026-02-06", func(entry *models.DailyLog) {
			entry.CycleDay = intPtr(6)
			entry.Energy = intPtr(2)
			entry.Nausea = intPtr(2)
			entry.StoolCount = intPtr(3)
		}),
	}

	stats := BuildKeyStats(logs, 7)

	if stats.MaxNausea == nil || *stats.MaxNausea != 3 || stats.MaxNauseaDay == nil || *stats.MaxNauseaDay != 4 {
		t.Fatalf("unexpected nausea peak: %v on day %v", stats.MaxNausea, stats.MaxNauseaDay)
	}
	if stats.MinEnergy == nil || *stats.MinEnergy != 3 {
		t.Fatalf("expected worst energy 3, got %v", stats.MinEnergy)
	}
	if stats.MaxStool == nil || *stats.MaxStool != 6 {
		t.Fatalf("expected stool peak 6, got %v", stats.MaxStool)
	}

	if len(stats.FeverEvents) != 1 || stats.FeverEvents[0].TempC != 38.6 {
		t.Fatalf("unexpected fever events: %+v", stats.FeverEvents)
	}
	if len(stats.BloodEvents) != 1 || stats.BloodEvents[0].Count != 2 {
		t.Fatalf("unexpected blood events: %+v", stats.BloodEvents)
	}

	// averages: energy (1+3+2)/3 = 2.0, nausea (1+3+2)/3 = 2.0
	if stats.AvgEnergy7d == nil || *stats.AvgEnergy7d != 2.0 {
		t.Fatalf("unexpected energy average: %v", stats.AvgEnergy7d)
	}
	if stats.AvgStool7d == nil || *stats.AvgStool7d != 4.5 {
		t.Fatalf("unexpected stool average: %v", stats.AvgStool7d)
	}

	if len(stats.WorstDays) != 3 {
		t.Fatalf("expected three scored days, got %d", len(stats.WorstDays))
	}
	worst := stats.WorstDays[0]
	if worst.CycleDay == nil || *worst.CycleDay != 4 {
		t.Fatalf("expected day 4 to rank worst, got %v", worst.CycleDay)
	}
	if len(worst.Reasons) != 4 {
		t.Fatalf("expected energy, nausea, fever and stool reasons, got %v", worst.Reasons)
	}
}

func TestBuildKeyStatsSkipsUnansweredFields(t *testing.T) {
	t.Parallel()

	logs := []models.DailyLog{
		summaryLog(t, "2026-02-01", nil),
		summaryLog(t, "2026-02-02", func(entry *models.DailyLog) {
			entry.Energy = intPtr(0)
		}),
	}

	stats := BuildKeyStats(logs, 7)

	if stats.MaxNausea != nil {
		t.Fatalf("expected no nausea peak from unanswered logs, got %v", *stats.MaxNausea)
	}
	// A recorded zero still counts toward the average; unanswered days do not.
	if stats.AvgEnergy7d == nil || *stats.AvgEnergy7d != 0 {
		t.Fatalf("unexpected energy average: %v", stats.AvgEnergy7d)
	}
	if stats.AvgNausea7d != nil {
		t.Fatalf("expected nil nausea average, got %v", *stats.AvgNausea7d)
	}
}

func TestBuildKeyStatsRecentWindowUsesLatestDays(t *testing.T) {
	t.Parallel()

	logs := []models.DailyLog{
		summaryLog(t, "2026-02-01", func(entry *models.DailyLog) { entry.Energy = intPtr(4) }),
		summaryLog(t, "2026-02-08", func(entry *models.DailyLog) { entry.Energy = intPtr(1) }),
		summaryLog(t, "2026-02-09", func(entry *models.DailyLog) { entry.Energy = intPtr(1) }),
	}

	stats := BuildKeyStats(logs, 2)

	if stats.AvgEnergy7d == nil || *stats.AvgEnergy7d != 1.0 {
		t.Fatalf("expected recent window to drop the old spike, got %v", stats.AvgEnergy7d)
	}
}

func TestBuildTrendPointsPreservesAbsence(t *testing.T) {
	t.Parallel()

	logs := []models.DailyLog{
		summaryLog(t, "2026-02-01", func(entry *models.DailyLog) {
			entry.Energy = intPtr(0)
		}),
	}

	points := BuildTrendPoints(logs)
	if len(points) != 1 {
		t.Fatalf("expected one point, got %d", len(points))
	}
	if points[0].Energy == nil || *points[0].Energy != 0 {
		t.Fatalf("expected recorded zero preserved, got %v", points[0].Energy)
	}
	if points[0].Nausea != nil {
		t.Fatalf("expected unanswered nausea to stay nil, got %v", *points[0].Nausea)
	}
}
