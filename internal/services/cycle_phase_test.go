package services

import (
	"testing"
	"time"
)

func mustParseDay(t *testing.T, raw string) time.Time {
	t.Helper()

	day, err := ParseDay(raw, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", raw, err)
	}
	return day
}

func TestCurrentCycleDay(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		today     string
		startDate string
		want      int
	}{
		{name: "start day is day one", today: "2026-02-10", startDate: "2026-02-10", want: 1},
		{name: "next day is day two", today: "2026-02-11", startDate: "2026-02-10", want: 2},
		{name: "three weeks in", today: "2026-03-02", startDate: "2026-02-10", want: 21},
		{name: "past cycle length keeps counting", today: "2026-03-10", startDate: "2026-02-10", want: 29},
		{name: "future start goes below one", today: "2026-02-10", startDate: "2026-02-12", want: -1},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			today := mustParseDay(t, testCase.today)
			start := mustParseDay(t, testCase.startDate)
			if got := CurrentCycleDay(today, start); got != testCase.want {
				t.Fatalf("expected day %d, got %d", testCase.want, got)
			}
		})
	}
}

func TestCycleProgressPercent(t *testing.T) {
	t.Parallel()

	if got := CycleProgressPercent(7, 0); got != 0 {
		t.Fatalf("expected 0 for zero length, got %v", got)
	}
	if got := CycleProgressPercent(7, -3); got != 0 {
		t.Fatalf("expected 0 for negative length, got %v", got)
	}
	if got := CycleProgressPercent(30, 21); got != 100 {
		t.Fatalf("expected cap at 100, got %v", got)
	}
	if got := CycleProgressPercent(-2, 21); got != 0 {
		t.Fatalf("expected floor at 0, got %v", got)
	}

	previous := float64(-1)
	for day := 0; day <= 40; day++ {
		current := CycleProgressPercent(day, 21)
		if current < previous {
			t.Fatalf("progress decreased at day %d: %v -> %v", day, previous, current)
		}
		if current > 100 {
			t.Fatalf("progress exceeded 100 at day %d: %v", day, current)
		}
		previous = current
	}
}

func TestCyclePhaseBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		day    int
		length int
		want   Phase
	}{
		{day: 1, length: 21, want: PhaseEarly},
		{day: 2, length: 21, want: PhaseEarly},
		{day: 3, length: 21, want: PhasePeakWindow},
		{day: 7, length: 21, want: PhasePeakWindow},
		{day: 8, length: 21, want: PhaseRecovery},
		{day: 14, length: 21, want: PhaseRecovery},
		{day: 15, length: 21, want: PhaseLate},
		{day: 21, length: 21, want: PhaseLate},
		{day: 22, length: 21, want: PhaseOverrun},
		{day: 12, length: 10, want: PhaseOverrun},
		{day: 10, length: 14, want: PhaseRecovery},
	}

	for _, testCase := range cases {
		if got := CyclePhase(testCase.day, testCase.length); got != testCase.want {
			t.Fatalf("day %d length %d: expected %s, got %s", testCase.day, testCase.length, testCase.want, got)
		}
	}
}

func TestStatusForScores(t *testing.T) {
	t.Parallel()

	intPtr := func(value int) *int { return &value }

	status, emoji := StatusForScores(intPtr(1), intPtr(1), false)
	if status != DayStatusGood || emoji != "😊" {
		t.Fatalf("expected good day, got %s %s", status, emoji)
	}

	status, _ = StatusForScores(intPtr(2), intPtr(2), false)
	if status != DayStatusOkay {
		t.Fatalf("expected okay day, got %s", status)
	}

	status, _ = StatusForScores(intPtr(3), intPtr(3), false)
	if status != DayStatusTough {
		t.Fatalf("expected tough day, got %s", status)
	}

	// A flagged tough day wins regardless of the scores.
	status, _ = StatusForScores(intPtr(0), intPtr(0), true)
	if status != DayStatusTough {
		t.Fatalf("expected flagged tough day, got %s", status)
	}

	if got := StatusEmoji(nil, nil); got != "📝" {
		t.Fatalf("expected placeholder emoji for unrecorded day, got %s", got)
	}
	if got := StatusEmoji(intPtr(0), intPtr(0)); got != "😊" {
		t.Fatalf("expected smiling emoji for recorded zeros, got %s", got)
	}
	if got := StatusEmoji(intPtr(3), nil); got != "😔" {
		t.Fatalf("expected sad emoji for high energy burden, got %s", got)
	}
}
