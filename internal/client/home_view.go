package client

import (
	"context"

	"github.com/tbowo/careline/internal/models"
	"github.com/tbowo/careline/internal/services"
)

// HomeSnapshot is everything the home screen renders: cycle position, a
// role-worded phase message and a status line for today's record.
type HomeSnapshot struct {
	HasCycle     bool
	CycleNo      int
	CurrentDay   *int
	LengthDays   int
	Phase        services.Phase
	PhaseMessage string
	Progress     float64

	HasTodayLog bool
	Status      services.DayStatus
	StatusEmoji string
}

// HomeView caches its last snapshot and refetches only when the refresh
// signal says server data changed, or on first load.
type HomeView struct {
	api    *APIClient
	signal *RefreshSignal
	role   models.Role

	loaded   bool
	fetchTag int
	snapshot HomeSnapshot
}

func NewHomeView(api *APIClient, signal *RefreshSignal, role models.Role) *HomeView {
	return &HomeView{api: api, signal: signal, role: role}
}

func (view *HomeView) Snapshot() HomeSnapshot {
	return view.snapshot
}

func (view *HomeView) Loaded() bool {
	return view.loaded
}

// Activate refreshes the snapshot if needed and returns it.
func (view *HomeView) Activate(ctx context.Context) (HomeSnapshot, error) {
	if !view.signal.ShouldRefetch(view.loaded) {
		return view.snapshot, nil
	}

	view.fetchTag++
	tag := view.fetchTag

	cycle, hasCycle, err := view.api.CurrentCycle(ctx)
	if err != nil {
		return HomeSnapshot{}, err
	}
	record, err := view.api.TodayLog(ctx)
	if err != nil {
		return HomeSnapshot{}, err
	}

	if tag != view.fetchTag {
		return view.snapshot, nil
	}

	snapshot := HomeSnapshot{HasCycle: hasCycle}
	if hasCycle {
		snapshot.CycleNo = cycle.CycleNo
		snapshot.CurrentDay = cycle.CurrentDay
		snapshot.LengthDays = cycle.LengthDays
		snapshot.Phase = services.Phase(cycle.Phase)
		snapshot.PhaseMessage = services.PhaseMessageFor(view.role, snapshot.Phase)
		snapshot.Progress = cycle.Progress
	}
	if record != nil {
		snapshot.HasTodayLog = true
		snapshot.Status, _ = services.StatusForScores(record.Energy, record.Nausea, record.IsToughDay)
		snapshot.StatusEmoji = services.StatusEmoji(record.Energy, record.Nausea)
	}

	view.snapshot = snapshot
	view.loaded = true
	return snapshot, nil
}
