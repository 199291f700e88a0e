package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/tbowo/careline/internal/models"
	"github.com/tbowo/careline/internal/services"
)

type fakeHomeBackend struct {
	mu           sync.Mutex
	hasCycle     bool
	currentDay   int
	todayLogJSON string
	cycleFetches int
}

func (backend *fakeHomeBackend) handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/cycle/current", func(writer http.ResponseWriter, request *http.Request) {
		backend.mu.Lock()
		defer backend.mu.Unlock()
		backend.cycleFetches++
		if !backend.hasCycle {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":"no active cycle"}`))
			return
		}
		writer.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(writer).Encode(map[string]any{
			"cycle_no":    1,
			"start_date":  "2026-02-05",
			"length_days": 21,
			"is_active":   true,
			"current_day": backend.currentDay,
			"phase":       string(services.CyclePhase(backend.currentDay, 21)),
			"progress":    services.CycleProgressPercent(backend.currentDay, 21),
		})
	})

	mux.HandleFunc("/api/daily/today", func(writer http.ResponseWriter, request *http.Request) {
		backend.mu.Lock()
		defer backend.mu.Unlock()
		writer.Header().Set("Content-Type", "application/json")
		body := backend.todayLogJSON
		if body == "" {
			body = "null"
		}
		_, _ = writer.Write([]byte(body))
	})

	return mux
}

func newHomeTestView(t *testing.T, backend *fakeHomeBackend, role models.Role) (*HomeView, *RefreshSignal) {
	t.Helper()

	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)

	session := NewSession(NewMemoryStore())
	session.SetToken("test-token")
	signal := NewRefreshSignal()
	return NewHomeView(NewAPIClient(server.URL, session), signal, role), signal
}

func TestHomeViewSnapshot(t *testing.T) {
	t.Parallel()

	backend := &fakeHomeBackend{
		hasCycle:     true,
		currentDay:   5,
		todayLogJSON: `{"date":"2026-02-09","energy":1,"nausea":1}`,
	}
	view, _ := newHomeTestView(t, backend, models.RolePatient)

	snapshot, err := view.Activate(context.Background())
	if err != nil {
		t.Fatalf("activate failed: %v", err)
	}

	if !snapshot.HasCycle || snapshot.CycleNo != 1 {
		t.Fatalf("unexpected cycle snapshot: %+v", snapshot)
	}
	if snapshot.Phase != services.PhasePeakWindow {
		t.Fatalf("expected peak window on day 5, got %s", snapshot.Phase)
	}
	if snapshot.PhaseMessage != services.PhaseMessageFor(models.RolePatient, services.PhasePeakWindow) {
		t.Fatalf("expected patient wording, got %q", snapshot.PhaseMessage)
	}
	if !snapshot.HasTodayLog || snapshot.StatusEmoji != "😊" {
		t.Fatalf("unexpected today status: %+v", snapshot)
	}
}

func TestHomeViewNoCycleNotAnError(t *testing.T) {
	t.Parallel()

	backend := &fakeHomeBackend{}
	view, _ := newHomeTestView(t, backend, models.RoleCaregiver)

	snapshot, err := view.Activate(context.Background())
	if err != nil {
		t.Fatalf("expected no-cycle activation to succeed, got %v", err)
	}
	if snapshot.HasCycle || snapshot.HasTodayLog {
		t.Fatalf("expected empty snapshot, got %+v", snapshot)
	}
}

func TestHomeViewRefetchOnlyWhenMarked(t *testing.T) {
	t.Parallel()

	backend := &fakeHomeBackend{hasCycle: true, currentDay: 3}
	view, signal := newHomeTestView(t, backend, models.RolePatient)

	if _, err := view.Activate(context.Background()); err != nil {
		t.Fatalf("first activate failed: %v", err)
	}
	if _, err := view.Activate(context.Background()); err != nil {
		t.Fatalf("second activate failed: %v", err)
	}
	if backend.cycleFetches != 1 {
		t.Fatalf("expected cached second activation, got %d fetches", backend.cycleFetches)
	}

	signal.Mark()
	if _, err := view.Activate(context.Background()); err != nil {
		t.Fatalf("third activate failed: %v", err)
	}
	if backend.cycleFetches != 2 {
		t.Fatalf("expected refetch after mark, got %d fetches", backend.cycleFetches)
	}
}
