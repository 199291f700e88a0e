package api

import (
	"net/http"
	"testing"
	"time"
)

type stoolDayTestView struct {
	Date          string `json:"date"`
	Count         int    `json:"count"`
	BloodCount    int    `json:"blood_count"`
	MucusCount    int    `json:"mucus_count"`
	TenesmusCount int    `json:"tenesmus_count"`
	Events        []struct {
		ID      uint `json:"id"`
		Bristol *int `json:"bristol"`
	} `json:"events"`
}

func TestStoolRecordAndTodaySummary(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	token := registerTestUser(t, app, "13833330001")
	createTestFamily(t, app, token, "patient")

	response := doJSON(t, app, http.MethodPost, "/api/stool", token, map[string]any{
		"bristol": 6,
		"blood":   true,
	})
	expectStatus(t, response, http.StatusOK)

	response = doJSON(t, app, http.MethodPost, "/api/stool", token, map[string]any{
		"bristol":  4,
		"tenesmus": true,
	})
	expectStatus(t, response, http.StatusOK)

	response = doJSON(t, app, http.MethodGet, "/api/stool/today", token, nil)
	expectStatus(t, response, http.StatusOK)

	summary := stoolDayTestView{}
	decodeJSON(t, response, &summary)
	if summary.Count != 2 || summary.BloodCount != 1 || summary.TenesmusCount != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(summary.Events) != 2 {
		t.Fatalf("expected two events, got %d", len(summary.Events))
	}
}

func TestStoolEventsSyncDailyLogAggregates(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	token := registerTestUser(t, app, "13833330002")
	createTestFamily(t, app, token, "patient")

	today := time.Now().UTC().Format("2006-01-02")
	response := doJSON(t, app, http.MethodPut, "/api/daily/"+today, token, map[string]any{
		"energy":      1,
		"stool_count": 9,
	})
	expectStatus(t, response, http.StatusOK)

	response = doJSON(t, app, http.MethodPost, "/api/stool", token, map[string]any{
		"blood": true,
	})
	expectStatus(t, response, http.StatusOK)

	response = doJSON(t, app, http.MethodGet, "/api/daily/today", token, nil)
	expectStatus(t, response, http.StatusOK)

	log := struct {
		StoolCount      *int `json:"stool_count"`
		StoolBloodCount int  `json:"stool_blood_count"`
	}{}
	decodeJSON(t, response, &log)
	if log.StoolCount == nil || *log.StoolCount != 1 {
		t.Fatalf("expected event count to overwrite manual count, got %v", log.StoolCount)
	}
	if log.StoolBloodCount != 1 {
		t.Fatalf("expected blood aggregate 1, got %d", log.StoolBloodCount)
	}
}

func TestStoolBristolValidation(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	token := registerTestUser(t, app, "13833330003")
	createTestFamily(t, app, token, "patient")

	response := doJSON(t, app, http.MethodPost, "/api/stool", token, map[string]any{
		"bristol": 8,
	})
	expectStatus(t, response, http.StatusBadRequest)

	response = doJSON(t, app, http.MethodPost, "/api/stool", token, map[string]any{
		"bristol": 0,
	})
	expectStatus(t, response, http.StatusBadRequest)
}

func TestStoolRangeIncludesEmptyDays(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	token := registerTestUser(t, app, "13833330004")
	createTestFamily(t, app, token, "patient")

	response := doJSON(t, app, http.MethodPost, "/api/stool", token, map[string]any{
		"date": "2026-02-11",
	})
	expectStatus(t, response, http.StatusOK)

	response = doJSON(t, app, http.MethodGet, "/api/stool/range?from=2026-02-10&to=2026-02-12", token, nil)
	expectStatus(t, response, http.StatusOK)

	summaries := []stoolDayTestView{}
	decodeJSON(t, response, &summaries)
	if len(summaries) != 3 {
		t.Fatalf("expected three day buckets, got %d", len(summaries))
	}
	if summaries[0].Count != 0 || summaries[1].Count != 1 || summaries[2].Count != 0 {
		t.Fatalf("unexpected counts: %v %v %v", summaries[0].Count, summaries[1].Count, summaries[2].Count)
	}
}

func TestStoolDeleteResyncsDay(t *testing.T) {
	t.Parallel()

	app := newTestApp(t)
	token := registerTestUser(t, app, "13833330005")
	createTestFamily(t, app, token, "patient")

	response := doJSON(t, app, http.MethodPost, "/api/stool", token, map[string]any{
		"blood": true,
	})
	expectStatus(t, response, http.StatusOK)

	created := struct {
		ID uint `json:"id"`
	}{}
	decodeJSON(t, response, &created)

	today := time.Now().UTC().Format("2006-01-02")
	response = doJSON(t, app, http.MethodPut, "/api/daily/"+today, token, map[string]any{
		"energy": 1,
	})
	expectStatus(t, response, http.StatusOK)

	response = doJSON(t, app, http.MethodDelete, "/api/stool/"+itoa(created.ID), token, nil)
	expectStatus(t, response, http.StatusOK)

	response = doJSON(t, app, http.MethodGet, "/api/daily/today", token, nil)
	expectStatus(t, response, http.StatusOK)

	log := struct {
		StoolCount      *int `json:"stool_count"`
		StoolBloodCount int  `json:"stool_blood_count"`
	}{}
	decodeJSON(t, response, &log)
	if log.StoolCount == nil || *log.StoolCount != 0 {
		t.Fatalf("expected count re-synced to 0, got %v", log.StoolCount)
	}
	if log.StoolBloodCount != 0 {
		t.Fatalf("expected blood aggregate cleared, got %d", log.StoolBloodCount)
	}

	response = doJSON(t, app, http.MethodDelete, "/api/stool/"+itoa(created.ID), token, nil)
	expectStatus(t, response, http.StatusNotFound)
}
