package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tbowo/careline/internal/services"
)

var (
	// ErrAuthExpired is the one failure that escapes local handling: the
	// session is cleared and the caller must return to the login entry point.
	ErrAuthExpired = errors.New("session expired")

	errNotFound = errors.New("not found")
)

// CycleSnapshot mirrors the cycle JSON the service returns.
type CycleSnapshot struct {
	CycleNo    int     `json:"cycle_no"`
	StartDate  string  `json:"start_date"`
	LengthDays int     `json:"length_days"`
	Regimen    string  `json:"regimen"`
	IsActive   bool    `json:"is_active"`
	CurrentDay *int    `json:"current_day"`
	Phase      string  `json:"phase"`
	Progress   float64 `json:"progress"`
}

// DayRecord mirrors the daily-log JSON. Optional ordinals stay pointers so
// an unanswered question never reads as zero.
type DayRecord struct {
	Date         string   `json:"date"`
	CycleNo      *int     `json:"cycle_no"`
	CycleDay     *int     `json:"cycle_day"`
	Energy       *int     `json:"energy"`
	Nausea       *int     `json:"nausea"`
	Appetite     *int     `json:"appetite"`
	SleepQuality *int     `json:"sleep_quality"`
	Fever        bool     `json:"fever"`
	TempC        *float64 `json:"temp_c"`
	StoolCount   *int     `json:"stool_count"`
	Diarrhea     *int     `json:"diarrhea"`
	Numbness     bool     `json:"numbness"`
	MouthSore    bool     `json:"mouth_sore"`
	IsToughDay   bool     `json:"is_tough_day"`
	Note         string   `json:"note"`
}

type CyclePayload struct {
	CycleNo    int    `json:"cycle_no"`
	StartDate  string `json:"start_date"`
	LengthDays int    `json:"length_days"`
	Regimen    string `json:"regimen"`
}

type StoolPayload struct {
	Date     string `json:"date,omitempty"`
	Time     string `json:"time,omitempty"`
	Bristol  *int   `json:"bristol,omitempty"`
	Blood    bool   `json:"blood"`
	Mucus    bool   `json:"mucus"`
	Tenesmus bool   `json:"tenesmus"`
}

type StoolEventRecord struct {
	ID       uint   `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Bristol  *int   `json:"bristol"`
	Blood    bool   `json:"blood"`
	Mucus    bool   `json:"mucus"`
	Tenesmus bool   `json:"tenesmus"`
}

type StoolDaySummary struct {
	Date          string             `json:"date"`
	Count         int                `json:"count"`
	Events        []StoolEventRecord `json:"events"`
	BloodCount    int                `json:"blood_count"`
	MucusCount    int                `json:"mucus_count"`
	TenesmusCount int                `json:"tenesmus_count"`
}

type VisitSummary struct {
	Cycle  CycleSnapshot         `json:"cycle"`
	Trend  []services.TrendPoint `json:"trend"`
	Stats  services.KeyStats     `json:"stats"`
	Digest string                `json:"digest"`
	Labels services.RoleLabels   `json:"labels"`
}

// APIClient is the typed REST surface the client core talks to. Not-found
// responses are reported as absence, never as failure.
type APIClient struct {
	baseURL string
	http    *http.Client
	session *Session
}

func NewAPIClient(baseURL string, session *Session) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		session: session,
	}
}

func (client *APIClient) CurrentCycle(ctx context.Context) (CycleSnapshot, bool, error) {
	cycle := CycleSnapshot{}
	err := client.doJSON(ctx, http.MethodGet, "/api/cycle/current", nil, &cycle)
	if errors.Is(err, errNotFound) {
		return CycleSnapshot{}, false, nil
	}
	if err != nil {
		return CycleSnapshot{}, false, err
	}
	return cycle, true, nil
}

func (client *APIClient) UpsertCycle(ctx context.Context, payload CyclePayload) (CycleSnapshot, error) {
	cycle := CycleSnapshot{}
	err := client.doJSON(ctx, http.MethodPost, "/api/cycle", payload, &cycle)
	return cycle, err
}

func (client *APIClient) ListCycles(ctx context.Context) ([]CycleSnapshot, error) {
	cycles := []CycleSnapshot{}
	err := client.doJSON(ctx, http.MethodGet, "/api/cycle/list", nil, &cycles)
	return cycles, err
}

// TodayLog returns nil when no record exists for today.
func (client *APIClient) TodayLog(ctx context.Context) (*DayRecord, error) {
	var record *DayRecord
	if err := client.doJSON(ctx, http.MethodGet, "/api/daily/today", nil, &record); err != nil {
		return nil, err
	}
	return record, nil
}

func (client *APIClient) UpsertLog(ctx context.Context, date string, payload services.DailyLogInput) (DayRecord, error) {
	record := DayRecord{}
	err := client.doJSON(ctx, http.MethodPut, "/api/daily/"+date, payload, &record)
	return record, err
}

func (client *APIClient) CycleLogs(ctx context.Context, cycleNo int) ([]DayRecord, error) {
	records := []DayRecord{}
	err := client.doJSON(ctx, http.MethodGet, fmt.Sprintf("/api/daily/cycle/%d", cycleNo), nil, &records)
	return records, err
}

func (client *APIClient) CreateStoolEvent(ctx context.Context, payload StoolPayload) (StoolEventRecord, error) {
	event := StoolEventRecord{}
	err := client.doJSON(ctx, http.MethodPost, "/api/stool", payload, &event)
	return event, err
}

func (client *APIClient) TodayStoolSummary(ctx context.Context) (StoolDaySummary, error) {
	summary := StoolDaySummary{}
	err := client.doJSON(ctx, http.MethodGet, "/api/stool/today", nil, &summary)
	return summary, err
}

func (client *APIClient) CalendarMonth(ctx context.Context, year int, month int) (services.CalendarMonth, error) {
	calendar := services.CalendarMonth{}
	path := fmt.Sprintf("/api/summary/calendar?year=%d&month=%d", year, month)
	err := client.doJSON(ctx, http.MethodGet, path, nil, &calendar)
	return calendar, err
}

func (client *APIClient) Summary(ctx context.Context) (VisitSummary, error) {
	summary := VisitSummary{}
	err := client.doJSON(ctx, http.MethodGet, "/api/summary", nil, &summary)
	return summary, err
}

func (client *APIClient) doJSON(ctx context.Context, method string, path string, body any, out any) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	if token := client.session.Token(); token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := client.http.Do(request)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusUnauthorized:
		client.session.Clear()
		return ErrAuthExpired
	case response.StatusCode == http.StatusNotFound:
		return errNotFound
	case response.StatusCode >= 400:
		failure := struct {
			Error string `json:"error"`
		}{}
		_ = json.NewDecoder(response.Body).Decode(&failure)
		if failure.Error == "" {
			failure.Error = response.Status
		}
		return fmt.Errorf("%s %s: %s", method, path, failure.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(response.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
