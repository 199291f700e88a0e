package services

import (
	"errors"
	"time"

	"github.com/tbowo/careline/internal/models"
)

var (
	ErrStoolEventNotFound   = errors.New("stool event not found")
	ErrStoolEventSaveFailed = errors.New("save stool event failed")
	ErrStoolInvalidInput    = errors.New("invalid stool input")
)

type StoolRepository interface {
	Create(event *models.StoolEvent) error
	ListByFamilyAndDayRange(familyID uint, dayStart time.Time, dayEnd time.Time) ([]models.StoolEvent, error)
	ListByFamilyRange(familyID uint, fromStart time.Time, toEnd time.Time) ([]models.StoolEvent, error)
	FindByIDAndFamily(eventID uint, familyID uint) (models.StoolEvent, bool, error)
	Delete(eventID uint) error
}

type StoolDailyLogRepository interface {
	FindByFamilyAndDayRange(familyID uint, dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error)
	Save(entry *models.DailyLog) error
}

type StoolInput struct {
	Date     *time.Time
	Time     string
	Bristol  *int
	Blood    bool
	Mucus    bool
	Tenesmus bool
}

type StoolDaySummary struct {
	Date          time.Time           `json:"date"`
	Count         int                 `json:"count"`
	Events        []models.StoolEvent `json:"events"`
	BloodCount    int                 `json:"blood_count"`
	MucusCount    int                 `json:"mucus_count"`
	TenesmusCount int                 `json:"tenesmus_count"`
}

type StoolService struct {
	events   StoolRepository
	logs     StoolDailyLogRepository
	location *time.Location
}

func NewStoolService(events StoolRepository, logs StoolDailyLogRepository, location *time.Location) *StoolService {
	if location == nil {
		location = time.UTC
	}
	return &StoolService{events: events, logs: logs, location: location}
}

// Record appends one stool event and refreshes the day's aggregate on the
// daily log if one exists. Date and time default to now.
func (service *StoolService) Record(familyID uint, input StoolInput, now time.Time) (models.StoolEvent, error) {
	if input.Bristol != nil && (*input.Bristol < models.MinBristol || *input.Bristol > models.MaxBristol) {
		return models.StoolEvent{}, ErrStoolInvalidInput
	}

	eventDay := DateAtLocation(now, service.location)
	if input.Date != nil {
		eventDay = DateAtLocation(*input.Date, service.location)
	}
	eventTime := input.Time
	if eventTime == "" {
		eventTime = now.In(service.location).Format("15:04")
	}

	event := models.StoolEvent{
		FamilyID:   familyID,
		Date:       eventDay,
		Time:       eventTime,
		Bristol:    input.Bristol,
		Blood:      input.Blood,
		Mucus:      input.Mucus,
		Tenesmus:   input.Tenesmus,
		RecordedAt: now,
	}
	if err := service.events.Create(&event); err != nil {
		return models.StoolEvent{}, ErrStoolEventSaveFailed
	}

	if err := service.refreshDailySummary(familyID, eventDay); err != nil {
		return models.StoolEvent{}, err
	}
	return event, nil
}

func (service *StoolService) DaySummary(familyID uint, day time.Time) (StoolDaySummary, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	events, err := service.events.ListByFamilyAndDayRange(familyID, dayStart, dayEnd)
	if err != nil {
		return StoolDaySummary{}, err
	}
	return buildDaySummary(dayStart, events), nil
}

// RangeSummaries groups events per calendar day over an inclusive range,
// producing an entry for every day even when nothing was recorded.
func (service *StoolService) RangeSummaries(familyID uint, from time.Time, to time.Time) ([]StoolDaySummary, error) {
	fromStart, _ := DayRange(from, service.location)
	toStart, toEnd := DayRange(to, service.location)
	events, err := service.events.ListByFamilyRange(familyID, fromStart, toEnd)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]models.StoolEvent)
	for _, event := range events {
		key := FormatDay(DateAtLocation(event.Date, service.location))
		grouped[key] = append(grouped[key], event)
	}

	summaries := make([]StoolDaySummary, 0)
	for day := fromStart; !day.After(toStart); day = day.AddDate(0, 0, 1) {
		summaries = append(summaries, buildDaySummary(day, grouped[FormatDay(day)]))
	}
	return summaries, nil
}

// Delete removes a misrecorded event and re-syncs the day's aggregate.
func (service *StoolService) Delete(familyID uint, eventID uint) error {
	event, found, err := service.events.FindByIDAndFamily(eventID, familyID)
	if err != nil {
		return err
	}
	if !found {
		return ErrStoolEventNotFound
	}

	if err := service.events.Delete(event.ID); err != nil {
		return ErrStoolEventSaveFailed
	}
	return service.refreshDailySummary(familyID, DateAtLocation(event.Date, service.location))
}

func (service *StoolService) refreshDailySummary(familyID uint, day time.Time) error {
	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.logs.FindByFamilyAndDayRange(familyID, dayStart, dayEnd)
	if err != nil || !found {
		return err
	}

	events, err := service.events.ListByFamilyAndDayRange(familyID, dayStart, dayEnd)
	if err != nil {
		return err
	}
	ApplyStoolSummary(&entry, events)
	if err := service.logs.Save(&entry); err != nil {
		return ErrStoolEventSaveFailed
	}
	return nil
}

func buildDaySummary(day time.Time, events []models.StoolEvent) StoolDaySummary {
	summary := StoolDaySummary{
		Date:   day,
		Count:  len(events),
		Events: events,
	}
	if summary.Events == nil {
		summary.Events = []models.StoolEvent{}
	}
	for _, event := range events {
		if event.Blood {
			summary.BloodCount++
		}
		if event.Mucus {
			summary.MucusCount++
		}
		if event.Tenesmus {
			summary.TenesmusCount++
		}
	}
	return summary
}
