package services

import (
	"errors"
	"time"

	"github.com/tbowo/careline/internal/models"
)

var (
	ErrDailyLogLoadFailed   = errors.New("load daily log failed")
	ErrDailyLogCreateFailed = errors.New("create daily log failed")
	ErrDailyLogUpdateFailed = errors.New("update daily log failed")
)

type DailyLogRepository interface {
	FindByFamilyAndDayRange(familyID uint, dayStart time.Time, dayEnd time.Time) (models.DailyLog, bool, error)
	ListByFamilyRange(familyID uint, fromStart time.Time, toEnd time.Time) ([]models.DailyLog, error)
	ListByFamilyCycleNo(familyID uint, cycleNo int) ([]models.DailyLog, error)
	Create(entry *models.DailyLog) error
	Save(entry *models.DailyLog) error
}

type ActiveCycleRepository interface {
	FindActiveByFamily(familyID uint) (models.Cycle, bool, error)
}

type StoolEventReader interface {
	ListByFamilyAndDayRange(familyID uint, dayStart time.Time, dayEnd time.Time) ([]models.StoolEvent, error)
}

type DailyService struct {
	logs     DailyLogRepository
	cycles   ActiveCycleRepository
	stool    StoolEventReader
	location *time.Location
}

func NewDailyService(logs DailyLogRepository, cycles ActiveCycleRepository, stool StoolEventReader, location *time.Location) *DailyService {
	if location == nil {
		location = time.UTC
	}
	return &DailyService{
		logs:     logs,
		cycles:   cycles,
		stool:    stool,
		location: location,
	}
}

// Upsert creates or overwrites the family's record for the given day. The
// update contract is presence-sensitive: omitted fields keep their stored
// value, explicit nulls clear, values overwrite. Tough-day saves borrow
// yesterday's answers for everything the abbreviated form left blank.
func (service *DailyService) Upsert(familyID uint, recordedBy uint, day time.Time, input DailyLogInput) (models.DailyLog, error) {
	if err := input.Validate(); err != nil {
		return models.DailyLog{}, err
	}

	dayStart, dayEnd := DayRange(day, service.location)
	entry, found, err := service.logs.FindByFamilyAndDayRange(familyID, dayStart, dayEnd)
	if err != nil {
		return models.DailyLog{}, ErrDailyLogLoadFailed
	}
	if !found {
		entry = models.DailyLog{FamilyID: familyID, Date: dayStart}
	}

	if input.toughDayRequested() {
		input = service.backfillToughDay(familyID, dayStart, input)
	}

	applyOrdinal(&entry.Energy, input.Energy)
	applyOrdinal(&entry.Nausea, input.Nausea)
	applyOrdinal(&entry.Appetite, input.Appetite)
	applyOrdinal(&entry.SleepQuality, input.SleepQuality)
	applyOrdinal(&entry.Diarrhea, input.Diarrhea)
	applyOrdinal(&entry.StoolCount, input.StoolCount)
	applyBool(&entry.Fever, input.Fever)
	applyBool(&entry.Numbness, input.Numbness)
	applyBool(&entry.MouthSore, input.MouthSore)
	applyBool(&entry.IsToughDay, input.IsToughDay)

	if input.TempC.Present {
		entry.TempC = input.TempC.Ptr()
	}
	// A fever that is reported gone invalidates any temperature reading.
	if !entry.Fever {
		entry.TempC = nil
	}

	if input.Note.Present {
		if input.Note.Valid {
			entry.Note = input.Note.Value
		} else {
			entry.Note = ""
		}
	}

	service.stampCycleInfo(familyID, dayStart, &entry)
	entry.RecordedBy = &recordedBy

	if err := service.syncStoolSummary(familyID, dayStart, dayEnd, &entry); err != nil {
		return models.DailyLog{}, ErrDailyLogLoadFailed
	}

	if found {
		if err := service.logs.Save(&entry); err != nil {
			return models.DailyLog{}, ErrDailyLogUpdateFailed
		}
		return entry, nil
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.DailyLog{}, ErrDailyLogCreateFailed
	}
	return entry, nil
}

func (service *DailyService) FetchByDate(familyID uint, day time.Time) (models.DailyLog, bool, error) {
	dayStart, dayEnd := DayRange(day, service.location)
	return service.logs.FindByFamilyAndDayRange(familyID, dayStart, dayEnd)
}

func (service *DailyService) FetchRange(familyID uint, from time.Time, to time.Time) ([]models.DailyLog, error) {
	fromStart, _ := DayRange(from, service.location)
	_, toEnd := DayRange(to, service.location)
	return service.logs.ListByFamilyRange(familyID, fromStart, toEnd)
}

func (service *DailyService) FetchCycleLogs(familyID uint, cycleNo int) ([]models.DailyLog, error) {
	return service.logs.ListByFamilyCycleNo(familyID, cycleNo)
}

// backfillToughDay copies yesterday's answers into fields the abbreviated
// single-question flow did not provide, so a tough day still produces a
// usable trend point.
func (service *DailyService) backfillToughDay(familyID uint, dayStart time.Time, input DailyLogInput) DailyLogInput {
	yesterdayStart, yesterdayEnd := DayRange(dayStart.AddDate(0, 0, -1), service.location)
	yesterday, found, err := service.logs.FindByFamilyAndDayRange(familyID, yesterdayStart, yesterdayEnd)
	if err != nil || !found {
		return input
	}

	borrowOrdinal := func(field Optional[int], stored *int) Optional[int] {
		if field.Present && field.Valid {
			return field
		}
		if stored == nil {
			return field
		}
		return Some(*stored)
	}

	input.Energy = borrowOrdinal(input.Energy, yesterday.Energy)
	input.Nausea = borrowOrdinal(input.Nausea, yesterday.Nausea)
	input.Appetite = borrowOrdinal(input.Appetite, yesterday.Appetite)
	input.SleepQuality = borrowOrdinal(input.SleepQuality, yesterday.SleepQuality)
	input.Diarrhea = borrowOrdinal(input.Diarrhea, yesterday.Diarrhea)
	input.StoolCount = borrowOrdinal(input.StoolCount, yesterday.StoolCount)

	if !input.Numbness.Present || !input.Numbness.Valid {
		input.Numbness = Some(yesterday.Numbness)
	}
	if !input.MouthSore.Present || !input.MouthSore.Valid {
		input.MouthSore = Some(yesterday.MouthSore)
	}

	return input
}

func (service *DailyService) stampCycleInfo(familyID uint, dayStart time.Time, entry *models.DailyLog) {
	cycle, found, err := service.cycles.FindActiveByFamily(familyID)
	if err != nil || !found {
		return
	}
	cycleNo := cycle.CycleNo
	entry.CycleNo = &cycleNo

	day := CurrentCycleDay(dayStart, DateAtLocation(cycle.StartDate, service.location))
	if day < 1 {
		entry.CycleDay = nil
		return
	}
	entry.CycleDay = &day
}

func (service *DailyService) syncStoolSummary(familyID uint, dayStart time.Time, dayEnd time.Time, entry *models.DailyLog) error {
	events, err := service.stool.ListByFamilyAndDayRange(familyID, dayStart, dayEnd)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}
	ApplyStoolSummary(entry, events)
	return nil
}

// ApplyStoolSummary overwrites the entry's stool aggregates from the day's
// recorded events. Events win over a manually entered count once they exist.
func ApplyStoolSummary(entry *models.DailyLog, events []models.StoolEvent) {
	count := len(events)
	entry.StoolCount = &count
	entry.StoolBloodCount = 0
	entry.StoolMucusCount = 0
	entry.StoolTenesmusCount = 0
	for _, event := range events {
		if event.Blood {
			entry.StoolBloodCount++
		}
		if event.Mucus {
			entry.StoolMucusCount++
		}
		if event.Tenesmus {
			entry.StoolTenesmusCount++
		}
	}
}
