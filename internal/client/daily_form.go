package client

import (
	"context"
	"errors"

	"github.com/tbowo/careline/internal/models"
	"github.com/tbowo/careline/internal/services"
)

// FormState is the edit-session position for one date's record. Failed
// submits go back to Editing with all entered values retained.
type FormState string

const (
	StateUninitialized       FormState = "uninitialized"
	StateLoadedEmpty         FormState = "loaded_empty"
	StateLoadedExisting      FormState = "loaded_existing"
	StatePendingConfirmation FormState = "pending_confirmation"
	StateEditing             FormState = "editing"
	StateSubmitting          FormState = "submitting"
	StateSaved               FormState = "saved"
)

var (
	ErrFormNotLoaded    = errors.New("form not loaded")
	ErrFormNotEditable  = errors.New("form not editable")
	ErrNotConfirmed     = errors.New("confirmation pending")
	ErrNothingToSave    = errors.New("nothing to save")
	ErrValueOutOfRange  = errors.New("value out of range")
	ErrSubmitInProgress = errors.New("submit in progress")
)

// DailyLogForm is the mutable edit session for one calendar day. Optional
// questions start at an unset sentinel that is distinct from a recorded
// zero; unset fields are submitted as explicit nulls so every save is a
// full overwrite of the day's optional fields.
type DailyLogForm struct {
	api    *APIClient
	signal *RefreshSignal
	role   models.Role

	state    FormState
	loaded   bool
	fetchTag int

	energy       *int
	nausea       *int
	appetite     *int
	sleepQuality *int
	diarrhea     *int
	stoolCount   *int
	fever        bool
	tempC        *float64
	numbness     bool
	mouthSore    bool
	toughDay     bool
	note         string
}

func NewDailyLogForm(api *APIClient, signal *RefreshSignal, role models.Role) *DailyLogForm {
	return &DailyLogForm{
		api:    api,
		signal: signal,
		role:   role,
		state:  StateUninitialized,
	}
}

func (form *DailyLogForm) State() FormState {
	return form.state
}

// Activate loads today's record into the form. A clean refresh signal plus a
// prior snapshot keeps the current state verbatim, including a pending
// confirmation; a dirty signal or a first load refetches and reseeds.
func (form *DailyLogForm) Activate(ctx context.Context) error {
	if form.state == StateSubmitting {
		return ErrSubmitInProgress
	}
	if !form.signal.ShouldRefetch(form.loaded) {
		return nil
	}

	form.fetchTag++
	tag := form.fetchTag

	record, err := form.api.TodayLog(ctx)
	if err != nil {
		return err
	}
	stool, err := form.api.TodayStoolSummary(ctx)
	if err != nil {
		return err
	}

	// A newer activation superseded this fetch; drop the response.
	if tag != form.fetchTag {
		return nil
	}

	form.reset()
	if record == nil {
		form.state = StateLoadedEmpty
	} else {
		form.prefill(*record, stool.Count)
		form.state = StateLoadedExisting
	}
	form.loaded = true
	return nil
}

// BeginEditing opens the form. Caregivers land in a confirmation gate and
// must call Confirm before the fields unlock; the patient edits directly.
func (form *DailyLogForm) BeginEditing() error {
	if form.state != StateLoadedEmpty && form.state != StateLoadedExisting {
		return ErrFormNotLoaded
	}
	if form.role.RequiresConfirmation() {
		form.state = StatePendingConfirmation
		return nil
	}
	form.state = StateEditing
	return nil
}

// Confirm is the caregiver's explicit "I will fill it in".
func (form *DailyLogForm) Confirm() error {
	if form.state != StatePendingConfirmation {
		return ErrNotConfirmed
	}
	form.state = StateEditing
	return nil
}

func (form *DailyLogForm) SetEnergy(value int) error {
	return form.setOrdinal(&form.energy, value, models.MaxEnergy)
}

func (form *DailyLogForm) SetNausea(value int) error {
	return form.setOrdinal(&form.nausea, value, models.MaxNausea)
}

func (form *DailyLogForm) SetAppetite(value int) error {
	return form.setOrdinal(&form.appetite, value, models.MaxAppetite)
}

func (form *DailyLogForm) SetSleepQuality(value int) error {
	return form.setOrdinal(&form.sleepQuality, value, models.MaxSleepQuality)
}

func (form *DailyLogForm) SetDiarrhea(value int) error {
	return form.setOrdinal(&form.diarrhea, value, models.MaxDiarrhea)
}

func (form *DailyLogForm) SetStoolCount(value int) error {
	if form.state != StateEditing {
		return ErrFormNotEditable
	}
	if value < 0 {
		return ErrValueOutOfRange
	}
	form.stoolCount = &value
	return nil
}

func (form *DailyLogForm) SetFever(fever bool) error {
	if form.state != StateEditing {
		return ErrFormNotEditable
	}
	form.fever = fever
	return nil
}

func (form *DailyLogForm) SetTempC(value float64) error {
	if form.state != StateEditing {
		return ErrFormNotEditable
	}
	form.tempC = &value
	return nil
}

func (form *DailyLogForm) SetNumbness(value bool) error {
	return form.setBool(&form.numbness, value)
}

func (form *DailyLogForm) SetMouthSore(value bool) error {
	return form.setBool(&form.mouthSore, value)
}

func (form *DailyLogForm) SetToughDay(value bool) error {
	return form.setBool(&form.toughDay, value)
}

func (form *DailyLogForm) SetNote(note string) error {
	if form.state != StateEditing {
		return ErrFormNotEditable
	}
	form.note = note
	return nil
}

// Submit sends the entire field set upstream. Unset fields go out as
// explicit nulls and fever=false forces temp_c to null regardless of what
// was typed. A save with zero informative fields is rejected locally unless
// the day is flagged tough.
func (form *DailyLogForm) Submit(ctx context.Context, date string) (DayRecord, error) {
	if form.state != StateEditing {
		return DayRecord{}, ErrFormNotEditable
	}
	if !form.informative() && !form.toughDay {
		return DayRecord{}, ErrNothingToSave
	}

	form.state = StateSubmitting
	record, err := form.api.UpsertLog(ctx, date, form.payload())
	if err != nil {
		form.state = StateEditing
		return DayRecord{}, err
	}

	form.state = StateSaved
	form.signal.Mark()
	return record, nil
}

// Payload exposes the full field set a submit would send.
func (form *DailyLogForm) Payload() services.DailyLogInput {
	return form.payload()
}

func (form *DailyLogForm) payload() services.DailyLogInput {
	input := services.DailyLogInput{
		Energy:       optionalFromPtr(form.energy),
		Nausea:       optionalFromPtr(form.nausea),
		Appetite:     optionalFromPtr(form.appetite),
		SleepQuality: optionalFromPtr(form.sleepQuality),
		Diarrhea:     optionalFromPtr(form.diarrhea),
		StoolCount:   optionalFromPtr(form.stoolCount),
		Fever:        services.Some(form.fever),
		TempC:        optionalFromPtr(form.tempC),
		Numbness:     services.Some(form.numbness),
		MouthSore:    services.Some(form.mouthSore),
		IsToughDay:   services.Some(form.toughDay),
		Note:         services.Some(form.note),
	}
	if !form.fever {
		input.TempC = services.Null[float64]()
	}
	return input
}

// prefill seeds the edit fields from an existing record. Only non-null
// record fields are copied; everything else stays unset. The stool count is
// a one-time two-source merge: the record's explicit value wins, otherwise
// the day's event count seeds it.
func (form *DailyLogForm) prefill(record DayRecord, eventCount int) {
	form.energy = copyIntPtr(record.Energy)
	form.nausea = copyIntPtr(record.Nausea)
	form.appetite = copyIntPtr(record.Appetite)
	form.sleepQuality = copyIntPtr(record.SleepQuality)
	form.diarrhea = copyIntPtr(record.Diarrhea)
	form.fever = record.Fever
	if record.TempC != nil {
		value := *record.TempC
		form.tempC = &value
	}
	form.numbness = record.Numbness
	form.mouthSore = record.MouthSore
	form.toughDay = record.IsToughDay
	form.note = record.Note

	switch {
	case record.StoolCount != nil:
		form.stoolCount = copyIntPtr(record.StoolCount)
	case eventCount > 0:
		form.stoolCount = &eventCount
	}
}

func (form *DailyLogForm) reset() {
	form.energy = nil
	form.nausea = nil
	form.appetite = nil
	form.sleepQuality = nil
	form.diarrhea = nil
	form.stoolCount = nil
	form.fever = false
	form.tempC = nil
	form.numbness = false
	form.mouthSore = false
	form.toughDay = false
	form.note = ""
}

func (form *DailyLogForm) informative() bool {
	return form.energy != nil ||
		form.nausea != nil ||
		form.appetite != nil ||
		form.sleepQuality != nil ||
		form.diarrhea != nil ||
		form.stoolCount != nil ||
		form.fever ||
		form.tempC != nil ||
		form.numbness ||
		form.mouthSore ||
		form.note != ""
}

func (form *DailyLogForm) setOrdinal(target **int, value int, max int) error {
	if form.state != StateEditing {
		return ErrFormNotEditable
	}
	if value < 0 || value > max {
		return ErrValueOutOfRange
	}
	*target = &value
	return nil
}

func (form *DailyLogForm) setBool(target *bool, value bool) error {
	if form.state != StateEditing {
		return ErrFormNotEditable
	}
	*target = value
	return nil
}

func optionalFromPtr[T any](value *T) services.Optional[T] {
	if value == nil {
		return services.Null[T]()
	}
	return services.Some(*value)
}

func copyIntPtr(value *int) *int {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
