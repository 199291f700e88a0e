package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tbowo/careline/internal/models"
	"github.com/tbowo/careline/internal/services"
)

type dailyLogView struct {
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

	StoolBloodCount    int `json:"stool_blood_count"`
	StoolMucusCount    int `json:"stool_mucus_count"`
	StoolTenesmusCount int `json:"stool_tenesmus_count"`
}

func (handler *Handler) UpsertDailyLog(c *fiber.Ctx) error {
	day, err := handler.parseDayParam(c.Params("date"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	input := services.DailyLogInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	user, _ := currentUser(c)
	membership, _ := currentMembership(c)
	entry, err := handler.dailyService.Upsert(membership.FamilyID, user.ID, day, input)
	if err != nil {
		if errors.Is(err, services.ErrDailyValueOutOfRange) {
			return apiError(c, fiber.StatusBadRequest, "value out of range")
		}
		return apiError(c, fiber.StatusInternalServerError, "save daily log failed")
	}

	return c.JSON(newDailyLogView(entry))
}

func (handler *Handler) TodayLog(c *fiber.Ctx) error {
	membership, _ := currentMembership(c)

	entry, found, err := handler.dailyService.FetchByDate(membership.FamilyID, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load daily log failed")
	}
	if !found {
		return c.JSON(nil)
	}

	return c.JSON(newDailyLogView(entry))
}

func (handler *Handler) LogRange(c *fiber.Ctx) error {
	from, err := handler.parseDayParam(c.Query("from"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := handler.parseDayParam(c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	membership, _ := currentMembership(c)
	entries, err := handler.dailyService.FetchRange(membership.FamilyID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load daily logs failed")
	}

	return c.JSON(newDailyLogViews(entries))
}

func (handler *Handler) CycleLogs(c *fiber.Ctx) error {
	cycleNo, err := c.ParamsInt("cycle_no")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle_no")
	}

	membership, _ := currentMembership(c)
	entries, err := handler.dailyService.FetchCycleLogs(membership.FamilyID, cycleNo)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load daily logs failed")
	}

	return c.JSON(newDailyLogViews(entries))
}

func newDailyLogView(entry models.DailyLog) dailyLogView {
	return dailyLogView{
		Date:         services.FormatDay(entry.Date),
		CycleNo:      entry.CycleNo,
		CycleDay:     entry.CycleDay,
		Energy:       entry.Energy,
		Nausea:       entry.Nausea,
		Appetite:     entry.Appetite,
		SleepQuality: entry.SleepQuality,
		Fever:        entry.Fever,
		TempC:        entry.TempC,
		StoolCount:   entry.StoolCount,
		Diarrhea:     entry.Diarrhea,
		Numbness:     entry.Numbness,
		MouthSore:    entry.MouthSore,
		IsToughDay:   entry.IsToughDay,
		Note:         entry.Note,

		StoolBloodCount:    entry.StoolBloodCount,
		StoolMucusCount:    entry.StoolMucusCount,
		StoolTenesmusCount: entry.StoolTenesmusCount,
	}
}

func newDailyLogViews(entries []models.DailyLog) []dailyLogView {
	views := make([]dailyLogView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, newDailyLogView(entry))
	}
	return views
}
