package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tbowo/careline/internal/models"
	"github.com/tbowo/careline/internal/services"
)

type stoolRequest struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	Bristol  *int   `json:"bristol"`
	Blood    bool   `json:"blood"`
	Mucus    bool   `json:"mucus"`
	Tenesmus bool   `json:"tenesmus"`
}

type stoolEventView struct {
	ID       uint   `json:"id"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Bristol  *int   `json:"bristol"`
	Blood    bool   `json:"blood"`
	Mucus    bool   `json:"mucus"`
	Tenesmus bool   `json:"tenesmus"`
}

type stoolDayView struct {
	Date          string           `json:"date"`
	Count         int              `json:"count"`
	Events        []stoolEventView `json:"events"`
	BloodCount    int              `json:"blood_count"`
	MucusCount    int              `json:"mucus_count"`
	TenesmusCount int              `json:"tenesmus_count"`
}

func (handler *Handler) CreateStoolEvent(c *fiber.Ctx) error {
	request := stoolRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	input := services.StoolInput{
		Time:     request.Time,
		Bristol:  request.Bristol,
		Blood:    request.Blood,
		Mucus:    request.Mucus,
		Tenesmus: request.Tenesmus,
	}
	if request.Date != "" {
		day, err := handler.parseDayParam(request.Date)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		input.Date = &day
	}

	membership, _ := currentMembership(c)
	event, err := handler.stoolService.Record(membership.FamilyID, input, handler.now())
	if err != nil {
		if errors.Is(err, services.ErrStoolInvalidInput) {
			return apiError(c, fiber.StatusBadRequest, "invalid stool input")
		}
		return apiError(c, fiber.StatusInternalServerError, "save stool event failed")
	}

	return c.JSON(newStoolEventView(event))
}

func (handler *Handler) TodayStool(c *fiber.Ctx) error {
	membership, _ := currentMembership(c)

	summary, err := handler.stoolService.DaySummary(membership.FamilyID, handler.today())
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load stool events failed")
	}

	return c.JSON(newStoolDayView(summary))
}

func (handler *Handler) StoolRange(c *fiber.Ctx) error {
	from, err := handler.parseDayParam(c.Query("from"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := handler.parseDayParam(c.Query("to"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	membership, _ := currentMembership(c)
	summaries, err := handler.stoolService.RangeSummaries(membership.FamilyID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load stool events failed")
	}

	views := make([]stoolDayView, 0, len(summaries))
	for _, summary := range summaries {
		views = append(views, newStoolDayView(summary))
	}
	return c.JSON(views)
}

func (handler *Handler) DeleteStoolEvent(c *fiber.Ctx) error {
	eventID, err := c.ParamsInt("id")
	if err != nil || eventID < 1 {
		return apiError(c, fiber.StatusBadRequest, "invalid event id")
	}

	membership, _ := currentMembership(c)
	if err := handler.stoolService.Delete(membership.FamilyID, uint(eventID)); err != nil {
		if errors.Is(err, services.ErrStoolEventNotFound) {
			return apiError(c, fiber.StatusNotFound, "stool event not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "delete stool event failed")
	}

	return c.JSON(fiber.Map{"deleted": true})
}

func newStoolEventView(event models.StoolEvent) stoolEventView {
	return stoolEventView{
		ID:       event.ID,
		Date:     services.FormatDay(event.Date),
		Time:     event.Time,
		Bristol:  event.Bristol,
		Blood:    event.Blood,
		Mucus:    event.Mucus,
		Tenesmus: event.Tenesmus,
	}
}

func newStoolDayView(summary services.StoolDaySummary) stoolDayView {
	view := stoolDayView{
		Date:          services.FormatDay(summary.Date),
		Count:         summary.Count,
		Events:        make([]stoolEventView, 0, len(summary.Events)),
		BloodCount:    summary.BloodCount,
		MucusCount:    summary.MucusCount,
		TenesmusCount: summary.TenesmusCount,
	}
	for _, event := range summary.Events {
		view.Events = append(view.Events, newStoolEventView(event))
	}
	return view
}
