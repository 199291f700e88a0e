package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tbowo/careline/internal/models"
	"github.com/tbowo/careline/internal/services"
)

type cycleRequest struct {
	CycleNo    int    `json:"cycle_no"`
	StartDate  string `json:"start_date"`
	LengthDays int    `json:"length_days"`
	Regimen    string `json:"regimen"`
}

type cyclePatchRequest struct {
	StartDate  *string `json:"start_date"`
	LengthDays *int    `json:"length_days"`
	Regimen    *string `json:"regimen"`
	IsActive   *bool   `json:"is_active"`
}

type cycleView struct {
	CycleNo    int    `json:"cycle_no"`
	StartDate  string `json:"start_date"`
	LengthDays int    `json:"length_days"`
	Regimen    string `json:"regimen"`
	IsActive   bool   `json:"is_active"`
	CurrentDay *int    `json:"current_day"`
	Phase      string  `json:"phase"`
	Progress   float64 `json:"progress"`
}

func (handler *Handler) UpsertCycle(c *fiber.Ctx) error {
	request := cycleRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	startDate, err := handler.parseDayParam(request.StartDate)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid start_date")
	}
	if request.LengthDays == 0 {
		request.LengthDays = models.DefaultCycleLengthDays
	}

	membership, _ := currentMembership(c)
	cycle, err := handler.cycleService.Upsert(membership.FamilyID, services.CycleInput{
		CycleNo:    request.CycleNo,
		StartDate:  startDate,
		LengthDays: request.LengthDays,
		Regimen:    request.Regimen,
	})
	if err != nil {
		if errors.Is(err, services.ErrCycleInvalidInput) {
			return apiError(c, fiber.StatusBadRequest, "invalid cycle input")
		}
		return apiError(c, fiber.StatusInternalServerError, "save cycle failed")
	}

	return c.JSON(handler.cycleView(cycle))
}

func (handler *Handler) CurrentCycle(c *fiber.Ctx) error {
	membership, _ := currentMembership(c)

	cycle, found, err := handler.cycleService.Current(membership.FamilyID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load cycle failed")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no active cycle")
	}

	return c.JSON(handler.cycleView(cycle))
}

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	membership, _ := currentMembership(c)

	cycles, err := handler.cycleService.List(membership.FamilyID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load cycles failed")
	}

	views := make([]cycleView, 0, len(cycles))
	for _, cycle := range cycles {
		views = append(views, handler.cycleView(cycle))
	}
	return c.JSON(views)
}

func (handler *Handler) PatchCycle(c *fiber.Ctx) error {
	cycleNo, err := c.ParamsInt("cycle_no")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid cycle_no")
	}

	request := cyclePatchRequest{}
	if err := c.BodyParser(&request); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	patch := services.CyclePatch{
		LengthDays: request.LengthDays,
		Regimen:    request.Regimen,
		IsActive:   request.IsActive,
	}
	if request.StartDate != nil {
		startDate, parseErr := handler.parseDayParam(*request.StartDate)
		if parseErr != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid start_date")
		}
		patch.StartDate = &startDate
	}

	membership, _ := currentMembership(c)
	cycle, err := handler.cycleService.Patch(membership.FamilyID, cycleNo, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCycleNotFound):
			return apiError(c, fiber.StatusNotFound, "cycle not found")
		case errors.Is(err, services.ErrCycleInvalidInput):
			return apiError(c, fiber.StatusBadRequest, "invalid cycle input")
		default:
			return apiError(c, fiber.StatusInternalServerError, "save cycle failed")
		}
	}

	return c.JSON(handler.cycleView(cycle))
}

func (handler *Handler) cycleView(cycle models.Cycle) cycleView {
	now := handler.now()
	day := services.CurrentCycleDay(now, cycle.StartDate)
	return cycleView{
		CycleNo:    cycle.CycleNo,
		StartDate:  services.FormatDay(cycle.StartDate),
		LengthDays: cycle.LengthDays,
		Regimen:    cycle.Regimen,
		IsActive:   cycle.IsActive,
		CurrentDay: handler.cycleService.DisplayCurrentDay(cycle, now),
		Phase:      string(services.CyclePhase(day, cycle.LengthDays)),
		Progress:   services.CycleProgressPercent(day, cycle.LengthDays),
	}
}
