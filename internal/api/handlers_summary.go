package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tbowo/careline/internal/models"
	"github.com/tbowo/careline/internal/services"
)

type summaryResponse struct {
	Cycle  cycleView             `json:"cycle"`
	Trend  []services.TrendPoint `json:"trend"`
	Stats  services.KeyStats     `json:"stats"`
	Digest string                `json:"digest"`
	Labels services.RoleLabels   `json:"labels"`
}

func (handler *Handler) Summary(c *fiber.Ctx) error {
	membership, _ := currentMembership(c)

	cycle, found, err := handler.resolveSummaryCycle(membership.FamilyID, c.QueryInt("cycle_no", 0))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load cycle failed")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "no active cycle")
	}

	logs, err := handler.dailyService.FetchCycleLogs(membership.FamilyID, cycle.CycleNo)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load daily logs failed")
	}

	recentDays := c.QueryInt("days", 7)
	stats := services.BuildKeyStats(logs, recentDays)
	language := requestLanguage(c)

	digest := ""
	if digestRole(c, membership.Role) == models.RoleCaregiver {
		digest = handler.caregiverDigest(language, cycle, stats)
	} else {
		digest = handler.patientDigest(language, cycle, stats)
	}

	return c.JSON(summaryResponse{
		Cycle:  handler.cycleView(cycle),
		Trend:  services.BuildTrendPoints(logs),
		Stats:  stats,
		Digest: digest,
		Labels: services.LabelsFor(membership.Role),
	})
}

func (handler *Handler) Calendar(c *fiber.Ctx) error {
	membership, _ := currentMembership(c)

	today := handler.today()
	year := c.QueryInt("year", today.Year())
	month := c.QueryInt("month", int(today.Month()))
	if month < 1 || month > 12 {
		return apiError(c, fiber.StatusBadRequest, "invalid month")
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, handler.location)
	monthEnd := monthStart.AddDate(0, 1, -1)

	logs, err := handler.dailyService.FetchRange(membership.FamilyID, monthStart, monthEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "load daily logs failed")
	}

	var activeCycle *models.Cycle
	if cycle, found, cycleErr := handler.cycleService.Current(membership.FamilyID); cycleErr == nil && found {
		activeCycle = &cycle
	}

	calendar := services.BuildCalendarMonth(logs, activeCycle, year, time.Month(month), today, handler.location)
	return c.JSON(calendar)
}

// digestRole lets a caller preview the other role's digest with ?mode=;
// the membership role stays the default.
func digestRole(c *fiber.Ctx, fallback models.Role) models.Role {
	if requested := models.Role(c.Query("mode")); requested.Valid() {
		return requested
	}
	return fallback
}

// resolveSummaryCycle picks the requested cycle, falling back to the active
// one when no cycle_no is given.
func (handler *Handler) resolveSummaryCycle(familyID uint, cycleNo int) (models.Cycle, bool, error) {
	if cycleNo > 0 {
		return handler.repositories.Cycles.FindByFamilyAndNo(familyID, cycleNo)
	}
	return handler.cycleService.Current(familyID)
}
