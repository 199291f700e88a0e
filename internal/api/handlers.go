package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tbowo/careline/internal/db"
	"github.com/tbowo/careline/internal/i18n"
	"github.com/tbowo/careline/internal/services"
	"gorm.io/gorm"
)

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, i18nManager *i18n.Manager) *Handler {
	if location == nil {
		location = time.UTC
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		repositories:   repositories,
		secretKey:      []byte(secretKey),
		location:       location,
		i18n:           i18nManager,
		authService:    services.NewAuthService(repositories.Users),
		familyService:  services.NewFamilyService(repositories.Families),
		cycleService:   services.NewCycleService(repositories.Cycles, location),
		dailyService:   services.NewDailyService(repositories.DailyLogs, repositories.Cycles, repositories.Stool, location),
		stoolService:   services.NewStoolService(repositories.Stool, repositories.DailyLogs, location),
		messageService: services.NewMessageService(repositories.Messages),
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}

func (handler *Handler) today() time.Time {
	return services.DateAtLocation(time.Now(), handler.location)
}
