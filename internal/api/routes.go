package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api", handler.LanguageMiddleware)

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/wechat", handler.WeChatLogin)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	family := api.Group("/family", handler.AuthRequired)
	family.Post("/create", handler.CreateFamily)
	family.Post("/join", handler.JoinFamily)
	family.Get("/me", handler.MyFamily)

	cycle := api.Group("/cycle", handler.AuthRequired, handler.FamilyRequired)
	cycle.Post("", handler.UpsertCycle)
	cycle.Get("/current", handler.CurrentCycle)
	cycle.Get("/list", handler.ListCycles)
	cycle.Patch("/:cycle_no", handler.PatchCycle)

	daily := api.Group("/daily", handler.AuthRequired, handler.FamilyRequired)
	daily.Get("/today", handler.TodayLog)
	daily.Get("/range", handler.LogRange)
	daily.Get("/cycle/:cycle_no", handler.CycleLogs)
	daily.Put("/:date", handler.UpsertDailyLog)

	stool := api.Group("/stool", handler.AuthRequired, handler.FamilyRequired)
	stool.Post("", handler.CreateStoolEvent)
	stool.Get("/today", handler.TodayStool)
	stool.Get("/range", handler.StoolRange)
	stool.Delete("/:id", handler.DeleteStoolEvent)

	summary := api.Group("/summary", handler.AuthRequired, handler.FamilyRequired)
	summary.Get("", handler.Summary)
	summary.Get("/calendar", handler.Calendar)

	message := api.Group("/message", handler.AuthRequired, handler.FamilyRequired)
	message.Post("", handler.SendMessage)
	message.Get("/active", handler.ActiveMessages)
}
