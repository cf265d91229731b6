// Package http содержит компоненты HTTP сервера.
package http

import (
	"slices"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"

	"noteboard/internal/noteboard/adapters/http/boards"
	"noteboard/internal/noteboard/adapters/http/dto"
	"noteboard/internal/noteboard/adapters/http/health"
	"noteboard/internal/noteboard/adapters/http/httperr"
	"noteboard/internal/noteboard/adapters/http/middleware"
	"noteboard/internal/noteboard/adapters/http/notes"
	"noteboard/internal/noteboard/config"
	"noteboard/internal/noteboard/ports/api"
)

// MsgRouteNotFound - ответ для несуществующих маршрутов.
const MsgRouteNotFound = "Route not found"

// NewApp создает fiber-приложение с настройками сервиса.
func NewApp(cfg *config.HTTPConfig) *fiber.App {
	return fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: httperr.ErrorHandler,
	})
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(
	app *fiber.App,
	noteService api.NoteService,
	boardService api.BoardService,
	checker api.HealthChecker,
	security *config.SecurityConfig,
) {
	notesHandler := notes.NewHandler(noteService)
	boardsHandler := boards.NewHandler(boardService)
	healthHandler := health.NewHandler(checker)

	// Middleware для всех запросов.
	app.Use(middleware.NewRecoveryMiddleware())
	app.Use(middleware.NewRequestIDMiddleware())
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewTrustedHostMiddleware(security.AllowedHosts))
	if len(security.CORSOrigins) > 0 {
		app.Use(cors.New(cors.Config{
			AllowOrigins:     security.CORSOrigins,
			AllowCredentials: !slices.Contains(security.CORSOrigins, "*"),
		}))
	}
	app.Use(middleware.NewRateLimitMiddleware(security.RateLimitRPS, security.RateLimitBurst))

	app.Get("/health", healthHandler.Check)

	app.Post("/note", notesHandler.CreateNote)
	app.Get("/note/:id", notesHandler.GetNote)
	app.Patch("/note/:id", notesHandler.UpdateNote)
	app.Delete("/note/:id", notesHandler.DeleteNote)

	app.Post("/board", boardsHandler.CreateBoard)
	app.Get("/board/:id", boardsHandler.GetBoard)
	app.Patch("/board/:id", boardsHandler.UpdateBoard)
	app.Delete("/board/:id", boardsHandler.DeleteBoard)
	app.Post("/board/:id/link-note/:note_id", boardsHandler.LinkNote)
	app.Post("/board/:id/unlink-note/:note_id", boardsHandler.UnlinkNote)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: MsgRouteNotFound})
	})
}
