// Package health содержит обработчик проверки готовности сервиса.
package health

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/noteboard/ports/api"
	"noteboard/pkg/logger"
)

const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"

	LogPingFailed = "database ping failed"
)

const pingTimeout = 2 * time.Second

// Handler отвечает на GET /health.
type Handler struct {
	checker api.HealthChecker
}

// NewHandler создает обработчик проверки готовности.
func NewHandler(checker api.HealthChecker) *Handler {
	return &Handler{checker: checker}
}

// Check пингует базу данных: 200, если она доступна, иначе 503.
func (h *Handler) Check(ctx fiber.Ctx) error {
	reqCtx, cancel := context.WithTimeout(ctx.Context(), pingTimeout)
	defer cancel()

	if err := h.checker.Ping(reqCtx); err != nil {
		logger.Log(reqCtx).Warn(reqCtx, LogPingFailed, zap.Error(err))
		return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": StatusUnavailable})
	}

	return ctx.JSON(fiber.Map{"status": StatusOK})
}
