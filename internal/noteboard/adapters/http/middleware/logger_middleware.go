package middleware

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/pkg/logger"
)

// Сообщения журнала доступа.
const (
	LogRequestCompleted = "request completed"
	LogRequestFailed    = "request failed"
)

// NewLoggerMiddleware пишет одну запись журнала доступа на запрос.
// Уровень зависит от статуса: 5xx - error, 4xx - warn, остальное - info.
// request_id добавляется логгером из контекста запроса.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		start := time.Now()

		err := ctx.Next()

		requestCtx := ctx.Context()
		status := ctx.Response().StatusCode()
		fields := []zap.Field{
			zap.String("method", ctx.Method()),
			zap.String("path", ctx.Path()),
			zap.String("route", ctx.Route().Path),
			zap.String("ip", ctx.IP()),
			zap.Int("status", status),
			zap.Int("bytes_out", len(ctx.Response().Body())),
			zap.Duration("latency", time.Since(start)),
		}

		log := logger.Log(requestCtx)
		switch {
		case err != nil:
			log.Error(requestCtx, LogRequestFailed, append(fields, zap.Error(err))...)
		case status >= fiber.StatusInternalServerError:
			log.Error(requestCtx, LogRequestCompleted, fields...)
		case status >= fiber.StatusBadRequest:
			log.Warn(requestCtx, LogRequestCompleted, fields...)
		default:
			log.Info(requestCtx, LogRequestCompleted, fields...)
		}

		return err
	}
}
