package middleware

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"noteboard/internal/noteboard/adapters/http/dto"
	"noteboard/pkg/logger"
)

// Значения по умолчанию, если лимиты не заданы.
const (
	DefaultRPS   = 100
	DefaultBurst = 10
)

// NewRateLimitMiddleware ограничивает общее число запросов к сервису.
// rps - запросов в секунду, burst - допустимый кратковременный всплеск.
func NewRateLimitMiddleware(rps, burst int) fiber.Handler {
	if rps <= 0 {
		rps = DefaultRPS
	}
	if burst <= 0 {
		burst = DefaultBurst
	}

	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(ctx fiber.Ctx) error {
		if !limiter.Allow() {
			logger.Log(ctx.Context()).Warn(ctx.Context(), "rate limit exceeded",
				zap.String("path", ctx.Path()),
				zap.String("ip", ctx.IP()))
			return ctx.Status(fiber.StatusTooManyRequests).JSON(dto.ErrorResponse{Error: "Too Many Requests"})
		}
		return ctx.Next()
	}
}
