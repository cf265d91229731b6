package middleware

import (
	"github.com/gofiber/fiber/v3"

	"noteboard/pkg/logger"
)

// NewRequestIDMiddleware берет идентификатор запроса из X-Request-ID (если он пригоден)
// или генерирует новый, кладет его в контекст запроса и возвращает в заголовке ответа.
func NewRequestIDMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestID := logger.SanitizeRequestID(ctx.Get(fiber.HeaderXRequestID))

		ctx.SetContext(logger.NewRequestIDContext(ctx.Context(), requestID))
		ctx.Set(fiber.HeaderXRequestID, requestID)

		return ctx.Next()
	}
}
