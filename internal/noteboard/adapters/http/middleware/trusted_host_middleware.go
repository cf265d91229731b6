package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/noteboard/adapters/http/dto"
	"noteboard/pkg/logger"
)

// MsgInvalidHost - текст ответа для запроса с неразрешенным заголовком Host.
const MsgInvalidHost = "Invalid host header"

// NewTrustedHostMiddleware пропускает только запросы, чей Host входит в allowed.
// "*" разрешает любой хост, "*.example.com" - любой поддомен example.com.
func NewTrustedHostMiddleware(allowed []string) fiber.Handler {
	exact := make(map[string]struct{}, len(allowed))
	var suffixes []string
	allowAll := false

	for _, host := range allowed {
		host = strings.ToLower(strings.TrimSpace(host))
		switch {
		case host == "*":
			allowAll = true
		case strings.HasPrefix(host, "*."):
			suffixes = append(suffixes, host[1:])
		case host != "":
			exact[host] = struct{}{}
		}
	}

	return func(ctx fiber.Ctx) error {
		if allowAll {
			return ctx.Next()
		}

		host := strings.ToLower(ctx.Hostname())
		if _, ok := exact[host]; ok {
			return ctx.Next()
		}
		for _, suffix := range suffixes {
			if strings.HasSuffix(host, suffix) {
				return ctx.Next()
			}
		}

		logger.Log(ctx.Context()).Warn(ctx.Context(), "host rejected", zap.String("host", host))
		return ctx.Status(fiber.StatusMisdirectedRequest).JSON(dto.ErrorResponse{Error: MsgInvalidHost})
	}
}
