package logger

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// MaxRequestIDLength - максимальная длина идентификатора, принимаемого от клиента.
const MaxRequestIDLength = 128

type requestIDKeyType struct{}

var requestIDKey = requestIDKeyType{}

// NewRequestIDContext кладет идентификатор запроса в контекст.
// Пустой requestID заменяется сгенерированным.
func NewRequestIDContext(ctx context.Context, requestID string) context.Context {
	if requestID == "" {
		requestID = GenerateRequestID()
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetRequestID достает идентификатор запроса из контекста.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// GenerateRequestID генерирует новый идентификатор запроса.
func GenerateRequestID() string {
	return uuid.New().String()
}

// SanitizeRequestID возвращает присланный клиентом идентификатор, если он короче
// MaxRequestIDLength и состоит из печатных ASCII-символов без пробелов.
// Иначе возвращается новый идентификатор.
func SanitizeRequestID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" || len(id) > MaxRequestIDLength {
		return GenerateRequestID()
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return GenerateRequestID()
		}
	}
	return id
}
