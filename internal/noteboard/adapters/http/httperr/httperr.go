// Package httperr переводит доменные ошибки в HTTP-ответы.
package httperr

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/noteboard/adapters/http/dto"
	"noteboard/internal/noteboard/domain/entities"
	"noteboard/pkg/logger"
)

// Константы сообщений.
const (
	MsgInternalError     = "Internal server error"
	MsgInvalidBody       = "invalid request body"
	LogRequestRejected   = "request rejected"
	LogRequestFailed     = "request failed"
	ErrSendErrorResponse = "failed to send error response"
)

// Status возвращает HTTP-статус для ошибки сервиса.
func Status(err error) int {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, entities.ErrNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// Respond пишет ответ с ошибкой. Текст ошибок хранилища наружу не отдается.
func Respond(ctx fiber.Ctx, log *logger.Logger, err error) error {
	status := Status(err)
	msg := err.Error()

	if status == fiber.StatusInternalServerError {
		log.Error(ctx.Context(), LogRequestFailed, zap.Error(err))
		msg = MsgInternalError
	} else {
		log.Info(ctx.Context(), LogRequestRejected, zap.Int("status", status), zap.Error(err))
	}

	if err := ctx.Status(status).JSON(dto.ErrorResponse{Error: msg}); err != nil {
		return fmt.Errorf("%s: %w", ErrSendErrorResponse, err)
	}
	return nil
}

// InvalidBody оборачивает ошибку разбора тела запроса в ошибку валидации.
func InvalidBody(err error) error {
	return fmt.Errorf("%w: %s: %s", entities.ErrValidation, MsgInvalidBody, err.Error())
}

// ParamID разбирает целочисленный идентификатор из параметра маршрута.
func ParamID(ctx fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", entities.ErrInvalidID, name)
	}
	if err := entities.ValidateID(id); err != nil {
		return 0, err
	}
	return id, nil
}

// ErrorHandler - обработчик ошибок fiber для ошибок, не обработанных в хендлерах.
func ErrorHandler(ctx fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := MsgInternalError

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		msg = fiberErr.Message
	}

	logger.Log(ctx.Context()).Error(ctx.Context(), LogRequestFailed, zap.Int("status", code), zap.Error(err))

	return ctx.Status(code).JSON(dto.ErrorResponse{Error: msg})
}
