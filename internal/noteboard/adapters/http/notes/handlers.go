// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"noteboard/internal/noteboard/adapters/http/dto"
	"noteboard/internal/noteboard/adapters/http/httperr"
	"noteboard/internal/noteboard/domain/entities"
	"noteboard/internal/noteboard/ports/api"
	"noteboard/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerGetNote    = "handling get note request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrSendResponse = "error sending response"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteService api.NoteService
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteService api.NoteService) *Handler {
	return &Handler{noteService: noteService}
}

// CreateNote обрабатывает POST /note.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	reqCtx := ctx.Context()
	log := logger.Log(reqCtx).With(zap.String("handler", "notes.Handler.CreateNote"))
	log.Debug(reqCtx, LogHandlerCreateNote)

	var req dto.CreateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return httperr.Respond(ctx, log, httperr.InvalidBody(err))
	}
	if req.Text == nil {
		return httperr.Respond(ctx, log, entities.ErrNoteTextRequired)
	}

	note, err := h.noteService.CreateNote(reqCtx, *req.Text)
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("%s: %w", ErrSendResponse, err)
	}
	return nil
}

// GetNote обрабатывает GET /note/:id. Каждый успешный вызов засчитывает просмотр.
func (h *Handler) GetNote(ctx fiber.Ctx) error {
	reqCtx := ctx.Context()
	log := logger.Log(reqCtx).With(zap.String("handler", "notes.Handler.GetNote"))
	log.Debug(reqCtx, LogHandlerGetNote)

	id, err := httperr.ParamID(ctx, "id")
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	note, err := h.noteService.GetNote(reqCtx, id)
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	if err := ctx.JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("%s: %w", ErrSendResponse, err)
	}
	return nil
}

// UpdateNote обрабатывает PATCH /note/:id.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	reqCtx := ctx.Context()
	log := logger.Log(reqCtx).With(zap.String("handler", "notes.Handler.UpdateNote"))
	log.Debug(reqCtx, LogHandlerUpdateNote)

	id, err := httperr.ParamID(ctx, "id")
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	var req dto.UpdateNoteRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return httperr.Respond(ctx, log, httperr.InvalidBody(err))
	}

	note, err := h.noteService.UpdateNote(reqCtx, id, req.ToUpdate())
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	if err := ctx.JSON(dto.NoteFromEntity(note)); err != nil {
		return fmt.Errorf("%s: %w", ErrSendResponse, err)
	}
	return nil
}

// DeleteNote обрабатывает DELETE /note/:id.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	reqCtx := ctx.Context()
	log := logger.Log(reqCtx).With(zap.String("handler", "notes.Handler.DeleteNote"))
	log.Debug(reqCtx, LogHandlerDeleteNote)

	id, err := httperr.ParamID(ctx, "id")
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	if err := h.noteService.DeleteNote(reqCtx, id); err != nil {
		return httperr.Respond(ctx, log, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("%s: %w", ErrSendResponse, err)
	}
	return nil
}
