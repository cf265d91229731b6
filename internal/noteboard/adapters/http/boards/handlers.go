// Package boards содержит HTTP-обработчики для управления досками.
package boards

import (
	"context"
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
	LogHandlerCreateBoard = "handling create board request"
	LogHandlerGetBoard    = "handling get board request"
	LogHandlerUpdateBoard = "handling update board request"
	LogHandlerDeleteBoard = "handling delete board request"
	LogHandlerLinkNote    = "handling link note request"
	LogHandlerUnlinkNote  = "handling unlink note request"

	ErrSendResponse = "error sending response"
)

// Handler обработчик HTTP-запросов для работы с досками.
type Handler struct {
	boardService api.BoardService
}

// NewHandler создает новый экземпляр обработчика досок.
func NewHandler(boardService api.BoardService) *Handler {
	return &Handler{boardService: boardService}
}

func sendBoard(ctx fiber.Ctx, status int, board *entities.Board) error {
	if err := ctx.Status(status).JSON(dto.BoardFromEntity(board)); err != nil {
		return fmt.Errorf("%s: %w", ErrSendResponse, err)
	}
	return nil
}

// CreateBoard обрабатывает POST /board.
func (h *Handler) CreateBoard(ctx fiber.Ctx) error {
	reqCtx := ctx.Context()
	log := logger.Log(reqCtx).With(zap.String("handler", "boards.Handler.CreateBoard"))
	log.Debug(reqCtx, LogHandlerCreateBoard)

	var req dto.CreateBoardRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return httperr.Respond(ctx, log, httperr.InvalidBody(err))
	}
	if req.Name == nil {
		return httperr.Respond(ctx, log, entities.ErrBoardNameRequired)
	}

	board, err := h.boardService.CreateBoard(reqCtx, *req.Name)
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	return sendBoard(ctx, fiber.StatusCreated, board)
}

// GetBoard обрабатывает GET /board/:id.
func (h *Handler) GetBoard(ctx fiber.Ctx) error {
	reqCtx := ctx.Context()
	log := logger.Log(reqCtx).With(zap.String("handler", "boards.Handler.GetBoard"))
	log.Debug(reqCtx, LogHandlerGetBoard)

	id, err := httperr.ParamID(ctx, "id")
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	board, err := h.boardService.GetBoard(reqCtx, id)
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	return sendBoard(ctx, fiber.StatusOK, board)
}

// UpdateBoard обрабатывает PATCH /board/:id.
func (h *Handler) UpdateBoard(ctx fiber.Ctx) error {
	reqCtx := ctx.Context()
	log := logger.Log(reqCtx).With(zap.String("handler", "boards.Handler.UpdateBoard"))
	log.Debug(reqCtx, LogHandlerUpdateBoard)

	id, err := httperr.ParamID(ctx, "id")
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	var req dto.UpdateBoardRequest
	if err := ctx.Bind().Body(&req); err != nil {
		return httperr.Respond(ctx, log, httperr.InvalidBody(err))
	}

	board, err := h.boardService.UpdateBoard(reqCtx, id, req.ToUpdate())
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	return sendBoard(ctx, fiber.StatusOK, board)
}

// DeleteBoard обрабатывает DELETE /board/:id.
func (h *Handler) DeleteBoard(ctx fiber.Ctx) error {
	reqCtx := ctx.Context()
	log := logger.Log(reqCtx).With(zap.String("handler", "boards.Handler.DeleteBoard"))
	log.Debug(reqCtx, LogHandlerDeleteBoard)

	id, err := httperr.ParamID(ctx, "id")
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	if err := h.boardService.DeleteBoard(reqCtx, id); err != nil {
		return httperr.Respond(ctx, log, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("%s: %w", ErrSendResponse, err)
	}
	return nil
}

// LinkNote обрабатывает POST /board/:id/link-note/:note_id.
func (h *Handler) LinkNote(ctx fiber.Ctx) error {
	return h.changeLink(ctx, "boards.Handler.LinkNote", LogHandlerLinkNote, h.boardService.LinkNote)
}

// UnlinkNote обрабатывает POST /board/:id/unlink-note/:note_id.
func (h *Handler) UnlinkNote(ctx fiber.Ctx) error {
	return h.changeLink(ctx, "boards.Handler.UnlinkNote", LogHandlerUnlinkNote, h.boardService.UnlinkNote)
}

type linkFunc func(ctx context.Context, boardID, noteID int64) (*entities.Board, error)

func (h *Handler) changeLink(ctx fiber.Ctx, handler, msg string, fn linkFunc) error {
	reqCtx := ctx.Context()
	log := logger.Log(reqCtx).With(zap.String("handler", handler))
	log.Debug(reqCtx, msg)

	boardID, err := httperr.ParamID(ctx, "id")
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}
	noteID, err := httperr.ParamID(ctx, "note_id")
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	board, err := fn(reqCtx, boardID, noteID)
	if err != nil {
		return httperr.Respond(ctx, log, err)
	}

	return sendBoard(ctx, fiber.StatusCreated, board)
}
