package api

import (
	"context"

	"noteboard/internal/noteboard/domain/entities"
)

// BoardService - операции над досками и привязкой заметок.
type BoardService interface {
	CreateBoard(ctx context.Context, name string) (*entities.Board, error)
	GetBoard(ctx context.Context, id int64) (*entities.Board, error)
	UpdateBoard(ctx context.Context, id int64, upd entities.BoardUpdate) (*entities.Board, error)
	DeleteBoard(ctx context.Context, id int64) error
	LinkNote(ctx context.Context, boardID, noteID int64) (*entities.Board, error)
	UnlinkNote(ctx context.Context, boardID, noteID int64) (*entities.Board, error)
}

// HealthChecker проверяет доступность хранилища.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
