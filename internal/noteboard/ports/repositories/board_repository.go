package repositories

import (
	"context"

	"noteboard/internal/noteboard/domain/entities"
)

// BoardRepository определяет интерфейс для работы с репозиторием досок.
// Все возвращаемые доски содержат актуальный список заметок.
type BoardRepository interface {
	Create(ctx context.Context, board *entities.Board) (*entities.Board, error)
	GetByID(ctx context.Context, id int64) (*entities.Board, error)
	Update(ctx context.Context, id int64, upd entities.BoardUpdate) (*entities.Board, error)
	// Delete отвязывает заметки доски и удаляет ее в одной транзакции.
	Delete(ctx context.Context, id int64) error
	LinkNote(ctx context.Context, boardID, noteID int64) (*entities.Board, error)
	UnlinkNote(ctx context.Context, boardID, noteID int64) (*entities.Board, error)
}
