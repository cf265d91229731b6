package app

import (
	"context"

	"noteboard/internal/noteboard/domain/entities"
	"noteboard/internal/noteboard/ports/repositories"
)

// BoardUseCase представляет собой бизнес-логику работы с досками.
type BoardUseCase struct {
	boardRepo repositories.BoardRepository
	noteRepo  repositories.NoteRepository
}

// NewBoardUseCase создает новый экземпляр BoardUseCase.
func NewBoardUseCase(boardRepo repositories.BoardRepository, noteRepo repositories.NoteRepository) *BoardUseCase {
	return &BoardUseCase{
		boardRepo: boardRepo,
		noteRepo:  noteRepo,
	}
}

// CreateBoard создает доску без заметок.
func (uc *BoardUseCase) CreateBoard(ctx context.Context, name string) (*entities.Board, error) {
	board, err := entities.NewBoard(name)
	if err != nil {
		return nil, err
	}
	return uc.boardRepo.Create(ctx, board)
}

// GetBoard возвращает доску с заметками.
func (uc *BoardUseCase) GetBoard(ctx context.Context, id int64) (*entities.Board, error) {
	if err := entities.ValidateID(id); err != nil {
		return nil, err
	}
	return uc.boardRepo.GetByID(ctx, id)
}

// UpdateBoard заменяет переданные поля доски.
func (uc *BoardUseCase) UpdateBoard(ctx context.Context, id int64, upd entities.BoardUpdate) (*entities.Board, error) {
	if err := entities.ValidateID(id); err != nil {
		return nil, err
	}
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	return uc.boardRepo.Update(ctx, id, upd)
}

// DeleteBoard удаляет доску. Ее заметки остаются, но отвязываются.
func (uc *BoardUseCase) DeleteBoard(ctx context.Context, id int64) error {
	if err := entities.ValidateID(id); err != nil {
		return err
	}
	return uc.boardRepo.Delete(ctx, id)
}

// LinkNote привязывает заметку к доске. Заметка, привязанная к другой доске, переносится.
func (uc *BoardUseCase) LinkNote(ctx context.Context, boardID, noteID int64) (*entities.Board, error) {
	if err := uc.checkNote(ctx, boardID, noteID); err != nil {
		return nil, err
	}
	return uc.boardRepo.LinkNote(ctx, boardID, noteID)
}

// UnlinkNote отвязывает заметку. Принадлежность заметке именно этой доске не проверяется.
func (uc *BoardUseCase) UnlinkNote(ctx context.Context, boardID, noteID int64) (*entities.Board, error) {
	if err := uc.checkNote(ctx, boardID, noteID); err != nil {
		return nil, err
	}
	return uc.boardRepo.UnlinkNote(ctx, boardID, noteID)
}

func (uc *BoardUseCase) checkNote(ctx context.Context, boardID, noteID int64) error {
	if err := entities.ValidateID(boardID); err != nil {
		return err
	}
	if err := entities.ValidateID(noteID); err != nil {
		return err
	}
	_, err := uc.noteRepo.GetByID(ctx, noteID)
	return err
}
