package app_test

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"noteboard/internal/noteboard/domain/entities"
)

var ErrDatabaseOperation = errors.New("database error")

type mockNoteRepository struct {
	mock.Mock
}

func (m *mockNoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	args := m.Called(ctx, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) GetByID(ctx context.Context, id int64) (*entities.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Update(ctx context.Context, id int64, upd entities.NoteUpdate) (*entities.Note, error) {
	args := m.Called(ctx, id, upd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockNoteRepository) IncrementViews(ctx context.Context, id int64) (*entities.Note, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

type mockBoardRepository struct {
	mock.Mock
}

func (m *mockBoardRepository) board(args mock.Arguments) (*entities.Board, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Board), args.Error(1)
}

func (m *mockBoardRepository) Create(ctx context.Context, board *entities.Board) (*entities.Board, error) {
	return m.board(m.Called(ctx, board))
}

func (m *mockBoardRepository) GetByID(ctx context.Context, id int64) (*entities.Board, error) {
	return m.board(m.Called(ctx, id))
}

func (m *mockBoardRepository) Update(ctx context.Context, id int64, upd entities.BoardUpdate) (*entities.Board, error) {
	return m.board(m.Called(ctx, id, upd))
}

func (m *mockBoardRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBoardRepository) LinkNote(ctx context.Context, boardID, noteID int64) (*entities.Board, error) {
	return m.board(m.Called(ctx, boardID, noteID))
}

func (m *mockBoardRepository) UnlinkNote(ctx context.Context, boardID, noteID int64) (*entities.Board, error) {
	return m.board(m.Called(ctx, boardID, noteID))
}

func strPtr(s string) *string { return &s }

func hasNote(board *entities.Board, noteID int64) bool {
	for _, n := range board.Notes {
		if n.ID == noteID {
			return true
		}
	}
	return false
}
