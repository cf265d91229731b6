package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"noteboard/internal/noteboard/domain/entities"
)

type mockNoteService struct {
	mock.Mock
}

func (m *mockNoteService) note(args mock.Arguments) (*entities.Note, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Note), args.Error(1)
}

func (m *mockNoteService) CreateNote(ctx context.Context, text string) (*entities.Note, error) {
	return m.note(m.Called(ctx, text))
}

func (m *mockNoteService) GetNote(ctx context.Context, id int64) (*entities.Note, error) {
	return m.note(m.Called(ctx, id))
}

func (m *mockNoteService) UpdateNote(ctx context.Context, id int64, upd entities.NoteUpdate) (*entities.Note, error) {
	return m.note(m.Called(ctx, id, upd))
}

func (m *mockNoteService) DeleteNote(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockBoardService struct {
	mock.Mock
}

func (m *mockBoardService) board(args mock.Arguments) (*entities.Board, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Board), args.Error(1)
}

func (m *mockBoardService) CreateBoard(ctx context.Context, name string) (*entities.Board, error) {
	return m.board(m.Called(ctx, name))
}

func (m *mockBoardService) GetBoard(ctx context.Context, id int64) (*entities.Board, error) {
	return m.board(m.Called(ctx, id))
}

func (m *mockBoardService) UpdateBoard(ctx context.Context, id int64, upd entities.BoardUpdate) (*entities.Board, error) {
	return m.board(m.Called(ctx, id, upd))
}

func (m *mockBoardService) DeleteBoard(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBoardService) LinkNote(ctx context.Context, boardID, noteID int64) (*entities.Board, error) {
	return m.board(m.Called(ctx, boardID, noteID))
}

func (m *mockBoardService) UnlinkNote(ctx context.Context, boardID, noteID int64) (*entities.Board, error) {
	return m.board(m.Called(ctx, boardID, noteID))
}

type mockHealthChecker struct {
	mock.Mock
}

func (m *mockHealthChecker) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
