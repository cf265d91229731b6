package entities_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"noteboard/internal/noteboard/domain/entities"
)

func ptr[T any](v T) *T { return &v }

func TestNewNote(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		expectedErr error
	}{
		{name: "single character", text: "x"},
		{name: "max length", text: strings.Repeat("a", entities.MaxNoteTextLength)},
		{name: "max length multibyte", text: strings.Repeat("ж", entities.MaxNoteTextLength)},
		{name: "empty text", text: "", expectedErr: entities.ErrNoteTextEmpty},
		{name: "too long", text: strings.Repeat("a", entities.MaxNoteTextLength+1), expectedErr: entities.ErrNoteTextTooLong},
		{name: "NUL character", text: "a\x00b", expectedErr: entities.ErrNoteTextInvalid},
		{name: "invalid UTF-8", text: "a\xffb", expectedErr: entities.ErrNoteTextInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			note, err := entities.NewNote(tt.text)

			if tt.expectedErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.ErrorIs(t, err, entities.ErrValidation)
				assert.Nil(t, note)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.text, note.Text)
			assert.Nil(t, note.BoardID)
			assert.Zero(t, note.ViewsCount)
			assert.Equal(t, note.CreatedAt, note.UpdatedAt)
		})
	}
}

func TestNoteUpdate(t *testing.T) {
	t.Run("nothing provided", func(t *testing.T) {
		note := &entities.Note{Text: "old"}
		upd := entities.NoteUpdate{}

		require.NoError(t, upd.Validate())
		upd.Apply(note)
		assert.Equal(t, "old", note.Text)
	})

	t.Run("text provided", func(t *testing.T) {
		note := &entities.Note{Text: "old"}
		upd := entities.NoteUpdate{Text: ptr("new")}

		require.NoError(t, upd.Validate())
		upd.Apply(note)
		assert.Equal(t, "new", note.Text)
	})

	t.Run("empty text rejected", func(t *testing.T) {
		upd := entities.NoteUpdate{Text: ptr("")}
		assert.ErrorIs(t, upd.Validate(), entities.ErrNoteTextEmpty)
	})

	t.Run("NUL in text rejected", func(t *testing.T) {
		upd := entities.NoteUpdate{Text: ptr("x\x00")}
		assert.ErrorIs(t, upd.Validate(), entities.ErrNoteTextInvalid)
	})

	t.Run("too long text rejected", func(t *testing.T) {
		upd := entities.NoteUpdate{Text: ptr(strings.Repeat("b", 251))}
		assert.ErrorIs(t, upd.Validate(), entities.ErrNoteTextTooLong)
	})
}

func TestNewBoard(t *testing.T) {
	t.Run("valid name", func(t *testing.T) {
		board, err := entities.NewBoard("Work")
		require.NoError(t, err)
		assert.Equal(t, "Work", board.Name)
		assert.NotNil(t, board.Notes)
		assert.Empty(t, board.Notes)
	})

	t.Run("empty name allowed", func(t *testing.T) {
		board, err := entities.NewBoard("")
		require.NoError(t, err)
		assert.Empty(t, board.Name)
	})

	t.Run("NUL character in name", func(t *testing.T) {
		board, err := entities.NewBoard("wo\x00rk")
		assert.ErrorIs(t, err, entities.ErrBoardNameInvalid)
		assert.ErrorIs(t, err, entities.ErrValidation)
		assert.Nil(t, board)
	})

	t.Run("too long name", func(t *testing.T) {
		board, err := entities.NewBoard(strings.Repeat("n", entities.MaxBoardNameLength+1))
		assert.ErrorIs(t, err, entities.ErrBoardNameTooLong)
		assert.ErrorIs(t, err, entities.ErrValidation)
		assert.Nil(t, board)
	})
}

func TestBoardUpdate(t *testing.T) {
	assert.NoError(t, entities.BoardUpdate{}.Validate())
	assert.NoError(t, entities.BoardUpdate{Name: ptr("")}.Validate())
	assert.NoError(t, entities.BoardUpdate{Name: ptr(strings.Repeat("n", 75))}.Validate())
	assert.ErrorIs(t, entities.BoardUpdate{Name: ptr(strings.Repeat("n", 76))}.Validate(), entities.ErrBoardNameTooLong)
	assert.ErrorIs(t, entities.BoardUpdate{Name: ptr("\x00")}.Validate(), entities.ErrBoardNameInvalid)
}

func TestErrorTaxonomy(t *testing.T) {
	assert.ErrorIs(t, entities.ErrNoteNotFound, entities.ErrNotFound)
	assert.ErrorIs(t, entities.ErrBoardNotFound, entities.ErrNotFound)
	assert.NotErrorIs(t, entities.ErrNoteNotFound, entities.ErrBoardNotFound)
	assert.ErrorIs(t, entities.ErrInvalidID, entities.ErrValidation)
	assert.ErrorIs(t, entities.ErrBoardNameRequired, entities.ErrValidation)

	assert.ErrorIs(t, entities.ValidateID(0), entities.ErrInvalidID)
	assert.ErrorIs(t, entities.ValidateID(-4), entities.ErrInvalidID)
	assert.NoError(t, entities.ValidateID(1))
}
