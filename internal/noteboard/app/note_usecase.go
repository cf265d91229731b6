// Package app реализует бизнес-логику сервиса заметок и досок.
package app

import (
	"context"

	"noteboard/internal/noteboard/domain/entities"
	"noteboard/internal/noteboard/ports/repositories"
)

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo repositories.NoteRepository
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
func NewNoteUseCase(noteRepo repositories.NoteRepository) *NoteUseCase {
	return &NoteUseCase{noteRepo: noteRepo}
}

// CreateNote создает новую непривязанную заметку.
func (uc *NoteUseCase) CreateNote(ctx context.Context, text string) (*entities.Note, error) {
	note, err := entities.NewNote(text)
	if err != nil {
		return nil, err
	}
	return uc.noteRepo.Create(ctx, note)
}

// GetNote возвращает заметку, засчитывая ровно один просмотр.
// Для несуществующей заметки счетчик не меняется.
func (uc *NoteUseCase) GetNote(ctx context.Context, id int64) (*entities.Note, error) {
	if err := entities.ValidateID(id); err != nil {
		return nil, err
	}
	return uc.noteRepo.IncrementViews(ctx, id)
}

// UpdateNote заменяет переданные поля заметки.
func (uc *NoteUseCase) UpdateNote(ctx context.Context, id int64, upd entities.NoteUpdate) (*entities.Note, error) {
	if err := entities.ValidateID(id); err != nil {
		return nil, err
	}
	if err := upd.Validate(); err != nil {
		return nil, err
	}
	return uc.noteRepo.Update(ctx, id, upd)
}

// DeleteNote удаляет заметку. Доска, к которой она была привязана, перестает ее содержать.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, id int64) error {
	if err := entities.ValidateID(id); err != nil {
		return err
	}
	return uc.noteRepo.Delete(ctx, id)
}
