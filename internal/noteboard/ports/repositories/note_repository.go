// Package repositories определяет интерфейсы хранилища заметок и досок.
package repositories

import (
	"context"

	"noteboard/internal/noteboard/domain/entities"
)

// NoteRepository определяет интерфейс для работы с репозиторием заметок.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	GetByID(ctx context.Context, id int64) (*entities.Note, error)
	Update(ctx context.Context, id int64, upd entities.NoteUpdate) (*entities.Note, error)
	Delete(ctx context.Context, id int64) error
	// IncrementViews атомарно увеличивает views_count на единицу и возвращает обновленную заметку.
	IncrementViews(ctx context.Context, id int64) (*entities.Note, error)
}
