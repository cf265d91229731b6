// Package api определяет контракты сервисов, которые использует HTTP-слой.
package api

import (
	"context"

	"noteboard/internal/noteboard/domain/entities"
)

// NoteService - операции над заметками.
type NoteService interface {
	CreateNote(ctx context.Context, text string) (*entities.Note, error)
	GetNote(ctx context.Context, id int64) (*entities.Note, error)
	UpdateNote(ctx context.Context, id int64, upd entities.NoteUpdate) (*entities.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}
