package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"noteboard/internal/noteboard/domain/entities"
	"noteboard/internal/noteboard/ports/repositories"
	"noteboard/pkg/logger"
)

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку. id, счетчик просмотров и временные метки назначает база.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.Int("text_len", len(note.Text)))

	created, err := scanNote(r.pool.QueryRow(ctx,
		`INSERT INTO note (text) VALUES ($1) RETURNING `+noteColumns,
		note.Text,
	))
	if err != nil {
		log.Error(ctx, ErrCreateNote, zap.Error(err))
		return nil, storageError(ErrCreateNote, err)
	}

	log.Debug(ctx, "note created", zap.Int64("noteID", created.ID))
	return created, nil
}

// GetByID получает заметку по ID без изменения счетчика просмотров.
func (r *NoteRepository) GetByID(ctx context.Context, id int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.GetByID"))
	log.Debug(ctx, "getting note", zap.Int64("noteID", id))

	note, err := scanNote(r.pool.QueryRow(ctx,
		`SELECT `+noteColumns+` FROM note WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int64("noteID", id))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, ErrGetNote, zap.Error(err))
		return nil, storageError(ErrGetNote, err)
	}

	return note, nil
}

// Update заменяет только переданные поля. updated_at обновляется всегда.
func (r *NoteRepository) Update(ctx context.Context, id int64, upd entities.NoteUpdate) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.Int64("noteID", id), zap.Bool("text_provided", upd.Text != nil))

	note, err := scanNote(r.pool.QueryRow(ctx,
		`UPDATE note SET text = COALESCE($2, text), updated_at = NOW() WHERE id = $1 RETURNING `+noteColumns,
		id, upd.Text,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int64("noteID", id))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, ErrUpdateNote, zap.Error(err))
		return nil, storageError(ErrUpdateNote, err)
	}

	return note, nil
}

// Delete удаляет заметку.
func (r *NoteRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.Int64("noteID", id))

	result, err := r.pool.Exec(ctx, `DELETE FROM note WHERE id = $1`, id)
	if err != nil {
		log.Error(ctx, ErrDeleteNote, zap.Error(err))
		return storageError(ErrDeleteNote, err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found", zap.Int64("noteID", id))
		return entities.ErrNoteNotFound
	}

	return nil
}

// IncrementViews увеличивает views_count одним UPDATE, поэтому параллельные чтения не теряют инкременты.
func (r *NoteRepository) IncrementViews(ctx context.Context, id int64) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.IncrementViews"))
	log.Debug(ctx, "incrementing note views", zap.Int64("noteID", id))

	note, err := scanNote(r.pool.QueryRow(ctx,
		`UPDATE note SET views_count = views_count + 1, updated_at = NOW() WHERE id = $1 RETURNING `+noteColumns,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found", zap.Int64("noteID", id))
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, ErrIncrementViews, zap.Error(err))
		return nil, storageError(ErrIncrementViews, err)
	}

	return note, nil
}
