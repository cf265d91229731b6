// Package postgres реализует репозитории заметок и досок поверх pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"noteboard/internal/noteboard/domain/entities"
	"noteboard/internal/noteboard/ports/repositories"
	"noteboard/pkg/logger"
)

// Константы для сообщений об ошибках.
const (
	ErrCreateNote      = "failed to create note"
	ErrGetNote         = "failed to get note"
	ErrUpdateNote      = "failed to update note"
	ErrDeleteNote      = "failed to delete note"
	ErrIncrementViews  = "failed to increment note views"
	ErrCreateBoard     = "failed to create board"
	ErrGetBoard        = "failed to get board"
	ErrUpdateBoard     = "failed to update board"
	ErrDeleteBoard     = "failed to delete board"
	ErrLockBoard       = "failed to lock board"
	ErrDetachNotes     = "failed to detach board notes"
	ErrLinkNote        = "failed to link note"
	ErrUnlinkNote      = "failed to unlink note"
	ErrListBoardNotes  = "failed to list board notes"
	ErrScanNote        = "failed to scan note"
	ErrIterateRows     = "error iterating rows"
	ErrBeginTx         = "failed to begin transaction"
	ErrCommitTx        = "failed to commit transaction"
	LogRollbackFailed  = "failed to rollback transaction"
	LogTxPanicRollback = "panic inside transaction, rolled back"
)

// PgxPoolInterface - подмножество методов pgxpool.Pool, нужное репозиториям.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Close()
}

// querier общий для пула и транзакции.
type querier interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
}

// RepositoryFactory создает репозитории для работы с базой данных.
type RepositoryFactory struct {
	pool PgxPoolInterface
}

// NewRepositoryFactory создает новую фабрику репозиториев.
func NewRepositoryFactory(pool PgxPoolInterface) *RepositoryFactory {
	return &RepositoryFactory{pool: pool}
}

// NoteRepository возвращает репозиторий для работы с заметками.
func (f *RepositoryFactory) NoteRepository() repositories.NoteRepository {
	return NewNoteRepository(f.pool)
}

// BoardRepository возвращает репозиторий для работы с досками.
func (f *RepositoryFactory) BoardRepository() repositories.BoardRepository {
	return NewBoardRepository(f.pool)
}

// withTx выполняет fn в транзакции. Транзакция фиксируется, только если fn
// вернула nil; при ошибке или панике выполняется откат.
func withTx(ctx context.Context, pool PgxPoolInterface, fn func(tx pgx.Tx) error) (err error) {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return storageError(ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			logger.Log(ctx).Error(ctx, LogTxPanicRollback, zap.Any("panic", p))
			panic(p)
		}
		if err != nil {
			if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
				logger.Log(ctx).Warn(ctx, LogRollbackFailed, zap.Error(rbErr))
			}
			return
		}
		if commitErr := tx.Commit(ctx); commitErr != nil {
			err = storageError(ErrCommitTx, commitErr)
		}
	}()

	return fn(tx)
}

// storageError оборачивает ошибку драйвера, сохраняя доступ к entities.ErrStorageFailure.
func storageError(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, entities.ErrStorageFailure, err)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}

type rowScanner interface {
	Scan(dest ...any) error
}

const noteColumns = `id, text, board_id, views_count, created_at, updated_at`

func scanNote(row rowScanner) (*entities.Note, error) {
	var note entities.Note
	if err := row.Scan(&note.ID, &note.Text, &note.BoardID, &note.ViewsCount, &note.CreatedAt, &note.UpdatedAt); err != nil {
		return nil, err
	}
	return &note, nil
}

// listBoardNotes возвращает заметки доски в порядке id. Результат никогда не равен nil.
func listBoardNotes(ctx context.Context, q querier, boardID int64) ([]*entities.Note, error) {
	rows, err := q.Query(ctx,
		`SELECT `+noteColumns+` FROM note WHERE board_id = $1 ORDER BY id`,
		boardID,
	)
	if err != nil {
		return nil, storageError(ErrListBoardNotes, err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		note, err := scanNote(rows)
		if err != nil {
			return nil, storageError(ErrScanNote, err)
		}
		notes = append(notes, note)
	}

	if err := rows.Err(); err != nil {
		return nil, storageError(ErrIterateRows, err)
	}

	return notes, nil
}
