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

const boardColumns = `id, name, created_at, updated_at`

// BoardRepository реализует интерфейс repositories.BoardRepository.
type BoardRepository struct {
	pool PgxPoolInterface
}

// NewBoardRepository создает новый репозиторий досок.
func NewBoardRepository(pool PgxPoolInterface) repositories.BoardRepository {
	return &BoardRepository{pool: pool}
}

func scanBoard(row rowScanner) (*entities.Board, error) {
	var board entities.Board
	if err := row.Scan(&board.ID, &board.Name, &board.CreatedAt, &board.UpdatedAt); err != nil {
		return nil, err
	}
	board.Notes = []*entities.Note{}
	return &board, nil
}

// Create сохраняет новую доску без заметок.
func (r *BoardRepository) Create(ctx context.Context, board *entities.Board) (*entities.Board, error) {
	log := logger.Log(ctx).With(zap.String("method", "BoardRepository.Create"))
	log.Debug(ctx, "creating new board")

	created, err := scanBoard(r.pool.QueryRow(ctx,
		`INSERT INTO board (name) VALUES ($1) RETURNING `+boardColumns,
		board.Name,
	))
	if err != nil {
		log.Error(ctx, ErrCreateBoard, zap.Error(err))
		return nil, storageError(ErrCreateBoard, err)
	}

	log.Debug(ctx, "board created", zap.Int64("boardID", created.ID))
	return created, nil
}

// GetByID получает доску вместе с ее заметками.
func (r *BoardRepository) GetByID(ctx context.Context, id int64) (*entities.Board, error) {
	log := logger.Log(ctx).With(zap.String("method", "BoardRepository.GetByID"))
	log.Debug(ctx, "getting board", zap.Int64("boardID", id))

	board, err := scanBoard(r.pool.QueryRow(ctx,
		`SELECT `+boardColumns+` FROM board WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "board not found", zap.Int64("boardID", id))
			return nil, entities.ErrBoardNotFound
		}
		log.Error(ctx, ErrGetBoard, zap.Error(err))
		return nil, storageError(ErrGetBoard, err)
	}

	if board.Notes, err = listBoardNotes(ctx, r.pool, id); err != nil {
		log.Error(ctx, ErrListBoardNotes, zap.Error(err))
		return nil, err
	}

	return board, nil
}

// Update заменяет только переданные поля и возвращает доску с заметками.
func (r *BoardRepository) Update(ctx context.Context, id int64, upd entities.BoardUpdate) (*entities.Board, error) {
	log := logger.Log(ctx).With(zap.String("method", "BoardRepository.Update"))
	log.Debug(ctx, "updating board", zap.Int64("boardID", id), zap.Bool("name_provided", upd.Name != nil))

	board, err := scanBoard(r.pool.QueryRow(ctx,
		`UPDATE board SET name = COALESCE($2, name), updated_at = NOW() WHERE id = $1 RETURNING `+boardColumns,
		id, upd.Name,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "board not found", zap.Int64("boardID", id))
			return nil, entities.ErrBoardNotFound
		}
		log.Error(ctx, ErrUpdateBoard, zap.Error(err))
		return nil, storageError(ErrUpdateBoard, err)
	}

	if board.Notes, err = listBoardNotes(ctx, r.pool, id); err != nil {
		log.Error(ctx, ErrListBoardNotes, zap.Error(err))
		return nil, err
	}

	return board, nil
}

// Delete отвязывает заметки доски и удаляет ее. Строка доски блокируется первой,
// в том же порядке, что и при привязке заметок.
func (r *BoardRepository) Delete(ctx context.Context, id int64) error {
	log := logger.Log(ctx).With(zap.String("method", "BoardRepository.Delete"))
	log.Debug(ctx, "deleting board", zap.Int64("boardID", id))

	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var locked int64
		if err := tx.QueryRow(ctx, `SELECT id FROM board WHERE id = $1 FOR UPDATE`, id).Scan(&locked); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return entities.ErrBoardNotFound
			}
			return storageError(ErrLockBoard, err)
		}

		detached, err := tx.Exec(ctx,
			`UPDATE note SET board_id = NULL, updated_at = NOW() WHERE board_id = $1`,
			id,
		)
		if err != nil {
			return storageError(ErrDetachNotes, err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM board WHERE id = $1`, id)
		if err != nil {
			return storageError(ErrDeleteBoard, err)
		}
		if result.RowsAffected() == 0 {
			return entities.ErrBoardNotFound
		}

		log.Debug(ctx, "board notes detached", zap.Int64("detached", detached.RowsAffected()))
		return nil
	})
	if err != nil {
		if errors.Is(err, entities.ErrBoardNotFound) {
			log.Debug(ctx, "board not found", zap.Int64("boardID", id))
		} else {
			log.Error(ctx, ErrDeleteBoard, zap.Error(err))
		}
		return err
	}

	return nil
}

// LinkNote привязывает заметку к доске.
func (r *BoardRepository) LinkNote(ctx context.Context, boardID, noteID int64) (*entities.Board, error) {
	return r.setNoteBoard(ctx, "BoardRepository.LinkNote", ErrLinkNote, boardID, noteID, true)
}

// UnlinkNote обнуляет board_id заметки, не проверяя, к какой доске она была привязана.
func (r *BoardRepository) UnlinkNote(ctx context.Context, boardID, noteID int64) (*entities.Board, error) {
	return r.setNoteBoard(ctx, "BoardRepository.UnlinkNote", ErrUnlinkNote, boardID, noteID, false)
}

// setNoteBoard в одной транзакции блокирует строку доски (обновляя ее updated_at),
// меняет board_id заметки и перечитывает заметки доски.
func (r *BoardRepository) setNoteBoard(ctx context.Context, method, errMsg string, boardID, noteID int64, link bool) (*entities.Board, error) {
	log := logger.Log(ctx).With(zap.String("method", method))
	log.Debug(ctx, "changing note board", zap.Int64("boardID", boardID), zap.Int64("noteID", noteID))

	var board *entities.Board
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var err error
		board, err = scanBoard(tx.QueryRow(ctx,
			`UPDATE board SET updated_at = NOW() WHERE id = $1 RETURNING `+boardColumns,
			boardID,
		))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return entities.ErrBoardNotFound
			}
			return storageError(errMsg, err)
		}

		var query string
		args := []any{noteID}
		if link {
			query = `UPDATE note SET board_id = $2, updated_at = NOW() WHERE id = $1`
			args = append(args, boardID)
		} else {
			query = `UPDATE note SET board_id = NULL, updated_at = NOW() WHERE id = $1`
		}

		result, err := tx.Exec(ctx, query, args...)
		if err != nil {
			if isForeignKeyViolation(err) {
				return entities.ErrBoardNotFound
			}
			return storageError(errMsg, err)
		}
		if result.RowsAffected() == 0 {
			return entities.ErrNoteNotFound
		}

		board.Notes, err = listBoardNotes(ctx, tx, boardID)
		return err
	})
	if err != nil {
		if errors.Is(err, entities.ErrNotFound) {
			log.Debug(ctx, "board or note not found", zap.Error(err))
		} else {
			log.Error(ctx, errMsg, zap.Error(err))
		}
		return nil, err
	}

	return board, nil
}
