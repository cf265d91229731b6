package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"noteboard/internal/noteboard/domain/entities"
	"noteboard/pkg/logger"
)

var (
	errDatabaseConnection = errors.New("database connection failed")
	fixedTime             = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

var (
	noteCols  = []string{"id", "text", "board_id", "views_count", "created_at", "updated_at"}
	boardCols = []string{"id", "name", "created_at", "updated_at"}
)

func testContext(t *testing.T) context.Context {
	t.Helper()
	testLogger, err := logger.NewLogger(logger.Development, "debug")
	require.NoError(t, err)
	return logger.NewContext(context.Background(), testLogger)
}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock
}

func noteRows(notes ...*entities.Note) *pgxmock.Rows {
	rows := pgxmock.NewRows(noteCols)
	for _, n := range notes {
		rows.AddRow(n.ID, n.Text, n.BoardID, n.ViewsCount, n.CreatedAt, n.UpdatedAt)
	}
	return rows
}

func boardRow(b *entities.Board) *pgxmock.Rows {
	return pgxmock.NewRows(boardCols).AddRow(b.ID, b.Name, b.CreatedAt, b.UpdatedAt)
}

func int64Ptr(v int64) *int64 { return &v }

func stringPtr(v string) *string { return &v }

func hasNote(board *entities.Board, noteID int64) bool {
	for _, n := range board.Notes {
		if n.ID == noteID {
			return true
		}
	}
	return false
}
