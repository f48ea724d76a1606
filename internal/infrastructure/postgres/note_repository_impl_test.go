package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/notes-api/internal/domain/entity"
	"github.com/oksasatya/notes-api/internal/domain/repository"
)

var noteCols = []string{"id", "user_id", "title", "content", "created_at", "updated_at"}

func TestNoteRepository_CreateAndList(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO notes`).
		WithArgs("u-1", "groceries", "milk").
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("n-1", now, now))
	mock.ExpectQuery(`SELECT (.+) FROM notes\s+WHERE user_id = \$1`).
		WithArgs("u-1").
		WillReturnRows(pgxmock.NewRows(noteCols).
			AddRow("n-1", "u-1", "groceries", "milk", now, now).
			AddRow("n-0", "u-1", "todo", "call bob", now, now))

	n := &entity.Note{UserID: "u-1", Title: "groceries", Content: "milk"}
	require.NoError(t, repo.Create(context.Background(), n))
	assert.Equal(t, "n-1", n.ID)

	notes, err := repo.ListByUser(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "todo", notes[1].Title)
}

func TestNoteRepository_ScopedByOwner(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)

	mock.ExpectQuery(`WHERE id = \$1 AND user_id = \$2`).
		WithArgs("n-1", "intruder").
		WillReturnRows(pgxmock.NewRows(noteCols))
	mock.ExpectExec(`DELETE FROM notes`).
		WithArgs("n-1", "intruder").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectQuery(`UPDATE notes`).
		WithArgs("t", "c", "n-1", "intruder").
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}))

	_, err := repo.GetByID(context.Background(), "intruder", "n-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(context.Background(), "intruder", "n-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Update(context.Background(), &entity.Note{ID: "n-1", UserID: "intruder", Title: "t", Content: "c"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestNoteRepository_Search(t *testing.T) {
	mock := newMock(t)
	repo := NewNoteRepository(mock)

	mock.ExpectQuery(`ILIKE`).
		WithArgs("u-1", `%50\% off%`, 10).
		WillReturnRows(pgxmock.NewRows(noteCols))

	notes, err := repo.Search(context.Background(), "u-1", "50% off", 10)
	require.NoError(t, err)
	assert.Empty(t, notes)
}
