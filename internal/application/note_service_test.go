package application

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/notes-api/internal/domain/entity"
	repo "github.com/oksasatya/notes-api/internal/domain/repository"
	"github.com/oksasatya/notes-api/pkg/helpers"
)

type memNotes struct {
	mu    sync.Mutex
	notes map[string]entity.Note
	seq   int
}

func newMemNotes() *memNotes { return &memNotes{notes: map[string]entity.Note{}} }

func (m *memNotes) Create(_ context.Context, n *entity.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	n.ID = "note-" + strconv.Itoa(m.seq)
	m.notes[n.ID] = *n
	return nil
}

func (m *memNotes) ListByUser(_ context.Context, userID string) ([]entity.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Note
	for _, n := range m.notes {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *memNotes) GetByID(_ context.Context, userID, id string) (*entity.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok || n.UserID != userID {
		return nil, repo.ErrNotFound
	}
	return &n, nil
}

func (m *memNotes) Update(_ context.Context, n *entity.Note) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cur, ok := m.notes[n.ID]
	if !ok || cur.UserID != n.UserID {
		return repo.ErrNotFound
	}
	m.notes[n.ID] = *n
	return nil
}

func (m *memNotes) Delete(_ context.Context, userID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	n, ok := m.notes[id]
	if !ok || n.UserID != userID {
		return repo.ErrNotFound
	}
	delete(m.notes, id)
	return nil
}

func (m *memNotes) Search(_ context.Context, userID, query string, limit int) ([]entity.Note, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []entity.Note
	for _, n := range m.notes {
		if n.UserID == userID && (strings.Contains(n.Title, query) || strings.Contains(n.Content, query)) {
			out = append(out, n)
		}
	}
	return out, nil
}

type mockIndex struct{ mock.Mock }

func (m *mockIndex) Index(ctx context.Context, n *entity.Note) error {
	return m.Called(ctx, n).Error(0)
}

func (m *mockIndex) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockIndex) Search(ctx context.Context, userID, query string, size int) ([]entity.Note, error) {
	args := m.Called(ctx, userID, query, size)
	notes, _ := args.Get(0).([]entity.Note)
	return notes, args.Error(1)
}

func TestNotes_CRUDScopedByOwner(t *testing.T) {
	svc := NewNoteService(newMemNotes(), nil, helpers.NewDiscardLogger())
	ctx := context.Background()

	n, err := svc.Create(ctx, "ann", NoteInput{Title: "groceries", Content: "milk"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, "bob", n.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
	_, err = svc.Update(ctx, "bob", n.ID, NoteInput{Title: "mine"})
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, "bob", n.ID), ErrNoteNotFound)

	updated, err := svc.Update(ctx, "ann", n.ID, NoteInput{Content: "oat milk"})
	require.NoError(t, err)
	assert.Equal(t, "groceries", updated.Title)
	assert.Equal(t, "oat milk", updated.Content)

	list, err := svc.List(ctx, "ann")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.Delete(ctx, "ann", n.ID))
	_, err = svc.Get(ctx, "ann", n.ID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNotes_CreateRequiresFields(t *testing.T) {
	svc := NewNoteService(newMemNotes(), nil, nil)

	_, err := svc.Create(context.Background(), "ann", NoteInput{Title: "only title"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, map[string]string{"content": "is required"}, verr.Fields)
}

func TestNotes_IndexKeptInSync(t *testing.T) {
	idx := &mockIndex{}
	svc := NewNoteService(newMemNotes(), idx, helpers.NewDiscardLogger())
	ctx := context.Background()

	idx.On("Index", mock.Anything, mock.AnythingOfType("*entity.Note")).Return(nil).Twice()
	idx.On("Delete", mock.Anything, "note-1").Return(errors.New("es down")).Once()

	n, err := svc.Create(ctx, "ann", NoteInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, "ann", n.ID, NoteInput{Title: "t2"})
	require.NoError(t, err)
	assert.NoError(t, svc.Delete(ctx, "ann", n.ID), "index failures are not fatal")

	idx.AssertExpectations(t)
}

func TestNotes_SearchFallsBackToDatabase(t *testing.T) {
	idx := &mockIndex{}
	notes := newMemNotes()
	svc := NewNoteService(notes, idx, helpers.NewDiscardLogger())
	ctx := context.Background()
	require.NoError(t, notes.Create(ctx, &entity.Note{UserID: "ann", Title: "trip", Content: "pack socks"}))

	idx.On("Search", mock.Anything, "ann", "socks", defaultSearchSize).Return(nil, errors.New("es down")).Once()
	idx.On("Search", mock.Anything, "ann", "trip", 5).Return([]entity.Note{{ID: "from-index"}}, nil).Once()

	got, err := svc.Search(ctx, "ann", "socks", 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "trip", got[0].Title)

	got, err = svc.Search(ctx, "ann", "trip", 5)
	require.NoError(t, err)
	assert.Equal(t, "from-index", got[0].ID)

	_, err = svc.Search(ctx, "ann", "", 5)
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
	idx.AssertExpectations(t)
}
