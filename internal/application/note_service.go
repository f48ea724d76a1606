package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/notes-api/internal/domain/entity"
	repo "github.com/oksasatya/notes-api/internal/domain/repository"
)

// NoteIndex is an optional full-text index kept in sync with the notes table
type NoteIndex interface {
	Index(ctx context.Context, n *entity.Note) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, userID, query string, size int) ([]entity.Note, error)
}

type NoteService struct {
	Repo   repo.NoteRepository
	Index  NoteIndex // nil falls back to the repository search
	Logger *logrus.Logger
}

func NewNoteService(r repo.NoteRepository, index NoteIndex, logger *logrus.Logger) *NoteService {
	return &NoteService{Repo: r, Index: index, Logger: logger}
}

type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

const defaultSearchSize = 20

func (s *NoteService) Create(ctx context.Context, userID string, in NoteInput) (*entity.Note, error) {
	if in.Title == "" || in.Content == "" {
		fields := map[string]string{}
		if in.Title == "" {
			fields["title"] = "is required"
		}
		if in.Content == "" {
			fields["content"] = "is required"
		}
		return nil, &ValidationError{Fields: fields}
	}
	n := &entity.Note{UserID: userID, Title: in.Title, Content: in.Content}
	if err := s.Repo.Create(ctx, n); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	s.index(ctx, n)
	return n, nil
}

func (s *NoteService) List(ctx context.Context, userID string) ([]entity.Note, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *NoteService) Get(ctx context.Context, userID, id string) (*entity.Note, error) {
	n, err := s.Repo.GetByID(ctx, userID, id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNoteNotFound
	}
	return n, err
}

// Update keeps the stored title or content when the input leaves it empty
func (s *NoteService) Update(ctx context.Context, userID, id string, in NoteInput) (*entity.Note, error) {
	n, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if in.Title != "" {
		n.Title = in.Title
	}
	if in.Content != "" {
		n.Content = in.Content
	}
	if err := s.Repo.Update(ctx, n); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNoteNotFound
		}
		return nil, fmt.Errorf("update note: %w", err)
	}
	s.index(ctx, n)
	return n, nil
}

func (s *NoteService) Delete(ctx context.Context, userID, id string) error {
	if err := s.Repo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNoteNotFound
		}
		return fmt.Errorf("delete note: %w", err)
	}
	if s.Index != nil {
		if err := s.Index.Delete(ctx, id); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("note_id", id).Warn("note unindex failed")
		}
	}
	return nil
}

// Search prefers the index and falls back to the database when the index
// is missing or failing.
func (s *NoteService) Search(ctx context.Context, userID, query string, size int) ([]entity.Note, error) {
	if query == "" {
		return nil, newValidationError("q", "is required")
	}
	if size <= 0 || size > 50 {
		size = defaultSearchSize
	}
	if s.Index != nil {
		notes, err := s.Index.Search(ctx, userID, query, size)
		if err == nil {
			return notes, nil
		}
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("note index search failed, using database")
		}
	}
	return s.Repo.Search(ctx, userID, query, size)
}

func (s *NoteService) index(ctx context.Context, n *entity.Note) {
	if s.Index == nil {
		return
	}
	if err := s.Index.Index(ctx, n); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("note_id", n.ID).Warn("note index failed")
	}
}
