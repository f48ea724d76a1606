package repository

import (
	"context"

	"github.com/oksasatya/notes-api/internal/domain/entity"
)

// NoteRepository stores notes. Every read and write is scoped by owner;
// a note owned by someone else behaves as if it did not exist (ErrNotFound).
type NoteRepository interface {
	Create(ctx context.Context, n *entity.Note) error
	ListByUser(ctx context.Context, userID string) ([]entity.Note, error)
	GetByID(ctx context.Context, userID, id string) (*entity.Note, error)
	Update(ctx context.Context, n *entity.Note) error
	Delete(ctx context.Context, userID, id string) error
	Search(ctx context.Context, userID, query string, limit int) ([]entity.Note, error)
}
