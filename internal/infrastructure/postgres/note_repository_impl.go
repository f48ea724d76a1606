package postgres

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/oksasatya/notes-api/internal/domain/entity"
	"github.com/oksasatya/notes-api/internal/domain/repository"
)

type NoteRepository struct {
	db DBTX
}

func NewNoteRepository(db DBTX) *NoteRepository {
	return &NoteRepository{db: db}
}

const noteColumns = `id, user_id, title, content, created_at, updated_at`

func (r *NoteRepository) Create(ctx context.Context, n *entity.Note) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO notes (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, n.UserID, n.Title, n.Content).Scan(&n.ID, &n.CreatedAt, &n.UpdatedAt)
}

func (r *NoteRepository) ListByUser(ctx context.Context, userID string) ([]entity.Note, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	return scanNotes(rows)
}

func (r *NoteRepository) GetByID(ctx context.Context, userID, id string) (*entity.Note, error) {
	n := &entity.Note{}
	err := r.db.QueryRow(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE id = $1 AND user_id = $2
	`, id, userID).Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

func (r *NoteRepository) Update(ctx context.Context, n *entity.Note) error {
	err := r.db.QueryRow(ctx, `
		UPDATE notes
		SET title = $1, content = $2, updated_at = now()
		WHERE id = $3 AND user_id = $4
		RETURNING updated_at
	`, n.Title, n.Content, n.ID, n.UserID).Scan(&n.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return repository.ErrNotFound
	}
	return err
}

func (r *NoteRepository) Delete(ctx context.Context, userID, id string) error {
	res, err := r.db.Exec(ctx, `DELETE FROM notes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// Search is the fallback used when no search index is configured
func (r *NoteRepository) Search(ctx context.Context, userID, query string, limit int) ([]entity.Note, error) {
	pattern := "%" + escapeLike(query) + "%"
	rows, err := r.db.Query(ctx, `
		SELECT `+noteColumns+`
		FROM notes
		WHERE user_id = $1 AND (title ILIKE $2 OR content ILIKE $2)
		ORDER BY updated_at DESC
		LIMIT $3
	`, userID, pattern, limit)
	if err != nil {
		return nil, err
	}
	return scanNotes(rows)
}

func scanNotes(rows pgx.Rows) ([]entity.Note, error) {
	defer rows.Close()
	out := make([]entity.Note, 0)
	for rows.Next() {
		var n entity.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string { return likeEscaper.Replace(s) }

var _ repository.NoteRepository = (*NoteRepository)(nil)
