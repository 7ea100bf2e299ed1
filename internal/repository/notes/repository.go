package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/Masterminds/squirrel"

	"github.com/kotche/noteshare/infrastructure/tracing"
	"github.com/kotche/noteshare/internal/model"
)

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(pg *sql.DB) *DefaultRepository {
	return &DefaultRepository{pg}
}

func (d *DefaultRepository) CreateNote(ctx context.Context, note model.Note) (*model.Note, error) {
	query := `
		INSERT INTO notes (owner_id, title, content, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	created := note
	err := d.db.QueryRowContext(ctx, query, note.OwnerID, note.Title, note.Content).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create note for user '%d': %w", note.OwnerID, err)
	}

	return &created, nil
}

func (d *DefaultRepository) GetNote(ctx context.Context, noteID model.NoteID, ownerID model.UserID) (*model.Note, error) {
	note := &model.Note{}
	var content sql.NullString
	query := `
		SELECT id, owner_id, title, content, created_at, updated_at
		FROM notes
		WHERE id = $1 AND owner_id = $2
	`
	err := d.db.QueryRowContext(ctx, query, noteID, ownerID).
		Scan(&note.ID, &note.OwnerID, &note.Title, &content, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note '%d' for user '%d': %w", noteID, ownerID, err)
	}
	note.Content = content.String
	return note, nil
}

func (d *DefaultRepository) GetNoteByID(ctx context.Context, noteID model.NoteID) (*model.Note, error) {
	note := &model.Note{}
	var content sql.NullString
	query := `
		SELECT id, owner_id, title, content, created_at, updated_at
		FROM notes
		WHERE id = $1
	`
	err := d.db.QueryRowContext(ctx, query, noteID).
		Scan(&note.ID, &note.OwnerID, &note.Title, &content, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to get note '%d': %w", noteID, err)
	}
	note.Content = content.String
	return note, nil
}

func (d *DefaultRepository) ListNotes(ctx context.Context, ownerID model.UserID) ([]model.Note, error) {
	ctx, span := tracing.StartSpan(ctx, "ListNotes_repo")
	defer span.End()

	queryBuilder := squirrel.
		Select("id",
			"owner_id",
			"title",
			"content",
			"created_at",
			"updated_at").
		From("notes").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at").
		PlaceholderFormat(squirrel.Dollar)

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer rows.Close()

	var notes []model.Note
	for rows.Next() {
		var (
			note    model.Note
			content sql.NullString
		)
		if err = rows.Scan(&note.ID, &note.OwnerID, &note.Title, &content, &note.CreatedAt, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		note.Content = content.String
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

func (d *DefaultRepository) UpdateNote(ctx context.Context, noteID model.NoteID, ownerID model.UserID, title, content string) (*model.Note, error) {
	// Empty patch values fall back to the stored column, so a field can never
	// be blanked through update. One statement keeps the ownership check and
	// the write atomic.
	query := `
		UPDATE notes
		SET title      = COALESCE(NULLIF($3, ''), title),
		    content    = COALESCE(NULLIF($4, ''), content),
		    updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, content, created_at, updated_at
	`

	note := &model.Note{}
	var updatedContent sql.NullString
	err := d.db.QueryRowContext(ctx, query, noteID, ownerID, title, content).
		Scan(&note.ID, &note.OwnerID, &note.Title, &updatedContent, &note.CreatedAt, &note.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNoteNotFound
		}
		return nil, fmt.Errorf("failed to update note '%d' for user '%d': %w", noteID, ownerID, err)
	}
	note.Content = updatedContent.String

	return note, nil
}

func (d *DefaultRepository) DeleteNote(ctx context.Context, noteID model.NoteID, ownerID model.UserID) error {
	query := `DELETE FROM notes WHERE id = $1 AND owner_id = $2`

	result, err := d.db.ExecContext(ctx, query, noteID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete note '%d' for user '%d': %w", noteID, ownerID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrNoteNotFound
	}

	return nil
}
