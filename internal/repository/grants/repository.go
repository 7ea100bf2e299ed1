package grants

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/kotche/noteshare/infrastructure/tracing"
	"github.com/kotche/noteshare/internal/model"
)

const uniqueViolation = "23505"

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(pg *sql.DB) *DefaultRepository {
	return &DefaultRepository{pg}
}

func (d *DefaultRepository) CreateGrant(ctx context.Context, grant model.AccessGrant) (*model.AccessGrant, error) {
	ctx, span := tracing.StartSpan(ctx, "CreateGrant_repo")
	defer span.End()

	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM note_read_access
			WHERE note_id = $1 AND user_id = $2 AND note_owner_id = $3
		)
	`
	err = tx.QueryRowContext(ctx, query, grant.NoteID, grant.UserID, grant.NoteOwnerID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check grant exists: %w", err)
	}
	if exists {
		return nil, model.ErrGrantExists
	}

	created := grant
	query = `
		INSERT INTO note_read_access (user_id, note_owner_id, note_id, granted_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, granted_at
	`
	err = tx.QueryRowContext(ctx, query, grant.UserID, grant.NoteOwnerID, grant.NoteID).
		Scan(&created.ID, &created.GrantedAt)
	if err != nil {
		// Two concurrent grants can both pass the check above; the unique
		// index decides the loser.
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, model.ErrGrantExists
		}
		return nil, fmt.Errorf("failed to create grant for note '%d': %w", grant.NoteID, err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit grant for note '%d': %w", grant.NoteID, err)
	}

	return &created, nil
}

func (d *DefaultRepository) GetGrant(ctx context.Context, noteID model.NoteID, granteeID, ownerID model.UserID) (*model.AccessGrant, error) {
	grant := &model.AccessGrant{}
	query := `
		SELECT id, user_id, note_owner_id, note_id, granted_at
		FROM note_read_access
		WHERE note_id = $1 AND user_id = $2 AND note_owner_id = $3
	`
	err := d.db.QueryRowContext(ctx, query, noteID, granteeID, ownerID).
		Scan(&grant.ID, &grant.UserID, &grant.NoteOwnerID, &grant.NoteID, &grant.GrantedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrGrantNotFound
		}
		return nil, fmt.Errorf("failed to get grant for note '%d': %w", noteID, err)
	}
	return grant, nil
}

func (d *DefaultRepository) DeleteGrant(ctx context.Context, noteID model.NoteID, granteeID, ownerID model.UserID) error {
	query := `
		DELETE FROM note_read_access
		WHERE note_id = $1 AND user_id = $2 AND note_owner_id = $3
	`

	result, err := d.db.ExecContext(ctx, query, noteID, granteeID, ownerID)
	if err != nil {
		return fmt.Errorf("failed to delete grant for note '%d': %w", noteID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return model.ErrGrantNotFound
	}

	return nil
}
