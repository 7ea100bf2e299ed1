package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/kotche/noteshare/internal/model"
)

const uniqueViolation = "23505"

type DefaultRepository struct {
	db *sql.DB
}

func NewDefaultRepository(pg *sql.DB) *DefaultRepository {
	return &DefaultRepository{pg}
}

func (d *DefaultRepository) CreateUser(ctx context.Context, email, passwordDigest string) (*model.User, error) {
	user := &model.User{Email: email, Password: passwordDigest}
	query := `
		INSERT INTO users (email, password, created_at)
		VALUES ($1, $2, NOW())
		RETURNING id, created_at
	`

	err := d.db.QueryRowContext(ctx, query, email, passwordDigest).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, model.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user '%s': %w", email, err)
	}

	return user, nil
}

func (d *DefaultRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT id, email, password, created_at FROM users WHERE email = $1`
	err := d.db.QueryRowContext(ctx, query, email).Scan(&user.ID, &user.Email, &user.Password, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (d *DefaultRepository) UserExists(ctx context.Context, userID model.UserID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`
	err := d.db.QueryRowContext(ctx, query, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to get user '%d' exists: %w", userID, err)
	}
	return exists, nil
}

func (d *DefaultRepository) DeleteUser(ctx context.Context, userID model.UserID) error {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	// note_read_access carries no foreign keys, so grants naming the user as
	// owner or grantee are purged here. Owned notes go via the FK cascade.
	query := `DELETE FROM note_read_access WHERE user_id = $1 OR note_owner_id = $1`
	if _, err = tx.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to purge grants for user '%d': %w", userID, err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete user '%d': %w", userID, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit user '%d' delete: %w", userID, err)
	}

	return nil
}
