package users

import (
	"context"

	"github.com/kotche/noteshare/internal/model"
)

type (
	Repository interface {
		// CreateUser inserts a new user. Returns model.ErrEmailTaken if the
		// email is already registered.
		CreateUser(ctx context.Context, email, passwordDigest string) (*model.User, error)
		// GetByEmail returns model.ErrUserNotFound if no such user exists.
		GetByEmail(ctx context.Context, email string) (*model.User, error)
		UserExists(ctx context.Context, userID model.UserID) (bool, error)
		// DeleteUser removes the user together with every grant naming the
		// user as owner or grantee. Owned notes are removed by the store's
		// cascade rule.
		DeleteUser(ctx context.Context, userID model.UserID) error
	}
)
