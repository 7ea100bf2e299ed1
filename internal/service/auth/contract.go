package auth

import (
	"context"

	"github.com/kotche/noteshare/internal/model"
)

type (
	Service interface {
		// SignUp registers a new user. Returns model.ErrEmailTaken if the
		// email is already registered.
		SignUp(ctx context.Context, email, password string) (*model.User, error)
		// Login verifies the credentials and mints a bearer token. Unknown
		// email and wrong password both return model.ErrInvalidCredentials.
		Login(ctx context.Context, email, password string) (string, error)
		// DeleteAccount re-verifies the credentials, then removes the user,
		// all owned notes and every grant naming the user.
		DeleteAccount(ctx context.Context, email, password string) error
	}
)
