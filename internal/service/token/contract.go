package token

import (
	"context"

	"github.com/kotche/noteshare/internal/model"
)

type Claims struct {
	UserID model.UserID
	Email  string
}

type (
	Service interface {
		// Issue mints a bearer token carrying the user's id and email with a
		// fixed validity window from issuance time.
		Issue(user *model.User) (string, error)
		// Verify returns model.ErrInvalidToken if the signature is invalid,
		// the claims are malformed, the token has expired, or the referenced
		// user no longer exists.
		Verify(ctx context.Context, bearer string) (*Claims, error)
	}
)
