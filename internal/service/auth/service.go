package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/kotche/noteshare/internal/model"
	"github.com/kotche/noteshare/internal/repository/users"
	"github.com/kotche/noteshare/internal/service/token"
)

type DefaultService struct {
	repo   users.Repository
	tokens token.Service
}

func NewDefaultService(repo users.Repository, tokens token.Service) *DefaultService {
	return &DefaultService{
		repo:   repo,
		tokens: tokens,
	}
}

func (d *DefaultService) SignUp(ctx context.Context, email, password string) (*model.User, error) {
	digest, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to sign up '%s': %w", email, err)
	}

	// The unique index on users.email is the guard against concurrent
	// signups; the repository maps it to model.ErrEmailTaken.
	return d.repo.CreateUser(ctx, email, digest)
}

func (d *DefaultService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := d.authenticate(ctx, email, password)
	if err != nil {
		return "", err
	}

	return d.tokens.Issue(user)
}

func (d *DefaultService) DeleteAccount(ctx context.Context, email, password string) error {
	user, err := d.authenticate(ctx, email, password)
	if err != nil {
		return err
	}

	return d.repo.DeleteUser(ctx, user.ID)
}

// authenticate returns the same error for an unknown email and a wrong
// password, so callers cannot probe which emails are registered.
func (d *DefaultService) authenticate(ctx context.Context, email, password string) (*model.User, error) {
	user, err := d.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, model.ErrInvalidCredentials
		}
		return nil, err
	}

	if !VerifyPassword(password, user.Password) {
		return nil, model.ErrInvalidCredentials
	}

	return user, nil
}
