package token_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotche/noteshare/internal/mock"
	"github.com/kotche/noteshare/internal/model"
	"github.com/kotche/noteshare/internal/service/token"
)

func TestIssueVerify(t *testing.T) {
	ctx := context.Background()
	store := mock.NewStore()
	user, err := store.CreateUser(ctx, "a@example.com", "digest")
	require.NoError(t, err)

	service := token.NewJWTService("test-secret", 30*time.Minute, store)

	bearer, err := service.Issue(user)
	require.NoError(t, err)

	claims, err := service.Verify(ctx, bearer)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestVerify_Invalid(t *testing.T) {
	ctx := context.Background()
	store := mock.NewStore()
	user, err := store.CreateUser(ctx, "a@example.com", "digest")
	require.NoError(t, err)

	service := token.NewJWTService("test-secret", 30*time.Minute, store)

	t.Run("garbage", func(t *testing.T) {
		_, err := service.Verify(ctx, "not-a-token")
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		other := token.NewJWTService("other-secret", 30*time.Minute, store)
		bearer, err := other.Issue(user)
		require.NoError(t, err)

		_, err = service.Verify(ctx, bearer)
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := token.NewJWTService("test-secret", -time.Minute, store)
		bearer, err := expired.Issue(user)
		require.NoError(t, err)

		_, err = service.Verify(ctx, bearer)
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	})

	t.Run("deleted user fails without a revocation list", func(t *testing.T) {
		bearer, err := service.Issue(user)
		require.NoError(t, err)
		require.NoError(t, store.DeleteUser(ctx, user.ID))

		_, err = service.Verify(ctx, bearer)
		assert.ErrorIs(t, err, model.ErrInvalidToken)
	})
}
