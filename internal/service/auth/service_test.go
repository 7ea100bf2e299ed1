package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotche/noteshare/internal/mock"
	"github.com/kotche/noteshare/internal/model"
	"github.com/kotche/noteshare/internal/service/auth"
	"github.com/kotche/noteshare/internal/service/token"
)

func newService(store *mock.Store) *auth.DefaultService {
	tokens := token.NewJWTService("test-secret", 30*time.Minute, store)
	return auth.NewDefaultService(store, tokens)
}

func TestSignUp(t *testing.T) {
	ctx := context.Background()
	store := mock.NewStore()
	service := newService(store)

	user, err := service.SignUp(ctx, "a@example.com", "password123")
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "password123", user.Password, "raw password must never be stored")
	assert.True(t, auth.VerifyPassword("password123", user.Password))

	_, err = service.SignUp(ctx, "a@example.com", "other-password")
	assert.ErrorIs(t, err, model.ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	store := mock.NewStore()
	service := newService(store)

	_, err := service.SignUp(ctx, "a@example.com", "password123")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		bearer, err := service.Login(ctx, "a@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, bearer)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		_, unknownErr := service.Login(ctx, "nobody@example.com", "password123")
		_, wrongErr := service.Login(ctx, "a@example.com", "wrong")

		assert.ErrorIs(t, unknownErr, model.ErrInvalidCredentials)
		assert.ErrorIs(t, wrongErr, model.ErrInvalidCredentials)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())
	})
}

func TestDeleteAccount(t *testing.T) {
	ctx := context.Background()
	store := mock.NewStore()
	service := newService(store)

	user, err := service.SignUp(ctx, "a@example.com", "password123")
	require.NoError(t, err)
	note, err := store.CreateNote(ctx, model.Note{OwnerID: user.ID, Title: "t"})
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		err := service.DeleteAccount(ctx, "a@example.com", "wrong")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("cascade", func(t *testing.T) {
		require.NoError(t, service.DeleteAccount(ctx, "a@example.com", "password123"))

		exists, err := store.UserExists(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, exists)

		_, err = store.GetNoteByID(ctx, note.ID)
		assert.ErrorIs(t, err, model.ErrNoteNotFound)
	})
}

func TestHashPassword(t *testing.T) {
	digest, err := auth.HashPassword("secret")
	require.NoError(t, err)

	other, err := auth.HashPassword("secret")
	require.NoError(t, err)
	assert.NotEqual(t, digest, other, "digests must be salted")

	assert.True(t, auth.VerifyPassword("secret", digest))
	assert.False(t, auth.VerifyPassword("Secret", digest))

	// Longer than bcrypt's 72-byte limit still round-trips via the sha256 pre-digest.
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	longDigest, err := auth.HashPassword(string(long))
	require.NoError(t, err)
	assert.True(t, auth.VerifyPassword(string(long), longDigest))
}
