package server_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kotche/noteshare/internal/app/server"
	"github.com/kotche/noteshare/internal/mock"
	auth_serv "github.com/kotche/noteshare/internal/service/auth"
	grants_serv "github.com/kotche/noteshare/internal/service/grants"
	notes_serv "github.com/kotche/noteshare/internal/service/notes"
	token_serv "github.com/kotche/noteshare/internal/service/token"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := mock.NewStore()
	tokens := token_serv.NewJWTService("test-secret", 30*time.Minute, store)
	srv := server.New(
		auth_serv.NewDefaultService(store, tokens),
		notes_serv.NewDefaultService(store),
		grants_serv.NewDefaultService(store, store, store, mock.NewPublisher()),
		tokens,
	)

	return srv.Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func signUpAndLogin(t *testing.T, router *gin.Engine, email string) (int64, string) {
	t.Helper()

	creds := map[string]string{"email": email, "password": "password123"}
	resp := doJSON(t, router, http.MethodPost, "/auth/signup", "", creds)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var user struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &user))

	resp = doJSON(t, router, http.MethodPost, "/auth/login", "", creds)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var token struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &token))
	require.NotEmpty(t, token.AccessToken)
	return user.ID, token.AccessToken
}

func TestShareFlow(t *testing.T) {
	router := newTestRouter(t)

	_, tokenA := signUpAndLogin(t, router, "a@example.com")
	idB, tokenB := signUpAndLogin(t, router, "b@example.com")

	// A creates a note.
	resp := doJSON(t, router, http.MethodPost, "/notes/create", tokenA, map[string]string{
		"title":   "Groceries",
		"content": "milk, eggs",
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var note struct {
		ID      int64 `json:"id"`
		OwnerID int64 `json:"owner_id"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &note))

	// B cannot read it through the owner path.
	resp = doJSON(t, router, http.MethodGet, fmt.Sprintf("/notes/read?id=%d", note.ID), tokenB, nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	// B cannot read it through the sharing path without a grant.
	sharedRead := map[string]int64{"user_id": note.OwnerID, "note_id": note.ID}
	resp = doJSON(t, router, http.MethodPost, "/notes/read-note-with-access", tokenB, sharedRead)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	granteeID := idB

	// A grants B read access.
	resp = doJSON(t, router, http.MethodPost, "/notes/give-read-access", tokenA, map[string]int64{
		"user_id": granteeID,
		"note_id": note.ID,
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	// A second identical grant conflicts.
	resp = doJSON(t, router, http.MethodPost, "/notes/give-read-access", tokenA, map[string]int64{
		"user_id": granteeID,
		"note_id": note.ID,
	})
	assert.Equal(t, http.StatusConflict, resp.Code)

	// B now reads the note content.
	resp = doJSON(t, router, http.MethodPost, "/notes/read-note-with-access", tokenB, sharedRead)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var shared struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &shared))
	assert.Equal(t, "Groceries", shared.Title)
	assert.Equal(t, "milk, eggs", shared.Content)

	// The owner cannot use the sharing path for their own note.
	resp = doJSON(t, router, http.MethodPost, "/notes/read-note-with-access", tokenA, sharedRead)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	// A revokes; B is forbidden again.
	resp = doJSON(t, router, http.MethodDelete, "/notes/revoke-read-access", tokenA, map[string]int64{
		"user_id": granteeID,
		"note_id": note.ID,
	})
	require.Equal(t, http.StatusNoContent, resp.Code)

	resp = doJSON(t, router, http.MethodPost, "/notes/read-note-with-access", tokenB, sharedRead)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestAuthFailures(t *testing.T) {
	router := newTestRouter(t)

	t.Run("duplicate signup conflicts", func(t *testing.T) {
		creds := map[string]string{"email": "dup@example.com", "password": "password123"}
		resp := doJSON(t, router, http.MethodPost, "/auth/signup", "", creds)
		require.Equal(t, http.StatusCreated, resp.Code)

		resp = doJSON(t, router, http.MethodPost, "/auth/signup", "", creds)
		assert.Equal(t, http.StatusConflict, resp.Code)
	})

	t.Run("invalid email is a binding failure", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodPost, "/auth/signup", "", map[string]string{
			"email":    "not-an-email",
			"password": "password123",
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("notes require a token", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodGet, "/notes/read-all", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)

		resp = doJSON(t, router, http.MethodGet, "/notes/read-all", "bogus", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("deleted account invalidates live tokens", func(t *testing.T) {
		_, bearer := signUpAndLogin(t, router, "gone@example.com")

		resp := doJSON(t, router, http.MethodDelete, "/auth/delete", "", map[string]string{
			"email":    "gone@example.com",
			"password": "password123",
		})
		require.Equal(t, http.StatusNoContent, resp.Code)

		resp = doJSON(t, router, http.MethodGet, "/notes/read-all", bearer, nil)
		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestNoteValidation(t *testing.T) {
	router := newTestRouter(t)
	_, bearer := signUpAndLogin(t, router, "v@example.com")

	t.Run("title is required", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodPost, "/notes/create", bearer, map[string]string{
			"content": "no title",
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("title over 50 chars is rejected", func(t *testing.T) {
		long := make([]byte, 51)
		for i := range long {
			long[i] = 'x'
		}
		resp := doJSON(t, router, http.MethodPost, "/notes/create", bearer, map[string]string{
			"title": string(long),
		})
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("bad id query", func(t *testing.T) {
		resp := doJSON(t, router, http.MethodGet, "/notes/read?id=abc", bearer, nil)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}
