package server

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kotche/noteshare/internal/model"
)

type userResponse struct {
	ID        model.UserID `json:"id"`
	Email     string       `json:"email"`
	CreatedAt time.Time    `json:"created_at"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type noteResponse struct {
	ID        model.NoteID `json:"id"`
	OwnerID   model.UserID `json:"owner_id"`
	Title     string       `json:"title"`
	Content   string       `json:"content,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type grantResponse struct {
	UserID      model.UserID `json:"user_id"`
	NoteOwnerID model.UserID `json:"note_owner_id"`
	NoteID      model.NoteID `json:"note_id"`
	GrantedAt   time.Time    `json:"granted_at"`
}

func newNoteResponse(note *model.Note) noteResponse {
	return noteResponse{
		ID:        note.ID,
		OwnerID:   note.OwnerID,
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

// statusFromError maps the sentinel taxonomy to HTTP statuses. Ownership
// failures on notes surface as 404 (the predicate excludes the row), while a
// missing grant on the shared-read path is an explicit 403.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrSelfGrant), errors.Is(err, model.ErrSelfRead):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrInvalidCredentials), errors.Is(err, model.ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrNoAccess):
		return http.StatusForbidden
	case errors.Is(err, model.ErrUserNotFound),
		errors.Is(err, model.ErrNoteNotFound),
		errors.Is(err, model.ErrGrantNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrEmailTaken), errors.Is(err, model.ErrGrantExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		c.AbortWithStatusJSON(status, gin.H{"detail": "internal server error"})
		return
	}

	c.AbortWithStatusJSON(status, gin.H{"detail": err.Error()})
}

func abortBadRequest(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
}
