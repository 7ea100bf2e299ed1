package notes

import (
	"context"

	"github.com/kotche/noteshare/internal/model"
)

type (
	Service interface {
		Create(ctx context.Context, ownerID model.UserID, title, content string) (*model.Note, error)
		Get(ctx context.Context, noteID model.NoteID, ownerID model.UserID) (*model.Note, error)
		List(ctx context.Context, ownerID model.UserID) ([]model.Note, error)
		// Update ignores empty patch values: an absent or empty title/content
		// leaves the stored field unchanged.
		Update(ctx context.Context, noteID model.NoteID, ownerID model.UserID, title, content string) (*model.Note, error)
		Delete(ctx context.Context, noteID model.NoteID, ownerID model.UserID) error
	}
)
