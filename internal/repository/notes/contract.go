package notes

import (
	"context"

	"github.com/kotche/noteshare/internal/model"
)

type (
	Repository interface {
		CreateNote(ctx context.Context, note model.Note) (*model.Note, error)
		// GetNote resolves a note by id and owner in a single predicate, so a
		// note owned by someone else is indistinguishable from a missing one.
		GetNote(ctx context.Context, noteID model.NoteID, ownerID model.UserID) (*model.Note, error)
		// GetNoteByID resolves a note by id only, without the ownership predicate.
		GetNoteByID(ctx context.Context, noteID model.NoteID) (*model.Note, error)
		ListNotes(ctx context.Context, ownerID model.UserID) ([]model.Note, error)
		// UpdateNote applies a partial update under the same id+owner predicate
		// as GetNote. An empty title or content leaves the stored value
		// unchanged; updated_at is refreshed on every successful update.
		UpdateNote(ctx context.Context, noteID model.NoteID, ownerID model.UserID, title, content string) (*model.Note, error)
		DeleteNote(ctx context.Context, noteID model.NoteID, ownerID model.UserID) error
	}
)
