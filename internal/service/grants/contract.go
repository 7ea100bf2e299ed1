package grants

import (
	"context"

	"github.com/kotche/noteshare/internal/model"
)

type (
	Service interface {
		// Grant gives granteeID read access to noteID on behalf of ownerID.
		// Errors: model.ErrSelfGrant, model.ErrUserNotFound,
		// model.ErrNoteNotFound, model.ErrGrantExists.
		Grant(ctx context.Context, ownerID model.UserID, noteID model.NoteID, granteeID model.UserID) (*model.AccessGrant, error)
		// Revoke removes the grant keyed by the exact
		// (noteID, granteeID, ownerID) triple; model.ErrGrantNotFound if absent.
		Revoke(ctx context.Context, ownerID model.UserID, noteID model.NoteID, granteeID model.UserID) error
		// ReadShared returns a note owned by targetOwnerID that callerID was
		// granted read access to. Errors: model.ErrSelfRead,
		// model.ErrUserNotFound, model.ErrNoteNotFound, model.ErrNoAccess.
		ReadShared(ctx context.Context, callerID, targetOwnerID model.UserID, noteID model.NoteID) (*model.Note, error)
	}
)
