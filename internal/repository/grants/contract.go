package grants

import (
	"context"

	"github.com/kotche/noteshare/internal/model"
)

type (
	Repository interface {
		// CreateGrant checks for a duplicate (note, grantee, owner) triple and
		// inserts inside one transaction. The store's unique index on the
		// triple is the true enforcement point; either path surfaces
		// model.ErrGrantExists.
		CreateGrant(ctx context.Context, grant model.AccessGrant) (*model.AccessGrant, error)
		// GetGrant returns model.ErrGrantNotFound if the exact triple is absent.
		GetGrant(ctx context.Context, noteID model.NoteID, granteeID, ownerID model.UserID) (*model.AccessGrant, error)
		DeleteGrant(ctx context.Context, noteID model.NoteID, granteeID, ownerID model.UserID) error
	}
)
