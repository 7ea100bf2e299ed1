package grants

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/kotche/noteshare/internal/model"
	grants_repo "github.com/kotche/noteshare/internal/repository/grants"
	notes_repo "github.com/kotche/noteshare/internal/repository/notes"
	users_repo "github.com/kotche/noteshare/internal/repository/users"
	"github.com/kotche/noteshare/internal/service/events"
)

const (
	eventGranted = "share.granted"
	eventRevoked = "share.revoked"
)

type DefaultService struct {
	users     users_repo.Repository
	notes     notes_repo.Repository
	grants    grants_repo.Repository
	publisher events.Publisher
}

func NewDefaultService(
	users users_repo.Repository,
	notes notes_repo.Repository,
	grants grants_repo.Repository,
	publisher events.Publisher,
) *DefaultService {
	return &DefaultService{
		users:     users,
		notes:     notes,
		grants:    grants,
		publisher: publisher,
	}
}

func (d *DefaultService) Grant(ctx context.Context, ownerID model.UserID, noteID model.NoteID, granteeID model.UserID) (*model.AccessGrant, error) {
	if granteeID == ownerID {
		return nil, model.ErrSelfGrant
	}

	exists, err := d.users.UserExists(ctx, granteeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	// The note is resolved by id only, without an ownership predicate, and
	// the ledger row stores the caller's id as note_owner_id. A caller can
	// therefore record a grant on a note they do not own; ReadShared
	// re-validates against the live note row, so such a row never serves
	// content. Known inconsistency, kept until resolved deliberately.
	if _, err = d.notes.GetNoteByID(ctx, noteID); err != nil {
		return nil, err
	}

	grant, err := d.grants.CreateGrant(ctx, model.AccessGrant{
		UserID:      granteeID,
		NoteOwnerID: ownerID,
		NoteID:      noteID,
	})
	if err != nil {
		return nil, err
	}

	d.publish(ctx, eventGranted, grant)

	return grant, nil
}

func (d *DefaultService) Revoke(ctx context.Context, ownerID model.UserID, noteID model.NoteID, granteeID model.UserID) error {
	if err := d.grants.DeleteGrant(ctx, noteID, granteeID, ownerID); err != nil {
		return err
	}

	d.publish(ctx, eventRevoked, &model.AccessGrant{
		UserID:      granteeID,
		NoteOwnerID: ownerID,
		NoteID:      noteID,
	})

	return nil
}

func (d *DefaultService) ReadShared(ctx context.Context, callerID, targetOwnerID model.UserID, noteID model.NoteID) (*model.Note, error) {
	if targetOwnerID == callerID {
		return nil, model.ErrSelfRead
	}

	exists, err := d.users.UserExists(ctx, targetOwnerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.ErrUserNotFound
	}

	if _, err = d.notes.GetNoteByID(ctx, noteID); err != nil {
		return nil, err
	}

	if _, err = d.grants.GetGrant(ctx, noteID, callerID, targetOwnerID); err != nil {
		if errors.Is(err, model.ErrGrantNotFound) {
			return nil, model.ErrNoAccess
		}
		return nil, err
	}

	// The grant's owner id is denormalized and may be stale; only the live
	// note row filtered by the named owner is allowed to serve content.
	return d.notes.GetNote(ctx, noteID, targetOwnerID)
}

func (d *DefaultService) publish(ctx context.Context, event string, grant *model.AccessGrant) {
	payload, err := json.Marshal(struct {
		Event       string       `json:"event"`
		NoteID      model.NoteID `json:"note_id"`
		NoteOwnerID model.UserID `json:"note_owner_id"`
		UserID      model.UserID `json:"user_id"`
	}{
		Event:       event,
		NoteID:      grant.NoteID,
		NoteOwnerID: grant.NoteOwnerID,
		UserID:      grant.UserID,
	})
	if err != nil {
		log.Printf("failed to marshal %s event: %v", event, err)
		return
	}

	// Best effort: the store is the source of truth for grant state.
	key := []byte(fmt.Sprintf("%d", grant.NoteID))
	if err = d.publisher.Publish(ctx, key, payload); err != nil {
		log.Printf("failed to publish %s event for note '%d': %v", event, grant.NoteID, err)
	}
}
