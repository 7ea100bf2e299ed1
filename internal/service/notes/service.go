package notes

import (
	"context"

	"github.com/kotche/noteshare/internal/model"
	"github.com/kotche/noteshare/internal/repository/notes"
)

type DefaultService struct {
	repo notes.Repository
}

func NewDefaultService(repo notes.Repository) *DefaultService {
	return &DefaultService{repo: repo}
}

func (d *DefaultService) Create(ctx context.Context, ownerID model.UserID, title, content string) (*model.Note, error) {
	return d.repo.CreateNote(ctx, model.Note{
		OwnerID: ownerID,
		Title:   title,
		Content: content,
	})
}

func (d *DefaultService) Get(ctx context.Context, noteID model.NoteID, ownerID model.UserID) (*model.Note, error) {
	return d.repo.GetNote(ctx, noteID, ownerID)
}

func (d *DefaultService) List(ctx context.Context, ownerID model.UserID) ([]model.Note, error) {
	return d.repo.ListNotes(ctx, ownerID)
}

func (d *DefaultService) Update(ctx context.Context, noteID model.NoteID, ownerID model.UserID, title, content string) (*model.Note, error) {
	return d.repo.UpdateNote(ctx, noteID, ownerID, title, content)
}

func (d *DefaultService) Delete(ctx context.Context, noteID model.NoteID, ownerID model.UserID) error {
	return d.repo.DeleteNote(ctx, noteID, ownerID)
}
