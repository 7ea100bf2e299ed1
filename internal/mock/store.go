// Package mock provides an in-memory store implementing the repository
// contracts for tests.
package mock

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/kotche/noteshare/internal/model"
	grants_repo "github.com/kotche/noteshare/internal/repository/grants"
	notes_repo "github.com/kotche/noteshare/internal/repository/notes"
	users_repo "github.com/kotche/noteshare/internal/repository/users"
)

var (
	_ users_repo.Repository  = (*Store)(nil)
	_ notes_repo.Repository  = (*Store)(nil)
	_ grants_repo.Repository = (*Store)(nil)
)

type Store struct {
	mu sync.Mutex

	userSeq  model.UserID
	noteSeq  model.NoteID
	grantSeq model.GrantID

	users  map[model.UserID]model.User
	notes  map[model.NoteID]model.Note
	grants map[model.GrantID]model.AccessGrant
}

func NewStore() *Store {
	return &Store{
		users:  make(map[model.UserID]model.User),
		notes:  make(map[model.NoteID]model.Note),
		grants: make(map[model.GrantID]model.AccessGrant),
	}
}

func (s *Store) CreateUser(_ context.Context, email, passwordDigest string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			return nil, model.ErrEmailTaken
		}
	}

	s.userSeq++
	user := model.User{
		ID:        s.userSeq,
		Email:     email,
		Password:  passwordDigest,
		CreatedAt: time.Now(),
	}
	s.users[user.ID] = user

	return &user, nil
}

func (s *Store) GetByEmail(_ context.Context, email string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (s *Store) UserExists(_ context.Context, userID model.UserID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.users[userID]
	return ok, nil
}

func (s *Store) DeleteUser(_ context.Context, userID model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.users, userID)
	for id, note := range s.notes {
		if note.OwnerID == userID {
			delete(s.notes, id)
		}
	}
	for id, grant := range s.grants {
		if grant.UserID == userID || grant.NoteOwnerID == userID {
			delete(s.grants, id)
		}
	}
	return nil
}

func (s *Store) CreateNote(_ context.Context, note model.Note) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.noteSeq++
	note.ID = s.noteSeq
	note.CreatedAt = time.Now()
	note.UpdatedAt = note.CreatedAt
	s.notes[note.ID] = note

	return &note, nil
}

func (s *Store) GetNote(_ context.Context, noteID model.NoteID, ownerID model.UserID) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[noteID]
	if !ok || note.OwnerID != ownerID {
		return nil, model.ErrNoteNotFound
	}
	return &note, nil
}

func (s *Store) GetNoteByID(_ context.Context, noteID model.NoteID) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[noteID]
	if !ok {
		return nil, model.ErrNoteNotFound
	}
	return &note, nil
}

func (s *Store) ListNotes(_ context.Context, ownerID model.UserID) ([]model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var notes []model.Note
	for _, note := range s.notes {
		if note.OwnerID == ownerID {
			notes = append(notes, note)
		}
	}
	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })

	return notes, nil
}

func (s *Store) UpdateNote(_ context.Context, noteID model.NoteID, ownerID model.UserID, title, content string) (*model.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[noteID]
	if !ok || note.OwnerID != ownerID {
		return nil, model.ErrNoteNotFound
	}

	// Same policy as the SQL implementation: empty patches keep the stored value.
	if title != "" {
		note.Title = title
	}
	if content != "" {
		note.Content = content
	}
	now := time.Now()
	if !now.After(note.UpdatedAt) {
		now = note.UpdatedAt.Add(time.Nanosecond)
	}
	note.UpdatedAt = now
	s.notes[noteID] = note

	return &note, nil
}

func (s *Store) DeleteNote(_ context.Context, noteID model.NoteID, ownerID model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[noteID]
	if !ok || note.OwnerID != ownerID {
		return model.ErrNoteNotFound
	}
	delete(s.notes, noteID)

	return nil
}

func (s *Store) CreateGrant(_ context.Context, grant model.AccessGrant) (*model.AccessGrant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.grants {
		if existing.NoteID == grant.NoteID &&
			existing.UserID == grant.UserID &&
			existing.NoteOwnerID == grant.NoteOwnerID {
			return nil, model.ErrGrantExists
		}
	}

	s.grantSeq++
	grant.ID = s.grantSeq
	grant.GrantedAt = time.Now()
	s.grants[grant.ID] = grant

	return &grant, nil
}

func (s *Store) GetGrant(_ context.Context, noteID model.NoteID, granteeID, ownerID model.UserID) (*model.AccessGrant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, grant := range s.grants {
		if grant.NoteID == noteID && grant.UserID == granteeID && grant.NoteOwnerID == ownerID {
			g := grant
			return &g, nil
		}
	}
	return nil, model.ErrGrantNotFound
}

func (s *Store) DeleteGrant(_ context.Context, noteID model.NoteID, granteeID, ownerID model.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, grant := range s.grants {
		if grant.NoteID == noteID && grant.UserID == granteeID && grant.NoteOwnerID == ownerID {
			delete(s.grants, id)
			return nil
		}
	}
	return model.ErrGrantNotFound
}
