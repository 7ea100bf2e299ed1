package model

import "time"

type (
	UserID  int64
	NoteID  int64
	GrantID int64
)

type (
	User struct {
		ID        UserID
		Email     string
		Password  string // bcrypt digest, never the raw password
		CreatedAt time.Time
	}

	Note struct {
		ID        NoteID
		OwnerID   UserID
		Title     string
		Content   string
		CreatedAt time.Time
		UpdatedAt time.Time
	}

	// AccessGrant is the sharing relation between a note, its owner and a grantee.
	// NoteOwnerID is denormalized: it is written at grant time and is not kept in
	// sync with the live note row.
	AccessGrant struct {
		ID          GrantID
		UserID      UserID // grantee
		NoteOwnerID UserID
		NoteID      NoteID
		GrantedAt   time.Time
	}
)
