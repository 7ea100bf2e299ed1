package model

import "errors"

var (
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("could not validate credentials")

	ErrUserNotFound  = errors.New("user does not exist")
	ErrNoteNotFound  = errors.New("note not found")
	ErrGrantNotFound = errors.New("note read access not found")

	ErrGrantExists = errors.New("user already has read access to this note")
	ErrSelfGrant   = errors.New("you cannot give read access to yourself")
	ErrSelfRead    = errors.New("you already have access to your own note")
	ErrNoAccess    = errors.New("you do not have read access to this note")
)
