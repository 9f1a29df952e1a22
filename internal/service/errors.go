package service

import "errors"

var (
	ErrUsernameTaken      = errors.New("username already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")

	ErrCodeNotFound = errors.New("invite code not found")
	ErrSelfInvite   = errors.New("cannot bind your own invite code")
	ErrAlreadyBound = errors.New("an invite code has already been bound")

	ErrSchemeNotFound = errors.New("wheel scheme not found")

	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExerciseTypeExists   = errors.New("exercise type already exists")
	ErrExerciseTypeNotFound = errors.New("exercise type not found")

	ErrNoDishes = errors.New("no dishes configured")

	ErrListNotFound   = errors.New("list not found")
	ErrNotListMember  = errors.New("not a member of this list")
	ErrNotListOwner   = errors.New("only the list owner may do this")
	ErrItemNotFound   = errors.New("list item not found")
	ErrAlreadyMember  = errors.New("user is already a member of this list")
	ErrInvalidCounter = errors.New("unknown counter operation")
)
