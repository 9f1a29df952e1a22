package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"lifehub/internal/repository"
)

type NoteService interface {
	// List returns date -> content for the effective owner, newest first
	// by map construction order being irrelevant to clients.
	List(ctx context.Context, requester uuid.UUID) (map[string]string, error)

	// Get returns the note content for a date; a missing note reads as
	// empty content, not an error.
	Get(ctx context.Context, requester uuid.UUID, date string) (string, error)

	// Save upserts a note. Blank content deletes an existing note and is
	// a no-op when none exists.
	Save(ctx context.Context, requester uuid.UUID, date, content string) error

	Delete(ctx context.Context, requester uuid.UUID, date string) error
}

type noteService struct {
	noteRepo repository.NoteRepository
	userRepo repository.UserRepository
}

func NewNoteService(noteRepo repository.NoteRepository, userRepo repository.UserRepository) NoteService {
	return &noteService{noteRepo: noteRepo, userRepo: userRepo}
}

func (s *noteService) List(ctx context.Context, requester uuid.UUID) (map[string]string, error) {
	owner, err := ResolveDataOwner(ctx, s.userRepo, requester)
	if err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.ListByUser(ctx, owner.UserID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	out := make(map[string]string, len(notes))
	for _, note := range notes {
		out[note.Date] = note.Content
	}
	return out, nil
}

func (s *noteService) Get(ctx context.Context, requester uuid.UUID, date string) (string, error) {
	owner, err := ResolveDataOwner(ctx, s.userRepo, requester)
	if err != nil {
		return "", err
	}
	note, err := s.noteRepo.Get(ctx, owner.UserID, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", fmt.Errorf("get note: %w", err)
	}
	return note.Content, nil
}

func (s *noteService) Save(ctx context.Context, requester uuid.UUID, date, content string) error {
	owner, err := ResolveDataOwner(ctx, s.userRepo, requester)
	if err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		// Blank content clears the day. Deleting a day that has no note
		// is deliberately a no-op rather than an error.
		if _, err := s.noteRepo.Delete(ctx, owner.UserID, date); err != nil {
			return fmt.Errorf("clear note: %w", err)
		}
		return nil
	}
	if err := s.noteRepo.Upsert(ctx, owner.UserID, date, content); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	return nil
}

func (s *noteService) Delete(ctx context.Context, requester uuid.UUID, date string) error {
	owner, err := ResolveDataOwner(ctx, s.userRepo, requester)
	if err != nil {
		return err
	}
	if _, err := s.noteRepo.Delete(ctx, owner.UserID, date); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

var _ NoteService = (*noteService)(nil)
