package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/notesync/notesync/internal/app/models"
	"github.com/notesync/notesync/internal/app/models/dto"
	"github.com/notesync/notesync/internal/pkg/apperrors"
	"github.com/notesync/notesync/internal/store"
)

// NoteService defines the interface for community note operations
type NoteService interface {
	CreateNote(ctx context.Context, req *dto.CreateNoteRequest) (*models.CommunityNote, error)
	UpdateNote(ctx context.Context, id string, req *dto.UpdateNoteRequest) (*models.CommunityNote, error)
	DeleteNote(ctx context.Context, id string, req *dto.DeleteNoteRequest) error
	RateNote(ctx context.Context, id string, req *dto.RateNoteRequest) (*dto.RateNoteResponse, error)
}

// noteServiceImpl implements NoteService
type noteServiceImpl struct {
	store *store.Store
}

// NewNoteService creates a new NoteService
func NewNoteService(st *store.Store) NoteService {
	return &noteServiceImpl{store: st}
}

// CreateNote creates a community note after resolving the author. The author
// name is copied onto the note at creation time.
func (s *noteServiceImpl) CreateNote(_ context.Context, req *dto.CreateNoteRequest) (*models.CommunityNote, error) {
	author, err := s.store.GetUser(req.AuthorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidAuthor
		}
		return nil, fmt.Errorf("error resolving author: %w", err)
	}

	note, err := s.store.CreateNote(models.CommunityNote{
		CourseID: req.CourseID,
		Title:    req.Title,
		Content:  req.Content,
		Author:   author.Name,
		AuthorID: author.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	return &note, nil
}

// UpdateNote edits a note if the caller is its author or the bypass flag is
// set.
func (s *noteServiceImpl) UpdateNote(_ context.Context, id string, req *dto.UpdateNoteRequest) (*models.CommunityNote, error) {
	if err := s.authorizeNoteAccess(id, req.AuthorID, req.Bypass); err != nil {
		return nil, err
	}

	note, err := s.store.UpdateNote(id, models.NoteUpdate{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// DeleteNote removes a note under the same ownership rule as edits.
func (s *noteServiceImpl) DeleteNote(_ context.Context, id string, req *dto.DeleteNoteRequest) error {
	if err := s.authorizeNoteAccess(id, req.AuthorID, req.Bypass); err != nil {
		return err
	}
	return s.store.DeleteNote(id)
}

// RateNote upserts the user's rating and returns the recomputed aggregate.
func (s *noteServiceImpl) RateNote(_ context.Context, id string, req *dto.RateNoteRequest) (*dto.RateNoteResponse, error) {
	average, count, err := s.store.RateNote(id, req.UserID, req.Rating)
	if err != nil {
		return nil, err
	}
	return &dto.RateNoteResponse{
		AverageRating: average,
		RatingsCount:  count,
	}, nil
}

// authorizeNoteAccess checks that the note exists and that authorID owns it,
// unless bypass is set.
func (s *noteServiceImpl) authorizeNoteAccess(id, authorID string, bypass bool) error {
	note, err := s.store.GetNote(id)
	if err != nil {
		return err
	}
	if bypass {
		return nil
	}
	if note.AuthorID != authorID {
		return apperrors.ErrNotNoteAuthor
	}
	return nil
}
