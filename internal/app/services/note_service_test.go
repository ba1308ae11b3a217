package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesync/notesync/internal/app/models"
	"github.com/notesync/notesync/internal/app/models/dto"
	"github.com/notesync/notesync/internal/pkg/apperrors"
	"github.com/notesync/notesync/internal/store"
)

type noteServiceFixture struct {
	store   *store.Store
	service NoteService
	author  models.User
	note    models.CommunityNote
}

func setupNoteService(t *testing.T) *noteServiceFixture {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "db.json"), zerolog.Nop())
	require.NoError(t, err)

	author, err := st.CreateUser(models.User{Email: "ada@school.edu", Password: "pw", Name: "Ada"})
	require.NoError(t, err)

	svc := NewNoteService(st)
	note, err := svc.CreateNote(context.Background(), &dto.CreateNoteRequest{
		CourseID: "c1",
		Title:    "Limits",
		Content:  "epsilon-delta",
		AuthorID: author.ID,
	})
	require.NoError(t, err)

	return &noteServiceFixture{
		store:   st,
		service: svc,
		author:  author,
		note:    *note,
	}
}

func TestCreateNoteDenormalizesAuthor(t *testing.T) {
	f := setupNoteService(t)

	assert.Equal(t, "Ada", f.note.Author)
	assert.Equal(t, f.author.ID, f.note.AuthorID)
	assert.Empty(t, f.note.Ratings)
	assert.Zero(t, f.note.AverageRating)
}

func TestCreateNoteRejectsUnknownAuthor(t *testing.T) {
	f := setupNoteService(t)

	_, err := f.service.CreateNote(context.Background(), &dto.CreateNoteRequest{
		CourseID: "c1",
		Title:    "Ghost note",
		Content:  "no author",
		AuthorID: "nobody",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidAuthor)

	// No note is appended on failure.
	assert.Len(t, f.store.ListNotes(), 1)
}

func TestUpdateNoteAuthorization(t *testing.T) {
	f := setupNoteService(t)
	title := "Limits, revisited"

	t.Run("non-author without bypass is rejected", func(t *testing.T) {
		_, err := f.service.UpdateNote(context.Background(), f.note.ID, &dto.UpdateNoteRequest{
			Title:    &title,
			AuthorID: "someone-else",
		})
		assert.ErrorIs(t, err, apperrors.ErrNotNoteAuthor)

		unchanged, getErr := f.store.GetNote(f.note.ID)
		require.NoError(t, getErr)
		assert.Equal(t, "Limits", unchanged.Title, "rejected edit must not touch the note")
	})

	t.Run("author may edit", func(t *testing.T) {
		updated, err := f.service.UpdateNote(context.Background(), f.note.ID, &dto.UpdateNoteRequest{
			Title:    &title,
			AuthorID: f.author.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, title, updated.Title)
	})

	t.Run("bypass skips the ownership check", func(t *testing.T) {
		content := "edited by admin tooling"
		updated, err := f.service.UpdateNote(context.Background(), f.note.ID, &dto.UpdateNoteRequest{
			Content:  &content,
			AuthorID: "someone-else",
			Bypass:   true,
		})
		require.NoError(t, err)
		assert.Equal(t, content, updated.Content)
	})

	t.Run("unknown note is not found", func(t *testing.T) {
		_, err := f.service.UpdateNote(context.Background(), "missing", &dto.UpdateNoteRequest{
			AuthorID: f.author.ID,
		})
		assert.ErrorIs(t, err, apperrors.ErrNoteNotFound)
	})
}

func TestDeleteNoteAuthorization(t *testing.T) {
	f := setupNoteService(t)

	err := f.service.DeleteNote(context.Background(), f.note.ID, &dto.DeleteNoteRequest{AuthorID: "someone-else"})
	assert.ErrorIs(t, err, apperrors.ErrNotNoteAuthor)
	assert.Len(t, f.store.ListNotes(), 1, "rejected delete must leave the note in place")

	err = f.service.DeleteNote(context.Background(), f.note.ID, &dto.DeleteNoteRequest{AuthorID: f.author.ID})
	require.NoError(t, err)
	assert.Empty(t, f.store.ListNotes())
}

func TestRateNoteAggregates(t *testing.T) {
	f := setupNoteService(t)

	result, err := f.service.RateNote(context.Background(), f.note.ID, &dto.RateNoteRequest{UserID: "u1", Rating: 5})
	require.NoError(t, err)
	assert.Equal(t, 5.0, result.AverageRating)
	assert.Equal(t, 1, result.RatingsCount)

	result, err = f.service.RateNote(context.Background(), f.note.ID, &dto.RateNoteRequest{UserID: "u1", Rating: 3})
	require.NoError(t, err)
	assert.Equal(t, 3.0, result.AverageRating)
	assert.Equal(t, 1, result.RatingsCount, "same user rating twice must not grow the list")
}
