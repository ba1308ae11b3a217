package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/notesync/notesync/internal/app/models"
	"github.com/notesync/notesync/internal/pkg/apperrors"
)

// ListNotes returns a copy of all community notes.
func (s *Store) ListNotes() []models.CommunityNote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.CommunityNote, len(s.doc.CommunityNotes))
	for i, n := range s.doc.CommunityNotes {
		n.Ratings = append([]models.Rating(nil), n.Ratings...)
		out[i] = n
	}
	return out
}

// GetNote retrieves a note by ID.
func (s *Store) GetNote(id string) (*models.CommunityNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.doc.CommunityNotes {
		if n.ID == id {
			n.Ratings = append([]models.Rating(nil), n.Ratings...)
			return &n, nil
		}
	}
	return nil, apperrors.ErrNoteNotFound
}

// CreateNote assigns a fresh ID and creation time, appends the note and
// persists. Ratings start empty with an average of zero.
func (s *Store) CreateNote(note models.CommunityNote) (models.CommunityNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note.ID = uuid.NewString()
	note.CreatedAt = time.Now().UTC()
	note.Downloads = 0
	note.Ratings = []models.Rating{}
	note.AverageRating = 0
	s.doc.CommunityNotes = append(s.doc.CommunityNotes, note)

	if err := s.persistLocked(); err != nil {
		return models.CommunityNote{}, err
	}
	return note, nil
}

// UpdateNote overwrites the provided note fields and persists.
func (s *Store) UpdateNote(id string, update models.NoteUpdate) (models.CommunityNote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.CommunityNotes {
		if s.doc.CommunityNotes[i].ID != id {
			continue
		}
		update.Apply(&s.doc.CommunityNotes[i])
		if err := s.persistLocked(); err != nil {
			return models.CommunityNote{}, err
		}
		return s.doc.CommunityNotes[i], nil
	}
	return models.CommunityNote{}, apperrors.ErrNoteNotFound
}

// DeleteNote removes the note from the collection and persists.
func (s *Store) DeleteNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.CommunityNotes {
		if s.doc.CommunityNotes[i].ID != id {
			continue
		}
		s.doc.CommunityNotes = append(s.doc.CommunityNotes[:i], s.doc.CommunityNotes[i+1:]...)
		return s.persistLocked()
	}
	return apperrors.ErrNoteNotFound
}

// RateNote upserts the user's rating on the note, keyed by user ID, and
// recomputes the average as the arithmetic mean of all current values.
// It returns the new average and the number of ratings.
func (s *Store) RateNote(id, userID string, value int) (float64, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.CommunityNotes {
		note := &s.doc.CommunityNotes[i]
		if note.ID != id {
			continue
		}

		updated := false
		for j := range note.Ratings {
			if note.Ratings[j].UserID == userID {
				note.Ratings[j].Rating = value
				updated = true
				break
			}
		}
		if !updated {
			note.Ratings = append(note.Ratings, models.Rating{UserID: userID, Rating: value})
		}

		note.AverageRating = meanRating(note.Ratings)

		if err := s.persistLocked(); err != nil {
			return 0, 0, err
		}
		return note.AverageRating, len(note.Ratings), nil
	}
	return 0, 0, apperrors.ErrNoteNotFound
}

func meanRating(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return float64(sum) / float64(len(ratings))
}
