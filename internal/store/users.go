package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/notesync/notesync/internal/app/models"
	"github.com/notesync/notesync/internal/pkg/apperrors"
)

// GetUser retrieves a user by ID.
func (s *Store) GetUser(id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.doc.Users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// GetUserByEmail retrieves a user by email. The match is exact, no
// normalization is applied to the stored or supplied address.
func (s *Store) GetUserByEmail(email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.doc.Users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

// ListUsers returns a copy of all user records, passwords included. Callers
// that produce API output must strip credentials via the response DTOs.
func (s *Store) ListUsers() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.doc.Users...)
}

// CreateUser appends a user record after checking email uniqueness. The
// uniqueness scan and the append happen under the same lock, so duplicate
// signups cannot race past each other.
func (s *Store) CreateUser(user models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.doc.Users {
		if u.Email == user.Email {
			return models.User{}, apperrors.ErrEmailExists
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()
	s.doc.Users = append(s.doc.Users, user)

	if err := s.persistLocked(); err != nil {
		return models.User{}, err
	}
	return user, nil
}
