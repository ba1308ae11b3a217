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

// AuthService defines the interface for account operations.
//
// Credentials are stored and compared in plaintext. That matches the data
// file this service is a drop-in replacement for; it is a documented gap,
// not a pattern to copy.
type AuthService interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	store *store.Store
}

// NewAuthService creates a new AuthService
func NewAuthService(st *store.Store) AuthService {
	return &authServiceImpl{store: st}
}

// Signup registers a new account. A duplicate email is rejected.
func (s *authServiceImpl) Signup(_ context.Context, req *dto.SignupRequest) (*dto.UserResponse, error) {
	user, err := s.store.CreateUser(models.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrEmailExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	resp := dto.NewUserResponse(user)
	return &resp, nil
}

// Login checks the email/password pair against the stored records.
func (s *authServiceImpl) Login(_ context.Context, req *dto.LoginRequest) (*dto.UserResponse, error) {
	user, err := s.store.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error looking up user: %w", err)
	}

	if user.Password != req.Password {
		return nil, apperrors.ErrInvalidCredentials
	}

	resp := dto.NewUserResponse(*user)
	return &resp, nil
}
