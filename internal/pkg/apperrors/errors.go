package apperrors

import "errors"

// Common errors
var (
	// Course errors
	ErrCourseNotFound = errors.New("course not found")

	// Note errors
	ErrNoteNotFound  = errors.New("note not found")
	ErrNotNoteAuthor = errors.New("not authorized to modify this note")

	// User errors
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailExists   = errors.New("email exists")
	ErrInvalidAuthor = errors.New("invalid author")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

)
