package client

import "time"

// Wire types mirror the server's JSON shapes. The client deliberately keeps
// its own copies so it can be vendored into frontends without dragging the
// server's internal packages along.

// Course is a study course.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Notes       string   `json:"notes"`
	Links       []string `json:"links"`
}

// CommunityNote is a shared note attached to a course.
type CommunityNote struct {
	ID            string    `json:"id"`
	CourseID      string    `json:"courseId"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Author        string    `json:"author"`
	AuthorID      string    `json:"authorId"`
	CreatedAt     time.Time `json:"createdAt"`
	Downloads     int       `json:"downloads"`
	Ratings       []Rating  `json:"ratings"`
	AverageRating float64   `json:"averageRating"`
}

// Rating is a single user's rating on a note.
type Rating struct {
	UserID string `json:"userId"`
	Rating int    `json:"rating"`
}

// User is the public view of an account as served by the API.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// Analytics carries client session records; the server only passes them
// through.
type Analytics struct {
	Sessions []Session `json:"sessions"`
}

// Session is a recorded client session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	StartedAt time.Time `json:"startedAt"`
}

// Data is the full document as served by GET /api/data.
type Data struct {
	Courses        []Course        `json:"courses"`
	CommunityNotes []CommunityNote `json:"communityNotes"`
	Users          []User          `json:"users"`
	Analytics      Analytics       `json:"analytics"`
}

// RatingSummary is the aggregate returned after a rating submission.
type RatingSummary struct {
	AverageRating float64 `json:"averageRating"`
	RatingsCount  int     `json:"ratingsCount"`
}

// CreateCourseParams carries the fields for a new course.
type CreateCourseParams struct {
	Title       string   `json:"title"`
	Icon        string   `json:"icon,omitempty"`
	Description string   `json:"description"`
	Notes       string   `json:"notes,omitempty"`
	Links       []string `json:"links,omitempty"`
}

// UpdateCourseParams carries a partial course update; nil fields are omitted
// from the request so the server leaves them untouched.
type UpdateCourseParams struct {
	Title       *string   `json:"title,omitempty"`
	Icon        *string   `json:"icon,omitempty"`
	Description *string   `json:"description,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	Links       *[]string `json:"links,omitempty"`
}

// CreateNoteParams carries the fields for a new community note.
type CreateNoteParams struct {
	CourseID string `json:"courseId"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	AuthorID string `json:"authorId"`
}

// UpdateNoteParams carries a note edit. AuthorID identifies the caller;
// Bypass skips the ownership check (development only).
type UpdateNoteParams struct {
	Title    *string `json:"title,omitempty"`
	Content  *string `json:"content,omitempty"`
	AuthorID string  `json:"authorId"`
	Bypass   bool    `json:"bypass,omitempty"`
}
