package models

import "time"

// CommunityNote represents a shared study note attached to a course.
// The author name is a denormalized copy taken at creation time and is not
// kept in sync with later user record changes.
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

// Rating is a single user's rating of a note. A note holds at most one
// rating per user; resubmitting replaces the previous value.
type Rating struct {
	UserID string `json:"userId"`
	Rating int    `json:"rating"`
}

// NoteUpdate carries the editable note fields. Nil fields are left untouched.
type NoteUpdate struct {
	Title   *string
	Content *string
}

// Apply merges the update into the note.
func (u NoteUpdate) Apply(n *CommunityNote) {
	if u.Title != nil {
		n.Title = *u.Title
	}
	if u.Content != nil {
		n.Content = *u.Content
	}
}
