package dto

// CreateNoteRequest carries the fields for a new community note.
type CreateNoteRequest struct {
	CourseID string `json:"courseId" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Content  string `json:"content" binding:"required"`
	AuthorID string `json:"authorId" binding:"required"`
}

// UpdateNoteRequest carries a note edit. The author ID identifies the caller;
// the bypass flag skips the ownership check and is meant for development use.
type UpdateNoteRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	AuthorID string  `json:"authorId"`
	Bypass   bool    `json:"bypass"`
}

// DeleteNoteRequest identifies the caller for a note deletion, with the same
// ownership rule as edits.
type DeleteNoteRequest struct {
	AuthorID string `json:"authorId"`
	Bypass   bool   `json:"bypass"`
}

// DeleteNoteResponse reports a successful deletion.
type DeleteNoteResponse struct {
	Success bool `json:"success"`
}

// RateNoteRequest carries a rating submission. The required binding rejects
// a zero rating, matching the original service's contract.
type RateNoteRequest struct {
	UserID string `json:"userId" binding:"required"`
	Rating int    `json:"rating" binding:"required"`
}

// RateNoteResponse reports the recomputed aggregate after a submission.
type RateNoteResponse struct {
	AverageRating float64 `json:"averageRating"`
	RatingsCount  int     `json:"ratingsCount"`
}
