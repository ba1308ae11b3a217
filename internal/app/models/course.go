package models

// Course represents a study course in the document store.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
	Notes       string   `json:"notes"`
	Links       []string `json:"links"`
}

// CourseUpdate carries the mutable course fields for a partial update.
// Nil fields are left untouched. The course ID is never part of an update.
type CourseUpdate struct {
	Title       *string
	Icon        *string
	Description *string
	Notes       *string
	Links       *[]string
}

// Apply merges the update into the course.
func (u CourseUpdate) Apply(c *Course) {
	if u.Title != nil {
		c.Title = *u.Title
	}
	if u.Icon != nil {
		c.Icon = *u.Icon
	}
	if u.Description != nil {
		c.Description = *u.Description
	}
	if u.Notes != nil {
		c.Notes = *u.Notes
	}
	if u.Links != nil {
		c.Links = append([]string(nil), (*u.Links)...)
	}
}
