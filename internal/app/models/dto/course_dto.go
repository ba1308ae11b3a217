package dto

import "github.com/notesync/notesync/internal/app/models"

// CreateCourseRequest carries the fields for a new course.
type CreateCourseRequest struct {
	Title       string   `json:"title" binding:"required"`
	Icon        string   `json:"icon"`
	Description string   `json:"description" binding:"required"`
	Notes       string   `json:"notes"`
	Links       []string `json:"links"`
}

// UpdateCourseRequest carries a partial course update. Absent fields are
// left untouched; the course ID cannot be changed through an update.
type UpdateCourseRequest struct {
	Title       *string   `json:"title"`
	Icon        *string   `json:"icon"`
	Description *string   `json:"description"`
	Notes       *string   `json:"notes"`
	Links       *[]string `json:"links"`
}

// ToModel converts the create request into a course model.
func (r CreateCourseRequest) ToModel() models.Course {
	return models.Course{
		Title:       r.Title,
		Icon:        r.Icon,
		Description: r.Description,
		Notes:       r.Notes,
		Links:       r.Links,
	}
}

// ToUpdate converts the update request into a store-level update.
func (r UpdateCourseRequest) ToUpdate() models.CourseUpdate {
	return models.CourseUpdate{
		Title:       r.Title,
		Icon:        r.Icon,
		Description: r.Description,
		Notes:       r.Notes,
		Links:       r.Links,
	}
}
