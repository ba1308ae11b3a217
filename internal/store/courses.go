package store

import (
	"github.com/google/uuid"

	"github.com/notesync/notesync/internal/app/models"
	"github.com/notesync/notesync/internal/pkg/apperrors"
)

// ListCourses returns a copy of all courses.
func (s *Store) ListCourses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Course, len(s.doc.Courses))
	for i, c := range s.doc.Courses {
		c.Links = append([]string(nil), c.Links...)
		out[i] = c
	}
	return out
}

// GetCourse retrieves a course by ID.
func (s *Store) GetCourse(id string) (*models.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.doc.Courses {
		if c.ID == id {
			c.Links = append([]string(nil), c.Links...)
			return &c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

// CreateCourse assigns a fresh ID, appends the course and persists.
func (s *Store) CreateCourse(course models.Course) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course.ID = uuid.NewString()
	if course.Links == nil {
		course.Links = []string{}
	}
	s.doc.Courses = append(s.doc.Courses, course)

	if err := s.persistLocked(); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// UpdateCourse merges the provided fields into the course and persists.
func (s *Store) UpdateCourse(id string, update models.CourseUpdate) (models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.doc.Courses {
		if s.doc.Courses[i].ID != id {
			continue
		}
		update.Apply(&s.doc.Courses[i])
		if err := s.persistLocked(); err != nil {
			return models.Course{}, err
		}
		return s.doc.Courses[i], nil
	}
	return models.Course{}, apperrors.ErrCourseNotFound
}
