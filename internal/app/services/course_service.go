package services

import (
	"context"
	"fmt"

	"github.com/notesync/notesync/internal/app/models"
	"github.com/notesync/notesync/internal/app/models/dto"
	"github.com/notesync/notesync/internal/store"
)

// CourseService defines the interface for course operations
type CourseService interface {
	GetCourseByID(ctx context.Context, id string) (*models.Course, error)
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, id string, req *dto.UpdateCourseRequest) (*models.Course, error)
}

// courseServiceImpl implements CourseService
type courseServiceImpl struct {
	store *store.Store
}

// NewCourseService creates a new CourseService
func NewCourseService(st *store.Store) CourseService {
	return &courseServiceImpl{store: st}
}

// GetCourseByID retrieves a course by ID
func (s *courseServiceImpl) GetCourseByID(_ context.Context, id string) (*models.Course, error) {
	course, err := s.store.GetCourse(id)
	if err != nil {
		return nil, err
	}
	return course, nil
}

// CreateCourse creates a new course with a generated ID
func (s *courseServiceImpl) CreateCourse(_ context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course, err := s.store.CreateCourse(req.ToModel())
	if err != nil {
		return nil, fmt.Errorf("error creating course: %w", err)
	}
	return &course, nil
}

// UpdateCourse merges the provided fields into an existing course
func (s *courseServiceImpl) UpdateCourse(_ context.Context, id string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.store.UpdateCourse(id, req.ToUpdate())
	if err != nil {
		return nil, err
	}
	return &course, nil
}
