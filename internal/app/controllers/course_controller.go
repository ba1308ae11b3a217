// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/notesync/notesync/internal/app/models/dto"
	"github.com/notesync/notesync/internal/app/services"
	"github.com/notesync/notesync/internal/middleware"
)

// CourseController handles course related operations
type CourseController struct {
	courseService services.CourseService
	logger        zerolog.Logger
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService services.CourseService, logger zerolog.Logger) *CourseController {
	return &CourseController{
		courseService: courseService,
		logger:        logger,
	}
}

// GetCourseByID handles retrieving a single course by ID
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id := ctx.Param("id")

	course, err := c.courseService.GetCourseByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, course)
}

// CreateCourse handles creating a new course
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create course payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Title and description are required"))
		return
	}

	course, err := c.courseService.CreateCourse(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to create course")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("courseId", course.ID).Str("title", course.Title).Msg("Course created")
	ctx.JSON(http.StatusCreated, course)
}

// UpdateCourse handles merging provided fields into an existing course
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update course payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	course, err := c.courseService.UpdateCourse(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("courseId", course.ID).Msg("Course updated")
	ctx.JSON(http.StatusOK, course)
}
