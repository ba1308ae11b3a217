package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/notesync/notesync/internal/app/models/dto"
	"github.com/notesync/notesync/internal/app/services"
	"github.com/notesync/notesync/internal/metrics"
	"github.com/notesync/notesync/internal/middleware"
)

// NoteController handles community note related operations
type NoteController struct {
	noteService services.NoteService
	logger      zerolog.Logger
}

// NewNoteController creates a new NoteController
func NewNoteController(noteService services.NoteService, logger zerolog.Logger) *NoteController {
	return &NoteController{
		noteService: noteService,
		logger:      logger,
	}
}

// CreateNote handles creating a new community note
func (c *NoteController) CreateNote(ctx *gin.Context) {
	var req dto.CreateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create note payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("courseId, title, content and authorId are required"))
		return
	}

	note, err := c.noteService.CreateNote(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Str("noteId", note.ID).
		Str("courseId", note.CourseID).
		Str("authorId", note.AuthorID).
		Msg("Community note created")
	ctx.JSON(http.StatusCreated, note)
}

// UpdateNote handles editing a note. Only the author may edit, unless the
// bypass flag is set.
func (c *NoteController) UpdateNote(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.UpdateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid update note payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	note, err := c.noteService.UpdateNote(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("noteId", note.ID).Msg("Community note updated")
	ctx.JSON(http.StatusOK, note)
}

// DeleteNote handles removing a note, with the same authorization rule as
// edits.
func (c *NoteController) DeleteNote(ctx *gin.Context) {
	id := ctx.Param("id")

	// The caller identity travels in the body, like on edits. An empty body
	// is allowed and simply fails the ownership check.
	var req dto.DeleteNoteRequest
	if ctx.Request.Body != nil {
		_ = ctx.ShouldBindJSON(&req)
	}

	if err := c.noteService.DeleteNote(ctx.Request.Context(), id, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("noteId", id).Msg("Community note deleted")
	ctx.JSON(http.StatusOK, dto.DeleteNoteResponse{Success: true})
}

// RateNote handles a rating submission and returns the new aggregate
func (c *NoteController) RateNote(ctx *gin.Context) {
	id := ctx.Param("id")

	var req dto.RateNoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid rate note payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("userId and rating are required"))
		return
	}

	result, err := c.noteService.RateNote(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	metrics.NoteRatings.Observe(float64(req.Rating))
	c.logger.Info().
		Str("noteId", id).
		Str("userId", req.UserID).
		Int("rating", req.Rating).
		Float64("averageRating", result.AverageRating).
		Msg("Note rated")
	ctx.JSON(http.StatusOK, result)
}
