package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notesync/notesync/internal/app/models/dto"
	"github.com/notesync/notesync/internal/pkg/apperrors"
)

// HandleAPIError maps service errors onto the API's error contract:
// every failure body is {"error": "<message>"} with the appropriate status.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Course not found"))
	case errors.Is(err, apperrors.ErrNoteNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Note not found"))
	case errors.Is(err, apperrors.ErrNotNoteAuthor):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Not authorized"))
	case errors.Is(err, apperrors.ErrInvalidAuthor):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid author"))
	case errors.Is(err, apperrors.ErrEmailExists):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email exists"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid credentials"))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error"))
	}
}
