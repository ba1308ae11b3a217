package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/notesync/notesync/internal/app/models/dto"
	"github.com/notesync/notesync/internal/app/services"
	"github.com/notesync/notesync/internal/middleware"
)

// AuthController handles account signup and login
type AuthController struct {
	authService services.AuthService
	logger      zerolog.Logger
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, logger zerolog.Logger) *AuthController {
	return &AuthController{
		authService: authService,
		logger:      logger,
	}
}

// Signup handles user registration
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid signup payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email, password and name are required"))
		return
	}

	user, err := c.authService.Signup(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("email", req.Email).Msg("Signup rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("userId", user.ID).Str("email", user.Email).Msg("User signed up")
	ctx.JSON(http.StatusOK, user)
}

// Login handles credential checks
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid login payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email and password are required"))
		return
	}

	user, err := c.authService.Login(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Str("userId", user.ID).Msg("User logged in")
	ctx.JSON(http.StatusOK, user)
}
