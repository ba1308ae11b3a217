package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/notesync/notesync/internal/app/controllers"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	dataController *controllers.DataController,
	courseController *controllers.CourseController,
	noteController *controllers.NoteController,
	authController *controllers.AuthController,
) {
	api := router.Group("/api")

	// Full document read, used by clients to (re)build their local cache
	api.GET("/data", dataController.GetData)

	// Course routes
	courses := api.Group("/courses")
	{
		courses.POST("", courseController.CreateCourse)
		courses.GET("/:id", courseController.GetCourseByID)
		courses.PUT("/:id", courseController.UpdateCourse)
	}

	// Community note routes
	notes := api.Group("/notes")
	{
		notes.POST("", noteController.CreateNote)
		notes.PUT("/:id", noteController.UpdateNote)
		notes.DELETE("/:id", noteController.DeleteNote)
		notes.POST("/:id/rate", noteController.RateNote)
	}

	// Auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
	}

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
