package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/notesync/notesync/internal/app/services"
)

// DataController serves the whole document in one call
type DataController struct {
	dataService services.DataService
}

// NewDataController creates a new DataController
func NewDataController(dataService services.DataService) *DataController {
	return &DataController{dataService: dataService}
}

// GetData returns all collections; user passwords are stripped.
func (c *DataController) GetData(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.dataService.GetData(ctx.Request.Context()))
}
