package routes

import (
	"hireflow/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterFileRoutes registers the resume upload route. Any
// authenticated user may upload.
func RegisterFileRoutes(
	rg *gin.RouterGroup,
	fileHandler handlers.FileHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	files := rg.Group("/files")
	files.Use(authMiddleware)
	{
		files.POST("/upload-resume", fileHandler.UploadResume)
	}
}
