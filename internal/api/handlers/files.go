package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"hireflow/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Resume uploads accept these extensions only. The stored name is a
// fresh UUID so uploads can never collide or traverse paths.
var allowedResumeExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var allowedResumeContentTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// FileHandler holds dependencies for resume upload operations.
type FileHandler struct {
	cfg *config.UploadConfig
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(cfg *config.UploadConfig) *FileHandler {
	return &FileHandler{cfg: cfg}
}

// UploadResume stores a resume file and returns its public URL. The file
// arrives as the multipart field "file".
func (h *FileHandler) UploadResume(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "File is required under the multipart field 'file'")
		return
	}

	if fileHeader.Size > h.cfg.MaxBytes {
		respondError(c, http.StatusBadRequest,
			fmt.Sprintf("File exceeds the maximum allowed size of %d bytes", h.cfg.MaxBytes))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedResumeExtensions[ext] || !allowedResumeContentTypes[contentType] {
		respondError(c, http.StatusBadRequest, "Only PDF, DOC and DOCX files are allowed")
		return
	}

	if err := os.MkdirAll(h.cfg.Dir, 0o755); err != nil {
		respondServiceError(c, err)
		return
	}

	storedName := uuid.New().String() + ext
	if err := c.SaveUploadedFile(fileHeader, filepath.Join(h.cfg.Dir, storedName)); err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":      "/uploads/resumes/" + storedName,
		"filename": fileHeader.Filename,
	})
}
