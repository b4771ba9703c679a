package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hireflow/config"
	"hireflow/internal/api/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupFileRouter(t *testing.T, maxBytes int64) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dir := t.TempDir()
	handler := handlers.NewFileHandler(&config.UploadConfig{Dir: dir, MaxBytes: maxBytes})
	router := gin.New()
	router.POST("/api/files/upload-resume", authAs(testSeeker()), handler.UploadResume)
	return router, dir
}

func multipartBody(t *testing.T, filename, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestFileHandler_UploadResume(t *testing.T) {
	t.Run("Success stores under a generated name", func(t *testing.T) {
		router, dir := setupFileRouter(t, 5*1024*1024)

		body, contentType := multipartBody(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4 fake"))
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/files/upload-resume", body)
		request.Header.Set("Content-Type", contentType)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp struct {
			URL      string `json:"url"`
			Filename string `json:"filename"`
		}
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Equal(t, "resume.pdf", resp.Filename)
		assert.True(t, strings.HasPrefix(resp.URL, "/uploads/resumes/"))
		assert.True(t, strings.HasSuffix(resp.URL, ".pdf"))
		assert.NotContains(t, resp.URL, "resume.pdf", "stored name must not reuse the client filename")

		stored := filepath.Join(dir, filepath.Base(resp.URL))
		data, err := os.ReadFile(stored)
		assert.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4 fake"), data)
	})

	t.Run("Disallowed extension", func(t *testing.T) {
		router, _ := setupFileRouter(t, 5*1024*1024)

		body, contentType := multipartBody(t, "malware.exe", "application/octet-stream", []byte("MZ"))
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/files/upload-resume", body)
		request.Header.Set("Content-Type", contentType)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "PDF, DOC and DOCX")
	})

	t.Run("Mismatched content type", func(t *testing.T) {
		router, _ := setupFileRouter(t, 5*1024*1024)

		body, contentType := multipartBody(t, "resume.pdf", "application/octet-stream", []byte("not a pdf"))
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/files/upload-resume", body)
		request.Header.Set("Content-Type", contentType)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Oversized file", func(t *testing.T) {
		router, _ := setupFileRouter(t, 10) // 10 byte cap

		body, contentType := multipartBody(t, "resume.pdf", "application/pdf", bytes.Repeat([]byte("a"), 64))
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/files/upload-resume", body)
		request.Header.Set("Content-Type", contentType)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "maximum allowed size")
	})

	t.Run("Missing file field", func(t *testing.T) {
		router, _ := setupFileRouter(t, 5*1024*1024)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/files/upload-resume", strings.NewReader(""))
		request.Header.Set("Content-Type", "multipart/form-data; boundary=x")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}
