package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"filegate/internal/model"
	"filegate/internal/service"
	serviceMocks "filegate/internal/service/mocks"
	"filegate/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	part.Write([]byte(content))
	writer.Close()
	return body, writer.FormDataContentType()
}

func TestHealth(t *testing.T) {
	app := fiber.New()
	app.Get("/api/health", Health())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	assert.Equal(t, "server is running", body["message"])
}

func TestUploadFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := fiber.New()
	app.Post("/upload", UploadFile(mockSvc))

	t.Run("success", func(t *testing.T) {
		body, ct := multipartBody(t, "file", "hello.txt", "hi")

		stored := &model.StoredFile{
			Filename: "1700000000000-hello.txt",
			URL:      "http://example.com/file/1700000000000-hello.txt",
		}
		mockSvc.On("Upload", mock.Anything, mock.Anything, "hello.txt", mock.Anything).Return(stored, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result map[string]string
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "File uploaded successfully", result["message"])
		assert.Equal(t, stored.Filename, result["filename"])
		assert.Equal(t, stored.URL, result["url"])
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file part", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/upload", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res messageResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "No file uploaded", res.Message)
	})

	t.Run("wrong field name", func(t *testing.T) {
		body, ct := multipartBody(t, "attachment", "hello.txt", "hi")

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res messageResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "No file uploaded", res.Message)
	})

	t.Run("invalid filename", func(t *testing.T) {
		body, ct := multipartBody(t, "file", "../escape.txt", "hi")

		mockSvc.On("Upload", mock.Anything, mock.Anything, "../escape.txt", mock.Anything).
			Return(nil, service.ErrInvalidFilename).Once()

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res messageResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "Invalid filename", res.Message)
		mockSvc.AssertExpectations(t)
	})

	t.Run("service error", func(t *testing.T) {
		body, ct := multipartBody(t, "file", "hello.txt", "hi")

		mockSvc.On("Upload", mock.Anything, mock.Anything, "hello.txt", mock.Anything).
			Return(nil, errors.New("disk full")).Once()

		req := httptest.NewRequest(http.MethodPost, "/upload", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}

func TestListFiles(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := fiber.New()
	app.Get("/files", ListFiles(mockSvc))

	t.Run("success", func(t *testing.T) {
		files := []model.StoredFile{
			{Filename: "1-a.txt", URL: "http://example.com/file/1-a.txt"},
			{Filename: "2-b.bin", URL: "http://example.com/file/2-b.bin"},
		}
		mockSvc.On("List", mock.Anything, mock.Anything).Return(files, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/files", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result listResponse
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, files, result.Files)
		mockSvc.AssertExpectations(t)
	})

	t.Run("empty", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, mock.Anything).Return([]model.StoredFile{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/files", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var result listResponse
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Empty(t, result.Files)
	})

	t.Run("read failure surfaces underlying error", func(t *testing.T) {
		mockSvc.On("List", mock.Anything, mock.Anything).
			Return(nil, errors.New("read storage directory: permission denied")).Once()

		req := httptest.NewRequest(http.MethodGet, "/files", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

		var res listErrorResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "Failed to read directory", res.Message)
		assert.Contains(t, res.Error, "permission denied")
		mockSvc.AssertExpectations(t)
	})
}

func TestGetFile(t *testing.T) {
	mockSvc := new(serviceMocks.MockFileService)
	app := fiber.New()
	app.Get("/file/:filename", GetFile(mockSvc))

	t.Run("success with inferred content type", func(t *testing.T) {
		content := "hi"
		rc := io.NopCloser(strings.NewReader(content))
		info := storage.FileInfo{Name: "123-hello.txt", Size: int64(len(content))}
		mockSvc.On("Open", mock.Anything, "123-hello.txt").Return(rc, info, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/file/123-hello.txt", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/plain")

		body, _ := io.ReadAll(resp.Body)
		assert.Equal(t, content, string(body))
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown extension falls back to octet-stream", func(t *testing.T) {
		rc := io.NopCloser(strings.NewReader("data"))
		info := storage.FileInfo{Name: "123-blob.qqq", Size: 4}
		mockSvc.On("Open", mock.Anything, "123-blob.qqq").Return(rc, info, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/file/123-blob.qqq", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "application/octet-stream", resp.Header.Get("Content-Type"))
	})

	t.Run("not found", func(t *testing.T) {
		mockSvc.On("Open", mock.Anything, "nonexistent.txt").
			Return(nil, storage.FileInfo{}, service.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/file/nonexistent.txt", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res messageResponse
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "File not found", res.Message)
		mockSvc.AssertExpectations(t)
	})
}
