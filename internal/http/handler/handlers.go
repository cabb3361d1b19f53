package handler

import (
	"errors"
	"mime"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"filegate/internal/model"
	"filegate/internal/service"
)

type uploadResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
}

type listResponse struct {
	Files []model.StoredFile `json:"files"`
}

type listErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// Health reports process liveness. It is the only unauthenticated route.
//
// @Summary Health check
// @Produce json
// @Success 200 {object} handler.messageResponse
// @Router /api/health [get]
func Health() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return writeMessage(c, fiber.StatusOK, "server is running")
	}
}

// UploadFile accepts one file in the multipart form field "file", stores it
// under a generated name, and returns the retrieval URL.
//
// @Summary Upload a file
// @Accept mpfd
// @Produce json
// @Param file formData file true "file to store"
// @Param x-api-key header string true "API key"
// @Success 200 {object} handler.uploadResponse
// @Failure 400 {object} handler.messageResponse
// @Failure 403 {object} handler.messageResponse
// @Router /upload [post]
func UploadFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeMessage(c, fiber.StatusBadRequest, "No file uploaded")
		}

		f, err := fh.Open()
		if err != nil {
			return writeMessage(c, fiber.StatusBadRequest, "No file uploaded")
		}
		defer f.Close()

		stored, err := svc.Upload(c.UserContext(), f, fh.Filename, c.BaseURL())
		if err != nil {
			if errors.Is(err, service.ErrInvalidFilename) {
				return writeMessage(c, fiber.StatusBadRequest, "Invalid filename")
			}
			return writeMessage(c, fiber.StatusInternalServerError, "Failed to store file")
		}

		return c.Status(fiber.StatusOK).JSON(uploadResponse{
			Message:  "File uploaded successfully",
			Filename: stored.Filename,
			URL:      stored.URL,
		})
	}
}

// ListFiles enumerates every stored file with its retrieval URL.
//
// @Summary List stored files
// @Produce json
// @Param x-api-key header string true "API key"
// @Success 200 {object} handler.listResponse
// @Failure 403 {object} handler.messageResponse
// @Failure 500 {object} handler.listErrorResponse
// @Router /files [get]
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		files, err := svc.List(c.UserContext(), c.BaseURL())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(listErrorResponse{
				Message: "Failed to read directory",
				Error:   err.Error(),
			})
		}
		return c.Status(fiber.StatusOK).JSON(listResponse{Files: files})
	}
}

// GetFile streams a stored file's content, inferring the content type from
// the filename extension.
//
// @Summary Retrieve a stored file
// @Produce octet-stream
// @Param filename path string true "stored filename"
// @Param x-api-key header string true "API key"
// @Success 200 {file} binary
// @Failure 403 {object} handler.messageResponse
// @Failure 404 {object} handler.messageResponse
// @Router /file/{filename} [get]
func GetFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filename := c.Params("filename")

		rc, info, err := svc.Open(c.UserContext(), filename)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return writeMessage(c, fiber.StatusNotFound, "File not found")
			}
			return writeMessage(c, fiber.StatusInternalServerError, "Failed to read file")
		}

		ct := mime.TypeByExtension(filepath.Ext(filename))
		if ct == "" {
			ct = "application/octet-stream"
		}
		c.Set(fiber.HeaderContentType, ct)

		return c.SendStream(rc, int(info.Size))
	}
}
