package handler

import (
	"github.com/gofiber/fiber/v2"

	"filegate/internal/config"
	"filegate/internal/http/middleware"
	"filegate/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Every file route sits behind the API key filter; the health check is the
// single unauthenticated endpoint.
func RegisterRoutes(app *fiber.App, cfg *config.AppConfig, svc service.FileService) {
	auth := middleware.APIKey(cfg.APIKey)

	app.Get("/api/health", Health())

	app.Post("/upload", auth, UploadFile(svc))
	app.Get("/files", auth, ListFiles(svc))
	app.Get("/file/:filename", auth, GetFile(svc))
}
