// Package rest отдаёт поиск бликов по HTTP.
package rest

import (
	"errors"
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/google/uuid"

	app "lens-finder/internal/application"
	"lens-finder/internal/infrastructure/vision"
	"lens-finder/internal/log"
)

const maxUploadSize = 20 << 20

// Server HTTP-сервер проверки фото
type Server struct {
	app   *fiber.App
	port  string
	scans *app.ScanService
}

// NewServer создаёт сервер на заданном порту поверх сервиса проверки
func NewServer(port string, scans *app.ScanService) *Server {
	s := &Server{
		port:  port,
		scans: scans,
	}

	a := fiber.New(fiber.Config{
		AppName:               "Lens Finder",
		DisableStartupMessage: true,
		BodyLimit:             maxUploadSize,
	})

	a.Use(cors.New())

	a.Get("/health", s.handleHealth)

	api := a.Group("/api")
	api.Post("/scan", s.handleScan)
	api.Post("/scan/annotated", s.handleAnnotated)

	s.app = a
	return s
}

// Start слушает порт и блокируется до Shutdown
func (s *Server) Start() error {
	log.Info("http server listening", "port", s.port)
	return s.app.Listen(":" + s.port)
}

// Shutdown останавливает сервер
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// handleScan возвращает найденные блики в JSON
func (s *Server) handleScan(c *fiber.Ctx) error {
	data, err := readUpload(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	out, err := s.scans.ProcessPhoto(c.UserContext(), data)
	if err != nil {
		return scanError(c, err)
	}

	resp := newScanResponse(uuid.NewString(), out.Result)
	if out.Description != nil {
		resp.Description = out.Description.Text
	}

	log.Info("scan completed", "id", resp.ID, "count", resp.Count, "rejected", resp.Rejected)
	return c.JSON(resp)
}

// handleAnnotated возвращает фото с рамками и счётчиком
func (s *Server) handleAnnotated(c *fiber.Ctx) error {
	data, err := readUpload(c)
	if err != nil {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}

	annotated, result, err := s.scans.Annotate(c.UserContext(), data)
	if err != nil {
		return scanError(c, err)
	}

	c.Set("X-Detected-Count", fmt.Sprint(result.Count))
	c.Set(fiber.HeaderContentType, "image/jpeg")
	return c.Send(annotated)
}

func readUpload(c *fiber.Ctx) ([]byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return nil, fmt.Errorf("multipart field \"file\" is required: %w", err)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return data, nil
}

func scanError(c *fiber.Ctx, err error) error {
	if errors.Is(err, vision.ErrEmptyImage) || errors.Is(err, vision.ErrDecode) {
		return errorJSON(c, fiber.StatusBadRequest, err)
	}
	log.Error("scan failed", "path", c.Path(), "error", err)
	return errorJSON(c, fiber.StatusInternalServerError, err)
}

func errorJSON(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}
