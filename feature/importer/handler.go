package importer

import (
	"context"
	"errors"

	"notes-importer/core/hoststore"
	"notes-importer/core/logger"
	"notes-importer/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the importer.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ImportRequest is the body of an import request.
type ImportRequest struct {
	// Adventure is the selected adventure id. Empty cancels the import.
	Adventure string `json:"adventure"`
}

// ImportResponse is the body of a finished import.
type ImportResponse struct {
	Result
	Notifications []string `json:"notifications"`
}

// RegisterRoutes registers the importer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/adventures", h.HandleListAdventures)
	group := app.Group("/folders/:id")
	group.Get("/actions", h.HandleFolderActions)
	group.Post("/import", h.HandleImport)
}

// HandleListAdventures lists the adventures available for import.
// @Summary List Adventures
// @Description Reads the adventure index from the notes directory.
// @Tags importer
// @Produce json
// @Success 200 {array} source.Option "Adventures sorted by name"
// @Failure 502 {object} map[string]string "Notes directory unreachable"
// @Router /adventures [get]
func (h *Handler) HandleListAdventures(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	options, err := h.service.ListAdventures(c.Context())
	if err != nil {
		l.Error("Failed to list adventures", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(options)
}

// HandleFolderActions lists the menu entries of a folder.
// @Summary Folder Actions
// @Description Returns the context menu entries available to a user on a folder.
// @Tags importer
// @Produce json
// @Param id path string true "Folder ID"
// @Param user query string false "User role (player, trusted, assistant, gamemaster)"
// @Success 200 {array} MenuAction "Menu entries"
// @Failure 404 {object} map[string]string "Folder not found"
// @Router /folders/{id}/actions [get]
func (h *Handler) HandleFolderActions(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	user := User{Role: c.Query("user", RolePlayer)}

	actions, err := h.service.Actions(c.Context(), c.Params("id"), user)
	if err != nil {
		l.Error("Failed to list folder actions", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}
	if actions == nil {
		actions = []MenuAction{}
	}
	return c.JSON(actions)
}

// HandleImport imports an adventure into a folder.
// @Summary Import Notes
// @Description Imports the selected adventure's folders and journal entries under the folder. Re-importing updates what a previous import created.
// @Tags importer
// @Accept json
// @Produce json
// @Param id path string true "Root folder ID"
// @Param user query string false "User role" default(gamemaster)
// @Param request body ImportRequest true "Selected adventure"
// @Success 200 {object} ImportResponse "Import result"
// @Failure 400 {object} map[string]string "Invalid body"
// @Failure 403 {object} map[string]string "Not allowed"
// @Failure 404 {object} map[string]string "Folder not found"
// @Failure 502 {object} map[string]string "Notes directory unreachable"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /folders/{id}/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	var notifications []string
	notifier := NotifierFunc(func(_ context.Context, message string) {
		notifications = append(notifications, message)
	})
	user := User{Role: c.Query("user", RoleGamemaster)}

	result, err := h.service.Trigger(c.Context(), c.Params("id"), user, ImportActionName, Fixed(req.Adventure), notifier)
	if err != nil {
		l.Error("Import failed", zap.String("folder", c.Params("id")), zap.Error(err))
		body := fiber.Map{"error": err.Error()}
		if result != nil {
			body["state"] = result.State
		}
		return c.Status(statusFor(err)).JSON(body)
	}

	if notifications == nil {
		notifications = []string{}
	}
	return c.JSON(ImportResponse{Result: *result, Notifications: notifications})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, hoststore.ErrNotFound), errors.Is(err, ErrActionNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrActionNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, source.ErrFetch):
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
