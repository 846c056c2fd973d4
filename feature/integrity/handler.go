package integrity

import (
	"errors"

	"notes-importer/core/logger"
	"notes-importer/core/source"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/index", h.HandleIndexCheck)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs the index and schema checks. Fetches every bundle of the notes directory.
// @Tags integrity
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if indexReport, err := h.service.CheckIndex(c.Context()); err != nil {
		report["index"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["index"] = indexReport
	}

	if schemaReport, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schemaReport
	}

	return c.JSON(report)
}

// HandleIndexCheck checks the adventure index and bundles.
// @Summary Check Adventure Index
// @Description Fetches every bundle listed in the adventure index and reports unreachable bundles and bundle lint findings.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.IndexReport "Index Report"
// @Failure 502 {object} map[string]string "Notes directory unreachable"
// @Router /integrity/index [get]
func (h *Handler) HandleIndexCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckIndex(c.Context())
	if err != nil {
		l.Error("Index check failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, source.ErrFetch) {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Matched {
		l.Warn("Index check found problems", zap.String("location", report.Location))
	}
	return c.JSON(report)
}

// HandleSchemaCheck checks the host schema.
// @Summary Check Host Schema
// @Description Checks that the folder, journal entry and external tag tables have the columns the importer uses.
// @Tags integrity
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting host schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}

