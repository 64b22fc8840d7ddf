package integrity

import (
	"grimoire/core/logger"
	"grimoire/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes behind protect.
func (h *Handler) RegisterRoutes(app fiber.Router, protect ...fiber.Handler) {
	group := app.Group("/integrity", protect...)
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/datasets", h.HandleDatasetCheck)
	group.Post("/datasets/fix", h.HandleDatasetFix)
	group.Get("/schema", h.HandleSchemaCheck)
}

// HandleIntegrityCheck triggers all integrity checks.
// @Summary Run All Integrity Checks
// @Description Performs all available integrity checks (Datasets, Schema).
// @Tags integrity
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if missing, err := h.service.CheckDatasets(c.UserContext()); err != nil {
		report["datasets"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["datasets"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if schema, err := h.service.CheckSchema(); err != nil {
		report["schema"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["schema"] = schema
	}

	return c.JSON(report)
}

// HandleDatasetCheck checks the reference datasets in the bucket.
// @Summary Check Datasets
// @Description Checks that every reference dataset used for enrichment exists in the storage bucket. Missing datasets fall back to built-in copies.
// @Tags integrity
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Dataset Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/datasets [get]
func (h *Handler) HandleDatasetCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckDatasets(c.UserContext())
	if err != nil {
		l.Error("Dataset check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(missing) > 0 {
		l.Warn("Missing datasets detected", zap.Strings("missing", missing))
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleDatasetFix uploads the built-in copy of every missing dataset.
// @Summary Fix Datasets
// @Description Uploads the built-in copy of every dataset missing from the storage bucket.
// @Tags integrity
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} map[string]interface{} "Fix Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/datasets/fix [post]
func (h *Handler) HandleDatasetFix(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	missing, err := h.service.CheckDatasets(c.UserContext())
	if err != nil {
		l.Error("Dataset check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if len(missing) == 0 {
		return c.JSON(fiber.Map{"status": "checked", "missing": missing})
	}

	l.Info("Attempting to fix missing datasets", zap.Strings("missing", missing))
	if err := h.service.FixDatasets(c.UserContext(), missing); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   "Failed to fix datasets",
			"details": err.Error(),
			"missing": missing,
		})
	}
	return c.JSON(fiber.Map{
		"status": "fixed",
		"fixed":  missing,
	})
}

// HandleSchemaCheck checks the database schema.
// @Summary Check Database Schema
// @Description Checks if the database schema matches the word models.
// @Tags integrity
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} checks.SchemaReport "Schema Check Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/schema [get]
func (h *Handler) HandleSchemaCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting schema check")

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
