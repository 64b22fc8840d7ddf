package words

import (
	"errors"

	"grimoire/core/logger"
	"grimoire/core/middleware/metrics"
	"grimoire/core/utils"
	"grimoire/feature/words/models"

	"github.com/gofiber/fiber/v2"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"
)

// CacheStatusHeader reports whether a word was served from the cache.
const CacheStatusHeader = "X-Cache-Status"

// Error codes returned in error bodies.
const (
	CodeInvalidWord         = "INVALID_WORD_FORMAT"
	CodeNotFound            = "WORD_NOT_FOUND"
	CodeInvalidRelationship = "INVALID_RELATIONSHIP_TYPE"
	CodeInternal            = "INTERNAL_ERROR"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	ErrorCode   string         `json:"error_code"`
	Message     string         `json:"message"`
	Details     map[string]any `json:"details,omitempty"`
	Suggestions []string       `json:"suggestions"`
}

// RelatedResponse is the body of a relation query.
type RelatedResponse struct {
	Word         string               `json:"word"`
	RelatedWords []models.RelatedWord `json:"related_words"`
}

// Handler handles HTTP requests for words.
type Handler struct {
	service *Service
	logger  *zap.Logger
	metrics *metrics.Metrics
	limits  []fiber.Handler
	protect fiber.Handler
}

// NewHandler creates a new HTTP handler. limits guard the read routes,
// protect guards the routes that change stored words. m may be nil.
func NewHandler(service *Service, logger *zap.Logger, m *metrics.Metrics, protect fiber.Handler, limits ...fiber.Handler) *Handler {
	if protect == nil {
		protect = func(c *fiber.Ctx) error { return c.Next() }
	}
	return &Handler{service: service, logger: logger, metrics: m, limits: limits, protect: protect}
}

// RegisterRoutes registers the word routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/words")

	read := append(append([]fiber.Handler{}, h.limits...), h.HandleGetWord)
	group.Get("/:word", read...)

	related := append(append([]fiber.Handler{}, h.limits...), h.HandleGetRelated)
	group.Get("/:word/related", related...)

	group.Post("/:word/refresh", h.protect, h.HandleRefreshWord)
	group.Delete("/:word", h.protect, h.HandleDeleteWord)
}

func errorJSON(c *fiber.Ctx, status int, code, message string, details map[string]any, suggestions []string) error {
	if suggestions == nil {
		suggestions = []string{}
	}
	return c.Status(status).JSON(ErrorResponse{
		ErrorCode:   code,
		Message:     message,
		Details:     details,
		Suggestions: suggestions,
	})
}

func invalidWord(c *fiber.Ctx, word string) error {
	return errorJSON(c, fiber.StatusBadRequest, CodeInvalidWord,
		"Word must contain only lowercase letters, optionally joined by single hyphens",
		map[string]any{"word": word, "pattern": models.WordPattern.String()}, nil)
}

func notFound(c *fiber.Ctx, word string, suggestions []string) error {
	return errorJSON(c, fiber.StatusNotFound, CodeNotFound,
		"No data found for '"+word+"'",
		map[string]any{"word": word}, suggestions)
}

func (h *Handler) internalError(c *fiber.Ctx, msg string, err error) error {
	logger.WithRayID(h.logger, c).Error(msg, zap.Error(err))
	return errorJSON(c, fiber.StatusInternalServerError, CodeInternal, msg, nil, nil)
}

// shape trims a record to the sections the client asked for.
func shape(r *models.WordRecord, includeExamples, includeRelated bool) *models.WordRecord {
	out := *r
	if !includeExamples {
		out.Definitions = make([]models.Definition, len(r.Definitions))
		for i, d := range r.Definitions {
			d.Examples = []models.UsageExample{}
			out.Definitions[i] = d
		}
	}
	if !includeRelated {
		out.RelatedWords = []models.RelatedWord{}
	}
	return &out
}

func (h *Handler) observeCache(status string) {
	switch status {
	case CacheHit:
		h.metrics.ObserveCache(metrics.CacheHit)
	case CacheMiss:
		h.metrics.ObserveCache(metrics.CacheMiss)
	}
}

func queryBool(c *fiber.Ctx, key string, def bool) bool {
	v := c.Query(key)
	if v == "" {
		return def
	}
	return utils.ToBool(v)
}

// HandleGetWord looks a word up, enriching it on first use.
// @Summary Look up a word
// @Description Returns definitions, examples, phonetics, grammar, learning metadata and related words.
// @Tags words
// @Produce json
// @Param word path string true "Word (e.g. 'serendipity')"
// @Param include_examples query bool false "Include usage examples" default(true)
// @Param include_related query bool false "Include related words" default(true)
// @Success 200 {object} models.WordRecord "Word"
// @Header 200 {string} X-Cache-Status "HIT or MISS"
// @Failure 400 {object} ErrorResponse "Invalid word format"
// @Failure 404 {object} ErrorResponse "Word not found"
// @Failure 429 {object} ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /words/{word} [get]
func (h *Handler) HandleGetWord(c *fiber.Ctx) error {
	word := fiberutils.CopyString(c.Params("word"))

	res, err := h.service.Lookup(c.UserContext(), word)
	if errors.Is(err, ErrInvalidWord) {
		return invalidWord(c, word)
	}
	if err != nil {
		return h.internalError(c, "Word lookup failed", err)
	}

	c.Set(CacheStatusHeader, res.CacheStatus)
	h.observeCache(res.CacheStatus)
	if res.Status == StatusNotFound {
		return notFound(c, word, res.Suggestions)
	}

	return c.JSON(shape(res.Record, queryBool(c, "include_examples", true), queryBool(c, "include_related", true)))
}

// HandleGetRelated lists the related words of a word.
// @Summary List related words
// @Description Returns the related words of a word, strongest first.
// @Tags words
// @Produce json
// @Param word path string true "Word"
// @Param type query string false "Relationship type (synonym, antonym, derivative, compound, hypernym, hyponym, related)"
// @Success 200 {object} RelatedResponse "Related words"
// @Failure 400 {object} ErrorResponse "Invalid word or relationship type"
// @Failure 404 {object} ErrorResponse "Word not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /words/{word}/related [get]
func (h *Handler) HandleGetRelated(c *fiber.Ctx) error {
	word := fiberutils.CopyString(c.Params("word"))
	relType := models.RelationshipType(c.Query("type"))

	res, err := h.service.Related(c.UserContext(), word, relType)
	switch {
	case errors.Is(err, ErrInvalidWord):
		return invalidWord(c, word)
	case errors.Is(err, ErrInvalidRelationship):
		return errorJSON(c, fiber.StatusBadRequest, CodeInvalidRelationship,
			"Unknown relationship type", map[string]any{"type": string(relType)}, nil)
	case err != nil:
		return h.internalError(c, "Related words lookup failed", err)
	}

	if res.Status == StatusNotFound {
		return notFound(c, word, res.Suggestions)
	}
	return c.JSON(RelatedResponse{Word: res.Word, RelatedWords: res.Related})
}

// HandleRefreshWord re-enriches a stored word.
// @Summary Refresh a word
// @Description Re-runs enrichment and replaces the stored record.
// @Tags words
// @Produce json
// @Security ApiKeyAuth
// @Param word path string true "Word"
// @Success 200 {object} models.WordRecord "Refreshed word"
// @Failure 400 {object} ErrorResponse "Invalid word format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Enrichment failed"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /words/{word}/refresh [post]
func (h *Handler) HandleRefreshWord(c *fiber.Ctx) error {
	word := fiberutils.CopyString(c.Params("word"))

	res, err := h.service.Refresh(c.UserContext(), word)
	if errors.Is(err, ErrInvalidWord) {
		return invalidWord(c, word)
	}
	if err != nil {
		return h.internalError(c, "Word refresh failed", err)
	}
	if res.Status == StatusNotFound {
		return notFound(c, word, res.Suggestions)
	}

	c.Set(CacheStatusHeader, res.CacheStatus)
	return c.JSON(res.Record)
}

// HandleDeleteWord removes a stored word.
// @Summary Delete a word
// @Description Deletes a word with all of its data and evicts it from the cache.
// @Tags words
// @Security ApiKeyAuth
// @Param word path string true "Word"
// @Success 204 "Deleted"
// @Failure 400 {object} ErrorResponse "Invalid word format"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Word not found"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /words/{word} [delete]
func (h *Handler) HandleDeleteWord(c *fiber.Ctx) error {
	word := fiberutils.CopyString(c.Params("word"))

	deleted, err := h.service.Delete(c.UserContext(), word)
	if errors.Is(err, ErrInvalidWord) {
		return invalidWord(c, word)
	}
	if err != nil {
		return h.internalError(c, "Word delete failed", err)
	}
	if !deleted {
		return notFound(c, word, nil)
	}

	logger.WithRayID(h.logger, c).Info("Word deleted", zap.String("word", word))
	return c.SendStatus(fiber.StatusNoContent)
}
