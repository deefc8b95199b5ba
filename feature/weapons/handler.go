package weapons

import (
	"bytes"
	"errors"

	"naval-tables/core/logger"
	"naval-tables/core/utils"
	"naval-tables/feature/render"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for weapon tables.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the weapons routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/weapons", h.HandleGetWeapons)
}

// HandleGetWeapons rebuilds the table from the configured weapons directory and renders it.
// Query parameters: format (default wiki), min and max caliber in mm, raw.
func (h *Handler) HandleGetWeapons(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts := render.DefaultOptions()
	opts.WikiBaseURL = h.service.cfg.WikiBaseURL
	if f := c.Query("format"); f != "" {
		format, err := render.ParseFormat(f)
		if err != nil {
			return badRequest(c, err)
		}
		opts.Format = format
	}
	opts.RawNames = utils.ToBool(c.Query("raw"))

	filter := DefaultFilter()
	filter.EconomySuffix = h.service.cfg.EconomySuffix
	for _, q := range []struct {
		name string
		dst  *float64
	}{
		{"min", &filter.MinCaliberMm},
		{"max", &filter.MaxCaliberMm},
	} {
		raw := c.Query(q.name)
		if raw == "" {
			continue
		}
		v, err := utils.ToFloat(raw)
		if err != nil {
			return badRequest(c, errors.New("invalid "+q.name+" caliber"))
		}
		*q.dst = v
	}

	records, err := h.service.Run(c.Context(), Request{
		WeaponsDir: h.service.cfg.WeaponsDir,
		Filter:     filter,
	})
	if err != nil {
		l.Error("Weapon table build failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var buf bytes.Buffer
	if err := render.Render(&buf, records, opts); err != nil {
		l.Error("Weapon table render failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Debug("Weapon table served", zap.String("format", string(opts.Format)), zap.Int("records", len(records)))
	c.Set(fiber.HeaderContentType, opts.Format.ContentType())
	return c.Send(buf.Bytes())
}

func badRequest(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
