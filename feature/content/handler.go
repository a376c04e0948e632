package content

import (
	"errors"

	"embed-ui/core/logger"
	"embed-ui/core/middleware/auth"

	_ "embed-ui/docs/swagger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the served application.
type Handler struct {
	service    *Service
	token      string
	production bool
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, token string, production bool) *Handler {
	return &Handler{service: service, token: token, production: production}
}

// RegisterRoutes registers the page, the UI event routes and, outside
// production mode, their API documentation.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandlePage)

	group := app.Group("/_ui")
	if !h.production {
		group.Get("/docs/*", swagger.HandlerDefault)
	}

	events := group.Group("/click", auth.New(auth.Config{Header: tokenHeader, Token: h.token}))
	events.Post("/:id", h.HandleClick)
}

// HandlePage renders the application.
// @Summary Render Application
// @Description Renders the application page. Outside production mode the debug query parameter adds a panel with the effective configuration.
// @Tags ui
// @Produce html
// @Param debug query string false "Show the debug panel"
// @Success 200 {string} string "Application page"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router / [get]
func (h *Handler) HandlePage(c *fiber.Ctx) error {
	debug := !h.production && c.Context().QueryArgs().Has("debug")

	page, err := h.service.Page(h.token, debug)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Page rendering failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	c.Type("html", "utf-8")
	return c.SendString(page)
}

// HandleClick dispatches a button click.
// @Summary Click Button
// @Description Runs the click listener of a rendered button and tells the browser whether to reload or close the page.
// @Tags ui
// @Produce json
// @Param id path string true "Button id from the data-ui-click attribute"
// @Param X-UI-Token header string true "Per-server token from the ui-token meta tag"
// @Success 200 {object} content.ClickResult "Click result"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Failure 404 {object} map[string]string "Unknown button"
// @Failure 500 {object} map[string]string "Listener failed"
// @Router /_ui/click/{id} [post]
func (h *Handler) HandleClick(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.service.logger, c).With(zap.String("button", id))

	res, err := h.service.Click(id)
	if errors.Is(err, ErrUnknownButton) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Click listener failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Debug("Button clicked", zap.Bool("close", res.Close))
	return c.JSON(res)
}
