package requestlog

import (
	"time"

	"embed-ui/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware logging every request with its RayID.
func New(l *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		log := logger.WithRayID(l, c)
		start := time.Now()

		err := c.Next()
		if err != nil {
			log.Error("Request error", zap.Error(err))
		}

		log.Debug("Request served",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
		)
		return err
	}
}
