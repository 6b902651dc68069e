package http

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// AccessLog tags every request with an id and logs one line when it finishes.
func AccessLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(requestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(requestIDHeader, rid)
		c.Locals(requestIDHeader, rid)

		err := c.Next()
		if err != nil {
			// run the error handler now so the logged status is the one sent
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		slog.Info("HTTP access",
			"request_id", rid,
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start).String(),
			"ip", c.IP(),
		)
		return nil
	}
}

func requestID(c *fiber.Ctx) string {
	if rid, ok := c.Locals(requestIDHeader).(string); ok {
		return rid
	}
	return c.Get(requestIDHeader)
}
