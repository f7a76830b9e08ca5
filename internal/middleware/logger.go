package middleware

import (
	"errors"
	"time"

	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// RequestLogger writes one entry per request once the handler chain returns.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if err != nil {
			status = fiber.StatusInternalServerError
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		entry := log.WithFields(log.Fields{
			"method":   utils.CopyString(c.Method()),
			"path":     utils.CopyString(c.Path()),
			"status":   status,
			"duration": time.Since(start).String(),
		})
		if gameID, ok := c.Locals(GameIDKey).(string); ok {
			entry = entry.WithField("game", gameID)
		}
		switch {
		case status >= fiber.StatusInternalServerError:
			entry.WithError(err).Error("request failed")
		case status >= fiber.StatusBadRequest:
			entry.Warn("request rejected")
		default:
			entry.Info("request")
		}
		return err
	}
}
