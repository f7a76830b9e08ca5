package middleware

import (
	"errors"

	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

// GameIDKey is the Locals key holding the id of a game that exists.
const GameIDKey = "gameID"

// RequireGame rejects requests whose :gameId names no running game.
func RequireGame(gameService *service.GameService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Params point into the request buffer, which fasthttp reuses.
		gameID := utils.CopyString(c.Params("gameId"))
		if gameID == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "game ID is required",
			})
		}
		if _, err := gameService.GetGame(gameID); err != nil {
			if errors.Is(err, service.ErrGameNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": err.Error(),
				})
			}
			return err
		}

		c.Locals(GameIDKey, gameID)
		return c.Next()
	}
}
