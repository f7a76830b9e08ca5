package controller

import (
	"errors"

	"github.com/apex/log"
	"github.com/benbeisheim/chess-backend/internal/engine"
	"github.com/benbeisheim/chess-backend/internal/middleware"
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

// statusFor maps service and engine errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound), errors.Is(err, engine.ErrNoSuchPiece):
		return fiber.StatusNotFound
	case errors.Is(err, engine.ErrInvalidSquare), errors.Is(err, engine.ErrInvalidPromotion):
		return fiber.StatusBadRequest
	case errors.Is(err, engine.ErrNotYourTurn), errors.Is(err, engine.ErrNoSuchLegalMove),
		errors.Is(err, engine.ErrGameOver), errors.Is(err, engine.ErrNoPendingPromotion):
		return fiber.StatusConflict
	case errors.Is(err, engine.ErrPromotionChoiceMissing):
		return fiber.StatusAccepted
	}
	return fiber.StatusInternalServerError
}

func respondError(c *fiber.Ctx, err error) error {
	status := statusFor(err)
	if status == fiber.StatusInternalServerError {
		log.WithError(err).WithField("path", c.Path()).Error("unexpected error")
	}
	return c.Status(status).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func gameID(c *fiber.Ctx) string {
	if id, ok := c.Locals(middleware.GameIDKey).(string); ok {
		return id
	}
	return c.Params("gameId")
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	state, err := gc.gameService.CreateGame()
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Game created",
		"game_id": state.ID,
		"state":   state,
	})
}

func (gc *GameController) ListGames(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"games": gc.gameService.ListGames(),
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	state, err := gc.gameService.GameView(gameID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) GetLegalMoves(c *fiber.Ctx) error {
	pieceID, err := c.ParamsInt("pieceId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "piece ID must be an integer",
		})
	}
	moves, err := gc.gameService.LegalMoves(gameID(c), pieceID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{
		"pieceId": pieceID,
		"moves":   moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var req model.MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move request",
		})
	}
	state, err := gc.gameService.AttemptMove(gameID(c), req)
	if errors.Is(err, engine.ErrPromotionChoiceMissing) {
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"error":            err.Error(),
			"pendingPromotion": state.PendingPromotion,
			"state":            state,
		})
	}
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) CompletePromotion(c *fiber.Ctx) error {
	var req model.PromotionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid promotion request",
		})
	}
	if req.Promotion == "" {
		return respondError(c, engine.ErrInvalidPromotion)
	}
	state, err := gc.gameService.CompletePromotion(gameID(c), req.Promotion)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) CancelPromotion(c *fiber.Ctx) error {
	state, err := gc.gameService.CancelPromotion(gameID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) ResetGame(c *fiber.Ctx) error {
	state, err := gc.gameService.ResetGame(gameID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) DeleteGame(c *fiber.Ctx) error {
	if err := gc.gameService.DeleteGame(gameID(c)); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
