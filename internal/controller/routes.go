package controller

import (
	"strings"

	"github.com/benbeisheim/chess-backend/internal/middleware"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/websocket/v2"
)

// SetupRoutes mounts the REST API under /api and the live view under /ws.
func SetupRoutes(app *fiber.App, gameService *service.GameService, gc *GameController, wsc *WebSocketController, origins []string) {
	allowOrigins := strings.Join(origins, ", ")
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
		// fiber refuses credentials together with a wildcard origin
		AllowCredentials: allowOrigins != "*",
	}))
	app.Use(middleware.RequestLogger())

	requireGame := middleware.RequireGame(gameService)

	app.Get("/ws/game/:gameId", requireGame, middleware.WebSocketUpgrade(), websocket.New(wsc.HandleConnection, websocket.Config{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		Origins:         origins,
	}))

	api := app.Group("/api")

	gameRoutes := api.Group("/game")
	gameRoutes.Post("/", gc.CreateGame)
	gameRoutes.Get("/", gc.ListGames)
	gameRoutes.Get("/:gameId", requireGame, gc.GetGameState)
	gameRoutes.Delete("/:gameId", requireGame, gc.DeleteGame)
	gameRoutes.Get("/:gameId/moves/:pieceId", requireGame, gc.GetLegalMoves)
	gameRoutes.Post("/:gameId/move", requireGame, gc.MakeMove)
	gameRoutes.Post("/:gameId/promotion", requireGame, gc.CompletePromotion)
	gameRoutes.Delete("/:gameId/promotion", requireGame, gc.CancelPromotion)
	gameRoutes.Post("/:gameId/reset", requireGame, gc.ResetGame)
}
