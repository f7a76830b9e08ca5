package controller

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/apex/log"
	"github.com/benbeisheim/chess-backend/internal/engine"
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/benbeisheim/chess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
	hub         *ws.Hub
}

// NewWebSocketController subscribes the hub to state changes so every
// connection of a game sees each new position.
func NewWebSocketController(gameService *service.GameService, hub *ws.Hub) *WebSocketController {
	wsc := &WebSocketController{
		gameService: gameService,
		hub:         hub,
	}
	gameService.Subscribe(wsc.onEvent)
	return wsc
}

func (wsc *WebSocketController) onEvent(ev service.Event) {
	if ev.Deleted {
		wsc.hub.CloseGame(ev.GameID)
		return
	}
	msg, err := ws.NewMessage(ws.MessageTypeGameState, ev.State)
	if err != nil {
		log.WithError(err).WithField("game", ev.GameID).Error("encode state")
		return
	}
	wsc.hub.Broadcast(ev.GameID, msg)
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	if gameID == "" {
		gameID = c.Params("gameId")
	}
	entry := log.WithField("game", gameID)

	state, err := wsc.gameService.GameView(gameID)
	if err != nil {
		entry.WithError(err).Warn("rejecting connection")
		_ = c.WriteJSON(ws.NewErrorMessage(err))
		c.Close()
		return
	}

	client := wsc.hub.Register(gameID, c)
	defer wsc.hub.Unregister(client)

	if msg, err := ws.NewMessage(ws.MessageTypeGameState, state); err == nil {
		if err := client.Send(msg); err != nil {
			entry.WithError(err).Debug("initial state write failed")
			return
		}
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			entry.WithError(err).Debug("connection closed")
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			_ = client.Send(ws.NewErrorMessage(fmt.Errorf("parse message: %w", err)))
			continue
		}
		if err := wsc.handleMessage(gameID, msg); err != nil {
			entry.WithError(err).WithField("type", string(msg.Type)).Debug("message rejected")
			_ = client.Send(ws.NewErrorMessage(err))
		}
	}
}

// handleMessage applies one client message. Successful changes reach every
// client through the state broadcast.
func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var req model.MoveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return fmt.Errorf("parse move: %w", err)
		}
		_, err := wsc.gameService.AttemptMove(gameID, req)
		if errors.Is(err, engine.ErrPromotionChoiceMissing) {
			// The pending state has already been broadcast.
			return nil
		}
		return err

	case ws.MessageTypePromotion:
		var req model.PromotionRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return fmt.Errorf("parse promotion: %w", err)
		}
		if req.Promotion == "" {
			_, err := wsc.gameService.CancelPromotion(gameID)
			return err
		}
		_, err := wsc.gameService.CompletePromotion(gameID, req.Promotion)
		return err

	case ws.MessageTypeReset:
		_, err := wsc.gameService.ResetGame(gameID)
		return err

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}
