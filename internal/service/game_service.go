package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/apex/log"
	"github.com/benbeisheim/chess-backend/internal/engine"
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/google/uuid"
)

// Event announces a state change of one game. State is zero when Deleted is set.
type Event struct {
	GameID  string
	State   model.GameState
	Deleted bool
}

type Listener func(Event)

type GameService struct {
	gameManager *GameManager

	mu        sync.RWMutex
	listeners []Listener
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

// Subscribe registers fn for every later state change. Listeners run on the
// goroutine that caused the change.
func (gs *GameService) Subscribe(fn Listener) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.listeners = append(gs.listeners, fn)
}

func (gs *GameService) publish(ev Event) {
	gs.mu.RLock()
	listeners := append([]Listener(nil), gs.listeners...)
	gs.mu.RUnlock()
	for _, fn := range listeners {
		fn(ev)
	}
}

func (gs *GameService) CreateGame() (model.GameState, error) {
	gameID := uuid.New().String()
	session := engine.NewSession()

	if err := gs.gameManager.CreateGame(gameID, session); err != nil {
		return model.GameState{}, fmt.Errorf("failed to create game: %w", err)
	}

	log.WithField("game", gameID).Info("game created")
	return model.NewGameState(gameID, session.Snapshot()), nil
}

func (gs *GameService) GetGame(gameID string) (*engine.Session, error) {
	return gs.gameManager.GetGame(gameID)
}

func (gs *GameService) ListGames() []string {
	return gs.gameManager.GameIDs()
}

func (gs *GameService) GameView(gameID string) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	return model.NewGameState(gameID, session.Snapshot()), nil
}

// LegalMoves lists where pieceID may go now. Unknown pieces are an error;
// a known piece that cannot move yields an empty list.
func (gs *GameService) LegalMoves(gameID string, pieceID int) ([]model.LegalMove, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, err
	}
	id := engine.PieceID(pieceID)
	if _, ok := session.Piece(id); !ok {
		return nil, fmt.Errorf("piece %d: %w", pieceID, engine.ErrNoSuchPiece)
	}
	return model.NewLegalMoves(session.LegalMovesFor(id)), nil
}

// AttemptMove returns the new state and, for a promotion without a choice,
// ErrPromotionChoiceMissing together with the state showing the pending move.
func (gs *GameService) AttemptMove(gameID string, req model.MoveRequest) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	kind, err := req.Promotion.Kind()
	if err != nil {
		return model.GameState{}, err
	}

	to := req.Destination()
	entry := log.WithFields(log.Fields{"game": gameID, "piece": req.PieceID, "to": to.String()})
	out, err := session.AttemptMove(engine.PieceID(req.PieceID), to, kind)
	if err != nil {
		if out.Pending && errors.Is(err, engine.ErrPromotionChoiceMissing) {
			entry.Debug("promotion awaiting choice")
			state := model.NewGameState(gameID, session.Snapshot())
			gs.publish(Event{GameID: gameID, State: state})
			return state, err
		}
		entry.WithError(err).Debug("move rejected")
		return model.GameState{}, err
	}
	return gs.played(gameID, session, out, entry), nil
}

func (gs *GameService) CompletePromotion(gameID string, promotion model.PieceType) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	kind, err := promotion.Kind()
	if err != nil {
		return model.GameState{}, err
	}
	entry := log.WithFields(log.Fields{"game": gameID, "promotion": string(promotion)})
	out, err := session.CompletePromotion(kind)
	if err != nil {
		entry.WithError(err).Debug("promotion rejected")
		return model.GameState{}, err
	}
	return gs.played(gameID, session, out, entry.WithField("piece", int(out.Ply.Piece)).WithField("to", out.Ply.To.String())), nil
}

func (gs *GameService) CancelPromotion(gameID string) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	if err := session.CancelPromotion(); err != nil {
		return model.GameState{}, err
	}
	state := model.NewGameState(gameID, session.Snapshot())
	gs.publish(Event{GameID: gameID, State: state})
	return state, nil
}

func (gs *GameService) played(gameID string, session *engine.Session, out engine.MoveOutcome, entry *log.Entry) model.GameState {
	entry = entry.WithField("notation", out.Ply.Notation)
	if out.Outcome.Over() {
		entry.WithField("outcome", out.Outcome.Result.String()).Info("game finished")
	} else {
		entry.Info("move played")
	}
	state := model.NewGameState(gameID, session.Snapshot())
	gs.publish(Event{GameID: gameID, State: state})
	return state
}

func (gs *GameService) ResetGame(gameID string) (model.GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}
	session.StartNewGame()
	log.WithField("game", gameID).Info("game reset")

	state := model.NewGameState(gameID, session.Snapshot())
	gs.publish(Event{GameID: gameID, State: state})
	return state, nil
}

func (gs *GameService) DeleteGame(gameID string) error {
	if err := gs.gameManager.DeleteGame(gameID); err != nil {
		return err
	}
	log.WithField("game", gameID).Info("game deleted")
	gs.publish(Event{GameID: gameID, Deleted: true})
	return nil
}
