package service

import (
	"errors"
	"sync"
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/benbeisheim/chess-backend/internal/engine"
	"github.com/benbeisheim/chess-backend/internal/model"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) listen(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *recorder) all() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func newTestService(t *testing.T) (*GameService, *recorder) {
	t.Helper()
	gs := NewGameService(NewGameManager())
	rec := &recorder{}
	gs.Subscribe(rec.listen)
	return gs, rec
}

func pieceAt(t *testing.T, state model.GameState, square string) *model.Piece {
	t.Helper()
	pos := model.PositionOf(engine.MustSquare(square))
	p := state.Board.Board[pos.Y][pos.X]
	if p == nil {
		t.Fatalf("no piece on %s", square)
	}
	return p
}

func moveReq(t *testing.T, state model.GameState, from, to string) model.MoveRequest {
	t.Helper()
	pos := model.PositionOf(engine.MustSquare(to))
	return model.MoveRequest{PieceID: pieceAt(t, state, from).ID, To: &pos}
}

func TestGameManagerRegistry(t *testing.T) {
	gm := NewGameManager()
	for _, id := range []string{"c", "a", "b"} {
		if err := gm.CreateGame(id, engine.NewSession()); err != nil {
			t.Fatal(err)
		}
	}
	if err := gm.CreateGame("a", engine.NewSession()); !errors.Is(err, ErrGameExists) {
		t.Errorf("duplicate CreateGame err = %v; want ErrGameExists", err)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, gm.GameIDs()); diff != "" {
		t.Errorf("GameIDs (-want +got):\n%s", diff)
	}
	if err := gm.DeleteGame("b"); err != nil {
		t.Fatal(err)
	}
	if _, err := gm.GetGame("b"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GetGame after delete err = %v; want ErrGameNotFound", err)
	}
	if err := gm.DeleteGame("b"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("second DeleteGame err = %v; want ErrGameNotFound", err)
	}
}

func TestCreateAndList(t *testing.T) {
	gs, _ := newTestService(t)
	first, err := gs.CreateGame()
	if err != nil {
		t.Fatal(err)
	}
	second, err := gs.CreateGame()
	if err != nil {
		t.Fatal(err)
	}
	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("ids %q and %q", first.ID, second.ID)
	}
	ids := gs.ListGames()
	if len(ids) != 2 || !slices.Contains(ids, first.ID) || !slices.Contains(ids, second.ID) {
		t.Errorf("ListGames = %v", ids)
	}
	if !slices.IsSorted(ids) {
		t.Errorf("ListGames not sorted: %v", ids)
	}
	view, err := gs.GameView(first.ID)
	if err != nil {
		t.Fatal(err)
	}
	if view.ToMove != "white" {
		t.Errorf("ToMove = %q", view.ToMove)
	}
}

func TestUnknownGame(t *testing.T) {
	gs, rec := newTestService(t)
	if _, err := gs.GameView("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("GameView err = %v", err)
	}
	if _, err := gs.AttemptMove("nope", model.MoveRequest{}); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("AttemptMove err = %v", err)
	}
	if _, err := gs.ResetGame("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("ResetGame err = %v", err)
	}
	if err := gs.DeleteGame("nope"); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("DeleteGame err = %v", err)
	}
	if len(rec.all()) != 0 {
		t.Error("events published for an unknown game")
	}
}

func TestAttemptMovePublishes(t *testing.T) {
	gs, rec := newTestService(t)
	state, err := gs.CreateGame()
	if err != nil {
		t.Fatal(err)
	}

	next, err := gs.AttemptMove(state.ID, moveReq(t, state, "e2", "e4"))
	if err != nil {
		t.Fatal(err)
	}
	if next.ToMove != "black" || next.MoveHistory[0].WhitePly.Notation != "e4" {
		t.Errorf("state after e4 = %+v", next)
	}
	events := rec.all()
	if len(events) != 1 || events[0].GameID != state.ID || events[0].State.ToMove != "black" {
		t.Fatalf("events = %+v", events)
	}

	_, err = gs.AttemptMove(state.ID, moveReq(t, next, "d2", "d4"))
	if !errors.Is(err, engine.ErrNotYourTurn) {
		t.Errorf("white again err = %v; want ErrNotYourTurn", err)
	}
	_, err = gs.AttemptMove(state.ID, moveReq(t, next, "e7", "e4"))
	if !errors.Is(err, engine.ErrNoSuchLegalMove) {
		t.Errorf("e7-e4 err = %v; want ErrNoSuchLegalMove", err)
	}
	_, err = gs.AttemptMove(state.ID, model.MoveRequest{PieceID: pieceAt(t, next, "e7").ID})
	if !errors.Is(err, engine.ErrInvalidSquare) {
		t.Errorf("missing destination err = %v; want ErrInvalidSquare", err)
	}
	if len(rec.all()) != 1 {
		t.Error("rejected moves published events")
	}
}

func TestLegalMoves(t *testing.T) {
	gs, _ := newTestService(t)
	state, _ := gs.CreateGame()

	moves, err := gs.LegalMoves(state.ID, pieceAt(t, state, "e2").ID)
	if err != nil {
		t.Fatal(err)
	}
	var squares []string
	for _, m := range moves {
		squares = append(squares, m.Square)
	}
	slices.Sort(squares)
	if diff := cmp.Diff([]string{"e3", "e4"}, squares); diff != "" {
		t.Errorf("e2 moves (-want +got):\n%s", diff)
	}

	moves, err = gs.LegalMoves(state.ID, pieceAt(t, state, "e7").ID)
	if err != nil || len(moves) != 0 {
		t.Errorf("black pawn on white's turn = %v, %v; want none", moves, err)
	}
	if _, err := gs.LegalMoves(state.ID, 999); !errors.Is(err, engine.ErrNoSuchPiece) {
		t.Errorf("unknown piece err = %v; want ErrNoSuchPiece", err)
	}
}

func promotionGame(t *testing.T, gs *GameService) (string, int) {
	t.Helper()
	b := engine.NewEmptyBoard()
	if _, err := b.Place(engine.White, engine.King, engine.MustSquare("a1")); err != nil {
		t.Fatal(err)
	}
	pawn, err := b.Place(engine.White, engine.Pawn, engine.MustSquare("e7"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Place(engine.Black, engine.King, engine.MustSquare("h5")); err != nil {
		t.Fatal(err)
	}
	if err := gs.gameManager.CreateGame("promo", engine.NewSessionFrom(b, engine.White)); err != nil {
		t.Fatal(err)
	}
	return "promo", int(pawn.ID)
}

func TestPromotionFlow(t *testing.T) {
	gs, rec := newTestService(t)
	id, pawn := promotionGame(t, gs)
	e8 := model.PositionOf(engine.MustSquare("e8"))

	state, err := gs.AttemptMove(id, model.MoveRequest{PieceID: pawn, To: &e8})
	if !errors.Is(err, engine.ErrPromotionChoiceMissing) {
		t.Fatalf("AttemptMove err = %v; want ErrPromotionChoiceMissing", err)
	}
	if state.PendingPromotion == nil || state.PendingPromotion.PieceID != pawn {
		t.Fatalf("pending promotion = %+v", state.PendingPromotion)
	}

	if _, err := gs.CompletePromotion(id, "dragon"); !errors.Is(err, engine.ErrInvalidPromotion) {
		t.Errorf("CompletePromotion(dragon) err = %v", err)
	}
	state, err = gs.CompletePromotion(id, model.Queen)
	if err != nil {
		t.Fatal(err)
	}
	if p := pieceAt(t, state, "e8"); p.Type != model.Queen {
		t.Errorf("e8 = %+v; want queen", p)
	}
	if state.PendingPromotion != nil {
		t.Error("pending promotion survived completion")
	}
	if got := len(rec.all()); got != 2 {
		t.Errorf("published %d events; want 2", got)
	}
}

func TestPromotionInOneRequest(t *testing.T) {
	gs, _ := newTestService(t)
	id, pawn := promotionGame(t, gs)
	e8 := model.PositionOf(engine.MustSquare("e8"))

	state, err := gs.AttemptMove(id, model.MoveRequest{PieceID: pawn, To: &e8, Promotion: model.Knight})
	if err != nil {
		t.Fatal(err)
	}
	if p := pieceAt(t, state, "e8"); p.Type != model.Knight {
		t.Errorf("e8 = %+v; want knight", p)
	}
}

func TestCancelPromotion(t *testing.T) {
	gs, _ := newTestService(t)
	id, pawn := promotionGame(t, gs)
	e8 := model.PositionOf(engine.MustSquare("e8"))

	if _, err := gs.CancelPromotion(id); !errors.Is(err, engine.ErrNoPendingPromotion) {
		t.Errorf("CancelPromotion with nothing pending err = %v", err)
	}
	_, _ = gs.AttemptMove(id, model.MoveRequest{PieceID: pawn, To: &e8})
	state, err := gs.CancelPromotion(id)
	if err != nil {
		t.Fatal(err)
	}
	if state.PendingPromotion != nil {
		t.Error("pending promotion still shown after cancel")
	}
}

func TestResetAndDelete(t *testing.T) {
	gs, rec := newTestService(t)
	state, _ := gs.CreateGame()
	if _, err := gs.AttemptMove(state.ID, moveReq(t, state, "g1", "f3")); err != nil {
		t.Fatal(err)
	}

	reset, err := gs.ResetGame(state.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(reset.MoveHistory) != 0 || reset.ToMove != "white" {
		t.Errorf("after reset = %+v", reset)
	}
	pieceAt(t, reset, "g1")

	if err := gs.DeleteGame(state.ID); err != nil {
		t.Fatal(err)
	}
	events := rec.all()
	last := events[len(events)-1]
	if !last.Deleted || last.GameID != state.ID {
		t.Errorf("last event = %+v; want deletion", last)
	}
	if len(gs.ListGames()) != 0 {
		t.Error("game still listed after delete")
	}
}

func TestMoveLogging(t *testing.T) {
	h := memory.New()
	log.SetHandler(h)
	log.SetLevel(log.InfoLevel)

	gs, _ := newTestService(t)
	state, _ := gs.CreateGame()
	if _, err := gs.AttemptMove(state.ID, moveReq(t, state, "e2", "e4")); err != nil {
		t.Fatal(err)
	}

	var played *log.Entry
	for _, e := range h.Entries {
		if e.Message == "move played" {
			played = e
		}
	}
	if played == nil {
		t.Fatal("no move played entry logged")
	}
	want := log.Fields{"game": state.ID, "piece": pieceAt(t, state, "e2").ID, "to": "e4", "notation": "e4"}
	if diff := cmp.Diff(want, played.Fields); diff != "" {
		t.Errorf("fields (-want +got):\n%s", diff)
	}
}
