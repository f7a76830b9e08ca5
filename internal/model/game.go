package model

import "github.com/benbeisheim/chess-backend/internal/engine"

// GameState is everything a client needs to redraw one game.
type GameState struct {
	ID               string            `json:"id"`
	Sound            string            `json:"sound"`
	Board            *BoardState       `json:"boardState"`
	ToMove           string            `json:"toMove"`
	HalfMoveClock    int               `json:"halfMoveClock"`
	FullMoveNumber   int               `json:"fullMoveNumber"`
	MoveHistory      []Move            `json:"moveHistory"`
	CapturedPieces   CapturedPieces    `json:"capturedPieces"`
	IsCheck          bool              `json:"isCheck"`
	LastMove         *SimpleMove       `json:"lastMove"`
	Resolve          *string           `json:"resolve"`
	Outcome          Outcome           `json:"outcome"`
	PendingPromotion *PendingPromotion `json:"pendingPromotion"`
}

// CapturedPieces lists, per side, the enemy pieces that side has taken.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

type Outcome struct {
	Result  string `json:"result"`
	Winner  string `json:"winner,omitempty"`
	Over    bool   `json:"over"`
	Message string `json:"message"`
}

type PendingPromotion struct {
	PieceID int         `json:"pieceId"`
	From    Position    `json:"from"`
	To      Position    `json:"to"`
	Options []PieceType `json:"options"`
}

func NewOutcome(o engine.Outcome) Outcome {
	out := Outcome{
		Result:  o.Result.String(),
		Over:    o.Over(),
		Message: o.Message(),
	}
	if o.Result == engine.Checkmate {
		out.Winner = o.Side.String()
	}
	return out
}

func NewGameState(id string, snap engine.Snapshot) GameState {
	state := GameState{
		ID:             id,
		Board:          NewBoardState(snap.Board),
		ToMove:         snap.State.ToMove.String(),
		HalfMoveClock:  snap.State.HalfMoveClock,
		FullMoveNumber: snap.State.FullMoveNumber,
		MoveHistory:    NewMoveHistory(snap.History),
		CapturedPieces: CapturedPieces{
			White: capturedViews(snap.Captured[engine.White]),
			Black: capturedViews(snap.Captured[engine.Black]),
		},
		IsCheck: snap.InCheck,
		Outcome: NewOutcome(snap.State.Outcome),
	}
	if n := len(snap.History); n > 0 {
		last := snap.History[n-1]
		state.LastMove = &SimpleMove{From: PositionOf(last.From), To: PositionOf(last.To)}
		state.Sound = sound(last, snap.InCheck)
	}
	if state.Outcome.Over {
		result := state.Outcome.Result
		state.Resolve = &result
	}
	if snap.Pending != nil {
		state.PendingPromotion = newPendingPromotion(snap.Board, snap.Pending)
	}
	return state
}

func sound(last engine.Ply, check bool) string {
	switch {
	case check:
		return "check"
	case last.Captured != engine.NoKind:
		return "capture"
	}
	return "move"
}

func capturedViews(pieces []engine.Piece) []Piece {
	out := make([]Piece, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, NewPiece(p))
	}
	return out
}

func newPendingPromotion(b *engine.Board, m engine.Move) *PendingPromotion {
	pending := &PendingPromotion{
		PieceID: int(m.Mover()),
		To:      PositionOf(m.To()),
	}
	if p := b.Piece(m.Mover()); p != nil {
		pending.From = PositionOf(p.Square)
	}
	for _, k := range engine.PromotionKinds {
		pending.Options = append(pending.Options, pieceType(k))
	}
	return pending
}
