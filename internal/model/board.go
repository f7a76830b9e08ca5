package model

import (
	"fmt"

	"github.com/benbeisheim/chess-backend/internal/engine"
)

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func pieceType(k engine.Kind) PieceType {
	if k == engine.NoKind {
		return ""
	}
	return PieceType(k.String())
}

// Kind maps a client supplied promotion choice onto the engine. The empty
// string means no choice was made; pawn and king are never valid choices.
func (p PieceType) Kind() (engine.Kind, error) {
	if p == "" {
		return engine.NoKind, nil
	}
	k, err := engine.ParseKind(string(p))
	if err == nil && !k.CanPromoteTo() {
		err = engine.ErrInvalidPromotion
	}
	if err != nil {
		return engine.NoKind, fmt.Errorf("%w: %q", engine.ErrInvalidPromotion, string(p))
	}
	return k, nil
}

// BoardState is the grid as the client draws it: Board[y][x] with y=0 on
// rank 8 and x=0 on the a-file.
type BoardState struct {
	Board             [][]*Piece `json:"board"`
	BlackKingPosition Position   `json:"blackKingPosition"`
	WhiteKingPosition Position   `json:"whiteKingPosition"`
}

type Piece struct {
	ID       int       `json:"id"`
	Type     PieceType `json:"type"`
	Color    string    `json:"color"`
	Position Position  `json:"position"`
	HasMoved bool      `json:"hasMoved"`
}

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func PositionOf(sq engine.Square) Position {
	return Position{X: sq.File, Y: 7 - sq.Rank}
}

func (p Position) Square() engine.Square {
	return engine.Sq(p.X, 7-p.Y)
}

func (p Position) String() string {
	return p.Square().String()
}

func NewPiece(p engine.Piece) Piece {
	return Piece{
		ID:       int(p.ID),
		Type:     pieceType(p.Kind),
		Color:    p.Color.String(),
		Position: PositionOf(p.Square),
		HasMoved: p.HasMoved,
	}
}

func NewBoardState(b *engine.Board) *BoardState {
	state := &BoardState{Board: make([][]*Piece, 8)}
	for y := range state.Board {
		state.Board[y] = make([]*Piece, 8)
	}
	for _, c := range []engine.Color{engine.White, engine.Black} {
		for _, p := range b.Pieces(c) {
			view := NewPiece(*p)
			state.Board[view.Position.Y][view.Position.X] = &view
		}
	}
	if k := b.King(engine.White); k != nil {
		state.WhiteKingPosition = PositionOf(k.Square)
	}
	if k := b.King(engine.Black); k != nil {
		state.BlackKingPosition = PositionOf(k.Square)
	}
	return state
}
