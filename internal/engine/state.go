package engine

import "fmt"

type Result uint8

const (
	Continue Result = iota
	Checkmate
	Stalemate
	Draw
	FiftyMoves
)

var resultNames = [...]string{
	Continue:   "continue",
	Checkmate:  "checkmate",
	Stalemate:  "stalemate",
	Draw:       "draw",
	FiftyMoves: "fiftyMoves",
}

func (r Result) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return fmt.Sprintf("result(%d)", uint8(r))
}

// Outcome is the classification after a move. Side is the winner for
// Checkmate and the side that just moved for every other result.
type Outcome struct {
	Result Result
	Side   Color
}

func (o Outcome) Over() bool {
	return o.Result != Continue
}

func (o Outcome) Message() string {
	switch o.Result {
	case Checkmate:
		return fmt.Sprintf("%s won by checkmate", title(o.Side))
	case Stalemate:
		return fmt.Sprintf("Stalemate: %s has no legal move", o.Side.Opponent())
	case FiftyMoves:
		return "Draw by the fifty moves rule"
	case Draw:
		return "The game ended in a draw"
	}
	return ""
}

func title(c Color) string {
	if c == White {
		return "White"
	}
	return "Black"
}

// State is the turn bookkeeping that travels with a Board.
type State struct {
	ToMove Color
	// HalfMoveClock counts half-moves since the last pawn move or capture.
	HalfMoveClock  int
	FullMoveNumber int
	Outcome        Outcome
}

func NewState() State {
	return State{ToMove: White, FullMoveNumber: 1}
}
