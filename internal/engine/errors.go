package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSquare          = errors.New("invalid square")
	ErrNotYourTurn            = errors.New("not your turn")
	ErrNoSuchLegalMove        = errors.New("no such legal move")
	ErrPromotionChoiceMissing = errors.New("promotion choice missing")
	ErrInvalidPromotion       = errors.New("invalid promotion piece")
	ErrNoPendingPromotion     = errors.New("no pending promotion")
	ErrNoSuchPiece            = errors.New("no such piece")
	ErrGameOver               = errors.New("game is over")
	ErrSquareOccupied         = errors.New("square occupied")
	ErrDuplicateKing          = errors.New("side already has a king")
)

// MoveError carries the rejected request alongside the reason.
type MoveError struct {
	Piece PieceID
	To    Square
	Err   error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("move piece %d to %s: %v", e.Piece, e.To, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

func moveError(id PieceID, to Square, err error) error {
	return &MoveError{Piece: id, To: to, Err: err}
}
