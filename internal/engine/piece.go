package engine

import "fmt"

type Color uint8

const (
	White Color = iota
	Black
)

func (c Color) Opponent() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

// forward is the rank step of this colour's pawns.
func (c Color) forward() int {
	if c == White {
		return 1
	}
	return -1
}

func (c Color) backRank() int {
	if c == White {
		return 0
	}
	return 7
}

func (c Color) pawnStartRank() int {
	return c.backRank() + c.forward()
}

func (c Color) promotionRank() int {
	return 7 - c.backRank()
}

func ParseColor(text string) (Color, error) {
	switch text {
	case "white", "w":
		return White, nil
	case "black", "b":
		return Black, nil
	}
	return 0, fmt.Errorf("unknown color %q", text)
}

type Kind uint8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindNames = [...]string{
	NoKind: "",
	Pawn:   "pawn",
	Knight: "knight",
	Bishop: "bishop",
	Rook:   "rook",
	Queen:  "queen",
	King:   "king",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Letter is the notation prefix; empty for pawns.
func (k Kind) Letter() string {
	switch k {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// CanPromoteTo reports whether a pawn may be replaced by k.
func (k Kind) CanPromoteTo() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// PromotionKinds lists the replacement choices offered to the player.
var PromotionKinds = []Kind{Queen, Rook, Bishop, Knight}

// ParseKind accepts the long name ("queen") or the notation letter ("Q").
func ParseKind(text string) (Kind, error) {
	switch text {
	case "pawn", "P", "p":
		return Pawn, nil
	case "knight", "N", "n":
		return Knight, nil
	case "bishop", "B", "b":
		return Bishop, nil
	case "rook", "R", "r":
		return Rook, nil
	case "queen", "Q", "q":
		return Queen, nil
	case "king", "K", "k":
		return King, nil
	}
	return NoKind, fmt.Errorf("unknown piece kind %q", text)
}

// PieceID is a stable handle into a Board's registry. The zero value names no piece.
type PieceID int

const NoPiece PieceID = 0

type Piece struct {
	ID       PieceID
	Color    Color
	Kind     Kind
	Square   Square
	HasMoved bool
	// EnPassant is set only on the pawn that just advanced two squares.
	EnPassant bool
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s %s on %s", p.Color, p.Kind, p.Square)
}
