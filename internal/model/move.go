package model

import "github.com/benbeisheim/chess-backend/internal/engine"

// MoveRequest asks to move a piece by id. To is required; a missing
// destination is treated as off the board.
type MoveRequest struct {
	PieceID   int       `json:"pieceId"`
	To        *Position `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

func (r MoveRequest) Destination() engine.Square {
	if r.To == nil {
		return engine.Sq(-1, -1)
	}
	return r.To.Square()
}

type PromotionRequest struct {
	Promotion PieceType `json:"promotion"`
}

type Highlight string

const (
	HighlightMove    Highlight = "move"
	HighlightAttack  Highlight = "attack"
	HighlightSpecial Highlight = "special"
)

// HighlightOf picks the colour a destination is drawn in.
func HighlightOf(k engine.MoveKind) Highlight {
	switch k {
	case engine.MoveAttack:
		return HighlightAttack
	case engine.MoveCastle, engine.MoveEnPassantCapture, engine.MovePromotion, engine.MovePromotionAttack:
		return HighlightSpecial
	}
	return HighlightMove
}

type LegalMove struct {
	To        Position  `json:"to"`
	Square    string    `json:"square"`
	Kind      string    `json:"kind"`
	Highlight Highlight `json:"highlight"`
}

func NewLegalMoves(moves []engine.Move) []LegalMove {
	out := make([]LegalMove, 0, len(moves))
	for _, m := range moves {
		out = append(out, LegalMove{
			To:        PositionOf(m.To()),
			Square:    m.To().String(),
			Kind:      m.Kind().String(),
			Highlight: HighlightOf(m.Kind()),
		})
	}
	return out
}

type Ply struct {
	PieceID   int       `json:"pieceId"`
	Type      PieceType `json:"type"`
	Color     string    `json:"color"`
	Kind      string    `json:"kind"`
	From      Position  `json:"from"`
	To        Position  `json:"to"`
	Captured  PieceType `json:"captured,omitempty"`
	Promotion PieceType `json:"promotion,omitempty"`
	Notation  string    `json:"notation"`
}

func NewPly(p engine.Ply) Ply {
	return Ply{
		PieceID:   int(p.Piece),
		Type:      pieceType(p.Kind),
		Color:     p.Color.String(),
		Kind:      p.Move.String(),
		From:      PositionOf(p.From),
		To:        PositionOf(p.To),
		Captured:  pieceType(p.Captured),
		Promotion: pieceType(p.Promotion),
		Notation:  p.Notation,
	}
}

// Move pairs a white ply with the black reply. WhitePly is nil when a game
// set up with black to move opens the history.
type Move struct {
	WhitePly *Ply `json:"whitePly"`
	BlackPly *Ply `json:"blackPly"`
}

func NewMoveHistory(plies []engine.Ply) []Move {
	history := make([]Move, 0, (len(plies)+1)/2)
	for _, p := range plies {
		ply := NewPly(p)
		if p.Color == engine.White {
			history = append(history, Move{WhitePly: &ply})
			continue
		}
		if n := len(history); n > 0 && history[n-1].BlackPly == nil {
			history[n-1].BlackPly = &ply
			continue
		}
		history = append(history, Move{BlackPly: &ply})
	}
	return history
}

type SimpleMove struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}
