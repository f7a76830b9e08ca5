package engine

import "strings"

// Ply is one executed half-move as recorded in the game history.
type Ply struct {
	Piece     PieceID
	Color     Color
	Kind      Kind
	Move      MoveKind
	From      Square
	To        Square
	Captured  Kind
	Promotion Kind
	Notation  string
}

// notate renders m in short algebraic form against the position before it is
// played. The check or mate suffix is appended by the caller afterwards.
func notate(b *Board, m Move, promotion Kind) string {
	mover := b.Piece(m.Mover())
	if c, ok := m.(Castle); ok {
		if c.KingDest.File > mover.Square.File {
			return "O-O"
		}
		return "O-O-O"
	}
	_, capture := CapturedBy(m)

	var sb strings.Builder
	if mover.Kind == Pawn {
		if capture {
			sb.WriteString(mover.Square.fileLetter())
		}
	} else {
		sb.WriteString(mover.Kind.Letter())
		sb.WriteString(disambiguation(b, mover, m.To()))
	}
	if capture {
		sb.WriteString("x")
	}
	sb.WriteString(m.To().String())
	if IsPromotion(m) && promotion != NoKind {
		sb.WriteString("=")
		sb.WriteString(promotion.Letter())
	}
	return sb.String()
}

// disambiguation names the origin file, rank, or both when another piece of
// the same kind could also legally reach to.
func disambiguation(b *Board, mover *Piece, to Square) string {
	var rivals []*Piece
	for _, p := range b.live[mover.Color] {
		if p.ID == mover.ID || p.Kind != mover.Kind {
			continue
		}
		for _, m := range LegalMoves(b, p) {
			if m.To() == to {
				rivals = append(rivals, p)
				break
			}
		}
	}
	if len(rivals) == 0 {
		return ""
	}
	sameFile, sameRank := false, false
	for _, r := range rivals {
		if r.Square.File == mover.Square.File {
			sameFile = true
		}
		if r.Square.Rank == mover.Square.Rank {
			sameRank = true
		}
	}
	switch {
	case !sameFile:
		return mover.Square.fileLetter()
	case !sameRank:
		return mover.Square.String()[1:]
	}
	return mover.Square.String()
}

func checkSuffix(o Outcome, check bool) string {
	if o.Result == Checkmate {
		return "#"
	}
	if check {
		return "+"
	}
	return ""
}
