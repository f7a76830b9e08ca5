package engine

// Relocation moves one piece in a Hypothesis.
type Relocation struct {
	Piece PieceID
	To    Square
}

// Hypothesis describes a board that differs from the real one by at most one
// removed piece and up to two relocated pieces. It is evaluated lazily against
// the real Board, which is never mutated.
type Hypothesis struct {
	Removed   PieceID
	Relocated []Relocation
}

// view is a read-only occupancy lookup with a Hypothesis layered on top.
type view struct {
	b *Board
	h Hypothesis
}

func (v view) at(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	for _, r := range v.h.Relocated {
		if r.To == sq {
			return v.b.pieces[r.Piece]
		}
	}
	id := v.b.grid[sq.File][sq.Rank]
	if id == NoPiece || id == v.h.Removed {
		return nil
	}
	for _, r := range v.h.Relocated {
		if r.Piece == id {
			return nil
		}
	}
	return v.b.pieces[id]
}

func (v view) squareOf(p *Piece) Square {
	for _, r := range v.h.Relocated {
		if r.Piece == p.ID {
			return r.To
		}
	}
	return p.Square
}

// attacks walks p's attack pattern, calling visit for each attacked square
// until visit returns false.
func (v view) attacks(p *Piece, visit func(Square) bool) {
	from := v.squareOf(p)
	switch p.Kind {
	case Pawn:
		for _, df := range []int{-1, 1} {
			sq := from.Offset(df, p.Color.forward())
			if sq.Valid() && !visit(sq) {
				return
			}
		}
	case Knight:
		v.leaps(from, knightJumps, visit)
	case King:
		v.leaps(from, allRays, visit)
	case Bishop:
		v.rays(from, diagonals, visit)
	case Rook:
		v.rays(from, orthogonals, visit)
	case Queen:
		v.rays(from, allRays, visit)
	}
}

func (v view) leaps(from Square, offsets []direction, visit func(Square) bool) {
	for _, d := range offsets {
		sq := from.Offset(d.df, d.dr)
		if sq.Valid() && !visit(sq) {
			return
		}
	}
}

// rays stops each direction at the first occupied square, which is itself attacked.
func (v view) rays(from Square, dirs []direction, visit func(Square) bool) {
	for _, d := range dirs {
		for sq := from.Offset(d.df, d.dr); sq.Valid(); sq = sq.Offset(d.df, d.dr) {
			if !visit(sq) {
				return
			}
			if v.at(sq) != nil {
				break
			}
		}
	}
}

func (v view) attacked(target Square, by Color) bool {
	for _, p := range v.b.live[by] {
		if p.ID == v.h.Removed {
			continue
		}
		hit := false
		v.attacks(p, func(sq Square) bool {
			if sq == target {
				hit = true
				return false
			}
			return true
		})
		if hit {
			return true
		}
	}
	return false
}

// Attacks returns the squares p could capture on if an enemy stood there,
// regardless of whether the move would expose p's own king. Friendly-occupied
// squares at the end of a ray are included.
func Attacks(b *Board, p *Piece) []Square {
	var out []Square
	view{b: b}.attacks(p, func(sq Square) bool {
		out = append(out, sq)
		return true
	})
	return out
}

func IsSquareAttackedBy(b *Board, sq Square, by Color) bool {
	return view{b: b}.attacked(sq, by)
}

// IsSquareAttackedAfter answers IsSquareAttackedBy for the board h describes.
func IsSquareAttackedAfter(b *Board, sq Square, by Color, h Hypothesis) bool {
	return view{b: b, h: h}.attacked(sq, by)
}

// InCheck reports whether c's king is attacked.
func InCheck(b *Board, c Color) bool {
	k := b.King(c)
	if k == nil {
		return false
	}
	return IsSquareAttackedBy(b, k.Square, c.Opponent())
}
