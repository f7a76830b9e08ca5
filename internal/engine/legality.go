package engine

// IsLegal simulates m and reports whether the mover's king would be safe afterwards.
func IsLegal(b *Board, m Move) bool {
	mover := b.Piece(m.Mover())
	if mover == nil {
		return false
	}
	if captured, ok := CapturedBy(m); ok && b.Piece(captured) == nil {
		return false
	}
	king := b.King(mover.Color)
	if king == nil {
		return true
	}
	h := hypothesis(m)
	kingSq := king.Square
	if king.ID == mover.ID {
		kingSq = m.To()
	}
	return !IsSquareAttackedAfter(b, kingSq, mover.Color.Opponent(), h)
}

// LegalMoves is PseudoLegalMoves with the king-safety filter applied.
func LegalMoves(b *Board, p *Piece) []Move {
	pseudo := PseudoLegalMoves(b, p)
	legal := pseudo[:0]
	for _, m := range pseudo {
		if IsLegal(b, m) {
			legal = append(legal, m)
		}
	}
	return legal
}

// AllLegalMoves collects the legal moves of every live piece of c.
func AllLegalMoves(b *Board, c Color) []Move {
	var all []Move
	for _, p := range b.Pieces(c) {
		all = append(all, LegalMoves(b, p)...)
	}
	return all
}

func HasLegalMove(b *Board, c Color) bool {
	for _, p := range b.live[c] {
		for _, m := range PseudoLegalMoves(b, p) {
			if IsLegal(b, m) {
				return true
			}
		}
	}
	return false
}
