package engine

// Execute applies m to b and st. promotion is consulted only for promotion
// variants. All checks happen before the first mutation, so on error neither
// b nor st has changed. Execute does not re-run the legality filter; callers
// offer only moves that passed IsLegal.
func Execute(b *Board, st *State, m Move, promotion Kind) error {
	mover := b.Piece(m.Mover())
	if mover == nil {
		return moveError(m.Mover(), m.To(), ErrNoSuchPiece)
	}
	if mover.Color != st.ToMove {
		return moveError(mover.ID, m.To(), ErrNotYourTurn)
	}
	if !m.To().Valid() {
		return moveError(mover.ID, m.To(), ErrInvalidSquare)
	}
	if IsPromotion(m) {
		if promotion == NoKind {
			return moveError(mover.ID, m.To(), ErrPromotionChoiceMissing)
		}
		if !promotion.CanPromoteTo() {
			return moveError(mover.ID, m.To(), ErrInvalidPromotion)
		}
	}
	var victim *Piece
	if id, ok := CapturedBy(m); ok {
		if victim = b.Piece(id); victim == nil {
			return moveError(mover.ID, m.To(), ErrNoSuchPiece)
		}
	}
	var rook *Piece
	if c, ok := m.(Castle); ok {
		if rook = b.Piece(c.Rook); rook == nil {
			return moveError(mover.ID, m.To(), ErrNoSuchPiece)
		}
	}

	// The capturable flag survives exactly one half-move.
	for _, p := range b.live[mover.Color.Opponent()] {
		p.EnPassant = false
	}

	if victim != nil {
		b.remove(victim)
	}
	b.relocate(mover, m.To())
	mover.HasMoved = true

	switch m := m.(type) {
	case Castle:
		b.relocate(rook, m.RookDest)
		rook.HasMoved = true
	case EnPassantAdvance:
		mover.EnPassant = true
	case PromotionMove, PromotionAttack:
		b.substitute(mover, promotion)
	}

	if mover.Kind == Pawn || victim != nil {
		st.HalfMoveClock = 0
	} else {
		st.HalfMoveClock++
	}
	if mover.Color == Black {
		st.FullMoveNumber++
	}
	st.ToMove = mover.Color.Opponent()
	return nil
}
