package engine

// PseudoLegalMoves enumerates p's candidate moves before king-safety filtering.
// Castling candidates are already checked against attacked path squares.
func PseudoLegalMoves(b *Board, p *Piece) []Move {
	if p == nil || b.Piece(p.ID) != p {
		return nil
	}
	switch p.Kind {
	case Pawn:
		return pawnMoves(b, p)
	case Knight:
		return leaperMoves(b, p, knightJumps)
	case King:
		return append(leaperMoves(b, p, allRays), castleMoves(b, p)...)
	case Bishop:
		return sliderMoves(b, p, diagonals)
	case Rook:
		return sliderMoves(b, p, orthogonals)
	case Queen:
		return sliderMoves(b, p, allRays)
	}
	return nil
}

func pawnMoves(b *Board, p *Piece) []Move {
	var moves []Move
	dir := p.Color.forward()
	promotes := func(sq Square) bool { return sq.Rank == p.Color.promotionRank() }

	one := p.Square.Offset(0, dir)
	if one.Valid() && b.IsEmpty(one) {
		if promotes(one) {
			moves = append(moves, PromotionMove{Piece: p.ID, Dest: one})
		} else {
			moves = append(moves, Quiet{Piece: p.ID, Dest: one})
		}
		two := one.Offset(0, dir)
		if !p.HasMoved && p.Square.Rank == p.Color.pawnStartRank() && b.IsEmpty(two) {
			moves = append(moves, EnPassantAdvance{Piece: p.ID, Dest: two})
		}
	}

	for _, df := range []int{-1, 1} {
		target := p.Square.Offset(df, dir)
		if !target.Valid() {
			continue
		}
		if victim := b.OccupantAt(target); victim != nil {
			if victim.Color == p.Color {
				continue
			}
			if promotes(target) {
				moves = append(moves, PromotionAttack{Piece: p.ID, Dest: target, Captured: victim.ID})
			} else {
				moves = append(moves, Attack{Piece: p.ID, Dest: target, Captured: victim.ID})
			}
			continue
		}
		beside := b.OccupantAt(p.Square.Offset(df, 0))
		if beside != nil && beside.Kind == Pawn && beside.Color != p.Color && beside.EnPassant {
			moves = append(moves, EnPassantCapture{Piece: p.ID, Dest: target, Captured: beside.ID})
		}
	}
	return moves
}

func leaperMoves(b *Board, p *Piece, offsets []direction) []Move {
	var moves []Move
	for _, d := range offsets {
		sq := p.Square.Offset(d.df, d.dr)
		if !sq.Valid() {
			continue
		}
		switch occ := b.OccupantAt(sq); {
		case occ == nil:
			moves = append(moves, Quiet{Piece: p.ID, Dest: sq})
		case occ.Color != p.Color:
			moves = append(moves, Attack{Piece: p.ID, Dest: sq, Captured: occ.ID})
		}
	}
	return moves
}

func sliderMoves(b *Board, p *Piece, dirs []direction) []Move {
	var moves []Move
	for _, d := range dirs {
		for sq := p.Square.Offset(d.df, d.dr); sq.Valid(); sq = sq.Offset(d.df, d.dr) {
			occ := b.OccupantAt(sq)
			if occ == nil {
				moves = append(moves, Quiet{Piece: p.ID, Dest: sq})
				continue
			}
			if occ.Color != p.Color {
				moves = append(moves, Attack{Piece: p.ID, Dest: sq, Captured: occ.ID})
			}
			break
		}
	}
	return moves
}

// castleMoves needs the king and rook unmoved on their home squares. No square
// from the king's start to its destination may be attacked.
func castleMoves(b *Board, king *Piece) []Move {
	home := Sq(4, king.Color.backRank())
	if king.HasMoved || king.Square != home {
		return nil
	}
	enemy := king.Color.Opponent()
	if IsSquareAttackedBy(b, home, enemy) {
		return nil
	}

	var moves []Move
	for _, side := range []struct {
		rookFile, step int
	}{
		{rookFile: 7, step: 1},
		{rookFile: 0, step: -1},
	} {
		rook := b.OccupantAt(Sq(side.rookFile, home.Rank))
		if rook == nil || rook.Kind != Rook || rook.Color != king.Color || rook.HasMoved {
			continue
		}
		gapEmpty := true
		for f := home.File + side.step; f != side.rookFile; f += side.step {
			if !b.IsEmpty(Sq(f, home.Rank)) {
				gapEmpty = false
				break
			}
		}
		if !gapEmpty {
			continue
		}
		passing := home.Offset(side.step, 0)
		dest := home.Offset(2*side.step, 0)
		if IsSquareAttackedBy(b, passing, enemy) || IsSquareAttackedBy(b, dest, enemy) {
			continue
		}
		moves = append(moves, Castle{King: king.ID, KingDest: dest, Rook: rook.ID, RookDest: passing})
	}
	return moves
}
