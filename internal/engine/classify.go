package engine

// fiftyMoveLimit is 50 full moves, counted in half-moves.
const fiftyMoveLimit = 100

// Classify inspects the position after a move. The side that just moved is
// the opposite of st.ToMove. The fifty-move rule is checked first, so a mate
// delivered on the hundredth quiet half-move is still FiftyMoves.
func Classify(b *Board, st State) Outcome {
	mover := st.ToMove.Opponent()
	if st.HalfMoveClock >= fiftyMoveLimit {
		return Outcome{Result: FiftyMoves, Side: mover}
	}
	if !HasLegalMove(b, st.ToMove) {
		if InCheck(b, st.ToMove) {
			return Outcome{Result: Checkmate, Side: mover}
		}
		return Outcome{Result: Stalemate, Side: mover}
	}
	if InsufficientMaterial(b) {
		return Outcome{Result: Draw, Side: mover}
	}
	return Outcome{Result: Continue, Side: mover}
}

type material uint8

const (
	materialBare    material = iota // king only
	materialKnight                  // king and one knight
	materialBishops                 // king and bishops, all on one square colour
	materialOther
)

func materialOf(b *Board, c Color) material {
	var knights, bishops int
	light, dark := false, false
	for _, p := range b.live[c] {
		switch p.Kind {
		case King:
		case Knight:
			knights++
		case Bishop:
			bishops++
			if p.Square.IsLight() {
				light = true
			} else {
				dark = true
			}
		default:
			return materialOther
		}
	}
	switch {
	case knights == 0 && bishops == 0:
		return materialBare
	case knights == 1 && bishops == 0:
		return materialKnight
	case knights == 0 && !(light && dark):
		return materialBishops
	}
	return materialOther
}

// InsufficientMaterial matches K v K, K+N v K, K+B(s) v K and K+B(s) v K+B(s),
// where each side's bishops share one square colour.
func InsufficientMaterial(b *Board) bool {
	lo, hi := materialOf(b, White), materialOf(b, Black)
	if lo > hi {
		lo, hi = hi, lo
	}
	switch {
	case lo == materialBare && hi == materialBare:
		return true
	case lo == materialBare && (hi == materialKnight || hi == materialBishops):
		return true
	case lo == materialBishops && hi == materialBishops:
		return true
	}
	return false
}
