package engine

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpSorted = cmp.Options{
	cmpopts.SortSlices(func(a, b string) bool { return a < b }),
	cmpopts.EquateEmpty(),
}

// boardFromPlacement builds a board from the piece-placement field of a FEN
// record. Every piece is placed as never moved.
func boardFromPlacement(t *testing.T, placement string) *Board {
	t.Helper()
	b := NewEmptyBoard()
	rank, file := 7, 0
	for _, r := range placement {
		switch {
		case r == '/':
			rank--
			file = 0
		case r >= '1' && r <= '8':
			file += int(r - '0')
		default:
			c := White
			if r >= 'a' && r <= 'z' {
				c = Black
			}
			k, err := ParseKind(string(r))
			if err != nil {
				t.Fatalf("placement %q: %v", placement, err)
			}
			if _, err := b.Place(c, k, Sq(file, rank)); err != nil {
				t.Fatalf("placement %q: %v", placement, err)
			}
			file++
		}
	}
	return b
}

type placed struct {
	color  Color
	kind   Kind
	square string
}

func boardWith(t *testing.T, pieces ...placed) *Board {
	t.Helper()
	b := NewEmptyBoard()
	for _, p := range pieces {
		if _, err := b.Place(p.color, p.kind, MustSquare(p.square)); err != nil {
			t.Fatalf("place %v: %v", p, err)
		}
	}
	return b
}

func at(t *testing.T, b *Board, square string) *Piece {
	t.Helper()
	p := b.OccupantAt(MustSquare(square))
	if p == nil {
		t.Fatalf("no piece on %s", square)
	}
	return p
}

func removeAt(t *testing.T, b *Board, squares ...string) {
	t.Helper()
	for _, sq := range squares {
		b.remove(at(t, b, sq))
	}
}

func destinations(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To().String())
	}
	sort.Strings(out)
	return out
}

func squareNames(squares []Square) []string {
	out := make([]string, 0, len(squares))
	for _, sq := range squares {
		out = append(out, sq.String())
	}
	sort.Strings(out)
	return out
}

func findMove(moves []Move, to string) (Move, bool) {
	for _, m := range moves {
		if m.To() == MustSquare(to) {
			return m, true
		}
	}
	return nil, false
}

// play runs a sequence of "e2e4"-style moves through a session.
func play(t *testing.T, s *Session, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		from, to := MustSquare(mv[:2]), MustSquare(mv[2:4])
		p := s.board.OccupantAt(from)
		if p == nil {
			t.Fatalf("play %s: no piece on %s", mv, from)
		}
		promo := NoKind
		if len(mv) == 5 {
			k, err := ParseKind(mv[4:])
			if err != nil {
				t.Fatalf("play %s: %v", mv, err)
			}
			promo = k
		}
		if _, err := s.AttemptMove(p.ID, to, promo); err != nil {
			t.Fatalf("play %s: %v", mv, err)
		}
	}
}
