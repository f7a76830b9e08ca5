package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPseudoLegalMovesEmptyBoard(t *testing.T) {
	tests := []struct {
		name  string
		piece placed
		want  []string
	}{
		{"knight corner", placed{White, Knight, "a1"}, []string{"b3", "c2"}},
		{"knight center", placed{White, Knight, "d4"}, []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"}},
		{"bishop corner", placed{White, Bishop, "a1"}, []string{"b2", "c3", "d4", "e5", "f6", "g7", "h8"}},
		{"bishop center", placed{Black, Bishop, "d4"}, []string{"a1", "a7", "b2", "b6", "c3", "c5", "e3", "e5", "f2", "f6", "g1", "g7", "h8"}},
		{"rook corner", placed{White, Rook, "h1"}, []string{"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h2", "h3", "h4", "h5", "h6", "h7", "h8"}},
		{"rook center", placed{White, Rook, "d4"}, []string{"a4", "b4", "c4", "d1", "d2", "d3", "d5", "d6", "d7", "d8", "e4", "f4", "g4", "h4"}},
		{"king corner", placed{White, King, "a1"}, []string{"a2", "b1", "b2"}},
		{"king center", placed{Black, King, "d4"}, []string{"c3", "c4", "c5", "d3", "d5", "e3", "e4", "e5"}},
		{"king home without rooks", placed{White, King, "e1"}, []string{"d1", "d2", "e2", "f1", "f2"}},
		{"white pawn start", placed{White, Pawn, "e2"}, []string{"e3", "e4"}},
		{"white pawn advanced", placed{White, Pawn, "e4"}, []string{"e5"}},
		{"black pawn start", placed{Black, Pawn, "d7"}, []string{"d5", "d6"}},
		{"white pawn edge promotion", placed{White, Pawn, "a7"}, []string{"a8"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(t, tt.piece)
			got := destinations(PseudoLegalMoves(b, at(t, b, tt.piece.square)))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PseudoLegalMoves mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestQueenMoveCounts(t *testing.T) {
	for square, want := range map[string]int{"a1": 21, "d4": 27, "h5": 21} {
		b := boardWith(t, placed{White, Queen, square})
		if got := len(PseudoLegalMoves(b, at(t, b, square))); got != want {
			t.Errorf("queen on %s: %d moves; want %d", square, got, want)
		}
	}
}

func TestSliderStopsAtPieces(t *testing.T) {
	b := boardWith(t,
		placed{White, Rook, "d4"},
		placed{White, Pawn, "d6"},
		placed{Black, Pawn, "f4"},
	)
	moves := PseudoLegalMoves(b, at(t, b, "d4"))
	want := []string{"a4", "b4", "c4", "d1", "d2", "d3", "d5", "e4", "f4"}
	if diff := cmp.Diff(want, destinations(moves)); diff != "" {
		t.Fatalf("destinations mismatch (-want +got):\n%s", diff)
	}
	m, _ := findMove(moves, "f4")
	if m.Kind() != MoveAttack {
		t.Errorf("f4 kind = %s; want attack", m.Kind())
	}
	m, _ = findMove(moves, "e4")
	if m.Kind() != MoveQuiet {
		t.Errorf("e4 kind = %s; want move", m.Kind())
	}
}

func TestPawnMoves(t *testing.T) {
	b := boardWith(t,
		placed{White, Pawn, "e2"},
		placed{Black, Knight, "e4"},
		placed{Black, Bishop, "d3"},
		placed{White, Knight, "f3"},
	)
	moves := PseudoLegalMoves(b, at(t, b, "e2"))
	want := []string{"d3", "e3"}
	if diff := cmp.Diff(want, destinations(moves)); diff != "" {
		t.Fatalf("destinations mismatch (-want +got):\n%s", diff)
	}
	if m, _ := findMove(moves, "d3"); m.Kind() != MoveAttack {
		t.Errorf("d3 kind = %s; want attack", m.Kind())
	}

	b = boardWith(t, placed{White, Pawn, "c2"}, placed{Black, Pawn, "c3"})
	if got := PseudoLegalMoves(b, at(t, b, "c2")); len(got) != 0 {
		t.Errorf("blocked pawn moves = %v; want none", destinations(got))
	}

	b = boardWith(t, placed{White, Pawn, "c2"}, placed{Black, Pawn, "c4"})
	if got := destinations(PseudoLegalMoves(b, at(t, b, "c2"))); !cmp.Equal(got, []string{"c3"}) {
		t.Errorf("double step through blocked square: %v; want [c3]", got)
	}

	m, _ := findMove(PseudoLegalMoves(b, at(t, b, "c2")), "c3")
	if m.Kind() != MoveQuiet {
		t.Errorf("single step kind = %s; want move", m.Kind())
	}
	b = boardWith(t, placed{Black, Pawn, "g7"})
	m, _ = findMove(PseudoLegalMoves(b, at(t, b, "g7")), "g5")
	if m == nil || m.Kind() != MoveEnPassantAdvance {
		t.Errorf("double step = %v; want enPassantAdvance", m)
	}
}

func TestPromotionTagging(t *testing.T) {
	b := boardWith(t,
		placed{White, Pawn, "b7"},
		placed{Black, Rook, "c8"},
		placed{Black, Pawn, "a2"},
		placed{White, Knight, "b1"},
	)
	for _, m := range PseudoLegalMoves(b, at(t, b, "b7")) {
		switch m.To().String() {
		case "b8":
			if m.Kind() != MovePromotion {
				t.Errorf("b8 kind = %s; want promotionMove", m.Kind())
			}
		case "c8":
			if m.Kind() != MovePromotionAttack {
				t.Errorf("c8 kind = %s; want promotionAttack", m.Kind())
			}
		default:
			t.Errorf("unexpected destination %s", m.To())
		}
	}
	blackMoves := PseudoLegalMoves(b, at(t, b, "a2"))
	if diff := cmp.Diff([]string{"a1", "b1"}, destinations(blackMoves)); diff != "" {
		t.Fatalf("black promotion mismatch (-want +got):\n%s", diff)
	}
	for _, m := range blackMoves {
		if !IsPromotion(m) {
			t.Errorf("black pawn to %s kind = %s; want a promotion variant", m.To(), m.Kind())
		}
	}
}

func TestEnPassantCandidate(t *testing.T) {
	b := boardWith(t, placed{White, Pawn, "e5"}, placed{Black, Pawn, "d5"}, placed{Black, Pawn, "f5"})
	at(t, b, "d5").EnPassant = true

	moves := PseudoLegalMoves(b, at(t, b, "e5"))
	if diff := cmp.Diff([]string{"d6", "e6"}, destinations(moves)); diff != "" {
		t.Fatalf("destinations mismatch (-want +got):\n%s", diff)
	}
	m, _ := findMove(moves, "d6")
	ep, ok := m.(EnPassantCapture)
	if !ok {
		t.Fatalf("d6 move = %T; want EnPassantCapture", m)
	}
	if ep.Captured != at(t, b, "d5").ID {
		t.Errorf("captured = %d; want the d5 pawn", ep.Captured)
	}
}

func TestKnightAndKingSkipOwnPieces(t *testing.T) {
	b := NewStandardBoard()
	if got := destinations(PseudoLegalMoves(b, at(t, b, "g1"))); !cmp.Equal(got, []string{"f3", "h3"}) {
		t.Errorf("g1 knight = %v; want [f3 h3]", got)
	}
	if got := PseudoLegalMoves(b, at(t, b, "e1")); len(got) != 0 {
		t.Errorf("boxed-in king has moves %v", destinations(got))
	}
}
