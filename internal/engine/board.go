package engine

import "fmt"

// Board is the occupancy map plus the per-colour registry of live pieces.
// Every live piece sits on exactly one square and in exactly one colour list.
type Board struct {
	grid   [8][8]PieceID // [file][rank]
	pieces map[PieceID]*Piece
	live   [2][]*Piece
	kings  [2]PieceID
	nextID PieceID
}

var backRankOrder = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

func NewEmptyBoard() *Board {
	return &Board{
		pieces: make(map[PieceID]*Piece, 32),
		nextID: 1,
	}
}

// NewStandardBoard returns the initial position.
func NewStandardBoard() *Board {
	b := NewEmptyBoard()
	for _, c := range []Color{White, Black} {
		for file, kind := range backRankOrder {
			b.mustPlace(c, kind, Sq(file, c.backRank()))
		}
		for file := 0; file < 8; file++ {
			b.mustPlace(c, Pawn, Sq(file, c.pawnStartRank()))
		}
	}
	return b
}

func (b *Board) mustPlace(c Color, k Kind, sq Square) *Piece {
	p, err := b.Place(c, k, sq)
	if err != nil {
		panic(err)
	}
	return p
}

// Place puts a new, never-moved piece on an empty square.
func (b *Board) Place(c Color, k Kind, sq Square) (*Piece, error) {
	if !sq.Valid() {
		return nil, fmt.Errorf("place %s %s: %w", c, k, ErrInvalidSquare)
	}
	if b.grid[sq.File][sq.Rank] != NoPiece {
		return nil, fmt.Errorf("place %s %s on %s: %w", c, k, sq, ErrSquareOccupied)
	}
	if k == King && b.kings[c] != NoPiece {
		return nil, fmt.Errorf("place %s king on %s: %w", c, sq, ErrDuplicateKing)
	}
	p := &Piece{ID: b.nextID, Color: c, Kind: k, Square: sq}
	b.nextID++
	b.add(p)
	return p, nil
}

func (b *Board) add(p *Piece) {
	b.pieces[p.ID] = p
	b.grid[p.Square.File][p.Square.Rank] = p.ID
	b.live[p.Color] = append(b.live[p.Color], p)
	if p.Kind == King {
		b.kings[p.Color] = p.ID
	}
}

// remove takes p off its square and out of its colour list.
func (b *Board) remove(p *Piece) {
	if b.grid[p.Square.File][p.Square.Rank] == p.ID {
		b.grid[p.Square.File][p.Square.Rank] = NoPiece
	}
	delete(b.pieces, p.ID)
	list := b.live[p.Color]
	for i, q := range list {
		if q.ID == p.ID {
			b.live[p.Color] = append(list[:i:i], list[i+1:]...)
			break
		}
	}
	if b.kings[p.Color] == p.ID {
		b.kings[p.Color] = NoPiece
	}
}

func (b *Board) relocate(p *Piece, to Square) {
	if b.grid[p.Square.File][p.Square.Rank] == p.ID {
		b.grid[p.Square.File][p.Square.Rank] = NoPiece
	}
	b.grid[to.File][to.Rank] = p.ID
	p.Square = to
}

// substitute retires p and registers a fresh piece of kind k on the same square.
func (b *Board) substitute(p *Piece, k Kind) *Piece {
	sq := p.Square
	b.remove(p)
	q := &Piece{ID: b.nextID, Color: p.Color, Kind: k, Square: sq, HasMoved: true}
	b.nextID++
	b.add(q)
	return q
}

// OccupantAt returns the piece on sq, or nil. Callers validate sq.
func (b *Board) OccupantAt(sq Square) *Piece {
	if !sq.Valid() {
		return nil
	}
	return b.pieces[b.grid[sq.File][sq.Rank]]
}

func (b *Board) IsEmpty(sq Square) bool {
	return b.OccupantAt(sq) == nil
}

func (b *Board) ColorAt(sq Square) (Color, bool) {
	p := b.OccupantAt(sq)
	if p == nil {
		return 0, false
	}
	return p.Color, true
}

// Piece looks up a live piece; captured and promoted-away pieces return nil.
func (b *Board) Piece(id PieceID) *Piece {
	return b.pieces[id]
}

// Pieces returns the live pieces of c in placement order.
func (b *Board) Pieces(c Color) []*Piece {
	out := make([]*Piece, len(b.live[c]))
	copy(out, b.live[c])
	return out
}

func (b *Board) King(c Color) *Piece {
	return b.pieces[b.kings[c]]
}

// Clone deep-copies the board, keeping piece ids.
func (b *Board) Clone() *Board {
	nb := &Board{
		grid:   b.grid,
		pieces: make(map[PieceID]*Piece, len(b.pieces)),
		kings:  b.kings,
		nextID: b.nextID,
	}
	for c := range b.live {
		nb.live[c] = make([]*Piece, 0, len(b.live[c]))
		for _, p := range b.live[c] {
			cp := *p
			nb.pieces[cp.ID] = &cp
			nb.live[c] = append(nb.live[c], &cp)
		}
	}
	return nb
}
