package engine

type MoveKind uint8

const (
	MoveQuiet MoveKind = iota + 1
	MoveAttack
	MoveCastle
	MoveEnPassantAdvance
	MoveEnPassantCapture
	MovePromotion
	MovePromotionAttack
)

var moveKindNames = map[MoveKind]string{
	MoveQuiet:            "move",
	MoveAttack:           "attack",
	MoveCastle:           "castle",
	MoveEnPassantAdvance: "enPassantAdvance",
	MoveEnPassantCapture: "enPassantCapture",
	MovePromotion:        "promotionMove",
	MovePromotionAttack:  "promotionAttack",
}

func (k MoveKind) String() string {
	return moveKindNames[k]
}

// Move is one of the concrete variants below. Each carries only what its
// execution needs.
type Move interface {
	Mover() PieceID
	To() Square
	Kind() MoveKind
	isMove()
}

// Quiet relocates the mover to an empty square.
type Quiet struct {
	Piece PieceID
	Dest  Square
}

// Attack relocates the mover onto the captured piece's square.
type Attack struct {
	Piece    PieceID
	Dest     Square
	Captured PieceID
}

// Castle relocates king and rook together.
type Castle struct {
	King     PieceID
	KingDest Square
	Rook     PieceID
	RookDest Square
}

// EnPassantAdvance is a pawn's two-square first step; it marks the pawn capturable.
type EnPassantAdvance struct {
	Piece PieceID
	Dest  Square
}

// EnPassantCapture lands on an empty square and removes the pawn beside the mover.
type EnPassantCapture struct {
	Piece    PieceID
	Dest     Square
	Captured PieceID
}

type PromotionMove struct {
	Piece PieceID
	Dest  Square
}

type PromotionAttack struct {
	Piece    PieceID
	Dest     Square
	Captured PieceID
}

func (m Quiet) Mover() PieceID            { return m.Piece }
func (m Attack) Mover() PieceID           { return m.Piece }
func (m Castle) Mover() PieceID           { return m.King }
func (m EnPassantAdvance) Mover() PieceID { return m.Piece }
func (m EnPassantCapture) Mover() PieceID { return m.Piece }
func (m PromotionMove) Mover() PieceID    { return m.Piece }
func (m PromotionAttack) Mover() PieceID  { return m.Piece }

func (m Quiet) To() Square            { return m.Dest }
func (m Attack) To() Square           { return m.Dest }
func (m Castle) To() Square           { return m.KingDest }
func (m EnPassantAdvance) To() Square { return m.Dest }
func (m EnPassantCapture) To() Square { return m.Dest }
func (m PromotionMove) To() Square    { return m.Dest }
func (m PromotionAttack) To() Square  { return m.Dest }

func (Quiet) Kind() MoveKind            { return MoveQuiet }
func (Attack) Kind() MoveKind           { return MoveAttack }
func (Castle) Kind() MoveKind           { return MoveCastle }
func (EnPassantAdvance) Kind() MoveKind { return MoveEnPassantAdvance }
func (EnPassantCapture) Kind() MoveKind { return MoveEnPassantCapture }
func (PromotionMove) Kind() MoveKind    { return MovePromotion }
func (PromotionAttack) Kind() MoveKind  { return MovePromotionAttack }

func (Quiet) isMove()            {}
func (Attack) isMove()           {}
func (Castle) isMove()           {}
func (EnPassantAdvance) isMove() {}
func (EnPassantCapture) isMove() {}
func (PromotionMove) isMove()    {}
func (PromotionAttack) isMove()  {}

// CapturedBy returns the piece m removes, if any.
func CapturedBy(m Move) (PieceID, bool) {
	switch m := m.(type) {
	case Attack:
		return m.Captured, true
	case EnPassantCapture:
		return m.Captured, true
	case PromotionAttack:
		return m.Captured, true
	}
	return NoPiece, false
}

func IsPromotion(m Move) bool {
	k := m.Kind()
	return k == MovePromotion || k == MovePromotionAttack
}

// hypothesis is the board m would leave behind.
func hypothesis(m Move) Hypothesis {
	switch m := m.(type) {
	case Castle:
		return Hypothesis{Relocated: []Relocation{{m.King, m.KingDest}, {m.Rook, m.RookDest}}}
	default:
		captured, _ := CapturedBy(m)
		return Hypothesis{Removed: captured, Relocated: []Relocation{{m.Mover(), m.To()}}}
	}
}
