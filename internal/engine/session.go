package engine

import "sync"

// Session owns one game's Board and State. Its methods are safe for
// concurrent use; each call runs as a single critical section.
type Session struct {
	mu       sync.Mutex
	board    *Board
	state    State
	pending  Move
	history  []Ply
	captured [2][]Piece // indexed by the capturing colour
	check    bool
}

// MoveOutcome reports an executed move, or a deferred promotion when Pending is set.
type MoveOutcome struct {
	Ply     Ply
	Outcome Outcome
	InCheck bool
	Pending bool
}

func NewSession() *Session {
	s := &Session{}
	s.StartNewGame()
	return s
}

// NewSessionFrom starts a game from an arbitrary position with toMove to play.
func NewSessionFrom(b *Board, toMove Color) *Session {
	st := NewState()
	st.ToMove = toMove
	s := &Session{board: b, state: st}
	s.state.Outcome = Classify(b, s.state)
	s.check = InCheck(b, toMove)
	return s
}

// StartNewGame resets to the standard initial position.
func (s *Session) StartNewGame() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.board = NewStandardBoard()
	s.state = NewState()
	s.pending = nil
	s.history = nil
	s.captured = [2][]Piece{}
	s.check = false
}

// LegalMovesFor is empty when it is not the piece's side to move, the game is
// over, or a promotion choice is outstanding.
func (s *Session) LegalMovesFor(id PieceID) []Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.board.Piece(id)
	if p == nil || p.Color != s.state.ToMove || s.state.Outcome.Over() || s.pending != nil {
		return nil
	}
	return LegalMoves(s.board, p)
}

// Piece returns a copy of the live piece with id.
func (s *Session) Piece(id PieceID) (Piece, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.board.Piece(id)
	if p == nil {
		return Piece{}, false
	}
	return *p, true
}

// AttemptMove plays the legal move of piece id that lands on to. A promotion
// without a chosen kind is held as pending and reported with
// ErrPromotionChoiceMissing; CompletePromotion finishes it.
func (s *Session) AttemptMove(id PieceID, to Square, promotion Kind) (MoveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !to.Valid() {
		return MoveOutcome{}, moveError(id, to, ErrInvalidSquare)
	}
	if s.state.Outcome.Over() {
		return MoveOutcome{}, moveError(id, to, ErrGameOver)
	}
	if s.pending != nil {
		return MoveOutcome{Pending: true}, moveError(s.pending.Mover(), s.pending.To(), ErrPromotionChoiceMissing)
	}
	m, err := s.match(id, to)
	if err != nil {
		return MoveOutcome{}, err
	}
	if IsPromotion(m) && promotion == NoKind {
		s.pending = m
		return MoveOutcome{Pending: true}, moveError(id, to, ErrPromotionChoiceMissing)
	}
	return s.play(m, promotion)
}

// CompletePromotion executes the pending promotion with kind. The move is
// re-validated first; if it went stale the pending state is dropped.
func (s *Session) CompletePromotion(kind Kind) (MoveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending == nil {
		return MoveOutcome{}, ErrNoPendingPromotion
	}
	id, to := s.pending.Mover(), s.pending.To()
	if !kind.CanPromoteTo() {
		return MoveOutcome{Pending: true}, moveError(id, to, ErrInvalidPromotion)
	}
	m, err := s.match(id, to)
	s.pending = nil
	if err != nil {
		return MoveOutcome{}, err
	}
	return s.play(m, kind)
}

func (s *Session) CancelPromotion() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return ErrNoPendingPromotion
	}
	s.pending = nil
	return nil
}

// PendingPromotion returns the move waiting for a promotion choice.
func (s *Session) PendingPromotion() (Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending, s.pending != nil
}

// match regenerates the piece's legal moves so a stale candidate list can never be executed.
func (s *Session) match(id PieceID, to Square) (Move, error) {
	p := s.board.Piece(id)
	if p == nil {
		return nil, moveError(id, to, ErrNoSuchPiece)
	}
	if p.Color != s.state.ToMove {
		return nil, moveError(id, to, ErrNotYourTurn)
	}
	for _, m := range LegalMoves(s.board, p) {
		if m.To() == to {
			return m, nil
		}
	}
	return nil, moveError(id, to, ErrNoSuchLegalMove)
}

func (s *Session) play(m Move, promotion Kind) (MoveOutcome, error) {
	mover := s.board.Piece(m.Mover())
	ply := Ply{
		Piece: mover.ID,
		Color: mover.Color,
		Kind:  mover.Kind,
		Move:  m.Kind(),
		From:  mover.Square,
		To:    m.To(),
	}
	if IsPromotion(m) {
		ply.Promotion = promotion
	}
	notation := notate(s.board, m, promotion)
	var victim *Piece
	if id, ok := CapturedBy(m); ok {
		if p := s.board.Piece(id); p != nil {
			cp := *p
			victim = &cp
			ply.Captured = p.Kind
		}
	}

	if err := Execute(s.board, &s.state, m, promotion); err != nil {
		return MoveOutcome{}, err
	}
	if victim != nil {
		s.captured[mover.Color] = append(s.captured[mover.Color], *victim)
	}
	s.state.Outcome = Classify(s.board, s.state)
	s.check = InCheck(s.board, s.state.ToMove)
	ply.Notation = notation + checkSuffix(s.state.Outcome, s.check)
	s.history = append(s.history, ply)

	return MoveOutcome{Ply: ply, Outcome: s.state.Outcome, InCheck: s.check}, nil
}

func (s *Session) CurrentOutcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Outcome
}

// InCheck reports whether the side to move is in check.
func (s *Session) InCheck() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.check
}

func (s *Session) History() []Ply {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Ply(nil), s.history...)
}

// Snapshot is a deep copy of a session, detached from later moves.
type Snapshot struct {
	Board    *Board
	State    State
	History  []Ply
	Captured [2][]Piece
	InCheck  bool
	Pending  Move
}

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Board:   s.board.Clone(),
		State:   s.state,
		History: append([]Ply(nil), s.history...),
		InCheck: s.check,
		Pending: s.pending,
	}
	for c := range s.captured {
		snap.Captured[c] = append([]Piece(nil), s.captured[c]...)
	}
	return snap
}
