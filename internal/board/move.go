package board

import "fmt"

// Move is a tagged record carrying every field needed to apply and then
// exactly reverse a move without consulting board history. Unlike the
// teacher's packed 16-bit chess.Move, this carries before/after castling
// rights inline and an optional rook sub-move, because Undo here must be
// keyed off the Move alone (see Board.Undo). All fields are comparable, so
// Go's == already gives the spec's "moves are value-equal by all of these
// fields".
type Move struct {
	From, To Square

	// Captured is the piece standing on To before the move (NoPiece if
	// none). Needed to restore a standard capture on Undo.
	Captured Piece

	// Promotion is the kind the moving pawn becomes, or NoKind.
	Promotion Kind

	// En passant is reserved per the data model but never populated by
	// move generation in this implementation (see SPEC_FULL.md §3.1):
	// the reference engine's AlphaZero-facing pawn generator does not
	// emit it, and the bounded move history makes it unsound across wide
	// gaps (design notes, §9).
	EnPassantVictimSquare Square
	EnPassantVictim       Piece

	// RookFrom/RookTo carry the rook's sub-move for castling; NoSquare
	// for all other moves.
	RookFrom, RookTo Square

	// RightsBefore/RightsAfter are the mover's castling rights, or
	// NoChange if this move does not alter them. Storing both directions
	// lets Undo restore rights exactly without scanning history.
	RightsBefore, RightsAfter CastlingRights
}

// IsCapture reports whether this move removes an enemy piece (standard or
// en passant).
func (m Move) IsCapture() bool {
	return m.Captured.Present() || m.EnPassantVictim.Present()
}

// IsPromotion reports whether this move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promotion != NoKind
}

// IsCastling reports whether this move carries a rook sub-move.
func (m Move) IsCastling() bool {
	return m.RookFrom != NoSquare
}

// IsEnPassant reports whether this move is an en passant capture.
func (m Move) IsEnPassant() bool {
	return m.EnPassantVictimSquare != NoSquare
}

func (m Move) String() string {
	s := fmt.Sprintf("%s%s", m.From, m.To)
	if m.IsPromotion() {
		s += "=" + m.Promotion.String()
	}
	if m.IsCastling() {
		s += "(O-O)"
	}
	return s
}

// MaxMoves bounds a single pseudo-legal move buffer; overflow is a
// programmer error (spec: "overflow is a fatal error").
const MaxMoves = 300

// MoveList is a fixed-capacity move buffer, avoiding allocation on the
// move generation hot path — the same shape as the teacher's
// internal/board/move.go MoveList, generalized to the richer Move type
// here.
type MoveList struct {
	moves [MaxMoves]Move
	count int
}

// Add appends m, panicking if the buffer is full.
func (ml *MoveList) Add(m Move) {
	if ml.count >= MaxMoves {
		panic("board: move buffer overflow")
	}
	ml.moves[ml.count] = m
	ml.count++
}

// Len returns the number of moves currently stored.
func (ml *MoveList) Len() int {
	return ml.count
}

// Get returns the move at index i.
func (ml *MoveList) Get(i int) Move {
	return ml.moves[i]
}

// Clear empties the list for reuse.
func (ml *MoveList) Clear() {
	ml.count = 0
}

// Contains reports whether m is present in the list.
func (ml *MoveList) Contains(m Move) bool {
	for i := 0; i < ml.count; i++ {
		if ml.moves[i] == m {
			return true
		}
	}
	return false
}

// Slice returns the stored moves as a slice backed by the list's own
// array; valid until the next Clear/Add.
func (ml *MoveList) Slice() []Move {
	return ml.moves[:ml.count]
}
