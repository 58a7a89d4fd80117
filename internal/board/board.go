package board

// maxPiecesPerColor bounds each color's piece list; a 4-player chess army
// starts with 16 pieces and can only shrink or reassign kind (promotion),
// never grow, so 16 is a hard ceiling.
const maxPiecesPerColor = 16

// maxMoveStorage bounds the move ring used by Undo. The reference engine
// hard-codes this at 5, which the design notes flag as unsound for
// anything but the shallowest nesting (it breaks en passant across wider
// gaps, and would equally break Eval's iterative-deepening recursion,
// which nests one Make per ply down to depth 100). Since en passant is
// dropped here (SPEC_FULL.md §3.1) the only remaining consumer of nesting
// depth is Eval, so the ring is sized to comfortably exceed its depth
// bound instead of reproducing the source's limitation.
const maxMoveStorage = 128

// PieceEntry is one slot in a color's piece list: the piece's kind/color
// (redundant with the grid, for cache-friendly iteration) and its current
// location.
type PieceEntry struct {
	Location Square
	Piece    Piece
}

// Board is the full 4-player chess state container: a dense grid, four
// per-color piece lists, four king locations, four castling-rights
// entries, a bounded move ring, and whose turn it is.
//
// Board is a plain value type on purpose: Pool.Acquire initializes a
// new Board by struct assignment from a template (spec: "initialized by
// bitwise copy"), which only gives the right semantics — no aliasing
// between pool members — if Board contains no slices or pointers. Piece
// lists and the move ring are therefore fixed-size arrays, not slices.
type Board struct {
	grid [Size * Size]Piece

	pieces     [4][maxPiecesPerColor]PieceEntry
	pieceCount [4]int

	kingSquare [4]Square
	castling   [4]CastlingRights

	turn Color

	ring      [maxMoveStorage]Move
	ringStart int
	ringLen   int
}

// New returns an empty board (no pieces placed), turn RED, no castling
// rights. Callers typically use NewStartingBoard or ParseFEN instead.
func New() *Board {
	b := &Board{}
	for i := range b.kingSquare {
		b.kingSquare[i] = NoSquare
	}
	b.turn = Red
	return b
}

// NewStartingBoard returns the board set up from the canonical starting
// position (spec §6 FEN-like literal).
func NewStartingBoard() *Board {
	b, err := ParseFEN(StartFEN)
	if err != nil {
		panic("board: start FEN failed to parse: " + err.Error())
	}
	return b
}

// Copy returns an independent deep copy. Because Board holds no pointers,
// this is a plain value copy.
func (b *Board) Copy() *Board {
	nb := *b
	return &nb
}

// CopyFrom overwrites b with a bitwise copy of src, matching the teacher's
// Position.Copy / the reference BoardPool::acquire's "initialized by
// bitwise copy from the template" contract.
func (b *Board) CopyFrom(src *Board) {
	*b = *src
}

// Turn returns whose move it is.
func (b *Board) Turn() Color {
	return b.turn
}

// SetTurn forcibly sets whose move it is. Used by constructors; game play
// should go through Make.
func (b *Board) SetTurn(c Color) {
	b.turn = c
}

// PieceAt returns the piece at s, or NoPiece if s is empty, cut out, or
// off the grid.
func (b *Board) PieceAt(s Square) Piece {
	if !s.PlayableSquare() {
		return NoPiece
	}
	return b.grid[s]
}

// GetPieceAt is the bounds-checked accessor for external callers (spec
// §7: "out-of-bounds get_piece_at(row, col)" is a recoverable
// user-input error, not a panic).
func (b *Board) GetPieceAt(row, col int) (Piece, error) {
	if !InBounds(row, col) {
		return NoPiece, ErrOutOfBounds
	}
	if IsCutout(row, col) {
		return NoPiece, nil
	}
	return b.grid[NewSquare(row, col)], nil
}

// KingSquare returns the location of c's king, or NoSquare if captured.
func (b *Board) KingSquare(c Color) Square {
	return b.kingSquare[c]
}

// CastlingRightsOf returns c's current castling rights.
func (b *Board) CastlingRightsOf(c Color) CastlingRights {
	return b.castling[c]
}

// Pieces returns the live piece-list entries for c. The returned slice
// aliases Board-internal storage and must not be retained past the next
// mutation.
func (b *Board) Pieces(c Color) []PieceEntry {
	return b.pieces[c][:b.pieceCount[c]]
}

// addPiece places p at s, updating the grid, the owner's sorted piece
// list, and the king location if applicable. s must currently be empty.
func (b *Board) addPiece(s Square, p Piece) {
	b.grid[s] = p
	c := p.Color()
	n := b.pieceCount[c]
	if n >= maxPiecesPerColor {
		panic("board: piece list overflow")
	}
	// Insertion sort by kind priority keeps the list ordered for
	// move-ordering heuristics without an explicit sort pass.
	i := n
	for i > 0 && kindPriority[b.pieces[c][i-1].Piece.Kind()] > kindPriority[p.Kind()] {
		b.pieces[c][i] = b.pieces[c][i-1]
		i--
	}
	b.pieces[c][i] = PieceEntry{Location: s, Piece: p}
	b.pieceCount[c]++

	if p.Kind() == King {
		b.kingSquare[c] = s
	}
}

// removePiece clears s, removing the matching entry from its owner's
// piece list. Panics if s holds no piece (programmer error: caller bug).
func (b *Board) removePiece(s Square) {
	p := b.grid[s]
	if !p.Present() {
		panic("board: removePiece on empty square")
	}
	c := p.Color()
	n := b.pieceCount[c]
	idx := -1
	for i := 0; i < n; i++ {
		if b.pieces[c][i].Location == s {
			idx = i
			break
		}
	}
	if idx == -1 {
		panic("board: piece list missing entry for occupied square")
	}
	copy(b.pieces[c][idx:n-1], b.pieces[c][idx+1:n])
	b.pieceCount[c]--
	b.grid[s] = NoPiece

	if p.Kind() == King {
		b.kingSquare[c] = NoSquare
	}
}

// relocatePiece moves the piece list entry (and grid cell) for a piece
// from `from` to `to` without touching its kind/color, updating the king
// location if it's a king. `to` must be empty; `from` must hold a piece.
func (b *Board) relocatePiece(from, to Square) {
	p := b.grid[from]
	if !p.Present() {
		panic("board: relocatePiece on empty square")
	}
	c := p.Color()
	n := b.pieceCount[c]
	for i := 0; i < n; i++ {
		if b.pieces[c][i].Location == from {
			b.pieces[c][i].Location = to
			break
		}
	}
	b.grid[to] = p
	b.grid[from] = NoPiece
	if p.Kind() == King {
		b.kingSquare[c] = to
	}
}

// requalifyPiece changes the kind of the piece at s in place (used for
// promotion and its undo), leaving location/color untouched.
func (b *Board) requalifyPiece(s Square, newKind Kind) {
	p := b.grid[s]
	if !p.Present() {
		panic("board: requalifyPiece on empty square")
	}
	np := NewPiece(p.Color(), newKind)
	b.grid[s] = np
	c := p.Color()
	for i := range b.pieces[c][:b.pieceCount[c]] {
		if b.pieces[c][i].Location == s {
			b.pieces[c][i].Piece = np
			break
		}
	}
}

func (b *Board) pushRing(m Move) {
	if b.ringLen == maxMoveStorage {
		b.ringStart = (b.ringStart + 1) % maxMoveStorage
		b.ringLen--
	}
	idx := (b.ringStart + b.ringLen) % maxMoveStorage
	b.ring[idx] = m
	b.ringLen++
}

func (b *Board) popRing() Move {
	if b.ringLen == 0 {
		panic("board: undo with empty move ring")
	}
	idx := (b.ringStart + b.ringLen - 1) % maxMoveStorage
	m := b.ring[idx]
	b.ring[idx] = Move{}
	b.ringLen--
	return m
}
