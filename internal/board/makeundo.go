package board

// Make applies m to the board, in the fixed order spec §4.3 specifies:
// remove a standard capture, relocate the moving piece (folding the
// "remove from `from`, place at `to`" pair into one relocation), requalify
// it on promotion, remove an en passant victim if present, move the
// castling rook if present, install new castling rights if present,
// advance the turn, then push m onto the move ring for Undo.
//
// Make panics if `from` holds no piece — this is always a programmer
// error: m must come from PseudoLegalMoves/LegalMoves for this board.
func (b *Board) Make(m Move) {
	if !b.grid[m.From].Present() {
		panic("board: make with no piece at from")
	}

	if m.Captured.Present() {
		b.removePiece(m.To)
	}

	mover := b.grid[m.From].Color()

	b.relocatePiece(m.From, m.To)
	if m.IsPromotion() {
		b.requalifyPiece(m.To, m.Promotion)
	}

	if m.EnPassantVictimSquare != NoSquare {
		b.removePiece(m.EnPassantVictimSquare)
	}

	if m.IsCastling() {
		b.relocatePiece(m.RookFrom, m.RookTo)
	}

	if m.RightsAfter.Present {
		b.castling[mover] = m.RightsAfter
	}

	b.turn = b.turn.Next()
	b.pushRing(m)
}

// Undo reverses the most recently made move, keyed entirely off the
// popped Move's own fields — no board history beyond the move ring is
// consulted. Panics if the move ring is empty (see popRing) or if the
// piece expected at `to` is missing (board state doesn't match the move
// being undone — a programmer error).
func (b *Board) Undo() {
	m := b.popRing()

	moved := b.grid[m.To]
	if !moved.Present() {
		panic("board: undo with no piece at to")
	}
	mover := moved.Color()

	b.turn = mover

	if m.RightsAfter.Present {
		b.castling[mover] = m.RightsBefore
	}

	if m.IsCastling() {
		b.relocatePiece(m.RookTo, m.RookFrom)
	}

	if m.EnPassantVictimSquare != NoSquare {
		b.addPiece(m.EnPassantVictimSquare, m.EnPassantVictim)
	}

	if m.IsPromotion() {
		b.requalifyPiece(m.To, Pawn)
	}
	b.relocatePiece(m.To, m.From)

	if m.Captured.Present() {
		b.addPiece(m.To, m.Captured)
	}
}
