package board

// PseudoLegalMoves writes every pseudo-legal move for the side to move
// into buf, returning the count. A pseudo-legal move obeys piece-movement
// rules and doesn't land on a friendly piece, but may leave the mover's
// own king in check.
func (b *Board) PseudoLegalMoves(buf *MoveList) int {
	buf.Clear()
	us := b.turn
	for _, entry := range b.Pieces(us) {
		switch entry.Piece.Kind() {
		case Pawn:
			b.genPawnMoves(buf, us, entry.Location)
		case Knight:
			b.genStepMoves(buf, us, entry.Location, knightOffsets[:])
		case Bishop:
			b.genSlideMoves(buf, us, entry.Location, bishopDirections[:])
		case Rook:
			b.genSlideMoves(buf, us, entry.Location, rookDirections[:])
		case Queen:
			b.genSlideMoves(buf, us, entry.Location, queenDirections[:])
		case King:
			b.genStepMoves(buf, us, entry.Location, queenDirections[:])
			b.genCastlingMoves(buf, us, entry.Location)
		}
	}
	return buf.Len()
}

// LegalMoves writes every legal move for the side to move into buf,
// returning the count: each pseudo-legal move is made, checked for
// leaving the mover's own king safe, then undone.
func (b *Board) LegalMoves(buf *MoveList) int {
	var pseudo MoveList
	b.PseudoLegalMoves(&pseudo)

	buf.Clear()
	us := b.turn
	for i := 0; i < pseudo.Len(); i++ {
		m := pseudo.Get(i)
		b.Make(m)
		safe := !b.IsKingInCheck(us)
		b.Undo()
		if safe {
			buf.Add(m)
		}
	}
	return buf.Len()
}

// IsMoveLegal reports whether m is pseudo-legal and leaves the mover's own
// king safe.
func (b *Board) IsMoveLegal(m Move) bool {
	var pseudo MoveList
	b.PseudoLegalMoves(&pseudo)
	if !pseudo.Contains(m) {
		return false
	}
	us := b.turn
	b.Make(m)
	safe := !b.IsKingInCheck(us)
	b.Undo()
	return safe
}

func (b *Board) genStepMoves(buf *MoveList, us Color, from Square, offs []offset) {
	for _, o := range offs {
		to, ok := from.Relative(o.dRow, o.dCol)
		if !ok || !to.PlayableSquare() {
			continue
		}
		target := b.grid[to]
		if target.Present() && target.Color() == us {
			continue
		}
		buf.Add(b.buildQuietOrCapture(us, from, to, target))
	}
}

func (b *Board) genSlideMoves(buf *MoveList, us Color, from Square, dirs []offset) {
	for _, d := range dirs {
		cur := from
		for {
			to, ok := cur.Relative(d.dRow, d.dCol)
			if !ok || !to.PlayableSquare() {
				break
			}
			cur = to
			target := b.grid[to]
			if target.Present() && target.Color() == us {
				break
			}
			buf.Add(b.buildQuietOrCapture(us, from, to, target))
			if target.Present() {
				break
			}
		}
	}
}

func (b *Board) genPawnMoves(buf *MoveList, us Color, from Square) {
	fwd := pawnForward[us]
	promoRank := pawnPromotionRank[us]

	if to, ok := from.Relative(fwd.dRow, fwd.dCol); ok && to.PlayableSquare() && !b.grid[to].Present() {
		b.addPawnAdvance(buf, us, from, to, promoRank)

		startRank := pawnStartRank(us, from)
		if startRank {
			if to2, ok2 := to.Relative(fwd.dRow, fwd.dCol); ok2 && to2.PlayableSquare() && !b.grid[to2].Present() {
				buf.Add(b.buildQuietOrCapture(us, from, to2, NoPiece))
			}
		}
	}

	for _, o := range pawnCaptureOffsets(us) {
		to, ok := from.Relative(o.dRow, o.dCol)
		if !ok || !to.PlayableSquare() {
			continue
		}
		target := b.grid[to]
		if !target.Present() || target.Color() == us {
			continue
		}
		b.addPawnAdvance(buf, us, from, to, promoRank)
	}
}

// pawnStartRank reports whether from is on the rank/file a pawn of color
// us takes its initial double step from.
func pawnStartRank(us Color, from Square) bool {
	if usesColPerpendicular(us) {
		return from.Row() == pawnDoubleStepRank[us]
	}
	return from.Col() == pawnDoubleStepRank[us]
}

// reachesPromotion reports whether `to` is at or beyond us's promotion
// rank/file — a threshold, not an exact rank, since a pawn placed (e.g.
// by a test, or by a prior promotion-eligible position) past its
// promotion rank must still promote on its next advance. The threshold
// direction follows the sign of the color's forward offset: RED/GREEN
// advance toward decreasing row/col, so "at or beyond" means <=; BLUE/
// YELLOW advance toward increasing row/col, so it means >=.
func reachesPromotion(us Color, to Square) bool {
	if usesColPerpendicular(us) {
		if pawnForward[us].dRow < 0 {
			return to.Row() <= pawnPromotionRank[us]
		}
		return to.Row() >= pawnPromotionRank[us]
	}
	if pawnForward[us].dCol < 0 {
		return to.Col() <= pawnPromotionRank[us]
	}
	return to.Col() >= pawnPromotionRank[us]
}

func (b *Board) addPawnAdvance(buf *MoveList, us Color, from, to Square, _ int) {
	target := b.grid[to]
	if reachesPromotion(us, to) {
		for _, k := range promotableKinds {
			m := b.buildQuietOrCapture(us, from, to, target)
			m.Promotion = k
			buf.Add(m)
		}
		return
	}
	buf.Add(b.buildQuietOrCapture(us, from, to, target))
}

// buildQuietOrCapture constructs the common Move shape shared by every
// non-castling generator, filling in castling-rights deltas triggered by a
// rook leaving its starting square or a king moving at all.
func (b *Board) buildQuietOrCapture(us Color, from, to Square, captured Piece) Move {
	m := Move{From: from, To: to, Captured: captured, EnPassantVictimSquare: NoSquare, RookFrom: NoSquare, RookTo: NoSquare}

	moved := b.grid[from]
	switch moved.Kind() {
	case King:
		before := b.castling[us]
		if before.Kingside || before.Queenside {
			m.RightsBefore = before
			m.RightsAfter = NoRights()
		}
	case Rook:
		starts := rookStartSquares[us]
		before := b.castling[us]
		switch from {
		case starts.Kingside:
			if before.Kingside {
				m.RightsBefore = before
				after := before
				after.Kingside = false
				m.RightsAfter = after
			}
		case starts.Queenside:
			if before.Queenside {
				m.RightsBefore = before
				after := before
				after.Queenside = false
				m.RightsAfter = after
			}
		}
	}
	return m
}

// genCastlingMoves appends any castling moves available to the king at
// `from` for color us.
func (b *Board) genCastlingMoves(buf *MoveList, us Color, from Square) {
	rights := b.castling[us]
	starts := rookStartSquares[us]
	them := us.OpposingTeam()

	tryCastle := func(rookSq Square, allowed bool) {
		if !allowed {
			return
		}
		rook := b.grid[rookSq]
		if !rook.Present() || rook.Color() != us || rook.Kind() != Rook {
			return
		}
		dRow, dCol := stepSign(from, rookSq)

		// Squares strictly between king and rook must be empty.
		cur := from
		for {
			next, ok := cur.Relative(dRow, dCol)
			if !ok {
				return
			}
			if next == rookSq {
				break
			}
			if b.grid[next].Present() {
				return
			}
			cur = next
		}

		// King's current, passed-through, and landing squares must all
		// be safe from the opposing team.
		probe := from
		for step := 0; step < 2; step++ {
			if b.IsAttackedByTeam(them, probe) {
				return
			}
			next, ok := probe.Relative(dRow, dCol)
			if !ok {
				return
			}
			probe = next
		}
		if b.IsAttackedByTeam(them, probe) {
			return
		}

		kingTo := probe
		rookTo, _ := from.Relative(dRow, dCol)

		m := Move{
			From: from, To: kingTo,
			Captured:     NoPiece,
			EnPassantVictimSquare: NoSquare,
			RookFrom:     rookSq,
			RookTo:       rookTo,
			RightsBefore: rights,
			RightsAfter:  NoRights(),
		}
		buf.Add(m)
	}

	tryCastle(starts.Kingside, rights.Present && rights.Kingside)
	tryCastle(starts.Queenside, rights.Present && rights.Queenside)
}

// stepSign returns the unit (dRow, dCol) direction from a to b, which must
// be aligned on a single row or column.
func stepSign(a, b Square) (int, int) {
	dr := sign(b.Row() - a.Row())
	dc := sign(b.Col() - a.Col())
	return dr, dc
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
