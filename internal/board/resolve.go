package board

// ResolveMove turns a bare from/to move (as decoded from an action-space
// index, which carries no capture/promotion/castling side-effects) into
// the fully-qualified Move from the current legal move list that shares
// its From and To squares. When the destination is a promotion square,
// the encoding collapses every promotion kind onto the same plane, so
// this always resolves to promotion-to-QUEEN, matching how
// original_source/src/cpp/move.cpp builds moves from a decoded index
// (it carries no promotion piece at all). Returns false if no legal move
// matches.
func (b *Board) ResolveMove(bare Move) (Move, bool) {
	var legal MoveList
	b.LegalMoves(&legal)

	var fallback Move
	found := false
	for i := 0; i < legal.Len(); i++ {
		m := legal.Get(i)
		if m.From != bare.From || m.To != bare.To {
			continue
		}
		if !m.IsPromotion() {
			return m, true
		}
		if m.Promotion == Queen {
			return m, true
		}
		if !found {
			fallback = m
			found = true
		}
	}
	return fallback, found
}
