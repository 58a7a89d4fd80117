package board

// MaxAttackers bounds the Attackers() output buffer.
const MaxAttackers = 16

// SquareList is a fixed-capacity list of squares, used for Attackers'
// caller-supplied output buffer (same zero-allocation discipline as
// MoveList).
type SquareList struct {
	squares [MaxAttackers]Square
	count   int
}

func (sl *SquareList) add(s Square) {
	if sl.count >= MaxAttackers {
		panic("board: attacker buffer overflow")
	}
	sl.squares[sl.count] = s
	sl.count++
}

// Len returns the number of squares stored.
func (sl *SquareList) Len() int { return sl.count }

// Get returns the square at index i.
func (sl *SquareList) Get(i int) Square { return sl.squares[i] }

// Clear empties the list for reuse.
func (sl *SquareList) Clear() { sl.count = 0 }

func colorOnTeam(c Color, team Team) bool {
	return c.Team() == team
}

// IsAttackedByTeam reports whether any piece belonging to team attacks
// square s. Implemented as direct geometric queries (reverse ray scans
// for sliders, fixed-offset scans for knight/king/pawn) rather than by
// re-running move generation, per spec §4.2 — this is the inner loop of
// check detection and of castling-safety checks, both hot paths.
func (b *Board) IsAttackedByTeam(team Team, s Square) bool {
	if !s.PlayableSquare() {
		return false
	}

	for _, c := range [4]Color{Red, Blue, Yellow, Green} {
		if !colorOnTeam(c, team) {
			continue
		}
		offs := pawnCaptureOffsets(c)
		for _, o := range offs {
			from, ok := s.Relative(-o.dRow, -o.dCol)
			if !ok || !from.PlayableSquare() {
				continue
			}
			p := b.grid[from]
			if p.Present() && p.Color() == c && p.Kind() == Pawn {
				return true
			}
		}
	}

	for _, o := range knightOffsets {
		from, ok := s.Relative(o.dRow, o.dCol)
		if !ok || !from.PlayableSquare() {
			continue
		}
		p := b.grid[from]
		if p.Present() && p.Kind() == Knight && colorOnTeam(p.Color(), team) {
			return true
		}
	}

	for _, d := range queenDirections {
		isDiagonal := d.dRow != 0 && d.dCol != 0
		cur := s
		for {
			next, ok := cur.Relative(d.dRow, d.dCol)
			if !ok || !next.PlayableSquare() {
				break
			}
			cur = next
			p := b.grid[cur]
			if !p.Present() {
				continue
			}
			if !colorOnTeam(p.Color(), team) {
				break
			}
			switch p.Kind() {
			case Queen:
				return true
			case Bishop:
				if isDiagonal {
					return true
				}
			case Rook:
				if !isDiagonal {
					return true
				}
			}
			break
		}
	}

	for _, o := range queenDirections {
		from, ok := s.Relative(o.dRow, o.dCol)
		if !ok || !from.PlayableSquare() {
			continue
		}
		p := b.grid[from]
		if p.Present() && p.Kind() == King && colorOnTeam(p.Color(), team) {
			return true
		}
	}

	return false
}

// Attackers fills buf with every square belonging to team that attacks s,
// returning the count. Semantically equivalent to, but independent of,
// IsAttackedByTeam.
func (b *Board) Attackers(buf *SquareList, team Team, s Square) int {
	buf.Clear()
	if !s.PlayableSquare() {
		return 0
	}

	for _, c := range [4]Color{Red, Blue, Yellow, Green} {
		if !colorOnTeam(c, team) {
			continue
		}
		for _, o := range pawnCaptureOffsets(c) {
			from, ok := s.Relative(-o.dRow, -o.dCol)
			if !ok || !from.PlayableSquare() {
				continue
			}
			p := b.grid[from]
			if p.Present() && p.Color() == c && p.Kind() == Pawn {
				buf.add(from)
			}
		}
	}

	for _, o := range knightOffsets {
		from, ok := s.Relative(o.dRow, o.dCol)
		if !ok || !from.PlayableSquare() {
			continue
		}
		p := b.grid[from]
		if p.Present() && p.Kind() == Knight && colorOnTeam(p.Color(), team) {
			buf.add(from)
		}
	}

	for _, d := range queenDirections {
		isDiagonal := d.dRow != 0 && d.dCol != 0
		cur := s
		for {
			next, ok := cur.Relative(d.dRow, d.dCol)
			if !ok || !next.PlayableSquare() {
				break
			}
			cur = next
			p := b.grid[cur]
			if !p.Present() {
				continue
			}
			if !colorOnTeam(p.Color(), team) {
				break
			}
			if p.Kind() == Queen || (p.Kind() == Bishop && isDiagonal) || (p.Kind() == Rook && !isDiagonal) {
				buf.add(cur)
			}
			break
		}
	}

	for _, o := range queenDirections {
		from, ok := s.Relative(o.dRow, o.dCol)
		if !ok || !from.PlayableSquare() {
			continue
		}
		p := b.grid[from]
		if p.Present() && p.Kind() == King && colorOnTeam(p.Color(), team) {
			buf.add(from)
		}
	}

	return buf.Len()
}

// IsKingInCheck reports whether player's king is attacked by the
// opposing team. A captured king is never "in check" — game_result
// handles that case separately.
func (b *Board) IsKingInCheck(player Color) bool {
	ks := b.kingSquare[player]
	if ks == NoSquare {
		return false
	}
	return b.IsAttackedByTeam(player.OpposingTeam(), ks)
}
