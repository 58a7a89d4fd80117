package board

// offset is a (dRow, dCol) step.
type offset struct{ dRow, dCol int }

// rookDirections are the four orthogonal slide directions.
var rookDirections = [4]offset{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
}

// bishopDirections are the four diagonal slide directions.
var bishopDirections = [4]offset{
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// queenDirections are all eight slide directions (rook + bishop), also
// used for king single-steps and for reverse-scanning sliders when
// probing attacks on a square.
var queenDirections = [8]offset{
	{-1, 0}, {1, 0}, {0, -1}, {0, 1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// knightOffsets are the eight L-shaped knight steps.
var knightOffsets = [8]offset{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

// pawnForward gives each color's single-step forward direction: RED moves
// up the grid (-row), YELLOW down (+row), BLUE right (+col), GREEN left
// (-col).
var pawnForward = [4]offset{
	Red:    {-1, 0},
	Blue:   {0, 1},
	Yellow: {1, 0},
	Green:  {0, -1},
}

// pawnDoubleStepRank gives the rank each color's pawns start on, used to
// allow the initial double step.
var pawnDoubleStepRank = [4]int{
	Red:    12,
	Blue:   1,
	Yellow: 1,
	Green:  12,
}

// pawnPromotionRank is the fixed rank/file a color's pawn must reach to
// promote, per the rules engine's own definition (not the far board
// edge): row 3 for RED, row 10 for YELLOW, col 10 for BLUE, col 3 for
// GREEN.
var pawnPromotionRank = [4]int{
	Red:    3,
	Blue:   10,
	Yellow: 10,
	Green:  3,
}

// usesColPerpendicular reports whether a color's "perpendicular" axis (the
// one captures fan out along) is the column (true, for RED/YELLOW moving
// along rows) or the row (false, for BLUE/GREEN moving along columns).
func usesColPerpendicular(c Color) bool {
	return c == Red || c == Yellow
}

// pawnCaptureOffsets returns the two diagonal-forward offsets a pawn of
// color c captures along: forward +/- 1 on the perpendicular axis.
func pawnCaptureOffsets(c Color) [2]offset {
	f := pawnForward[c]
	if usesColPerpendicular(c) {
		return [2]offset{{f.dRow, f.dCol - 1}, {f.dRow, f.dCol + 1}}
	}
	return [2]offset{{f.dRow - 1, f.dCol}, {f.dRow + 1, f.dCol}}
}

var promotableKinds = [4]Kind{Knight, Bishop, Rook, Queen}
