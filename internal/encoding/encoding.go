// Package encoding maps between board.Move and the dense (plane, row, col)
// action index the policy head operates over.
package encoding

import (
	"fmt"

	"github.com/jorr3/Alphazero-4-player-chess/internal/board"
)

// BoardSize mirrors board.Size, repeated here so this package's index
// arithmetic reads standalone against the spec's own A = 8*(14-1)+8
// formula.
const BoardSize = board.Size

// NumQueenMovesPerDirection is the maximum slide distance on a 14-wide
// board.
const NumQueenMovesPerDirection = BoardSize - 1

// NumQueenMoves is the plane count spent on queen-like slides.
const NumQueenMoves = 8 * NumQueenMovesPerDirection

// NumKnightMoves is the plane count spent on knight jumps.
const NumKnightMoves = 8

// NumPlanes is the total action-plane count (A = 112).
const NumPlanes = NumQueenMoves + NumKnightMoves

// queenOffsets are (delta_col, delta_row) pairs in the fixed order the
// policy plane index depends on, transcribed verbatim from the spec's
// direction table and cross-checked against
// original_source/src/cpp/move.cpp's queen_move_offsets.
var queenOffsets = [8][2]int{
	{0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	{0, 1}, {1, 1}, {1, 0}, {1, -1},
}

// knightOffsets are (delta_col, delta_row) pairs in the fixed order the
// last 8 planes depend on, again matching original_source's
// knight_move_offsets exactly — this order is semantically load-bearing
// (unlike board.knightOffsets, used only for unordered move/attack scans).
var knightOffsets = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// IndexToMove decodes a (plane, from_row, from_col) triple into a bare
// from->to Move with no capture, promotion, or castling side-effects
// filled in — the Board resolves those when the move is actually made
// (spec §4.4).
func IndexToMove(plane, fromRow, fromCol int) (board.Move, error) {
	if plane < 0 || plane >= NumPlanes {
		return board.Move{}, fmt.Errorf("encoding: plane %d out of range [0,%d)", plane, NumPlanes)
	}
	if !board.InBounds(fromRow, fromCol) {
		return board.Move{}, fmt.Errorf("encoding: from (%d,%d) out of bounds", fromRow, fromCol)
	}

	var dCol, dRow int
	if plane < NumQueenMoves {
		direction := plane / NumQueenMovesPerDirection
		distance := plane%NumQueenMovesPerDirection + 1
		o := queenOffsets[direction]
		dCol, dRow = o[0]*distance, o[1]*distance
	} else {
		knightIdx := plane - NumQueenMoves
		o := knightOffsets[knightIdx]
		dCol, dRow = o[0], o[1]
	}

	toRow, toCol := fromRow+dRow, fromCol+dCol
	if !board.InBounds(toRow, toCol) {
		return board.Move{}, fmt.Errorf("encoding: decoded target (%d,%d) out of bounds", toRow, toCol)
	}

	return board.Move{
		From:     board.NewSquare(fromRow, fromCol),
		To:       board.NewSquare(toRow, toCol),
		EnPassantVictimSquare: board.NoSquare,
		RookFrom: board.NoSquare,
		RookTo:   board.NoSquare,
	}, nil
}

// MoveToIndex encodes m into its (plane, row, col) action index, where
// row/col are m's origin square. Grounded on
// original_source/src/cpp/move.cpp's Move::GetIndex: the delta is taken
// as (delta_col, delta_row), not (delta_row, delta_col).
func MoveToIndex(m board.Move) (plane, row, col int) {
	dCol := m.To.Col() - m.From.Col()
	dRow := m.To.Row() - m.From.Row()

	for i, o := range knightOffsets {
		if o[0] == dCol && o[1] == dRow {
			return NumQueenMoves + i, m.From.Row(), m.From.Col()
		}
	}

	dirCol, dirRow := sign(dCol), sign(dRow)
	direction := -1
	for i, o := range queenOffsets {
		if o[0] == dirCol && o[1] == dirRow {
			direction = i
			break
		}
	}
	if direction == -1 {
		panic("encoding: move is not a valid queen-like or knight offset")
	}
	distance := maxInt(abs(dCol), abs(dRow)) - 1
	return direction*NumQueenMovesPerDirection + distance, m.From.Row(), m.From.Col()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// MoveToFlatIndex encodes m into a single flattened index,
// plane*196 + row*14 + col.
func MoveToFlatIndex(m board.Move) int {
	plane, row, col := MoveToIndex(m)
	return plane*BoardSize*BoardSize + row*BoardSize + col
}
