// Package tensor adapts Board positions and legal-move sets into the flat
// float32 buffers an EvaluatorPort consumes, and decodes its policy output
// back into board-relative action indices. There is no tensor library in
// the example pack this is grounded on, so buffers are plain []float32
// slices in row-major [channel/plane, row, col] order rather than a typed
// tensor — see DESIGN.md for why that's a justified stdlib-only corner.
package tensor

import (
	"github.com/jorr3/Alphazero-4-player-chess/internal/board"
	"github.com/jorr3/Alphazero-4-player-chess/internal/encoding"
)

// Size is the board edge length shared by every tensor this package
// produces.
const Size = board.Size

// Channels is the state tensor's channel count: 4 players x 6 kinds.
const Channels = 24

// Planes is the action tensor's plane count (see internal/encoding).
const Planes = encoding.NumPlanes

var turnOrder = [4]board.Color{board.Red, board.Blue, board.Yellow, board.Green}

// EncodeState returns a [Channels, Size, Size] tensor (flattened,
// row-major) for b. Channel assignment is relative to the side to move:
// the mover's own pieces occupy channels 0-5, the next player in turn
// order 6-11, and so on; the whole tensor is then spatially rotated by
// the mover's turn-order index so the mover always "sees" their pieces
// as if playing from the bottom.
func EncodeState(b *board.Board) []float32 {
	mover := b.Turn()
	flat := make([]float32, Channels*Size*Size)

	for _, c := range turnOrder {
		rel := relativeSeat(c, mover)
		for _, entry := range b.Pieces(c) {
			row, col := entry.Location.Row(), entry.Location.Col()
			plane := rel*6 + int(entry.Piece.Kind()) - 1
			flat[plane*Size*Size+row*Size+col] = 1
		}
	}

	return rotatePlanes(flat, Channels, int(mover))
}

// EncodeBatch encodes each Board independently.
func EncodeBatch(boards []*board.Board) [][]float32 {
	out := make([][]float32, len(boards))
	for i, b := range boards {
		out[i] = EncodeState(b)
	}
	return out
}

// LegalMoveMask returns a [Planes, Size, Size] tensor marking every
// (plane, row, col) reachable by a legal move from b, rotated into the
// same perspective frame as EncodeState so policy, mask, and state line
// up for the evaluator.
func LegalMoveMask(b *board.Board) []float32 {
	mover := b.Turn()
	flat := make([]float32, Planes*Size*Size)

	var moves board.MoveList
	b.LegalMoves(&moves)
	for i := 0; i < moves.Len(); i++ {
		plane, row, col := encoding.MoveToIndex(moves.Get(i))
		flat[plane*Size*Size+row*Size+col] = 1
	}

	return rotatePlanes(flat, Planes, int(mover))
}

// ParseActionSpace reshapes a flattened batch of policy distributions
// (length len(movers)*Planes*Size*Size) back into per-board [Planes,
// Size, Size] tensors in true board coordinates, applying the inverse of
// EncodeState/LegalMoveMask's perspective rotation for each board's mover.
func ParseActionSpace(flat []float32, movers []board.Color) [][]float32 {
	chunkLen := Planes * Size * Size
	if len(flat) != len(movers)*chunkLen {
		panic("tensor: flat action distribution length does not match batch size")
	}

	out := make([][]float32, len(movers))
	for i, mover := range movers {
		chunk := flat[i*chunkLen : (i+1)*chunkLen]
		out[i] = rotatePlanes(chunk, Planes, -int(mover))
	}
	return out
}

// RotateActionTensor applies the same forward perspective rotation
// EncodeState/LegalMoveMask use to a caller-built [Planes, Size, Size]
// action tensor (e.g. an MCTS visit-count policy target), so training
// targets line up with the state tensor's frame.
func RotateActionTensor(flat []float32, mover board.Color) []float32 {
	return rotatePlanes(flat, Planes, int(mover))
}

// relativeSeat returns c's turn-order distance ahead of mover: 0 for the
// mover itself, 1/2/3 for the next players in RED->BLUE->YELLOW->GREEN
// rotation.
func relativeSeat(c, mover board.Color) int {
	return (int(c) - int(mover) + 4) % 4
}

// rotatePlanes rotates every Size x Size plane within a [n, Size, Size]
// flattened tensor by k quarter-turns counter-clockwise (k may be
// negative; only k mod 4 matters).
func rotatePlanes(flat []float32, n, k int) []float32 {
	out := make([]float32, len(flat))
	planeLen := Size * Size
	for p := 0; p < n; p++ {
		src := flat[p*planeLen : (p+1)*planeLen]
		dst := out[p*planeLen : (p+1)*planeLen]
		rotateGrid(dst, src, k)
	}
	return out
}

// rotateGrid rotates the Size x Size grid src by k quarter-turns
// counter-clockwise into dst (dst[i][j] = src[j][Size-1-i] applied k
// times), matching the reference engine's torch.rot90 over the last two
// dimensions.
func rotateGrid(dst, src []float32, k int) {
	k = ((k % 4) + 4) % 4
	cur := src
	tmp := make([]float32, Size*Size)
	for t := 0; t < k; t++ {
		target := dst
		if t < k-1 {
			target = tmp
		}
		for i := 0; i < Size; i++ {
			for j := 0; j < Size; j++ {
				target[i*Size+j] = cur[j*Size+(Size-1-i)]
			}
		}
		cur = target
	}
	if k == 0 {
		copy(dst, src)
	}
}
