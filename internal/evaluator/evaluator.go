// Package evaluator defines the abstract boundary between search and
// position judgment (neural or heuristic), and supplies one concrete,
// dependency-free adapter so the engine runs end to end without an
// external inference process attached.
package evaluator

import (
	"errors"
	"math"

	"github.com/jorr3/Alphazero-4-player-chess/internal/tensor"
)

// Port is the contract any evaluator — neural or heuristic — must
// satisfy. states and legalMask are batches of flattened tensors produced
// by internal/tensor (EncodeBatch / LegalMoveMask), one entry per board in
// the batch. The returned policy is a valid probability distribution over
// the masked actions per row (sums to ~1, zero where the mask is zero);
// value is in [-1, 1] from the perspective of the side to move. The port
// is single-call, not streaming; a stuck evaluator blocks the search.
type Port interface {
	Evaluate(states, legalMask [][]float32) (policy [][]float32, value []float32, err error)
}

// ErrBatchSizeMismatch is returned when states and legalMask disagree on
// batch size.
var ErrBatchSizeMismatch = errors.New("evaluator: states and legalMask batch sizes differ")

// pieceValues mirrors the teacher engine's material table, collapsed to
// the five valued kinds (kings aren't counted: the game ends on capture,
// so weighing them into a material balance double-counts terminality).
var pieceValues = [7]float32{
	0,   // unused: Kind is 1-indexed (Pawn=1) in internal/board
	100, // Pawn
	320, // Knight
	330, // Bishop
	500, // Rook
	900, // Queen
	// King (index 6) is left at zero, so it adds nothing to the material sum.
}

// materialScale controls how sharply a material imbalance saturates
// toward +-1 under tanh; tuned so a one-queen swing is already a strong
// signal without instantly pinning to the boundary.
const materialScale = 1000

// MaterialEvaluator is the SPEC_FULL reference Port adapter: a uniform
// prior over legal actions, and a value equal to tanh of the encoded
// state's material balance between the side to move's team and the
// opposing team. It never needs a Board: both the policy and value are
// read directly off the channel-relative tensor layout internal/tensor
// produces, matching the Port boundary's abstraction.
type MaterialEvaluator struct{}

// Evaluate implements Port.
func (MaterialEvaluator) Evaluate(states, legalMask [][]float32) ([][]float32, []float32, error) {
	if len(states) != len(legalMask) {
		return nil, nil, ErrBatchSizeMismatch
	}

	policy := make([][]float32, len(states))
	value := make([]float32, len(states))
	for i := range states {
		policy[i] = uniformPolicy(legalMask[i])
		value[i] = materialValue(states[i])
	}
	return policy, value, nil
}

// uniformPolicy distributes probability mass evenly across every cell
// mask marks legal, leaving illegal cells at zero.
func uniformPolicy(mask []float32) []float32 {
	out := make([]float32, len(mask))
	count := 0
	for _, v := range mask {
		if v != 0 {
			count++
		}
	}
	if count == 0 {
		return out
	}
	share := float32(1) / float32(count)
	for i, v := range mask {
		if v != 0 {
			out[i] = share
		}
	}
	return out
}

// materialValue reads a [tensor.Channels, tensor.Size, tensor.Size] state
// tensor and folds the side-to-move team's material balance into [-1,1].
// Channels are relative to the mover (see tensor.EncodeState): 0-5 is the
// mover's own pieces, 6-11 and 18-23 are the two opposing-team seats,
// 12-17 is the mover's teammate.
func materialValue(state []float32) float32 {
	planeLen := tensor.Size * tensor.Size
	seatMaterial := func(seat int) float32 {
		var sum float32
		for kindOffset := 0; kindOffset < 6; kindOffset++ {
			plane := seat*6 + kindOffset
			value := pieceValues[kindOffset+1]
			if value == 0 {
				continue
			}
			start := plane * planeLen
			for _, v := range state[start : start+planeLen] {
				sum += v * value
			}
		}
		return sum
	}

	ownTeam := seatMaterial(0) + seatMaterial(2)
	opposingTeam := seatMaterial(1) + seatMaterial(3)
	return float32(math.Tanh(float64((ownTeam - opposingTeam) / materialScale)))
}
