package mcts

import (
	"testing"

	"github.com/jorr3/Alphazero-4-player-chess/internal/board"
)

// stubEvaluator returns a uniform policy over the legal mask and a fixed
// value, exercising the S6 scenario: 20 legal actions from the starting
// position, value 0.25 on every call.
type stubEvaluator struct{}

func (stubEvaluator) Evaluate(states, legalMask [][]float32) ([][]float32, []float32, error) {
	policy := make([][]float32, len(legalMask))
	value := make([]float32, len(legalMask))
	for i, mask := range legalMask {
		count := 0
		for _, v := range mask {
			if v != 0 {
				count++
			}
		}
		row := make([]float32, len(mask))
		if count > 0 {
			share := float32(1) / float32(count)
			for j, v := range mask {
				if v != 0 {
					row[j] = share
				}
			}
		}
		policy[i] = row
		value[i] = 0.25
	}
	return policy, value, nil
}

// TestSearchStepExpandsStartingPositionRoot covers spec scenario S6: one
// search step over a root at the starting position, with a stub
// evaluator returning value 0.25, produces 20 children whose priors sum
// to 1.0 and leaves the root's visit_count at 1.
func TestSearchStepExpandsStartingPositionRoot(t *testing.T) {
	pool := board.NewPool(64)
	root := NewRoot(board.NewStartingBoard(), DefaultExplorationConstant)

	search := NewSearch(pool, stubEvaluator{})
	if err := search.Run([]*Node{root}, 1); err != nil {
		t.Fatalf("Run: %v", err)
	}

	children := root.Children()
	if len(children) != 20 {
		t.Fatalf("len(children) = %d, want 20", len(children))
	}

	var sum float64
	for _, c := range children {
		sum += float64(c.prior)
		if c.VisitCount() != 0 {
			t.Fatalf("fresh child visit_count = %d, want 0", c.VisitCount())
		}
	}
	if sum < 0.99 || sum > 1.01 {
		t.Fatalf("prior sum = %f, want ~1.0", sum)
	}

	if root.VisitCount() != 1 {
		t.Fatalf("root visit_count = %d, want 1", root.VisitCount())
	}
}

// TestChooseLeafBackpropagatesStalemateImmediately exercises the
// terminal-leaf path: a root with no legal moves and no check must
// backpropagate 0 without ever calling the evaluator.
func TestChooseLeafBackpropagatesStalemateImmediately(t *testing.T) {
	// RED's king at (0,3) is boxed in by its own pawns at (0,4), (1,3),
	// (1,4) — its only playable neighbors, since (0,2)/(1,2) are cut-out
	// and row -1 is off the board — and those pawns are themselves
	// blocked (pushes land on a RED piece or off the board, no captures
	// available). No other RED piece exists, so RED has zero legal
	// moves; none of the other kings are close enough to give check.
	const fen = "R-0,0,0,0-0,0,0,0-0,0,0,0-0,0,0,0-0-" +
		"3,rK,rP,5,gK,3/" +
		"3,rP,rP,6,3/" +
		"14/14/14/14/14/14/14/14/14/14/14/" +
		"3,bK,6,yK,3"

	b, err := board.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	root := NewRoot(b, DefaultExplorationConstant)
	leaf, ok := root.ChooseLeaf()
	if ok {
		t.Fatalf("expected an immediate terminal backprop, got a leaf to expand: %v", leaf)
	}
	if root.VisitCount() != 1 {
		t.Fatalf("root visit_count = %d, want 1", root.VisitCount())
	}
	if root.Q() != 0 {
		t.Fatalf("root Q = %f, want 0 for a stalemate", root.Q())
	}
}
