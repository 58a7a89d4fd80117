package evaluator

import (
	"testing"

	"github.com/jorr3/Alphazero-4-player-chess/internal/board"
	"github.com/jorr3/Alphazero-4-player-chess/internal/tensor"
)

// TestMaterialEvaluatorUniformPolicy checks that the returned policy
// places equal mass on every legal action and zero elsewhere, summing to
// ~1, covering the starting position's 20 legal moves for RED.
func TestMaterialEvaluatorUniformPolicy(t *testing.T) {
	b := board.NewStartingBoard()
	states := tensor.EncodeBatch([]*board.Board{b})
	masks := [][]float32{tensor.LegalMoveMask(b)}

	eval := MaterialEvaluator{}
	policy, value, err := eval.Evaluate(states, masks)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	var sum float32
	nonZero := 0
	for i, p := range policy[0] {
		if p != 0 {
			nonZero++
			if masks[0][i] == 0 {
				t.Fatalf("policy mass at masked-out index %d", i)
			}
		}
		sum += p
	}
	if nonZero != 20 {
		t.Fatalf("nonzero policy entries = %d, want 20", nonZero)
	}
	if sum < 0.99 || sum > 1.01 {
		t.Fatalf("policy sum = %f, want ~1", sum)
	}
	if value[0] != 0 {
		t.Fatalf("value = %f, want 0 for a materially even starting position", value[0])
	}
}

// TestMaterialEvaluatorBatchSizeMismatch checks the sentinel error path.
func TestMaterialEvaluatorBatchSizeMismatch(t *testing.T) {
	eval := MaterialEvaluator{}
	_, _, err := eval.Evaluate([][]float32{{}}, [][]float32{})
	if err != ErrBatchSizeMismatch {
		t.Fatalf("err = %v, want ErrBatchSizeMismatch", err)
	}
}
