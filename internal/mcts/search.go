package mcts

import (
	"github.com/jorr3/Alphazero-4-player-chess/internal/board"
	"github.com/jorr3/Alphazero-4-player-chess/internal/encoding"
	"github.com/jorr3/Alphazero-4-player-chess/internal/evaluator"
	"github.com/jorr3/Alphazero-4-player-chess/internal/tensor"
)

// Search advances a batch of parallel root trees for a fixed number of
// simulations, each one descending every root to a leaf, evaluating the
// non-terminal leaves in one batched evaluator call, and backpropagating
// the results.
type Search struct {
	Pool      *board.Pool
	Evaluator evaluator.Port
}

// NewSearch builds a Search against pool and evaluator ev.
func NewSearch(pool *board.Pool, ev evaluator.Port) *Search {
	return &Search{Pool: pool, Evaluator: ev}
}

// Run advances every root in roots by simulations simulations.
func (s *Search) Run(roots []*Node, simulations int) error {
	for i := 0; i < simulations; i++ {
		if err := s.step(roots); err != nil {
			return err
		}
	}
	return nil
}

// step runs one simulation across every root: descend, batch-evaluate the
// non-terminal leaves, expand, backpropagate.
func (s *Search) step(roots []*Node) error {
	leaves := make([]*Node, 0, len(roots))
	for _, root := range roots {
		leaf, ok := root.ChooseLeaf()
		if ok {
			leaves = append(leaves, leaf)
		}
	}
	if len(leaves) == 0 {
		return nil
	}

	boards := make([]*board.Board, len(leaves))
	movers := make([]board.Color, len(leaves))
	for i, leaf := range leaves {
		boards[i] = leaf.Board()
		movers[i] = leaf.Board().Turn()
	}

	states := tensor.EncodeBatch(boards)
	masks := make([][]float32, len(boards))
	for i, b := range boards {
		masks[i] = tensor.LegalMoveMask(b)
	}

	policy, value, err := s.Evaluator.Evaluate(states, masks)
	if err != nil {
		return err
	}

	unrotated := tensor.ParseActionSpace(flatten(policy), movers)

	seeds := make([][]ChildSeed, len(leaves))
	for i := range leaves {
		seeds[i] = decodeSeeds(unrotated[i])
	}
	ExpandNodes(leaves, seeds, s.Pool)
	BackpropagateNodes(leaves, value)
	return nil
}

// flatten concatenates a batch of per-row policy tensors into the single
// 1-D buffer ParseActionSpace expects.
func flatten(rows [][]float32) []float32 {
	if len(rows) == 0 {
		return nil
	}
	out := make([]float32, 0, len(rows)*len(rows[0]))
	for _, row := range rows {
		out = append(out, row...)
	}
	return out
}

// decodeSeeds extracts every non-zero (plane,row,col) cell of an
// unrotated [tensor.Planes, tensor.Size, tensor.Size] action tensor and
// decodes it into a ChildSeed. A decode failure means the evaluator
// placed mass outside the encoding table, which request for a move whose
// (dcol,drow) isn't in the table makes a programmer error (spec §7), not
// a recoverable one.
func decodeSeeds(flat []float32) []ChildSeed {
	planeLen := tensor.Size * tensor.Size
	seeds := make([]ChildSeed, 0, 32)
	for idx, prob := range flat {
		if prob == 0 {
			continue
		}
		plane := idx / planeLen
		rem := idx % planeLen
		row := rem / tensor.Size
		col := rem % tensor.Size
		m, err := encoding.IndexToMove(plane, row, col)
		if err != nil {
			panic("mcts: evaluator policy mass at an undecodable index: " + err.Error())
		}
		seeds = append(seeds, ChildSeed{Move: m, Prior: prob})
	}
	return seeds
}
