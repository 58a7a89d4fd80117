package board

import "time"

// MateValue is the score magnitude Eval treats as a proven forced win,
// terminating iterative deepening early.
const MateValue = 1_000_000

// EvalOptions configures Eval's iterative-deepening search. A zero
// TimeLimit means no deadline: Eval runs to MaxEvalDepth regardless of
// wall-clock time.
type EvalOptions struct {
	TimeLimit time.Duration
}

// MaxEvalDepth bounds iterative deepening.
const MaxEvalDepth = 100

// AlphaBetaPlayer is the classical, non-MCTS search backend Eval drives.
// This is peripheral to the MCTS core (SPEC_FULL.md §1) but is named
// alongside Board's other operations, so a Board method exists for it: a
// concrete implementation is a drop-in the same way the reference
// engine's chess::IAlphaBetaPlayer is.
type AlphaBetaPlayer interface {
	// MakeMove searches from b to the given depth, honoring timeLimit
	// when hasTimeLimit is true. found is false when the search couldn't
	// produce a move within budget (e.g. the deadline already passed).
	MakeMove(b *Board, timeLimit time.Duration, hasTimeLimit bool, depth int) (score int, move Move, found bool)
}

// EvalResult is Eval's outcome: the last completed depth's score and best
// move, or HasMove false if the position was already terminal or no
// depth completed in time.
type EvalResult struct {
	Score    int
	BestMove Move
	HasMove  bool
	Depth    int
}

// Eval runs iterative deepening against player from depth 1 up to
// MaxEvalDepth, stopping early on a proven mate score or when
// options.TimeLimit elapses. The deadline is checked only between depth
// iterations, never inside one, matching the reference engine's Eval.
func (b *Board) Eval(player AlphaBetaPlayer, options EvalOptions) EvalResult {
	if b.GameResult() != InProgress {
		return EvalResult{Score: -1}
	}

	start := time.Now()
	hasDeadline := options.TimeLimit > 0
	var deadline time.Time
	if hasDeadline {
		deadline = start.Add(options.TimeLimit)
	}

	var result EvalResult
	depth := 1
	for depth <= MaxEvalDepth {
		var timeLimit time.Duration
		if hasDeadline {
			timeLimit = time.Until(deadline)
		}

		score, move, ok := player.MakeMove(b, timeLimit, hasDeadline, depth)
		if !ok {
			break
		}

		result.Score = score
		result.BestMove = move
		result.HasMove = true
		result.Depth = depth

		if abs(score) == MateValue {
			break
		}
		depth++
	}

	return result
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
