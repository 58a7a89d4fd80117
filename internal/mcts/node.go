// Package mcts implements AlphaZero-style Monte Carlo tree search over
// Board positions: PUCT child selection, batched leaf expansion against
// an evaluator.Port, and value backpropagation.
package mcts

import (
	"math"

	"github.com/jorr3/Alphazero-4-player-chess/internal/board"
)

// DefaultExplorationConstant is the PUCT formula's C. The reference
// engine reads C from a runtime args map with no literal default carried
// in the pack, so this value is the conventional AlphaZero choice
// (close to sqrt(2)) rather than one transcribed from original_source.
const DefaultExplorationConstant = 1.4

// ChildSeed is one decoded (move, prior) pair Expand turns into a child
// node; the policy-index decode step lives in Search, which has the
// tensor/encoding packages available to undo perspective rotation first.
type ChildSeed struct {
	Move  board.Move
	Prior float32
}

// Node is one position in a search tree: an owned Board on loan from a
// Pool, a back-edge to its parent, the move that produced it (absent for
// the root), and the PUCT bookkeeping fields.
type Node struct {
	parent       *Node
	children     []*Node
	move         board.Move
	hasMove      bool
	owned        *board.Board
	color        board.Color
	prior        float32
	visitCount   int
	valueSum     float32
	explorationC float32
}

// NewRoot creates a root node owning b directly (not pool-acquired: the
// root's Board belongs to whoever started the search and is never
// released by this package).
func NewRoot(b *board.Board, explorationC float32) *Node {
	return &Node{owned: b, color: b.Turn(), explorationC: explorationC}
}

// Board returns the position this node represents.
func (n *Node) Board() *board.Board { return n.owned }

// Move returns the move that produced this node and whether one exists
// (false for the root).
func (n *Node) Move() (board.Move, bool) { return n.move, n.hasMove }

// Children returns this node's expanded children, if any.
func (n *Node) Children() []*Node { return n.children }

// VisitCount returns how many simulations have passed through this node.
func (n *Node) VisitCount() int { return n.visitCount }

// Q returns the mean backpropagated value, or 0 if never visited.
func (n *Node) Q() float64 {
	if n.visitCount == 0 {
		return 0
	}
	return float64(n.valueSum) / float64(n.visitCount)
}

// IsExpanded reports whether Expand has already populated this node's
// children.
func (n *Node) IsExpanded() bool { return len(n.children) > 0 }

// SelectChild returns the child maximizing the PUCT score
// Q(child) + C * sqrt(log(sqrt(parent.visit_count)) / (1+child.visit_count)) * child.prior.
func (n *Node) SelectChild() *Node {
	parentTerm := math.Log(math.Sqrt(float64(n.visitCount)))

	var best *Node
	bestScore := math.Inf(-1)
	for _, c := range n.children {
		score := c.Q() + float64(n.explorationC)*math.Sqrt(parentTerm/float64(1+c.visitCount))*float64(c.prior)
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	return best
}

// ChooseLeaf descends via SelectChild until it reaches an unexpanded
// node. If that node's Board is terminal, it backpropagates a terminal
// value immediately (0 for stalemate, -1 otherwise, from the mover's
// perspective) and returns (nil, false) — no leaf to expand. Otherwise it
// returns (leaf, true).
func (n *Node) ChooseLeaf() (*Node, bool) {
	cur := n
	for cur.IsExpanded() {
		cur = cur.SelectChild()
	}

	if result := cur.owned.GameResult(); result != board.InProgress {
		value := float32(-1)
		if result == board.Stalemate {
			value = 0
		}
		cur.Backpropagate(value)
		return nil, false
	}
	return cur, true
}

// Expand attaches one child per seed: each seed's bare from/to move is
// resolved against n's own legal moves (filling in capture, promotion,
// and castling side-effects), made on a pool-acquired copy of n's Board,
// and the resulting Node records the seed's prior with visit_count 0.
// Children are stored in insertion order; a seed that resolves to no
// legal move (stale policy mass) is skipped.
func (n *Node) Expand(seeds []ChildSeed, pool *board.Pool) {
	n.children = make([]*Node, 0, len(seeds))
	for _, s := range seeds {
		resolved, ok := n.owned.ResolveMove(s.Move)
		if !ok {
			continue
		}
		child := pool.Acquire(n.owned)
		child.Make(resolved)
		n.children = append(n.children, &Node{
			parent:       n,
			move:         resolved,
			hasMove:      true,
			owned:        child,
			color:        child.Turn(),
			prior:        s.Prior,
			explorationC: n.explorationC,
		})
	}
}

// ExpandNodes applies Expand to a batch of leaves against the aligned
// batch of decoded seeds, the production interface Search uses after one
// evaluator call covers many leaves at once.
func ExpandNodes(leaves []*Node, seeds [][]ChildSeed, pool *board.Pool) {
	for i, leaf := range leaves {
		leaf.Expand(seeds[i], pool)
	}
}

// Backpropagate adds value to this node's value_sum, increments its
// visit_count, and recurses to the parent with the value negated (the
// tree alternates perspective one ply at a time; value is always
// zero-sum between movers).
func (n *Node) Backpropagate(value float32) {
	cur := n
	v := value
	for cur != nil {
		cur.valueSum += v
		cur.visitCount++
		v = -v
		cur = cur.parent
	}
}

// BackpropagateNodes runs Backpropagate for a batch of leaves against
// their aligned evaluator values.
func BackpropagateNodes(leaves []*Node, values []float32) {
	for i, leaf := range leaves {
		leaf.Backpropagate(values[i])
	}
}

// DetachFromParent clears n's back-edge, letting n serve as a fresh
// root — used by a self-play driver reusing the subtree under the move
// it actually played instead of rebuilding from scratch.
func (n *Node) DetachFromParent() { n.parent = nil }

// Release returns every node's pool-acquired Board back to pool, except
// the root's (which this package never owned). Call once a tree is
// dropped.
func (n *Node) Release(pool *board.Pool) {
	for _, c := range n.children {
		c.Release(pool)
	}
	if n.hasMove {
		pool.Release(n.owned)
	}
}
