// Command fourpchess-selfplay runs self-play games of 4-player team
// chess through MCTS, persisting each game's (state, policy target,
// color) training records to disk.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jorr3/Alphazero-4-player-chess/internal/board"
	"github.com/jorr3/Alphazero-4-player-chess/internal/encoding"
	"github.com/jorr3/Alphazero-4-player-chess/internal/evaluator"
	"github.com/jorr3/Alphazero-4-player-chess/internal/mcts"
	"github.com/jorr3/Alphazero-4-player-chess/internal/memory"
	"github.com/jorr3/Alphazero-4-player-chess/internal/tensor"
)

var (
	cpuprofile  = flag.String("cpuprofile", "", "write cpu profile to file")
	simulations = flag.Int("simulations", 400, "MCTS simulations per move")
	games       = flag.Int("games", 1, "number of self-play games to run")
	poolSize    = flag.Int("pool", 4096, "BoardPool preallocation size")
	maxPlies    = flag.Int("max-plies", 400, "ply cap before a game is abandoned as a draw-like cutoff")
	dbDir       = flag.String("db", "", "Badger database directory (default: platform data dir)")
)

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal().Err(err).Msg("could not create CPU profile")
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal().Err(err).Msg("could not start CPU profile")
		}
		defer pprof.StopCPUProfile()
	}

	store, err := openStore()
	if err != nil {
		log.Fatal().Err(err).Msg("opening memory store")
	}
	defer store.Close()

	pool := board.NewPool(*poolSize)
	search := mcts.NewSearch(pool, evaluator.MaterialEvaluator{})

	for i := 0; i < *games; i++ {
		runID := fmt.Sprintf("selfplay-%d-%d", time.Now().UnixNano(), i)
		entries, result := runGame(search, pool, *simulations, *maxPlies)

		if err := store.AppendGame(runID, entries); err != nil {
			log.Fatal().Err(err).Str("run_id", runID).Msg("persisting game")
		}
		log.Info().
			Str("run_id", runID).
			Int("plies", len(entries)).
			Str("result", result.String()).
			Msg("self-play game complete")
	}
}

func openStore() (*memory.Store, error) {
	if *dbDir != "" {
		return memory.OpenAt(*dbDir)
	}
	return memory.Open()
}

// runGame plays one self-play game to completion (or the ply cap),
// returning the training entries recorded at every move and the final
// game result.
func runGame(search *mcts.Search, pool *board.Pool, simulations, plyCap int) ([]memory.MemoryEntry, board.Result) {
	root := mcts.NewRoot(board.NewStartingBoard(), mcts.DefaultExplorationConstant)

	var entries []memory.MemoryEntry
	for ply := 0; ply < plyCap; ply++ {
		if result := root.Board().GameResult(); result != board.InProgress {
			return entries, result
		}

		if err := search.Run([]*mcts.Node{root}, simulations); err != nil {
			log.Fatal().Err(err).Msg("search step")
		}

		children := root.Children()
		if len(children) == 0 {
			return entries, root.Board().GameResult()
		}

		mover := root.Board().Turn()
		entries = append(entries, memory.MemoryEntry{
			State:        tensor.EncodeState(root.Board()),
			PolicyTarget: visitCountPolicy(root, mover),
			Color:        mover,
		})

		root = advance(root, children, pool)
	}
	return entries, root.Board().GameResult()
}

// advance picks the most-visited child as the played move, releases
// every sibling subtree back to the pool, and returns the chosen child
// detached as the new root — reusing its subtree instead of discarding
// the search work already done for it.
func advance(root *mcts.Node, children []*mcts.Node, pool *board.Pool) *mcts.Node {
	best := children[0]
	for _, c := range children {
		if c.VisitCount() > best.VisitCount() {
			best = c
		}
	}
	for _, c := range children {
		if c != best {
			c.Release(pool)
		}
	}
	best.DetachFromParent()
	return best
}

// visitCountPolicy builds the policy target tensor from a root's
// children's visit-count distribution, rotated into the mover's
// perspective frame so it lines up with the state tensor it's paired
// with in a MemoryEntry.
func visitCountPolicy(root *mcts.Node, mover board.Color) []float32 {
	planeLen := tensor.Size * tensor.Size
	flat := make([]float32, tensor.Planes*planeLen)

	total := 0
	for _, c := range root.Children() {
		total += c.VisitCount()
	}
	if total == 0 {
		return tensor.RotateActionTensor(flat, mover)
	}

	for _, c := range root.Children() {
		move, ok := c.Move()
		if !ok {
			continue
		}
		plane, row, col := encoding.MoveToIndex(move)
		flat[plane*planeLen+row*tensor.Size+col] = float32(c.VisitCount()) / float32(total)
	}
	return tensor.RotateActionTensor(flat, mover)
}
