package engine

import (
	"runtime"
	"sync"

	"github.com/dropfour/dropfour/game"
)

// ParallelEngine forks the root of the search across a bounded worker
// pool: each legal root column becomes one task, and every worker
// searches its subtree on its own clone of the board with the full
// alpha-beta window. Folding the exact per-column values in candidate
// order reproduces the sequential engine's best/second-best selection
// (fail-soft pruning only ever hides values the fold would ignore), so
// the two engines are interchangeable; this one just finishes sooner on
// multi-core machines.
type ParallelEngine struct {
	Engine
	workers int
}

// NewParallel returns a parallel searcher with at most workers
// goroutines per root call; workers <= 0 means GOMAXPROCS.
func NewParallel(level, workers int) *ParallelEngine {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	e := &ParallelEngine{workers: workers}
	e.Engine = *New(level)
	return e
}

func (e *ParallelEngine) ChooseMove(b *game.Board) int {
	best, second, moves := e.rootParallel(b, b.ComputerTurn())
	return e.pick(moves, best, second)
}

func (e *ParallelEngine) rootParallel(b *game.Board, maximize bool) (bestMove, secondMove int, moves []int) {
	moves = OrderMoves(b, defaultOrder[:], !maximize)
	values := make([]int, len(moves))

	tasks := make(chan int)
	var wg sync.WaitGroup
	workers := e.workers
	if workers > len(moves) {
		workers = len(moves)
	}
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range tasks {
				local := b.Clone()
				local.Apply(moves[i])
				v := local.Evaluation()
				if !local.IsGameOver() {
					if maximize {
						v = searchMin(local, e.params.Depth-1, game.WorstEval)
					} else {
						v = searchMax(local, e.params.Depth-1, game.BestEval)
					}
				}
				values[i] = v
			}
		}()
	}
	for i := range moves {
		tasks <- i
	}
	close(tasks)
	wg.Wait()

	// Deterministic fold in candidate order, using the same update rule
	// as the sequential root.
	bestMove, secondMove = moves[0], moves[0]
	if maximize {
		best := game.WorstEval - 1
		for i, col := range moves {
			if values[i] > best {
				best = values[i]
				secondMove = bestMove
				bestMove = col
			}
		}
	} else {
		best := game.BestEval + 1
		for i, col := range moves {
			if values[i] < best {
				best = values[i]
				secondMove = bestMove
				bestMove = col
			}
		}
	}
	return bestMove, secondMove, moves
}
