// Package engine picks moves for either side of a Drop Four board using
// depth-limited minimax with alpha-beta pruning over the board's
// incremental evaluation.
//
// The search mutates one shared Board through strictly nested
// Apply/Undo pairs, so the whole tree reuses a single board instance.
// Internal nodes order their candidates by one-ply lookahead and visit
// at most four of them; the root considers every legal column and
// tracks the best and the second-best, then picks between them (or a
// random column) according to the difficulty parameters.
package engine

import (
	"math/rand"
	"time"

	"github.com/dropfour/dropfour/game"
)

// branchFactorMax caps the candidates visited at internal search nodes.
// The root is never capped.
const branchFactorMax = 4

// Engine is a sequential searcher. It is not safe for concurrent use;
// wrap it in a controller (see the play package) when sharing.
type Engine struct {
	params Params
	rng    *rand.Rand
}

func New(level int) *Engine {
	return &Engine{
		params: LevelParams(level),
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetLevel replaces the difficulty parameters. Out-of-range levels fall
// back to DefaultLevel.
func (e *Engine) SetLevel(level int) { e.params = LevelParams(level) }

func (e *Engine) Params() Params { return e.params }

// Seed makes the root randomization reproducible.
func (e *Engine) Seed(seed int64) { e.rng = rand.New(rand.NewSource(seed)) }

// ChooseMove returns a column for whichever side is to move on b. The
// board must not be game over. The board is left unchanged; the caller
// applies the move.
func (e *Engine) ChooseMove(b *game.Board) int {
	if b.ComputerTurn() {
		best, second, moves := rootMax(b, e.params.Depth)
		return e.pick(moves, best, second)
	}
	best, second, moves := rootMin(b, e.params.Depth)
	return e.pick(moves, best, second)
}

// pick implements the difficulty randomization: best with probability
// ChanceBest, second-best with ChanceSecondBest, otherwise uniform over
// the legal columns.
func (e *Engine) pick(moves []int, best, second int) int {
	r := e.rng.Float64()
	switch {
	case r < e.params.ChanceBest:
		return best
	case r < e.params.ChanceBest+e.params.ChanceSecondBest:
		return second
	default:
		return moves[e.rng.Intn(len(moves))]
	}
}

// rootMax evaluates every legal column for the maximizing side and
// returns the best column, the second-best, and the ordered legal
// moves. Second-best is the previous best at the moment of the last
// improvement, so ties keep the earlier candidate; that ordering
// quirk is part of the difficulty model's accepted behavior.
func rootMax(b *game.Board, depth int) (bestMove, secondMove int, moves []int) {
	moves = OrderMoves(b, defaultOrder[:], false)
	best := game.WorstEval - 1
	bestMove, secondMove = moves[0], moves[0]

	for _, col := range moves {
		b.Apply(col)
		v := b.Evaluation()
		if !b.IsGameOver() {
			v = searchMin(b, depth-1, best)
		}
		b.Undo()

		if v > best {
			best = v
			secondMove = bestMove
			bestMove = col
		}
	}
	return bestMove, secondMove, moves
}

func rootMin(b *game.Board, depth int) (bestMove, secondMove int, moves []int) {
	moves = OrderMoves(b, defaultOrder[:], true)
	best := game.BestEval + 1
	bestMove, secondMove = moves[0], moves[0]

	for _, col := range moves {
		b.Apply(col)
		v := b.Evaluation()
		if !b.IsGameOver() {
			v = searchMax(b, depth-1, best)
		}
		b.Undo()

		if v < best {
			best = v
			secondMove = bestMove
			bestMove = col
		}
	}
	return bestMove, secondMove, moves
}

// searchMax returns the highest evaluation the maximizer can force
// within depth further plies. beta is the fail-soft pruning bound
// inherited from the minimizing ancestor; the maximizer's own running
// best seeds the child windows, mirroring searchMin.
func searchMax(b *game.Board, depth, beta int) int {
	if depth == 0 {
		// Leaf: a full-width static sweep, no recursion.
		best := game.WorstEval
		for col := 0; col < game.Cols; col++ {
			if b.ColumnFull(col) {
				continue
			}
			b.Apply(col)
			if v := b.Evaluation(); v > best {
				best = v
			}
			b.Undo()
		}
		return best
	}

	moves := OrderMoves(b, defaultOrder[:], false)
	if len(moves) > branchFactorMax {
		moves = moves[:branchFactorMax]
	}

	best := game.WorstEval
	for _, col := range moves {
		b.Apply(col)
		v := b.Evaluation()
		if !b.IsGameOver() {
			v = searchMin(b, depth-1, best)
		}
		b.Undo()

		if v > best {
			best = v
			// The minimizing ancestor already has a line at least this
			// good for it, so this position will never be reached.
			if v >= beta {
				break
			}
		}
	}
	return best
}

// searchMin is the mirror of searchMax: it minimizes, orders ascending,
// and prunes against the maximizing ancestor's bound alpha.
func searchMin(b *game.Board, depth, alpha int) int {
	if depth == 0 {
		best := game.BestEval
		for col := 0; col < game.Cols; col++ {
			if b.ColumnFull(col) {
				continue
			}
			b.Apply(col)
			if v := b.Evaluation(); v < best {
				best = v
			}
			b.Undo()
		}
		return best
	}

	moves := OrderMoves(b, defaultOrder[:], true)
	if len(moves) > branchFactorMax {
		moves = moves[:branchFactorMax]
	}

	best := game.BestEval
	for _, col := range moves {
		b.Apply(col)
		v := b.Evaluation()
		if !b.IsGameOver() {
			v = searchMax(b, depth-1, best)
		}
		b.Undo()

		if v < best {
			best = v
			if v <= alpha {
				break
			}
		}
	}
	return best
}
