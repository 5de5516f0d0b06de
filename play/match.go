// Package play exposes the surface a frontend needs to run one game of
// Drop Four against the engine: apply a human move, request a computer
// move, take back moves, and read the board and outcome.
package play

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dropfour/dropfour/engine"
	"github.com/dropfour/dropfour/game"
)

var (
	// ErrIllegalMove rejects a human move into a full or out-of-range
	// column, or any move after the game is over.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameOver rejects a computer-move request on a finished game.
	ErrGameOver = errors.New("game over")

	// ErrNoHistory rejects an undo with no moves played.
	ErrNoHistory = errors.New("no moves to take back")
)

// Winner is the outcome of a finished (or running) game.
type Winner int

const (
	WinnerNone Winner = iota
	WinnerComputer
	WinnerHuman
)

func (w Winner) String() string {
	switch w {
	case WinnerComputer:
		return "computer"
	case WinnerHuman:
		return "human"
	default:
		return "none"
	}
}

// Searcher is the move-picking strategy a Match drives. Both
// engine.Engine and engine.ParallelEngine satisfy it.
type Searcher interface {
	ChooseMove(*game.Board) int
	SetLevel(int)
}

// Match owns one board and one searcher behind a mutex, so a frontend
// may call it from event handlers and background goroutines alike. Each
// Match is an independent game; create as many as needed.
type Match struct {
	mu        sync.Mutex
	board     *game.Board
	searcher  Searcher
	thinkTime time.Duration
}

// NewMatch starts an empty game with the human to move. A nil searcher
// gets a sequential engine at the default difficulty.
func NewMatch(s Searcher) *Match {
	if s == nil {
		s = engine.New(engine.DefaultLevel)
	}
	return &Match{board: game.NewBoard(), searcher: s}
}

// Reset discards the current game. Difficulty is kept; the human moves
// first again.
func (m *Match) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.board = game.NewBoard()
	m.thinkTime = 0
}

// SetDifficulty adjusts the searcher. Levels outside 0-9 select the
// engine's default level rather than failing.
func (m *Match) SetDifficulty(level int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searcher.SetLevel(level)
}

// SetHumanFirst and SetComputerFirst choose the side to move; call them
// before the first move.
func (m *Match) SetHumanFirst() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.board.SetTurn(false)
}

func (m *Match) SetComputerFirst() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.board.SetTurn(true)
}

// ApplyHumanMove validates and plays col for the side to move. The
// column is echoed back on success.
func (m *Match) ApplyHumanMove(col int) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.board.IsGameOver():
		return 0, fmt.Errorf("%w: game is over", ErrIllegalMove)
	case col < 0 || col >= game.Cols:
		return 0, fmt.Errorf("%w: column %d out of range", ErrIllegalMove, col)
	case m.board.ColumnFull(col):
		return 0, fmt.Errorf("%w: column %d is full", ErrIllegalMove, col)
	}

	m.board.Apply(col)
	return col, nil
}

// RequestComputerMove searches for whichever side is to move, applies
// the chosen column, and returns it. It also serves as a hint engine
// when it is the human side's turn.
//
// The search runs on a clone of the board so readers stay unblocked
// while the engine thinks. At most one request may be in flight at a
// time; if the position changes under a pending request, the stale
// result is discarded with ErrIllegalMove.
func (m *Match) RequestComputerMove() (int, error) {
	m.mu.Lock()
	if m.board.IsGameOver() {
		m.mu.Unlock()
		return 0, ErrGameOver
	}
	local := m.board.Clone()
	searcher := m.searcher
	m.mu.Unlock()

	start := time.Now()
	col := searcher.ChooseMove(local)
	took := time.Since(start)

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.board.MoveCount() != local.MoveCount() || m.board.IsGameOver() {
		return 0, fmt.Errorf("%w: position changed during search", ErrIllegalMove)
	}
	m.thinkTime = took
	m.board.Apply(col)
	return col, nil
}

// UndoLastMove takes back the most recent move and returns its column.
func (m *Match) UndoLastMove() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	col, ok := m.board.LastMove()
	if !ok {
		return 0, ErrNoHistory
	}
	m.board.Undo()
	return col, nil
}

// Snapshot returns the 42 cells row-major, top row first.
func (m *Match) Snapshot() [game.NumCells]game.Cell {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.board.Snapshot()
}

func (m *Match) IsGameOver() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.board.IsGameOver()
}

func (m *Match) Winner() Winner {
	m.mu.Lock()
	defer m.mu.Unlock()
	switch {
	case m.board.IsComputerWin():
		return WinnerComputer
	case m.board.IsHumanWin():
		return WinnerHuman
	default:
		return WinnerNone
	}
}

func (m *Match) MoveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.board.MoveCount()
}

func (m *Match) LastMove() (int, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.board.LastMove()
}

func (m *Match) ComputerTurn() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.board.ComputerTurn()
}

// ThinkTime reports how long the last RequestComputerMove searched.
func (m *Match) ThinkTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.thinkTime
}
