package play

import (
	"errors"
	"testing"

	"github.com/dropfour/dropfour/engine"
	"github.com/dropfour/dropfour/game"
)

// newTestMatch returns a match with a shallow seeded searcher.
func newTestMatch(t *testing.T) *Match {
	t.Helper()
	e := engine.New(2)
	e.Seed(1)
	return NewMatch(e)
}

func TestIllegalMoves(t *testing.T) {
	m := NewMatch(nil)

	for _, col := range []int{-1, game.Cols, 99} {
		if _, err := m.ApplyHumanMove(col); !errors.Is(err, ErrIllegalMove) {
			t.Errorf("column %d: got %v, want ErrIllegalMove", col, err)
		}
	}

	for i := 0; i < game.Rows; i++ {
		if _, err := m.ApplyHumanMove(0); err != nil {
			t.Fatalf("filling column 0: %v", err)
		}
	}
	if _, err := m.ApplyHumanMove(0); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("full column: got %v, want ErrIllegalMove", err)
	}
}

func TestUndoWithoutHistory(t *testing.T) {
	m := NewMatch(nil)
	if _, err := m.UndoLastMove(); !errors.Is(err, ErrNoHistory) {
		t.Fatalf("got %v, want ErrNoHistory", err)
	}

	if _, err := m.ApplyHumanMove(3); err != nil {
		t.Fatal(err)
	}
	col, err := m.UndoLastMove()
	if err != nil || col != 3 {
		t.Fatalf("undo returned (%d, %v), want (3, nil)", col, err)
	}
	if m.MoveCount() != 0 {
		t.Fatalf("move count %d after undo, want 0", m.MoveCount())
	}
}

func TestMoveCountAndLastMove(t *testing.T) {
	m := newTestMatch(t)

	if _, ok := m.LastMove(); ok {
		t.Fatal("LastMove reported a move on an empty board")
	}

	if _, err := m.ApplyHumanMove(2); err != nil {
		t.Fatal(err)
	}
	if col, ok := m.LastMove(); !ok || col != 2 {
		t.Fatalf("LastMove = (%d, %v), want (2, true)", col, ok)
	}

	col, err := m.RequestComputerMove()
	if err != nil {
		t.Fatal(err)
	}
	if last, ok := m.LastMove(); !ok || last != col {
		t.Fatalf("LastMove = (%d, %v) after computer played %d", last, ok, col)
	}
	if m.MoveCount() != 2 {
		t.Fatalf("move count %d, want 2", m.MoveCount())
	}
}

func TestSnapshotShape(t *testing.T) {
	m := NewMatch(nil)
	if _, err := m.ApplyHumanMove(0); err != nil {
		t.Fatal(err)
	}

	cells := m.Snapshot()
	// Row-major, top row first: the piece sits in the bottom-left cell.
	if cells[(game.Rows-1)*game.Cols] != game.Human {
		t.Fatal("piece not at the bottom of column 0 in the snapshot")
	}
	for i, c := range cells {
		if i != (game.Rows-1)*game.Cols && c != game.Empty {
			t.Fatalf("unexpected piece at cell %d", i)
		}
	}
}

func TestComputerFirst(t *testing.T) {
	m := newTestMatch(t)
	m.SetComputerFirst()

	col, err := m.RequestComputerMove()
	if err != nil {
		t.Fatal(err)
	}
	cells := m.Snapshot()
	if cells[(game.Rows-1)*game.Cols+col] != game.Computer {
		t.Fatalf("computer's opening move missing from column %d", col)
	}
	if m.ComputerTurn() {
		t.Fatal("turn did not pass to the human")
	}
	if m.ThinkTime() < 0 {
		t.Fatal("think time not recorded")
	}
}

func TestHumanWinScenario(t *testing.T) {
	m := newTestMatch(t)

	// Scripted for both sides: the human builds row 5 columns 0-2 while
	// the computer side is steered to the far columns, then column 3
	// completes the human's row.
	for _, col := range []int{0, 6, 1, 6, 2, 5, 3} {
		if _, err := m.ApplyHumanMove(col); err != nil {
			t.Fatal(err)
		}
	}
	if !m.IsGameOver() {
		t.Fatal("game over not reported after the winning move")
	}
	if m.Winner() != WinnerHuman {
		t.Fatalf("winner %v, want human", m.Winner())
	}

	// No further moves of either kind are accepted.
	if _, err := m.ApplyHumanMove(4); !errors.Is(err, ErrIllegalMove) {
		t.Errorf("post-game human move: got %v, want ErrIllegalMove", err)
	}
	if _, err := m.RequestComputerMove(); !errors.Is(err, ErrGameOver) {
		t.Errorf("post-game computer move: got %v, want ErrGameOver", err)
	}

	// Undo reopens the game.
	if _, err := m.UndoLastMove(); err != nil {
		t.Fatal(err)
	}
	if m.IsGameOver() || m.Winner() != WinnerNone {
		t.Fatal("undo did not reopen the game")
	}
}

func TestDrawScenario(t *testing.T) {
	m := NewMatch(nil)

	// Row-by-row fill with no four-in-a-row anywhere; the sides
	// alternate naturally since every move goes through ApplyHumanMove.
	seq := []int{0, 2, 1, 3, 4, 6, 5}
	for round := 0; round < game.Rows; round++ {
		for _, col := range seq {
			if _, err := m.ApplyHumanMove(col); err != nil {
				t.Fatalf("move %d in column %d: %v", m.MoveCount(), col, err)
			}
		}
	}

	if !m.IsGameOver() {
		t.Fatal("full board not reported as game over")
	}
	if m.Winner() != WinnerNone {
		t.Fatalf("winner %v on a drawn board, want none", m.Winner())
	}
}

func TestReset(t *testing.T) {
	m := newTestMatch(t)
	m.SetComputerFirst()
	if _, err := m.RequestComputerMove(); err != nil {
		t.Fatal(err)
	}

	m.Reset()
	if m.MoveCount() != 0 || m.IsGameOver() {
		t.Fatal("reset did not clear the board")
	}
	if m.ComputerTurn() {
		t.Fatal("reset should hand the first move back to the human")
	}
}

func TestSetDifficultyKeepsPlaying(t *testing.T) {
	m := newTestMatch(t)
	m.SetDifficulty(0)
	m.SetDifficulty(99) // out of range, falls back internally

	if _, err := m.ApplyHumanMove(3); err != nil {
		t.Fatal(err)
	}
	if _, err := m.RequestComputerMove(); err != nil {
		t.Fatal(err)
	}
}
