// Package game implements the Drop Four board: a 6x7 connect-four grid
// with an incrementally maintained static evaluation.
//
// The evaluation is a signed sum over the 69 win lines. A line occupied
// by both sides contributes nothing; a line held by one side contributes
// 1, 3, 17 or 2000 for one to four pieces, positive for the computer and
// negative for the human. Apply and Undo adjust only the lines passing
// through the changed cell, so a move costs time proportional to
// lines-per-cell rather than a full board rescan.
package game

import "fmt"

// Cell holds the occupant of one board square.
type Cell int8

const (
	Empty    Cell = 0
	Human    Cell = -1
	Computer Cell = 1
)

func (c Cell) String() string {
	switch c {
	case Human:
		return "human"
	case Computer:
		return "computer"
	default:
		return "empty"
	}
}

// pureValue[n] is the contribution of a line holding n pieces of a
// single side and none of the other. The 4-piece value dwarfs any sum of
// partial lines, so a completed line dominates the evaluation.
var pureValue = [LineLen + 1]int{0, 1, 3, 17, 2000}

const (
	// WinThreshold is the evaluation magnitude that a completed line is
	// guaranteed to push the total past.
	WinThreshold = 1000

	// WorstEval and BestEval sit strictly outside any reachable
	// evaluation and seed the alpha-beta window.
	WorstEval = -10000
	BestEval  = 10000
)

// lineCount tracks how many pieces of each side sit on one line.
// computer+human never exceeds LineLen.
type lineCount struct {
	computer int8
	human    int8
}

func (lc lineCount) contribution() int {
	switch {
	case lc.computer > 0 && lc.human > 0:
		return 0
	case lc.computer > 0:
		return pureValue[lc.computer]
	default:
		return -pureValue[lc.human]
	}
}

// Board is the full game state: cells, per-line occupancy, the running
// evaluation, and the history needed for undo. The zero value is an
// empty board with the human to move; Board is a plain value type, so a
// copy is an independent game (the parallel searcher relies on this).
type Board struct {
	cells        [NumCells]Cell
	lines        [NumLines]lineCount
	eval         int
	history      [NumCells]int8
	moves        int
	computerTurn bool

	// Completed-line counters; win detection is structural rather than
	// a threshold test on the scalar evaluation.
	computerWon int8
	humanWon    int8
}

func NewBoard() *Board { return &Board{} }

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// SetTurn sets which side moves next. Intended for choosing the first
// mover before any pieces are placed.
func (b *Board) SetTurn(computer bool) { b.computerTurn = computer }

func (b *Board) ComputerTurn() bool { return b.computerTurn }

func (b *Board) Evaluation() int { return b.eval }

func (b *Board) MoveCount() int { return b.moves }

// LastMove reports the most recently played column.
func (b *Board) LastMove() (int, bool) {
	if b.moves == 0 {
		return 0, false
	}
	return int(b.history[b.moves-1]), true
}

// ColumnFull reports whether col has no empty cell left. The top cell of
// column c is cell index c, so this is a single array read.
func (b *Board) ColumnFull(col int) bool { return b.cells[col] != Empty }

func (b *Board) IsComputerWin() bool { return b.computerWon > 0 }

func (b *Board) IsHumanWin() bool { return b.humanWon > 0 }

func (b *Board) IsGameOver() bool {
	return b.computerWon > 0 || b.humanWon > 0 || b.moves == NumCells
}

// Snapshot returns a copy of the 42 cell values, row-major with the top
// row first.
func (b *Board) Snapshot() [NumCells]Cell { return b.cells }

// Apply drops a piece for the side to move into col and flips the turn.
// Legality is the caller's responsibility: Apply panics on a full
// column, since reaching one here means the move filter upstream is
// broken.
func (b *Board) Apply(col int) {
	sq := b.dropSquare(col)
	mover := Human
	if b.computerTurn {
		mover = Computer
	}

	b.cells[sq] = mover
	b.history[b.moves] = int8(col)
	b.moves++

	for _, li := range CellLines[sq] {
		lc := &b.lines[li]
		before := lc.contribution()
		if mover == Computer {
			lc.computer++
			if lc.computer == LineLen {
				b.computerWon++
			}
		} else {
			lc.human++
			if lc.human == LineLen {
				b.humanWon++
			}
		}
		b.eval += lc.contribution() - before
	}

	b.computerTurn = !b.computerTurn
}

// Undo reverses the most recent Apply exactly. It panics when no moves
// have been played; callers guard with MoveCount.
func (b *Board) Undo() {
	if b.moves == 0 {
		panic("dropfour: undo with no move history")
	}

	b.moves--
	col := int(b.history[b.moves])
	sq := b.topSquare(col)
	mover := b.cells[sq]
	b.cells[sq] = Empty
	b.computerTurn = !b.computerTurn

	for _, li := range CellLines[sq] {
		lc := &b.lines[li]
		before := lc.contribution()
		if mover == Computer {
			if lc.computer == LineLen {
				b.computerWon--
			}
			lc.computer--
		} else {
			if lc.human == LineLen {
				b.humanWon--
			}
			lc.human--
		}
		b.eval += lc.contribution() - before
	}
}

// dropSquare finds the lowest empty cell in col (gravity).
func (b *Board) dropSquare(col int) int {
	for sq := (Rows-1)*Cols + col; sq >= 0; sq -= Cols {
		if b.cells[sq] == Empty {
			return sq
		}
	}
	panic(fmt.Sprintf("dropfour: apply to full column %d", col))
}

// topSquare finds the highest occupied cell in col.
func (b *Board) topSquare(col int) int {
	for sq := col; sq < NumCells; sq += Cols {
		if b.cells[sq] != Empty {
			return sq
		}
	}
	panic(fmt.Sprintf("dropfour: undo on empty column %d", col))
}
