package game

// Board geometry. Row 0 is the top row; columns fill bottom-up.
const (
	Rows     = 6
	Cols     = 7
	NumCells = Rows * Cols

	// LineLen is the number of cells in a win line.
	LineLen = 4

	// NumLines is the number of distinct four-in-a-row opportunities on
	// the 6x7 grid: 24 horizontal, 21 vertical, 12 falling diagonals and
	// 12 rising diagonals.
	NumLines = 69
)

// Line is a fixed set of four cell indices that wins the game for
// whichever side occupies all of them.
type Line [LineLen]int

// Lines enumerates every win line on the board. CellLines is the inverse
// index: for each cell, the lines that pass through it (between 3 for a
// corner and 13 for the lower middle of the center columns). Both are
// computed once at startup and read-only afterwards.
var (
	Lines     []Line
	CellLines [NumCells][]int
)

func cellAt(row, col int) int { return row*Cols + col }

func addLine(cells Line) {
	li := len(Lines)
	Lines = append(Lines, cells)
	for _, sq := range cells {
		CellLines[sq] = append(CellLines[sq], li)
	}
}

func init() {
	Lines = make([]Line, 0, NumLines)

	// Horizontal.
	for row := 0; row < Rows; row++ {
		for col := 0; col+LineLen <= Cols; col++ {
			var l Line
			for k := 0; k < LineLen; k++ {
				l[k] = cellAt(row, col+k)
			}
			addLine(l)
		}
	}

	// Vertical.
	for col := 0; col < Cols; col++ {
		for row := 0; row+LineLen <= Rows; row++ {
			var l Line
			for k := 0; k < LineLen; k++ {
				l[k] = cellAt(row+k, col)
			}
			addLine(l)
		}
	}

	// Falling diagonals (down-right).
	for row := 0; row+LineLen <= Rows; row++ {
		for col := 0; col+LineLen <= Cols; col++ {
			var l Line
			for k := 0; k < LineLen; k++ {
				l[k] = cellAt(row+k, col+k)
			}
			addLine(l)
		}
	}

	// Rising diagonals (down-left).
	for row := 0; row+LineLen <= Rows; row++ {
		for col := LineLen - 1; col < Cols; col++ {
			var l Line
			for k := 0; k < LineLen; k++ {
				l[k] = cellAt(row+k, col-k)
			}
			addLine(l)
		}
	}

	if len(Lines) != NumLines {
		panic("dropfour: line enumeration produced the wrong count")
	}
}
