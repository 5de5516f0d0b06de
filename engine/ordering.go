package engine

import (
	"sort"

	"github.com/dropfour/dropfour/game"
)

// defaultOrder lists all columns center-first, so that ties after
// sorting still prefer the middle of the board.
var defaultOrder = [game.Cols]int{3, 2, 4, 1, 5, 0, 6}

// OrderMoves filters the full columns out of cols and sorts the rest by
// the static evaluation one ply ahead: descending when ordering for the
// maximizing side, ascending for the minimizing side. The board is
// restored before returning. The ordering doubles as the branching
// filter: internal search nodes only visit a prefix of it.
func OrderMoves(b *game.Board, cols []int, ascending bool) []int {
	legal := make([]int, 0, len(cols))
	var values [game.Cols]int

	for _, col := range cols {
		if b.ColumnFull(col) {
			continue
		}
		b.Apply(col)
		values[col] = b.Evaluation()
		b.Undo()
		legal = append(legal, col)
	}

	sort.SliceStable(legal, func(i, j int) bool {
		if ascending {
			return values[legal[i]] < values[legal[j]]
		}
		return values[legal[i]] > values[legal[j]]
	})
	return legal
}
