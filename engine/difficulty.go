package engine

// DefaultLevel is substituted for out-of-range difficulty values.
const DefaultLevel = 4

// Params are the search settings derived from a difficulty level: how
// many plies to look ahead and how the root move is picked. Whatever
// probability mass is left after best and second-best (nonzero only at
// levels 0-4) goes to a uniform-random legal column.
type Params struct {
	Depth            int
	ChanceBest       float64
	ChanceSecondBest float64
}

// LevelParams maps a difficulty level 0-9 to search parameters. Low
// levels search shallow and mostly play randomly; high levels search
// deep and almost always play the best or second-best move.
func LevelParams(level int) Params {
	if level < 0 || level > 9 {
		level = DefaultLevel
	}

	p := Params{ChanceBest: 0.1 * float64(level+1)}
	switch {
	case level <= 4:
		p.Depth = level + 1
		p.ChanceSecondBest = p.ChanceBest
	case level <= 7:
		p.Depth = 5 + 2*(level-4)
		p.ChanceSecondBest = 1 - p.ChanceBest
	default:
		p.Depth = 11 + 3*(level-7)
		p.ChanceSecondBest = 1 - p.ChanceBest
	}
	return p
}
