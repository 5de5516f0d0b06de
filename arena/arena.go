// Package arena plays unattended series between two difficulty levels.
// It drives the engine for both sides of each board, which makes it
// both a strength benchmark and a long-running exerciser of the
// apply/undo machinery.
package arena

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dropfour/dropfour/engine"
	"github.com/dropfour/dropfour/game"
	"github.com/dropfour/dropfour/play"
)

type Config struct {
	LevelA, LevelB int
	Games          int
	// Workers bounds how many games run at once; 0 means Games.
	Workers int
	// Seed makes the whole series reproducible when nonzero.
	Seed   int64
	Logger *slog.Logger
}

type Result struct {
	WinsA, WinsB, Draws int
	Games               int
}

type gameOutcome struct {
	id     string
	winner play.Winner // relative to the board's computer/human sides
	aSide  game.Cell   // which side level A played this game
	moves  int
	took   time.Duration
}

// Run plays cfg.Games games of level A against level B, alternating
// which level moves first, and tallies wins from A's perspective.
func Run(ctx context.Context, cfg Config) (Result, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}

	var mu sync.Mutex
	res := Result{}

	for i := 0; i < cfg.Games; i++ {
		i := i
		g.Go(func() error {
			seed := cfg.Seed
			if seed != 0 {
				seed += int64(i) * 1000003
			} else {
				seed = time.Now().UnixNano() + int64(i)*1000003
			}

			// Alternate which level plays the Computer side.
			aSide := game.Computer
			if i%2 == 1 {
				aSide = game.Human
			}

			out, err := playGame(ctx, cfg.LevelA, cfg.LevelB, aSide, seed)
			if err != nil {
				return err
			}

			mu.Lock()
			res.Games++
			switch {
			case out.winner == play.WinnerNone:
				res.Draws++
			case (out.winner == play.WinnerComputer) == (aSide == game.Computer):
				res.WinsA++
			default:
				res.WinsB++
			}
			mu.Unlock()

			log.Info("game finished",
				"game", out.id,
				"winner", out.winner.String(),
				"level_a_side", out.aSide.String(),
				"moves", out.moves,
				"took", out.took,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return res, err
	}
	return res, nil
}

// playGame runs one game to completion, with level A on aSide and level
// B on the other side.
func playGame(ctx context.Context, levelA, levelB int, aSide game.Cell, seed int64) (gameOutcome, error) {
	start := time.Now()

	engA := engine.New(levelA)
	engB := engine.New(levelB)
	engA.Seed(seed)
	engB.Seed(seed + 1)

	b := game.NewBoard()
	for !b.IsGameOver() {
		if err := ctx.Err(); err != nil {
			return gameOutcome{}, err
		}

		mover := game.Human
		if b.ComputerTurn() {
			mover = game.Computer
		}
		e := engB
		if mover == aSide {
			e = engA
		}
		b.Apply(e.ChooseMove(b))
	}

	winner := play.WinnerNone
	switch {
	case b.IsComputerWin():
		winner = play.WinnerComputer
	case b.IsHumanWin():
		winner = play.WinnerHuman
	}

	return gameOutcome{
		id:     uuid.NewString(),
		winner: winner,
		aSide:  aSide,
		moves:  b.MoveCount(),
		took:   time.Since(start),
	}, nil
}
