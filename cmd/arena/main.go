package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dropfour/dropfour/arena"
	"github.com/dropfour/dropfour/config"
	"github.com/dropfour/dropfour/logging"
)

func main() {
	cfg := config.Load()

	levelA := flag.Int("a", 4, "Difficulty level for side A (0-9)")
	levelB := flag.Int("b", cfg.Difficulty, "Difficulty level for side B (0-9)")
	games := flag.Int("games", 20, "Number of games to play")
	workers := flag.Int("workers", 0, "Concurrent games (0 = unbounded)")
	seed := flag.Int64("seed", cfg.Seed, "Series seed (0 = time-based)")
	flag.Parse()

	log := logging.New(os.Stderr, cfg.LogLevel)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	log.Info("starting series",
		"level_a", *levelA, "level_b", *levelB,
		"games", *games, "workers", *workers, "seed", *seed)

	res, err := arena.Run(ctx, arena.Config{
		LevelA:  *levelA,
		LevelB:  *levelB,
		Games:   *games,
		Workers: *workers,
		Seed:    *seed,
		Logger:  log,
	})
	if err != nil {
		log.Error("series aborted", "err", err)
		os.Exit(1)
	}

	fmt.Printf("played %d games: A(level %d) won %d, B(level %d) won %d, %d draws\n",
		res.Games, *levelA, res.WinsA, *levelB, res.WinsB, res.Draws)
}
