package arena

import (
	"context"
	"testing"
)

func TestStrongerLevelDominates(t *testing.T) {
	if testing.Short() {
		t.Skip("series takes a while")
	}

	// Level 5 searches seven plies and always plays best or second
	// best; level 0 searches one ply and plays randomly 80% of the
	// time. The stronger side should win nearly every game from either
	// seat.
	res, err := Run(context.Background(), Config{
		LevelA:  0,
		LevelB:  5,
		Games:   10,
		Workers: 2,
		Seed:    42,
	})
	if err != nil {
		t.Fatal(err)
	}

	if res.Games != 10 {
		t.Fatalf("played %d games, want 10", res.Games)
	}
	if res.WinsB <= res.WinsA {
		t.Fatalf("level 5 won %d, level 0 won %d (%d draws)", res.WinsB, res.WinsA, res.Draws)
	}
	if res.WinsB < 7 {
		t.Fatalf("level 5 won only %d of %d games", res.WinsB, res.Games)
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := Run(ctx, Config{LevelA: 0, LevelB: 0, Games: 4}); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}

func TestTalliesAddUp(t *testing.T) {
	res, err := Run(context.Background(), Config{
		LevelA: 1,
		LevelB: 1,
		Games:  6,
		Seed:   7,
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.WinsA+res.WinsB+res.Draws != res.Games || res.Games != 6 {
		t.Fatalf("inconsistent tally: %+v", res)
	}
}
