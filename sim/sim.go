// Package sim plays boards without a window, letting a director make every
// selection against a manual clock.
package sim

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/they4kman/pairs/director"
	"github.com/they4kman/pairs/game"
)

type Options struct {
	Director    string
	Seed        int64
	Games       int
	Parallelism int
	// Give up on a board after this many director steps
	MaxSteps int
}

type Result struct {
	Seed  int64
	Turns int
	Score int
}

// Run plays opts.Games boards, at most opts.Parallelism at once. Each board
// owns its clock and director, so nothing is shared between them.
func Run(ctx context.Context, config game.Config, opts Options) ([]Result, error) {
	if _, err := director.New(opts.Director, 1); err != nil {
		return nil, err
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = 1
	}

	seeds := rand.New(rand.NewSource(opts.Seed))
	results := make([]Result, opts.Games)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)

	for i := 0; i < opts.Games; i++ {
		i, gameSeed := i, seeds.Int63()
		g.Go(func() error {
			result, err := playOne(gCtx, config, opts, gameSeed)
			if err != nil {
				return fmt.Errorf("game %d (seed %d): %w", i, gameSeed, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func playOne(ctx context.Context, config game.Config, opts Options, seed int64) (Result, error) {
	config.Seed = seed
	config.SavedSnapshotsDir = ""
	config.Snapshot = nil

	player, err := director.New(opts.Director, seed)
	if err != nil {
		return Result{}, err
	}

	// per-match logging from hundreds of boards is noise
	quiet := logrus.New()
	quiet.SetLevel(logrus.WarnLevel)
	quiet.SetFormatter(logrus.StandardLogger().Formatter)

	clock := game.NewManualClock(time.Unix(0, 0))
	g, err := game.New(config,
		game.WithClock(clock),
		game.WithDirector(player),
		game.WithGameLogger(quiet.WithField("seed", seed)),
	)
	if err != nil {
		return Result{}, err
	}

	g.Post(game.StartGame{Width: config.Width, Height: config.Height})
	if err := g.Process(); err != nil {
		return Result{}, err
	}
	if err := g.Autoplay(ctx, clock, opts.MaxSteps); err != nil {
		return Result{}, err
	}

	session := g.Session()
	return Result{Seed: seed, Turns: session.Turns(), Score: session.Score()}, nil
}

// Report prints a summary of the turns taken per board
func Report(out io.Writer, results []Result) {
	if len(results) == 0 {
		fmt.Fprintln(out, "no games played")
		return
	}

	turns := make([]int, len(results))
	total := 0
	for i, result := range results {
		turns[i] = result.Turns
		total += result.Turns
	}
	sort.Ints(turns)

	fmt.Fprintf(out, "games:   %d\n", len(results))
	fmt.Fprintf(out, "turns:   min %d, median %d, max %d\n", turns[0], turns[len(turns)/2], turns[len(turns)-1])
	fmt.Fprintf(out, "average: %.2f turns per game\n", float64(total)/float64(len(results)))
}
