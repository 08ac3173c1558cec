package puzzle

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/statespace/internal/config"
)

// Result is the outcome of running one puzzle.
type Result struct {
	Puzzle  Puzzle
	Answers []Answer
	Elapsed time.Duration
	Err     error
}

// Run reads the puzzle's input from cfg.Inputs and solves it. Failures are
// reported in Result.Err.
func Run(ctx context.Context, log *slog.Logger, p Puzzle, cfg config.Config) Result {
	res := Result{Puzzle: p}
	if res.Err = ctx.Err(); res.Err != nil {
		return res
	}
	log = log.With("id", p.ID)

	text, err := ReadInput(cfg.Inputs, p.ID)
	if err != nil {
		log.Warn("input unavailable", "path", InputPath(cfg.Inputs, p.ID), "error", err)
		res.Err = err
		return res
	}

	log.Debug("solving", "title", p.Title, "bytes", len(text))
	start := time.Now()
	res.Answers, res.Err = p.Solve(Input{Text: text, Config: cfg})
	res.Elapsed = time.Since(start)

	if res.Err != nil {
		log.Error("puzzle failed", "elapsed", res.Elapsed, "error", res.Err)
		return res
	}
	log.Info("puzzle solved", "answers", len(res.Answers), "elapsed", res.Elapsed)

	return res
}

// RunAll runs puzzles with at most cfg.Concurrency in flight. Results are
// returned in the order of puzzles. The returned error is non-nil only if ctx
// was cancelled.
func RunAll(ctx context.Context, log *slog.Logger, puzzles []Puzzle, cfg config.Config) ([]Result, error) {
	results := make([]Result, len(puzzles))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, cfg.Concurrency))
	for idx, p := range puzzles {
		idx, p := idx, p
		eg.Go(func() error {
			results[idx] = Run(ctx, log, p, cfg)
			return ctx.Err()
		})
	}
	if err := eg.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
