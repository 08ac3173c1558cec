package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/statespace/internal/config"
	"github.com/katalvlaran/statespace/internal/logging"
	"github.com/katalvlaran/statespace/internal/puzzle"
)

// errPuzzlesFailed is returned when at least one puzzle reports an error.
var errPuzzlesFailed = errors.New("one or more puzzles failed")

// app holds what PersistentPreRunE prepares for the subcommands.
type app struct {
	out     io.Writer
	errOut  io.Writer
	catalog *puzzle.Registry

	configPath string
	inputs     string
	logLevel   string

	cfg config.Config
	log *slog.Logger
}

func newRootCmd(outW, errW io.Writer) *cobra.Command {
	a := &app{out: outW, errOut: errW, catalog: puzzle.Catalog()}

	root := &cobra.Command{
		Use:           "aocsearch",
		Short:         "Solve state-space search puzzles",
		Long:          `aocsearch runs puzzle drivers built on a generic shortest/longest path search engine.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(outW)
	root.SetErr(errW)

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&a.inputs, "inputs", "", "directory holding <id>.txt input files (overrides config)")
	flags.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the available puzzles",
			Args:  cobra.NoArgs,
			RunE: func(*cobra.Command, []string) error {
				for _, p := range a.catalog.All() {
					fmt.Fprintf(a.out, "%s  %s\n", p.ID, p.Title)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "run <puzzle-id>...",
			Short: "Solve the named puzzles",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				puzzles := make([]puzzle.Puzzle, 0, len(args))
				for _, id := range args {
					p, err := a.catalog.Get(id)
					if err != nil {
						return err
					}
					puzzles = append(puzzles, p)
				}
				return a.solve(cmd, puzzles)
			},
		},
		&cobra.Command{
			Use:   "all",
			Short: "Solve every puzzle, in parallel",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return a.solve(cmd, a.catalog.All())
			},
		},
	)

	return root
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.inputs != "" {
		cfg.Inputs = a.inputs
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	lc, err := cfg.LogConfig()
	if err != nil {
		return err
	}
	lc.Writer = a.errOut

	a.cfg = cfg
	a.log = logging.New(lc)
	a.log.Debug("config loaded", "path", a.configPath, "inputs", cfg.Inputs, "concurrency", cfg.Concurrency)

	return nil
}

// solve runs puzzles and prints their answers in order.
func (a *app) solve(cmd *cobra.Command, puzzles []puzzle.Puzzle) error {
	results, err := puzzle.RunAll(cmd.Context(), a.log, puzzles, a.cfg)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		fmt.Fprintf(a.out, "%s  %s\n", res.Puzzle.ID, res.Puzzle.Title)
		if res.Err != nil {
			failed++
			fmt.Fprintf(a.out, "  error: %v\n", res.Err)
			continue
		}
		for _, ans := range res.Answers {
			fmt.Fprintf(a.out, "  %s\n", ans)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errPuzzlesFailed, failed, len(results))
	}

	return nil
}
