// Package puzzle registers the puzzle drivers, loads their inputs and runs
// them with logging and timing.
package puzzle

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/statespace/internal/config"
)

var (
	// ErrUnknownPuzzle is returned by Registry.Get for an unregistered ID.
	ErrUnknownPuzzle = errors.New("puzzle: unknown puzzle")
	// ErrDuplicatePuzzle is returned by NewRegistry when two puzzles share an ID.
	ErrDuplicatePuzzle = errors.New("puzzle: duplicate puzzle id")
	// ErrMissingInput is returned when a puzzle's input file cannot be read.
	ErrMissingInput = errors.New("puzzle: missing input")
	// ErrBadInput is returned when an input is readable but unusable.
	ErrBadInput = errors.New("puzzle: bad input")
	// ErrInconsistent is returned when two independent solvers disagree.
	ErrInconsistent = errors.New("puzzle: solvers disagree")
)

// Answer is one reported result line.
type Answer struct {
	// Part is 1 or 2 for the puzzle's own questions; 3 marks an extra result.
	Part  int
	Label string
	Value any
}

// String renders a as "[Part N] label: value".
func (a Answer) String() string {
	return fmt.Sprintf("[Part %d] %s: %v", a.Part, a.Label, a.Value)
}

// Input is what a puzzle solver receives.
type Input struct {
	Text   string
	Config config.Config
}

// Puzzle is one registered driver.
type Puzzle struct {
	ID    string
	Title string
	Solve func(in Input) ([]Answer, error)
}

// Registry holds puzzles in registration order.
type Registry struct {
	puzzles []Puzzle
	byID    map[string]int
}

// NewRegistry builds a registry, rejecting duplicate IDs.
func NewRegistry(puzzles ...Puzzle) (*Registry, error) {
	r := &Registry{byID: make(map[string]int, len(puzzles))}
	for _, p := range puzzles {
		if _, dup := r.byID[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicatePuzzle, p.ID)
		}
		r.byID[p.ID] = len(r.puzzles)
		r.puzzles = append(r.puzzles, p)
	}

	return r, nil
}

// Get returns the puzzle registered under id.
func (r *Registry) Get(id string) (Puzzle, error) {
	i, ok := r.byID[id]
	if !ok {
		return Puzzle{}, fmt.Errorf("%w: %s", ErrUnknownPuzzle, id)
	}

	return r.puzzles[i], nil
}

// All returns every puzzle in registration order.
func (r *Registry) All() []Puzzle {
	return append([]Puzzle(nil), r.puzzles...)
}

// InputPath returns where the input of puzzle id is expected under dir.
func InputPath(dir, id string) string {
	return filepath.Join(dir, id+".txt")
}

// ReadInput reads the input file of puzzle id from dir.
func ReadInput(dir, id string) (string, error) {
	data, err := os.ReadFile(InputPath(dir, id))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrMissingInput, id, err)
	}

	return string(data), nil
}
