// Package elevator moves paired microchips and generators to the top floor of
// a four-floor facility with a two-item elevator.
//
// A microchip on a floor that holds any generator is fried unless its own
// generator is on the same floor. States are canonical: element names are
// dropped and the (chip floor, generator floor) pairs are kept sorted, so
// states that differ only by a relabelling of elements collapse into one.
package elevator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/katalvlaran/statespace/search"
)

// Floors is the number of floors in the facility.
const Floors = 4

// MaxPairs bounds the number of chip/generator pairs a State can hold.
const MaxPairs = 10

var (
	// ErrFloorCount indicates an input that does not describe exactly Floors floors.
	ErrFloorCount = errors.New("elevator: wrong number of floors")
	// ErrUnpaired indicates a chip without a generator or vice versa.
	ErrUnpaired = errors.New("elevator: unpaired item")
	// ErrTooManyPairs indicates more than MaxPairs elements.
	ErrTooManyPairs = errors.New("elevator: too many pairs")
	// ErrUnsafe indicates a start state that already fries a chip.
	ErrUnsafe = errors.New("elevator: unsafe start state")
)

// Pair holds the floors of one element's microchip and generator.
type Pair struct {
	Chip, Gen uint8
}

// State is a canonical facility configuration.
type State struct {
	Elevator uint8
	N        uint8
	Pairs    [MaxPairs]Pair
}

var (
	genRE  = regexp.MustCompile(`(\w+) generator`)
	chipRE = regexp.MustCompile(`(\w+)-compatible microchip`)
)

// Parse reads one line per floor, bottom first.
func Parse(r io.Reader) (State, error) {
	chips := make(map[string]uint8)
	gens := make(map[string]uint8)
	floor := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if floor >= Floors {
			return State{}, fmt.Errorf("%w: more than %d lines", ErrFloorCount, Floors)
		}
		for _, m := range genRE.FindAllStringSubmatch(line, -1) {
			gens[m[1]] = uint8(floor)
		}
		for _, m := range chipRE.FindAllStringSubmatch(line, -1) {
			chips[m[1]] = uint8(floor)
		}
		floor++
	}
	if err := sc.Err(); err != nil {
		return State{}, fmt.Errorf("elevator: read input: %w", err)
	}
	if floor != Floors {
		return State{}, fmt.Errorf("%w: got %d", ErrFloorCount, floor)
	}
	if len(chips) != len(gens) {
		return State{}, fmt.Errorf("%w: %d chips, %d generators", ErrUnpaired, len(chips), len(gens))
	}
	if len(chips) > MaxPairs {
		return State{}, fmt.Errorf("%w: %d > %d", ErrTooManyPairs, len(chips), MaxPairs)
	}

	var s State
	for name, cf := range chips {
		gf, ok := gens[name]
		if !ok {
			return State{}, fmt.Errorf("%w: %s", ErrUnpaired, name)
		}
		s.Pairs[s.N] = Pair{Chip: cf, Gen: gf}
		s.N++
	}

	return s.canonical(), nil
}

// WithPairs returns a copy of s with extra chip/generator pairs on the ground floor.
func (s State) WithPairs(extra int) (State, error) {
	if int(s.N)+extra > MaxPairs {
		return State{}, fmt.Errorf("%w: %d > %d", ErrTooManyPairs, int(s.N)+extra, MaxPairs)
	}
	for i := 0; i < extra; i++ {
		s.Pairs[s.N] = Pair{}
		s.N++
	}

	return s.canonical(), nil
}

func (s State) canonical() State {
	p := s.Pairs[:s.N]
	sort.Slice(p, func(i, j int) bool {
		if p[i].Chip != p[j].Chip {
			return p[i].Chip < p[j].Chip
		}
		return p[i].Gen < p[j].Gen
	})

	return s
}

// Safe reports whether no chip shares a floor with a foreign generator
// while its own generator is elsewhere.
func (s State) Safe() bool {
	var hasGen [Floors]bool
	for _, p := range s.Pairs[:s.N] {
		hasGen[p.Gen] = true
	}
	for _, p := range s.Pairs[:s.N] {
		if p.Chip != p.Gen && hasGen[p.Chip] {
			return false
		}
	}

	return true
}

// Done reports whether every item is on the top floor.
func (s State) Done() bool {
	for _, p := range s.Pairs[:s.N] {
		if p.Chip != Floors-1 || p.Gen != Floors-1 {
			return false
		}
	}

	return true
}

// onTop counts items on the top floor.
func (s State) onTop() int64 {
	var n int64
	for _, p := range s.Pairs[:s.N] {
		if p.Chip == Floors-1 {
			n++
		}
		if p.Gen == Floors-1 {
			n++
		}
	}

	return n
}

// item addresses one chip (gen == false) or generator of pair i.
type item struct {
	i   int
	gen bool
}

func (s *State) floorOf(it item) *uint8 {
	if it.gen {
		return &s.Pairs[it.i].Gen
	}
	return &s.Pairs[it.i].Chip
}

// Moves returns every safe canonical state reachable by one elevator trip
// carrying one or two items.
func (s State) Moves() []State {
	var here []item
	for i := 0; i < int(s.N); i++ {
		if s.Pairs[i].Chip == s.Elevator {
			here = append(here, item{i: i})
		}
		if s.Pairs[i].Gen == s.Elevator {
			here = append(here, item{i: i, gen: true})
		}
	}

	var out []State
	seen := make(map[State]struct{})
	for _, dir := range [...]int{1, -1} {
		to := int(s.Elevator) + dir
		if to < 0 || to >= Floors {
			continue
		}
		try := func(carry ...item) {
			next := s
			next.Elevator = uint8(to)
			for _, it := range carry {
				*next.floorOf(it) = uint8(to)
			}
			if !next.Safe() {
				return
			}
			next = next.canonical()
			if _, dup := seen[next]; dup {
				return
			}
			seen[next] = struct{}{}
			out = append(out, next)
		}
		for a := range here {
			try(here[a])
			for b := a + 1; b < len(here); b++ {
				try(here[a], here[b])
			}
		}
	}

	return out
}

// MinSteps returns the fewest elevator trips that bring every item to the
// top floor. States with more items already on top are preferred among equal
// step counts.
func MinSteps(start State) (int, error) {
	if !start.Safe() {
		return 0, ErrUnsafe
	}
	res, err := search.Search(search.Problem[State, int]{
		Start: start,
		Successors: func(s State) []search.Edge[State, int] {
			moves := s.Moves()
			edges := make([]search.Edge[State, int], len(moves))
			for i, m := range moves {
				edges[i] = search.Edge[State, int]{To: m, Cost: 1}
			}
			return edges
		},
		Goal:     State.Done,
		TieBreak: func(s State) int64 { return -s.onTop() },
	})
	if err != nil {
		return 0, fmt.Errorf("elevator: %w", err)
	}

	return res.Cost, nil
}
