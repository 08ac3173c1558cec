package puzzle

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/statespace/assembunny"
	"github.com/katalvlaran/statespace/cubicles"
	"github.com/katalvlaran/statespace/ducts"
	"github.com/katalvlaran/statespace/elevator"
	"github.com/katalvlaran/statespace/grid"
	"github.com/katalvlaran/statespace/routes"
	"github.com/katalvlaran/statespace/storagegrid"
	"github.com/katalvlaran/statespace/vault"
	"github.com/katalvlaran/statespace/wizard"
)

// Catalog returns the registry of every bundled puzzle, ordered by ID.
func Catalog() *Registry {
	r, err := NewRegistry(
		Puzzle{ID: "2015-09", Title: "All in a Single Night", Solve: solveRoutes},
		Puzzle{ID: "2015-22", Title: "Wizard Simulator 20XX", Solve: solveWizard},
		Puzzle{ID: "2016-11", Title: "Radioisotope Thermoelectric Generators", Solve: solveElevator},
		Puzzle{ID: "2016-12", Title: "Leonardo's Monorail", Solve: solveMonorail},
		Puzzle{ID: "2016-13", Title: "A Maze of Twisty Little Cubicles", Solve: solveCubicles},
		Puzzle{ID: "2016-17", Title: "Two Steps Forward", Solve: solveVault},
		Puzzle{ID: "2016-22", Title: "Grid Computing", Solve: solveStorageGrid},
		Puzzle{ID: "2016-23", Title: "Safe Cracking", Solve: solveSafe},
		Puzzle{ID: "2016-24", Title: "Air Duct Spelunking", Solve: solveDucts},
		Puzzle{ID: "2016-25", Title: "Clock Signal", Solve: solveClock},
	)
	if err != nil {
		panic(err)
	}

	return r
}

func solveRoutes(in Input) ([]Answer, error) {
	g, err := routes.Parse(strings.NewReader(in.Text))
	if err != nil {
		return nil, err
	}
	short, err := routes.Shortest(g)
	if err != nil {
		return nil, err
	}
	long, err := routes.Longest(g)
	if err != nil {
		return nil, err
	}
	for _, c := range []struct {
		name  string
		found int
		obj   routes.Objective
	}{
		{"shortest route", short.Cost, routes.Minimize},
		{"longest route", long.Cost, routes.Maximize},
	} {
		exact, err := routes.HeldKarp(g, false, c.obj)
		if err != nil {
			return nil, err
		}
		if err = crossCheck(c.name, c.found, exact.Cost); err != nil {
			return nil, err
		}
	}
	tour, err := routes.HeldKarp(g, true, routes.Minimize)
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Part: 1, Label: "Shortest route", Value: short.Cost},
		{Part: 2, Label: "Longest route", Value: long.Cost},
		{Part: 3, Label: "Shortest round trip", Value: tour.Cost},
	}, nil
}

// crossCheck compares an answer found by search with the exact DP value.
func crossCheck(name string, found, exact int) error {
	if found != exact {
		return fmt.Errorf("%w: %s: search gave %d, dynamic programming gave %d", ErrInconsistent, name, found, exact)
	}

	return nil
}

func solveWizard(in Input) ([]Answer, error) {
	boss, err := wizard.ParseBoss(strings.NewReader(in.Text))
	if err != nil {
		return nil, err
	}
	player := wizard.Player{HP: in.Config.Wizard.HP, Mana: in.Config.Wizard.Mana}
	easy, err := wizard.MinMana(player, boss, false)
	if err != nil {
		return nil, err
	}
	hard, err := wizard.MinMana(player, boss, true)
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Part: 1, Label: "Least mana to win", Value: easy},
		{Part: 2, Label: "Least mana to win on hard", Value: hard},
	}, nil
}

func solveElevator(in Input) ([]Answer, error) {
	start, err := elevator.Parse(strings.NewReader(in.Text))
	if err != nil {
		return nil, err
	}
	first, err := elevator.MinSteps(start)
	if err != nil {
		return nil, err
	}
	more, err := start.WithPairs(in.Config.Elevator.ExtraPairs)
	if err != nil {
		return nil, err
	}
	second, err := elevator.MinSteps(more)
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Part: 1, Label: "Minimum steps", Value: first},
		{Part: 2, Label: "Minimum steps with extra pairs", Value: second},
	}, nil
}

// runRegisterA runs an assembunny program once per start register file and
// reports register a.
func runRegisterA(text string, starts ...assembunny.Registers) ([]int, error) {
	prog, err := assembunny.Parse(strings.NewReader(text))
	if err != nil {
		return nil, err
	}
	out := make([]int, len(starts))
	for i, reg := range starts {
		final, err := assembunny.Run(prog, reg)
		if err != nil {
			return nil, err
		}
		out[i] = final[0]
	}

	return out, nil
}

func solveMonorail(in Input) ([]Answer, error) {
	a, err := runRegisterA(in.Text, assembunny.Registers{}, assembunny.Registers{2: 1})
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Part: 1, Label: "Value in register 'a'", Value: a[0]},
		{Part: 2, Label: "Value in register 'a' with c=1", Value: a[1]},
	}, nil
}

func solveSafe(in Input) ([]Answer, error) {
	a, err := runRegisterA(in.Text, assembunny.Registers{7}, assembunny.Registers{12})
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Part: 1, Label: "Value for safe", Value: a[0]},
		{Part: 2, Label: "Value for safe with 12 eggs", Value: a[1]},
	}, nil
}

func solveClock(in Input) ([]Answer, error) {
	prog, err := assembunny.Parse(strings.NewReader(in.Text))
	if err != nil {
		return nil, err
	}
	cfg := in.Config.Assembunny
	a, err := assembunny.LowestClock(prog, cfg.ClockLength, cfg.ClockLimit, cfg.MaxSteps)
	if err != nil {
		return nil, err
	}

	return []Answer{{Part: 1, Label: "Lowest clock value", Value: a}}, nil
}

func solveCubicles(in Input) ([]Answer, error) {
	fav, err := strconv.Atoi(strings.TrimSpace(in.Text))
	if err != nil {
		return nil, fmt.Errorf("%w: favourite number: %v", ErrBadInput, err)
	}
	cfg := in.Config.Cubicles
	steps, err := cubicles.Steps(fav, grid.Point{X: cfg.TargetX, Y: cfg.TargetY})
	if err != nil {
		return nil, err
	}
	reach, err := cubicles.Reachable(fav, cfg.MaxSteps)
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Part: 1, Label: "Fewest steps", Value: steps},
		{Part: 2, Label: fmt.Sprintf("Locations within %d steps", cfg.MaxSteps), Value: reach},
	}, nil
}

func solveVault(in Input) ([]Answer, error) {
	passcode := strings.TrimSpace(in.Text)
	path, err := vault.Shortest(passcode)
	if err != nil {
		return nil, err
	}
	longest, err := vault.Longest(passcode)
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Part: 1, Label: "Shortest path", Value: path},
		{Part: 2, Label: "Longest path length", Value: longest},
	}, nil
}

func solveStorageGrid(in Input) ([]Answer, error) {
	c, err := storagegrid.Parse(strings.NewReader(in.Text))
	if err != nil {
		return nil, err
	}
	steps, err := c.MoveSteps()
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Part: 1, Label: "Viable pairs", Value: c.ViablePairs()},
		{Part: 2, Label: "Fewest moves", Value: steps},
	}, nil
}

func solveDucts(in Input) ([]Answer, error) {
	m, err := ducts.Parse(strings.NewReader(in.Text))
	if err != nil {
		return nil, err
	}
	all, round, err := m.Steps()
	if err != nil {
		return nil, err
	}

	return []Answer{
		{Part: 1, Label: "Fewest steps", Value: all},
		{Part: 2, Label: "Fewest steps returning to 0", Value: round},
	}, nil
}
