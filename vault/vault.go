// Package vault navigates a 4×4 grid of rooms whose doors open depending on
// the MD5 hash of a passcode and the path taken so far.
package vault

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/katalvlaran/statespace/grid"
	"github.com/katalvlaran/statespace/search"
)

// Size is the width and height of the room grid.
const Size = 4

// ErrEmptyPasscode indicates a missing passcode.
var ErrEmptyPasscode = errors.New("vault: empty passcode")

var (
	start  = grid.Point{X: 0, Y: 0}
	target = grid.Point{X: Size - 1, Y: Size - 1}
)

// doors lists the moves in the order their hash characters appear.
var doors = [...]struct {
	step byte
	d    grid.Point
}{
	{'U', grid.Point{X: 0, Y: -1}},
	{'D', grid.Point{X: 0, Y: 1}},
	{'L', grid.Point{X: -1, Y: 0}},
	{'R', grid.Point{X: 1, Y: 0}},
}

// room is a search state. The path is part of the state because it decides
// which doors are open.
type room struct {
	pos  grid.Point
	path string
}

// openDoors returns the rooms reachable from r.
func openDoors(passcode string, r room) []search.Edge[room, int] {
	sum := md5.Sum([]byte(passcode + r.path))
	hash := hex.EncodeToString(sum[:2])

	var out []search.Edge[room, int]
	for i, door := range doors {
		if hash[i] < 'b' || hash[i] > 'f' {
			continue
		}
		next := r.pos.Add(door.d)
		if next.X < 0 || next.X >= Size || next.Y < 0 || next.Y >= Size {
			continue
		}
		out = append(out, search.Edge[room, int]{
			To:   room{pos: next, path: r.path + string(door.step)},
			Cost: 1,
		})
	}

	return out
}

func problem(passcode string) search.Problem[room, int] {
	return search.Problem[room, int]{
		Start:      room{pos: start},
		Successors: func(r room) []search.Edge[room, int] { return openDoors(passcode, r) },
		Goal:       func(r room) bool { return r.pos == target },
	}
}

// Shortest returns the shortest path string to the vault, e.g. "DDRRRD".
func Shortest(passcode string) (string, error) {
	if passcode == "" {
		return "", ErrEmptyPasscode
	}
	res, err := search.Search(problem(passcode), search.WithOrder(search.FIFO))
	if err != nil {
		return "", fmt.Errorf("vault: %w", err)
	}

	return res.Goal.path, nil
}

// Longest returns the length of the longest path that ends in the vault.
// Reaching the vault ends a path.
func Longest(passcode string) (int, error) {
	if passcode == "" {
		return 0, ErrEmptyPasscode
	}
	reach, err := search.Explore(problem(passcode), search.WithOrder(search.FIFO))
	if err != nil {
		return 0, fmt.Errorf("vault: %w", err)
	}
	if len(reach.Goals) == 0 {
		return 0, fmt.Errorf("vault: %w", search.ErrUnreachable)
	}
	longest := 0
	for _, g := range reach.Goals {
		longest = max(longest, len(g.path))
	}

	return longest, nil
}
