// Package wizard finds the least mana a wizard must spend to win a
// turn-based duel against a boss.
//
// The player casts one spell per turn; effects (Shield, Poison, Recharge)
// tick at the start of both the player's and the boss's turns. The boss hits
// for max(1, damage-armor). In hard mode the player loses 1 hit point at the
// start of every player turn, before effects apply.
package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/statespace/search"
)

// ErrBadBoss indicates boss stats that cannot be parsed.
var ErrBadBoss = errors.New("wizard: malformed boss stats")

// Player holds the wizard's starting resources.
type Player struct {
	HP, Mana int
}

// Boss holds the opponent's stats.
type Boss struct {
	HP, Damage int
}

// spell describes one castable spell. timer, if set, points at the effect
// counter the spell starts; such a spell cannot be cast while it is running.
type spell struct {
	name  string
	cost  int
	cast  func(*duel)
	timer func(*duel) *int
}

const (
	shieldTurns   = 6
	shieldArmor   = 7
	poisonTurns   = 6
	poisonDamage  = 3
	rechargeTurns = 5
	rechargeMana  = 101
)

var spells = []spell{
	{name: "Magic Missile", cost: 53, cast: func(d *duel) { d.boss -= 4 }},
	{name: "Drain", cost: 73, cast: func(d *duel) { d.boss -= 2; d.hp += 2 }},
	{
		name: "Shield", cost: 113,
		cast:  func(d *duel) { d.shield = shieldTurns },
		timer: func(d *duel) *int { return &d.shield },
	},
	{
		name: "Poison", cost: 173,
		cast:  func(d *duel) { d.poison = poisonTurns },
		timer: func(d *duel) *int { return &d.poison },
	},
	{
		name: "Recharge", cost: 229,
		cast:  func(d *duel) { d.recharge = rechargeTurns },
		timer: func(d *duel) *int { return &d.recharge },
	},
}

// duel is the state at the start of a player turn.
type duel struct {
	hp, mana, boss           int
	shield, poison, recharge int
	won                      bool
}

var won = duel{won: true}

func (d *duel) running(sp spell) bool {
	return sp.timer != nil && *sp.timer(d) > 0
}

// tick applies running effects and returns the armor in force this turn.
func (d *duel) tick() int {
	armor := 0
	if d.shield > 0 {
		armor = shieldArmor
		d.shield--
	}
	if d.poison > 0 {
		d.boss -= poisonDamage
		d.poison--
	}
	if d.recharge > 0 {
		d.mana += rechargeMana
		d.recharge--
	}

	return armor
}

// rounds returns the outcomes of one player turn plus the boss's reply, one
// edge per castable spell. A boss killed at any point leads to the won state.
func rounds(d duel, damage int, hard bool) []search.Edge[duel, int] {
	if hard {
		if d.hp--; d.hp <= 0 {
			return nil
		}
	}
	d.tick()
	if d.boss <= 0 {
		return []search.Edge[duel, int]{{To: won, Cost: 0}}
	}

	var out []search.Edge[duel, int]
	for _, sp := range spells {
		if sp.cost > d.mana || d.running(sp) {
			continue
		}
		next := d
		next.mana -= sp.cost
		sp.cast(&next)
		if next.boss <= 0 {
			out = append(out, search.Edge[duel, int]{To: won, Cost: sp.cost})
			continue
		}
		armor := next.tick()
		if next.boss <= 0 {
			out = append(out, search.Edge[duel, int]{To: won, Cost: sp.cost})
			continue
		}
		if next.hp -= max(1, damage-armor); next.hp <= 0 {
			continue
		}
		out = append(out, search.Edge[duel, int]{To: next, Cost: sp.cost})
	}

	return out
}

// MinMana returns the least total mana that still wins the duel.
// An unwinnable duel yields search.ErrUnreachable.
func MinMana(p Player, b Boss, hard bool) (int, error) {
	res, err := search.Search(search.Problem[duel, int]{
		Start:      duel{hp: p.HP, mana: p.Mana, boss: b.HP},
		Successors: func(d duel) []search.Edge[duel, int] { return rounds(d, b.Damage, hard) },
		Goal:       func(d duel) bool { return d.won },
	})
	if err != nil {
		return 0, fmt.Errorf("wizard: %w", err)
	}

	return res.Cost, nil
}

// ParseBoss reads "Hit Points: n" and "Damage: n" lines.
func ParseBoss(r io.Reader) (Boss, error) {
	var b Boss
	var haveHP, haveDamage bool
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		key, val, ok := strings.Cut(sc.Text(), ":")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return Boss{}, fmt.Errorf("%w: %q", ErrBadBoss, sc.Text())
		}
		switch strings.TrimSpace(key) {
		case "Hit Points":
			b.HP, haveHP = n, true
		case "Damage":
			b.Damage, haveDamage = n, true
		}
	}
	if err := sc.Err(); err != nil {
		return Boss{}, fmt.Errorf("wizard: read input: %w", err)
	}
	if !haveHP || !haveDamage {
		return Boss{}, fmt.Errorf("%w: need Hit Points and Damage", ErrBadBoss)
	}

	return b, nil
}
