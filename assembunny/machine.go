package assembunny

import "fmt"

// Machine executes a private copy of a Program.
type Machine struct {
	Reg Registers
	PC  int

	// MaxSteps bounds the number of executed steps; 0 means unlimited.
	MaxSteps int
	// NoPeephole disables loop-idiom recognition.
	NoPeephole bool
	// Steps counts executed steps; a recognised idiom counts as one.
	Steps int

	prog Program
}

// NewMachine returns a machine with its own copy of prog and the given registers.
func NewMachine(prog Program, reg Registers) *Machine {
	return &Machine{Reg: reg, prog: append(Program(nil), prog...)}
}

// Run executes until the program counter leaves the program, out returns
// false, or the step budget is spent (ErrStepLimit). out may be nil, in which
// case out instructions are ignored.
func (m *Machine) Run(out func(v int) bool) error {
	for m.PC >= 0 && m.PC < len(m.prog) {
		if m.MaxSteps > 0 && m.Steps >= m.MaxSteps {
			return fmt.Errorf("%w: %d steps at pc %d", ErrStepLimit, m.Steps, m.PC)
		}
		m.Steps++
		if !m.NoPeephole && m.peephole() {
			continue
		}

		in := m.prog[m.PC]
		next := m.PC + 1
		switch in.Op {
		case Cpy:
			if in.Y.IsReg() {
				m.Reg[in.Y.Reg] = in.X.value(&m.Reg)
			}
		case Inc:
			if in.X.IsReg() {
				m.Reg[in.X.Reg]++
			}
		case Dec:
			if in.X.IsReg() {
				m.Reg[in.X.Reg]--
			}
		case Jnz:
			if in.X.value(&m.Reg) != 0 {
				next = m.PC + in.Y.value(&m.Reg)
			}
		case Tgl:
			if t := m.PC + in.X.value(&m.Reg); t >= 0 && t < len(m.prog) {
				m.prog[t] = m.prog[t].toggled()
			}
		case Out:
			if out != nil && !out(in.X.value(&m.Reg)) {
				m.PC = next
				return nil
			}
		}
		m.PC = next
	}

	return nil
}

// peephole executes a recognised loop idiom at PC and reports whether it did.
func (m *Machine) peephole() bool {
	p, pc := m.prog, m.PC

	// cpy x c; inc a; dec c; jnz c -2; dec d; jnz d -5
	if pc+6 <= len(p) &&
		p[pc].Op == Cpy && p[pc].Y.IsReg() &&
		p[pc+4].Op == Dec && p[pc+4].X.IsReg() &&
		p[pc+5].Op == Jnz && p[pc+5].X == p[pc+4].X && p[pc+5].Y == (Operand{Reg: -1, Val: -5}) {
		c, d := p[pc].Y, p[pc+4].X
		if a, ok := m.addLoop(pc+1, c); ok && a != d.Reg && c != d &&
			p[pc].X != c && p[pc].X != d && p[pc].X.Reg != a {
			x := p[pc].X.value(&m.Reg)
			if x > 0 && m.Reg[d.Reg] > 0 {
				m.Reg[a] += x * m.Reg[d.Reg]
				m.Reg[c.Reg] = 0
				m.Reg[d.Reg] = 0
				m.PC += 6
				return true
			}
		}
	}

	// inc a; dec b; jnz b -2
	if pc+3 <= len(p) && p[pc+1].Op == Dec && p[pc+1].X.IsReg() {
		b := p[pc+1].X
		if a, ok := m.addLoop(pc, b); ok && m.Reg[b.Reg] > 0 {
			m.Reg[a] += m.Reg[b.Reg]
			m.Reg[b.Reg] = 0
			m.PC += 3
			return true
		}
	}

	return false
}

// addLoop reports whether "inc a; dec b; jnz b -2" starts at i for counter b,
// returning a.
func (m *Machine) addLoop(i int, b Operand) (int, bool) {
	p := m.prog
	if i+3 > len(p) || !b.IsReg() {
		return 0, false
	}
	inc, dec, jnz := p[i], p[i+1], p[i+2]
	if inc.Op != Inc || !inc.X.IsReg() || inc.X == b ||
		dec.Op != Dec || dec.X != b ||
		jnz.Op != Jnz || jnz.X != b || jnz.Y != (Operand{Reg: -1, Val: -2}) {
		return 0, false
	}

	return inc.X.Reg, true
}

// Run executes prog from reg and returns the final registers.
func Run(prog Program, reg Registers) (Registers, error) {
	m := NewMachine(prog, reg)
	if err := m.Run(nil); err != nil {
		return Registers{}, err
	}

	return m.Reg, nil
}

// IsClock reports whether prog started with a = a emits 0, 1, 0, 1, ... for
// at least length outputs within maxSteps steps (0 for unlimited).
func IsClock(prog Program, a, length, maxSteps int) bool {
	m := NewMachine(prog, Registers{a})
	m.MaxSteps = maxSteps
	n, ok := 0, true
	err := m.Run(func(v int) bool {
		if v != n%2 {
			ok = false
			return false
		}
		n++
		return n < length
	})

	return err == nil && ok && n == length
}

// LowestClock returns the smallest non-negative value of register a, at most
// limit (0 for no bound), for which IsClock holds. It returns ErrNoClock when
// every candidate up to limit fails.
func LowestClock(prog Program, length, limit, maxSteps int) (int, error) {
	for a := 0; limit == 0 || a <= limit; a++ {
		if IsClock(prog, a, length, maxSteps) {
			return a, nil
		}
	}

	return 0, fmt.Errorf("%w: no value in [0, %d]", ErrNoClock, limit)
}
