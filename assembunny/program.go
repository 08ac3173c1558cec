package assembunny

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Registers is the register file a, b, c, d.
type Registers [4]int

// Op is an instruction opcode.
type Op uint8

// Opcodes.
const (
	Cpy Op = iota
	Inc
	Dec
	Jnz
	Tgl
	Out
)

var opNames = [...]string{"cpy", "inc", "dec", "jnz", "tgl", "out"}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", uint8(o))
}

// arity returns the number of operands o takes.
func (o Op) arity() int {
	if o == Cpy || o == Jnz {
		return 2
	}
	return 1
}

var (
	// ErrSyntax indicates a line that is not a valid instruction.
	ErrSyntax = errors.New("assembunny: syntax error")
	// ErrStepLimit indicates that a run exceeded its step budget.
	ErrStepLimit = errors.New("assembunny: step limit exceeded")
	// ErrNoClock indicates that no start value within the limit produces a clock signal.
	ErrNoClock = errors.New("assembunny: no clock signal")
)

// Operand is either a register reference or an immediate value.
type Operand struct {
	Reg int // register index, or -1 for an immediate
	Val int
}

// IsReg reports whether o names a register.
func (o Operand) IsReg() bool { return o.Reg >= 0 }

func (o Operand) value(r *Registers) int {
	if o.IsReg() {
		return r[o.Reg]
	}
	return o.Val
}

func (o Operand) String() string {
	if o.IsReg() {
		return string(rune('a' + o.Reg))
	}
	return strconv.Itoa(o.Val)
}

// Instr is one instruction. Y is unused by one-operand opcodes.
type Instr struct {
	Op   Op
	X, Y Operand
}

func (in Instr) String() string {
	if in.Op.arity() == 2 {
		return fmt.Sprintf("%s %s %s", in.Op, in.X, in.Y)
	}
	return fmt.Sprintf("%s %s", in.Op, in.X)
}

// toggled returns the instruction tgl turns in into.
func (in Instr) toggled() Instr {
	switch in.Op {
	case Inc:
		in.Op = Dec
	case Dec, Tgl, Out:
		in.Op = Inc
	case Jnz:
		in.Op = Cpy
	case Cpy:
		in.Op = Jnz
	}

	return in
}

// Program is a parsed instruction list.
type Program []Instr

// Parse reads one instruction per line. Blank lines are ignored.
func Parse(r io.Reader) (Program, error) {
	var prog Program
	sc := bufio.NewScanner(r)
	for lineNo := 1; sc.Scan(); lineNo++ {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		in, err := parseInstr(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrSyntax, lineNo, err)
		}
		prog = append(prog, in)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("assembunny: read input: %w", err)
	}

	return prog, nil
}

func parseInstr(fields []string) (Instr, error) {
	var in Instr
	found := false
	for i, name := range opNames {
		if fields[0] == name {
			in.Op, found = Op(i), true
			break
		}
	}
	if !found {
		return Instr{}, fmt.Errorf("unknown opcode %q", fields[0])
	}
	if len(fields)-1 != in.Op.arity() {
		return Instr{}, fmt.Errorf("%s takes %d operands, got %d", in.Op, in.Op.arity(), len(fields)-1)
	}

	ops := make([]Operand, len(fields)-1)
	for i, f := range fields[1:] {
		op, err := parseOperand(f)
		if err != nil {
			return Instr{}, err
		}
		ops[i] = op
	}
	in.X = ops[0]
	in.Y = Operand{Reg: -1}
	if len(ops) == 2 {
		in.Y = ops[1]
	}

	return in, nil
}

func parseOperand(s string) (Operand, error) {
	if len(s) == 1 && s[0] >= 'a' && s[0] <= 'd' {
		return Operand{Reg: int(s[0] - 'a')}, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Operand{}, fmt.Errorf("bad operand %q", s)
	}

	return Operand{Reg: -1, Val: v}, nil
}
