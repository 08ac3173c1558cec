// Package assembunny parses and runs assembunny programs: four integer
// registers (a-d) and the instructions cpy, inc, dec, jnz, tgl and out.
//
// tgl rewrites the instruction at pc+x: one-argument instructions become inc
// (inc itself becomes dec), two-argument ones become jnz (jnz itself becomes
// cpy). Targets outside the program are ignored, and instructions left
// invalid by a toggle (such as cpy into a constant) are skipped.
//
// The machine recognises two loop idioms and executes them in one step:
//
//	inc a; dec b; jnz b -2                           a += b; b = 0
//	cpy x c; inc a; dec c; jnz c -2; dec d; jnz d -5  a += x*d; c = 0; d = 0
//
// Both are re-checked at every visit, so toggled code is never mis-optimised.
//
// LowestClock scans register a values upwards for the first one that makes a
// program emit the clock signal 0, 1, 0, 1, ...
package assembunny
