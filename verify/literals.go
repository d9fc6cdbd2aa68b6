// Copyright 2020 Aleksandr Demakin. All rights reserved.

package verify

import (
	"fmt"
	"math"
)

// Literal is a word with its known value.
type Literal struct {
	Word  uint16
	Value float32
}

// Boundary is an identity 'decode(X) Op decode(Y) == decode(Want)'.
type Boundary struct {
	X, Y uint16
	Op   byte // '+' or '-'
	Want uint16
}

func (b Boundary) apply(x, y float32) float32 {
	if b.Op == '+' {
		return x + y
	}
	return x - y
}

func (b Boundary) String() string {
	return fmt.Sprintf("decode(0x%04x) %c decode(0x%04x) == decode(0x%04x)", b.X, b.Op, b.Y, b.Want)
}

var (
	// Literals covers both exponent regimes and signs, and the extreme values.
	Literals = []Literal{
		{0xf7ff, ldexp(4095, -10)},
		{0xf7fe, ldexp(4094, -10)},
		{0xf701, ldexp(3841, -10)},
		{0xf700, 3.75},
		{0xf600, 3.5},
		{0xf500, 3.25},
		{0xf491, 3.1416015625},
		{0xf400, 3.0},
		{0xf2e0, 2.71875},
		{0xf000, 2.0},
		{0xe600, 1.75},
		{0xe400, 1.5},
		{0xe001, ldexp(2049, -11)},
		{0xe000, 1.0},
		{0xd7ff, ldexp(4095, -12)},
		{0x2700, ldexp(30, -16)},
		{0x17ff, ldexp(4095, -24)},
		{0x17fe, ldexp(2047, -23)},
		{0x1700, ldexp(15, -16)},
		{0x1001, ldexp(2049, -24)},
		{0x1000, ldexp(1, -13)},
		{0x07ff, ldexp(2047, -24)},
		{0x0003, ldexp(3, -24)},
		{0x0002, ldexp(1, -23)},
		{0x0001, ldexp(1, -24)},
		{0x0000, 0.0},
		{0x0fff, ldexp(-1, -24)},
		{0x0ffe, ldexp(-1, -23)},
		{0x0ffd, ldexp(-3, -24)},
		{0x0801, ldexp(-2047, -24)},
		{0x0800, ldexp(-1, -13)},
		{0xd801, ldexp(-4095, -12)},
		{0xd800, -1.0},
		{0xefff, ldexp(-2049, -11)},
		{0xeffe, ldexp(-1025, -10)},
		{0xec00, -1.5},
		{0xe802, ldexp(-4094, -11)},
		{0xe801, ldexp(-4095, -11)},
		{0xe800, -2.0},
		{0xffff, ldexp(-2049, -10)},
		{0xfffe, ldexp(-1025, -9)},
		{0xfc00, -3.0},
		{0xf802, ldexp(-2047, -9)},
		{0xf801, ldexp(-4095, -10)},
		{0xf800, -4.0},
	}

	// Boundaries are exact under float arithmetic, since the operands share an exponent.
	Boundaries = []Boundary{
		{X: 0x1000, Op: '+', Y: 0x0001, Want: 0x1001},
		{X: 0x1000, Op: '-', Y: 0x07ff, Want: 0x0001},
		{X: 0x1001, Op: '-', Y: 0x1000, Want: 0x0001},
		{X: 0x1400, Op: '-', Y: 0x1000, Want: 0x0400},
		{X: 0x17ff, Op: '-', Y: 0x1000, Want: 0x07ff},
	}
)

func ldexp(frac float64, exp int) float32 {
	return float32(math.Ldexp(frac, exp))
}
