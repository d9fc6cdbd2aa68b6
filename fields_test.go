// Copyright 2020 Aleksandr Demakin. All rights reserved.

package hsnr

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v Value
		f Fields
	}{
		{0x0000, Fields{}},
		{0x0001, Fields{Mant: 1}},
		{0x0800, Fields{Neg: true}},
		{0x0fff, Fields{Neg: true, Mant: 0x7ff}},
		{0xf700, Fields{Exp: 15, Mant: 0x700}},
		{0xd800, Fields{Neg: true, Exp: 13}},
		{0xffff, Fields{Neg: true, Exp: 15, Mant: 0x7ff}},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.f, test.v.Fields())
			a.Equal(test.f.Exp == 0, test.f.Subnormal())
			v, err := FromFields(test.f)
			if a.NoError(err) {
				a.Equal(test.v, v)
			}
		})
	}
}

func TestFieldsAll(t *testing.T) {
	a := assert.New(t)
	var mismatches int
	for i := 0; i <= math.MaxUint16; i++ {
		if MustFromFields(Value(i).Fields()) != Value(i) {
			mismatches++
		}
	}
	a.Zero(mismatches)
}

func TestFromFieldsErrors(t *testing.T) {
	a := assert.New(t)
	tests := []Fields{
		{Exp: 16},
		{Exp: math.MaxUint8},
		{Mant: 0x800},
		{Neg: true, Mant: math.MaxUint16},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			_, err := FromFields(test)
			a.Error(err)
			a.True(Error.Has(err))
			a.Panics(func() {
				MustFromFields(test)
			})
		})
	}
}

func TestScaled(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v Value
		n int32
		p int
	}{
		{0x0000, 0, -24},
		{0x0001, 1, -24},
		{0x07ff, 2047, -24},
		{0x0800, -2048, -24},
		{0x0fff, -1, -24},
		{0x1000, 2048, -24},
		{0x1800, -4096, -24},
		{0xe000, 2048, -11},
		{0xd800, -4096, -12},
		{0xf7ff, 4095, -10},
		{0xf801, -4095, -10},
		{0xffff, -2049, -10},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			n, p := test.v.Fields().Scaled()
			a.Equal(test.n, n)
			a.Equal(test.p, p)
		})
	}
}
