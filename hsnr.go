// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package hsnr decodes High-SNR numbers into IEEE 754 binary32 values.
//
// High-SNR is a 16-bit floating-point format used by the RVP8 radar signal processor:
//   15  11         0
//   ____|___________
//   eeeesmmmmmmmmmmm
//
// When the exponent is non-zero, bits 0-10 of a 13-bit signed integer are copied
// from the mantissa, and bits 12-11 are 01 or 10 depending on the sign.
// The number is this integer multiplied by 2^(exponent-25).
// When the exponent is zero, sign and mantissa form a 12-bit signed integer,
// which is multiplied by 2^-24.
//
// Every High-SNR number has an exact binary32 representation.
package hsnr

import (
	"math"

	mu "github.com/avdva/hsnr/internal/mathutil"
)

const (
	bitsInNumber = 16
	mantBits     = 11 // without a sign bit
	expBits      = bitsInNumber - mantBits - 1
	expShift     = mantBits + 1
	bias         = 25

	signBit  = 1 << mantBits
	mantMask = 1<<mantBits - 1
	// High-SNR mantissa is a signed value.
	fracMask = mantMask | signBit
	expMask  = 1<<expBits - 1

	maxExponent = expMask
	maxMantissa = mantMask

	f32MantBits = 23
	f32Bias     = 127
	f32SignBit  = 1 << 31
	f32MantMask = 1<<f32MantBits - 1

	// mantShift aligns High-SNR mantissa bits with binary32 ones.
	mantShift = f32MantBits - mantBits
	expOffset = f32Bias - bias + mantShift
)

type number = uint16

// Value is a number in High-SNR format.
type Value number

func exp(v Value) uint32 {
	return uint32(v>>expShift) & expMask
}

func mant(v Value) uint32 {
	return uint32(v) & mantMask
}

func frac(v Value) uint32 {
	return uint32(v) & fracMask
}

func isNeg(v Value) bool {
	return v&signBit != 0
}

// Decode converts a High-SNR number into a float32.
// Every input produces a finite result.
func Decode(hsnr uint16) float32 {
	return math.Float32frombits(decodeBits(Value(hsnr)))
}

// decodeBits returns binary32 image of v.
func decodeBits(v Value) uint32 {
	if v == 0 {
		return 0
	}
	var sign uint32
	if isNeg(v) {
		sign = f32SignBit
	}
	m, e := magnitude(v)
	m <<= mantShift - 1
	shift := mu.NormShift32(m, f32MantBits)
	m <<= uint(shift)
	e -= uint32(shift)
	return sign | e<<f32MantBits | m&f32MantMask
}

// magnitude returns an unsigned mantissa of a non-zero v and
// the biased binary32 exponent for the mantissa placed at bit 0.
func magnitude(v Value) (m, e uint32) {
	ve := exp(v)
	e, m = ve+expOffset, frac(v)
	if ve == 0 {
		// there is no implicit high bit for a subnormal value.
		e++
	} else {
		m ^= 1 << mantBits
	}
	if isNeg(v) {
		m = -mu.FillHigh32(m, expShift)
	}
	return m, e
}
