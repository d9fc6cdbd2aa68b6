// Copyright 2020 Aleksandr Demakin. All rights reserved.

package hsnr

// Fields is a High-SNR number split into its bit fields.
type Fields struct {
	Neg  bool   `json:"neg"`
	Exp  uint8  `json:"exp"`
	Mant uint16 `json:"mant"`
}

// FromFields packs fields into a value.
// Returns an error, if the exponent or the mantissa don't fit their fields.
func FromFields(f Fields) (Value, error) {
	if f.Exp > maxExponent {
		return 0, Error.New("exponent %d out of range [0, %d]", f.Exp, maxExponent)
	}
	if f.Mant > maxMantissa {
		return 0, Error.New("mantissa %#x out of range [0, %#x]", f.Mant, maxMantissa)
	}
	v := Value(f.Exp)<<expShift | Value(f.Mant)
	if f.Neg {
		v |= signBit
	}
	return v, nil
}

// MustFromFields is like FromFields, but panics on error.
func MustFromFields(f Fields) Value {
	v, err := FromFields(f)
	if err != nil {
		panic(err)
	}
	return v
}

// Fields returns v's sign, exponent, and mantissa.
func (v Value) Fields() Fields {
	return Fields{
		Neg:  isNeg(v),
		Exp:  uint8(exp(v)),
		Mant: uint16(mant(v)),
	}
}

// Subnormal returns true for a zero exponent, where there is no implicit high bit.
func (f Fields) Subnormal() bool {
	return f.Exp == 0
}

// Scaled returns such n and p, that the number is exactly n*2^p.
//	- for a zero exponent, n is a 12-bit signed integer made of sign and mantissa bits, p = -24.
//	- otherwise, n is a 13-bit signed integer with mantissa in bits 0-10,
//	  and 01 or 10 in bits 12-11 for a positive or a negative number, p = exponent-25.
func (f Fields) Scaled() (n int32, p int) {
	n = int32(f.Mant)
	if f.Subnormal() {
		if f.Neg {
			n -= signBit
		}
		return n, 1 - bias
	}
	if f.Neg {
		n -= 1 << expShift
	} else {
		n += signBit
	}
	return n, int(f.Exp) - bias
}
