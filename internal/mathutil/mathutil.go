// Copyright 2020 Aleksandr Demakin. All rights reserved.

package mathutil

import (
	"math/big"
	"math/bits"
	"unsafe"
)

var (
	big5 = big.NewInt(5)

	// pow5Table holds 5^k for every k a High-SNR exponent can produce.
	pow5Table = func() (table [32]*big.Int) {
		for i := range table {
			table[i] = new(big.Int).Exp(big5, big.NewInt(int64(i)), nil)
		}
		return table
	}()
)

// FillHigh32 sets all bits of v at and above the 'width' position.
// For a negative number stored in the low 'width' bits, the result
// is its 32-bit two's complement form.
func FillHigh32(v uint32, width uint) uint32 {
	return v | ^uint32(0)<<width
}

// BinaryDigits returns the number of bits needed to represent 'value'.
func BinaryDigits(value uint32) int {
	return int(8*unsafe.Sizeof(uint32(0))) - bits.LeadingZeros32(value)
}

// NormShift32 returns the number of left shifts, which moves
// the highest set bit of v to the 'bit' position.
// The result is negative, if the highest bit is above 'bit'.
// v must not be zero.
func NormShift32(v uint32, bit int) int {
	return bit + 1 - BinaryDigits(v)
}

// Pow5 returns 5^pow. The returned value must not be modified.
func Pow5(pow int) *big.Int {
	if pow >= 0 && pow < len(pow5Table) {
		return pow5Table[pow]
	}
	return new(big.Int).Exp(big5, big.NewInt(int64(pow)), nil)
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}
