// Copyright 2020 Aleksandr Demakin. All rights reserved.

package hsnr

import (
	"encoding/binary"
	"math"
)

const wordSize = bitsInNumber / 8

// Append appends decoded values of src to dst and returns the extended slice.
func Append(dst []float32, src ...uint16) []float32 {
	dst = grow(dst, len(src))
	for _, w := range src {
		dst = append(dst, math.Float32frombits(decodeBits(Value(w))))
	}
	return dst
}

// AppendBytes decodes a sequence of 2-byte High-SNR words stored in the given byte order,
// appends the values to dst, and returns the extended slice.
// If data has an odd length, dst is returned unchanged along with an error.
func AppendBytes(dst []float32, data []byte, order binary.ByteOrder) ([]float32, error) {
	if len(data)%wordSize != 0 {
		return dst, Error.New("data length %d is not a multiple of %d", len(data), wordSize)
	}
	dst = grow(dst, len(data)/wordSize)
	for i := 0; i < len(data); i += wordSize {
		w := order.Uint16(data[i:])
		dst = append(dst, math.Float32frombits(decodeBits(Value(w))))
	}
	return dst, nil
}

func grow(s []float32, n int) []float32 {
	if cap(s)-len(s) >= n {
		return s
	}
	result := make([]float32, len(s), len(s)+n)
	copy(result, s)
	return result
}
