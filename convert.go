// Copyright 2020 Aleksandr Demakin. All rights reserved.

package hsnr

import (
	"math/big"

	mu "github.com/avdva/hsnr/internal/mathutil"

	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

// Decimal returns the exact decimal value of v.
func (v Value) Decimal() decimal.Decimal {
	n, p := v.Fields().Scaled()
	if n == 0 {
		return decimal.Zero
	}
	// n*2^p = n*5^-p * 10^p, p is always negative.
	m := new(big.Int).Mul(big.NewInt(int64(n)), mu.Pow5(mu.AbsInt(p)))
	return decimal.NewFromBigInt(m, int32(p))
}

// Fixed returns v as a fixed-point number.
// Digits beyond the fixed-point precision are lost.
func (v Value) Fixed() fixed.Fixed {
	return fixed.NewF(v.Float64())
}
