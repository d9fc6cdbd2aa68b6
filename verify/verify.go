// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package verify checks a High-SNR decoder over the whole input range.
//
// The checks are:
//	- complementation: words of opposite sign decode into opposite values.
//	- literals: known words decode into known values.
//	- boundaries: adjacent words at exponent boundaries differ by exactly one unit.
//	- totality: every word decodes into a finite value without a panic.
//
// A check never stops at the first mismatch, all failures are collected.
package verify

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"
)

// Check names.
const (
	NameSubnormal  = "subnormal complementation"
	NameNormal     = "normal complementation"
	NameLiterals   = "literals"
	NameBoundaries = "boundaries"
	NameTotality   = "totality"
)

const (
	expShift    = 12
	expStep     = 1 << expShift
	maxExponent = 0xf
	signBit     = 0x0800
	fracMask    = 0x0fff
	// mantissa values in one exponent band.
	bandSize = signBit
)

// Decoder converts a High-SNR word into a float32.
// It must be safe for concurrent use.
type Decoder func(hsnr uint16) float32

// Failure describes a single failed comparison.
type Failure struct {
	// Word is the checked word, Other is the word it was compared with, if any.
	Word, Other uint16
	Got, Want   float32
}

func (f Failure) String() string {
	return fmt.Sprintf("0x%04x (0x%04x): got %v, want %v", f.Word, f.Other, f.Got, f.Want)
}

// Result is the outcome of one check.
type Result struct {
	Name     string
	Checked  int
	Failures []Failure
}

// OK returns true, if there were no failures.
func (r Result) OK() bool {
	return len(r.Failures) == 0
}

func (r *Result) add(word, other uint16, got, want float32) {
	r.Checked++
	if got != want {
		r.Failures = append(r.Failures, Failure{Word: word, Other: other, Got: got, Want: want})
	}
}

// Report contains results of all checks.
type Report struct {
	Results []Result
}

// OK returns true, if all checks passed.
func (r Report) OK() bool {
	return r.Failed() == 0
}

// Failed returns the total number of failures.
func (r Report) Failed() int {
	var failed int
	for _, res := range r.Results {
		failed += len(res.Failures)
	}
	return failed
}

// Checked returns the total number of comparisons.
func (r Report) Checked() int {
	var checked int
	for _, res := range r.Results {
		checked += res.Checked
	}
	return checked
}

// Run performs all checks for dec.
// Exponent bands of the normal complementation check are verified concurrently.
// The only possible error is ctx.Err().
func Run(ctx context.Context, dec Decoder) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	bands := make([]Result, maxExponent)
	g, gctx := errgroup.WithContext(ctx)
	for i := range bands {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bands[i] = NormalComplement(dec, uint16(i+1)<<expShift)
			return nil
		})
	}
	subnormal := SubnormalComplement(dec)
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	normal := Result{Name: NameNormal}
	for _, band := range bands {
		normal.Checked += band.Checked
		normal.Failures = append(normal.Failures, band.Failures...)
	}
	report := Report{Results: []Result{
		subnormal,
		normal,
		CheckLiterals(dec),
		CheckBoundaries(dec),
		Totality(dec),
	}}
	return report, ctx.Err()
}

// SubnormalComplement checks, that dec(j) == -dec(-j) for all 12-bit words j with zero exponent.
func SubnormalComplement(dec Decoder) Result {
	r := Result{Name: NameSubnormal}
	for j := 0; j < bandSize; j++ {
		candidate, opposite := uint16(j), uint16(-j&fracMask)
		r.add(candidate, opposite, try(dec, candidate), -try(dec, opposite))
	}
	return r
}

// NormalComplement checks, that dec(j|exp) == -dec(opposite) for all mantissa values j,
// where opposite has the sign bit set and the two's complement mantissa.
// For j == 0 the opposite word belongs to the previous exponent band.
// exp must be one of 0x1000, 0x2000, ..., 0xf000.
func NormalComplement(dec Decoder, exp uint16) Result {
	r := Result{Name: fmt.Sprintf("%s 0x%04x", NameNormal, exp)}
	for j := 0; j < bandSize; j++ {
		oe := exp
		if j == 0 {
			oe -= expStep
		}
		candidate := uint16(j) | exp
		opposite := uint16((-j|signBit)&fracMask) | oe
		r.add(candidate, opposite, try(dec, candidate), -try(dec, opposite))
	}
	return r
}

// CheckLiterals checks dec against Literals.
func CheckLiterals(dec Decoder) Result {
	r := Result{Name: NameLiterals}
	for _, l := range Literals {
		r.add(l.Word, l.Word, try(dec, l.Word), l.Value)
	}
	return r
}

// CheckBoundaries checks dec against Boundaries.
func CheckBoundaries(dec Decoder) Result {
	r := Result{Name: NameBoundaries}
	for _, b := range Boundaries {
		r.add(b.X, b.Y, b.apply(try(dec, b.X), try(dec, b.Y)), try(dec, b.Want))
	}
	return r
}

// Totality checks, that dec returns a finite value for every word.
func Totality(dec Decoder) Result {
	r := Result{Name: NameTotality}
	for i := 0; i <= math.MaxUint16; i++ {
		w := uint16(i)
		f := try(dec, w)
		r.Checked++
		if math.IsInf(float64(f), 0) || math.IsNaN(float64(f)) {
			r.Failures = append(r.Failures, Failure{Word: w, Other: w, Got: f})
		}
	}
	return r
}

// try calls dec, turning a panic into a NaN result.
func try(dec Decoder, w uint16) (f float32) {
	defer func() {
		if recover() != nil {
			f = float32(math.NaN())
		}
	}()
	return dec(w)
}
