// Copyright 2020 Aleksandr Demakin. All rights reserved.

package verify

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/avdva/hsnr"

	"github.com/stretchr/testify/assert"
)

func TestRun(t *testing.T) {
	a := assert.New(t)
	report, err := Run(context.Background(), hsnr.Decode)
	if !a.NoError(err) {
		return
	}
	a.True(report.OK())
	a.Zero(report.Failed())
	tests := []struct {
		name    string
		checked int
	}{
		{NameSubnormal, 0x800},
		{NameNormal, 15 * 0x800},
		{NameLiterals, 45},
		{NameBoundaries, 5},
		{NameTotality, 0x10000},
	}
	if !a.Len(report.Results, len(tests)) {
		return
	}
	var total int
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res := report.Results[i]
			a.Equal(test.name, res.Name)
			a.Equal(test.checked, res.Checked)
			a.True(res.OK(), "%v", res.Failures)
		})
		total += test.checked
	}
	a.Equal(total, report.Checked())
}

func TestChecks(t *testing.T) {
	a := assert.New(t)
	a.True(SubnormalComplement(hsnr.Decode).OK())
	for e := 1; e <= maxExponent; e++ {
		res := NormalComplement(hsnr.Decode, uint16(e)<<expShift)
		a.True(res.OK(), res.Name)
		a.Equal(bandSize, res.Checked)
	}
	a.True(CheckLiterals(hsnr.Decode).OK())
	a.True(CheckBoundaries(hsnr.Decode).OK())
	a.True(Totality(hsnr.Decode).OK())
}

func TestNormalComplementPairs(t *testing.T) {
	a := assert.New(t)
	var words []uint16
	res := NormalComplement(func(w uint16) float32 {
		words = append(words, w)
		return hsnr.Decode(w)
	}, 0x2000)
	a.True(res.OK())
	if a.Len(words, 2*bandSize) {
		// j == 0 is compared with the previous band.
		a.Equal([]uint16{0x2000, 0x1800, 0x2001, 0x2fff}, words[:4])
		a.Equal([]uint16{0x27ff, 0x2801}, words[len(words)-2:])
	}
}

func TestBrokenDecoder(t *testing.T) {
	a := assert.New(t)
	broken := func(w uint16) float32 {
		if w == 0xf700 {
			return 3.5
		}
		return hsnr.Decode(w)
	}
	report, err := Run(context.Background(), broken)
	if !a.NoError(err) {
		return
	}
	a.False(report.OK())
	a.Equal(2, report.Failed())
	failed := make(map[string][]Failure)
	for _, res := range report.Results {
		if !res.OK() {
			failed[res.Name] = res.Failures
		}
	}
	a.Equal(map[string][]Failure{
		NameNormal:   {{Word: 0xf700, Other: 0xf900, Got: 3.5, Want: 3.75}},
		NameLiterals: {{Word: 0xf700, Other: 0xf700, Got: 3.5, Want: 3.75}},
	}, failed)
}

func TestPanickingDecoder(t *testing.T) {
	a := assert.New(t)
	report, err := Run(context.Background(), func(w uint16) float32 {
		if w == 0x1234 {
			panic("boom")
		}
		return hsnr.Decode(w)
	})
	if !a.NoError(err) {
		return
	}
	a.Equal(2, report.Failed())
	res := report.Results[4]
	a.Equal(NameTotality, res.Name)
	if a.Len(res.Failures, 1) {
		a.Equal(uint16(0x1234), res.Failures[0].Word)
		a.True(math.IsNaN(float64(res.Failures[0].Got)))
	}
}

func TestNaNDecoder(t *testing.T) {
	a := assert.New(t)
	report, err := Run(context.Background(), func(uint16) float32 {
		return float32(math.NaN())
	})
	if !a.NoError(err) {
		return
	}
	a.False(report.OK())
	a.Equal(report.Checked(), report.Failed())
}

func TestInfDecoder(t *testing.T) {
	a := assert.New(t)
	res := Totality(func(w uint16) float32 {
		if w == 0xffff {
			return float32(math.Inf(-1))
		}
		return 0
	})
	a.Equal(0x10000, res.Checked)
	a.Equal([]Failure{{Word: 0xffff, Other: 0xffff, Got: float32(math.Inf(-1))}}, res.Failures)
}

func TestRunCanceled(t *testing.T) {
	a := assert.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	report, err := Run(ctx, hsnr.Decode)
	a.True(errors.Is(err, context.Canceled))
	a.Empty(report.Results)
}

func TestStrings(t *testing.T) {
	a := assert.New(t)
	a.Equal("decode(0x1000) + decode(0x0001) == decode(0x1001)", Boundaries[0].String())
	a.Equal("decode(0x17ff) - decode(0x1000) == decode(0x07ff)", Boundaries[4].String())
	f := Failure{Word: 0xf700, Other: 0xf900, Got: 3.5, Want: 3.75}
	a.Equal("0xf700 (0xf900): got 3.5, want 3.75", f.String())
}

func TestLiterals(t *testing.T) {
	a := assert.New(t)
	a.Len(Literals, 45)
	seen := make(map[uint16]bool)
	for _, l := range Literals {
		a.False(seen[l.Word], "duplicate %#x", l.Word)
		seen[l.Word] = true
		a.False(math.IsInf(float64(l.Value), 0) || math.IsNaN(float64(l.Value)))
	}
}

func BenchmarkRun(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Run(context.Background(), hsnr.Decode); err != nil {
			b.Fatal(err)
		}
	}
}
