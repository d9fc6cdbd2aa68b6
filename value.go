// Copyright 2020 Aleksandr Demakin. All rights reserved.

package hsnr

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeHex
)

const (
	// JSONModeHex marshals values as raw hex words, like `"0xf700"`.
	JSONModeHex = iota
	// JSONModeFloat marshals values as floats, like `3.75`.
	JSONModeFloat
	// JSONModeFields marshals values with sign, exponent and mantissa, like `{"neg":false,"exp":15,"mant":1792}`.
	JSONModeFields
)

// Float32 returns a float32 value.
func (v Value) Float32() float32 {
	return Decode(uint16(v))
}

// Float64 returns a float64 value.
func (v Value) Float64() float64 {
	return float64(v.Float32())
}

// IsZero returns true, if v represents zero.
func (v Value) IsZero() bool {
	return v == 0
}

// Sign returns -1 if v < 0, 0 if v == 0, 1 if v > 0.
func (v Value) Sign() int {
	switch {
	case v == 0:
		return 0
	case isNeg(v):
		return -1
	default:
		return 1
	}
}

// String returns the shortest decimal representation of the value.
func (v Value) String() string {
	return strconv.FormatFloat(v.Float64(), 'g', -1, 32)
}

// GoString returns debug string representation.
func (v Value) GoString() string {
	f := v.Fields()
	return v.String() + fmt.Sprintf(" {%v, %v, %#x}", f.Neg, f.Exp, f.Mant)
}

// Format implements fmt.Formatter.
// Integer verbs print the raw word, %#v prints GoString, other verbs print the float value.
func (v Value) Format(fs fmt.State, c rune) {
	switch c {
	case 'b', 'o', 'O', 'd', 'x', 'X':
		fmt.Fprintf(fs, fmt.FormatString(fs, c), uint16(v))
	case 'v':
		if fs.Flag('#') {
			io.WriteString(fs, v.GoString())
			return
		}
		fmt.Fprintf(fs, fmt.FormatString(fs, c), v.Float32())
	case 's':
		fmt.Fprintf(fs, fmt.FormatString(fs, 'v'), v.Float32())
	default:
		fmt.Fprintf(fs, fmt.FormatString(fs, c), v.Float32())
	}
}

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.toJSON(JSONMode)
}

func (v Value) toJSON(mode int) ([]byte, error) {
	switch mode {
	case JSONModeFloat:
		return []byte(v.String()), nil
	case JSONModeFields:
		return json.Marshal(v.Fields())
	default:
		return []byte(`"0x` + fmt.Sprintf("%04x", uint16(v)) + `"`), nil
	}
}

// UnmarshalJSON unmarshals a quoted raw word, or an object with fields into a value.
// Floats are not accepted, as there is no conversion from float to High-SNR.
func (v *Value) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return Error.New("empty json")
	}
	switch data[0] {
	case '{':
		var f Fields
		if err := json.Unmarshal(data, &f); err != nil {
			return Error.Wrap(err)
		}
		value, err := FromFields(f)
		if err != nil {
			return err
		}
		*v = value
	case '"':
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return Error.Wrap(err)
		}
		value, err := FromString(s)
		if err != nil {
			return err
		}
		*v = value
	default:
		return Error.New("unexpected json value %s, a raw word string or fields object expected", data)
	}
	return nil
}

// FromString parses a raw High-SNR word, like "0xf700", "0b1111011100000000", or "63232".
func FromString(s string) (Value, error) {
	u, err := strconv.ParseUint(s, 0, bitsInNumber)
	if err != nil {
		return 0, Error.Wrap(err)
	}
	return Value(u), nil
}

// MustFromString is like FromString, but panics on error.
func MustFromString(s string) Value {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}
