// Package duration parses timer durations of the form "<digits><unit>".
package duration

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

// Parse errors. ErrOverflow wraps ErrInvalidMagnitude.
var (
	ErrEmptyInput       = errors.New("empty input")
	ErrUnknownUnit      = errors.New("unknown unit")
	ErrInvalidMagnitude = errors.New("no duration")
	ErrOverflow         = fmt.Errorf("%w: out of range", ErrInvalidMagnitude)
)

// Unit is the trailing unit character of a duration.
type Unit byte

const (
	Seconds Unit = 's'
	Minutes Unit = 'm'
	Hours   Unit = 'h'
)

// Scale returns the number of seconds in one unit, or 0 for an unknown unit.
func (u Unit) Scale() uint64 {
	switch u {
	case Seconds:
		return 1
	case Minutes:
		return 60
	case Hours:
		return 3600
	default:
		return 0
	}
}

func (u Unit) String() string {
	return string(rune(u))
}

// Spec is a parsed duration. Specs returned by ParseSpec always convert to
// seconds without overflow.
type Spec struct {
	Magnitude uint64
	Unit      Unit
}

// Seconds returns the total number of seconds the spec represents.
func (s Spec) Seconds() uint64 {
	return s.Magnitude * s.Unit.Scale()
}

// String formats the spec back into its input form, e.g. "25m".
func (s Spec) String() string {
	return strconv.FormatUint(s.Magnitude, 10) + s.Unit.String()
}

// ParseSpec parses raw into a Spec. Only lowercase s, m and h are accepted,
// and the magnitude must be a plain decimal number with no sign or fraction.
func ParseSpec(raw string) (Spec, error) {
	if raw == "" {
		return Spec{}, ErrEmptyInput
	}

	unit := Unit(raw[len(raw)-1])
	scale := unit.Scale()
	if scale == 0 {
		return Spec{}, fmt.Errorf("%w: %q", ErrUnknownUnit, raw)
	}

	magnitude, err := strconv.ParseUint(raw[:len(raw)-1], 10, 64)
	if err != nil {
		return Spec{}, fmt.Errorf("%w: %q", ErrInvalidMagnitude, raw)
	}

	if hi, _ := bits.Mul64(magnitude, scale); hi != 0 {
		return Spec{}, fmt.Errorf("%w: %q", ErrOverflow, raw)
	}

	return Spec{Magnitude: magnitude, Unit: unit}, nil
}

// Parse converts raw into a whole number of seconds.
func Parse(raw string) (uint64, error) {
	spec, err := ParseSpec(raw)
	if err != nil {
		return 0, err
	}
	return spec.Seconds(), nil
}
