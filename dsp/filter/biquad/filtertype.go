package biquad

import (
	"fmt"
	"strings"
)

// FilterType selects the response computed by [Coefficients.Design].
type FilterType int

const (
	// Lowpass passes content below the cutoff.
	Lowpass FilterType = iota
	// Highpass passes content above the cutoff.
	Highpass
	// Bandpass1 is a bandpass with constant skirt gain; peak gain is Q.
	Bandpass1
	// Bandpass2 is a bandpass with constant 0 dB peak gain.
	Bandpass2
	// Notch rejects a narrow band around the center frequency.
	Notch
	// Allpass has unity magnitude and a phase transition at the center frequency.
	Allpass
	// Peak is a parametric EQ bell.
	Peak
	// Lowshelf boosts or cuts content below the corner frequency.
	Lowshelf
	// Highshelf boosts or cuts content above the corner frequency.
	Highshelf

	numFilterTypes
)

var filterTypeNames = [numFilterTypes]string{
	Lowpass:   "lowpass",
	Highpass:  "highpass",
	Bandpass1: "bandpass1",
	Bandpass2: "bandpass2",
	Notch:     "notch",
	Allpass:   "allpass",
	Peak:      "peak",
	Lowshelf:  "lowshelf",
	Highshelf: "highshelf",
}

// FilterTypes returns all defined filter types in declaration order.
func FilterTypes() []FilterType {
	types := make([]FilterType, numFilterTypes)
	for i := range types {
		types[i] = FilterType(i)
	}
	return types
}

// Valid reports whether t is one of the defined filter types.
func (t FilterType) Valid() bool {
	return t >= 0 && t < numFilterTypes
}

func (t FilterType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("FilterType(%d)", int(t))
	}
	return filterTypeNames[t]
}

// ParseFilterType resolves a case-insensitive filter name as returned by
// [FilterType.String].
func ParseFilterType(name string) (FilterType, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range filterTypeNames {
		if n == name {
			return FilterType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFilterType, name)
}
