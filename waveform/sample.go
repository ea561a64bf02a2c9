// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"bytes"
	"math"
	"strconv"
)

// Sample is one normalized waveform point: a scaled amplitude rounded to
// two decimal places.
type Sample float64

// MarshalJSON emits the boundary values 0 and 1 as integer literals and
// everything else as a decimal. The output format depends on this exact
// shape; values are already rounded by Normalize before the boundary test.
func (s Sample) MarshalJSON() ([]byte, error) {
	v := float64(s)

	if v == 0 {
		return []byte("0"), nil
	}

	if v == 1 {
		return []byte("1"), nil
	}

	b := strconv.AppendFloat(nil, v, 'f', -1, 64)
	if !bytes.ContainsRune(b, '.') {
		b = append(b, ".0"...)
	}

	return b, nil
}

// Normalize scales every raw amplitude by the given factor and rounds the
// result to two decimal places, in that order. Reduction amplitudes are
// non-negative, so the output stays non-negative; amplitudes above 1 are
// not clamped.
func Normalize(raw []float64, amplitude float64) []Sample {
	out := make([]Sample, len(raw))
	for i, v := range raw {
		out[i] = Sample(math.Round(v*amplitude*100) / 100)
	}

	return out
}
