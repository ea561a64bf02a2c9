// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"math"
	"testing"
)

func TestMeanCollapse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		amps ChannelAmplitude
		want float64
	}{
		{"mono passthrough", ChannelAmplitude{0.4}, 0.4},
		{"stereo average", ChannelAmplitude{0.2, 0.6}, 0.4},
		{"eight channels", ChannelAmplitude{1, 1, 1, 1, 1, 1, 1, 1}, 1},
		{"uneven channels", ChannelAmplitude{0.1, 0.2, 0.6}, 0.3},
		{"silence", ChannelAmplitude{0, 0}, 0},
		{"empty input", ChannelAmplitude{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MeanCollapse(tt.amps)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("MeanCollapse(%v) = %f, want %f", tt.amps, got, tt.want)
			}
		})
	}
}

func TestMaxCollapse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		amps ChannelAmplitude
		want float64
	}{
		{"mono passthrough", ChannelAmplitude{0.4}, 0.4},
		{"stereo keeps loudest", ChannelAmplitude{0.2, 0.6}, 0.6},
		{"loudest first", ChannelAmplitude{0.9, 0.1, 0.5}, 0.9},
		{"silence", ChannelAmplitude{0, 0}, 0},
		{"empty input", ChannelAmplitude{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxCollapse(tt.amps); got != tt.want {
				t.Errorf("MaxCollapse(%v) = %f, want %f", tt.amps, got, tt.want)
			}
		})
	}
}

func TestCollapse_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	amps := ChannelAmplitude{0.3, 0.7}
	MeanCollapse(amps)
	MaxCollapse(amps)

	if amps[0] != 0.3 || amps[1] != 0.7 {
		t.Errorf("collapse mutated input: %v", amps)
	}
}
