// SPDX-License-Identifier: EPL-2.0

package waveform

// Collapser merges the per-channel amplitudes of one block into a single
// visual amplitude. Implementations must not mutate their input.
type Collapser func(ChannelAmplitude) float64

// MeanCollapse averages the channel amplitudes with equal weight. This is
// the default collapse policy.
func MeanCollapse(amps ChannelAmplitude) float64 {
	if len(amps) == 0 {
		return 0
	}

	var sum float64
	for _, a := range amps {
		sum += a
	}

	return sum / float64(len(amps))
}

// MaxCollapse keeps the loudest channel of the block.
func MaxCollapse(amps ChannelAmplitude) float64 {
	var peak float64
	for _, a := range amps {
		if a > peak {
			peak = a
		}
	}

	return peak
}
