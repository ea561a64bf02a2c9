// SPDX-License-Identifier: EPL-2.0

package waveform

// Method selects how a block of frames is reduced to one amplitude.
type Method string

const (
	// Peak keeps the maximum absolute sample value of the block.
	Peak Method = "peak"
	// RMS keeps the root mean square of the block, a smoother loudness
	// estimate than Peak.
	RMS Method = "rms"
)

func (m Method) valid() bool {
	return m == Peak || m == RMS
}

// Options configures one waveform generation. The zero value is not usable;
// start from DefaultOptions.
type Options struct {
	// Method selects the block reduction, Peak or RMS.
	Method Method

	// Samples is the number of output points. Overridden when AutoWidthMS
	// is set.
	Samples int

	// AutoWidthMS, when positive, derives the sample count from the source
	// duration instead of Samples: ceil(durationMS / AutoWidthMS).
	AutoWidthMS int

	// Amplitude scales every output sample before rounding. May exceed 1;
	// there is no upper clamp.
	Amplitude float64

	// Collapse merges the per-channel amplitudes of a block into one value.
	// Nil selects MeanCollapse.
	Collapse Collapser

	// Rendering options consumed by the SVG and PNG encoders.
	Width      int
	Height     int
	Background string
	Foreground string
}

// DefaultOptions returns the package defaults: peak reduction, 100 samples,
// unit amplitude and the stock rendering style.
func DefaultOptions() Options {
	return Options{
		Method:     Peak,
		Samples:    100,
		Amplitude:  1.0,
		Width:      1800,
		Height:     280,
		Background: "#666666",
		Foreground: "#000000",
	}
}

// Validate checks the caller-controlled fields that do not depend on the
// source. Runs before any frame is read.
func (o Options) Validate() error {
	if !o.Method.valid() {
		return ErrUnknownMethod
	}

	if o.Amplitude <= 0 {
		return ErrInvalidAmplitude
	}

	return nil
}

// ResolveSamples determines the final output point count. When AutoWidthMS
// is set each point covers that many milliseconds of audio and the count is
// ceil(durationMS / AutoWidthMS); otherwise Samples is used as-is.
func (o Options) ResolveSamples(durationMS int64) (int, error) {
	count := o.Samples
	if o.AutoWidthMS > 0 {
		aw := int64(o.AutoWidthMS)
		count = int((durationMS + aw - 1) / aw)
	}

	if count < 1 {
		return 0, ErrInvalidSampleCount
	}

	return count, nil
}
