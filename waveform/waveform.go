// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"github.com/ik5/audwave/audio"
)

// Result is the reduced waveform: the ordered sample sequence plus the
// resolved options that produced it. It is immutable once computed and is
// the sole input of every output encoder.
type Result struct {
	Samples []Sample
	Options Options
}

// Compute runs the full reduction pipeline over src: resolve the output
// point count, reduce the frame stream block by block, collapse channels
// and normalize. The source is read exactly once; closing it remains the
// caller's responsibility.
//
// The returned Result echoes the options with Samples rewritten to the
// resolved count, so encoders always see the effective configuration.
func Compute(src audio.Source, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	count, err := opts.ResolveSamples(audio.DurationMS(src))
	if err != nil {
		return nil, err
	}
	opts.Samples = count

	blocks, err := Reduce(src, opts.Method, count)
	if err != nil {
		return nil, err
	}

	collapse := opts.Collapse
	if collapse == nil {
		collapse = MeanCollapse
	}

	raw := make([]float64, len(blocks))
	for i, block := range blocks {
		raw[i] = collapse(block)
	}

	return &Result{
		Samples: Normalize(raw, opts.Amplitude),
		Options: opts,
	}, nil
}
