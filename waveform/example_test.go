// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"encoding/json"
	"fmt"

	"github.com/ik5/audwave/internal/audiotest"
)

func ExampleCompute() {
	// A constant half-scale signal: two channels, one second at 8 kHz.
	src := audiotest.NewConstantSource(8000, 2, 8000, 0.5)

	opts := DefaultOptions()
	opts.Samples = 4

	res, err := Compute(src, opts)
	if err != nil {
		panic(err)
	}

	fmt.Println(res.Samples)
	// Output: [0.5 0.5 0.5 0.5]
}

func ExampleCompute_autoWidth() {
	// Two seconds of audio, one point per 500 ms.
	src := audiotest.NewSilentSource(8000, 1, 16000)

	opts := DefaultOptions()
	opts.AutoWidthMS = 500

	res, err := Compute(src, opts)
	if err != nil {
		panic(err)
	}

	fmt.Println(len(res.Samples), res.Options.Samples)
	// Output: 4 4
}

func ExampleNormalize() {
	samples := Normalize([]float64{0.123, 0.456, 0.999}, 1.0)

	b, err := json.Marshal(samples)
	if err != nil {
		panic(err)
	}

	fmt.Println(string(b))
	// Output: [0.12,0.46,1]
}

func ExampleMeanCollapse() {
	fmt.Println(MeanCollapse(ChannelAmplitude{0.2, 0.6}))
	// Output: 0.4
}
