// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"encoding/json"
	"io"

	"github.com/ik5/audwave/waveform"
)

// artifact is the JSON output shape: the sample sequence under "data" with
// every resolved option merged in at the top level. Field order is fixed
// for output compatibility.
type artifact struct {
	Data        []waveform.Sample `json:"data"`
	Method      waveform.Method   `json:"method"`
	Samples     int               `json:"samples"`
	Amplitude   float64           `json:"amplitude"`
	AutoWidthMS int               `json:"auto_width_ms,omitempty"`
	Width       int               `json:"width"`
	Height      int               `json:"height"`
	Background  string            `json:"background_color"`
	Foreground  string            `json:"color"`
}

// EncodeJSON serializes the waveform and its resolved options. The options
// echoed are the ones carried by the Result, after any auto-width
// recomputation of the sample count.
func EncodeJSON(w io.Writer, res *waveform.Result) error {
	opts := res.Options

	samples := res.Samples
	if samples == nil {
		samples = []waveform.Sample{}
	}

	return json.NewEncoder(w).Encode(artifact{
		Data:        samples,
		Method:      opts.Method,
		Samples:     opts.Samples,
		Amplitude:   opts.Amplitude,
		AutoWidthMS: opts.AutoWidthMS,
		Width:       opts.Width,
		Height:      opts.Height,
		Background:  opts.Background,
		Foreground:  opts.Foreground,
	})
}
