// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ik5/audwave/waveform"
)

func TestEncodeSVG_Structure(t *testing.T) {
	t.Parallel()

	res := testResult([]waveform.Sample{0.5, 1, 0.25})

	var buf bytes.Buffer
	if err := EncodeSVG(&buf, res); err != nil {
		t.Fatalf("EncodeSVG() error = %v", err)
	}

	got := buf.String()

	for _, want := range []string{
		`<svg xmlns="http://www.w3.org/2000/svg"`,
		`width="1800"`,
		`height="280"`,
		`<rect width="1800" height="280" fill="#666666"/>`,
		`<path d="M`,
		`fill="#000000"`,
		`Z"`,
		`</svg>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("EncodeSVG() output missing %q:\n%s", want, got)
		}
	}
}

func TestEncodeSVG_CustomStyle(t *testing.T) {
	t.Parallel()

	opts := waveform.DefaultOptions()
	opts.Width = 400
	opts.Height = 100
	opts.Background = "#ffffff"
	opts.Foreground = "#ff0000"

	res := &waveform.Result{
		Samples: []waveform.Sample{0.5},
		Options: opts,
	}

	var buf bytes.Buffer
	if err := EncodeSVG(&buf, res); err != nil {
		t.Fatalf("EncodeSVG() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, `width="400" height="100"`) {
		t.Errorf("EncodeSVG() missing custom dimensions:\n%s", got)
	}
	if !strings.Contains(got, `fill="#ffffff"`) || !strings.Contains(got, `fill="#ff0000"`) {
		t.Errorf("EncodeSVG() missing custom colors:\n%s", got)
	}
}

func TestEncodeSVG_EmptySamples(t *testing.T) {
	t.Parallel()

	res := testResult(nil)

	var buf bytes.Buffer
	if err := EncodeSVG(&buf, res); err != nil {
		t.Fatalf("EncodeSVG() error = %v", err)
	}

	if !strings.Contains(buf.String(), `<path d="" `) {
		t.Errorf("EncodeSVG() with no samples should emit an empty path:\n%s", buf.String())
	}
}

func TestPathData_Symmetric(t *testing.T) {
	t.Parallel()

	// One full-scale sample on a 100x100 canvas: the outline must touch
	// the top (y=0) and bottom (y=100) at the bar center x=50.
	d := pathData([]waveform.Sample{1}, 100, 100)

	want := "M50.00,0.00 L50.00,100.00 Z"
	if d != want {
		t.Errorf("pathData() = %q, want %q", d, want)
	}
}

func TestPathData_SilenceOnCenterAxis(t *testing.T) {
	t.Parallel()

	d := pathData([]waveform.Sample{0, 0}, 100, 100)

	want := "M25.00,50.00 L75.00,50.00 L75.00,50.00 L25.00,50.00 Z"
	if d != want {
		t.Errorf("pathData() = %q, want %q", d, want)
	}
}

func TestPathData_PointCount(t *testing.T) {
	t.Parallel()

	samples := make([]waveform.Sample, 10)
	d := pathData(samples, 1000, 200)

	// One M plus 2n-1 L commands: every sample contributes two mirrored
	// points.
	if got := strings.Count(d, "L"); got != 19 {
		t.Errorf("pathData() has %d L commands, want 19", got)
	}
}
