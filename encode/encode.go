// SPDX-License-Identifier: EPL-2.0

package encode

import (
	"io"

	"github.com/ik5/audwave/waveform"
)

// Kind names an output artifact format.
type Kind string

const (
	JSON Kind = "json"
	SVG  Kind = "svg"
	PNG  Kind = "png"
)

// Ext is the file extension of artifacts of this kind, dot included.
func (k Kind) Ext() string {
	return "." + string(k)
}

// Valid reports whether k names one of the supported output kinds.
func (k Kind) Valid() bool {
	switch k {
	case JSON, SVG, PNG:
		return true
	}
	return false
}

// Encode writes the waveform to w in the given kind's format.
func Encode(w io.Writer, kind Kind, res *waveform.Result) error {
	switch kind {
	case JSON:
		return EncodeJSON(w, res)
	case SVG:
		return EncodeSVG(w, res)
	case PNG:
		return EncodePNG(w, res)
	default:
		return ErrUnknownKind
	}
}

// dimensions returns the rendering size, falling back to the package
// defaults when the options carry none.
func dimensions(opts waveform.Options) (width, height int) {
	def := waveform.DefaultOptions()

	width, height = opts.Width, opts.Height
	if width < 1 {
		width = def.Width
	}
	if height < 1 {
		height = def.Height
	}

	return width, height
}
