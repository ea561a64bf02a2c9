// SPDX-License-Identifier: EPL-2.0

// Package encode turns a computed waveform into output artifacts.
//
// Three encoders consume waveform.Result; none of them re-reads the audio
// source:
//
//   - EncodeJSON writes {"data": [...]} with every resolved option merged
//     in at the top level.
//   - EncodeSVG writes a filled symmetric path, each sample mirrored above
//     and below the center axis.
//   - EncodePNG rasterizes the same symmetric shape as vertical bars.
//
// Encode dispatches on Kind:
//
//	err := encode.Encode(w, encode.JSON, res)
//
// The JSON shape is stable: consumers rely on the "data" key and on the 0
// and 1 boundary samples being emitted as integers (see
// waveform.Sample.MarshalJSON).
package encode
