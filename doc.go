// SPDX-License-Identifier: EPL-2.0

// Package audwave generates waveform visualisations from audio files.
//
// This package offers a single high-level entry point, Generate, which
// decodes an audio file, reduces it to a fixed number of amplitude
// points, and renders the result as JSON data, an SVG image, or a PNG
// image next to the source file.
//
// # Supported Formats
//
// The package supports decoding the following audio formats:
//   - WAV (PCM 8/16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// # Quick Start
//
// The simplest way to render a waveform is with the defaults:
//
//	outPath, err := audwave.Generate("audio.wav", encode.SVG, waveform.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	// outPath is "audio.svg"
//
// # Waveform Pipeline
//
// For more control, build the pipeline yourself from the subpackages:
//
//	// Decode an audio file
//	file, _ := os.Open("audio.wav")
//	src, _ := wav.Decoder{}.Decode(file)
//
//	// Reduce to 100 amplitude points
//	opts := waveform.DefaultOptions()
//	opts.Method = waveform.RMS
//	res, _ := waveform.Compute(src, opts)
//
//	// Render wherever you like
//	encode.Encode(os.Stdout, encode.JSON, res)
//
// # Reduction Methods
//
// Two reduction methods are available:
//   - waveform.Peak keeps the largest absolute sample of each block
//   - waveform.RMS takes the root mean square of each block
//
// Peak tracks transients; RMS tracks perceived loudness.
//
// # Output
//
// Generate writes the artifact atomically: the file appears under its
// final name only once fully rendered, so readers never observe a
// partial artifact.
//
// See the individual subpackages for more detailed documentation.
package audwave
