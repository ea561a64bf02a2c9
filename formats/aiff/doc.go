// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio decoding for the waveform pipeline.
//
// The decoder is built on github.com/go-audio/aiff and supports 16-bit
// PCM AIFF files at any channel count and sample rate.
//
// # Usage
//
//	decoder := aiff.Decoder{}
//	src, err := decoder.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// The returned source reports the total frame count from the COMM chunk.
//
// # Errors
//
// The decoder returns ErrNotAiffFile when the input is not an AIFF
// container, ErrOnlyPCM16bitSupported for other bit depths and
// ErrUnsupportedAiffLayout when the format chunk is missing.
//
// # Limitations
//
//   - Only 16-bit PCM is supported
//   - Decoding requires an io.ReadSeeker; plain readers are buffered into
//     memory first
package aiff
