// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio decoding for the waveform pipeline.
//
// The decoder is built on github.com/go-audio/wav and supports PCM WAV at
// 8, 16, 24 and 32 bits per sample, any channel count and sample rate.
//
// # Usage
//
//	decoder := wav.Decoder{}
//	src, err := decoder.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// The returned source reports the total frame count of the file up front
// (derived from the PCM chunk size), which the waveform reducer relies on
// to partition the stream.
//
// # Errors
//
// The decoder returns ErrNotWavFile when the input is not a RIFF/WAVE
// container and ErrUnsupportedWavDepth for bit depths other than
// 8/16/24/32.
//
// # Limitations
//
//   - Compressed WAV variants (ADPCM, mu-law) are not supported
//   - Decoding requires an io.ReadSeeker; plain readers are buffered into
//     memory first
package wav
