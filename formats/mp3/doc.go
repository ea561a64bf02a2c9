// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio decoding for the waveform pipeline.
//
// The decoder is built on github.com/hajimehoshi/go-mp3 and outputs
// 16-bit stereo PCM regardless of the source encoding.
//
// # Usage
//
//	decoder := mp3.Decoder{}
//	src, err := decoder.Decode(file)
//	if err != nil {
//	    // handle error
//	}
//	defer src.Close()
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// # Frame Count
//
// The total frame count is derived from go-mp3's Length, which is only
// available when the input reader is seekable. Decoding from a plain
// stream yields a source whose Frames reports 0, which the waveform
// reducer rejects; pass an os.File or other io.ReadSeeker.
//
// # Limitations
//
//   - Output is always 2 channels (go-mp3 upmixes mono input)
//   - Sample rate is fixed by the source file (typically 44100 Hz)
package mp3
