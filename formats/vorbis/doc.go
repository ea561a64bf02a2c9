// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio decoding for the waveform
// pipeline.
//
// The decoder is built on github.com/jfreymuth/oggvorbis, which outputs
// interleaved float32 samples directly, so no PCM conversion is needed.
//
// # Usage
//
//	decoder := vorbis.Decoder{}
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
// The total frame count comes from the stream's granule position and is
// only available when the input reader is seekable. Decoding from a plain
// stream yields a source whose Frames reports 0, which the waveform
// reducer rejects; pass an os.File or other io.ReadSeeker.
package vorbis
