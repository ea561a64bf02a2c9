// SPDX-License-Identifier: EPL-2.0

// Package audio provides the low-level audio input primitives used by the
// waveform pipeline.
//
// This package contains the building blocks every decoder implements:
//   - Source interface for sequential PCM input
//   - Format registry for decoder registration
//
// # Source Interface
//
// The Source interface is the foundation of the pipeline:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    Frames() int64
//	    ReadSamples(dst []float32) (n int, err error)
//	    Close() error
//	}
//
// All format decoders implement this interface. Frames reports the total
// frame count of the stream up front, which the waveform reducer uses to
// partition the stream into fixed-size blocks before reading it.
//
// # Duration
//
// DurationMS derives the stream duration in milliseconds from the frame
// count and sample rate:
//
//	ms := audio.DurationMS(src)
//
// # Format Registry
//
// The registry allows dynamic decoder registration by format key:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	dec, ok := registry.Get("wav")
//
// The audwave root package maintains a default registry covering all
// supported formats, keyed by file extension.
package audio
