// SPDX-License-Identifier: EPL-2.0

// Package waveform reduces a decoded audio stream into a compact loudness
// envelope: an ordered sequence of amplitude values suitable for rendering
// or serialization.
//
// # Pipeline
//
// Compute runs the stages in order:
//
//  1. Resolve the output point count, either a fixed number or derived
//     from the source duration (auto-width).
//  2. Reduce the frame stream into that many contiguous blocks, keeping
//     one amplitude per channel per block (Peak or RMS).
//  3. Collapse the channel amplitudes of each block into one value
//     (mean by default).
//  4. Normalize: scale by the amplitude factor and round to two decimal
//     places.
//
//	src, _ := wav.Decoder{}.Decode(file)
//	defer src.Close()
//
//	res, err := waveform.Compute(src, waveform.DefaultOptions())
//	if err != nil {
//	    // handle error
//	}
//	// res.Samples holds the envelope, res.Options the resolved settings
//
// # Reduction Methods
//
// Peak keeps the maximum absolute sample value observed anywhere in a
// block, per channel. RMS keeps sqrt(mean(v²)) over the block, a smoother
// estimate. For any block, RMS never exceeds Peak.
//
// # Block Partitioning
//
// The stream is split into floor(totalFrames/count) frames per block; the
// final block absorbs the division remainder. A source shorter than the
// requested resolution yields fewer points than requested, never more.
//
// # Output Values
//
// Samples are non-negative. After scaling there is no upper clamp; callers
// control the amplitude factor to keep values in range for their encoder.
// The values 0 and 1 serialize as integer literals, everything else as a
// decimal — see Sample.MarshalJSON.
package waveform
