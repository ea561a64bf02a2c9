// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/audwave/audio"
)

// ChannelAmplitude holds one non-negative amplitude per channel, the
// reduction result of one block of frames.
type ChannelAmplitude []float64

// readFrames is the fixed read granularity, in frames, of the reducer.
const readFrames = 4096

// Reduce partitions the source's frame stream into count contiguous blocks
// and reduces each block to one amplitude per channel using the given
// method.
//
// Every block holds floor(totalFrames/count) frames except the final one,
// which absorbs the division remainder so no trailing audio is dropped.
// The source is read strictly once, sequentially. A source that delivers
// fewer frames than it reports ends the result early: frames never read are
// skipped rather than treated as silence, and the RMS divisor of a short
// block is the count of frames actually read into it.
func Reduce(src audio.Source, method Method, count int) ([]ChannelAmplitude, error) {
	if !method.valid() {
		return nil, ErrUnknownMethod
	}

	if count < 1 {
		return nil, ErrInvalidSampleCount
	}

	channels := src.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}

	total := src.Frames()
	if total < 1 {
		return nil, ErrUnknownFrameTotal
	}

	framesPerBlock := total / int64(count)
	if framesPerBlock < 1 {
		// Source shorter than the requested resolution: one frame per
		// block, yielding fewer blocks than requested.
		framesPerBlock = 1
	}

	r := reducer{
		method:   method,
		channels: channels,
		peaks:    make([]float64, channels),
		squares:  make([]float64, channels),
	}

	blocks := make([]ChannelAmplitude, 0, count)
	buf := make([]float32, readFrames*channels)

	for {
		n, err := src.ReadSamples(buf)
		frames := n / channels

		for f := 0; f < frames; f++ {
			r.accumulate(buf[f*channels : (f+1)*channels])

			// The final block has no fixed size; it runs to EOF.
			if r.frames == framesPerBlock && int64(len(blocks)) < int64(count)-1 {
				blocks = append(blocks, r.flush())
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading frames: %w", err)
		}
	}

	if r.frames > 0 {
		blocks = append(blocks, r.flush())
	}

	return blocks, nil
}

// reducer accumulates per-channel block statistics for both methods.
type reducer struct {
	method   Method
	channels int
	frames   int64
	peaks    []float64
	squares  []float64
}

func (r *reducer) accumulate(frame []float32) {
	for c, v := range frame {
		abs := math.Abs(float64(v))
		if abs > r.peaks[c] {
			r.peaks[c] = abs
		}
		r.squares[c] += float64(v) * float64(v)
	}
	r.frames++
}

// flush emits the accumulated block and resets the statistics.
func (r *reducer) flush() ChannelAmplitude {
	amp := make(ChannelAmplitude, r.channels)

	for c := range amp {
		switch r.method {
		case RMS:
			amp[c] = math.Sqrt(r.squares[c] / float64(r.frames))
		default: // Peak
			amp[c] = r.peaks[c]
		}

		r.peaks[c] = 0
		r.squares[c] = 0
	}

	r.frames = 0

	return amp
}
