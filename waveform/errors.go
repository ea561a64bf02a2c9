// SPDX-License-Identifier: EPL-2.0

package waveform

import "errors"

var (
	ErrUnknownMethod      = errors.New("unknown reduction method")
	ErrInvalidSampleCount = errors.New("sample count must be positive")
	ErrInvalidAmplitude   = errors.New("amplitude must be positive")
	ErrNoChannels         = errors.New("source reports no channels")
	ErrUnknownFrameTotal  = errors.New("source does not report its frame total")
)
