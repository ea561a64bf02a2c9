// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"io"
	"testing"
)

// mockOggReader simulates oggvorbis.Reader for testing
type mockOggReader struct {
	sampleRate   int
	channels     int
	length       int64
	samples      []float32
	offset       int
	returnErrors bool
}

func (m *mockOggReader) SampleRate() int { return m.sampleRate }
func (m *mockOggReader) Channels() int   { return m.channels }
func (m *mockOggReader) Length() int64   { return m.length }

func (m *mockOggReader) Read(dst []float32) (int, error) {
	if m.returnErrors {
		return 0, io.ErrUnexpectedEOF
	}

	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	n := copy(dst, m.samples[m.offset:])
	m.offset += n

	if m.offset >= len(m.samples) {
		return n, io.EOF
	}

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	invalidData := []byte("This is not an ogg stream")

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader(invalidData))

	if err == nil {
		t.Error("Decode() error = nil, want error for invalid data")
	}
}

func TestDecoder_EmptyInput(t *testing.T) {
	t.Parallel()

	decoder := Decoder{}
	_, err := decoder.Decode(bytes.NewReader([]byte{}))

	if err == nil {
		t.Error("Decode() error = nil, want error for empty input")
	}
}

func TestSource_Metadata(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:        &mockOggReader{},
		sampleRate: 48000,
		channels:   2,
		frames:     96000,
	}

	if src.SampleRate() != 48000 {
		t.Errorf("SampleRate() = %d, want 48000", src.SampleRate())
	}

	if src.Channels() != 2 {
		t.Errorf("Channels() = %d, want 2", src.Channels())
	}

	if src.Frames() != 96000 {
		t.Errorf("Frames() = %d, want 96000", src.Frames())
	}
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	samples := []float32{0.0, 0.5, -0.5, 1.0, -1.0, 0.25}
	src := &source{
		dec:      &mockOggReader{samples: samples, channels: 2},
		channels: 2,
	}

	dst := make([]float32, 6)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 6 {
		t.Errorf("ReadSamples() n = %d, want 6", n)
	}

	for i, want := range samples {
		if dst[i] != want {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want)
		}
	}
}

func TestSource_ReadSamples_FrameAligned(t *testing.T) {
	t.Parallel()

	samples := []float32{0.1, 0.2, 0.3, 0.4}
	src := &source{
		dec:      &mockOggReader{samples: samples, channels: 2},
		channels: 2,
	}

	// Odd-sized dst must not split a stereo frame
	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)

	if err != nil && err != io.EOF {
		t.Fatalf("ReadSamples() error = %v", err)
	}

	if n != 2 {
		t.Errorf("ReadSamples() n = %d, want 2", n)
	}
}

func TestSource_ReadSamples_EmptyBuffer(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:      &mockOggReader{samples: []float32{0.1}},
		channels: 1,
	}

	n, err := src.ReadSamples(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = (%d, %v), want (0, nil)", n, err)
	}
}

func TestSource_ReadSamples_ReaderError(t *testing.T) {
	t.Parallel()

	src := &source{
		dec:      &mockOggReader{returnErrors: true},
		channels: 1,
	}

	dst := make([]float32, 4)
	_, err := src.ReadSamples(dst)
	if err != io.ErrUnexpectedEOF {
		t.Errorf("ReadSamples() error = %v, want io.ErrUnexpectedEOF", err)
	}
}
