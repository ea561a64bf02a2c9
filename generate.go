// SPDX-License-Identifier: EPL-2.0

package audwave

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ik5/audwave/audio"
	"github.com/ik5/audwave/encode"
	"github.com/ik5/audwave/formats/aiff"
	"github.com/ik5/audwave/formats/mp3"
	"github.com/ik5/audwave/formats/vorbis"
	"github.com/ik5/audwave/formats/wav"
	"github.com/ik5/audwave/waveform"
)

// defaultRegistry maps lowercase file extensions (without the dot) to
// decoders for the containers shipped with the module.
var defaultRegistry = func() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}()

// Generate reads the audio file at sourcePath, computes its waveform
// using opts, and writes the rendered artifact next to the source file,
// replacing the source extension with the one matching kind. It returns
// the path of the written artifact.
//
// The output file is written atomically: the artifact is rendered into
// a temporary file in the destination directory and renamed into place
// only on success, so a failed run never leaves a partial artifact
// behind.
func Generate(sourcePath string, kind encode.Kind, opts waveform.Options) (string, error) {
	if sourcePath == "" {
		return "", ErrEmptySourcePath
	}

	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", encode.ErrUnknownKind, string(kind))
	}

	if err := opts.Validate(); err != nil {
		return "", err
	}

	src, err := openSource(sourcePath)
	if err != nil {
		return "", err
	}
	defer src.Close()

	res, err := waveform.Compute(src, opts)
	if err != nil {
		return "", fmt.Errorf("computing waveform of %s: %w", sourcePath, err)
	}

	outPath := outputPath(sourcePath, kind)
	if err := writeArtifact(outPath, kind, res); err != nil {
		return "", err
	}

	return outPath, nil
}

// openSource opens the file at path and decodes it with the registry
// entry matching its extension.
func openSource(path string) (audio.Source, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	dec, ok := defaultRegistry.Get(ext)
	if !ok {
		return nil, unknownFormatErr(ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	src, err := dec.Decode(f)
	if err != nil {
		f.Close()

		switch {
		case isContainerMismatch(err):
			return nil, fmt.Errorf("%s: %w", path, unknownFormatErr(ext))
		default:
			return nil, fmt.Errorf("decoding %s: %w", path, err)
		}
	}

	return &closerSource{Source: src, file: f}, nil
}

// isContainerMismatch reports whether err means the file content does
// not match the container its extension promised.
func isContainerMismatch(err error) bool {
	return errors.Is(err, wav.ErrNotWavFile) || errors.Is(err, aiff.ErrNotAiffFile)
}

// unknownFormatErr wraps ErrUnknownFormat with a hint naming the
// supported formats, so callers know what to convert to.
func unknownFormatErr(ext string) error {
	formats := defaultRegistry.Formats()
	sort.Strings(formats)

	return fmt.Errorf("%w %q, convert to one of: %s",
		ErrUnknownFormat, ext, strings.Join(formats, ", "))
}

// outputPath derives the artifact path from the source path by swapping
// the extension for the output kind's.
func outputPath(sourcePath string, kind encode.Kind) string {
	return strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + kind.Ext()
}

// writeArtifact renders res into path atomically via a temporary file
// in the same directory.
func writeArtifact(path string, kind encode.Kind, res *waveform.Result) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temporary artifact in %s: %w", dir, err)
	}

	if err := encode.Encode(tmp, kind, res); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("encoding %s artifact: %w", kind, err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("closing temporary artifact: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("renaming artifact into place: %w", err)
	}

	return nil
}

// closerSource closes the underlying file together with the decoded
// source.
type closerSource struct {
	audio.Source
	file *os.File
}

func (c *closerSource) Close() error {
	err := c.Source.Close()

	if cerr := c.file.Close(); cerr != nil && err == nil {
		err = cerr
	}

	return err
}
