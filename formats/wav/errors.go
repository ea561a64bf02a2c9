// SPDX-License-Identifier: EPL-2.0

package wav

import "errors"

var (
	ErrNotWavFile          = errors.New("not a valid wav file")
	ErrUnsupportedWavDepth = errors.New("unsupported wav bit depth")
)
