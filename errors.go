// SPDX-License-Identifier: EPL-2.0

package audwave

import "errors"

var (
	ErrEmptySourcePath = errors.New("source path is empty")
	ErrUnknownFormat   = errors.New("unknown audio format")
)
