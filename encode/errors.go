// SPDX-License-Identifier: EPL-2.0

package encode

import "errors"

var (
	ErrUnknownKind = errors.New("unknown output kind")
	ErrBadColor    = errors.New("malformed hex color")
)
