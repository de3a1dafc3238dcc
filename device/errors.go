// SPDX-License-Identifier: EPL-2.0

package device

import "errors"

// ErrNilReader is returned by Play when no reader is given.
var ErrNilReader = errors.New("nil reader")
