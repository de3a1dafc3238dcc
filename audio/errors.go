// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")
	ErrNotSeekable    = errors.New("reader is not seekable")
	ErrUnknownLength  = errors.New("reader length is unknown")
	ErrInvalidSpecs   = errors.New("invalid stream specs")
	ErrUnknownFormat  = errors.New("no decoder registered for format")
)

// StateError reports a reader that refused to be built over its upstream.
// It unwraps to the violated precondition, e.g. ErrNotSeekable.
type StateError struct {
	Op  string
	Err error
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StateError) Unwrap() error { return e.Err }
