// SPDX-License-Identifier: EPL-2.0

package oto

import "errors"

var (
	// ErrUnsupportedChannels is returned for devices with more than two
	// output channels.
	ErrUnsupportedChannels = errors.New("oto: only mono and stereo output is supported")

	// ErrHeadless is returned by New in binaries built with the headless tag.
	ErrHeadless = errors.New("oto: built without audio output (headless)")
)
