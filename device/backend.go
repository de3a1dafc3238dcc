// SPDX-License-Identifier: EPL-2.0

package device

// Backend is the platform side of a Device. It pulls audio with Device.Mix
// and is told when the device goes from silent to active and back, so it
// can start or idle its output stream.
//
// Playing is never called with device locks held, but it may be called
// from inside Mix and must not block on the goroutine running Mix.
type Backend interface {
	Playing(active bool)
}

// BackendFunc adapts a function to the Backend interface.
type BackendFunc func(active bool)

func (f BackendFunc) Playing(active bool) { f(active) }
