// SPDX-License-Identifier: EPL-2.0

// Package device implements a software mixing device.
//
// A Device owns every playing voice (a Handle). Play wraps the supplied
// reader in a chain of pitch, resampler and channel mapper so any stream can
// be mixed at the device format. A platform backend (see backend/oto or
// backend/null) calls Mix once per audio callback; Mix pulls every voice,
// applies its 3D-derived volume, pitch and pan, ramps volume changes across
// the block and writes the final buffer.
//
// All Handle operations are safe for concurrent use with Mix. Lock and
// Unlock hold off the next Mix so a batch of changes lands in one cycle.
package device
