// SPDX-License-Identifier: EPL-2.0

// Package source provides leaf readers and sounds: generators, in-memory
// buffers and decoded files.
package source
