// SPDX-License-Identifier: EPL-2.0

// Package oto plays a device.Device through github.com/ebitengine/oto/v3.
//
// The oto player pulls float32 little-endian samples from the backend,
// which renders them with Device.Mix. When the device falls silent the
// player is paused and it resumes as soon as a voice plays again.
//
//	dev, _ := device.New(device.Options{})
//	out, err := oto.New(dev, oto.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer out.Close()
//
// oto allows one context per process, so only one Backend can exist.
// Binaries built with the headless tag get a stub whose New returns
// ErrHeadless; backend/null is the usual fallback.
package oto
