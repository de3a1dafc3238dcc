// SPDX-License-Identifier: EPL-2.0

// Package null is a backend without an audio device. A goroutine pulls
// Device.Mix on a timer while voices play and idles otherwise, so a
// Device advances in real time on machines without sound output.
package null

import (
	"sync"
	"time"

	"github.com/ik5/audmix/device"
)

const DefaultBufferFrames = 1024

type Options struct {
	// BufferFrames is the number of frames mixed per cycle.
	BufferFrames int
	// Unpaced mixes as fast as possible instead of in real time.
	Unpaced bool
	// Sink receives every mixed block. It runs on the mixing goroutine
	// and must not retain out.
	Sink func(out []float32)
}

// Backend drives a Device from its own goroutine.
type Backend struct {
	dev    *device.Device
	frames int
	paced  bool
	sink   func([]float32)

	mu     sync.Mutex
	cond   *sync.Cond
	active bool
	closed bool
	mixed  int64

	done chan struct{}
}

// New attaches a null backend to dev and starts its mixing goroutine.
func New(dev *device.Device, opts Options) *Backend {
	frames := opts.BufferFrames
	if frames <= 0 {
		frames = DefaultBufferFrames
	}
	b := &Backend{
		dev:    dev,
		frames: frames,
		paced:  !opts.Unpaced,
		sink:   opts.Sink,
		done:   make(chan struct{}),
	}
	b.cond = sync.NewCond(&b.mu)

	go b.loop()
	dev.SetBackend(b)
	return b
}

// Playing wakes or idles the mixing goroutine.
func (b *Backend) Playing(active bool) {
	b.mu.Lock()
	b.active = active
	b.mu.Unlock()
	b.cond.Signal()
}

// Active reports whether the backend is currently mixing.
func (b *Backend) Active() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.active
}

// Frames returns the number of frames mixed so far.
func (b *Backend) Frames() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mixed
}

func (b *Backend) wait() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for !b.active && !b.closed {
		b.cond.Wait()
	}
	return !b.closed
}

func (b *Backend) loop() {
	defer close(b.done)

	var buf []float32
	for b.wait() {
		specs := b.dev.Specs()
		n := b.frames * int(specs.Channels)
		if cap(buf) < n {
			buf = make([]float32, n)
		}
		buf = buf[:n]

		start := time.Now()
		b.dev.Mix(buf)
		if b.sink != nil {
			b.sink(buf)
		}

		b.mu.Lock()
		b.mixed += int64(b.frames)
		b.mu.Unlock()

		if b.paced {
			period := time.Duration(float64(time.Second) * float64(b.frames) / specs.Rate)
			time.Sleep(period - time.Since(start))
		}
	}
}

// Close detaches the backend from its device and stops the goroutine.
func (b *Backend) Close() error {
	b.dev.SetBackend(nil)

	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	b.cond.Broadcast()

	<-b.done
	return nil
}
