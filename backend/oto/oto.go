// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package oto

import (
	"encoding/binary"
	"fmt"
	"io"
	"log"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/ik5/audmix/device"
)

// Options configures the oto context.
type Options struct {
	// BufferSize is the driver buffer length. Zero leaves the choice to oto.
	BufferSize time.Duration
	// Logger receives player errors. Defaults to log.Default().
	Logger *log.Logger
}

// player is the part of oto.Player the backend drives.
type player interface {
	Play()
	Pause()
	Close() error
	Err() error
}

// Backend feeds an oto player from a Device.
type Backend struct {
	dev    *device.Device
	logger *log.Logger
	player player

	samples []float32

	mu     sync.Mutex
	want   bool
	closed bool
	wake   chan struct{}
	done   chan struct{}
}

// New opens the oto context with the device's specs and attaches the
// backend to dev.
func New(dev *device.Device, opts Options) (*Backend, error) {
	specs := dev.Specs()
	if specs.Channels > 2 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedChannels, specs.Channels)
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(specs.Rate),
		ChannelCount: int(specs.Channels),
		Format:       oto.FormatFloat32LE,
		BufferSize:   opts.BufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("oto: %w", err)
	}
	<-ready

	b := newBackend(dev, opts.Logger)
	b.player = ctx.NewPlayer(b)
	b.start()
	return b, nil
}

func newBackend(dev *device.Device, logger *log.Logger) *Backend {
	if logger == nil {
		logger = log.Default()
	}
	return &Backend{
		dev:    dev,
		logger: logger,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

func (b *Backend) start() {
	go b.control()
	b.dev.SetBackend(b)
}

// Read implements io.Reader for the oto player.
func (b *Backend) Read(p []byte) (int, error) {
	ch := int(b.dev.Specs().Channels)
	frames := len(p) / 4 / ch
	n := frames * ch
	if cap(b.samples) < n {
		b.samples = make([]float32, n)
	}
	samples := b.samples[:n]

	b.dev.Mix(samples)
	for i, v := range samples {
		binary.LittleEndian.PutUint32(p[i*4:], math.Float32bits(v))
	}
	return n * 4, nil
}

// Playing records the wanted player state. It is called from inside Mix,
// on the player's own goroutine, so the switch happens in control.
func (b *Backend) Playing(active bool) {
	b.mu.Lock()
	b.want = active
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

func (b *Backend) control() {
	defer close(b.done)

	playing := false
	for range b.wake {
		b.mu.Lock()
		want, closed := b.want, b.closed
		b.mu.Unlock()
		if closed {
			return
		}
		if want == playing {
			continue
		}

		if want {
			b.player.Play()
		} else {
			b.player.Pause()
		}
		playing = want
		if err := b.player.Err(); err != nil {
			b.logger.Printf("oto: player: %v", err)
		}
	}
}

// Close detaches the backend and closes the player. The oto context
// stays alive for the rest of the process.
func (b *Backend) Close() error {
	b.dev.SetBackend(nil)

	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()
	select {
	case b.wake <- struct{}{}:
	default:
	}
	<-b.done

	if err := b.player.Close(); err != nil {
		return fmt.Errorf("oto: %w", err)
	}
	return nil
}

var _ io.Reader = (*Backend)(nil)
