// SPDX-License-Identifier: EPL-2.0

//go:build !headless

package oto

import (
	"bytes"
	"encoding/binary"
	"errors"
	"log"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/internal/audiotest"
)

// fakePlayer records Play and Pause calls.
type fakePlayer struct {
	calls chan string
	err   error
}

func newFakePlayer() *fakePlayer { return &fakePlayer{calls: make(chan string, 16)} }

func (p *fakePlayer) Play()        { p.calls <- "play" }
func (p *fakePlayer) Pause()       { p.calls <- "pause" }
func (p *fakePlayer) Close() error { return nil }
func (p *fakePlayer) Err() error   { return p.err }

func (p *fakePlayer) next(t *testing.T) string {
	t.Helper()
	select {
	case c := <-p.calls:
		return c
	case <-time.After(5 * time.Second):
		t.Fatal("no player call")
		return ""
	}
}

func newDevice(t *testing.T, channels audio.Channels) *device.Device {
	t.Helper()
	d, err := device.New(device.Options{
		Specs:  audio.Specs{Rate: 1000, Channels: channels},
		Logger: log.New(&bytes.Buffer{}, "", 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestBackend_Read(t *testing.T) {
	t.Parallel()

	d := newDevice(t, audio.ChannelsMono)
	b := newBackend(d, nil)
	if _, err := d.Play(audiotest.NewConstantReader(1000, 1, 100, 0.5), false); err != nil {
		t.Fatal(err)
	}

	p := make([]byte, 18)
	n, err := b.Read(p)
	if err != nil || n != 16 {
		t.Fatalf("Read() = %d, %v, want 16, nil", n, err)
	}
	for i := 0; i < n; i += 4 {
		if v := math.Float32frombits(binary.LittleEndian.Uint32(p[i:])); v != 0.5 {
			t.Errorf("sample %d = %v, want 0.5", i/4, v)
		}
	}
}

func TestBackend_ReadWholeFrames(t *testing.T) {
	t.Parallel()

	b := newBackend(newDevice(t, audio.ChannelsStereo), nil)

	n, err := b.Read(make([]byte, 20))
	if err != nil || n != 16 {
		t.Errorf("Read(20 bytes) = %d, %v, want 16, nil", n, err)
	}
}

func TestBackend_PlayPause(t *testing.T) {
	t.Parallel()

	d := newDevice(t, audio.ChannelsMono)
	fake := newFakePlayer()
	b := newBackend(d, nil)
	b.player = fake
	b.start()

	if _, err := d.Play(audiotest.NewConstantReader(1000, 1, 10, 1), false); err != nil {
		t.Fatal(err)
	}
	if c := fake.next(t); c != "play" {
		t.Fatalf("first call = %q, want play", c)
	}

	if _, err := b.Read(make([]byte, 4*64)); err != nil {
		t.Fatal(err)
	}
	if c := fake.next(t); c != "pause" {
		t.Fatalf("call after the voice ended = %q, want pause", c)
	}

	if err := b.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestBackend_LogsPlayerErrors(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	d := newDevice(t, audio.ChannelsMono)
	fake := newFakePlayer()
	fake.err = errors.New("underrun")
	b := newBackend(d, log.New(&logs, "", 0))
	b.player = fake
	b.start()

	if _, err := d.Play(audiotest.NewConstantReader(1000, 1, 10, 1), false); err != nil {
		t.Fatal(err)
	}
	fake.next(t)
	b.Close()

	if !strings.Contains(logs.String(), "underrun") {
		t.Errorf("log = %q, want the player error", logs.String())
	}
}

func TestNew_UnsupportedChannels(t *testing.T) {
	t.Parallel()

	_, err := New(newDevice(t, audio.ChannelsSurround51), Options{})
	if !errors.Is(err, ErrUnsupportedChannels) {
		t.Errorf("New() error = %v, want ErrUnsupportedChannels", err)
	}
}
