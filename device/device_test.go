// SPDX-License-Identifier: EPL-2.0

package device_test

import (
	"bytes"
	"errors"
	"log"
	"math"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/fx"
	"github.com/ik5/audmix/internal/audiotest"
	"github.com/ik5/audmix/resample"
	"github.com/ik5/audmix/source"
)

var mono100 = audio.Specs{Rate: 100, Channels: audio.ChannelsMono}

func newDevice(t *testing.T, opts device.Options) *device.Device {
	t.Helper()
	if opts.Specs == (audio.Specs{}) {
		opts.Specs = mono100
	}
	if opts.Logger == nil {
		opts.Logger = log.New(&bytes.Buffer{}, "", 0)
	}
	d, err := device.New(opts)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return d
}

func mix(d *device.Device, frames int) []float32 {
	out := make([]float32, frames*int(d.Specs().Channels))
	d.Mix(out)
	return out
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	d, err := device.New(device.Options{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := d.Specs(); got.Rate != device.DefaultRate || got.Channels != audio.ChannelsStereo {
		t.Errorf("Specs() = %v", got)
	}
	if d.Quality() != resample.QualityMedium {
		t.Errorf("Quality() = %v, want medium", d.Quality())
	}
	if d.Volume() != 1 {
		t.Errorf("Volume() = %v, want 1", d.Volume())
	}
	if d.DistanceModel() != device.DistanceModelInverseClamped {
		t.Errorf("DistanceModel() = %v", d.DistanceModel())
	}
	if d.SpeedOfSound() != device.DefaultSpeedOfSound || d.DopplerFactor() != 1 {
		t.Errorf("SpeedOfSound() = %v, DopplerFactor() = %v", d.SpeedOfSound(), d.DopplerFactor())
	}
}

func TestNew_InvalidSpecs(t *testing.T) {
	t.Parallel()

	_, err := device.New(device.Options{Specs: audio.Specs{Rate: -1, Channels: 2}})
	if !errors.Is(err, audio.ErrInvalidSpecs) {
		t.Errorf("New() error = %v, want ErrInvalidSpecs", err)
	}
}

func TestPlay_Errors(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{})
	if _, err := d.Play(nil, false); !errors.Is(err, device.ErrNilReader) {
		t.Errorf("Play(nil) error = %v, want ErrNilReader", err)
	}
	bad := audiotest.NewSilentReader(0, 1, 10)
	if _, err := d.Play(bad, false); !errors.Is(err, audio.ErrInvalidSpecs) {
		t.Errorf("Play(bad specs) error = %v, want ErrInvalidSpecs", err)
	}
}

func TestDevice_EffectChainToSilence(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{Specs: audio.Specs{Rate: 44100, Channels: audio.ChannelsMono}})
	sound := fx.FadeOut(fx.Loop(fx.Limit(source.Sine(440, 44100), 0, 1), 2), 1.5, 0.5)

	r, err := sound.CreateReader()
	if err != nil {
		t.Fatalf("CreateReader() error = %v", err)
	}
	if got := r.Length(); got != 88200 {
		t.Errorf("Length() = %d, want 88200", got)
	}

	h, err := d.Play(r, false)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	var out []float32
	for range 200 {
		if d.Playing() == 0 {
			break
		}
		out = append(out, mix(d, 1000)...)
	}
	if d.Playing() != 0 || h.Status() != device.StatusInvalid {
		t.Fatalf("voice still alive after %d frames", len(out))
	}

	var peak float64
	for _, v := range out[:44100] {
		peak = max(peak, math.Abs(float64(v)))
	}
	if peak < 0.99 {
		t.Errorf("first second peak = %v, want ~1", peak)
	}
	for i := 88200; i < len(out); i++ {
		if math.Abs(float64(out[i])) > 1e-3 {
			t.Fatalf("out[%d] = %v after the fade, want ~0", i, out[i])
		}
	}
}

func TestHandle_EndWithoutKeep(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{})
	h, err := d.Play(audiotest.NewConstantReader(100, 1, 100, 0.5), false)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	var calls int
	h.SetStopCallback(func() { calls++ })

	first := mix(d, 64)
	if first[0] != 0.5 || first[63] != 0.5 {
		t.Errorf("first block = %v..%v, want 0.5", first[0], first[63])
	}
	second := mix(d, 64)
	if second[35] != 0.5 || second[36] != 0 {
		t.Errorf("second block tail = %v %v, want 0.5 0", second[35], second[36])
	}

	if calls != 1 {
		t.Errorf("stop callback ran %d times, want 1", calls)
	}
	if h.Status() != device.StatusInvalid {
		t.Errorf("Status() = %v, want invalid", h.Status())
	}
	if !math.IsNaN(h.Volume()) || h.SetVolume(1) || h.Stop() || h.Resume() {
		t.Error("operations on an invalid handle must fail")
	}
	if len(d.Handles()) != 0 {
		t.Errorf("Handles() = %d, want 0", len(d.Handles()))
	}
}

func TestHandle_KeepSeekResume(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{})
	h, err := d.Play(audiotest.NewConstantReader(100, 1, 50, 0.25), true)
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	mix(d, 64)

	if h.Status() != device.StatusStopped {
		t.Fatalf("Status() = %v, want stopped", h.Status())
	}
	if d.Playing() != 0 || len(d.Handles()) != 1 {
		t.Fatalf("Playing() = %d, Handles() = %d; want 0, 1", d.Playing(), len(d.Handles()))
	}
	if h.Resume() {
		t.Error("Resume() of a stopped voice succeeded")
	}

	if !h.Seek(0.2) {
		t.Fatal("Seek() failed")
	}
	if h.Status() != device.StatusPaused {
		t.Fatalf("Status() after Seek = %v, want paused", h.Status())
	}
	if !h.Resume() {
		t.Fatal("Resume() failed")
	}

	out := mix(d, 40)
	if out[29] != 0.25 || out[30] != 0 {
		t.Errorf("after seek: out[29], out[30] = %v, %v; want 0.25, 0", out[29], out[30])
	}
}

func TestHandle_PauseResume(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{})
	h, _ := d.Play(audiotest.NewRampReader(100, 1, -1), false)

	mix(d, 10)
	if !h.Pause() || h.Pause() {
		t.Fatal("Pause() should succeed once")
	}
	if out := mix(d, 10); slices.ContainsFunc(out, func(v float32) bool { return v != 0 }) {
		t.Errorf("paused voice produced %v", out)
	}
	if !h.Resume() {
		t.Fatal("Resume() failed")
	}
	if out := mix(d, 1); out[0] != 10 {
		t.Errorf("resumed at %v, want 10", out[0])
	}
	if got := h.Position(); math.Abs(got-0.11) > 1e-9 {
		t.Errorf("Position() = %v, want 0.11", got)
	}
}

func TestHandle_LoopCount(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{})
	h, _ := d.Play(audiotest.NewRampReader(100, 1, 10), false)
	h.SetLoopCount(2)

	out := mix(d, 40)
	for i := range 30 {
		if out[i] != float32(i%10) {
			t.Fatalf("out[%d] = %v, want %d", i, out[i], i%10)
		}
	}
	if out[30] != 0 {
		t.Errorf("out[30] = %v, want 0", out[30])
	}
	if h.Status() != device.StatusInvalid {
		t.Errorf("Status() = %v, want invalid", h.Status())
	}
}

func TestHandle_LoopSeekFailureEndsVoice(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	d := newDevice(t, device.Options{Logger: log.New(&logs, "", 0)})
	up := audiotest.NewRampReader(100, 1, 10)
	up.NotSeekable = true
	h, _ := d.Play(up, false)
	h.SetLoopCount(-1)

	out := mix(d, 20)
	if out[9] != 9 || out[10] != 0 {
		t.Errorf("out = %v, want one pass then silence", out)
	}
	if h.Status() != device.StatusInvalid {
		t.Errorf("Status() = %v, want invalid", h.Status())
	}
	if d.Playing() != 0 {
		t.Errorf("Playing() = %d, want 0", d.Playing())
	}

	logs.Reset()
	mix(d, 20)
	if logs.Len() != 0 {
		t.Errorf("ended voice logged again: %q", logs.String())
	}
}

func TestHandle_VolumeRampsBetweenBlocks(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{})
	h, _ := d.Play(audiotest.NewConstantReader(100, 1, -1, 1), false)

	mix(d, 4)
	h.SetVolume(0)
	out := mix(d, 4)

	want := []float32{0.75, 0.5, 0.25, 0}
	if !slices.Equal(out, want) {
		t.Errorf("ramp = %v, want %v", out, want)
	}
	if out := mix(d, 4); !slices.Equal(out, make([]float32, 4)) {
		t.Errorf("after ramp = %v, want silence", out)
	}
}

func TestDevice_MasterVolumeAndSum(t *testing.T) {
	t.Parallel()

	vol := 0.5
	d := newDevice(t, device.Options{Volume: &vol})
	d.Play(audiotest.NewConstantReader(100, 1, -1, 0.5), false)
	d.Play(audiotest.NewConstantReader(100, 1, -1, 0.25), false)

	if out := mix(d, 2); out[0] != 0.375 || out[1] != 0.375 {
		t.Errorf("out = %v, want 0.375", out)
	}
	d.SetVolume(-1)
	if d.Volume() != 0.5 {
		t.Errorf("negative SetVolume changed the volume to %v", d.Volume())
	}
}

func TestDevice_ReadErrorIsLogged(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	d := newDevice(t, device.Options{Logger: log.New(&logs, "", 0)})
	up := audiotest.NewConstantReader(100, 1, -1, 1)
	up.FailAfter = 1
	h, _ := d.Play(up, false)

	mix(d, 8)
	out := mix(d, 8)

	if h.Status() != device.StatusPlaying {
		t.Errorf("Status() = %v, want playing", h.Status())
	}
	if !slices.Equal(out, make([]float32, 8)) {
		t.Errorf("failed voice produced %v", out)
	}
	if !strings.Contains(logs.String(), audiotest.ErrInjected.Error()) {
		t.Errorf("log = %q, want the read error", logs.String())
	}
}

func TestDevice_Resample(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{Specs: audio.Specs{Rate: 200, Channels: audio.ChannelsMono}})
	h, _ := d.Play(audiotest.NewConstantReader(100, 1, 100, 0.5), false)

	var out []float32
	for d.Playing() > 0 && len(out) < 1000 {
		out = append(out, mix(d, 50)...)
	}
	if h.Status() != device.StatusInvalid {
		t.Fatal("voice did not end")
	}
	// The middle of the upsampled stream stays flat.
	for i := 50; i < 150; i++ {
		if math.Abs(float64(out[i])-0.5) > 0.01 {
			t.Fatalf("out[%d] = %v, want ~0.5", i, out[i])
		}
	}
}

func TestDevice_StereoPan(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{Specs: audio.Specs{Rate: 100, Channels: audio.ChannelsStereo}})
	h, _ := d.Play(audiotest.NewConstantReader(100, 1, -1, 1), false)

	h.SetPan(1)
	if out := mix(d, 1); math.Abs(float64(out[0])) > 1e-6 || math.Abs(float64(out[1])-1) > 1e-6 {
		t.Errorf("pan right = %v, want [0 1]", out)
	}

	// A source on the listener's left wins over the user pan.
	h.SetRelative(true)
	h.SetLocation(device.Vector3{X: -1})
	if out := mix(d, 1); math.Abs(float64(out[0])-1) > 1e-6 || math.Abs(float64(out[1])) > 1e-6 {
		t.Errorf("source left = %v, want [1 0]", out)
	}
}

func TestDevice_DistanceAttenuation(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{})
	h, _ := d.Play(audiotest.NewConstantReader(100, 1, -1, 1), false)
	h.SetLocation(device.Vector3{Z: -4})

	// The first block ramps from full volume, the second is steady.
	mix(d, 4)
	if out := mix(d, 4); math.Abs(float64(out[3])-0.25) > 1e-6 {
		t.Errorf("gain at distance 4 = %v, want 0.25", out[3])
	}

	d.SetDistanceModel(device.DistanceModelInvalid)
	mix(d, 4)
	if out := mix(d, 4); out[3] != 1 {
		t.Errorf("gain without distance model = %v, want 1", out[3])
	}
}

func TestDevice_Cone(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{})
	d.SetDistanceModel(device.DistanceModelInvalid)
	h, _ := d.Play(audiotest.NewConstantReader(100, 1, -1, 1), false)

	// The source faces -Z and the listener is behind it.
	h.SetLocation(device.Vector3{Z: -1})
	h.SetConeAngleInner(90)
	h.SetConeAngleOuter(180)
	h.SetConeVolumeOuter(0.5)

	mix(d, 4)
	if out := mix(d, 4); math.Abs(float64(out[3])-0.5) > 1e-6 {
		t.Errorf("gain outside the cone = %v, want 0.5", out[3])
	}

	h.SetLocation(device.Vector3{Z: 1})
	mix(d, 4)
	if out := mix(d, 4); math.Abs(float64(out[3])-1) > 1e-6 {
		t.Errorf("gain inside the cone = %v, want 1", out[3])
	}
}

func TestDevice_Doppler(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{Specs: audio.Specs{Rate: 1000, Channels: audio.ChannelsMono}})
	d.SetDistanceModel(device.DistanceModelInvalid)
	d.SetSpeedOfSound(100)

	// An approaching source raises the pitch, so more source frames are
	// consumed per output frame.
	up := audiotest.NewRampReader(1000, 1, -1)
	h, _ := d.Play(up, false)
	h.SetLocation(device.Vector3{Z: -10})
	h.SetVelocity(device.Vector3{Z: 50})

	mix(d, 500)
	mix(d, 500)
	if got := up.Position(); got < 1900 {
		t.Errorf("source position = %d, want about 2000 for pitch 2", got)
	}
	if got := h.Position(); math.Abs(got-1) > 0.01 {
		t.Errorf("Position() = %v, want 1", got)
	}
}

func TestDevice_SetSpecsRetargets(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{})
	d.Play(audiotest.NewConstantReader(100, 1, -1, 1), false)
	mix(d, 4)

	if err := d.SetSpecs(audio.Specs{Rate: 100, Channels: audio.ChannelsStereo}); err != nil {
		t.Fatalf("SetSpecs() error = %v", err)
	}
	out := mix(d, 4)
	if len(out) != 8 || math.Abs(float64(out[0])-math.Sqrt2/2) > 1e-6 {
		t.Errorf("out = %v, want centered stereo", out)
	}
	if err := d.SetSpecs(audio.Specs{}); !errors.Is(err, audio.ErrInvalidSpecs) {
		t.Errorf("SetSpecs(invalid) error = %v", err)
	}
}

func TestDevice_StopAll(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{})
	a, _ := d.Play(audiotest.NewSilentReader(100, 1, -1), false)
	b, _ := d.Play(audiotest.NewSilentReader(100, 1, -1), true)
	b.Pause()

	d.StopAll()
	if a.Status() != device.StatusInvalid || b.Status() != device.StatusInvalid {
		t.Errorf("statuses = %v, %v; want invalid", a.Status(), b.Status())
	}
	if len(d.Handles()) != 0 {
		t.Errorf("Handles() = %d, want 0", len(d.Handles()))
	}
}

type recorder struct {
	mu    sync.Mutex
	calls []bool
}

func (r *recorder) Playing(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, active)
}

func (r *recorder) get() []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

func TestDevice_BackendNotifications(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	d := newDevice(t, device.Options{Backend: rec})

	a, _ := d.Play(audiotest.NewSilentReader(100, 1, 10), false)
	d.Play(audiotest.NewSilentReader(100, 1, -1), false)
	if got := rec.get(); !slices.Equal(got, []bool{true}) {
		t.Fatalf("after Play: %v, want [true]", got)
	}

	mix(d, 20)
	if a.Status() != device.StatusInvalid {
		t.Fatal("short voice did not end")
	}
	if got := rec.get(); !slices.Equal(got, []bool{true}) {
		t.Fatalf("one voice left: %v, want [true]", got)
	}

	d.StopAll()
	if got := rec.get(); !slices.Equal(got, []bool{true, false}) {
		t.Fatalf("after StopAll: %v, want [true false]", got)
	}

	other := &recorder{}
	d.SetBackend(other)
	if got := other.get(); len(got) != 0 {
		t.Errorf("idle device reported %v to a new backend", got)
	}
}

func TestDevice_LockBatchesChanges(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{})
	h, _ := d.Play(audiotest.NewConstantReader(100, 1, -1, 1), false)

	done := make(chan []float32)
	d.Lock()
	go func() { done <- mix(d, 1) }()
	h.SetVolume(0)
	h.Pause()
	d.Unlock()

	if out := <-done; out[0] != 0 {
		t.Errorf("mix during a locked batch = %v, want silence", out)
	}
}

func TestDevice_SetSpecsInsideLock(t *testing.T) {
	t.Parallel()

	d := newDevice(t, device.Options{})
	d.Play(audiotest.NewConstantReader(100, 1, -1, 1), false)

	done := make(chan error)
	go func() {
		d.Lock()
		err := d.SetSpecs(audio.Specs{Rate: 200, Channels: audio.ChannelsStereo})
		d.Unlock()
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("SetSpecs() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("SetSpecs() blocked inside Lock")
	}

	if got := d.Specs(); got != (audio.Specs{Rate: 200, Channels: audio.ChannelsStereo}) {
		t.Errorf("Specs() = %v", got)
	}
	if out := mix(d, 4); len(out) != 8 {
		t.Errorf("mixed %d samples, want 8", len(out))
	}
}
