// SPDX-License-Identifier: EPL-2.0

package device

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"slices"
	"sync"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/fx"
	"github.com/ik5/audmix/resample"
)

const (
	DefaultRate         = 44100
	DefaultSpeedOfSound = 343.3
)

// Options configures a Device. Zero fields take their defaults.
type Options struct {
	// Specs is the output format, 44100 Hz stereo by default.
	Specs audio.Specs
	// Quality selects the resampler of new voices. The zero value means
	// resample.QualityMedium.
	Quality resample.Quality
	// Volume is the master volume. Nil means 1.
	Volume *float64
	// Logger receives swallowed voice errors. Defaults to log.Default().
	Logger *log.Logger
	// Backend is notified when playback starts and stops.
	Backend Backend
}

// Device is a software mixer for any number of voices.
type Device struct {
	// mixMu serialises Mix against Lock/Unlock batches. mu guards everything
	// below and is the only lock Handle methods take.
	mixMu sync.Mutex
	mu    sync.Mutex

	specs   audio.Specs
	quality resample.Quality
	volume  float64
	mixer   *Mixer
	buffer  *audio.Buffer
	logger  *log.Logger

	playing []*Handle
	paused  []*Handle
	nextID  uint64

	listenerLocation    Vector3
	listenerVelocity    Vector3
	listenerOrientation Quaternion
	speedOfSound        float64
	dopplerFactor       float64
	distanceModel       DistanceModel

	backendMu sync.Mutex
	backend   Backend
	reported  bool
}

// New creates a Device. It fails with audio.ErrInvalidSpecs when the
// requested specs cannot be mixed.
func New(opts Options) (*Device, error) {
	specs := opts.Specs
	if specs.Rate == 0 {
		specs.Rate = DefaultRate
	}
	if specs.Channels == audio.ChannelsInvalid {
		specs.Channels = audio.ChannelsStereo
	}
	if !specs.Valid() {
		return nil, fmt.Errorf("device: %w: %v", audio.ErrInvalidSpecs, specs)
	}

	volume := 1.0
	if opts.Volume != nil {
		volume = max(*opts.Volume, 0)
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	quality := opts.Quality
	if quality == resample.QualityDefault {
		quality = resample.QualityMedium
	}

	return &Device{
		specs:               specs,
		quality:             quality,
		volume:              volume,
		mixer:               NewMixer(specs),
		buffer:              audio.NewBuffer(0),
		logger:              logger,
		listenerOrientation: IdentityQuaternion,
		speedOfSound:        DefaultSpeedOfSound,
		dopplerFactor:       1,
		distanceModel:       DistanceModelInverseClamped,
		backend:             opts.Backend,
	}, nil
}

// Specs returns the output format.
func (d *Device) Specs() audio.Specs {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.specs
}

// SetSpecs changes the output format and retargets every live voice. It
// may be called between Lock and Unlock.
func (d *Device) SetSpecs(specs audio.Specs) error {
	if !specs.Valid() {
		return fmt.Errorf("device: %w: %v", audio.ErrInvalidSpecs, specs)
	}
	// Mix holds mu for the whole cycle, so the mixer is never touched
	// concurrently here.
	d.mu.Lock()
	defer d.mu.Unlock()

	d.specs = specs
	d.mixer.SetSpecs(specs)
	for _, h := range slices.Concat(d.playing, d.paused) {
		h.resampler.SetRate(specs.Rate)
		h.mapper.SetChannels(specs.Channels)
	}
	return nil
}

// Quality returns the resampler quality used for new voices.
func (d *Device) Quality() resample.Quality {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.quality
}

// SetQuality changes the resampler quality of voices played from now on.
func (d *Device) SetQuality(q resample.Quality) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.quality = q
}

func (d *Device) Volume() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.volume
}

// SetVolume sets the master volume. Negative values are ignored.
func (d *Device) SetVolume(volume float64) {
	if volume < 0 || math.IsNaN(volume) {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.volume = volume
}

// SetBackend replaces the backend and reports the current state to it.
func (d *Device) SetBackend(b Backend) {
	d.backendMu.Lock()
	d.backend = b
	d.reported = false
	d.backendMu.Unlock()
	d.syncBackend()
}

// syncBackend tells the backend about a change between silence and
// playback. It must be called without mu held.
func (d *Device) syncBackend() {
	d.backendMu.Lock()
	defer d.backendMu.Unlock()

	d.mu.Lock()
	active := len(d.playing) > 0
	d.mu.Unlock()

	if d.backend == nil || active == d.reported {
		return
	}
	d.reported = active
	d.backend.Playing(active)
}

// Lock holds off Mix until Unlock, so a batch of changes takes effect in
// the same cycle.
func (d *Device) Lock()   { d.mixMu.Lock() }
func (d *Device) Unlock() { d.mixMu.Unlock() }

// Play starts a voice over r. With keep the voice is paused instead of
// dropped when it ends, so it can be seeked and resumed.
func (d *Device) Play(r audio.Reader, keep bool) (*Handle, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	if !r.Specs().Valid() {
		return nil, fmt.Errorf("device: play: %w: %v", audio.ErrInvalidSpecs, r.Specs())
	}

	d.mu.Lock()
	pitch := fx.NewPitchReader(r, 1)
	rs := resample.New(pitch, d.specs.Rate, d.quality)
	mapper := NewChannelMapperReader(rs, d.specs.Channels)

	d.nextID++
	h := newHandle(d, d.nextID, r, pitch, rs, mapper, keep)
	d.playing = append(d.playing, h)
	d.mu.Unlock()

	d.syncBackend()
	return h, nil
}

// PlaySound creates a reader of s and plays it.
func (d *Device) PlaySound(s audio.Sound, keep bool) (*Handle, error) {
	r, err := s.CreateReader()
	if err != nil {
		return nil, err
	}
	return d.Play(r, keep)
}

// StopAll stops every voice.
func (d *Device) StopAll() {
	d.mu.Lock()
	for _, h := range slices.Concat(d.playing, d.paused) {
		h.status = StatusInvalid
	}
	d.playing = nil
	d.paused = nil
	d.mu.Unlock()

	d.syncBackend()
}

// Handles returns the playing voices followed by the paused ones.
func (d *Device) Handles() []*Handle {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Concat(d.playing, d.paused)
}

// Playing returns the number of playing voices.
func (d *Device) Playing() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.playing)
}

func (d *Device) ListenerLocation() Vector3 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.listenerLocation
}

func (d *Device) SetListenerLocation(v Vector3) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listenerLocation = v
}

func (d *Device) ListenerVelocity() Vector3 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.listenerVelocity
}

func (d *Device) SetListenerVelocity(v Vector3) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listenerVelocity = v
}

func (d *Device) ListenerOrientation() Quaternion {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.listenerOrientation
}

func (d *Device) SetListenerOrientation(q Quaternion) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listenerOrientation = q
}

func (d *Device) SpeedOfSound() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.speedOfSound
}

// SetSpeedOfSound sets the speed used for Doppler shifts. Non-positive
// values are ignored.
func (d *Device) SetSpeedOfSound(speed float64) {
	if speed <= 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.speedOfSound = speed
}

func (d *Device) DopplerFactor() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dopplerFactor
}

// SetDopplerFactor scales the Doppler effect; 0 disables it. Negative
// values are ignored.
func (d *Device) SetDopplerFactor(factor float64) {
	if factor < 0 {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dopplerFactor = factor
}

func (d *Device) DistanceModel() DistanceModel {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.distanceModel
}

func (d *Device) SetDistanceModel(m DistanceModel) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.distanceModel = m
}

// Mix renders the next len(out)/channels frames of every playing voice into
// out. It is the audio callback entry point.
func (d *Device) Mix(out []float32) {
	d.mixMu.Lock()
	d.mu.Lock()

	specs := d.specs
	ch := int(specs.Channels)
	frames := len(out) / ch
	d.mixer.Clear(frames)
	d.buffer.AssureSize(frames*ch, false)
	buf := d.buffer.Samples()

	var ended []*Handle
	var callbacks []func()

	for _, h := range d.playing {
		h.update()
		if d.mixVoice(h, buf, frames) {
			ended = append(ended, h)
			if h.stopCallback != nil {
				callbacks = append(callbacks, h.stopCallback)
			}
		}
	}

	d.mixer.Read(out, d.volume)

	for _, h := range ended {
		if h.keep {
			h.pauseLocked(StatusStopped)
		} else {
			h.stopLocked()
		}
	}

	d.mu.Unlock()
	d.mixMu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
	if len(ended) > 0 {
		d.syncBackend()
	}
}

// mixVoice mixes one voice into the mixer and reports whether it ended.
func (d *Device) mixVoice(h *Handle, buf []float32, frames int) bool {
	ch := int(d.specs.Channels)
	// volAt interpolates the volume across the whole block so segments
	// split at loop points ramp continuously.
	volAt := func(frame int) float64 {
		return h.oldVolume + (h.volume-h.oldVolume)*float64(frame)/float64(frames)
	}

	pos := 0
	n, eos := d.readVoice(h, buf[:frames*ch])
	for eos && h.loopCount != 0 && pos+n < frames {
		d.mixer.Mix(buf, pos, n, volAt(pos+n), volAt(pos))
		pos += n

		if h.loopCount > 0 {
			h.loopCount--
		}
		if err := h.head.Seek(0); err != nil {
			d.logger.Printf("device: voice %d: loop: %v", h.id, err)
			return true
		}
		n, eos = d.readVoice(h, buf[:(frames-pos)*ch])
		if n == 0 {
			// An empty pass would loop forever.
			break
		}
	}
	d.mixer.Mix(buf, pos, n, volAt(pos+n), volAt(pos))

	return eos && h.loopCount == 0
}

// readVoice reads from a voice chain. Errors other than io.EOF are logged
// and count as an empty read.
func (d *Device) readVoice(h *Handle, buf []float32) (int, bool) {
	n, err := h.head.Read(buf)
	if err == nil {
		return n, false
	}
	if errors.Is(err, io.EOF) {
		return n, true
	}
	d.logger.Printf("device: voice %d: %v", h.id, err)
	return 0, false
}
