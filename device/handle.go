// SPDX-License-Identifier: EPL-2.0

package device

import (
	"math"
	"slices"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/fx"
	"github.com/ik5/audmix/resample"
)

// Status is the lifecycle state of a Handle.
type Status int

const (
	// StatusInvalid handles were stopped and dropped by the device.
	StatusInvalid Status = iota
	StatusPlaying
	StatusPaused
	// StatusStopped handles reached their end with keep set. They stay
	// paused and can be revived with Seek or SetLoopCount.
	StatusStopped
)

func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusStopped:
		return "stopped"
	}
	return "invalid"
}

// maxDopplerPitch caps the pitch of a source approaching at or above the
// speed of sound.
const maxDopplerPitch = 16

// Handle is one voice of a Device. Its methods are safe for concurrent use.
// Once the handle is invalid, operations return false and getters NaN or
// zero values.
type Handle struct {
	device *Device
	id     uint64

	source    audio.Reader
	pitch     *fx.PitchReader
	resampler resample.Reader
	mapper    *ChannelMapperReader
	head      audio.Reader

	status       Status
	keep         bool
	loopCount    int
	stopCallback func()

	userVolume float64
	userPitch  float64
	userPan    float64
	volume     float64
	oldVolume  float64

	location    Vector3
	velocity    Vector3
	orientation Quaternion
	relative    bool

	volumeMax         float64
	volumeMin         float64
	distanceMax       float64
	distanceReference float64
	attenuation       float64
	coneAngleOuter    float64 // degrees, full cone
	coneAngleInner    float64
	coneVolumeOuter   float64
}

func newHandle(d *Device, id uint64, r audio.Reader, pitch *fx.PitchReader, rs resample.Reader, mapper *ChannelMapperReader, keep bool) *Handle {
	return &Handle{
		device:            d,
		id:                id,
		source:            r,
		pitch:             pitch,
		resampler:         rs,
		mapper:            mapper,
		head:              mapper,
		status:            StatusPlaying,
		keep:              keep,
		userVolume:        1,
		userPitch:         1,
		volume:            1,
		oldVolume:         1,
		orientation:       IdentityQuaternion,
		volumeMax:         1,
		distanceMax:       math.MaxFloat32,
		distanceReference: 1,
		attenuation:       1,
		coneAngleOuter:    360,
		coneAngleInner:    360,
		coneVolumeOuter:   1,
	}
}

// ID returns the device-unique voice id.
func (h *Handle) ID() uint64 { return h.id }

func (h *Handle) Status() Status {
	h.device.mu.Lock()
	defer h.device.mu.Unlock()
	return h.status
}

// do runs fn under the device lock if the handle is still valid.
func (h *Handle) do(fn func()) bool {
	h.device.mu.Lock()
	defer h.device.mu.Unlock()
	if h.status == StatusInvalid {
		return false
	}
	fn()
	return true
}

// get reads a float under the device lock; NaN when invalid.
func (h *Handle) get(fn func() float64) float64 {
	h.device.mu.Lock()
	defer h.device.mu.Unlock()
	if h.status == StatusInvalid {
		return math.NaN()
	}
	return fn()
}

func remove(list []*Handle, h *Handle) []*Handle {
	if i := slices.Index(list, h); i >= 0 {
		return slices.Delete(list, i, i+1)
	}
	return list
}

// pauseLocked moves a playing voice to the paused list with status.
func (h *Handle) pauseLocked(status Status) bool {
	if h.status != StatusPlaying {
		return false
	}
	d := h.device
	d.playing = remove(d.playing, h)
	d.paused = append(d.paused, h)
	h.status = status
	return true
}

func (h *Handle) stopLocked() bool {
	if h.status == StatusInvalid {
		return false
	}
	d := h.device
	d.playing = remove(d.playing, h)
	d.paused = remove(d.paused, h)
	h.status = StatusInvalid
	return true
}

// Pause pauses a playing voice.
func (h *Handle) Pause() bool {
	h.device.mu.Lock()
	ok := h.pauseLocked(StatusPaused)
	h.device.mu.Unlock()
	if ok {
		h.device.syncBackend()
	}
	return ok
}

// Resume continues a paused voice. Stopped voices are revived by Seek or
// SetLoopCount first.
func (h *Handle) Resume() bool {
	d := h.device
	d.mu.Lock()
	ok := h.status == StatusPaused
	if ok {
		d.paused = remove(d.paused, h)
		d.playing = append(d.playing, h)
		h.status = StatusPlaying
	}
	d.mu.Unlock()
	if ok {
		d.syncBackend()
	}
	return ok
}

// Stop drops the voice. It returns false if the voice was already invalid.
// The stop callback is not called.
func (h *Handle) Stop() bool {
	h.device.mu.Lock()
	ok := h.stopLocked()
	h.device.mu.Unlock()
	if ok {
		h.device.syncBackend()
	}
	return ok
}

func (h *Handle) Keep() bool {
	h.device.mu.Lock()
	defer h.device.mu.Unlock()
	return h.status != StatusInvalid && h.keep
}

func (h *Handle) SetKeep(keep bool) bool {
	return h.do(func() { h.keep = keep })
}

// Seek moves the voice to seconds at the device rate. A stopped voice
// becomes paused.
func (h *Handle) Seek(seconds float64) bool {
	ok := false
	h.do(func() {
		if err := h.head.Seek(int(seconds * h.device.specs.Rate)); err != nil {
			h.device.logger.Printf("device: voice %d: seek: %v", h.id, err)
			return
		}
		if h.status == StatusStopped {
			h.status = StatusPaused
		}
		ok = true
	})
	return ok
}

// Position returns the playback position in seconds.
func (h *Handle) Position() float64 {
	return h.get(func() float64 {
		return float64(h.head.Position()) / h.device.specs.Rate
	})
}

// LoopCount returns the remaining loops; negative is endless.
func (h *Handle) LoopCount() int {
	h.device.mu.Lock()
	defer h.device.mu.Unlock()
	if h.status == StatusInvalid {
		return 0
	}
	return h.loopCount
}

// SetLoopCount sets how many more times the voice restarts at its end. A
// stopped voice becomes paused.
func (h *Handle) SetLoopCount(count int) bool {
	return h.do(func() {
		if h.status == StatusStopped {
			h.status = StatusPaused
		}
		h.loopCount = count
	})
}

// SetStopCallback registers fn to run once each time the voice reaches its
// natural end. It runs on the mixing goroutine without device locks held.
func (h *Handle) SetStopCallback(fn func()) bool {
	return h.do(func() { h.stopCallback = fn })
}

func (h *Handle) Volume() float64 { return h.get(func() float64 { return h.userVolume }) }

// SetVolume sets the voice volume. Negative values are ignored.
func (h *Handle) SetVolume(volume float64) bool {
	return h.do(func() {
		if volume >= 0 {
			h.userVolume = volume
		}
	})
}

func (h *Handle) Pitch() float64 { return h.get(func() float64 { return h.userPitch }) }

// SetPitch sets the pitch factor. Values <= 0 are ignored.
func (h *Handle) SetPitch(pitch float64) bool {
	return h.do(func() {
		if pitch > 0 {
			h.userPitch = pitch
		}
	})
}

func (h *Handle) Pan() float64 { return h.get(func() float64 { return h.userPan }) }

// SetPan places a mono voice between -1 (left) and 1 (right) when no 3D
// direction applies.
func (h *Handle) SetPan(pan float64) bool {
	return h.do(func() { h.userPan = max(min(pan, 1), -1) })
}

func (h *Handle) Location() Vector3 {
	var v Vector3
	h.do(func() { v = h.location })
	return v
}

func (h *Handle) SetLocation(v Vector3) bool { return h.do(func() { h.location = v }) }

func (h *Handle) Velocity() Vector3 {
	var v Vector3
	h.do(func() { v = h.velocity })
	return v
}

func (h *Handle) SetVelocity(v Vector3) bool { return h.do(func() { h.velocity = v }) }

func (h *Handle) Orientation() Quaternion {
	var q Quaternion
	h.do(func() { q = h.orientation })
	return q
}

func (h *Handle) SetOrientation(q Quaternion) bool { return h.do(func() { h.orientation = q }) }

// Relative reports whether the location is relative to the listener.
func (h *Handle) Relative() bool {
	var rel bool
	h.do(func() { rel = h.relative })
	return rel
}

func (h *Handle) SetRelative(relative bool) bool { return h.do(func() { h.relative = relative }) }

func (h *Handle) VolumeMax() float64 { return h.get(func() float64 { return h.volumeMax }) }

func (h *Handle) SetVolumeMax(v float64) bool {
	return h.do(func() {
		if v >= 0 {
			h.volumeMax = v
		}
	})
}

func (h *Handle) VolumeMin() float64 { return h.get(func() float64 { return h.volumeMin }) }

func (h *Handle) SetVolumeMin(v float64) bool {
	return h.do(func() {
		if v >= 0 {
			h.volumeMin = v
		}
	})
}

func (h *Handle) DistanceMax() float64 { return h.get(func() float64 { return h.distanceMax }) }

func (h *Handle) SetDistanceMax(v float64) bool {
	return h.do(func() {
		if v >= 0 {
			h.distanceMax = v
		}
	})
}

func (h *Handle) DistanceReference() float64 {
	return h.get(func() float64 { return h.distanceReference })
}

func (h *Handle) SetDistanceReference(v float64) bool {
	return h.do(func() {
		if v >= 0 {
			h.distanceReference = v
		}
	})
}

func (h *Handle) Attenuation() float64 { return h.get(func() float64 { return h.attenuation }) }

func (h *Handle) SetAttenuation(v float64) bool {
	return h.do(func() {
		if v >= 0 {
			h.attenuation = v
		}
	})
}

func (h *Handle) ConeAngleOuter() float64 { return h.get(func() float64 { return h.coneAngleOuter }) }

// SetConeAngleOuter sets the full outer cone angle in degrees.
func (h *Handle) SetConeAngleOuter(deg float64) bool {
	return h.do(func() { h.coneAngleOuter = deg })
}

func (h *Handle) ConeAngleInner() float64 { return h.get(func() float64 { return h.coneAngleInner }) }

// SetConeAngleInner sets the full inner cone angle in degrees.
func (h *Handle) SetConeAngleInner(deg float64) bool {
	return h.do(func() { h.coneAngleInner = deg })
}

func (h *Handle) ConeVolumeOuter() float64 { return h.get(func() float64 { return h.coneVolumeOuter }) }

func (h *Handle) SetConeVolumeOuter(v float64) bool {
	return h.do(func() {
		if v >= 0 {
			h.coneVolumeOuter = v
		}
	})
}

// update recomputes pitch, volume and pan from the 3D state. Called by Mix
// with the device lock held.
func (h *Handle) update() {
	d := h.device
	h.oldVolume = h.volume

	if h.source.Specs().Channels != audio.ChannelsMono {
		h.pitch.SetPitch(h.userPitch)
		h.volume = h.userVolume
		return
	}

	var sl Vector3 // from the source to the listener
	listenerVelocity := d.listenerVelocity
	if h.relative {
		sl = h.location.Neg()
		listenerVelocity = Vector3{}
	} else {
		sl = d.listenerLocation.Sub(h.location)
	}
	distance := sl.Length()

	// Doppler
	pitch := h.userPitch
	if d.dopplerFactor > 0 && distance > 0 {
		vls := sl.Dot(listenerVelocity) / distance
		vss := sl.Dot(h.velocity) / distance
		limit := d.speedOfSound / d.dopplerFactor
		if vss >= limit {
			pitch *= maxDopplerPitch
		} else {
			vls = min(vls, limit)
			pitch *= (d.speedOfSound - d.dopplerFactor*vls) / (d.speedOfSound - d.dopplerFactor*vss)
		}
	}
	h.pitch.SetPitch(pitch)

	// Distance
	volume := d.distanceModel.gain(distance, distanceParams{
		reference:   h.distanceReference,
		max:         h.distanceMax,
		attenuation: h.attenuation,
	})

	// Cone
	if distance > 0 && h.coneAngleInner < 360 {
		z := h.orientation.LookAt()
		if zl := z.Length(); zl > 0 {
			cos := max(min(z.Dot(sl)/(zl*distance), 1), -1)
			angle := 2 * math.Acos(cos) * 180 / math.Pi // full cone angle
			if span := h.coneAngleOuter - h.coneAngleInner; angle > h.coneAngleInner {
				t := 1.0
				if span > 0 {
					t = min((angle-h.coneAngleInner)/span, 1)
				}
				volume *= 1 + t*(h.coneVolumeOuter-1)
			}
		}
	}

	volume = max(min(volume, h.volumeMax), h.volumeMin)
	h.volume = volume * h.userVolume

	// Pan
	orientation := d.listenerOrientation
	if h.relative {
		orientation = IdentityQuaternion
	}
	z := orientation.LookAt()
	n := orientation.Up()
	a := n.Scale(sl.Dot(n) / n.Dot(n)).Sub(sl)
	if a.Dot(a) == 0 {
		h.mapper.SetMonoAngle(h.userPan * math.Pi / 2)
		return
	}
	phi := math.Acos(max(min(z.Dot(a)/(z.Length()*a.Length()), 1), -1))
	if n.Cross(z).Dot(a) > 0 {
		phi = -phi
	}
	h.mapper.SetMonoAngle(phi)
}
