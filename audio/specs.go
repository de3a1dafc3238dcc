// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Channels is the number of interleaved channels in a stream.
type Channels int

const (
	ChannelsInvalid    Channels = 0
	ChannelsMono       Channels = 1
	ChannelsStereo     Channels = 2
	ChannelsStereoLFE  Channels = 3
	ChannelsSurround4  Channels = 4
	ChannelsSurround5  Channels = 5
	ChannelsSurround51 Channels = 6
	ChannelsSurround61 Channels = 7
	ChannelsSurround71 Channels = 8
)

// MaxChannels is the largest supported channel layout.
const MaxChannels = int(ChannelsSurround71)

func (c Channels) String() string {
	switch c {
	case ChannelsMono:
		return "mono"
	case ChannelsStereo:
		return "stereo"
	case ChannelsStereoLFE:
		return "stereo+lfe"
	case ChannelsSurround4:
		return "surround4"
	case ChannelsSurround5:
		return "surround5"
	case ChannelsSurround51:
		return "surround5.1"
	case ChannelsSurround61:
		return "surround6.1"
	case ChannelsSurround71:
		return "surround7.1"
	}
	return fmt.Sprintf("channels(%d)", int(c))
}

// Specs describes the format of a stream.
type Specs struct {
	// Rate in Hz. Not necessarily integral: a pitched reader reports rate*pitch.
	Rate float64
	// Channels per frame.
	Channels Channels
}

// Valid reports whether the specs describe a playable stream.
func (s Specs) Valid() bool {
	return s.Rate > 0 && s.Channels > ChannelsInvalid && int(s.Channels) <= MaxChannels
}

// Samples returns the number of interleaved samples held by frames frames.
func (s Specs) Samples(frames int) int {
	return frames * int(s.Channels)
}

// Frames returns how many whole frames fit into a buffer of n samples.
func (s Specs) Frames(n int) int {
	if s.Channels <= 0 {
		return 0
	}
	return n / int(s.Channels)
}

func (s Specs) String() string {
	return fmt.Sprintf("%gHz %s", s.Rate, s.Channels)
}
