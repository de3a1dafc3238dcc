// SPDX-License-Identifier: EPL-2.0

package device_test

import (
	"fmt"

	"github.com/ik5/audmix/audio"
	"github.com/ik5/audmix/device"
	"github.com/ik5/audmix/fx"
	"github.com/ik5/audmix/source"
)

func ExampleDevice_Play() {
	d, err := device.New(device.Options{
		Specs: audio.Specs{Rate: 44100, Channels: audio.ChannelsStereo},
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	h, err := d.PlaySound(fx.Limit(source.Sine(440, 44100), 0, 0.5), false)
	if err != nil {
		fmt.Println(err)
		return
	}
	h.SetStopCallback(func() { fmt.Println("done") })

	out := make([]float32, 1024*2)
	for d.Playing() > 0 {
		d.Mix(out)
	}
	fmt.Println(h.Status())
	// Output:
	// done
	// invalid
}
