// SPDX-License-Identifier: EPL-2.0

package fx_test

import (
	"fmt"

	"github.com/ik5/audmix/fx"
	"github.com/ik5/audmix/internal/audiotest"
	"github.com/ik5/audmix/source"
)

// Example_chain builds a looped, faded tone and drains it.
func Example_chain() {
	tone := fx.Limit(source.Sine(440, 44100), 0, 1)
	sound := fx.FadeOut(fx.Loop(tone, 2), 1.5, 0.5)

	r, err := sound.CreateReader()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("Specs: %v\n", r.Specs())
	fmt.Printf("Length: %d frames\n", r.Length())

	out, _ := audiotest.ReadAll(r, 4096, 0)
	fmt.Printf("Read: %d frames\n", len(out))
	// Output:
	// Specs: 44100Hz mono
	// Length: 88200 frames
	// Read: 132300 frames
}

// Example_delay shows the silence a delay prepends.
func Example_delay() {
	r := fx.NewDelayReader(audiotest.NewConstantReader(10, 1, 3, 1), 0.2)

	buf := make([]float32, 5)
	n, _ := r.Read(buf)
	fmt.Println(n, buf)
	// Output:
	// 5 [0 0 1 1 1]
}
