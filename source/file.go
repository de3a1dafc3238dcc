// SPDX-License-Identifier: EPL-2.0

package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ik5/audmix/audio"
)

// File returns a Sound that decodes path on every CreateReader, choosing the
// decoder from reg by the lower-cased file extension. The file is read
// into memory first, so the reader holds no descriptor.
func File(path string, reg *audio.Registry) audio.Sound {
	return audio.SoundFunc(func() (audio.Reader, error) {
		format := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
		dec, ok := reg.Get(format)
		if !ok {
			return nil, fmt.Errorf("%s: %w: %q", path, audio.ErrUnknownFormat, format)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		r, err := dec.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return r, nil
	})
}
