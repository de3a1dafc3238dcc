// SPDX-License-Identifier: EPL-2.0

//go:build headless

package oto

import (
	"log"
	"time"

	"github.com/ik5/audmix/device"
)

type Options struct {
	BufferSize time.Duration
	Logger     *log.Logger
}

// Backend is never constructed in headless builds.
type Backend struct{}

func New(*device.Device, Options) (*Backend, error) { return nil, ErrHeadless }

func (*Backend) Playing(bool) {}
func (*Backend) Close() error { return nil }
