// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package launchpad

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"periph.io/x/conn/v3/driver/driverreg"
	"periph.io/x/tiva/v3/bridge"
	"periph.io/x/tiva/v3/lm4f"
)

// Environment variables read by the driver.
const (
	EnvDevice = "TIVA_BRIDGE"
	EnvBaud   = "TIVA_BRIDGE_BAUD"
)

// Default returns the board found by host.Init(), or nil.
func Default() *lm4f.Dev {
	drv.mu.Lock()
	defer drv.mu.Unlock()
	return drv.dev
}

// driver implements driver.Impl.
type driver struct {
	mu  sync.Mutex
	dev *lm4f.Dev
	// open is mocked in tests.
	open func(device string, baud int) (lm4f.Driver, error)
}

func (d *driver) String() string {
	return "launchpad"
}

func (d *driver) Prerequisites() []string {
	return nil
}

func (d *driver) After() []string {
	return nil
}

func (d *driver) Init() (bool, error) {
	device := os.Getenv(EnvDevice)
	if device == "" {
		return false, errors.New(EnvDevice + " is not set")
	}
	baud := bridge.DefaultBaud
	if s := os.Getenv(EnvBaud); s != "" {
		b, err := strconv.Atoi(s)
		if err != nil || b <= 0 {
			return true, fmt.Errorf("launchpad: invalid %s %q", EnvBaud, s)
		}
		baud = b
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	l, err := d.open(device, baud)
	if err != nil {
		return true, err
	}
	dev, err := lm4f.New(l, Pins, nil)
	if err == nil {
		err = Register(dev)
	}
	if err != nil {
		if c, ok := l.(io.Closer); ok {
			_ = c.Close()
		}
		return true, err
	}
	d.dev = dev
	return true, nil
}

func (d *driver) reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.dev = nil
	d.open = openBridge
}

func openBridge(device string, baud int) (lm4f.Driver, error) {
	return bridge.Open(device, baud, nil)
}

func init() {
	drv.reset()
	driverreg.MustRegister(&drv)
}

var drv driver
