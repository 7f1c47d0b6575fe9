// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bridge

import (
	"fmt"

	"github.com/tarm/serial"
)

// DefaultBaud is the link speed of the LaunchPad debug UART.
const DefaultBaud = 115200

// Open opens the serial device connected to a target running Serve.
//
// baud 0 selects DefaultBaud.
func Open(device string, baud int, opts *Opts) (*Conn, error) {
	if baud == 0 {
		baud = DefaultBaud
	}
	p, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("bridge: failed to open %s: %w", device, err)
	}
	return New(p, opts), nil
}
