// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package launchpad

import (
	"testing"

	"periph.io/x/tiva/v3/lm4f"
)

func TestPins(t *testing.T) {
	data := []struct {
		n     int
		port  lm4f.Port
		mask  uint8
		timer lm4f.Timer
		adc   lm4f.ADCChannel
	}{
		{1, lm4f.NotAPort, 0, lm4f.NotOnTimer, lm4f.NotOnADC},
		{2, lm4f.PB, 1 << 5, lm4f.T1B, 11},
		{8, lm4f.PA, 1 << 5, lm4f.NotOnTimer, lm4f.NotOnADC},
		{16, lm4f.NotAPort, 0, lm4f.NotOnTimer, lm4f.NotOnADC},
		{Push2, lm4f.PF, 1 << 0, lm4f.T0A, lm4f.NotOnADC},
		{23, lm4f.PD, 1 << 0, lm4f.WT2A, 7},
		{29, lm4f.PE, 1 << 3, lm4f.NotOnTimer, 0},
		{RedLED, lm4f.PF, 1 << 1, lm4f.T0B, lm4f.NotOnADC},
		{Push1, lm4f.PF, 1 << 4, lm4f.T2A, lm4f.NotOnADC},
		{37, lm4f.PC, 1 << 4, lm4f.WT0A, lm4f.NotOnADC},
		{GreenLED, lm4f.PF, 1 << 3, lm4f.T1B, lm4f.NotOnADC},
		{BlueLED, lm4f.PF, 1 << 2, lm4f.T1A, lm4f.NotOnADC},
		{0, lm4f.NotAPort, 0, lm4f.NotOnTimer, lm4f.NotOnADC},
		{-1, lm4f.NotAPort, 0, lm4f.NotOnTimer, lm4f.NotOnADC},
		{41, lm4f.NotAPort, 0, lm4f.NotOnTimer, lm4f.NotOnADC},
	}
	for _, line := range data {
		if p := Pins.Port(line.n); p != line.port {
			t.Errorf("Port(%d) = %s", line.n, p)
		}
		if m := Pins.BitMask(line.n); m != line.mask {
			t.Errorf("BitMask(%d) = %#x", line.n, m)
		}
		if tm := Pins.Timer(line.n); tm != line.timer {
			t.Errorf("Timer(%d) = %s", line.n, tm)
		}
		if c := Pins.ADCChannel(line.n); c != line.adc {
			t.Errorf("ADCChannel(%d) = %d", line.n, c)
		}
	}
}

func TestPins_consistent(t *testing.T) {
	gpios := map[string]int{}
	adcs := map[lm4f.ADCChannel]int{}
	mapped := 0
	for n := 1; n <= NumPins; n++ {
		port := Pins.Port(n)
		if !port.Valid() {
			if _, ok := unmapped[n]; !ok {
				t.Errorf("pin %d is neither mapped nor power", n)
			}
			continue
		}
		mapped++
		key := port.String() + string(rune('0'+table[n].bit))
		if o, ok := gpios[key]; ok {
			t.Errorf("%s on pins %d and %d", key, o, n)
		}
		gpios[key] = n
		if tm := Pins.Timer(n); tm != lm4f.NotOnTimer && !tm.Valid() {
			t.Errorf("pin %d: invalid timer %s", n, tm)
		}
		if c := Pins.ADCChannel(n); c != lm4f.NotOnADC {
			if !c.Valid() {
				t.Errorf("pin %d: invalid channel %d", n, c)
			}
			if o, ok := adcs[c]; ok {
				t.Errorf("AIN%d on pins %d and %d", c, o, n)
			}
			adcs[c] = n
		}
	}
	if mapped != NumPins-len(unmapped) {
		t.Errorf("%d mapped pins", mapped)
	}
	if len(adcs) != 12 {
		t.Errorf("%d analog channels", len(adcs))
	}
}
