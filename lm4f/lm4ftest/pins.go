// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm4ftest

import "periph.io/x/tiva/v3/lm4f"

// PinDesc describes the resources of one logical pin.
type PinDesc struct {
	Port  lm4f.Port
	Bit   uint8
	Timer lm4f.Timer
	ADC   lm4f.ADCChannel
}

// Digital returns a plain GPIO pin description.
func Digital(p lm4f.Port, bit uint8) PinDesc {
	return PinDesc{Port: p, Bit: bit, Timer: lm4f.NotOnTimer, ADC: lm4f.NotOnADC}
}

// OnTimer returns d routed to timer t.
func (d PinDesc) OnTimer(t lm4f.Timer) PinDesc {
	d.Timer = t
	return d
}

// OnADC returns d routed to analog channel c.
func (d PinDesc) OnADC(c lm4f.ADCChannel) PinDesc {
	d.ADC = c
	return d
}

// Pins implements lm4f.PinMap over a map.
type Pins map[int]PinDesc

// BitMask implements lm4f.PinMap.
func (p Pins) BitMask(pin int) uint8 {
	d, ok := p[pin]
	if !ok || !d.Port.Valid() {
		return 0
	}
	return 1 << d.Bit
}

// Port implements lm4f.PinMap.
func (p Pins) Port(pin int) lm4f.Port {
	if d, ok := p[pin]; ok {
		return d.Port
	}
	return lm4f.NotAPort
}

// Timer implements lm4f.PinMap.
func (p Pins) Timer(pin int) lm4f.Timer {
	if d, ok := p[pin]; ok {
		return d.Timer
	}
	return lm4f.NotOnTimer
}

// ADCChannel implements lm4f.PinMap.
func (p Pins) ADCChannel(pin int) lm4f.ADCChannel {
	if d, ok := p[pin]; ok {
		return d.ADC
	}
	return lm4f.NotOnADC
}

var _ lm4f.PinMap = Pins{}
