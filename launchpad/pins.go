// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package launchpad

import "periph.io/x/tiva/v3/lm4f"

// Named pins.
const (
	Push2    = 17
	RedLED   = 30
	Push1    = 31
	GreenLED = 39
	BlueLED  = 40
)

// NumPins is the highest logical pin number.
const NumPins = 40

type entry struct {
	port  lm4f.Port
	bit   uint8
	timer lm4f.Timer
	adc   lm4f.ADCChannel
}

func gp(p lm4f.Port, bit uint8) entry {
	return entry{port: p, bit: bit, timer: lm4f.NotOnTimer, adc: lm4f.NotOnADC}
}

func (e entry) t(t lm4f.Timer) entry {
	e.timer = t
	return e
}

func (e entry) ain(c lm4f.ADCChannel) entry {
	e.adc = c
	return e
}

// table is indexed by logical pin; the zero entry is unmapped.
var table = [NumPins + 1]entry{
	// J1
	2:  gp(lm4f.PB, 5).t(lm4f.T1B).ain(11),
	3:  gp(lm4f.PB, 0).t(lm4f.T2A),
	4:  gp(lm4f.PB, 1).t(lm4f.T2B),
	5:  gp(lm4f.PE, 4).ain(9),
	6:  gp(lm4f.PE, 5).ain(8),
	7:  gp(lm4f.PB, 4).t(lm4f.T1A).ain(10),
	8:  gp(lm4f.PA, 5),
	9:  gp(lm4f.PA, 6),
	10: gp(lm4f.PA, 7),
	// J2
	11: gp(lm4f.PA, 2),
	12: gp(lm4f.PA, 3),
	13: gp(lm4f.PA, 4),
	14: gp(lm4f.PB, 6).t(lm4f.T0A),
	15: gp(lm4f.PB, 7).t(lm4f.T0B),
	17: gp(lm4f.PF, 0).t(lm4f.T0A),
	18: gp(lm4f.PE, 0).ain(3),
	19: gp(lm4f.PB, 2).t(lm4f.T3A),
	// J3
	23: gp(lm4f.PD, 0).t(lm4f.WT2A).ain(7),
	24: gp(lm4f.PD, 1).t(lm4f.WT2B).ain(6),
	25: gp(lm4f.PD, 2).t(lm4f.WT3A).ain(5),
	26: gp(lm4f.PD, 3).t(lm4f.WT3B).ain(4),
	27: gp(lm4f.PE, 1).ain(2),
	28: gp(lm4f.PE, 2).ain(1),
	29: gp(lm4f.PE, 3).ain(0),
	30: gp(lm4f.PF, 1).t(lm4f.T0B),
	// J4
	31: gp(lm4f.PF, 4).t(lm4f.T2A),
	32: gp(lm4f.PD, 7).t(lm4f.WT5B),
	33: gp(lm4f.PD, 6).t(lm4f.WT5A),
	34: gp(lm4f.PC, 7).t(lm4f.WT1B),
	35: gp(lm4f.PC, 6).t(lm4f.WT1A),
	36: gp(lm4f.PC, 5).t(lm4f.WT0B),
	37: gp(lm4f.PC, 4).t(lm4f.WT0A),
	38: gp(lm4f.PB, 3).t(lm4f.T3B),
	39: gp(lm4f.PF, 3).t(lm4f.T1B),
	40: gp(lm4f.PF, 2).t(lm4f.T1A),
}

// pinMap implements lm4f.PinMap over table.
type pinMap struct{}

// Pins is the LaunchPad pin table.
var Pins lm4f.PinMap = pinMap{}

func lookup(n int) (entry, bool) {
	if n < 0 || n > NumPins || table[n].port == lm4f.NotAPort {
		return entry{}, false
	}
	return table[n], true
}

func (pinMap) BitMask(n int) uint8 {
	if e, ok := lookup(n); ok {
		return 1 << e.bit
	}
	return 0
}

func (pinMap) Port(n int) lm4f.Port {
	if e, ok := lookup(n); ok {
		return e.port
	}
	return lm4f.NotAPort
}

func (pinMap) Timer(n int) lm4f.Timer {
	if e, ok := lookup(n); ok {
		return e.timer
	}
	return lm4f.NotOnTimer
}

func (pinMap) ADCChannel(n int) lm4f.ADCChannel {
	if e, ok := lookup(n); ok {
		return e.adc
	}
	return lm4f.NotOnADC
}
