// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm4f

import "math/bits"

// Port is a GPIO port.
type Port uint8

// GPIO ports. NotAPort is the PinMap sentinel for an unmapped pin.
const (
	NotAPort Port = iota
	PA
	PB
	PC
	PD
	PE
	PF
)

// APB aperture of each port, indexed by Port.
var portBases = [...]uint32{
	PA: 0x40004000,
	PB: 0x40005000,
	PC: 0x40006000,
	PD: 0x40007000,
	PE: 0x40024000,
	PF: 0x40025000,
}

// Valid returns true if p is an existing port.
func (p Port) Valid() bool {
	return p != NotAPort && int(p) < len(portBases)
}

// Base returns the register base address of p, or 0 for an invalid port.
func (p Port) Base() uint32 {
	if !p.Valid() {
		return 0
	}
	return portBases[p]
}

func (p Port) String() string {
	if !p.Valid() {
		return "NotAPort"
	}
	return "P" + string(rune('A'+p-PA))
}

// ADCChannel is an analog input channel (AINn).
type ADCChannel uint8

// NotOnADC is the PinMap sentinel for a pin without analog input.
const NotOnADC ADCChannel = 0xFF

// numADCChannels is the number of AIN inputs on ADC0.
const numADCChannels = 12

// Valid returns true if c is an existing channel.
func (c ADCChannel) Valid() bool {
	return c < numADCChannels
}

// PinMap translates logical board pin numbers into hardware resources.
//
// Lookups on unknown pins return the sentinels NotAPort, NotOnTimer and
// NotOnADC, and 0 for the bit mask.
type PinMap interface {
	BitMask(pin int) uint8
	Port(pin int) Port
	Timer(pin int) Timer
	ADCChannel(pin int) ADCChannel
}

// ccpFunc is the alternate function number of every timer CCP pin.
const ccpFunc = 7

// timerMux returns the GPIOPinConfigure word routing port/bit to its timer.
func timerMux(p Port, mask uint8) uint32 {
	n := uint32(bits.TrailingZeros8(mask))
	return uint32(p-PA)<<16 | (n*4)<<8 | ccpFunc
}
