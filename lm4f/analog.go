// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm4f

import "periph.io/x/conn/v3/physic"

// Fixed parameters of AnalogWrite.
const (
	AnalogWriteResolution = 255
	AnalogWriteFrequency  = 490
)

// ADC full scale.
const (
	SampleMax = 4095
	VRef      = 3300 * physic.MilliVolt
)

// Reference selects the ADC voltage reference.
type Reference uint8

// References accepted by AnalogReference.
const (
	RefDefault Reference = iota
	RefInternal
	RefExternal
)

// AnalogWrite outputs value/255 at 490Hz on pin.
func (d *Dev) AnalogWrite(pin int, value uint32) error {
	return d.WritePWM(pin, AnalogWriteResolution, value, AnalogWriteFrequency)
}

// AnalogReference does nothing: ADC0 always converts against VDDA, which
// the board wires to 3.3V.
func (d *Dev) AnalogReference(mode Reference) {
}

// Volts converts a raw sample to the voltage at the pin.
func Volts(raw uint16) physic.ElectricPotential {
	return physic.ElectricPotential(raw) * VRef / SampleMax
}
