// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm4f

import (
	"errors"
	"strconv"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin"
)

// Functions a Pin can be set to, besides gpio.OUT.
const (
	FuncPWM pin.Func = "PWM"
	FuncADC pin.Func = "ADC"
)

// pinState is the last function a pin was programmed for.
type pinState uint8

const (
	stateNone pinState = iota
	stateLow
	stateHigh
	statePWM
	stateADC
)

func (d *Dev) setState(n int, s pinState) {
	d.mu.Lock()
	d.funcs[n] = s
	d.mu.Unlock()
}

func (d *Dev) state(n int) pinState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.funcs[n]
}

// Pin is one logical board pin of a Dev.
//
// It implements gpio.PinOut, analog.PinADC and pin.PinFunc. It is
// stateless; the Dev remembers what the pin was last set to.
type Pin struct {
	d   *Dev
	num int
}

// Pin returns the logical pin n of d. Lookups are lazy; an unmapped pin
// fails on use.
func (d *Dev) Pin(n int) *Pin {
	return &Pin{d: d, num: n}
}

// String implements conn.Resource.
func (p *Pin) String() string {
	return p.Name() + "(" + strconv.Itoa(p.num) + ")"
}

// Halt implements conn.Resource.
func (p *Pin) Halt() error {
	return nil
}

// Name implements pin.Pin.
//
// It is the GPIO name, like "PF1", or "LP_<n>" for a pin without port.
func (p *Pin) Name() string {
	port := p.d.pins.Port(p.num)
	mask := p.d.pins.BitMask(p.num)
	if !port.Valid() || mask == 0 {
		return "LP_" + strconv.Itoa(p.num)
	}
	n := 0
	for ; mask > 1; mask >>= 1 {
		n++
	}
	return port.String() + strconv.Itoa(n)
}

// Number implements pin.Pin.
func (p *Pin) Number() int {
	return p.num
}

// Function implements pin.Pin.
func (p *Pin) Function() string {
	return string(p.Func())
}

// Func implements pin.PinFunc.
func (p *Pin) Func() pin.Func {
	switch p.d.state(p.num) {
	case stateLow:
		return gpio.OUT_LOW
	case stateHigh:
		return gpio.OUT_HIGH
	case statePWM:
		return FuncPWM
	case stateADC:
		return FuncADC
	default:
		return pin.FuncNone
	}
}

// SupportedFuncs implements pin.PinFunc.
func (p *Pin) SupportedFuncs() []pin.Func {
	if !p.d.pins.Port(p.num).Valid() {
		return nil
	}
	f := []pin.Func{gpio.OUT}
	if p.d.pins.Timer(p.num) != NotOnTimer {
		f = append(f, FuncPWM)
	}
	if p.d.pins.ADCChannel(p.num).Valid() {
		f = append(f, FuncADC)
	}
	return f
}

// SetFunc implements pin.PinFunc.
//
// FuncPWM starts a 50% duty cycle at the AnalogWrite frequency.
func (p *Pin) SetFunc(f pin.Func) error {
	switch f {
	case gpio.OUT, gpio.OUT_LOW:
		return p.Out(gpio.Low)
	case gpio.OUT_HIGH:
		return p.Out(gpio.High)
	case FuncPWM:
		return p.PWM(gpio.DutyHalf, AnalogWriteFrequency*physic.Hertz)
	case FuncADC:
		_, err := p.d.Sample(p.num)
		return err
	default:
		return errors.New("lm4f: unsupported function " + string(f))
	}
}

// Out implements gpio.PinOut.
func (p *Pin) Out(l gpio.Level) error {
	port := p.d.pins.Port(p.num)
	mask := p.d.pins.BitMask(p.num)
	if !port.Valid() || mask == 0 {
		return ErrUnmappedPin
	}
	var v uint8
	s := stateLow
	if l {
		v = mask
		s = stateHigh
	}
	p.d.drv.GPIOPinTypeGPIOOutput(port.Base(), mask)
	p.d.drv.GPIOPinWrite(port.Base(), mask, v)
	if err := p.d.linkErr(); err != nil {
		return err
	}
	p.d.setState(p.num, s)
	return nil
}

// PWM implements gpio.PinOut.
//
// The duty cycle keeps the full gpio.DutyMax resolution. f is truncated to
// whole hertz.
func (p *Pin) PWM(duty gpio.Duty, f physic.Frequency) error {
	if duty < 0 {
		return errors.New("lm4f: negative duty cycle " + duty.String())
	}
	hz := f / physic.Hertz
	if hz < 1 || hz > 0xFFFFFFFF {
		return ErrZeroFrequency
	}
	return p.d.PWM(p.num, uint32(gpio.DutyMax), uint32(duty), uint32(hz))
}

// Range implements analog.PinADC.
func (p *Pin) Range() (analog.Sample, analog.Sample) {
	return analog.Sample{}, analog.Sample{V: VRef, Raw: SampleMax}
}

// Read implements analog.PinADC.
func (p *Pin) Read() (analog.Sample, error) {
	raw, err := p.d.Sample(p.num)
	if err != nil {
		return analog.Sample{}, err
	}
	return analog.Sample{V: Volts(raw), Raw: int32(raw)}, nil
}

var _ gpio.PinOut = &Pin{}
var _ analog.PinADC = &Pin{}
var _ pin.PinFunc = &Pin{}
