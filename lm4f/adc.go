// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm4f

import (
	"context"
	"errors"
	"fmt"
	"runtime"
)

// seq is the sample sequencer used for single-shot conversions. SS3 has a
// one entry FIFO.
const seq = 3

// Waiter blocks until ready returns true.
//
// A Waiter that gives up returns a non-nil error; ready is not called
// again afterward.
type Waiter func(ready func() bool) error

// Spin polls ready until it returns true. It never gives up.
func Spin(ready func() bool) error {
	for !ready() {
	}
	return nil
}

// ContextWaiter returns a Waiter that yields the processor between polls
// and gives up with ctx.Err() once ctx is done.
func ContextWaiter(ctx context.Context) Waiter {
	return func(ready func() bool) error {
		for !ready() {
			if err := ctx.Err(); err != nil {
				return err
			}
			runtime.Gosched()
		}
		return nil
	}
}

// Sample runs one conversion on pin's analog channel and returns the 12 bit
// result.
//
// It blocks until the conversion completes, as decided by the Dev's Waiter.
// It returns ErrUnmappedPin, without touching the hardware, when pin has no
// analog channel.
func (d *Dev) Sample(pin int) (uint16, error) {
	ch := d.pins.ADCChannel(pin)
	port := d.pins.Port(pin)
	if !ch.Valid() || !port.Valid() {
		return 0, fmt.Errorf("%w %d: not on ADC", ErrUnmappedPin, pin)
	}
	mask := d.pins.BitMask(pin)

	d.adc.mu.Lock()
	defer d.adc.mu.Unlock()

	d.drv.SysCtlPeripheralEnable(PeriphADC0)
	d.drv.GPIOPinTypeADC(port.Base(), mask)
	d.drv.ADCSequenceConfigure(ADC0Base, seq, TriggerProcessor, 0)
	d.drv.ADCSequenceStepConfigure(ADC0Base, seq, 0, uint32(ch)|CtlIE|CtlEnd)
	d.drv.ADCSequenceEnable(ADC0Base, seq)
	d.drv.ADCIntClear(ADC0Base, seq)
	d.drv.ADCProcessorTrigger(ADC0Base, seq)
	d.setState(pin, stateADC)
	if err := d.wait(d.converted); err != nil {
		return 0, fmt.Errorf("lm4f: pin %d: conversion: %w", pin, err)
	}
	d.drv.ADCIntClear(ADC0Base, seq)
	var buf [1]uint32
	n := d.drv.ADCSequenceDataGet(ADC0Base, seq, buf[:])
	if err := d.linkErr(); err != nil {
		return 0, err
	}
	if n != 1 {
		return 0, fmt.Errorf("lm4f: pin %d: got %d samples", pin, n)
	}
	v := uint16(buf[0])
	d.log.WithField("pin", pin).WithField("ch", ch).Debugf("adc %d", v)
	return v, nil
}

// converted reports whether the sequence raised its raw completion flag.
func (d *Dev) converted() bool {
	return d.drv.ADCIntStatus(ADC0Base, seq, false) != 0
}

// AnalogRead is Sample with the board convention for unmapped pins: they
// read as 0. Other errors are returned.
func (d *Dev) AnalogRead(pin int) (uint16, error) {
	v, err := d.Sample(pin)
	if errors.Is(err, ErrUnmappedPin) {
		return 0, nil
	}
	return v, err
}
