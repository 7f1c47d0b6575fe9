// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm4f

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// counterMax is the largest value a 16 bit half counts without prescaler.
const counterMax = 0xFFFF

// halfState is what a running timer half was last programmed with.
type halfState struct {
	running bool
	period  uint32
	match   uint32
}

// unit is the handle of a timer unit and the state of its two halves.
type unit struct {
	handle
	halves [2]halfState
}

// SplitPair splits v into the load (or match) register value and the
// prescale (or prescale match) register value.
func SplitPair(v uint32) (low, high uint16) {
	return uint16(v & 0xFFFF), uint16((v & 0xFFFF0000) >> 16)
}

// JoinPair is the inverse of SplitPair.
func JoinPair(low, high uint16) uint32 {
	return uint32(high)<<16 | uint32(low)
}

// pwmPeriod returns the timer period for freqHz at clockHz.
func pwmPeriod(clockHz, freqHz uint32) uint32 {
	return clockHz / freqHz
}

// pwmMatch returns the match value producing duty/resolution high time.
//
// The timer output goes high on match while counting down, so the match
// value is the low time. duty must be <= resolution.
func pwmMatch(period, resolution, duty uint32) uint32 {
	return uint32(uint64(resolution-duty) * uint64(period) / uint64(resolution))
}

// PWM outputs a PWM signal of duty/resolution at freqHz on pin.
//
// A duty of 0 drives the pin low as a plain GPIO and leaves the timer
// alone. A duty above resolution is clamped to resolution. The other half
// of the timer unit keeps running.
//
// It returns ErrUnmappedPin, without touching the hardware, when pin has no
// port, or no timer and duty is not 0.
func (d *Dev) PWM(pin int, resolution, duty, freqHz uint32) error {
	port := d.pins.Port(pin)
	mask := d.pins.BitMask(pin)
	if !port.Valid() || mask == 0 {
		return fmt.Errorf("%w %d", ErrUnmappedPin, pin)
	}
	if duty == 0 {
		d.drv.GPIOPinTypeGPIOOutput(port.Base(), mask)
		d.drv.GPIOPinWrite(port.Base(), mask, 0)
		if err := d.linkErr(); err != nil {
			return err
		}
		d.setState(pin, stateLow)
		return nil
	}
	if resolution == 0 {
		return ErrZeroResolution
	}
	if freqHz == 0 {
		return ErrZeroFrequency
	}
	if duty > resolution {
		duty = resolution
	}
	t := d.pins.Timer(pin)
	if t == NotOnTimer {
		return fmt.Errorf("%w %d: not on a timer", ErrUnmappedPin, pin)
	}
	base, err := TimerBase(t)
	if err != nil {
		return fmt.Errorf("lm4f: pin %d: %w", pin, err)
	}

	u := &d.timers[t.slot()]
	u.mu.Lock()
	defer u.mu.Unlock()

	period := pwmPeriod(d.drv.SysCtlClockGet(), freqHz)
	match := pwmMatch(period, resolution, duty)
	i := t.index()
	d.log.WithFields(logrus.Fields{
		"pin":    pin,
		"timer":  t.String(),
		"period": period,
		"match":  match,
	}).Debug("pwm")

	// TimerConfigure rewrites the whole unit, so a running sibling half is
	// kept in PWM mode and programmed again.
	cfg := CfgSplitPair | CfgAPWM<<t.halfShift()
	sib := &u.halves[1-i]
	if sib.running {
		cfg |= CfgAPWM << (8 * uint32(1-i))
	}
	d.drv.SysCtlPeripheralEnable(t.Peripheral())
	d.drv.GPIOPinConfigure(timerMux(port, mask))
	d.drv.GPIOPinTypeTimer(port.Base(), mask)
	d.drv.TimerConfigure(base, cfg)
	d.programHalf(base, t.Half(), period, match)
	u.halves[i] = halfState{running: true, period: period, match: match}
	if sib.running {
		d.programHalf(base, TimerA<<(8*uint32(1-i)), sib.period, sib.match)
	}
	if err := d.linkErr(); err != nil {
		return err
	}
	d.setState(pin, statePWM)
	return nil
}

// programHalf loads period and match into one half and starts it.
func (d *Dev) programHalf(base, half, period, match uint32) {
	pLow, pHigh := SplitPair(period)
	mLow, mHigh := SplitPair(match)
	d.drv.TimerLoadSet(base, half, uint32(pLow))
	d.drv.TimerMatchSet(base, half, uint32(mLow))
	// The prescaler reads as 0 after TimerConfigure, which is right for
	// short periods; only long periods program it.
	if period > counterMax {
		d.drv.TimerPrescaleSet(base, half, uint32(pHigh))
		d.drv.TimerPrescaleMatchSet(base, half, uint32(mHigh))
	}
	d.drv.TimerEnable(base, half)
}

// WritePWM is PWM with the board convention for unmapped pins: they are
// silently ignored. Other errors are returned.
func (d *Dev) WritePWM(pin int, resolution, duty, freqHz uint32) error {
	err := d.PWM(pin, resolution, duty, freqHz)
	if errors.Is(err, ErrUnmappedPin) {
		d.log.WithField("pin", pin).Debug("pwm on unmapped pin ignored")
		return nil
	}
	return err
}
