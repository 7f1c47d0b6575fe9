// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm4f

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// ErrUnmappedPin is returned by the strict entry points when the pin
	// has no resource for the requested operation.
	ErrUnmappedPin = errors.New("lm4f: unmapped pin")
	// ErrZeroFrequency is returned for a PWM frequency below 1Hz.
	ErrZeroFrequency = errors.New("lm4f: PWM frequency must be at least 1Hz")
	// ErrZeroResolution is returned for a PWM resolution of 0.
	ErrZeroResolution = errors.New("lm4f: PWM resolution must be positive")
)

// Opts holds the optional configuration of a Dev.
type Opts struct {
	// Logger receives debug traces. Defaults to logrus.StandardLogger().
	Logger *logrus.Logger
	// Wait blocks until an ADC conversion completes. Defaults to Spin.
	Wait Waiter
}

// DefaultOpts is the configuration used when New is passed nil.
var DefaultOpts = Opts{}

// handle is the exclusive owner of one peripheral unit.
type handle struct {
	mu sync.Mutex
}

// Dev is the analog I/O front end of one microcontroller.
//
// It owns a handle per timer unit and one for ADC0; an operation borrows
// the handle of the unit it programs for its whole register sequence.
type Dev struct {
	drv  Driver
	pins PinMap
	log  *logrus.Entry
	wait Waiter

	timers [numUnits]unit
	adc    handle

	mu    sync.Mutex
	funcs map[int]pinState
}

// New returns a Dev programming drv according to the pins table.
func New(drv Driver, pins PinMap, opts *Opts) (*Dev, error) {
	if drv == nil {
		return nil, errors.New("lm4f: nil Driver")
	}
	if pins == nil {
		return nil, errors.New("lm4f: nil PinMap")
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	l := opts.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	w := opts.Wait
	if w == nil {
		w = Spin
	}
	return &Dev{
		drv:   drv,
		pins:  pins,
		log:   l.WithField("dev", "lm4f"),
		wait:  w,
		funcs: map[int]pinState{},
	}, nil
}

// Driver returns the driverlib implementation d programs.
func (d *Dev) Driver() Driver {
	return d.drv
}

// Pins returns the pin table d was built with.
func (d *Dev) Pins() PinMap {
	return d.pins
}

func (d *Dev) String() string {
	return "lm4f"
}

// Halt implements conn.Resource.
//
// Timers that were started are left running.
func (d *Dev) Halt() error {
	return nil
}

// linkErr returns the error of a Driver that reports failures out of band,
// like a remote link whose calls cannot return one.
func (d *Dev) linkErr() error {
	if e, ok := d.drv.(interface{ Err() error }); ok {
		if err := e.Err(); err != nil {
			return fmt.Errorf("lm4f: %w", err)
		}
	}
	return nil
}
