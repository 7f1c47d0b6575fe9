// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package launchpad

import (
	"errors"
	"strconv"
	"time"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/pin"
	"periph.io/x/conn/v3/pin/pinreg"
	"periph.io/x/tiva/v3/lm4f"
)

// Pin is a LaunchPad pin as registered in gpioreg.
//
// It implements gpio.PinIO. The driverlib surface has no input path, so In
// fails and Read returns the last level driven. The analog side is
// available through ADC.
type Pin struct {
	*lm4f.Pin
}

// ADC returns the analog input of the pin.
func (p *Pin) ADC() analog.PinADC {
	return p.Pin
}

// In implements gpio.PinIn.
func (p *Pin) In(pull gpio.Pull, edge gpio.Edge) error {
	return errors.New("launchpad: " + p.Name() + ": input is not supported")
}

// Read implements gpio.PinIn.
func (p *Pin) Read() gpio.Level {
	return p.Func() == gpio.OUT_HIGH
}

// WaitForEdge implements gpio.PinIn.
func (p *Pin) WaitForEdge(timeout time.Duration) bool {
	return false
}

// Pull implements gpio.PinIn.
func (p *Pin) Pull() gpio.Pull {
	return gpio.Float
}

// DefaultPull implements gpio.PinIn.
func (p *Pin) DefaultPull() gpio.Pull {
	return gpio.Float
}

// Alias returns the "LP_<n>" name of logical pin n.
func Alias(n int) string {
	return "LP_" + strconv.Itoa(n)
}

// header returns the pins of header h, 0 to 3, for pinreg.
func header(pins []pin.Pin, h int) [][]pin.Pin {
	raw := make([][]pin.Pin, 10)
	for i := range raw {
		raw[i] = []pin.Pin{pins[h*10+i+1]}
	}
	return raw
}

// unmapped are the power and reset pins.
var unmapped = map[int]pin.Pin{
	1:  pin.V3_3,
	16: gpio.INVALID, // RESET
	20: pin.GROUND,
	21: pin.V5,
	22: pin.GROUND,
}

// Register registers the pins of d in gpioreg and the headers J1 to J4 in
// pinreg.
func Register(d *lm4f.Dev) error {
	all := make([]pin.Pin, NumPins+1)
	for n := 1; n <= NumPins; n++ {
		if p, ok := unmapped[n]; ok {
			all[n] = p
			continue
		}
		p := &Pin{Pin: d.Pin(n)}
		if err := gpioreg.Register(p); err != nil {
			return err
		}
		if err := gpioreg.RegisterAlias(Alias(n), p.Name()); err != nil {
			return err
		}
		all[n] = p
	}
	for h := 0; h < 4; h++ {
		if err := pinreg.Register("J"+strconv.Itoa(h+1), header(all, h)); err != nil {
			return err
		}
	}
	return nil
}

// Unregister undoes Register.
func Unregister() error {
	var err error
	for n := 1; n <= NumPins; n++ {
		if _, ok := unmapped[n]; ok {
			continue
		}
		e := table[n]
		if err1 := gpioreg.Unregister(Alias(n)); err1 != nil {
			err = err1
		}
		if err1 := gpioreg.Unregister(e.port.String() + strconv.Itoa(int(e.bit))); err1 != nil {
			err = err1
		}
	}
	for h := 1; h <= 4; h++ {
		if err1 := pinreg.Unregister("J" + strconv.Itoa(h)); err1 != nil {
			err = err1
		}
	}
	return err
}

var _ gpio.PinIO = &Pin{}
