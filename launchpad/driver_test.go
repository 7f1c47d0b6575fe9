// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package launchpad

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/pin/pinreg"
	"periph.io/x/tiva/v3/lm4f"
	"periph.io/x/tiva/v3/lm4f/lm4ftest"
)

func TestDriver_unset(t *testing.T) {
	t.Setenv(EnvDevice, "")
	defer drv.reset()
	drv.open = func(string, int) (lm4f.Driver, error) {
		t.Fatal("unexpected open")
		return nil, nil
	}
	if ok, err := drv.Init(); ok || err == nil {
		t.Errorf("Init() = %t, %v", ok, err)
	}
	if Default() != nil {
		t.Error("unexpected Default()")
	}
}

func TestDriver_baud(t *testing.T) {
	t.Setenv(EnvDevice, "/dev/ttyACM0")
	t.Setenv(EnvBaud, "fast")
	defer drv.reset()
	drv.open = func(string, int) (lm4f.Driver, error) {
		t.Fatal("unexpected open")
		return nil, nil
	}
	if ok, err := drv.Init(); !ok || err == nil {
		t.Errorf("Init() = %t, %v", ok, err)
	}
}

func TestDriver_openFails(t *testing.T) {
	t.Setenv(EnvDevice, "/dev/ttyACM0")
	defer drv.reset()
	drv.open = func(string, int) (lm4f.Driver, error) {
		return nil, errors.New("no such device")
	}
	if ok, err := drv.Init(); !ok || err == nil {
		t.Errorf("Init() = %t, %v", ok, err)
	}
}

func TestDriver(t *testing.T) {
	t.Setenv(EnvDevice, "/dev/ttyACM0")
	t.Setenv(EnvBaud, "230400")
	defer drv.reset()
	f := &lm4ftest.Fake{}
	var device string
	var baud int
	drv.open = func(d string, b int) (lm4f.Driver, error) {
		device, baud = d, b
		return f, nil
	}
	ok, err := drv.Init()
	if !ok || err != nil {
		t.Fatalf("Init() = %t, %v", ok, err)
	}
	defer func() {
		if err := Unregister(); err != nil {
			t.Error(err)
		}
	}()
	if device != "/dev/ttyACM0" || baud != 230400 {
		t.Errorf("open(%q, %d)", device, baud)
	}
	if Default() == nil {
		t.Fatal("Default() is nil")
	}

	p := gpioreg.ByName(Alias(RedLED))
	if p == nil {
		t.Fatal("red LED not registered")
	}
	if s := p.Name(); s != "LP_30" {
		t.Errorf("Name() = %q", s)
	}
	if s := p.(gpio.RealPin).Real().Name(); s != "PF1" {
		t.Errorf("Real().Name() = %q", s)
	}
	if gpioreg.ByName("PF2") == nil {
		t.Error("PF2 not registered")
	}
	if err := p.PWM(gpio.DutyHalf, 490*physic.Hertz); err != nil {
		t.Fatal(err)
	}
	if h := f.Timer(0x40030000).Halves[1]; !h.Enabled || h.Period() != 163265 {
		t.Errorf("T0B = %+v", h)
	}
	if err := p.Out(gpio.High); err != nil {
		t.Fatal(err)
	}
	if p.Read() != gpio.High {
		t.Error("Read() after Out(High)")
	}
	if err := p.In(gpio.PullUp, gpio.NoEdge); err == nil {
		t.Error("expected In() to fail")
	}

	if hdr, n := pinreg.Position(gpioreg.ByName(Alias(BlueLED))); hdr != "J4" || n != 10 {
		t.Errorf("Position() = %s, %d", hdr, n)
	}
	if hdr, n := pinreg.Position(gpioreg.ByName("PB5")); hdr != "J1" || n != 2 {
		t.Errorf("Position() = %s, %d", hdr, n)
	}
}

func TestPin_ADC(t *testing.T) {
	f := &lm4ftest.Fake{Samples: map[lm4f.ADCChannel]uint16{0: 1000}}
	d, err := lm4f.New(f, Pins, nil)
	if err != nil {
		t.Fatal(err)
	}
	p := &Pin{Pin: d.Pin(29)}
	s, err := p.ADC().Read()
	if err != nil {
		t.Fatal(err)
	}
	if s.Raw != 1000 {
		t.Errorf("Read() = %v", s)
	}
	if p.Pull() != gpio.Float || p.WaitForEdge(0) {
		t.Error("unexpected input state")
	}
}

// closingFake records whether the driver closed it.
type closingFake struct {
	*lm4ftest.Fake
	closed bool
}

func (c *closingFake) Close() error {
	c.closed = true
	return nil
}

func TestDriver_registerFails(t *testing.T) {
	t.Setenv(EnvDevice, "/dev/ttyACM0")
	defer drv.reset()
	// PB5 is the first pin Register adds.
	if err := gpioreg.Register(&gpiotest.Pin{N: "PB5", Num: -1}); err != nil {
		t.Fatal(err)
	}
	defer func() {
		if err := gpioreg.Unregister("PB5"); err != nil {
			t.Error(err)
		}
	}()
	c := &closingFake{Fake: &lm4ftest.Fake{}}
	drv.open = func(string, int) (lm4f.Driver, error) {
		return c, nil
	}
	if ok, err := drv.Init(); !ok || err == nil {
		t.Errorf("Init() = %t, %v", ok, err)
	}
	if !c.closed {
		t.Error("link left open")
	}
	if Default() != nil {
		t.Error("unexpected Default()")
	}
}

func TestAnalogWrite_sharedUnit(t *testing.T) {
	f := &lm4ftest.Fake{}
	d, err := lm4f.New(f, Pins, nil)
	if err != nil {
		t.Fatal(err)
	}
	// GreenLED and BlueLED are the two halves of Timer1.
	if err := d.AnalogWrite(GreenLED, 64); err != nil {
		t.Fatal(err)
	}
	if err := d.AnalogWrite(BlueLED, 192); err != nil {
		t.Fatal(err)
	}
	u := f.Timer(0x40031000)
	a, b := u.Halves[0], u.Halves[1]
	if !a.Enabled || a.Period() != 163265 || a.MatchValue() != 40336 {
		t.Errorf("blue (T1A) = %+v", a)
	}
	if !b.Enabled || b.Period() != 163265 || b.MatchValue() != 122288 {
		t.Errorf("green (T1B) = %+v", b)
	}
}
