// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm4f_test

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/pin"
	"periph.io/x/tiva/v3/lm4f"
	"periph.io/x/tiva/v3/lm4f/lm4ftest"
)

// lostLink is a Driver that reports a failure out of band.
type lostLink struct {
	*lm4ftest.Fake
	err error
}

func (l *lostLink) Err() error {
	return l.err
}

func TestDev_linkError(t *testing.T) {
	errLost := errors.New("board unplugged")
	d, err := lm4f.New(&lostLink{Fake: &lm4ftest.Fake{}, err: errLost}, board, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.PWM(pinT0A, 255, 128, 490); !errors.Is(err, errLost) {
		t.Errorf("PWM() = %v", err)
	}
	if err := d.PWM(pinT0B, 255, 0, 490); !errors.Is(err, errLost) {
		t.Errorf("PWM(duty 0) = %v", err)
	}
	if err := d.WritePWM(pinT0A, 255, 10, 490); !errors.Is(err, errLost) {
		t.Errorf("WritePWM() = %v", err)
	}
	if err := d.Pin(pinGPIO).Out(gpio.High); !errors.Is(err, errLost) {
		t.Errorf("Out() = %v", err)
	}
	if _, err := d.Sample(pinAIN0); !errors.Is(err, errLost) {
		t.Errorf("Sample() = %v", err)
	}
	for _, n := range []int{pinT0A, pinT0B, pinGPIO} {
		if fn := d.Pin(n).Func(); fn != pin.FuncNone {
			t.Errorf("pin %d: Func() = %s", n, fn)
		}
	}
}

func TestDev_linkHealthy(t *testing.T) {
	d, err := lm4f.New(&lostLink{Fake: &lm4ftest.Fake{}}, board, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.PWM(pinT0A, 255, 128, 490); err != nil {
		t.Errorf("PWM() = %v", err)
	}
}
