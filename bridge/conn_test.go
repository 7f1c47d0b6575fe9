// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bridge_test

import (
	"io"
	"net"
	"reflect"
	"testing"

	"periph.io/x/tiva/v3/bridge"
	"periph.io/x/tiva/v3/lm4f"
	"periph.io/x/tiva/v3/lm4f/lm4ftest"
)

var board = lm4ftest.Pins{
	1: lm4ftest.Digital(lm4f.PB, 6).OnTimer(lm4f.T0A),
	2: lm4ftest.Digital(lm4f.PD, 0).OnTimer(lm4f.WT2A).OnADC(7),
	3: lm4ftest.Digital(lm4f.PA, 5),
}

// link starts a target serving f and returns the host side.
func link(t *testing.T, f *lm4ftest.Fake) (*bridge.Conn, <-chan error) {
	host, target := net.Pipe()
	done := make(chan error, 1)
	go func() {
		done <- bridge.Serve(target, f)
		target.Close()
	}()
	c := bridge.New(host, nil)
	t.Cleanup(func() { c.Close() })
	return c, done
}

// exercise drives a representative set of calls through a Dev.
func exercise(t *testing.T, drv lm4f.Driver) uint16 {
	d, err := lm4f.New(drv, board, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.PWM(1, 255, 128, 490); err != nil {
		t.Fatal(err)
	}
	if err := d.PWM(2, 100, 50, 1000); err != nil {
		t.Fatal(err)
	}
	if err := d.Pin(3).Out(true); err != nil {
		t.Fatal(err)
	}
	v, err := d.Sample(2)
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestConn(t *testing.T) {
	samples := map[lm4f.ADCChannel]uint16{7: 0xABC}
	want := &lm4ftest.Fake{Polls: 2, Samples: samples}
	vWant := exercise(t, want)

	got := &lm4ftest.Fake{Polls: 2, Samples: samples}
	c, _ := link(t, got)
	vGot := exercise(t, c)
	if err := c.Err(); err != nil {
		t.Fatal(err)
	}
	if vGot != vWant || vGot != 0xABC {
		t.Errorf("Sample() = %#x, expected %#x", vGot, vWant)
	}
	if !reflect.DeepEqual(got.Calls(), want.Calls()) {
		t.Errorf("calls mismatch:\ngot:  %v\nwant: %v", got.Calls(), want.Calls())
	}
	if !reflect.DeepEqual(got.Timers, want.Timers) {
		t.Errorf("timers mismatch:\ngot:  %v\nwant: %v", got.Timers, want.Timers)
	}
}

func TestConn_clock(t *testing.T) {
	c, _ := link(t, &lm4ftest.Fake{Clock: 16000000})
	if v := c.SysCtlClockGet(); v != 16000000 {
		t.Errorf("SysCtlClockGet() = %d", v)
	}
}

func TestServe_eof(t *testing.T) {
	c, done := link(t, &lm4ftest.Fake{})
	c.SysCtlClockGet()
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if err := <-done; err != io.EOF {
		t.Errorf("Serve() = %v", err)
	}
	if c.Err() == nil {
		t.Error("expected error after Close")
	}
	if v := c.SysCtlClockGet(); v != 0 {
		t.Errorf("SysCtlClockGet() = %d after Close", v)
	}
}

func TestConn_targetGone(t *testing.T) {
	host, target := net.Pipe()
	target.Close()
	c := bridge.New(host, nil)
	defer c.Close()
	d, err := lm4f.New(c, board, nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := d.Sample(2); err == nil {
		t.Error("expected error")
	}
	if err := d.PWM(1, 255, 128, 490); err == nil {
		t.Error("PWM() succeeded on a lost link")
	}
	if err := d.Pin(3).Out(true); err == nil {
		t.Error("Out() succeeded on a lost link")
	}
	if c.Err() == nil {
		t.Error("expected sticky error")
	}
}
