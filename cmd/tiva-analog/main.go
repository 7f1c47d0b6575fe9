// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// tiva-analog drives the PWM outputs and samples the analog inputs of a
// LaunchPad over a bridge link.
//
// Examples:
//
//	tiva-analog -port /dev/ttyACM0 -pin 30 -write 128
//	tiva-analog -port /dev/ttyACM0 -pin 23 -res 1000 -duty 250 -freq 20000
//	tiva-analog -sim -pin 29 -read
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"periph.io/x/tiva/v3/bridge"
	"periph.io/x/tiva/v3/launchpad"
	"periph.io/x/tiva/v3/lm4f"
	"periph.io/x/tiva/v3/lm4f/lm4ftest"
)

// simulate returns a link to an in-memory board running bridge.Serve.
func simulate(log *logrus.Logger) *bridge.Conn {
	host, target := net.Pipe()
	f := &lm4ftest.Fake{Polls: 3, Samples: map[lm4f.ADCChannel]uint16{}}
	for c := lm4f.ADCChannel(0); c < 12; c++ {
		f.Samples[c] = uint16(c) * 341
	}
	go func() {
		if err := bridge.Serve(target, f); err != nil {
			log.WithError(err).Debug("simulated board stopped")
		}
	}()
	return bridge.New(host, &bridge.Opts{Logger: log})
}

func mainImpl() error {
	port := flag.String("port", os.Getenv(launchpad.EnvDevice), "serial device of the board")
	baud := flag.Int("baud", bridge.DefaultBaud, "serial speed")
	sim := flag.Bool("sim", false, "use a simulated board instead of -port")
	pin := flag.Int("pin", launchpad.RedLED, "logical pin, 1 to 40")
	write := flag.Int("write", -1, "analogWrite value, 0 to 255")
	duty := flag.Uint("duty", 0, "PWM duty cycle, out of -res")
	res := flag.Uint("res", 0, "PWM resolution; enables -duty and -freq")
	freq := flag.Uint("freq", lm4f.AnalogWriteFrequency, "PWM frequency in Hz")
	read := flag.Bool("read", false, "sample the analog input of -pin")
	timeout := flag.Duration("timeout", time.Second, "maximum conversion time")
	verbose := flag.Bool("v", false, "verbose mode")
	flag.Parse()
	if flag.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	log := logrus.New()
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	var c *bridge.Conn
	switch {
	case *sim:
		c = simulate(log)
	case *port != "":
		var err error
		if c, err = bridge.Open(*port, *baud, &bridge.Opts{Logger: log}); err != nil {
			return err
		}
	default:
		return errors.New("-port or -sim is required")
	}
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()
	d, err := lm4f.New(c, launchpad.Pins, &lm4f.Opts{Logger: log, Wait: lm4f.ContextWaiter(ctx)})
	if err != nil {
		return err
	}

	did := false
	if *write >= 0 {
		if err := d.AnalogWrite(*pin, uint32(*write)); err != nil {
			return err
		}
		did = true
	}
	if *res != 0 {
		if err := d.PWM(*pin, uint32(*res), uint32(*duty), uint32(*freq)); err != nil {
			return err
		}
		did = true
	}
	if *read {
		v, err := d.Sample(*pin)
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d (%s)\n", d.Pin(*pin), v, lm4f.Volts(v))
		did = true
	}
	if !did {
		return errors.New("nothing to do; use -write, -res or -read")
	}
	return c.Err()
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "tiva-analog: %s.\n", err)
		os.Exit(1)
	}
}
