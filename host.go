// Copyright 2016 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package host loads the LM4F drivers implemented in this module.
package host

import (
	"periph.io/x/conn/v3/driver/driverreg"

	// Make sure the board driver is registered.
	_ "periph.io/x/tiva/v3/launchpad"
)

// Init calls driverreg.Init() and returns it as-is.
//
// The only difference is that by calling host.Init(), you are guaranteed to
// have the LaunchPad driver implicitly loaded. It finds its board through
// the TIVA_BRIDGE environment variable.
func Init() (*driverreg.State, error) {
	return driverreg.Init()
}
