// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package launchpad contains the Stellaris LaunchPad (EK-LM4F120XL) pin out.
//
// Pins are numbered 1 to 40 the way Energia numbers them: J1 holds 1 to 10,
// J2 holds 11 to 20, J3 holds 21 to 30 and J4 holds 31 to 40. The power and
// reset pins are not mapped.
//
// The board is driven through a bridge link. Set TIVA_BRIDGE to the serial
// device of the board, and optionally TIVA_BRIDGE_BAUD, then call
// host.Init(). The pins are then available in gpioreg as their GPIO name,
// like "PF1", and as "LP_<n>".
//
// # Datasheet
//
// http://www.ti.com/lit/ug/spmu289c/spmu289c.pdf
package launchpad
