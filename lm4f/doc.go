// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lm4f drives the general purpose timers and ADC0 of TI LM4F120 and
// TM4C123 microcontrollers to produce PWM output and single-shot analog
// samples on logical board pins.
//
// The package does not touch registers itself. Every hardware access goes
// through a Driver, which mirrors the vendor driverlib API (the ROM_* calls
// on the chip, or a bridge when the chip is driven from a host). The board
// layer supplies a PinMap translating logical pin numbers into GPIO
// port/bit, timer and ADC channel.
//
// # Blocking
//
// Sample busy-waits for the conversion to complete. With the default Spin
// waiter a conversion that never completes blocks forever; use
// ContextWaiter to bound it.
//
// # Concurrency
//
// A Dev owns one handle per timer unit and one for ADC0. Calls on the same
// handle are serialized; calls on different units proceed concurrently.
//
// # Datasheets
//
// https://www.ti.com/lit/ds/symlink/tm4c123gh6pm.pdf
//
// https://www.ti.com/lit/ug/spmu298e/spmu298e.pdf
package lm4f
