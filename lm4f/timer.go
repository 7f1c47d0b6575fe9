// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm4f

import (
	"errors"
	"strconv"
)

// Timer is a logical timer identifier: one A or B half of a 16/32 bit or
// 32/64 bit (wide) general purpose timer unit.
//
// Halves are interleaved, so the unit is Timer/2 and the half is Timer%2.
// Timer4 and Timer5 are not enumerated; their CCP pins double as the JTAG
// pins on the 64-pin packages and no pin table routes to them.
type Timer uint8

// Narrow timers.
const (
	T0A Timer = iota
	T0B
	T1A
	T1B
	T2A
	T2B
	T3A
	T3B
	// Wide timers.
	WT0A
	WT0B
	WT1A
	WT1B
	WT2A
	WT2B
	WT3A
	WT3B
	WT4A
	WT4B
	WT5A
	WT5B

	numTimers
)

// NotOnTimer is the PinMap sentinel for a pin without timer output.
const NotOnTimer Timer = 0xFF

const (
	// wideStart is the family threshold: ids at or above are wide timers.
	wideStart = WT0A
	// unitStride is the address shift between two timer register blocks.
	unitStride = 12
	numUnits   = int(numTimers) / 2
)

// Register block bases.
const (
	Timer0Base  uint32 = 0x40030000
	WTimer0Base uint32 = 0x40036000
	WTimer2Base uint32 = 0x4004C000
)

// Interrupt vector numbers of the first timer of each contiguous bucket.
const (
	IntTimer0A  = 35
	IntTimer3A  = 51
	IntWTimer0A = 110
)

// ErrInvalidTimer is returned when a Timer is outside the enumeration.
var ErrInvalidTimer = errors.New("lm4f: invalid timer")

// Valid returns true if t names an existing timer half.
func (t Timer) Valid() bool {
	return t < numTimers
}

// Wide returns true if t belongs to the wide timer family.
func (t Timer) Wide() bool {
	return t >= wideStart
}

// Unit returns the index of t's timer unit within its family.
func (t Timer) Unit() int {
	if t.Wide() {
		return int(t-wideStart) / 2
	}
	return int(t) / 2
}

// Half returns the driverlib selector (TimerA or TimerB) for t.
func (t Timer) Half() uint32 {
	return TimerA << t.halfShift()
}

// halfShift is the bit distance between the A and B fields of both the
// half selector and the configuration word.
func (t Timer) halfShift() uint32 {
	return 8 * uint32(t%2)
}

// index is 0 for an A half and 1 for a B half.
func (t Timer) index() int {
	return int(t % 2)
}

// slot is the index of t's unit in the Dev arena.
func (t Timer) slot() int {
	return int(t) / 2
}

// Peripheral returns the clock gate identifier of t's timer unit.
func (t Timer) Peripheral() Peripheral {
	if t.Wide() {
		return (PeriphWTimer0 - 1) + 1<<uint(t.Unit())
	}
	return (PeriphTimer0 - 1) + 1<<uint(t.Unit())
}

func (t Timer) String() string {
	if !t.Valid() {
		return "Timer(" + strconv.Itoa(int(t)) + ")"
	}
	prefix := "T"
	if t.Wide() {
		prefix = "WT"
	}
	return prefix + strconv.Itoa(t.Unit()) + string(rune('A'+t%2))
}

// TimerBase returns the register block base address of t's timer unit.
func TimerBase(t Timer) (uint32, error) {
	if !t.Valid() {
		return 0, ErrInvalidTimer
	}
	n := uint32(t.Unit())
	if !t.Wide() {
		return Timer0Base + n<<unitStride, nil
	}
	if t >= WT2A {
		return WTimer2Base + (n-2)<<unitStride, nil
	}
	// WTIMER0 and WTIMER1 sit in the legacy block, right after TIMER5.
	return WTimer0Base + n<<unitStride, nil
}

// TimerInterrupt returns the interrupt vector number serving t.
func TimerInterrupt(t Timer) (int, error) {
	switch {
	case !t.Valid():
		return 0, ErrInvalidTimer
	case t < T3A:
		return IntTimer0A + int(t), nil
	case t < wideStart:
		return IntTimer3A + int(t-T3A), nil
	default:
		return IntWTimer0A + int(t-wideStart), nil
	}
}
