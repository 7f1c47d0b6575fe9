// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lm4ftest is meant to be used to test drivers over a fake
// driverlib.
package lm4ftest

import (
	"fmt"
	"strings"
	"sync"

	"periph.io/x/tiva/v3/lm4f"
)

// DefaultClock is the SysCtlClockGet result when Fake.Clock is 0.
const DefaultClock = 80000000

// Op is one recorded driverlib call.
type Op struct {
	Name string
	Args []uint32
}

func (o Op) String() string {
	s := make([]string, len(o.Args))
	for i, a := range o.Args {
		s[i] = fmt.Sprintf("%#x", a)
	}
	return o.Name + "(" + strings.Join(s, ", ") + ")"
}

// Half is the register state of one timer half.
type Half struct {
	Load          uint32
	Match         uint32
	Prescale      uint32
	PrescaleMatch uint32
	Enabled       bool
}

// Period returns the 32 bit period the half counts.
func (h Half) Period() uint32 {
	return h.Prescale<<16 | h.Load
}

// MatchValue returns the 32 bit match value of the half.
func (h Half) MatchValue() uint32 {
	return h.PrescaleMatch<<16 | h.Match
}

// TimerUnit is the register state of one timer unit.
type TimerUnit struct {
	Config uint32
	Halves [2]Half
}

// Fake implements lm4f.Driver in memory and records every call.
//
// The ADC completes a conversion after Polls calls to ADCIntStatus, unless
// Hang is set.
type Fake struct {
	mu sync.Mutex

	// Clock is the processor clock in Hz.
	Clock uint32
	// Samples is the conversion result per analog channel.
	Samples map[lm4f.ADCChannel]uint16
	// Polls is the number of ADCIntStatus calls needed for a conversion.
	Polls int
	// Hang makes conversions never complete.
	Hang bool

	Ops     []Op
	Enabled map[lm4f.Peripheral]bool
	Muxed   map[uint32]bool
	// Latch is the output data register per port base.
	Latch map[uint32]uint8
	// Dir is the output direction bits per port base.
	Dir    map[uint32]uint8
	Timers map[uint32]*TimerUnit

	step     uint32
	enabled  bool
	pending  bool
	polls    int
	complete bool
	fifo     []uint32
}

func (f *Fake) record(name string, args ...uint32) {
	f.Ops = append(f.Ops, Op{Name: name, Args: args})
	if f.Enabled == nil {
		f.Enabled = map[lm4f.Peripheral]bool{}
		f.Muxed = map[uint32]bool{}
		f.Latch = map[uint32]uint8{}
		f.Dir = map[uint32]uint8{}
		f.Timers = map[uint32]*TimerUnit{}
	}
}

func (f *Fake) unit(base uint32) *TimerUnit {
	u := f.Timers[base]
	if u == nil {
		u = &TimerUnit{}
		f.Timers[base] = u
	}
	return u
}

func halfIndex(half uint32) int {
	if half == lm4f.TimerB {
		return 1
	}
	return 0
}

// Calls returns a copy of the recorded calls.
func (f *Fake) Calls() []Op {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Op(nil), f.Ops...)
}

// Count returns how many times the call name was recorded.
func (f *Fake) Count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, o := range f.Ops {
		if o.Name == name {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls, keeping the register state.
func (f *Fake) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Ops = nil
}

// Timer returns a copy of the register state of the timer unit at base.
func (f *Fake) Timer(base uint32) TimerUnit {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u := f.Timers[base]; u != nil {
		return *u
	}
	return TimerUnit{}
}

// Level returns the output level of port/mask and whether it is an output.
func (f *Fake) Level(p lm4f.Port, mask uint8) (high, out bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := p.Base()
	return f.Latch[b]&mask != 0, f.Dir[b]&mask != 0
}

// IsEnabled returns true if the peripheral clock gate p was opened.
func (f *Fake) IsEnabled(p lm4f.Peripheral) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Enabled[p]
}

// SysCtlClockGet implements lm4f.SysCtl.
func (f *Fake) SysCtlClockGet() uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SysCtlClockGet")
	if f.Clock == 0 {
		return DefaultClock
	}
	return f.Clock
}

// SysCtlPeripheralEnable implements lm4f.SysCtl.
func (f *Fake) SysCtlPeripheralEnable(p lm4f.Peripheral) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("SysCtlPeripheralEnable", uint32(p))
	f.Enabled[p] = true
}

// GPIOPinConfigure implements lm4f.GPIO.
func (f *Fake) GPIOPinConfigure(mux uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GPIOPinConfigure", mux)
	f.Muxed[mux] = true
}

// GPIOPinTypeTimer implements lm4f.GPIO.
func (f *Fake) GPIOPinTypeTimer(port uint32, pins uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GPIOPinTypeTimer", port, uint32(pins))
	f.Dir[port] &^= pins
}

// GPIOPinTypeADC implements lm4f.GPIO.
func (f *Fake) GPIOPinTypeADC(port uint32, pins uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GPIOPinTypeADC", port, uint32(pins))
	f.Dir[port] &^= pins
}

// GPIOPinTypeGPIOOutput implements lm4f.GPIO.
func (f *Fake) GPIOPinTypeGPIOOutput(port uint32, pins uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GPIOPinTypeGPIOOutput", port, uint32(pins))
	f.Dir[port] |= pins
}

// GPIOPinWrite implements lm4f.GPIO.
func (f *Fake) GPIOPinWrite(port uint32, pins, val uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("GPIOPinWrite", port, uint32(pins), uint32(val))
	f.Latch[port] = f.Latch[port]&^pins | val&pins
}

// TimerConfigure implements lm4f.Timers.
func (f *Fake) TimerConfigure(base, config uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("TimerConfigure", base, config)
	u := f.unit(base)
	// Configuring stops both halves and resets their prescalers.
	*u = TimerUnit{Config: config}
}

// TimerLoadSet implements lm4f.Timers.
func (f *Fake) TimerLoadSet(base, half, v uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("TimerLoadSet", base, half, v)
	f.unit(base).Halves[halfIndex(half)].Load = v
}

// TimerMatchSet implements lm4f.Timers.
func (f *Fake) TimerMatchSet(base, half, v uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("TimerMatchSet", base, half, v)
	f.unit(base).Halves[halfIndex(half)].Match = v
}

// TimerPrescaleSet implements lm4f.Timers.
func (f *Fake) TimerPrescaleSet(base, half, v uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("TimerPrescaleSet", base, half, v)
	f.unit(base).Halves[halfIndex(half)].Prescale = v
}

// TimerPrescaleMatchSet implements lm4f.Timers.
func (f *Fake) TimerPrescaleMatchSet(base, half, v uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("TimerPrescaleMatchSet", base, half, v)
	f.unit(base).Halves[halfIndex(half)].PrescaleMatch = v
}

// TimerEnable implements lm4f.Timers.
func (f *Fake) TimerEnable(base, half uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("TimerEnable", base, half)
	u := f.unit(base)
	if half&lm4f.TimerA != 0 {
		u.Halves[0].Enabled = true
	}
	if half&lm4f.TimerB != 0 {
		u.Halves[1].Enabled = true
	}
}

// ADCSequenceConfigure implements lm4f.ADC.
func (f *Fake) ADCSequenceConfigure(base, seq, trigger, priority uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ADCSequenceConfigure", base, seq, trigger, priority)
	f.enabled = false
}

// ADCSequenceStepConfigure implements lm4f.ADC.
func (f *Fake) ADCSequenceStepConfigure(base, seq, step, config uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ADCSequenceStepConfigure", base, seq, step, config)
	f.step = config
}

// ADCSequenceEnable implements lm4f.ADC.
func (f *Fake) ADCSequenceEnable(base, seq uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ADCSequenceEnable", base, seq)
	f.enabled = true
}

// ADCIntClear implements lm4f.ADC.
func (f *Fake) ADCIntClear(base, seq uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ADCIntClear", base, seq)
	f.complete = false
}

// ADCProcessorTrigger implements lm4f.ADC.
func (f *Fake) ADCProcessorTrigger(base, seq uint32) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ADCProcessorTrigger", base, seq)
	if !f.enabled || !f.Enabled[lm4f.PeriphADC0] {
		return
	}
	f.pending = true
	f.polls = 0
	f.fifo = nil
}

// ADCIntStatus implements lm4f.ADC.
func (f *Fake) ADCIntStatus(base, seq uint32, masked bool) uint32 {
	f.mu.Lock()
	defer f.mu.Unlock()
	var m uint32
	if masked {
		m = 1
	}
	f.record("ADCIntStatus", base, seq, m)
	if f.pending && !f.Hang {
		if f.polls >= f.Polls {
			f.pending = false
			f.complete = true
			ch := lm4f.ADCChannel(f.step & 0x0F)
			f.fifo = append(f.fifo, uint32(f.Samples[ch]))
		} else {
			f.polls++
		}
	}
	if f.complete {
		return 1 << seq
	}
	return 0
}

// ADCSequenceDataGet implements lm4f.ADC.
func (f *Fake) ADCSequenceDataGet(base, seq uint32, buf []uint32) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ADCSequenceDataGet", base, seq)
	n := copy(buf, f.fifo)
	f.fifo = f.fifo[n:]
	return n
}

var _ lm4f.Driver = &Fake{}
