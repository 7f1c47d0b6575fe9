// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm4f

// Peripheral is a clock gate identifier as understood by
// SysCtlPeripheralEnable.
//
// The low bits of the timer identifiers are the gate mask within the run
// mode clock gating register, so unit n is (PeriphTimer0-1)+(1<<n).
type Peripheral uint32

// Clock gate identifiers.
const (
	PeriphADC0    Peripheral = 0x00100001
	PeriphTimer0  Peripheral = 0x10100001
	PeriphWTimer0 Peripheral = 0x10400001
)

// Timer halves.
const (
	TimerA    uint32 = 0x000000FF
	TimerB    uint32 = 0x0000FF00
	TimerBoth uint32 = 0x0000FFFF
)

// Timer configuration words.
const (
	// CfgSplitPair configures the unit as two independent halves.
	CfgSplitPair uint32 = 0x04000000
	// CfgAPWM puts half A in PWM mode. Shift left by 8 for half B.
	CfgAPWM uint32 = 0x0000000A
)

// ADC0 and conversion step flags.
const (
	ADC0Base         uint32 = 0x40038000
	TriggerProcessor uint32 = 0x00000000
	// CtlIE raises the sequence interrupt when the step completes.
	CtlIE uint32 = 0x00000040
	// CtlEnd marks the last step of the sequence.
	CtlEnd uint32 = 0x00000020
)

// SysCtl is the system control part of driverlib.
type SysCtl interface {
	// SysCtlClockGet returns the processor clock in Hz.
	SysCtlClockGet() uint32
	SysCtlPeripheralEnable(p Peripheral)
}

// GPIO is the pin mux and digital I/O part of driverlib.
//
// port is a GPIO port register base address, pins a bit mask.
type GPIO interface {
	// GPIOPinConfigure routes the pin encoded in mux to an alternate
	// function.
	GPIOPinConfigure(mux uint32)
	GPIOPinTypeTimer(port uint32, pins uint8)
	GPIOPinTypeADC(port uint32, pins uint8)
	GPIOPinTypeGPIOOutput(port uint32, pins uint8)
	GPIOPinWrite(port uint32, pins, val uint8)
}

// Timers is the general purpose timer part of driverlib.
//
// base is a timer register block base address, half is TimerA or TimerB.
type Timers interface {
	TimerConfigure(base, config uint32)
	TimerLoadSet(base, half, v uint32)
	TimerMatchSet(base, half, v uint32)
	TimerPrescaleSet(base, half, v uint32)
	TimerPrescaleMatchSet(base, half, v uint32)
	TimerEnable(base, half uint32)
}

// ADC is the analog to digital converter part of driverlib.
type ADC interface {
	ADCSequenceConfigure(base, seq, trigger, priority uint32)
	ADCSequenceStepConfigure(base, seq, step, config uint32)
	ADCSequenceEnable(base, seq uint32)
	ADCIntClear(base, seq uint32)
	ADCProcessorTrigger(base, seq uint32)
	// ADCIntStatus returns non-zero when the sequence completed.
	ADCIntStatus(base, seq uint32, masked bool) uint32
	// ADCSequenceDataGet copies the sequence FIFO into buf and returns the
	// number of samples copied.
	ADCSequenceDataGet(base, seq uint32, buf []uint32) int
}

// Driver is the complete vendor driverlib surface used by this package.
//
// Calls are synchronous and are not expected to fail. An implementation
// that can fail, like a serial bridge, must latch its error and report it
// out of band.
type Driver interface {
	SysCtl
	GPIO
	Timers
	ADC
}
