// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bridge

import "strconv"

// Command ids, one per driverlib call.
const (
	cmdSysCtlClockGet uint32 = iota + 1
	cmdSysCtlPeripheralEnable
	cmdGPIOPinConfigure
	cmdGPIOPinTypeTimer
	cmdGPIOPinTypeADC
	cmdGPIOPinTypeGPIOOutput
	cmdGPIOPinWrite
	cmdTimerConfigure
	cmdTimerLoadSet
	cmdTimerMatchSet
	cmdTimerPrescaleSet
	cmdTimerPrescaleMatchSet
	cmdTimerEnable
	cmdADCSequenceConfigure
	cmdADCSequenceStepConfigure
	cmdADCSequenceEnable
	cmdADCIntClear
	cmdADCProcessorTrigger
	cmdADCIntStatus
	cmdADCSequenceDataGet
)

// Response status, the first VLQ of every response payload.
const (
	statusOK uint32 = iota
	statusCorrupt
	statusUnknown
)

// maxData bounds the number of FIFO entries a single ADCSequenceDataGet
// returns so that the response fits a frame.
const maxData = 8

type command struct {
	name string
	args int
}

var commands = map[uint32]command{
	cmdSysCtlClockGet:           {"SysCtlClockGet", 0},
	cmdSysCtlPeripheralEnable:   {"SysCtlPeripheralEnable", 1},
	cmdGPIOPinConfigure:         {"GPIOPinConfigure", 1},
	cmdGPIOPinTypeTimer:         {"GPIOPinTypeTimer", 2},
	cmdGPIOPinTypeADC:           {"GPIOPinTypeADC", 2},
	cmdGPIOPinTypeGPIOOutput:    {"GPIOPinTypeGPIOOutput", 2},
	cmdGPIOPinWrite:             {"GPIOPinWrite", 3},
	cmdTimerConfigure:           {"TimerConfigure", 2},
	cmdTimerLoadSet:             {"TimerLoadSet", 3},
	cmdTimerMatchSet:            {"TimerMatchSet", 3},
	cmdTimerPrescaleSet:         {"TimerPrescaleSet", 3},
	cmdTimerPrescaleMatchSet:    {"TimerPrescaleMatchSet", 3},
	cmdTimerEnable:              {"TimerEnable", 2},
	cmdADCSequenceConfigure:     {"ADCSequenceConfigure", 4},
	cmdADCSequenceStepConfigure: {"ADCSequenceStepConfigure", 4},
	cmdADCSequenceEnable:        {"ADCSequenceEnable", 2},
	cmdADCIntClear:              {"ADCIntClear", 2},
	cmdADCProcessorTrigger:      {"ADCProcessorTrigger", 2},
	cmdADCIntStatus:             {"ADCIntStatus", 3},
	cmdADCSequenceDataGet:       {"ADCSequenceDataGet", 3},
}

func commandName(id uint32) string {
	if c, ok := commands[id]; ok {
		return c.name
	}
	return "cmd(" + strconv.FormatUint(uint64(id), 10) + ")"
}
