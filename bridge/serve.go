// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bridge

import (
	"bufio"
	"errors"
	"io"

	"periph.io/x/tiva/v3/lm4f"
)

// Serve is the target side of a bridge link. It answers commands read from
// rw by calling drv until rw is exhausted.
//
// Corrupt frames and unknown commands are answered with an error status and
// the loop keeps going. Serve returns io.EOF when the host closes the link
// between two frames, or the first read or write error otherwise.
func Serve(rw io.ReadWriter, drv lm4f.Driver) error {
	r := bufio.NewReader(rw)
	var out, res []byte
	for {
		seq, payload, err := readFrame(r)
		res = res[:0]
		switch {
		case err == nil:
			res = dispatch(res, drv, payload)
		case errors.Is(err, ErrCorrupt):
			res = putVLQ(res, statusCorrupt)
		default:
			return err
		}
		if out, err = appendFrame(out[:0], seq, res); err != nil {
			return err
		}
		if _, err := rw.Write(out); err != nil {
			return err
		}
	}
}

// dispatch runs the command in payload and appends the response to res.
func dispatch(res []byte, drv lm4f.Driver, payload []byte) []byte {
	id, err := getVLQ(&payload)
	if err != nil {
		return putVLQ(res, statusCorrupt)
	}
	cmd, ok := commands[id]
	if !ok {
		return putVLQ(res, statusUnknown)
	}
	var a [4]uint32
	for i := 0; i < cmd.args; i++ {
		if a[i], err = getVLQ(&payload); err != nil {
			return putVLQ(res, statusCorrupt)
		}
	}
	if len(payload) != 0 {
		return putVLQ(res, statusCorrupt)
	}
	res = putVLQ(res, statusOK)
	switch id {
	case cmdSysCtlClockGet:
		res = putVLQ(res, drv.SysCtlClockGet())
	case cmdSysCtlPeripheralEnable:
		drv.SysCtlPeripheralEnable(lm4f.Peripheral(a[0]))
	case cmdGPIOPinConfigure:
		drv.GPIOPinConfigure(a[0])
	case cmdGPIOPinTypeTimer:
		drv.GPIOPinTypeTimer(a[0], uint8(a[1]))
	case cmdGPIOPinTypeADC:
		drv.GPIOPinTypeADC(a[0], uint8(a[1]))
	case cmdGPIOPinTypeGPIOOutput:
		drv.GPIOPinTypeGPIOOutput(a[0], uint8(a[1]))
	case cmdGPIOPinWrite:
		drv.GPIOPinWrite(a[0], uint8(a[1]), uint8(a[2]))
	case cmdTimerConfigure:
		drv.TimerConfigure(a[0], a[1])
	case cmdTimerLoadSet:
		drv.TimerLoadSet(a[0], a[1], a[2])
	case cmdTimerMatchSet:
		drv.TimerMatchSet(a[0], a[1], a[2])
	case cmdTimerPrescaleSet:
		drv.TimerPrescaleSet(a[0], a[1], a[2])
	case cmdTimerPrescaleMatchSet:
		drv.TimerPrescaleMatchSet(a[0], a[1], a[2])
	case cmdTimerEnable:
		drv.TimerEnable(a[0], a[1])
	case cmdADCSequenceConfigure:
		drv.ADCSequenceConfigure(a[0], a[1], a[2], a[3])
	case cmdADCSequenceStepConfigure:
		drv.ADCSequenceStepConfigure(a[0], a[1], a[2], a[3])
	case cmdADCSequenceEnable:
		drv.ADCSequenceEnable(a[0], a[1])
	case cmdADCIntClear:
		drv.ADCIntClear(a[0], a[1])
	case cmdADCProcessorTrigger:
		drv.ADCProcessorTrigger(a[0], a[1])
	case cmdADCIntStatus:
		res = putVLQ(res, drv.ADCIntStatus(a[0], a[1], a[2] != 0))
	case cmdADCSequenceDataGet:
		n := a[2]
		if n > maxData {
			n = maxData
		}
		var buf [maxData]uint32
		got := drv.ADCSequenceDataGet(a[0], a[1], buf[:n])
		res = putVLQ(res, uint32(got))
		for _, v := range buf[:got] {
			res = putVLQ(res, v)
		}
	}
	return res
}
