// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bridge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
	"periph.io/x/tiva/v3/lm4f"
)

// Opts configures a Conn.
type Opts struct {
	// Logger receives one debug entry per command. Defaults to the logrus
	// standard logger.
	Logger *logrus.Logger
}

// Conn is the host side of a bridge link.
//
// It implements lm4f.Driver by forwarding every call to a target running
// Serve and waiting for its answer. The driverlib calls cannot return an
// error, so the first failure is kept and returned by Err; every later call
// is skipped and returns zero values.
type Conn struct {
	mu  sync.Mutex
	w   io.Writer
	r   *bufio.Reader
	c   io.Closer
	log *logrus.Entry
	seq byte
	err error
	buf []byte
}

// New returns a Conn talking over rw.
//
// If rw is an io.Closer, Close closes it.
func New(rw io.ReadWriter, opts *Opts) *Conn {
	l := logrus.StandardLogger()
	if opts != nil && opts.Logger != nil {
		l = opts.Logger
	}
	c := &Conn{
		w:   rw,
		r:   bufio.NewReader(rw),
		log: l.WithField("dev", "bridge"),
	}
	if cl, ok := rw.(io.Closer); ok {
		c.c = cl
	}
	return c
}

// Err returns the first error the link hit, if any.
func (c *Conn) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// Close closes the underlying port.
func (c *Conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err == nil {
		c.err = errors.New("bridge: closed")
	}
	if c.c == nil {
		return nil
	}
	return c.c.Close()
}

func (c *Conn) String() string {
	return "bridge"
}

// call runs one command and returns its results.
func (c *Conn) call(id uint32, args ...uint32) []uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.err != nil {
		return nil
	}
	res, err := c.roundTrip(id, args)
	if err != nil {
		c.err = fmt.Errorf("%s: %w", commandName(id), err)
		c.log.WithError(c.err).Error("link failed")
		return nil
	}
	c.log.WithFields(logrus.Fields{"cmd": commandName(id), "args": args, "res": res}).Debug("call")
	return res
}

func (c *Conn) roundTrip(id uint32, args []uint32) ([]uint32, error) {
	p := putVLQ(c.buf[:0], id)
	for _, a := range args {
		p = putVLQ(p, a)
	}
	seq := seqDest | c.seq&seqMask
	c.seq++
	f, err := appendFrame(nil, seq, p)
	c.buf = p
	if err != nil {
		return nil, err
	}
	if _, err := c.w.Write(f); err != nil {
		return nil, err
	}
	got, payload, err := readFrame(c.r)
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	if got != seq {
		return nil, fmt.Errorf("%w: sequence %#x, expected %#x", ErrCorrupt, got, seq)
	}
	status, err := getVLQ(&payload)
	if err != nil {
		return nil, err
	}
	switch status {
	case statusOK:
	case statusCorrupt:
		return nil, fmt.Errorf("target: %w", ErrCorrupt)
	case statusUnknown:
		return nil, ErrUnknownCommand
	default:
		return nil, fmt.Errorf("%w: status %d", ErrCorrupt, status)
	}
	var res []uint32
	for len(payload) != 0 {
		v, err := getVLQ(&payload)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

// result returns res[i] or 0 if the call failed.
func result(res []uint32, i int) uint32 {
	if i < len(res) {
		return res[i]
	}
	return 0
}

// SysCtlClockGet implements lm4f.SysCtl.
func (c *Conn) SysCtlClockGet() uint32 {
	return result(c.call(cmdSysCtlClockGet), 0)
}

// SysCtlPeripheralEnable implements lm4f.SysCtl.
func (c *Conn) SysCtlPeripheralEnable(p lm4f.Peripheral) {
	c.call(cmdSysCtlPeripheralEnable, uint32(p))
}

// GPIOPinConfigure implements lm4f.GPIO.
func (c *Conn) GPIOPinConfigure(mux uint32) {
	c.call(cmdGPIOPinConfigure, mux)
}

// GPIOPinTypeTimer implements lm4f.GPIO.
func (c *Conn) GPIOPinTypeTimer(port uint32, pins uint8) {
	c.call(cmdGPIOPinTypeTimer, port, uint32(pins))
}

// GPIOPinTypeADC implements lm4f.GPIO.
func (c *Conn) GPIOPinTypeADC(port uint32, pins uint8) {
	c.call(cmdGPIOPinTypeADC, port, uint32(pins))
}

// GPIOPinTypeGPIOOutput implements lm4f.GPIO.
func (c *Conn) GPIOPinTypeGPIOOutput(port uint32, pins uint8) {
	c.call(cmdGPIOPinTypeGPIOOutput, port, uint32(pins))
}

// GPIOPinWrite implements lm4f.GPIO.
func (c *Conn) GPIOPinWrite(port uint32, pins, val uint8) {
	c.call(cmdGPIOPinWrite, port, uint32(pins), uint32(val))
}

// TimerConfigure implements lm4f.Timers.
func (c *Conn) TimerConfigure(base, config uint32) {
	c.call(cmdTimerConfigure, base, config)
}

// TimerLoadSet implements lm4f.Timers.
func (c *Conn) TimerLoadSet(base, half, v uint32) {
	c.call(cmdTimerLoadSet, base, half, v)
}

// TimerMatchSet implements lm4f.Timers.
func (c *Conn) TimerMatchSet(base, half, v uint32) {
	c.call(cmdTimerMatchSet, base, half, v)
}

// TimerPrescaleSet implements lm4f.Timers.
func (c *Conn) TimerPrescaleSet(base, half, v uint32) {
	c.call(cmdTimerPrescaleSet, base, half, v)
}

// TimerPrescaleMatchSet implements lm4f.Timers.
func (c *Conn) TimerPrescaleMatchSet(base, half, v uint32) {
	c.call(cmdTimerPrescaleMatchSet, base, half, v)
}

// TimerEnable implements lm4f.Timers.
func (c *Conn) TimerEnable(base, half uint32) {
	c.call(cmdTimerEnable, base, half)
}

// ADCSequenceConfigure implements lm4f.ADC.
func (c *Conn) ADCSequenceConfigure(base, seq, trigger, priority uint32) {
	c.call(cmdADCSequenceConfigure, base, seq, trigger, priority)
}

// ADCSequenceStepConfigure implements lm4f.ADC.
func (c *Conn) ADCSequenceStepConfigure(base, seq, step, config uint32) {
	c.call(cmdADCSequenceStepConfigure, base, seq, step, config)
}

// ADCSequenceEnable implements lm4f.ADC.
func (c *Conn) ADCSequenceEnable(base, seq uint32) {
	c.call(cmdADCSequenceEnable, base, seq)
}

// ADCIntClear implements lm4f.ADC.
func (c *Conn) ADCIntClear(base, seq uint32) {
	c.call(cmdADCIntClear, base, seq)
}

// ADCProcessorTrigger implements lm4f.ADC.
func (c *Conn) ADCProcessorTrigger(base, seq uint32) {
	c.call(cmdADCProcessorTrigger, base, seq)
}

// ADCIntStatus implements lm4f.ADC.
//
// A failed link reads as a completed conversion so that a waiting Sample
// does not spin forever; the sample then comes back empty.
func (c *Conn) ADCIntStatus(base, seq uint32, masked bool) uint32 {
	var m uint32
	if masked {
		m = 1
	}
	res := c.call(cmdADCIntStatus, base, seq, m)
	if res == nil {
		return ^uint32(0)
	}
	return result(res, 0)
}

// ADCSequenceDataGet implements lm4f.ADC.
//
// At most 8 entries are fetched per call.
func (c *Conn) ADCSequenceDataGet(base, seq uint32, buf []uint32) int {
	n := len(buf)
	if n > maxData {
		n = maxData
	}
	res := c.call(cmdADCSequenceDataGet, base, seq, uint32(n))
	if len(res) == 0 {
		return 0
	}
	return copy(buf[:n], res[1:])
}

var _ lm4f.Driver = &Conn{}
