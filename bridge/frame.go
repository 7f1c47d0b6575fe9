// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package bridge

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Frame layout: len, seq, payload, crc16 high, crc16 low, sync.
const (
	headerSize  = 2
	trailerSize = 3
	minFrame    = headerSize + trailerSize
	maxFrame    = 64
	maxPayload  = maxFrame - minFrame
	syncByte    = 0x7E
	seqDest     = 0x10
	seqMask     = 0x0F
)

var (
	// ErrCorrupt is returned when a frame fails its length, sync or CRC
	// check, or when its payload is not a valid VLQ stream.
	ErrCorrupt = errors.New("bridge: corrupt frame")
	// ErrUnknownCommand is returned when the target does not implement a
	// command.
	ErrUnknownCommand = errors.New("bridge: unknown command")
)

// crc16 is the CCITT variant used on the Klipper serial link.
func crc16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		b ^= uint8(crc & 0xFF)
		b ^= b << 4
		b16 := uint16(b)
		crc = (b16<<8 | crc>>8) ^ (b16 >> 4) ^ (b16 << 3)
	}
	return crc
}

// putVLQ appends the signed VLQ encoding of v to b.
func putVLQ(b []byte, v uint32) []byte {
	i := int32(v)
	if !(-(1<<26) <= i && i < (3<<26)) {
		b = append(b, byte((i>>28)&0x7F)|0x80)
	}
	if !(-(1<<19) <= i && i < (3<<19)) {
		b = append(b, byte((i>>21)&0x7F)|0x80)
	}
	if !(-(1<<12) <= i && i < (3<<12)) {
		b = append(b, byte((i>>14)&0x7F)|0x80)
	}
	if !(-(1<<5) <= i && i < (3<<5)) {
		b = append(b, byte((i>>7)&0x7F)|0x80)
	}
	return append(b, byte(i&0x7F))
}

// getVLQ decodes one VLQ value from the head of *b and advances it.
func getVLQ(b *[]byte) (uint32, error) {
	d := *b
	if len(d) == 0 {
		return 0, ErrCorrupt
	}
	c := uint32(d[0])
	d = d[1:]
	v := c & 0x7F
	if c&0x60 == 0x60 {
		v |= ^uint32(0x1F)
	}
	for n := 0; c&0x80 != 0; n++ {
		if len(d) == 0 || n == 4 {
			return 0, ErrCorrupt
		}
		c = uint32(d[0])
		d = d[1:]
		v = v<<7 | c&0x7F
	}
	*b = d
	return v, nil
}

// appendFrame appends the framed payload to b.
func appendFrame(b []byte, seq byte, payload []byte) ([]byte, error) {
	if len(payload) > maxPayload {
		return b, fmt.Errorf("bridge: payload of %d bytes exceeds %d", len(payload), maxPayload)
	}
	start := len(b)
	b = append(b, byte(len(payload)+minFrame), seq)
	b = append(b, payload...)
	crc := crc16(b[start:])
	return append(b, byte(crc>>8), byte(crc), syncByte), nil
}

// readFrame reads one frame from r, skipping leading sync bytes.
//
// A corrupt frame is consumed up to its sync byte before ErrCorrupt is
// returned. io.EOF is only returned between frames.
func readFrame(r *bufio.Reader) (byte, []byte, error) {
	var n byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, nil, err
		}
		if b != syncByte {
			n = b
			break
		}
	}
	if n < minFrame || n > maxFrame {
		// Resync on the next sync byte.
		if _, err := r.ReadBytes(syncByte); err != nil {
			return 0, nil, err
		}
		return 0, nil, fmt.Errorf("%w: length %d", ErrCorrupt, n)
	}
	buf := make([]byte, n)
	buf[0] = n
	if _, err := io.ReadFull(r, buf[1:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, nil, err
	}
	seq := buf[1]
	if buf[n-1] != syncByte {
		return seq, nil, fmt.Errorf("%w: missing sync", ErrCorrupt)
	}
	want := uint16(buf[n-3])<<8 | uint16(buf[n-2])
	if got := crc16(buf[:n-trailerSize]); got != want {
		return seq, nil, fmt.Errorf("%w: crc %#04x, expected %#04x", ErrCorrupt, got, want)
	}
	return seq, buf[headerSize : n-trailerSize], nil
}
