// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lm4f

import "testing"

func TestSplitPair(t *testing.T) {
	data := []struct {
		v         uint32
		low, high uint16
	}{
		{0, 0, 0},
		{0xFFFF, 0xFFFF, 0},
		{0x10000, 0, 1},
		{0x27DC1, 0x7DC1, 2},
		{0xFFFFFFFF, 0xFFFF, 0xFFFF},
	}
	for _, line := range data {
		low, high := SplitPair(line.v)
		if low != line.low || high != line.high {
			t.Errorf("SplitPair(%#x) = %#x, %#x", line.v, low, high)
		}
		if v := JoinPair(low, high); v != line.v {
			t.Errorf("JoinPair(%#x, %#x) = %#x", low, high, v)
		}
	}
}

func TestPWMArithmetic(t *testing.T) {
	// 80MHz, 490Hz, 128/255.
	period := pwmPeriod(80000000, 490)
	if period != 163265 {
		t.Fatalf("period = %d", period)
	}
	match := pwmMatch(period, 255, 128)
	if match != 81312 {
		t.Fatalf("match = %d", match)
	}
	if low, high := SplitPair(period); low != 0x7DC1 || high != 0x2 {
		t.Errorf("period split = %#x, %#x", low, high)
	}
	if low, high := SplitPair(match); low != 0x3DA0 || high != 0x1 {
		t.Errorf("match split = %#x, %#x", low, high)
	}
	if m := pwmMatch(period, 255, 255); m != 0 {
		t.Errorf("full duty match = %d", m)
	}
	if m := pwmMatch(period, 255, 1); m != 162624 {
		t.Errorf("1/255 match = %d", m)
	}
	// (1<<24)*period does not fit 32 bits.
	if m := pwmMatch(period, 1<<24, 1<<23); m != 81632 {
		t.Errorf("half of 1<<24 match = %d", m)
	}
}
