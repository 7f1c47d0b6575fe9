// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package bridge drives a remote LM4F120 over a serial link.
//
// Conn runs on the host and implements lm4f.Driver; Serve runs next to the
// real driverlib and executes what Conn sends. Each call is one request and
// one response, framed the way Klipper frames its serial messages:
//
//	len seq payload... crc_hi crc_lo 0x7E
//
// len counts the whole frame, at most 64 bytes. The CRC covers len, seq and
// the payload. A request payload is the command id followed by its
// arguments; a response payload is a status followed by the results. All
// integers are signed VLQ encoded.
package bridge
