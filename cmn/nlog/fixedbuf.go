// Package nlog - aistore logger, provides buffering, timestamping, and writing
// to standard error or to log files
/*
 * Copyright (c) 2023-2026, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"io"
	"time"
)

const stampLayout = "15:04:05.000000"

// lineBuf is a bounded, pooled line: whatever does not fit is dropped.
type lineBuf struct {
	b []byte
}

var _ io.Writer = (*lineBuf)(nil)

func newLineBuf(size int) *lineBuf { return &lineBuf{b: make([]byte, 0, size)} }

func (lb *lineBuf) avail() int    { return cap(lb.b) - len(lb.b) }
func (lb *lineBuf) reset()        { lb.b = lb.b[:0] }
func (lb *lineBuf) bytes() []byte { return lb.b }

func (lb *lineBuf) Write(p []byte) (int, error) {
	lb.b = append(lb.b, p[:min(len(p), lb.avail())]...)
	return len(p), nil
}

func (lb *lineBuf) writeString(s string) {
	lb.b = append(lb.b, s[:min(len(s), lb.avail())]...)
}

func (lb *lineBuf) writeByte(c byte) {
	if lb.avail() > 0 {
		lb.b = append(lb.b, c)
	}
}

func (lb *lineBuf) writeStamp() {
	if lb.avail() > len(stampLayout) {
		lb.b = time.Now().AppendFormat(lb.b, stampLayout)
	}
}

// terminate with a newline, overwriting the last byte when full
func (lb *lineBuf) eol() {
	n := len(lb.b)
	switch {
	case n > 0 && lb.b[n-1] == '\n':
	case lb.avail() == 0:
		lb.b[n-1] = '\n'
	default:
		lb.b = append(lb.b, '\n')
	}
}
