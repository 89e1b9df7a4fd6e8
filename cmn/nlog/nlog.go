// Package nlog - aistore logger, provides buffering, timestamping, and writing
// to standard error or to log files
/*
 * Copyright (c) 2023-2025, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

const (
	nlogBufSize  = 64 * 1024
	nlogLineSize = 4 * 1024
)

type severity int

const (
	sevInfo severity = iota
	sevWarn
	sevErr
)

type nlog struct {
	file *os.File
	bw   *bufio.Writer
	sev  severity
}

var (
	sevText = []string{sevInfo: "INFO", sevWarn: "WARNING", sevErr: "ERROR"}

	// assorted filenames that we don't want to show up
	redactFnames = map[string]struct{}{
		"err": {},
	}

	pool = sync.Pool{
		New: func() any { return newLineBuf(nlogLineSize) },
	}

	mu    sync.Mutex
	nlogs [sevErr + 1]*nlog
	out   io.Writer

	toStderr     = true
	alsoToStderr bool
	quiet        atomic.Bool

	logDir, title, arg0 string
)

func init() {
	arg0 = filepath.Base(os.Args[0])
}

// main function
func log(sev severity, depth int, format string, args ...any) {
	if sev == sevInfo && quiet.Load() {
		return
	}
	fb := alloc()
	sprintf(sev, depth, format, fb, args...)
	line := fb.bytes()

	mu.Lock()
	switch {
	case out != nil:
		out.Write(line)
	case toStderr:
		os.Stderr.Write(line)
	default:
		if alsoToStderr || sev >= sevErr {
			os.Stderr.Write(line)
		}
		if err := fcreateAll(); err != nil {
			os.Stderr.WriteString(err.Error() + "\n")
			os.Stderr.Write(line)
			break
		}
		if sev >= sevWarn {
			nlogs[sevErr].write(line)
		}
		nlogs[sevInfo].write(line)
		if sev >= sevErr {
			nlogs[sevErr].flush()
			nlogs[sevInfo].flush()
		}
	}
	mu.Unlock()
	free(fb)
}

// under mu
func fcreateAll() error {
	if nlogs[sevInfo] != nil {
		return nil
	}
	if logDir == "" {
		logDir = filepath.Join(os.TempDir(), "aislogs")
	}
	if err := os.MkdirAll(logDir, 0o750); err != nil {
		return fmt.Errorf("nlog: failed to create %q: %w", logDir, err)
	}
	now := time.Now()
	for _, sev := range []severity{sevInfo, sevErr} {
		fname := filepath.Join(logDir, sname()+"."+sevText[sev])
		file, err := os.OpenFile(fname, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o640)
		if err != nil {
			return fmt.Errorf("nlog: %w", err)
		}
		nlog := &nlog{file: file, bw: bufio.NewWriterSize(file, nlogBufSize), sev: sev}
		nlog.bw.WriteString("Started up at " + now.Format("2006/01/02 15:04:05") + ", " +
			runtime.Version() + " for " + runtime.GOOS + "/" + runtime.GOARCH + "\n")
		nlogs[sev] = nlog
	}
	return nil
}

func (nlog *nlog) write(line []byte) {
	if _, err := nlog.bw.Write(line); err != nil {
		os.Stderr.Write(line)
	}
}

func (nlog *nlog) flush() {
	if err := nlog.bw.Flush(); err != nil {
		os.Stderr.WriteString("nlog: " + err.Error() + "\n")
	}
}

func sname() string {
	if title != "" {
		return title
	}
	return arg0
}

func formatHdr(s severity, depth int, fb *lineBuf) {
	const char = "IWE"
	_, fn, ln, ok := runtime.Caller(4 + depth)
	if !ok {
		return
	}
	idx := strings.LastIndexByte(fn, filepath.Separator)
	if idx > 0 {
		fn = fn[idx+1:]
	}
	if l := len(fn); l > 3 {
		fn = fn[:l-3]
	}
	fb.writeByte(char[s])
	fb.writeByte(' ')
	fb.writeStamp()
	fb.writeByte(' ')
	if _, redact := redactFnames[fn]; redact {
		return
	}
	fb.writeString(fn)
	fb.writeByte(':')
	fb.writeString(strconv.Itoa(ln))
	fb.writeByte(' ')
}

func sprintf(sev severity, depth int, format string, fb *lineBuf, args ...any) {
	formatHdr(sev, depth, fb)
	if format == "" {
		fmt.Fprint(fb, args...)
	} else {
		fmt.Fprintf(fb, format, args...)
	}
	fb.eol()
}

//
// buffer pool
//

func alloc() (fb *lineBuf) {
	fb = pool.Get().(*lineBuf)
	fb.reset()
	return
}

func free(fb *lineBuf) { pool.Put(fb) }
