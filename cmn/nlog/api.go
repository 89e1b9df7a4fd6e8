// Package nlog - aistore logger, provides buffering, timestamping, and writing
// to standard error or to log files
/*
 * Copyright (c) 2023-2025, NVIDIA CORPORATION. All rights reserved.
 */
package nlog

import (
	"flag"
	"io"
)

func InitFlags(flset *flag.FlagSet) {
	flset.BoolVar(&toStderr, "logtostderr", true, "log to standard error instead of files")
	flset.BoolVar(&alsoToStderr, "alsologtostderr", false, "log to standard error as well as files")
}

func InfoDepth(depth int, args ...any)    { log(sevInfo, depth, "", args...) }
func Infoln(args ...any)                  { log(sevInfo, 0, "", args...) }
func Infof(format string, args ...any)    { log(sevInfo, 0, format, args...) }
func Warningln(args ...any)               { log(sevWarn, 0, "", args...) }
func Warningf(format string, args ...any) { log(sevWarn, 0, format, args...) }
func ErrorDepth(depth int, args ...any)   { log(sevErr, depth, "", args...) }
func Errorln(args ...any)                 { log(sevErr, 0, "", args...) }
func Errorf(format string, args ...any)   { log(sevErr, 0, format, args...) }

// SetLogDir redirects logging into `dir`/<title>.INFO and `dir`/<title>.ERROR
// (must be called prior to the first log line)
func SetLogDir(dir, t string) {
	mu.Lock()
	logDir, title, toStderr = dir, t, false
	mu.Unlock()
}

// SetOutput makes all severities go to `w` (tests and embedded usage);
// nil restores the default (standard error)
func SetOutput(w io.Writer) {
	mu.Lock()
	out, toStderr = w, w == nil
	mu.Unlock()
}

// SetVerbose enables (or disables) info-level lines
func SetVerbose(v bool) { quiet.Store(!v) }

func InfoLogName() string { return sname() + ".INFO" }
func ErrLogName() string  { return sname() + ".ERROR" }

func Flush() {
	mu.Lock()
	for _, nlog := range nlogs {
		if nlog != nil {
			nlog.flush()
		}
	}
	mu.Unlock()
}
