// Package tassert provides common asserts for tests
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package tassert

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"
)

const (
	modulePath = "aisclient/"
	maxFrames  = 8
)

// tests that already failed via CheckFatal (a second call from another goroutine
// of the same test must not call Fatal again)
var fatalities sync.Map

func stamp() string { return "[" + time.Now().Format("15:04:05.000000") + "]" }

func CheckFatal(tb testing.TB, err error) {
	if err == nil {
		return
	}
	tb.Helper()
	if _, loaded := fatalities.LoadOrStore(tb.Name(), struct{}{}); loaded {
		fmt.Fprintf(os.Stderr, "--- %s: duplicate CheckFatal: %v\n", tb.Name(), err)
		runtime.Goexit()
	}
	printStack()
	tb.Fatal(stamp(), err)
}

func CheckError(tb testing.TB, err error) {
	if err == nil {
		return
	}
	tb.Helper()
	printStack()
	tb.Error(stamp(), err)
}

func Fatalf(tb testing.TB, cond bool, format string, args ...any) {
	if cond {
		return
	}
	tb.Helper()
	printStack()
	tb.Fatalf(format, args...)
}

func Errorf(tb testing.TB, cond bool, format string, args ...any) {
	if cond {
		return
	}
	tb.Helper()
	printStack()
	tb.Errorf(format, args...)
}

// prints the callers (within this module) of the failed assertion
func printStack() {
	pcs := make([]uintptr, maxFrames+2)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	var sb strings.Builder
	sb.WriteString("    tassert.printStack:\n")
	for {
		frame, more := frames.Next()
		i := strings.Index(frame.File, modulePath)
		if i < 0 {
			break
		}
		fmt.Fprintf(&sb, "\t%s:%d\n", frame.File[i+len(modulePath):], frame.Line)
		if !more {
			break
		}
	}
	os.Stderr.WriteString(sb.String())
}
