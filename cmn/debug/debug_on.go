//go:build debug

// Package debug provides debug utilities
/*
 * Copyright (c) 2018-2024, NVIDIA CORPORATION. All rights reserved.
 */
package debug

import (
	"bytes"
	"fmt"
	"os"
	"runtime"
	"strings"
)

func ON() bool { return true }

func Infof(f string, a ...any) {
	fmt.Fprintf(os.Stderr, "[DEBUG] "+f+"\n", a...)
}

func Func(f func()) { f() }

func _panic(a ...any) {
	var msg string
	if len(a) > 0 {
		msg = fmt.Sprint(a...)
	}
	var buffer bytes.Buffer
	buffer.WriteString("assertion failed: " + msg + "\n")
	for i := 2; i < 9; i++ {
		_, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		if !strings.Contains(file, "aisclient") {
			break
		}
		fmt.Fprintf(&buffer, "\t%s:%d\n", file, line)
	}
	panic(buffer.String())
}

func Assert(cond bool, a ...any) {
	if !cond {
		_panic(a...)
	}
}

func AssertFunc(f func() bool, a ...any) {
	if !f() {
		_panic(a...)
	}
}

func AssertNoErr(err error) {
	if err != nil {
		_panic(err)
	}
}

func Assertf(cond bool, f string, a ...any) {
	if !cond {
		_panic(fmt.Sprintf(f, a...))
	}
}
