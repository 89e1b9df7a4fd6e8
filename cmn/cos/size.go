// Package cos provides common low-level types and utilities for all aisclient packages
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"strconv"
)

const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
	TiB = 1024 * GiB
)

var iecUnits = [...]struct {
	suffix string
	size   int64
}{{"TiB", TiB}, {"GiB", GiB}, {"MiB", MiB}, {"KiB", KiB}}

// ToSizeIEC formats size in binary units, e.g. 1.50KiB
func ToSizeIEC(b int64, digits int) string {
	for _, u := range iecUnits {
		if b >= u.size {
			return strconv.FormatFloat(float64(b)/float64(u.size), 'f', digits, 64) + u.suffix
		}
	}
	return strconv.FormatInt(b, 10) + "B"
}

func NonZero[T ~int | ~int64 | ~uint](v, dflt T) T {
	if v != 0 {
		return v
	}
	return dflt
}

//
// assertions: invariants that, if violated, indicate a bug
//

const assertMsg = "assertion failed"

func Assert(cond bool) {
	if !cond {
		panic(assertMsg)
	}
}

func AssertMsg(cond bool, msg string) {
	if !cond {
		panic(assertMsg + ": " + msg)
	}
}

func AssertNoErr(err error) {
	if err != nil {
		panic(err)
	}
}
