// Package trand provides random string for dev tools and tests
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package trand

import (
	"math/rand/v2"
	"strings"

	"github.com/NVIDIA/aisclient/cmn/cos"
)

func String(n int) string {
	b := make([]byte, n)
	for i := range n {
		b[i] = cos.LetterRunes[rand.Int()%cos.LenRunes]
	}
	return string(b)
}

// lowercase, valid as a bucket name
func BckName(n int) string {
	return "tmp-" + strings.ToLower(String(n))
}

// random bytes for object payloads
func Bytes(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(rand.UintN(256))
	}
	return b
}
