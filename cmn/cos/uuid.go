// Package cos provides common low-level types and utilities for all aisclient packages
/*
 * Copyright (c) 2018-2024, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"math/rand/v2"
	"sync"

	"github.com/teris-io/shortid"
)

// NOTE: BEWARE: `shortid` uses hardcoded 01/2016 as a starting timestamp

const (
	// Alphabet for generating UUIDs similar to the shortid.DEFAULT_ABC
	uuidABC = "-5nZJDft6LuzsjGNpPwY7rQa39vehq4i1cV2FROo8yHSlC0BUEdWbIxMmTgKXAk_"

	lenShortID = 9 // UUID length, as per https://github.com/teris-io/shortid#id-length
)

var (
	sids [16]*shortid.Shortid
	once sync.Once
)

func InitShortID(seed uint64) {
	for i := range sids {
		sids[i] = shortid.MustNew(uint8(i+1) /*worker*/, uuidABC, seed)
	}
}

// GenUUID generates unique and user-friendly IDs.
func GenUUID() (uuid string) {
	once.Do(func() {
		if sids[0] == nil {
			InitShortID(rand.Uint64())
		}
	})
	var err error
	for _, sid := range sids {
		uuid, err = sid.Generate()
		if err == nil && IsValidUUID(uuid) {
			return
		}
	}
	return randString(lenShortID)
}

// IsValidUUID checks the format of the IDs produced by GenUUID (listing sessions, jobs)
func IsValidUUID(uuid string) bool {
	const minLen = lenShortID - 2
	if len(uuid) < minLen {
		return false
	}
	if uuid[0] == '-' || uuid[0] == '_' || uuid[len(uuid)-1] == '-' || uuid[len(uuid)-1] == '_' {
		return false
	}
	for _, c := range uuid {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_' {
			continue
		}
		return false
	}
	return true
}

func randString(n int) string {
	b := make([]byte, n)
	for i := range n {
		b[i] = LetterRunes[rand.IntN(LenRunes)]
	}
	return string(b)
}
