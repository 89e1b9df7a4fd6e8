// Package cos provides common low-level types and utilities for all aisclient packages
/*
 * Copyright (c) 2018-2024, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"sort"
	"strconv"
)

const (
	LetterRunes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LenRunes    = len(LetterRunes)
)

const maxHeadLen = 16

type StrSet map[string]struct{}

// alpha-numeric++ including letters, numbers, dashes (-), and underscores (_)
// period (.) is allowed except for '..' (OnlyPlus const)
func IsAlphaPlus(s string) bool {
	for i, c := range s {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_' {
			continue
		}
		if c != '.' {
			return false
		}
		if i < len(s)-1 && s[i+1] == '.' {
			return false
		}
	}
	return true
}

// letters and numbers w/ '-' and '_' permitted with limitations (below)
// (see OnlyNice const)
func IsAlphaNice(s string) bool {
	l := len(s)
	for i, c := range s {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') {
			continue
		}
		if c != '-' && c != '_' {
			return false
		}
		if i == 0 || i == l-1 {
			return false
		}
	}
	return true
}

// shortened (head of the) string, for logging
func SHead(s string) string {
	if len(s) <= maxHeadLen {
		return s
	}
	return s[:maxHeadLen] + "..."
}

func IsParseBool(s string) bool {
	yes, err := strconv.ParseBool(s)
	return err == nil && yes
}

////////////
// StrSet //
////////////

func NewStrSet(keys ...string) (ss StrSet) {
	ss = make(StrSet, len(keys))
	ss.Add(keys...)
	return
}

func (ss StrSet) Add(keys ...string) {
	for _, key := range keys {
		ss[key] = struct{}{}
	}
}

func (ss StrSet) Contains(key string) (yes bool) {
	_, yes = ss[key]
	return
}

func (ss StrSet) ToSlice() []string {
	keys := make([]string, 0, len(ss))
	for key := range ss {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
