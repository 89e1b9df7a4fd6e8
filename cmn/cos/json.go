// Package cos provides common low-level types and utilities for all aisclient packages
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	jsoniter "github.com/json-iterator/go"
)

// JSON (jsoniter) encodes and decodes control messages, bucket and object
// properties, and errors; list-objects pages are msgpack-encoded when the
// client asks for it via the Accept header
var JSON = jsoniter.Config{
	EscapeHTML: false,
	// newer gateways may add fields
	DisallowUnknownFields: false,
	SortMapKeys:           true,
}.Froze()

func MustMarshal(v any) []byte {
	b, err := JSON.Marshal(v)
	AssertNoErr(err)
	return b
}

func MustMarshalToString(v any) string { return string(MustMarshal(v)) }

// MorphMarshal converts `data` (e.g. ActMsg.Value decoded as map[string]any)
// into the typed `v` by re-encoding
func MorphMarshal(data, v any) error {
	b, err := JSON.Marshal(data)
	if err != nil {
		return err
	}
	return JSON.Unmarshal(b, v)
}
