// Package cos provides common low-level types and utilities for all aisclient packages
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"crypto/md5"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
	"os"
	"slices"

	"github.com/OneOfOne/xxhash"
	jsoniter "github.com/json-iterator/go"
)

// checksum types: bucket property, object metadata, and PUT/GET validation
const (
	ChecksumNone   = "none"
	ChecksumXXHash = "xxhash" // default
	ChecksumMD5    = "md5"
	ChecksumCRC32C = "crc32c"
	ChecksumSHA256 = "sha256"
)

var hashes = map[string]func() hash.Hash{
	ChecksumXXHash: func() hash.Hash { return xxhash.New64() },
	ChecksumMD5:    md5.New,
	ChecksumCRC32C: func() hash.Hash { return crc32.New(crc32.MakeTable(crc32.Castagnoli)) },
	ChecksumSHA256: sha256.New,
}

type (
	// (type, hex value) pair; nil and "none" are both empty
	Cksum struct {
		ty    string
		value string
	}
	// computes Cksum incrementally: write to H, then Finalize
	CksumHash struct {
		H hash.Hash
		Cksum
	}
	ErrBadCksum struct {
		expected, actual *Cksum
		context          string
	}

	cksumJSON struct {
		Type  string `json:"type"`
		Value string `json:"value"`
	}
)

func SupportedChecksums() []string {
	types := make([]string, 0, len(hashes)+1)
	types = append(types, ChecksumNone)
	for ty := range hashes {
		types = append(types, ty)
	}
	slices.Sort(types)
	return types
}

func ValidateCksumType(ty string, emptyOK ...bool) error {
	if ty == "" && len(emptyOK) > 0 && emptyOK[0] {
		return nil
	}
	if _, ok := hashes[ty]; ok || ty == ChecksumNone {
		return nil
	}
	return fmt.Errorf("invalid checksum type %q (expecting %v)", ty, SupportedChecksums())
}

///////////////
// CksumHash //
///////////////

// NewCksumHash returns nil for empty (none) checksum type
func NewCksumHash(ty string) *CksumHash {
	newHash, ok := hashes[ty]
	if !ok {
		AssertMsg(ty == "" || ty == ChecksumNone, "unknown checksum type: "+ty)
		return nil
	}
	return &CksumHash{H: newHash(), Cksum: Cksum{ty: ty}}
}

func (ck *CksumHash) Finalize() { ck.value = hex.EncodeToString(ck.H.Sum(nil)) }

// ChecksumBytes computes checksum of an in-memory buffer
func ChecksumBytes(ty string, b []byte) *Cksum {
	ck := NewCksumHash(ty)
	if ck == nil {
		return NewCksum(ChecksumNone, "")
	}
	ck.H.Write(b)
	ck.Finalize()
	return ck.Clone()
}

// ChecksumFile computes checksum of a file without reading it all into memory
func ChecksumFile(fqn, ty string) (*Cksum, error) {
	fh, err := os.Open(fqn)
	if err != nil {
		return nil, err
	}
	defer Close(fh)
	_, ck, err := CopyAndChecksum(io.Discard, fh, nil, ty)
	if err != nil || ck == nil {
		return nil, err
	}
	return ck.Clone(), nil
}

///////////
// Cksum //
///////////

func NewCksum(ty, value string) *Cksum {
	if err := ValidateCksumType(ty, true /*empty OK*/); err != nil {
		AssertMsg(false, err.Error())
	}
	Assert(ty != "" || value == "")
	return &Cksum{ty, value}
}

func (ck *Cksum) IsEmpty() bool { return ck == nil || ck.ty == "" || ck.ty == ChecksumNone }

// empty checksums never compare equal
func (ck *Cksum) Equal(to *Cksum) bool {
	return !ck.IsEmpty() && !to.IsEmpty() && *ck == *to
}

func (ck *Cksum) Get() (string, string) { return ck.Type(), ck.Value() }

func (ck *Cksum) Type() string {
	if ck.IsEmpty() {
		return ChecksumNone
	}
	return ck.ty
}

func (ck *Cksum) Value() string {
	if ck == nil {
		return ""
	}
	return ck.value
}

func (ck *Cksum) Clone() *Cksum { c := *ck; return &c }

func (ck *Cksum) MarshalJSON() ([]byte, error) {
	if ck == nil {
		return []byte("null"), nil
	}
	return jsoniter.Marshal(cksumJSON{Type: ck.ty, Value: ck.value})
}

func (ck *Cksum) UnmarshalJSON(b []byte) error {
	var v cksumJSON
	if err := jsoniter.Unmarshal(b, &v); err != nil {
		return err
	}
	ck.ty, ck.value = v.Type, v.Value
	return nil
}

func (ck *Cksum) String() string {
	if ck.IsEmpty() {
		return "checksum <none>"
	}
	return ck.ty + "[" + SHead(ck.value) + "]"
}

/////////////////
// ErrBadCksum //
/////////////////

func NewErrDataCksum(expected, actual *Cksum, context ...string) error {
	e := &ErrBadCksum{expected: expected, actual: actual}
	if len(context) > 0 {
		e.context = context[0]
	}
	return e
}

func (e *ErrBadCksum) Error() string {
	s := "BAD DATA CHECKSUM: "
	if e.expected.Type() == e.actual.Type() {
		s += e.expected.Type() + "(" + e.expected.Value() + " != " + e.actual.Value() + ")"
	} else {
		s += "(" + e.expected.String() + " != " + e.actual.String() + ")"
	}
	if e.context != "" {
		s += " (context: " + e.context + ")"
	}
	return s
}

func IsErrBadCksum(err error) bool {
	_, ok := err.(*ErrBadCksum)
	return ok
}
