// Package cos provides common low-level types and utilities for all aisclient packages
/*
 * Copyright (c) 2018-2026, NVIDIA CORPORATION. All rights reserved.
 */
package cos

import (
	"io"
	"os"
	"path/filepath"
)

const maxDrainSize = 16 * KiB

// DrainReader discards (up to maxDrainSize of) unread response body
// so that the connection can be reused
func DrainReader(r io.Reader) {
	io.CopyN(io.Discard, r, maxDrainSize)
}

func Close(closer io.Closer) { closer.Close() }

// CreateFile creates (or truncates) the file along with missing parent directories
func CreateFile(fqn string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(fqn), 0o750); err != nil {
		return nil, err
	}
	return os.OpenFile(fqn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o640)
}

// CopyAndChecksum copies `r` => `w` computing checksum on the fly;
// returns nil checksum when the type is empty or none
func CopyAndChecksum(w io.Writer, r io.Reader, buf []byte, cksumType string) (int64, *CksumHash, error) {
	cksum := NewCksumHash(cksumType)
	if cksum == nil {
		n, err := io.CopyBuffer(w, r, buf)
		return n, nil, err
	}
	n, err := io.CopyBuffer(io.MultiWriter(w, cksum.H), r, buf)
	if err != nil {
		return n, nil, err
	}
	cksum.Finalize()
	return n, cksum, nil
}
