// Package api provides native Go-based API/SDK over HTTP(S).
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"net/url"
	"sync"

	"github.com/NVIDIA/aisclient/cmn/cos"
)

const msgpBufSize = 16 * cos.KiB

var (
	qpool sync.Pool
	mpool sync.Pool
)

func qalloc() url.Values {
	v := qpool.Get()
	if v != nil {
		return v.(url.Values)
	}
	return make(url.Values, 4) // NOTE: 4
}

func qfree(v url.Values) {
	clear(v)
	qpool.Put(v)
}

// msgpack read buffers (list-objects pages)
func allocMbuf() []byte {
	if v := mpool.Get(); v != nil {
		return *(v.(*[]byte))
	}
	return make([]byte, msgpBufSize)
}

func freeMbuf(buf []byte) {
	if cap(buf) != msgpBufSize {
		return
	}
	buf = buf[:msgpBufSize]
	mpool.Put(&buf)
}
