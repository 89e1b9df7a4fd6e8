// Package api provides native Go-based API/SDK over HTTP(S).
/*
 * Copyright (c) 2025-2026, NVIDIA CORPORATION. All rights reserved.
 */
package api

import (
	"errors"
	"io"
	"iter"

	"github.com/NVIDIA/aisclient/api/apc"
	"github.com/NVIDIA/aisclient/cmn"
)

// ObjIter lists bucket objects lazily, one page at a time.
// The next page is requested only when the current one is exhausted.
// Single pass: once Next returns an error (io.EOF at the end of the listing)
// it keeps returning the same error. Not safe for concurrent use.
type ObjIter struct {
	err   error
	bp    BaseParams
	cur   LsoCursor
	page  cmn.LsoEntries
	idx   int
	pages int
}

// NewObjIter does not contact the cluster; the first page is fetched by the first Next.
func NewObjIter(bp BaseParams, bck cmn.Bck, lsmsg *apc.LsoMsg) *ObjIter {
	var msg apc.LsoMsg
	if lsmsg != nil {
		msg = *lsmsg
	}
	msg.UUID, msg.ContinuationToken = "", ""
	return &ObjIter{bp: bp, cur: NewLsoCursor(bck, &msg)}
}

// Next returns the next entry, or (nil, io.EOF) when there are no more.
func (it *ObjIter) Next() (*cmn.LsoEnt, error) {
	for it.err == nil {
		if it.idx < len(it.page) {
			en := it.page[it.idx]
			it.page[it.idx] = nil
			it.idx++
			return en, nil
		}
		if it.cur.Done() {
			it.err = io.EOF
			break
		}
		page, next, err := it.cur.Fetch(it.bp)
		if err != nil {
			it.err = err
			break
		}
		it.cur = next
		it.page, it.idx = page.Entries, 0
		it.pages++
	}
	return nil, it.err
}

// All returns single-use iterator over the remaining entries.
// Iteration stops after yielding a non-nil error; io.EOF is never yielded.
func (it *ObjIter) All() iter.Seq2[*cmn.LsoEnt, error] {
	return func(yield func(*cmn.LsoEnt, error) bool) {
		for {
			en, err := it.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(en, err) || err != nil {
				return
			}
		}
	}
}

// number of pages fetched so far
func (it *ObjIter) Pages() int { return it.pages }

// the terminal error, if any (nil while iterating and upon clean exhaustion)
func (it *ObjIter) Err() error {
	if errors.Is(it.err, io.EOF) {
		return nil
	}
	return it.err
}
